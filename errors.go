package vss

import "fmt"

// VssError encapsulates errors returned from calling VSS api.
type VssError struct {
	text    string
	hresult HRESULT
}

// newVssError creates a new VSS api error.
func newVssError(text string, hresult HRESULT) error {
	return &VssError{text: text, hresult: hresult}
}

// newVssErrorIfResultNotOK creates a new VSS api error unless the
// HRESULT signals success.
func newVssErrorIfResultNotOK(text string, hresult HRESULT) error {
	if hresult != S_OK {
		return newVssError(text, hresult)
	}
	return nil
}

// Error implements the error interface.
func (e *VssError) Error() string {
	return fmt.Sprintf("VSS error: %s: %s (%#x)", e.text, e.hresult.Str(), uint(e.hresult))
}

// HResult returns the native result code carried by the error, unmodified.
func (e *VssError) HResult() HRESULT {
	return e.hresult
}

// VssTextError encapsulates errors that carry no native result code.
type VssTextError struct {
	text string
}

// newVssTextError creates a new VSS api error.
func newVssTextError(text string) error {
	return &VssTextError{text: text}
}

// Error implements the error interface.
func (e *VssTextError) Error() string {
	return fmt.Sprintf("VSS error: %s", e.text)
}
