//go:build windows

package vss

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// IVssWriterComponents VSS api interface. Unlike most of the VSS surface it
// does not derive from IUnknown; the native object is a bare vtable pointer.
type IVssWriterComponents struct {
	rawVTable *IVssWriterComponentsVTable
}

// IVssWriterComponentsVTable is the vtable for IVssWriterComponents.
type IVssWriterComponentsVTable struct {
	getComponentCount uintptr
	getWriterInfo     uintptr
	getComponent      uintptr
}

// getVTable returns the vtable for IVssWriterComponents.
func (wc *IVssWriterComponents) getVTable() *IVssWriterComponentsVTable {
	return wc.rawVTable
}

// GetComponentCount calls the equivalent VSS api.
func (wc *IVssWriterComponents) GetComponentCount() (uint32, error) {
	var count uint32
	result, _, _ := syscall.Syscall(wc.getVTable().getComponentCount, 2,
		uintptr(unsafe.Pointer(wc)), uintptr(unsafe.Pointer(&count)), 0)

	return count, newVssErrorIfResultNotOK("GetComponentCount() failed", HRESULT(result))
}

// GetWriterInfo calls the equivalent VSS api.
func (wc *IVssWriterComponents) GetWriterInfo() (instanceID, writerID ole.GUID, err error) {
	result, _, _ := syscall.Syscall(wc.getVTable().getWriterInfo, 3,
		uintptr(unsafe.Pointer(wc)), uintptr(unsafe.Pointer(&instanceID)),
		uintptr(unsafe.Pointer(&writerID)))

	return instanceID, writerID,
		newVssErrorIfResultNotOK("GetWriterInfo() failed", HRESULT(result))
}

// GetComponent calls the equivalent VSS api.
func (wc *IVssWriterComponents) GetComponent(index uint32) (*IVssComponent, error) {
	var component *IVssComponent
	result, _, _ := syscall.Syscall(wc.getVTable().getComponent, 3,
		uintptr(unsafe.Pointer(wc)), uintptr(index), uintptr(unsafe.Pointer(&component)))

	return component, newVssErrorIfResultNotOK("GetComponent() failed", HRESULT(result))
}

// IVssComponent VSS api interface.
type IVssComponent struct {
	ole.IUnknown
}

// IVssComponentVTable is the vtable for IVssComponent. Slot order mirrors
// vswriter.h and must never be reordered.
type IVssComponentVTable struct {
	ole.IUnknownVtbl
	getLogicalPath                      uintptr
	getComponentType                    uintptr
	getComponentName                    uintptr
	getBackupSucceeded                  uintptr
	getAlternateLocationMappingCount    uintptr
	getAlternateLocationMapping         uintptr
	setBackupMetadata                   uintptr
	getBackupMetadata                   uintptr
	addPartialFile                      uintptr
	getPartialFileCount                 uintptr
	getPartialFile                      uintptr
	isSelectedForRestore                uintptr
	getAdditionalRestores               uintptr
	getNewTargetCount                   uintptr
	getNewTarget                        uintptr
	addDirectedTarget                   uintptr
	getDirectedTargetCount              uintptr
	getDirectedTarget                   uintptr
	setRestoreMetadata                  uintptr
	getRestoreMetadata                  uintptr
	setPreRestoreFailureMsg             uintptr
	getPreRestoreFailureMsg             uintptr
	setPostRestoreFailureMsg            uintptr
	getPostRestoreFailureMsg            uintptr
	setBackupStamp                      uintptr
	getBackupStamp                      uintptr
	getPreviousBackupStamp              uintptr
	getBackupOptions                    uintptr
	getRestoreOptions                   uintptr
	getRestoreSubcomponentCount         uintptr
	getRestoreSubcomponent              uintptr
	getFileRestoreStatus                uintptr
	addDifferencedFilesByLastModifyTime uintptr
	addDifferencedFilesByLastModifyLSN  uintptr
	getDifferencedFilesCount            uintptr
	getDifferencedFile                  uintptr
}

// getVTable returns the vtable for IVssComponent.
func (c *IVssComponent) getVTable() *IVssComponentVTable {
	return (*IVssComponentVTable)(unsafe.Pointer(c.RawVTable))
}

// getBstr invokes a getter slot with a single BSTR out parameter and
// converts the result, freeing the native string.
func (c *IVssComponent) getBstr(slot uintptr, name string) (string, error) {
	var bstr *uint16
	result, _, _ := syscall.Syscall(slot, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&bstr)), 0)

	if err := newVssErrorIfResultNotOK(name+" failed", HRESULT(result)); err != nil {
		return "", err
	}

	if bstr == nil {
		return "", nil
	}

	str := ole.UTF16PtrToString(bstr)
	ole.SysFreeString((*int16)(unsafe.Pointer(bstr)))
	return str, nil
}

// GetLogicalPath calls the equivalent VSS api.
func (c *IVssComponent) GetLogicalPath() (string, error) {
	return c.getBstr(c.getVTable().getLogicalPath, "GetLogicalPath()")
}

// GetComponentName calls the equivalent VSS api.
func (c *IVssComponent) GetComponentName() (string, error) {
	return c.getBstr(c.getVTable().getComponentName, "GetComponentName()")
}

// GetComponentType calls the equivalent VSS api.
func (c *IVssComponent) GetComponentType() (VssComponentType, error) {
	var componentType uint32
	result, _, _ := syscall.Syscall(c.getVTable().getComponentType, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&componentType)), 0)

	return VssComponentType(componentType),
		newVssErrorIfResultNotOK("GetComponentType() failed", HRESULT(result))
}

// GetBackupSucceeded calls the equivalent VSS api.
func (c *IVssComponent) GetBackupSucceeded() (bool, error) {
	var succeeded byte
	result, _, _ := syscall.Syscall(c.getVTable().getBackupSucceeded, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&succeeded)), 0)

	return succeeded != 0,
		newVssErrorIfResultNotOK("GetBackupSucceeded() failed", HRESULT(result))
}

// IsSelectedForRestore calls the equivalent VSS api.
func (c *IVssComponent) IsSelectedForRestore() (bool, error) {
	var selected byte
	result, _, _ := syscall.Syscall(c.getVTable().isSelectedForRestore, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&selected)), 0)

	return selected != 0,
		newVssErrorIfResultNotOK("IsSelectedForRestore() failed", HRESULT(result))
}

// GetFileRestoreStatus calls the equivalent VSS api.
func (c *IVssComponent) GetFileRestoreStatus() (VssFileRestoreStatus, error) {
	var status uint32
	result, _, _ := syscall.Syscall(c.getVTable().getFileRestoreStatus, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&status)), 0)

	return VssFileRestoreStatus(status),
		newVssErrorIfResultNotOK("GetFileRestoreStatus() failed", HRESULT(result))
}
