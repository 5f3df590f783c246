package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVssError(t *testing.T) {
	err := newVssError("DoSnapshotSet() failed", VSS_E_BAD_STATE)
	require.Error(t, err)

	var vssErr *VssError
	require.ErrorAs(t, err, &vssErr)
	assert.Equal(t, VSS_E_BAD_STATE, vssErr.HResult())
	assert.Equal(t,
		"VSS error: DoSnapshotSet() failed: VSS_E_BAD_STATE (0x80042301)",
		err.Error())
}

func TestVssErrorIfResultNotOK(t *testing.T) {
	assert.NoError(t, newVssErrorIfResultNotOK("op", S_OK))
	assert.Error(t, newVssErrorIfResultNotOK("op", S_FALSE))
	assert.Error(t, newVssErrorIfResultNotOK("op", VSS_E_UNEXPECTED))
}

func TestVssTextError(t *testing.T) {
	err := newVssTextError("async operation pending")
	require.Error(t, err)
	assert.Equal(t, "VSS error: async operation pending", err.Error())
}
