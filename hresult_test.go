package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHResultValues(t *testing.T) {
	// spot check a few values against the native headers
	assert.Equal(t, HRESULT(0x00000000), S_OK)
	assert.Equal(t, HRESULT(0x00000001), S_FALSE)
	assert.Equal(t, HRESULT(0x80070005), E_ACCESSDENIED)
	assert.Equal(t, HRESULT(0x80042301), VSS_E_BAD_STATE)
	assert.Equal(t, HRESULT(0x80042306), VSS_E_PROVIDER_VETO)
	assert.Equal(t, HRESULT(0x8004230C), VSS_E_VOLUME_NOT_SUPPORTED)
	assert.Equal(t, HRESULT(0x8004231B), VSS_E_UNSUPPORTED_CONTEXT)
	assert.Equal(t, HRESULT(0x80042409), VSS_E_WRITER_STATUS_NOT_AVAILABLE)
	assert.Equal(t, HRESULT(0x00042309), VSS_S_ASYNC_PENDING)
	assert.Equal(t, HRESULT(0x0004230A), VSS_S_ASYNC_FINISHED)
	assert.Equal(t, HRESULT(0x0004230B), VSS_S_ASYNC_CANCELLED)
}

func TestHResultStr(t *testing.T) {
	assert.Equal(t, "S_OK", S_OK.Str())
	assert.Equal(t, "VSS_E_BAD_STATE", VSS_E_BAD_STATE.Str())
	assert.Equal(t, "VSS_S_ASYNC_FINISHED", VSS_S_ASYNC_FINISHED.Str())
	assert.Equal(t, "UNKNOWN", HRESULT(0xdeadbeef).Str())
}

func TestHResultFailed(t *testing.T) {
	assert.False(t, S_OK.Failed())
	assert.False(t, S_FALSE.Failed())
	assert.False(t, VSS_S_ASYNC_PENDING.Failed())
	assert.True(t, E_ACCESSDENIED.Failed())
	assert.True(t, VSS_E_BAD_STATE.Failed())
}
