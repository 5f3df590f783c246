package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriterStateValues(t *testing.T) {
	assert.Equal(t, VssWriterState(0), VSS_WS_UNKNOWN)
	assert.Equal(t, VssWriterState(1), VSS_WS_STABLE)
	assert.Equal(t, VssWriterState(6), VSS_WS_FAILED_AT_IDENTIFY)
	assert.Equal(t, VssWriterState(15), VSS_WS_FAILED_AT_BACKUPSHUTDOWN)
	assert.Equal(t, VssWriterState(16), VSS_WS_COUNT)
}

func TestWriterStateStr(t *testing.T) {
	assert.Equal(t, "stable", VSS_WS_STABLE.Str())
	assert.Equal(t, "failed-at-freeze", VSS_WS_FAILED_AT_FREEZE.Str())
	assert.Equal(t, "unknown", VSS_WS_COUNT.Str())
}

func TestWriterStateFailed(t *testing.T) {
	assert.False(t, VSS_WS_UNKNOWN.Failed())
	assert.False(t, VSS_WS_STABLE.Failed())
	assert.False(t, VSS_WS_WAITING_FOR_BACKUP_COMPLETE.Failed())
	assert.True(t, VSS_WS_FAILED_AT_IDENTIFY.Failed())
	assert.True(t, VSS_WS_FAILED_AT_BACKUPSHUTDOWN.Failed())
	assert.False(t, VSS_WS_COUNT.Failed())
}

func TestRestoreMethodValues(t *testing.T) {
	assert.Equal(t, VssRestoreMethod(3), VSS_RME_STOP_RESTORE_START)
	assert.Equal(t, VssRestoreMethod(8), VSS_RME_RESTORE_STOP_START)
}

func TestComponentFlagsValues(t *testing.T) {
	assert.Equal(t, VssComponentFlags(0x00000001), VSS_CF_BACKUP_RECOVERY)
	assert.Equal(t, VssComponentFlags(0x00000002), VSS_CF_APP_ROLLBACK_RECOVERY)
	assert.Equal(t, VssComponentFlags(0x00000004), VSS_CF_NOT_SYSTEM_STATE)
}

func TestRestoreTargetValues(t *testing.T) {
	assert.Equal(t, VssRestoreTarget(1), VSS_RT_ORIGINAL)
	assert.Equal(t, VssRestoreTarget(4), VSS_RT_ORIGINAL_LOCATION)
}
