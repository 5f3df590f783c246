package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectTypeValues(t *testing.T) {
	assert.Equal(t, VssObjectType(0), VSS_OBJECT_UNKNOWN)
	assert.Equal(t, VssObjectType(1), VSS_OBJECT_NONE)
	assert.Equal(t, VssObjectType(2), VSS_OBJECT_SNAPSHOT_SET)
	assert.Equal(t, VssObjectType(3), VSS_OBJECT_SNAPSHOT)
	assert.Equal(t, VssObjectType(4), VSS_OBJECT_PROVIDER)
}

func TestSnapshotStateValues(t *testing.T) {
	assert.Equal(t, VssSnapshotState(7), VSS_SS_COMMITTED)
	assert.Equal(t, VssSnapshotState(12), VSS_SS_CREATED)
	assert.Equal(t, VssSnapshotState(14), VSS_SS_DELETED)

	assert.Equal(t, "created", VSS_SS_CREATED.Str())
	assert.Equal(t, "unknown", VSS_SS_COUNT.Str())
}

func TestSnapshotContexts(t *testing.T) {
	// contexts are compositions of volume snapshot attributes
	assert.Equal(t, VssVolumeSnapshotAttribute(0), VSS_CTX_BACKUP)
	assert.Equal(t, VSS_VOLSNAP_ATTR_NO_WRITERS, VSS_CTX_FILE_SHARE_BACKUP)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x19), VSS_CTX_NAS_ROLLBACK)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x09), VSS_CTX_APP_ROLLBACK)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x1d), VSS_CTX_CLIENT_ACCESSIBLE)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x0d), VSS_CTX_CLIENT_ACCESSIBLE_WRITERS)
	assert.Equal(t, VssVolumeSnapshotAttribute(0xffffffff), VSS_CTX_ALL)
}

func TestVolumeSnapshotAttributeValues(t *testing.T) {
	assert.Equal(t, VssVolumeSnapshotAttribute(0x00000001), VSS_VOLSNAP_ATTR_PERSISTENT)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x00010000), VSS_VOLSNAP_ATTR_HARDWARE_ASSISTED)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x00100000), VSS_VOLSNAP_ATTR_EXPOSED_LOCALLY)
	assert.Equal(t, VssVolumeSnapshotAttribute(0x04000000), VSS_VOLSNAP_ATTR_FILE_SHARE)
}

func TestBackupTypeValues(t *testing.T) {
	assert.Equal(t, VssBackup(1), VSS_BT_FULL)
	assert.Equal(t, VssBackup(5), VSS_BT_COPY)
	assert.Equal(t, VssBackup(6), VSS_BT_OTHER)
}

func TestApplicationLevelValues(t *testing.T) {
	// VSS_APP_AUTO is the only negative value in the enum
	assert.Equal(t, VssApplicationLevel(-1), VSS_APP_AUTO)
	assert.Equal(t, VssApplicationLevel(4), VSS_APP_SYSTEM_RM)
}

func TestProviderTypeStr(t *testing.T) {
	assert.Equal(t, "system", VSS_PROV_SYSTEM.Str())
	assert.Equal(t, "software", VSS_PROV_SOFTWARE.Str())
	assert.Equal(t, "unknown", VssProviderType(99).Str())
}

func TestSnapshotPropertyIDValues(t *testing.T) {
	assert.Equal(t, VssSnapshotPropertyID(0x0000000A), VSS_SPROPID_PROVIDER_ID)
	assert.Equal(t, VssSnapshotPropertyID(0x0000000D), VSS_SPROPID_STATUS)
}

func TestFileSpecBackupTypeValues(t *testing.T) {
	assert.Equal(t, VssFileSpecBackupType(0x0000000F), VSS_FSBT_ALL_BACKUP_REQUIRED)
	assert.Equal(t, VssFileSpecBackupType(0x00000F00), VSS_FSBT_ALL_SNAPSHOT_REQUIRED)
}
