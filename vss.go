// Package vss binds the native api surface of the Windows Volume Shadow
// Copy Service: the enumerations, structures and COM interfaces declared
// in vss.h, vswriter.h, vsbackup.h, vsmgmt.h, vsprov.h and vdslun.h, plus
// the VssApi.dll exports needed to drive a backup requester.
//
// Enumerations mirror the native underlying values exactly and structures
// mirror the native field order, so values may be passed to and from the
// operating system unmodified. A small high-level layer wraps the snapshot
// set lifecycle; everything else is a faithful declaration table.
package vss

// VssObjectType is a custom type for the windows api VSS_OBJECT_TYPE type.
type VssObjectType uint

// VssObjectType constant values necessary for using VSS api.
const (
	VSS_OBJECT_UNKNOWN VssObjectType = iota
	VSS_OBJECT_NONE
	VSS_OBJECT_SNAPSHOT_SET
	VSS_OBJECT_SNAPSHOT
	VSS_OBJECT_PROVIDER
	VSS_OBJECT_TYPE_COUNT
)

// VssSnapshotState is a custom type for the windows api VSS_SNAPSHOT_STATE type.
type VssSnapshotState uint

// VssSnapshotState constant values necessary for using VSS api.
const (
	VSS_SS_UNKNOWN VssSnapshotState = iota
	VSS_SS_PREPARING
	VSS_SS_PROCESSING_PREPARE
	VSS_SS_PREPARED
	VSS_SS_PROCESSING_PRECOMMIT
	VSS_SS_PRECOMMITTED
	VSS_SS_PROCESSING_COMMIT
	VSS_SS_COMMITTED
	VSS_SS_PROCESSING_POSTCOMMIT
	VSS_SS_PROCESSING_PREFINALCOMMIT
	VSS_SS_PREFINALCOMMITTED
	VSS_SS_PROCESSING_POSTFINALCOMMIT
	VSS_SS_CREATED
	VSS_SS_ABORTED
	VSS_SS_DELETED
	VSS_SS_POSTCOMMITTED
	VSS_SS_COUNT
)

// snapshotStateToString maps a VssSnapshotState value to a human readable string.
var snapshotStateToString = map[VssSnapshotState]string{
	VSS_SS_UNKNOWN:                    "unknown",
	VSS_SS_PREPARING:                  "preparing",
	VSS_SS_PROCESSING_PREPARE:         "processing-prepare",
	VSS_SS_PREPARED:                   "prepared",
	VSS_SS_PROCESSING_PRECOMMIT:       "processing-precommit",
	VSS_SS_PRECOMMITTED:               "precommitted",
	VSS_SS_PROCESSING_COMMIT:          "processing-commit",
	VSS_SS_COMMITTED:                  "committed",
	VSS_SS_PROCESSING_POSTCOMMIT:      "processing-postcommit",
	VSS_SS_PROCESSING_PREFINALCOMMIT:  "processing-prefinalcommit",
	VSS_SS_PREFINALCOMMITTED:          "prefinalcommitted",
	VSS_SS_PROCESSING_POSTFINALCOMMIT: "processing-postfinalcommit",
	VSS_SS_CREATED:                    "created",
	VSS_SS_ABORTED:                    "aborted",
	VSS_SS_DELETED:                    "deleted",
	VSS_SS_POSTCOMMITTED:              "postcommitted",
}

// Str converts a VssSnapshotState to a human readable string.
func (s VssSnapshotState) Str() string {
	if i, ok := snapshotStateToString[s]; ok {
		return i
	}

	return "unknown"
}

// VssVolumeSnapshotAttribute is a custom type for the windows api
// _VSS_VOLUME_SNAPSHOT_ATTRIBUTES type.
// https://docs.microsoft.com/en-us/windows/win32/api/vss/ne-vss-vss_volume_snapshot_attributes
type VssVolumeSnapshotAttribute uint

const (
	VSS_VOLSNAP_ATTR_PERSISTENT           VssVolumeSnapshotAttribute = 0x00000001
	VSS_VOLSNAP_ATTR_NO_AUTORECOVERY      VssVolumeSnapshotAttribute = 0x00000002
	VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE    VssVolumeSnapshotAttribute = 0x00000004
	VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE      VssVolumeSnapshotAttribute = 0x00000008
	VSS_VOLSNAP_ATTR_NO_WRITERS           VssVolumeSnapshotAttribute = 0x00000010
	VSS_VOLSNAP_ATTR_TRANSPORTABLE        VssVolumeSnapshotAttribute = 0x00000020
	VSS_VOLSNAP_ATTR_NOT_SURFACED         VssVolumeSnapshotAttribute = 0x00000040
	VSS_VOLSNAP_ATTR_NOT_TRANSACTED       VssVolumeSnapshotAttribute = 0x00000080
	VSS_VOLSNAP_ATTR_HARDWARE_ASSISTED    VssVolumeSnapshotAttribute = 0x00010000
	VSS_VOLSNAP_ATTR_DIFFERENTIAL         VssVolumeSnapshotAttribute = 0x00020000
	VSS_VOLSNAP_ATTR_PLEX                 VssVolumeSnapshotAttribute = 0x00040000
	VSS_VOLSNAP_ATTR_IMPORTED             VssVolumeSnapshotAttribute = 0x00080000
	VSS_VOLSNAP_ATTR_EXPOSED_LOCALLY      VssVolumeSnapshotAttribute = 0x00100000
	VSS_VOLSNAP_ATTR_EXPOSED_REMOTELY     VssVolumeSnapshotAttribute = 0x00200000
	VSS_VOLSNAP_ATTR_AUTORECOVER          VssVolumeSnapshotAttribute = 0x00400000
	VSS_VOLSNAP_ATTR_ROLLBACK_RECOVERY    VssVolumeSnapshotAttribute = 0x00800000
	VSS_VOLSNAP_ATTR_DELAYED_POSTSNAPSHOT VssVolumeSnapshotAttribute = 0x01000000
	VSS_VOLSNAP_ATTR_TXF_RECOVERY         VssVolumeSnapshotAttribute = 0x02000000
	VSS_VOLSNAP_ATTR_FILE_SHARE           VssVolumeSnapshotAttribute = 0x04000000
)

// VssContext constant values necessary for using VSS api. Contexts are
// compositions of volume snapshot attributes.
const (
	VSS_CTX_BACKUP                    VssVolumeSnapshotAttribute = 0x00000000
	VSS_CTX_FILE_SHARE_BACKUP         VssVolumeSnapshotAttribute = VSS_VOLSNAP_ATTR_NO_WRITERS
	VSS_CTX_NAS_ROLLBACK              VssVolumeSnapshotAttribute = VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE | VSS_VOLSNAP_ATTR_NO_WRITERS
	VSS_CTX_APP_ROLLBACK              VssVolumeSnapshotAttribute = VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE
	VSS_CTX_CLIENT_ACCESSIBLE         VssVolumeSnapshotAttribute = VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE | VSS_VOLSNAP_ATTR_NO_WRITERS
	VSS_CTX_CLIENT_ACCESSIBLE_WRITERS VssVolumeSnapshotAttribute = VSS_VOLSNAP_ATTR_PERSISTENT | VSS_VOLSNAP_ATTR_CLIENT_ACCESSIBLE | VSS_VOLSNAP_ATTR_NO_AUTO_RELEASE
	VSS_CTX_ALL                       VssVolumeSnapshotAttribute = 0xffffffff
)

// VssBackup is a custom type for the windows api VSS_BACKUP_TYPE type.
type VssBackup uint

// VssBackup constant values necessary for using VSS api.
const (
	VSS_BT_UNDEFINED VssBackup = iota
	VSS_BT_FULL
	VSS_BT_INCREMENTAL
	VSS_BT_DIFFERENTIAL
	VSS_BT_LOG
	VSS_BT_COPY
	VSS_BT_OTHER
)

// VssRestoreType is a custom type for the windows api VSS_RESTORE_TYPE type.
type VssRestoreType uint

// VssRestoreType constant values necessary for using VSS api.
const (
	VSS_RTYPE_UNDEFINED VssRestoreType = iota
	VSS_RTYPE_BY_COPY
	VSS_RTYPE_IMPORT
	VSS_RTYPE_OTHER
)

// VssRollforwardType is a custom type for the windows api VSS_ROLLFORWARD_TYPE type.
type VssRollforwardType uint

// VssRollforwardType constant values necessary for using VSS api.
const (
	VSS_RF_UNDEFINED VssRollforwardType = iota
	VSS_RF_NONE
	VSS_RF_ALL
	VSS_RF_PARTIAL
)

// VssProviderType is a custom type for the windows api VSS_PROVIDER_TYPE type.
type VssProviderType uint

// VssProviderType constant values necessary for using VSS api.
const (
	VSS_PROV_UNKNOWN VssProviderType = iota
	VSS_PROV_SYSTEM
	VSS_PROV_SOFTWARE
	VSS_PROV_HARDWARE
	VSS_PROV_FILESHARE
)

// providerTypeToString maps a VssProviderType value to a human readable string.
var providerTypeToString = map[VssProviderType]string{
	VSS_PROV_UNKNOWN:   "unknown",
	VSS_PROV_SYSTEM:    "system",
	VSS_PROV_SOFTWARE:  "software",
	VSS_PROV_HARDWARE:  "hardware",
	VSS_PROV_FILESHARE: "fileshare",
}

// Str converts a VssProviderType to a human readable string.
func (t VssProviderType) Str() string {
	if i, ok := providerTypeToString[t]; ok {
		return i
	}

	return "unknown"
}

// VssApplicationLevel is a custom type for the windows api
// VSS_APPLICATION_LEVEL type. VSS_APP_AUTO is negative in the native header,
// hence the signed underlying type.
type VssApplicationLevel int

// VssApplicationLevel constant values necessary for using VSS api.
const (
	VSS_APP_UNKNOWN   VssApplicationLevel = 0
	VSS_APP_SYSTEM    VssApplicationLevel = 1
	VSS_APP_BACK_END  VssApplicationLevel = 2
	VSS_APP_FRONT_END VssApplicationLevel = 3
	VSS_APP_SYSTEM_RM VssApplicationLevel = 4
	VSS_APP_AUTO      VssApplicationLevel = -1
)

// VssSnapshotCompatibility is a custom type for the windows api
// VSS_SNAPSHOT_COMPATIBILITY type.
type VssSnapshotCompatibility uint

// VssSnapshotCompatibility constant values necessary for using VSS api.
const (
	VSS_SC_DISABLE_DEFRAG       VssSnapshotCompatibility = 0x00000001
	VSS_SC_DISABLE_CONTENTINDEX VssSnapshotCompatibility = 0x00000002
)

// VssSnapshotPropertyID is a custom type for the windows api
// VSS_SNAPSHOT_PROPERTY_ID type.
type VssSnapshotPropertyID uint

// VssSnapshotPropertyID constant values necessary for using VSS api.
const (
	VSS_SPROPID_UNKNOWN             VssSnapshotPropertyID = 0x00000000
	VSS_SPROPID_SNAPSHOT_ID         VssSnapshotPropertyID = 0x00000001
	VSS_SPROPID_SNAPSHOT_SET_ID     VssSnapshotPropertyID = 0x00000002
	VSS_SPROPID_SNAPSHOTS_COUNT     VssSnapshotPropertyID = 0x00000003
	VSS_SPROPID_SNAPSHOT_DEVICE     VssSnapshotPropertyID = 0x00000004
	VSS_SPROPID_ORIGINAL_VOLUME     VssSnapshotPropertyID = 0x00000005
	VSS_SPROPID_ORIGINATING_MACHINE VssSnapshotPropertyID = 0x00000006
	VSS_SPROPID_SERVICE_MACHINE     VssSnapshotPropertyID = 0x00000007
	VSS_SPROPID_EXPOSED_NAME        VssSnapshotPropertyID = 0x00000008
	VSS_SPROPID_EXPOSED_PATH        VssSnapshotPropertyID = 0x00000009
	VSS_SPROPID_PROVIDER_ID         VssSnapshotPropertyID = 0x0000000A
	VSS_SPROPID_SNAPSHOT_ATTRIBUTES VssSnapshotPropertyID = 0x0000000B
	VSS_SPROPID_CREATION_TIMESTAMP  VssSnapshotPropertyID = 0x0000000C
	VSS_SPROPID_STATUS              VssSnapshotPropertyID = 0x0000000D
)

// VssFileSpecBackupType is a custom type for the windows api
// VSS_FILE_SPEC_BACKUP_TYPE type.
type VssFileSpecBackupType uint

// VssFileSpecBackupType constant values necessary for using VSS api.
const (
	VSS_FSBT_FULL_BACKUP_REQUIRED           VssFileSpecBackupType = 0x00000001
	VSS_FSBT_DIFFERENTIAL_BACKUP_REQUIRED   VssFileSpecBackupType = 0x00000002
	VSS_FSBT_INCREMENTAL_BACKUP_REQUIRED    VssFileSpecBackupType = 0x00000004
	VSS_FSBT_LOG_BACKUP_REQUIRED            VssFileSpecBackupType = 0x00000008
	VSS_FSBT_ALL_BACKUP_REQUIRED            VssFileSpecBackupType = 0x0000000F
	VSS_FSBT_FULL_SNAPSHOT_REQUIRED         VssFileSpecBackupType = 0x00000100
	VSS_FSBT_DIFFERENTIAL_SNAPSHOT_REQUIRED VssFileSpecBackupType = 0x00000200
	VSS_FSBT_INCREMENTAL_SNAPSHOT_REQUIRED  VssFileSpecBackupType = 0x00000400
	VSS_FSBT_LOG_SNAPSHOT_REQUIRED          VssFileSpecBackupType = 0x00000800
	VSS_FSBT_ALL_SNAPSHOT_REQUIRED          VssFileSpecBackupType = 0x00000F00
)
