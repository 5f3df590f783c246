package vss

// VssUsageType is a custom type for the windows api VSS_USAGE_TYPE type.
type VssUsageType uint

// VssUsageType constant values necessary for using VSS api.
const (
	VSS_UT_UNDEFINED VssUsageType = iota
	VSS_UT_BOOTABLESYSTEMSTATE
	VSS_UT_SYSTEMSERVICE
	VSS_UT_USERDATA
	VSS_UT_OTHER
)

// VssSourceType is a custom type for the windows api VSS_SOURCE_TYPE type.
type VssSourceType uint

// VssSourceType constant values necessary for using VSS api.
const (
	VSS_ST_UNDEFINED VssSourceType = iota
	VSS_ST_TRANSACTEDDB
	VSS_ST_NONTRANSACTEDDB
	VSS_ST_OTHER
)

// VssRestoreMethod is a custom type for the windows api VSS_RESTOREMETHOD_ENUM type.
type VssRestoreMethod uint

// VssRestoreMethod constant values necessary for using VSS api.
const (
	VSS_RME_UNDEFINED VssRestoreMethod = iota
	VSS_RME_RESTORE_IF_NOT_THERE
	VSS_RME_RESTORE_IF_CAN_REPLACE
	VSS_RME_STOP_RESTORE_START
	VSS_RME_RESTORE_TO_ALTERNATE_LOCATION
	VSS_RME_RESTORE_AT_REBOOT
	VSS_RME_RESTORE_AT_REBOOT_IF_CANNOT_REPLACE
	VSS_RME_CUSTOM
	VSS_RME_RESTORE_STOP_START
)

// VssWriterRestore is a custom type for the windows api VSS_WRITERRESTORE_ENUM type.
type VssWriterRestore uint

// VssWriterRestore constant values necessary for using VSS api.
const (
	VSS_WRE_UNDEFINED VssWriterRestore = iota
	VSS_WRE_NEVER
	VSS_WRE_IF_REPLACE_FAILS
	VSS_WRE_ALWAYS
)

// VssComponentType is a custom type for the windows api VSS_COMPONENT_TYPE type.
type VssComponentType uint

// VssComponentType constant values necessary for using VSS api.
const (
	VSS_CT_UNDEFINED VssComponentType = iota
	VSS_CT_DATABASE
	VSS_CT_FILEGROUP
)

// VssWriterState is a custom type for the windows api VSS_WRITER_STATE type.
type VssWriterState uint

// VssWriterState constant values necessary for using VSS api.
const (
	VSS_WS_UNKNOWN VssWriterState = iota
	VSS_WS_STABLE
	VSS_WS_WAITING_FOR_FREEZE
	VSS_WS_WAITING_FOR_THAW
	VSS_WS_WAITING_FOR_POST_SNAPSHOT
	VSS_WS_WAITING_FOR_BACKUP_COMPLETE
	VSS_WS_FAILED_AT_IDENTIFY
	VSS_WS_FAILED_AT_PREPARE_BACKUP
	VSS_WS_FAILED_AT_PREPARE_SNAPSHOT
	VSS_WS_FAILED_AT_FREEZE
	VSS_WS_FAILED_AT_THAW
	VSS_WS_FAILED_AT_POST_SNAPSHOT
	VSS_WS_FAILED_AT_BACKUP_COMPLETE
	VSS_WS_FAILED_AT_PRE_RESTORE
	VSS_WS_FAILED_AT_POST_RESTORE
	VSS_WS_FAILED_AT_BACKUPSHUTDOWN
	VSS_WS_COUNT
)

// writerStateToString maps a VssWriterState value to a human readable string.
var writerStateToString = map[VssWriterState]string{
	VSS_WS_UNKNOWN:                     "unknown",
	VSS_WS_STABLE:                      "stable",
	VSS_WS_WAITING_FOR_FREEZE:          "waiting-for-freeze",
	VSS_WS_WAITING_FOR_THAW:            "waiting-for-thaw",
	VSS_WS_WAITING_FOR_POST_SNAPSHOT:   "waiting-for-post-snapshot",
	VSS_WS_WAITING_FOR_BACKUP_COMPLETE: "waiting-for-backup-complete",
	VSS_WS_FAILED_AT_IDENTIFY:          "failed-at-identify",
	VSS_WS_FAILED_AT_PREPARE_BACKUP:    "failed-at-prepare-backup",
	VSS_WS_FAILED_AT_PREPARE_SNAPSHOT:  "failed-at-prepare-snapshot",
	VSS_WS_FAILED_AT_FREEZE:            "failed-at-freeze",
	VSS_WS_FAILED_AT_THAW:              "failed-at-thaw",
	VSS_WS_FAILED_AT_POST_SNAPSHOT:     "failed-at-post-snapshot",
	VSS_WS_FAILED_AT_BACKUP_COMPLETE:   "failed-at-backup-complete",
	VSS_WS_FAILED_AT_PRE_RESTORE:       "failed-at-pre-restore",
	VSS_WS_FAILED_AT_POST_RESTORE:      "failed-at-post-restore",
	VSS_WS_FAILED_AT_BACKUPSHUTDOWN:    "failed-at-backup-shutdown",
}

// Str converts a VssWriterState to a human readable string.
func (s VssWriterState) Str() string {
	if i, ok := writerStateToString[s]; ok {
		return i
	}

	return "unknown"
}

// Failed reports whether the writer state denotes a failure.
func (s VssWriterState) Failed() bool {
	return s >= VSS_WS_FAILED_AT_IDENTIFY && s <= VSS_WS_FAILED_AT_BACKUPSHUTDOWN
}

// VssComponentFlags is a custom type for the windows api VSS_COMPONENT_FLAGS type.
type VssComponentFlags uint

// VssComponentFlags constant values necessary for using VSS api.
const (
	VSS_CF_BACKUP_RECOVERY       VssComponentFlags = 0x00000001
	VSS_CF_APP_ROLLBACK_RECOVERY VssComponentFlags = 0x00000002
	VSS_CF_NOT_SYSTEM_STATE      VssComponentFlags = 0x00000004
)

// VssFileRestoreStatus is a custom type for the windows api
// VSS_FILE_RESTORE_STATUS type.
type VssFileRestoreStatus uint

// VssFileRestoreStatus constant values necessary for using VSS api.
const (
	VSS_RS_UNDEFINED VssFileRestoreStatus = iota
	VSS_RS_NONE
	VSS_RS_ALL
	VSS_RS_FAILED
)

// VssRestoreTarget is a custom type for the windows api VSS_RESTORE_TARGET type.
type VssRestoreTarget uint

// VssRestoreTarget constant values necessary for using VSS api.
const (
	VSS_RT_UNDEFINED VssRestoreTarget = iota
	VSS_RT_ORIGINAL
	VSS_RT_ALTERNATE
	VSS_RT_DIRECTED
	VSS_RT_ORIGINAL_LOCATION
)
