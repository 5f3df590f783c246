package vss

import (
	"math"
	"time"
)

// ErrorHandler is used to report errors via callback.
type ErrorHandler func(item string, err error) error

// Options bundles the requester-side knobs for creating a snapshot set.
type Options struct {
	// Context selects the snapshot context, one of the VSS_CTX_* values.
	Context VssVolumeSnapshotAttribute

	// BackupType is handed to SetBackupState, one of the VSS_BT_* values.
	BackupType VssBackup

	// BackupBootableSystemState requests that bootable system state is
	// included in the backup.
	BackupBootableSystemState bool

	// Provider selects the snapshot provider by name or GUID string. Empty
	// selects the system default provider.
	Provider string

	// Timeout bounds each asynchronous VSS operation. Zero means the
	// default timeout.
	Timeout time.Duration
}

// DefaultOptions are the options used when the caller passes the zero value.
var DefaultOptions = Options{
	Context:    VSS_CTX_BACKUP,
	BackupType: VSS_BT_COPY,
	Timeout:    180 * time.Second,
}

// timeoutMillis returns the effective timeout in milliseconds, as expected
// by IVssAsync::Wait.
func (o Options) timeoutMillis() uint32 {
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = DefaultOptions.Timeout
	}

	millis := timeout.Milliseconds()
	if millis > math.MaxUint32 {
		millis = math.MaxUint32
	}

	return uint32(millis)
}

// SnapshotInfo describes a single shadow copy, decoded from a native
// VSS_SNAPSHOT_PROP.
type SnapshotInfo struct {
	SnapshotID         string
	SnapshotSetID      string
	SnapshotsCount     uint32
	DeviceObject       string
	OriginalVolume     string
	OriginatingMachine string
	ServiceMachine     string
	ExposedName        string
	ExposedPath        string
	ProviderID         string
	Attributes         VssVolumeSnapshotAttribute
	CreatedAt          time.Time
	State              VssSnapshotState
}

// ProviderInfo describes a registered snapshot provider, decoded from a
// native VSS_PROVIDER_PROP.
type ProviderInfo struct {
	ProviderID string
	Name       string
	Type       VssProviderType
	Version    string
	VersionID  string
	ClassID    string
}

// WriterStatus carries the state of a single writer as reported by
// IVssBackupComponents::GetWriterStatus.
type WriterStatus struct {
	InstanceID string
	WriterID   string
	Name       string
	State      VssWriterState
	Failure    HRESULT
}

// filetimeEpochDelta is the offset between the windows FILETIME epoch
// (January 1, 1601 UTC) and the unix epoch, in 100ns ticks.
const filetimeEpochDelta = 116444736000000000

// filetimeToTime converts a VSS_TIMESTAMP (100ns ticks since the FILETIME
// epoch) into a time.Time. Seconds and sub-second ticks are split before
// scaling so that timestamps near the FILETIME epoch do not overflow the
// nanosecond range of int64.
func filetimeToTime(ts uint64) time.Time {
	d := int64(ts) - filetimeEpochDelta
	return time.Unix(d/1e7, (d%1e7)*100)
}
