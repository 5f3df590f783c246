//go:build !windows

package vss

// Snapshot and SnapshotSet are only available on windows; this mirror of the
// exported surface lets consumers compile on all platforms.

// Snapshot represents a single shadow copy within a snapshot set.
type Snapshot struct{}

// SnapshotSet represents one or more shadow copies created atomically.
type SnapshotSet struct {
	Snapshots []Snapshot
}

func errNotSupported() error {
	return newVssTextError("VSS snapshots are only supported on windows")
}

// HasSufficientPrivileges returns nil if the user is allowed to use VSS.
func HasSufficientPrivileges() error {
	return errNotSupported()
}

// CreateSnapshot creates a snapshot set containing a single volume.
func CreateSnapshot(_ string, _ Options) (*SnapshotSet, error) {
	return nil, errNotSupported()
}

// CreateSnapshots creates one snapshot set covering all given volumes.
func CreateSnapshots(_ []string, _ Options) (*SnapshotSet, error) {
	return nil, errNotSupported()
}

// Delete deletes the whole snapshot set.
func (set *SnapshotSet) Delete() error {
	return errNotSupported()
}

// Delete deletes the single snapshot.
func (s *Snapshot) Delete() error {
	return errNotSupported()
}

// DeviceObject returns the root path to access the snapshot files and
// folders.
func (s *Snapshot) DeviceObject() string {
	return ""
}

// OriginalVolume returns the name of the snapshotted volume.
func (s *Snapshot) OriginalVolume() string {
	return ""
}

// Info decodes the snapshot properties.
func (s *Snapshot) Info() SnapshotInfo {
	return SnapshotInfo{}
}

// MountPoints returns all mountpoints below the snapshotted volume.
func (s *Snapshot) MountPoints() ([]string, error) {
	return nil, errNotSupported()
}

// ListSnapshots enumerates all shadow copies known to the service.
func ListSnapshots() ([]SnapshotInfo, error) {
	return nil, errNotSupported()
}

// ListProviders enumerates the registered snapshot providers.
func ListProviders() ([]ProviderInfo, error) {
	return nil, errNotSupported()
}

// DeleteSnapshotByID deletes a shadow copy created by any requester.
func DeleteSnapshotByID(_ string) error {
	return errNotSupported()
}

// ExposeSnapshotByID surfaces an existing shadow copy at the given location.
func ExposeSnapshotByID(_, _ string) (string, error) {
	return "", errNotSupported()
}

// WriterStatuses gathers the state of all writers on the system.
func WriterStatuses(_ Options) ([]WriterStatus, error) {
	return nil, errNotSupported()
}

// GetVolumeNameForVolumeMountPoint clears a volume mount point and gets the
// volume name.
func GetVolumeNameForVolumeMountPoint(mountPoint string) (string, error) {
	return mountPoint, nil
}
