//go:build windows

package vss

import (
	"fmt"
	"runtime"
	"strings"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// providerMicrosoftSoftware is the id of the in-box software provider.
var providerMicrosoftSoftware = ole.NewGUID("{b5946137-7b9f-4925-af80-51abd60b20d5}")

// Snapshot represents a single shadow copy within a snapshot set.
type Snapshot struct {
	backupComponents *IVssBackupComponents
	snapshotID       ole.GUID
	properties       VssSnapshotProperties
}

// SnapshotSet represents one or more shadow copies created atomically.
type SnapshotSet struct {
	backupComponents *IVssBackupComponents
	timeoutMillis    uint32

	SnapshotSetID ole.GUID
	Snapshots     []Snapshot
}

// ID returns the id of the snapshot.
func (s *Snapshot) ID() ole.GUID {
	return s.snapshotID
}

// DeviceObject returns the root path to access the snapshot files and
// folders.
func (s *Snapshot) DeviceObject() string {
	return s.properties.GetSnapshotDeviceObject()
}

// OriginalVolume returns the name of the snapshotted volume.
func (s *Snapshot) OriginalVolume() string {
	return s.properties.GetOriginalVolumeName()
}

// Info decodes the snapshot properties.
func (s *Snapshot) Info() SnapshotInfo {
	return s.properties.Info()
}

// MountPoints returns all mountpoints below the snapshotted volume, so
// callers can skip paths that a single-volume snapshot does not cover.
func (s *Snapshot) MountPoints() ([]string, error) {
	return enumerateMountedFolders(s.properties.GetOriginalVolumeName())
}

// HasSufficientPrivileges returns nil if the user is allowed to use VSS.
func HasSufficientPrivileges() error {
	oleIUnknown, err := initializeVssCOMInterface()
	if oleIUnknown != nil {
		oleIUnknown.Release()
	}

	return err
}

// getProviderID resolves the provider selector from Options into a provider
// id. An empty selector picks the system default, "ms" the in-box software
// provider; anything else is matched against the id, name and version of the
// registered providers.
func getProviderID(provider string) (*ole.GUID, error) {
	selector := strings.ToLower(strings.TrimSpace(provider))
	switch selector {
	case "":
		return ole.IID_NULL, nil
	case "ms":
		return providerMicrosoftSoftware, nil
	}

	providers, err := ListProviders()
	if err != nil {
		return nil, err
	}

	for i := range providers {
		p := &providers[i]
		if strings.EqualFold(p.ProviderID, selector) || strings.EqualFold(p.Name, selector) {
			return ole.NewGUID(p.ProviderID), nil
		}
	}

	return nil, newVssTextError(fmt.Sprintf("provider %q not found", provider))
}

// assertMatchingArchitecture returns an error when the process architecture
// does not match the OS architecture. The VSS api fails in obscure ways when
// called through WOW64.
func assertMatchingArchitecture() error {
	is64Bit, err := isRunningOn64BitWindows()
	if err != nil {
		return newVssTextError(fmt.Sprintf(
			"Failed to detect windows architecture: %s", err.Error()))
	}

	if is64Bit && runtime.GOARCH == "386" {
		return newVssTextError(fmt.Sprintf("executables compiled for %s can't use "+
			"VSS on other architectures. Please use an executable compiled for your platform.",
			runtime.GOARCH))
	}

	return nil
}

// CreateSnapshot creates a snapshot set containing a single volume. If
// creating the snapshot doesn't finish within the timeout an error is
// returned.
func CreateSnapshot(volume string, opt Options) (*SnapshotSet, error) {
	return CreateSnapshots([]string{volume}, opt)
}

// CreateSnapshots creates one snapshot set covering all given volumes. If
// creating the snapshots doesn't finish within the timeout an error is
// returned.
func CreateSnapshots(volumes []string, opt Options) (*SnapshotSet, error) {
	if err := assertMatchingArchitecture(); err != nil {
		return nil, err
	}

	timeoutMillis := opt.timeoutMillis()

	providerID, err := getProviderID(opt.Provider)
	if err != nil {
		return nil, err
	}

	backupComponents, err := createVssBackupComponents()
	if err != nil {
		return nil, err
	}

	if err := backupComponents.InitializeForBackup(); err != nil {
		backupComponents.Release()
		return nil, err
	}

	if err := backupComponents.SetContext(opt.Context); err != nil {
		backupComponents.Release()
		return nil, err
	}

	if err := backupComponents.SetBackupState(false, opt.BackupBootableSystemState,
		opt.BackupType, false); err != nil {
		backupComponents.Release()
		return nil, err
	}

	err = callAsyncFunctionAndWait(backupComponents.GatherWriterMetadata,
		"GatherWriterMetadata", timeoutMillis)
	if err != nil {
		backupComponents.Release()
		return nil, err
	}

	for _, volume := range volumes {
		if isSupported, err := backupComponents.IsVolumeSupported(providerID, volume); err != nil {
			backupComponents.Release()
			return nil, err
		} else if !isSupported {
			backupComponents.Release()
			return nil, newVssTextError(fmt.Sprintf("Snapshots are not supported for volume "+
				"%s", volume))
		}
	}

	snapshotSetID, err := backupComponents.StartSnapshotSet()
	if err != nil {
		backupComponents.Release()
		return nil, err
	}

	var snapshotIDs []ole.GUID
	for _, volume := range volumes {
		snapshotID, err := backupComponents.AddToSnapshotSet(volume, providerID)
		if err != nil {
			backupComponents.Release()
			return nil, err
		}

		snapshotIDs = append(snapshotIDs, snapshotID)
	}

	err = callAsyncFunctionAndWait(backupComponents.PrepareForBackup, "PrepareForBackup",
		timeoutMillis)
	if err != nil {
		// After calling PrepareForBackup one needs to call AbortBackup() before
		// releasing the VSS instance for proper cleanup.
		backupComponents.AbortBackup()
		backupComponents.Release()
		return nil, err
	}

	err = callAsyncFunctionAndWait(backupComponents.DoSnapshotSet, "DoSnapshotSet",
		timeoutMillis)
	if err != nil {
		backupComponents.AbortBackup()
		backupComponents.Release()
		return nil, err
	}

	var snapshots []Snapshot
	for _, id := range snapshotIDs {
		var properties VssSnapshotProperties
		err = backupComponents.GetSnapshotProperties(id, &properties)
		if err != nil {
			backupComponents.AbortBackup()
			backupComponents.Release()
			return nil, err
		}

		snapshots = append(snapshots, Snapshot{
			backupComponents: backupComponents,
			snapshotID:       id,
			properties:       properties,
		})
	}

	return &SnapshotSet{
		backupComponents: backupComponents,
		timeoutMillis:    timeoutMillis,
		SnapshotSetID:    snapshotSetID,
		Snapshots:        snapshots,
	}, nil
}

// Delete deletes the whole snapshot set and releases the requester instance.
func (set *SnapshotSet) Delete() error {
	for i := range set.Snapshots {
		if err := vssFreeSnapshotProperties(&set.Snapshots[i].properties); err != nil {
			return err
		}
	}

	if set.backupComponents == nil {
		return nil
	}
	defer set.backupComponents.Release()

	err := callAsyncFunctionAndWait(set.backupComponents.BackupComplete, "BackupComplete",
		set.timeoutMillis)
	if err != nil {
		return err
	}

	if _, _, e := set.backupComponents.DeleteSnapshotSet(set.SnapshotSetID); e != nil {
		set.backupComponents.AbortBackup()
		return newVssTextError(fmt.Sprintf("Failed to delete snapshot set %s : %s",
			set.SnapshotSetID.String(), e.Error()))
	}

	return nil
}

// Delete deletes the single snapshot. The snapshot set the snapshot belongs
// to stays usable.
func (s *Snapshot) Delete() error {
	if err := vssFreeSnapshotProperties(&s.properties); err != nil {
		return err
	}

	if s.backupComponents == nil {
		return nil
	}

	if _, _, e := s.backupComponents.DeleteSnapshot(s.snapshotID); e != nil {
		return newVssTextError(fmt.Sprintf("Failed to delete snapshot: %s", e.Error()))
	}

	return nil
}

// newQuerySession creates a requester instance bound to the VSS_CTX_ALL
// context, as needed for operations on snapshots created elsewhere.
func newQuerySession() (*IVssBackupComponents, error) {
	backupComponents, err := createVssBackupComponents()
	if err != nil {
		return nil, err
	}

	if err := backupComponents.InitializeForBackup(); err != nil {
		backupComponents.Release()
		return nil, err
	}

	if err := backupComponents.SetContext(VSS_CTX_ALL); err != nil {
		backupComponents.Release()
		return nil, err
	}

	return backupComponents, nil
}

// ListSnapshots enumerates all shadow copies known to the service.
func ListSnapshots() ([]SnapshotInfo, error) {
	backupComponents, err := newQuerySession()
	if err != nil {
		return nil, err
	}
	defer backupComponents.Release()

	enum, err := backupComponents.Query(VSS_OBJECT_SNAPSHOT)
	if err != nil {
		return nil, err
	}
	defer enum.Release()

	var snapshots []SnapshotInfo
	for {
		var properties VssObjectProperties
		fetched, err := enum.Next(1, unsafe.Pointer(&properties))
		if err != nil {
			return nil, err
		}
		if fetched == 0 {
			break
		}

		if properties.Type() != VSS_OBJECT_SNAPSHOT {
			continue
		}

		snapshot := properties.Snapshot()
		snapshots = append(snapshots, snapshot.Info())
		if err := vssFreeSnapshotProperties(snapshot); err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

// ListProviders enumerates the registered snapshot providers.
func ListProviders() ([]ProviderInfo, error) {
	// ensure COM is initialized before use
	ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)

	comInterface, err := ole.CreateInstance(CLSID_VSS_COORDINATOR, UIID_IVSS_ADMIN)
	if err != nil {
		return nil, err
	}

	vssAdmin := (*IVSSAdmin)(unsafe.Pointer(comInterface))
	defer vssAdmin.Release()

	enum, err := vssAdmin.QueryProviders()
	if err != nil {
		return nil, err
	}
	defer enum.Release()

	var providers []ProviderInfo
	for {
		var properties VssObjectProperties
		fetched, err := enum.Next(1, unsafe.Pointer(&properties))
		if err != nil {
			return nil, err
		}
		if fetched == 0 {
			break
		}

		provider := properties.Provider()
		providers = append(providers, provider.Info())
		vssFreeProviderProperties(provider)
	}

	return providers, nil
}

// DeleteSnapshotByID deletes a shadow copy created by any requester.
func DeleteSnapshotByID(snapshotID string) error {
	id := ole.NewGUID(snapshotID)
	if id == nil {
		return newVssTextError(fmt.Sprintf("invalid snapshot id %q", snapshotID))
	}

	backupComponents, err := newQuerySession()
	if err != nil {
		return err
	}
	defer backupComponents.Release()

	_, _, err = backupComponents.DeleteSnapshot(*id)
	return err
}

// ExposeSnapshotByID surfaces an existing shadow copy at the given location.
// The expose argument is either an unused drive letter or an empty directory;
// the returned string is the exposed path.
func ExposeSnapshotByID(snapshotID string, expose string) (string, error) {
	id := ole.NewGUID(snapshotID)
	if id == nil {
		return "", newVssTextError(fmt.Sprintf("invalid snapshot id %q", snapshotID))
	}

	backupComponents, err := newQuerySession()
	if err != nil {
		return "", err
	}
	defer backupComponents.Release()

	return backupComponents.ExposeSnapshot(*id,
		VSS_VOLSNAP_ATTR_EXPOSED_LOCALLY, expose)
}

// WriterStatuses gathers the state of all writers on the system.
func WriterStatuses(opt Options) ([]WriterStatus, error) {
	timeoutMillis := opt.timeoutMillis()

	backupComponents, err := createVssBackupComponents()
	if err != nil {
		return nil, err
	}
	defer backupComponents.Release()

	if err := backupComponents.InitializeForBackup(); err != nil {
		return nil, err
	}

	err = callAsyncFunctionAndWait(backupComponents.GatherWriterMetadata,
		"GatherWriterMetadata", timeoutMillis)
	if err != nil {
		return nil, err
	}
	defer backupComponents.FreeWriterMetadata()

	err = callAsyncFunctionAndWait(backupComponents.GatherWriterStatus,
		"GatherWriterStatus", timeoutMillis)
	if err != nil {
		return nil, err
	}
	defer backupComponents.FreeWriterStatus()

	count, err := backupComponents.GetWriterStatusCount()
	if err != nil {
		return nil, err
	}

	statuses := make([]WriterStatus, 0, count)
	for i := uint32(0); i < count; i++ {
		status, err := backupComponents.GetWriterStatus(i)
		if err != nil {
			return nil, err
		}

		statuses = append(statuses, status)
	}

	return statuses, nil
}

// asyncCallFunc is the callback type for callAsyncFunctionAndWait.
type asyncCallFunc func() (*IVSSAsync, error)

// callAsyncFunctionAndWait calls an async function and waits for it to either
// finish or timeout.
func callAsyncFunctionAndWait(function asyncCallFunc, name string, timeoutInMillis uint32) error {
	iVssAsync, err := function()
	if err != nil {
		return err
	}

	if iVssAsync == nil {
		return newVssTextError(fmt.Sprintf("%s() returned nil", name))
	}

	err = iVssAsync.WaitUntilAsyncFinished(timeoutInMillis)
	iVssAsync.Release()
	return err
}
