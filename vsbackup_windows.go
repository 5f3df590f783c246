//go:build windows

package vss

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
	"golang.org/x/sys/windows"
)

// UUID_IVSS defines the GUID of IVssBackupComponents.
var UUID_IVSS = ole.NewGUID("{665c1d5f-c218-414d-a05d-7fef5f9d5c86}")

// CLSID_VSS_COORDINATOR defines the GUID of the VSS coordinator class.
var CLSID_VSS_COORDINATOR = ole.NewGUID("{E579AB5F-1CC4-44b4-BED9-DE0991FF0623}")

// UIID_IVSS_ADMIN defines the GUID of IVssAdmin.
var UIID_IVSS_ADMIN = ole.NewGUID("{77ED5996-2F63-11d3-8A39-00C04F72D8E3}")

// UIID_IVSS_EXAMINE_WRITER_METADATA defines the GUID of IVssExamineWriterMetadata.
var UIID_IVSS_EXAMINE_WRITER_METADATA = ole.NewGUID("{47B371D6-F664-4468-8ED5-306FD0F9B9A6}")

// IVssBackupComponents VSS api interface.
type IVssBackupComponents struct {
	ole.IUnknown
}

// IVssBackupComponentsVTable is the vtable for IVssBackupComponents. Slot
// order mirrors vsbackup.h and must never be reordered.
type IVssBackupComponentsVTable struct {
	ole.IUnknownVtbl
	getWriterComponentsCount      uintptr
	getWriterComponents           uintptr
	initializeForBackup           uintptr
	setBackupState                uintptr
	initializeForRestore          uintptr
	setRestoreState               uintptr
	gatherWriterMetadata          uintptr
	getWriterMetadataCount        uintptr
	getWriterMetadata             uintptr
	freeWriterMetadata            uintptr
	addComponent                  uintptr
	prepareForBackup              uintptr
	abortBackup                   uintptr
	gatherWriterStatus            uintptr
	getWriterStatusCount          uintptr
	freeWriterStatus              uintptr
	getWriterStatus               uintptr
	setBackupSucceeded            uintptr
	setBackupOptions              uintptr
	setSelectedForRestore         uintptr
	setRestoreOptions             uintptr
	setAdditionalRestores         uintptr
	setPreviousBackupStamp        uintptr
	saveAsXML                     uintptr
	backupComplete                uintptr
	addAlternativeLocationMapping uintptr
	addRestoreSubcomponent        uintptr
	setFileRestoreStatus          uintptr
	addNewTarget                  uintptr
	setRangesFilePath             uintptr
	preRestore                    uintptr
	postRestore                   uintptr
	setContext                    uintptr
	startSnapshotSet              uintptr
	addToSnapshotSet              uintptr
	doSnapshotSet                 uintptr
	deleteSnapshots               uintptr
	importSnapshots               uintptr
	breakSnapshotSet              uintptr
	getSnapshotProperties         uintptr
	query                         uintptr
	isVolumeSupported             uintptr
	disableWriterClasses          uintptr
	enableWriterClasses           uintptr
	disableWriterInstances        uintptr
	exposeSnapshot                uintptr
	revertToSnapshot              uintptr
	queryRevertStatus             uintptr
}

// getVTable returns the vtable for IVssBackupComponents.
func (vss *IVssBackupComponents) getVTable() *IVssBackupComponentsVTable {
	return (*IVssBackupComponentsVTable)(unsafe.Pointer(vss.RawVTable))
}

// AbortBackup calls the equivalent VSS api.
func (vss *IVssBackupComponents) AbortBackup() error {
	result, _, _ := syscall.Syscall(vss.getVTable().abortBackup, 1,
		uintptr(unsafe.Pointer(vss)), 0, 0)

	return newVssErrorIfResultNotOK("AbortBackup() failed", HRESULT(result))
}

// InitializeForBackup calls the equivalent VSS api.
func (vss *IVssBackupComponents) InitializeForBackup() error {
	result, _, _ := syscall.Syscall(vss.getVTable().initializeForBackup, 2,
		uintptr(unsafe.Pointer(vss)), 0, 0)

	return newVssErrorIfResultNotOK("InitializeForBackup() failed", HRESULT(result))
}

// SetContext calls the equivalent VSS api.
func (vss *IVssBackupComponents) SetContext(context VssVolumeSnapshotAttribute) error {
	result, _, _ := syscall.Syscall(vss.getVTable().setContext, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(context), 0)

	return newVssErrorIfResultNotOK("SetContext() failed", HRESULT(result))
}

// SetBackupState calls the equivalent VSS api.
func (vss *IVssBackupComponents) SetBackupState(selectComponents bool,
	backupBootableSystemState bool, backupType VssBackup, partialFileSupport bool,
) error {
	selectComponentsVal := apiBoolToInt(selectComponents)
	backupBootableSystemStateVal := apiBoolToInt(backupBootableSystemState)
	partialFileSupportVal := apiBoolToInt(partialFileSupport)

	result, _, _ := syscall.Syscall6(vss.getVTable().setBackupState, 5,
		uintptr(unsafe.Pointer(vss)), uintptr(selectComponentsVal),
		uintptr(backupBootableSystemStateVal), uintptr(backupType), uintptr(partialFileSupportVal),
		0)

	return newVssErrorIfResultNotOK("SetBackupState() failed", HRESULT(result))
}

// GatherWriterMetadata calls the equivalent VSS api.
func (vss *IVssBackupComponents) GatherWriterMetadata() (*IVSSAsync, error) {
	var oleIUnknown *ole.IUnknown
	result, _, _ := syscall.Syscall(vss.getVTable().gatherWriterMetadata, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&oleIUnknown)), 0)

	err := newVssErrorIfResultNotOK("GatherWriterMetadata() failed", HRESULT(result))
	return vss.convertToVSSAsync(oleIUnknown, err)
}

// FreeWriterMetadata calls the equivalent VSS api.
func (vss *IVssBackupComponents) FreeWriterMetadata() error {
	result, _, _ := syscall.Syscall(vss.getVTable().freeWriterMetadata, 1,
		uintptr(unsafe.Pointer(vss)), 0, 0)

	return newVssErrorIfResultNotOK("FreeWriterMetadata() failed", HRESULT(result))
}

// GatherWriterStatus calls the equivalent VSS api.
func (vss *IVssBackupComponents) GatherWriterStatus() (*IVSSAsync, error) {
	var oleIUnknown *ole.IUnknown
	result, _, _ := syscall.Syscall(vss.getVTable().gatherWriterStatus, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&oleIUnknown)), 0)

	err := newVssErrorIfResultNotOK("GatherWriterStatus() failed", HRESULT(result))
	return vss.convertToVSSAsync(oleIUnknown, err)
}

// GetWriterStatusCount calls the equivalent VSS api.
func (vss *IVssBackupComponents) GetWriterStatusCount() (uint32, error) {
	var count uint32
	result, _, _ := syscall.Syscall(vss.getVTable().getWriterStatusCount, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&count)), 0)

	return count, newVssErrorIfResultNotOK("GetWriterStatusCount() failed", HRESULT(result))
}

// GetWriterStatus calls the equivalent VSS api for the writer at the given
// index.
func (vss *IVssBackupComponents) GetWriterStatus(index uint32) (WriterStatus, error) {
	var instanceID, writerID ole.GUID
	var name *uint16
	var state uint32
	var failure uint32

	result, _, _ := syscall.Syscall9(vss.getVTable().getWriterStatus, 7,
		uintptr(unsafe.Pointer(vss)), uintptr(index),
		uintptr(unsafe.Pointer(&instanceID)), uintptr(unsafe.Pointer(&writerID)),
		uintptr(unsafe.Pointer(&name)), uintptr(unsafe.Pointer(&state)),
		uintptr(unsafe.Pointer(&failure)), 0, 0)

	if err := newVssErrorIfResultNotOK("GetWriterStatus() failed", HRESULT(result)); err != nil {
		return WriterStatus{}, err
	}

	status := WriterStatus{
		InstanceID: instanceID.String(),
		WriterID:   writerID.String(),
		State:      VssWriterState(state),
		Failure:    HRESULT(failure),
	}

	if name != nil {
		status.Name = ole.UTF16PtrToString(name)
		ole.SysFreeString((*int16)(unsafe.Pointer(name)))
	}

	return status, nil
}

// FreeWriterStatus calls the equivalent VSS api.
func (vss *IVssBackupComponents) FreeWriterStatus() error {
	result, _, _ := syscall.Syscall(vss.getVTable().freeWriterStatus, 1,
		uintptr(unsafe.Pointer(vss)), 0, 0)

	return newVssErrorIfResultNotOK("FreeWriterStatus() failed", HRESULT(result))
}

// convertToVSSAsync looks up the IVSSAsync interface if the given result is
// a success.
func (vss *IVssBackupComponents) convertToVSSAsync(
	oleIUnknown *ole.IUnknown, err error) (*IVSSAsync, error) {
	if err != nil {
		return nil, err
	}

	comInterface, err := queryInterface(oleIUnknown, UIID_IVSS_ASYNC)
	if err != nil {
		return nil, err
	}

	iVssAsync := (*IVSSAsync)(unsafe.Pointer(comInterface))
	return iVssAsync, nil
}

// IsVolumeSupported calls the equivalent VSS api.
func (vss *IVssBackupComponents) IsVolumeSupported(providerID *ole.GUID, volumeName string) (bool, error) {
	volumeNamePointer, err := syscall.UTF16PtrFromString(volumeName)
	if err != nil {
		return false, err
	}

	var isSupportedRaw uint32
	var result uintptr

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(providerID))

		result, _, _ = syscall.Syscall9(vss.getVTable().isVolumeSupported, 7,
			uintptr(unsafe.Pointer(vss)), id[0], id[1], id[2], id[3],
			uintptr(unsafe.Pointer(volumeNamePointer)), uintptr(unsafe.Pointer(&isSupportedRaw)), 0,
			0)
	} else {
		result, _, _ = syscall.Syscall6(vss.getVTable().isVolumeSupported, 4,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(providerID)),
			uintptr(unsafe.Pointer(volumeNamePointer)), uintptr(unsafe.Pointer(&isSupportedRaw)), 0,
			0)
	}

	return isSupportedRaw != 0,
		newVssErrorIfResultNotOK("IsVolumeSupported() failed", HRESULT(result))
}

// StartSnapshotSet calls the equivalent VSS api.
func (vss *IVssBackupComponents) StartSnapshotSet() (ole.GUID, error) {
	var snapshotSetID ole.GUID
	result, _, _ := syscall.Syscall(vss.getVTable().startSnapshotSet, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&snapshotSetID)), 0,
	)

	return snapshotSetID, newVssErrorIfResultNotOK("StartSnapshotSet() failed", HRESULT(result))
}

// AddToSnapshotSet calls the equivalent VSS api.
func (vss *IVssBackupComponents) AddToSnapshotSet(volumeName string, providerID *ole.GUID) (ole.GUID, error) {
	volumeNamePointer, err := syscall.UTF16PtrFromString(volumeName)
	if err != nil {
		return ole.GUID{}, err
	}

	var result uintptr = 0
	var snapshotID ole.GUID

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(providerID))

		result, _, _ = syscall.Syscall9(vss.getVTable().addToSnapshotSet, 7,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(volumeNamePointer)), id[0], id[1],
			id[2], id[3], uintptr(unsafe.Pointer(&snapshotID)), 0, 0)
	} else {
		result, _, _ = syscall.Syscall6(vss.getVTable().addToSnapshotSet, 4,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(volumeNamePointer)),
			uintptr(unsafe.Pointer(providerID)), uintptr(unsafe.Pointer(&snapshotID)), 0, 0)
	}

	return snapshotID, newVssErrorIfResultNotOK("AddToSnapshotSet() failed", HRESULT(result))
}

// PrepareForBackup calls the equivalent VSS api.
func (vss *IVssBackupComponents) PrepareForBackup() (*IVSSAsync, error) {
	var oleIUnknown *ole.IUnknown
	result, _, _ := syscall.Syscall(vss.getVTable().prepareForBackup, 2,
		uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&oleIUnknown)), 0)

	err := newVssErrorIfResultNotOK("PrepareForBackup() failed", HRESULT(result))
	return vss.convertToVSSAsync(oleIUnknown, err)
}

// DoSnapshotSet calls the equivalent VSS api.
func (vss *IVssBackupComponents) DoSnapshotSet() (*IVSSAsync, error) {
	var oleIUnknown *ole.IUnknown
	result, _, _ := syscall.Syscall(vss.getVTable().doSnapshotSet, 2, uintptr(unsafe.Pointer(vss)),
		uintptr(unsafe.Pointer(&oleIUnknown)), 0)

	err := newVssErrorIfResultNotOK("DoSnapshotSet() failed", HRESULT(result))
	return vss.convertToVSSAsync(oleIUnknown, err)
}

// deleteSnapshots calls the equivalent VSS api for a single object, either
// a snapshot or a snapshot set.
func (vss *IVssBackupComponents) deleteSnapshots(objectID ole.GUID,
	objectType VssObjectType) (int32, ole.GUID, error) {
	var deletedSnapshots int32 = 0
	var nondeletedSnapshotID ole.GUID
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&objectID))

		result, _, _ = syscall.Syscall9(vss.getVTable().deleteSnapshots, 9,
			uintptr(unsafe.Pointer(vss)), id[0], id[1], id[2], id[3],
			uintptr(objectType), uintptr(1), uintptr(unsafe.Pointer(&deletedSnapshots)),
			uintptr(unsafe.Pointer(&nondeletedSnapshotID)),
		)
	} else {
		result, _, _ = syscall.Syscall6(vss.getVTable().deleteSnapshots, 6,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&objectID)),
			uintptr(objectType), uintptr(1), uintptr(unsafe.Pointer(&deletedSnapshots)),
			uintptr(unsafe.Pointer(&nondeletedSnapshotID)))
	}

	err := newVssErrorIfResultNotOK("DeleteSnapshots() failed", HRESULT(result))
	return deletedSnapshots, nondeletedSnapshotID, err
}

// DeleteSnapshot calls the equivalent VSS api for a single snapshot.
func (vss *IVssBackupComponents) DeleteSnapshot(snapshotID ole.GUID) (int32, ole.GUID, error) {
	return vss.deleteSnapshots(snapshotID, VSS_OBJECT_SNAPSHOT)
}

// DeleteSnapshotSet calls the equivalent VSS api for a whole snapshot set.
func (vss *IVssBackupComponents) DeleteSnapshotSet(snapshotSetID ole.GUID) (int32, ole.GUID, error) {
	return vss.deleteSnapshots(snapshotSetID, VSS_OBJECT_SNAPSHOT_SET)
}

// GetSnapshotProperties calls the equivalent VSS api.
func (vss *IVssBackupComponents) GetSnapshotProperties(snapshotID ole.GUID,
	properties *VssSnapshotProperties) error {
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&snapshotID))

		result, _, _ = syscall.Syscall6(vss.getVTable().getSnapshotProperties, 6,
			uintptr(unsafe.Pointer(vss)), id[0], id[1], id[2], id[3],
			uintptr(unsafe.Pointer(properties)))
	} else {
		result, _, _ = syscall.Syscall(vss.getVTable().getSnapshotProperties, 3,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&snapshotID)),
			uintptr(unsafe.Pointer(properties)))
	}

	return newVssErrorIfResultNotOK("GetSnapshotProperties() failed", HRESULT(result))
}

// Query calls the equivalent VSS api. The queried object id must be
// GUID_NULL per the native contract; only the returned object type narrows
// the enumeration.
func (vss *IVssBackupComponents) Query(returnedObjectsType VssObjectType) (*IVssEnumObject, error) {
	var enum *IVssEnumObject
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(ole.IID_NULL))

		result, _, _ = syscall.Syscall9(vss.getVTable().query, 8,
			uintptr(unsafe.Pointer(vss)), id[0], id[1], id[2], id[3],
			uintptr(VSS_OBJECT_NONE), uintptr(returnedObjectsType),
			uintptr(unsafe.Pointer(&enum)), 0)
	} else {
		result, _, _ = syscall.Syscall6(vss.getVTable().query, 5,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(ole.IID_NULL)),
			uintptr(VSS_OBJECT_NONE), uintptr(returnedObjectsType),
			uintptr(unsafe.Pointer(&enum)), 0)
	}

	return enum, newVssErrorIfResultNotOK("Query() failed", HRESULT(result))
}

// ExposeSnapshot calls the equivalent VSS api, surfacing the snapshot at the
// given location with the given attributes.
func (vss *IVssBackupComponents) ExposeSnapshot(snapshotID ole.GUID,
	attributes VssVolumeSnapshotAttribute, expose string) (string, error) {
	exposePointer, err := syscall.UTF16PtrFromString(expose)
	if err != nil {
		return "", err
	}

	var exposed *uint16
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&snapshotID))

		result, _, _ = syscall.Syscall9(vss.getVTable().exposeSnapshot, 9,
			uintptr(unsafe.Pointer(vss)), id[0], id[1], id[2], id[3],
			0, uintptr(attributes), uintptr(unsafe.Pointer(exposePointer)),
			uintptr(unsafe.Pointer(&exposed)))
	} else {
		result, _, _ = syscall.Syscall6(vss.getVTable().exposeSnapshot, 6,
			uintptr(unsafe.Pointer(vss)), uintptr(unsafe.Pointer(&snapshotID)),
			0, uintptr(attributes), uintptr(unsafe.Pointer(exposePointer)),
			uintptr(unsafe.Pointer(&exposed)))
	}

	if err := newVssErrorIfResultNotOK("ExposeSnapshot() failed", HRESULT(result)); err != nil {
		return "", err
	}

	exposedName := ole.UTF16PtrToString(exposed)
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(exposed)))
	return exposedName, nil
}

// BackupComplete calls the equivalent VSS api.
func (vss *IVssBackupComponents) BackupComplete() (*IVSSAsync, error) {
	var oleIUnknown *ole.IUnknown
	result, _, _ := syscall.Syscall(vss.getVTable().backupComplete, 2, uintptr(unsafe.Pointer(vss)),
		uintptr(unsafe.Pointer(&oleIUnknown)), 0)

	err := newVssErrorIfResultNotOK("BackupComplete() failed", HRESULT(result))
	return vss.convertToVSSAsync(oleIUnknown, err)
}

// vssFreeSnapshotProperties calls the VssFreeSnapshotProperties export of
// VssApi.dll, one of the two functions the dll exports by name.
func vssFreeSnapshotProperties(properties *VssSnapshotProperties) error {
	proc, err := findVssProc("VssFreeSnapshotProperties")
	if err != nil {
		return err
	}

	proc.Call(uintptr(unsafe.Pointer(properties)))
	return nil
}

// loadIVssBackupComponentsConstructor finds the CreateVssBackupComponents
// export inside VssApi.dll. The export carries the C++-decorated name, which
// differs between 32 and 64 bit builds of the dll.
func loadIVssBackupComponentsConstructor() (*windows.LazyProc, error) {
	createInstanceName := "?CreateVssBackupComponents@@YAJPEAPEAVIVssBackupComponents@@@Z"

	if runtime.GOARCH == "386" {
		createInstanceName = "?CreateVssBackupComponents@@YGJPAPAVIVssBackupComponents@@@Z"
	}

	return findVssProc(createInstanceName)
}

// initializeVssCOMInterface initializes an instance of the VSS COM api.
func initializeVssCOMInterface() (*ole.IUnknown, error) {
	vssInstance, err := loadIVssBackupComponentsConstructor()
	if err != nil {
		return nil, err
	}

	// ensure COM is initialized before use
	ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)

	var oleIUnknown *ole.IUnknown
	result, _, _ := vssInstance.Call(uintptr(unsafe.Pointer(&oleIUnknown)))
	hresult := HRESULT(result)

	switch hresult {
	case S_OK:
	case E_ACCESSDENIED:
		return oleIUnknown, newVssError(
			"The caller does not have sufficient backup privileges or is not an administrator",
			hresult)
	default:
		return oleIUnknown, newVssError("Failed to create VSS instance", hresult)
	}

	if oleIUnknown == nil {
		return nil, newVssError("Failed to initialize COM interface", hresult)
	}

	return oleIUnknown, nil
}

// createVssBackupComponents creates and initializes an IVssBackupComponents
// requester instance via the decorated dll export.
func createVssBackupComponents() (*IVssBackupComponents, error) {
	oleIUnknown, err := initializeVssCOMInterface()
	if oleIUnknown != nil {
		defer oleIUnknown.Release()
	}
	if err != nil {
		return nil, err
	}

	comInterface, err := queryInterface(oleIUnknown, UUID_IVSS)
	if err != nil {
		return nil, err
	}

	return (*IVssBackupComponents)(unsafe.Pointer(comInterface)), nil
}

// IVSSAdmin VSS api interface.
type IVSSAdmin struct {
	ole.IUnknown
}

// IVSSAdminVTable is the vtable for IVSSAdmin.
type IVSSAdminVTable struct {
	ole.IUnknownVtbl
	registerProvider            uintptr
	unregisterProvider          uintptr
	queryProviders              uintptr
	abortAllSnapshotsInProgress uintptr
}

// getVTable returns the vtable for IVSSAdmin.
func (vssAdmin *IVSSAdmin) getVTable() *IVSSAdminVTable {
	return (*IVSSAdminVTable)(unsafe.Pointer(vssAdmin.RawVTable))
}

// QueryProviders calls the equivalent VSS api.
func (vssAdmin *IVSSAdmin) QueryProviders() (*IVssEnumObject, error) {
	var enum *IVssEnumObject

	result, _, _ := syscall.Syscall(vssAdmin.getVTable().queryProviders, 2,
		uintptr(unsafe.Pointer(vssAdmin)), uintptr(unsafe.Pointer(&enum)), 0)

	return enum, newVssErrorIfResultNotOK("QueryProviders() failed", HRESULT(result))
}

// AbortAllSnapshotsInProgress calls the equivalent VSS api.
func (vssAdmin *IVSSAdmin) AbortAllSnapshotsInProgress() error {
	result, _, _ := syscall.Syscall(vssAdmin.getVTable().abortAllSnapshotsInProgress, 1,
		uintptr(unsafe.Pointer(vssAdmin)), 0, 0)

	return newVssErrorIfResultNotOK("AbortAllSnapshotsInProgress() failed", HRESULT(result))
}

// IVssExamineWriterMetadata VSS api interface.
type IVssExamineWriterMetadata struct {
	ole.IUnknown
}

// IVssExamineWriterMetadataVTable is the vtable for IVssExamineWriterMetadata.
// Slot order mirrors vsbackup.h.
type IVssExamineWriterMetadataVTable struct {
	ole.IUnknownVtbl
	getIdentity                 uintptr
	getFileCounts               uintptr
	getIncludeFile              uintptr
	getExcludeFile              uintptr
	getComponent                uintptr
	getRestoreMethod            uintptr
	getAlternateLocationMapping uintptr
	getBackupSchema             uintptr
	getDocument                 uintptr
	saveAsXML                   uintptr
	loadFromXML                 uintptr
}

// getVTable returns the vtable for IVssExamineWriterMetadata.
func (ewm *IVssExamineWriterMetadata) getVTable() *IVssExamineWriterMetadataVTable {
	return (*IVssExamineWriterMetadataVTable)(unsafe.Pointer(ewm.RawVTable))
}

// GetFileCounts calls the equivalent VSS api.
func (ewm *IVssExamineWriterMetadata) GetFileCounts() (includeFiles, excludeFiles, components uint32, err error) {
	result, _, _ := syscall.Syscall6(ewm.getVTable().getFileCounts, 4,
		uintptr(unsafe.Pointer(ewm)), uintptr(unsafe.Pointer(&includeFiles)),
		uintptr(unsafe.Pointer(&excludeFiles)), uintptr(unsafe.Pointer(&components)), 0, 0)

	return includeFiles, excludeFiles, components,
		newVssErrorIfResultNotOK("GetFileCounts() failed", HRESULT(result))
}

// GetComponent calls the equivalent VSS api.
func (ewm *IVssExamineWriterMetadata) GetComponent(index uint32) (*IVssWMComponent, error) {
	var component *IVssWMComponent
	result, _, _ := syscall.Syscall(ewm.getVTable().getComponent, 3,
		uintptr(unsafe.Pointer(ewm)), uintptr(index), uintptr(unsafe.Pointer(&component)))

	return component, newVssErrorIfResultNotOK("GetComponent() failed", HRESULT(result))
}

// IVssWMComponent VSS api interface.
type IVssWMComponent struct {
	ole.IUnknown
}

// IVssWMComponentVTable is the vtable for IVssWMComponent.
type IVssWMComponentVTable struct {
	ole.IUnknownVtbl
	getComponentInfo  uintptr
	freeComponentInfo uintptr
	getFile           uintptr
	getDependency     uintptr
}

// getVTable returns the vtable for IVssWMComponent.
func (c *IVssWMComponent) getVTable() *IVssWMComponentVTable {
	return (*IVssWMComponentVTable)(unsafe.Pointer(c.RawVTable))
}

// VssComponentInfo mirrors the VSS_COMPONENTINFO structure from vsbackup.h.
type VssComponentInfo struct {
	componentType          uint32
	logicalPath            *uint16
	componentName          *uint16
	caption                *uint16
	icon                   *byte
	iconCount              uint32
	restoreMetadata        bool
	notifyOnBackupComplete bool
	selectable             bool
	selectableForRestore   bool
	componentFlags         uint32
	fileCount              uint32
	databases              uint32
	logFiles               uint32
	dependencies           uint32
}

// ComponentType returns the type of the component.
func (i *VssComponentInfo) ComponentType() VssComponentType {
	return VssComponentType(i.componentType)
}

// ComponentName returns the name of the component.
func (i *VssComponentInfo) ComponentName() string {
	return ole.UTF16PtrToString(i.componentName)
}

// LogicalPath returns the logical path of the component.
func (i *VssComponentInfo) LogicalPath() string {
	return ole.UTF16PtrToString(i.logicalPath)
}

// GetComponentInfo calls the equivalent VSS api. The returned pointer stays
// owned by the component and must be released with FreeComponentInfo.
func (c *IVssWMComponent) GetComponentInfo() (*VssComponentInfo, error) {
	var info *VssComponentInfo
	result, _, _ := syscall.Syscall(c.getVTable().getComponentInfo, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(&info)), 0)

	return info, newVssErrorIfResultNotOK("GetComponentInfo() failed", HRESULT(result))
}

// FreeComponentInfo calls the equivalent VSS api.
func (c *IVssWMComponent) FreeComponentInfo(info *VssComponentInfo) error {
	result, _, _ := syscall.Syscall(c.getVTable().freeComponentInfo, 2,
		uintptr(unsafe.Pointer(c)), uintptr(unsafe.Pointer(info)), 0)

	return newVssErrorIfResultNotOK("FreeComponentInfo() failed", HRESULT(result))
}
