//go:build windows

package vss

import (
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// UIID_IVSS_ASYNC defines the GUID of IVssAsync.
var UIID_IVSS_ASYNC = ole.NewGUID("{507C37B4-CF5B-4e95-B0AF-14EB9767467E}")

// IID_IVSS_ENUM_OBJECT defines the GUID of IVssEnumObject.
var IID_IVSS_ENUM_OBJECT = ole.NewGUID("{AE1C7110-2F60-11d3-8A39-00C04F72D8E3}")

// VssSnapshotProperties defines the properties of a VSS snapshot as part of
// the VSS api (VSS_SNAPSHOT_PROP). Field order and widths mirror vss.h.
type VssSnapshotProperties struct {
	snapshotID           ole.GUID
	snapshotSetID        ole.GUID
	snapshotsCount       uint32
	snapshotDeviceObject *uint16
	originalVolumeName   *uint16
	originatingMachine   *uint16
	serviceMachine       *uint16
	exposedName          *uint16
	exposedPath          *uint16
	providerID           ole.GUID
	snapshotAttributes   uint32
	creationTimestamp    uint64
	status               uint32
}

// GetSnapshotDeviceObject returns the root path to access the snapshot files
// and folders.
func (p *VssSnapshotProperties) GetSnapshotDeviceObject() string {
	return ole.UTF16PtrToString(p.snapshotDeviceObject)
}

// GetOriginalVolumeName returns the name of the snapshotted volume.
func (p *VssSnapshotProperties) GetOriginalVolumeName() string {
	return ole.UTF16PtrToString(p.originalVolumeName)
}

// SnapshotID returns the id of the snapshot.
func (p *VssSnapshotProperties) SnapshotID() ole.GUID {
	return p.snapshotID
}

// SnapshotSetID returns the id of the snapshot set the snapshot belongs to.
func (p *VssSnapshotProperties) SnapshotSetID() ole.GUID {
	return p.snapshotSetID
}

// Info decodes the native property block into a SnapshotInfo.
func (p *VssSnapshotProperties) Info() SnapshotInfo {
	return SnapshotInfo{
		SnapshotID:         p.snapshotID.String(),
		SnapshotSetID:      p.snapshotSetID.String(),
		SnapshotsCount:     p.snapshotsCount,
		DeviceObject:       ole.UTF16PtrToString(p.snapshotDeviceObject),
		OriginalVolume:     ole.UTF16PtrToString(p.originalVolumeName),
		OriginatingMachine: ole.UTF16PtrToString(p.originatingMachine),
		ServiceMachine:     ole.UTF16PtrToString(p.serviceMachine),
		ExposedName:        ole.UTF16PtrToString(p.exposedName),
		ExposedPath:        ole.UTF16PtrToString(p.exposedPath),
		ProviderID:         p.providerID.String(),
		Attributes:         VssVolumeSnapshotAttribute(p.snapshotAttributes),
		CreatedAt:          filetimeToTime(p.creationTimestamp),
		State:              VssSnapshotState(p.status),
	}
}

// VssProviderProperties defines the properties of a VSS provider as part of
// the VSS api (VSS_PROVIDER_PROP).
type VssProviderProperties struct {
	providerID        ole.GUID
	providerName      *uint16
	providerType      uint32
	providerVersion   *uint16
	providerVersionID ole.GUID
	classID           ole.GUID
}

// vssFreeProviderProperties releases the strings allocated by the VSS
// service inside a VSS_PROVIDER_PROP.
func vssFreeProviderProperties(p *VssProviderProperties) {
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(p.providerName)))
	p.providerName = nil
	ole.CoTaskMemFree(uintptr(unsafe.Pointer(p.providerVersion)))
	p.providerVersion = nil
}

// Info decodes the native property block into a ProviderInfo.
func (p *VssProviderProperties) Info() ProviderInfo {
	return ProviderInfo{
		ProviderID: p.providerID.String(),
		Name:       ole.UTF16PtrToString(p.providerName),
		Type:       VssProviderType(p.providerType),
		Version:    ole.UTF16PtrToString(p.providerVersion),
		VersionID:  p.providerVersionID.String(),
		ClassID:    p.classID.String(),
	}
}

// VssObjectProperties mirrors VSS_OBJECT_PROP: a discriminator followed by a
// union of VSS_SNAPSHOT_PROP and VSS_PROVIDER_PROP. The union is declared as
// its largest member; the provider view reinterprets the same storage.
type VssObjectProperties struct {
	objectType uint32
	_          uint32
	snapshot   VssSnapshotProperties
}

// Type returns the discriminator of the union.
func (p *VssObjectProperties) Type() VssObjectType {
	return VssObjectType(p.objectType)
}

// Snapshot returns the snapshot view of the union. Only valid if Type()
// is VSS_OBJECT_SNAPSHOT.
func (p *VssObjectProperties) Snapshot() *VssSnapshotProperties {
	return &p.snapshot
}

// Provider returns the provider view of the union. Only valid if Type()
// is VSS_OBJECT_PROVIDER.
func (p *VssObjectProperties) Provider() *VssProviderProperties {
	return (*VssProviderProperties)(unsafe.Pointer(&p.snapshot))
}

// IVSSAsync VSS api interface.
type IVSSAsync struct {
	ole.IUnknown
}

// IVSSAsyncVTable is the vtable for IVSSAsync.
type IVSSAsyncVTable struct {
	ole.IUnknownVtbl
	cancel      uintptr
	wait        uintptr
	queryStatus uintptr
}

// getVTable returns the vtable for IVSSAsync.
func (vssAsync *IVSSAsync) getVTable() *IVSSAsyncVTable {
	return (*IVSSAsyncVTable)(unsafe.Pointer(vssAsync.RawVTable))
}

// Cancel calls the equivalent VSS api.
func (vssAsync *IVSSAsync) Cancel() HRESULT {
	result, _, _ := syscall.Syscall(vssAsync.getVTable().cancel, 1,
		uintptr(unsafe.Pointer(vssAsync)), 0, 0)
	return HRESULT(result)
}

// Wait calls the equivalent VSS api.
func (vssAsync *IVSSAsync) Wait(millis uint32) HRESULT {
	result, _, _ := syscall.Syscall(vssAsync.getVTable().wait, 2, uintptr(unsafe.Pointer(vssAsync)),
		uintptr(millis), 0)
	return HRESULT(result)
}

// QueryStatus calls the equivalent VSS api.
func (vssAsync *IVSSAsync) QueryStatus() (HRESULT, uint32) {
	var state uint32 = 0
	result, _, _ := syscall.Syscall(vssAsync.getVTable().queryStatus, 3,
		uintptr(unsafe.Pointer(vssAsync)), uintptr(unsafe.Pointer(&state)), 0)
	return HRESULT(result), state
}

// WaitUntilAsyncFinished waits until either the async call is finished or
// the given timeout is reached.
func (vssAsync *IVSSAsync) WaitUntilAsyncFinished(millis uint32) error {
	hresult := vssAsync.Wait(millis)
	err := newVssErrorIfResultNotOK("Wait() failed", hresult)
	if err != nil {
		vssAsync.Cancel()
		return err
	}

	hresult, state := vssAsync.QueryStatus()
	err = newVssErrorIfResultNotOK("QueryStatus() failed", hresult)
	if err != nil {
		vssAsync.Cancel()
		return err
	}

	if HRESULT(state) == VSS_S_ASYNC_CANCELLED {
		return newVssTextError("async operation cancelled")
	}

	if HRESULT(state) == VSS_S_ASYNC_PENDING {
		vssAsync.Cancel()
		return newVssTextError("async operation pending")
	}

	if HRESULT(state) != VSS_S_ASYNC_FINISHED {
		return newVssError("async operation failed", HRESULT(state))
	}

	return nil
}

// IVssEnumObject VSS api interface.
type IVssEnumObject struct {
	ole.IUnknown
}

// IVssEnumObjectVTable is the vtable for IVssEnumObject.
type IVssEnumObjectVTable struct {
	ole.IUnknownVtbl
	next  uintptr
	skip  uintptr
	reset uintptr
	clone uintptr
}

// getVTable returns the vtable for IVssEnumObject.
func (vssEnum *IVssEnumObject) getVTable() *IVssEnumObjectVTable {
	return (*IVssEnumObjectVTable)(unsafe.Pointer(vssEnum.RawVTable))
}

// Next calls the equivalent VSS api. A native S_FALSE return signals the end
// of the enumeration and is not an error.
func (vssEnum *IVssEnumObject) Next(count uint, props unsafe.Pointer) (uint, error) {
	var fetched uint32
	result, _, _ := syscall.Syscall6(vssEnum.getVTable().next, 4,
		uintptr(unsafe.Pointer(vssEnum)), uintptr(count), uintptr(props),
		uintptr(unsafe.Pointer(&fetched)), 0, 0)
	if HRESULT(result) == S_FALSE {
		return uint(fetched), nil
	}

	return uint(fetched), newVssErrorIfResultNotOK("Next() failed", HRESULT(result))
}

// Skip calls the equivalent VSS api.
func (vssEnum *IVssEnumObject) Skip(count uint) error {
	result, _, _ := syscall.Syscall(vssEnum.getVTable().skip, 2,
		uintptr(unsafe.Pointer(vssEnum)), uintptr(count), 0)

	return newVssErrorIfResultNotOK("Skip() failed", HRESULT(result))
}

// Reset calls the equivalent VSS api.
func (vssEnum *IVssEnumObject) Reset() error {
	result, _, _ := syscall.Syscall(vssEnum.getVTable().reset, 1,
		uintptr(unsafe.Pointer(vssEnum)), 0, 0)

	return newVssErrorIfResultNotOK("Reset() failed", HRESULT(result))
}

// Clone calls the equivalent VSS api.
func (vssEnum *IVssEnumObject) Clone() (*IVssEnumObject, error) {
	var clone *IVssEnumObject
	result, _, _ := syscall.Syscall(vssEnum.getVTable().clone, 2,
		uintptr(unsafe.Pointer(vssEnum)), uintptr(unsafe.Pointer(&clone)), 0)

	return clone, newVssErrorIfResultNotOK("Clone() failed", HRESULT(result))
}
