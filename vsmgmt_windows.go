//go:build windows

package vss

import (
	"runtime"
	"syscall"
	"unsafe"

	"github.com/go-ole/go-ole"
)

// CLSID_VSS_SNAPSHOT_MGMT defines the GUID of the VssSnapshotMgmt coclass.
var CLSID_VSS_SNAPSHOT_MGMT = ole.NewGUID("{0B5A2C52-3EB9-470a-96E2-6C6D4570E40F}")

// IID_IVSS_SNAPSHOT_MGMT defines the GUID of IVssSnapshotMgmt.
var IID_IVSS_SNAPSHOT_MGMT = ole.NewGUID("{FA7DF749-66E7-4986-A27F-E2F04AE53772}")

// IID_IVSS_DIFFERENTIAL_SOFTWARE_SNAPSHOT_MGMT defines the GUID of
// IVssDifferentialSoftwareSnapshotMgmt.
var IID_IVSS_DIFFERENTIAL_SOFTWARE_SNAPSHOT_MGMT = ole.NewGUID("{214A0F28-B737-4026-B847-4F9E37D79529}")

// IID_IVSS_ENUM_MGMT_OBJECT defines the GUID of IVssEnumMgmtObject.
var IID_IVSS_ENUM_MGMT_OBJECT = ole.NewGUID("{01954E6B-9254-4e6e-808C-C9E05D007696}")

// VssVolumeProperties mirrors the VSS_VOLUME_PROP structure from vsmgmt.h.
type VssVolumeProperties struct {
	volumeName        *uint16
	volumeDisplayName *uint16
}

// VolumeName returns the volume name.
func (p *VssVolumeProperties) VolumeName() string {
	return ole.UTF16PtrToString(p.volumeName)
}

// VolumeDisplayName returns the shortest mount point of the volume.
func (p *VssVolumeProperties) VolumeDisplayName() string {
	return ole.UTF16PtrToString(p.volumeDisplayName)
}

// VssDiffVolumeProperties mirrors the VSS_DIFF_VOLUME_PROP structure from
// vsmgmt.h.
type VssDiffVolumeProperties struct {
	volumeName        *uint16
	volumeDisplayName *uint16
	volumeFreeSpace   int64
	volumeTotalSpace  int64
}

// VolumeName returns the diff area volume name.
func (p *VssDiffVolumeProperties) VolumeName() string {
	return ole.UTF16PtrToString(p.volumeName)
}

// FreeSpace returns the free space on the diff area volume, in bytes.
func (p *VssDiffVolumeProperties) FreeSpace() int64 {
	return p.volumeFreeSpace
}

// TotalSpace returns the total space on the diff area volume, in bytes.
func (p *VssDiffVolumeProperties) TotalSpace() int64 {
	return p.volumeTotalSpace
}

// VssDiffAreaProperties mirrors the VSS_DIFF_AREA_PROP structure from
// vsmgmt.h.
type VssDiffAreaProperties struct {
	volumeName         *uint16
	diffAreaVolumeName *uint16
	maximumDiffSpace   int64
	allocatedDiffSpace int64
	usedDiffSpace      int64
}

// VolumeName returns the original volume name.
func (p *VssDiffAreaProperties) VolumeName() string {
	return ole.UTF16PtrToString(p.volumeName)
}

// DiffAreaVolumeName returns the volume holding the diff area.
func (p *VssDiffAreaProperties) DiffAreaVolumeName() string {
	return ole.UTF16PtrToString(p.diffAreaVolumeName)
}

// MaximumDiffSpace returns the configured diff area size limit, in bytes.
func (p *VssDiffAreaProperties) MaximumDiffSpace() int64 {
	return p.maximumDiffSpace
}

// AllocatedDiffSpace returns the allocated diff area size, in bytes.
func (p *VssDiffAreaProperties) AllocatedDiffSpace() int64 {
	return p.allocatedDiffSpace
}

// UsedDiffSpace returns the used diff area size, in bytes.
func (p *VssDiffAreaProperties) UsedDiffSpace() int64 {
	return p.usedDiffSpace
}

// VssMgmtObjectProperties mirrors VSS_MGMT_OBJECT_PROP: a discriminator
// followed by a union of volume, diff volume and diff area properties. The
// union is declared as its largest member; the other views reinterpret the
// same storage.
type VssMgmtObjectProperties struct {
	objectType uint32
	_          uint32
	diffArea   VssDiffAreaProperties
}

// Type returns the discriminator of the union.
func (p *VssMgmtObjectProperties) Type() VssMgmtObjectType {
	return VssMgmtObjectType(p.objectType)
}

// Volume returns the volume view of the union. Only valid if Type() is
// VSS_MGMT_OBJECT_VOLUME.
func (p *VssMgmtObjectProperties) Volume() *VssVolumeProperties {
	return (*VssVolumeProperties)(unsafe.Pointer(&p.diffArea))
}

// DiffVolume returns the diff volume view of the union. Only valid if Type()
// is VSS_MGMT_OBJECT_DIFF_VOLUME.
func (p *VssMgmtObjectProperties) DiffVolume() *VssDiffVolumeProperties {
	return (*VssDiffVolumeProperties)(unsafe.Pointer(&p.diffArea))
}

// DiffArea returns the diff area view of the union. Only valid if Type() is
// VSS_MGMT_OBJECT_DIFF_AREA.
func (p *VssMgmtObjectProperties) DiffArea() *VssDiffAreaProperties {
	return &p.diffArea
}

// IVssEnumMgmtObject VSS api interface. Shape matches IVssEnumObject but
// yields VSS_MGMT_OBJECT_PROP blocks.
type IVssEnumMgmtObject struct {
	ole.IUnknown
}

// IVssEnumMgmtObjectVTable is the vtable for IVssEnumMgmtObject.
type IVssEnumMgmtObjectVTable struct {
	ole.IUnknownVtbl
	next  uintptr
	skip  uintptr
	reset uintptr
	clone uintptr
}

// getVTable returns the vtable for IVssEnumMgmtObject.
func (mgmtEnum *IVssEnumMgmtObject) getVTable() *IVssEnumMgmtObjectVTable {
	return (*IVssEnumMgmtObjectVTable)(unsafe.Pointer(mgmtEnum.RawVTable))
}

// Next calls the equivalent VSS api. A native S_FALSE return signals the end
// of the enumeration and is not an error.
func (mgmtEnum *IVssEnumMgmtObject) Next(count uint, props unsafe.Pointer) (uint, error) {
	var fetched uint32
	result, _, _ := syscall.Syscall6(mgmtEnum.getVTable().next, 4,
		uintptr(unsafe.Pointer(mgmtEnum)), uintptr(count), uintptr(props),
		uintptr(unsafe.Pointer(&fetched)), 0, 0)
	if HRESULT(result) == S_FALSE {
		return uint(fetched), nil
	}

	return uint(fetched), newVssErrorIfResultNotOK("Next() failed", HRESULT(result))
}

// IVssSnapshotMgmt VSS api interface.
type IVssSnapshotMgmt struct {
	ole.IUnknown
}

// IVssSnapshotMgmtVTable is the vtable for IVssSnapshotMgmt.
type IVssSnapshotMgmtVTable struct {
	ole.IUnknownVtbl
	getProviderMgmtInterface          uintptr
	queryVolumesSupportedForSnapshots uintptr
	querySnapshotsByVolume            uintptr
}

// getVTable returns the vtable for IVssSnapshotMgmt.
func (mgmt *IVssSnapshotMgmt) getVTable() *IVssSnapshotMgmtVTable {
	return (*IVssSnapshotMgmtVTable)(unsafe.Pointer(mgmt.RawVTable))
}

// CreateVssSnapshotMgmt instantiates the VssSnapshotMgmt coclass.
func CreateVssSnapshotMgmt() (*IVssSnapshotMgmt, error) {
	// ensure COM is initialized before use
	ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)

	comInterface, err := ole.CreateInstance(CLSID_VSS_SNAPSHOT_MGMT, IID_IVSS_SNAPSHOT_MGMT)
	if err != nil {
		return nil, err
	}

	return (*IVssSnapshotMgmt)(unsafe.Pointer(comInterface)), nil
}

// GetProviderMgmtInterface calls the equivalent VSS api.
func (mgmt *IVssSnapshotMgmt) GetProviderMgmtInterface(providerID ole.GUID,
	interfaceID *ole.GUID) (*ole.IUnknown, error) {
	var itf *ole.IUnknown
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&providerID))

		result, _, _ = syscall.Syscall9(mgmt.getVTable().getProviderMgmtInterface, 7,
			uintptr(unsafe.Pointer(mgmt)), id[0], id[1], id[2], id[3],
			uintptr(unsafe.Pointer(interfaceID)), uintptr(unsafe.Pointer(&itf)), 0, 0)
	} else {
		result, _, _ = syscall.Syscall6(mgmt.getVTable().getProviderMgmtInterface, 4,
			uintptr(unsafe.Pointer(mgmt)), uintptr(unsafe.Pointer(&providerID)),
			uintptr(unsafe.Pointer(interfaceID)), uintptr(unsafe.Pointer(&itf)), 0, 0)
	}

	return itf, newVssErrorIfResultNotOK("GetProviderMgmtInterface() failed", HRESULT(result))
}

// GetDifferentialSoftwareSnapshotMgmt looks up the differential software
// provider management interface for the given provider.
func (mgmt *IVssSnapshotMgmt) GetDifferentialSoftwareSnapshotMgmt(
	providerID ole.GUID) (*IVssDifferentialSoftwareSnapshotMgmt, error) {
	itf, err := mgmt.GetProviderMgmtInterface(providerID,
		IID_IVSS_DIFFERENTIAL_SOFTWARE_SNAPSHOT_MGMT)
	if err != nil {
		return nil, err
	}

	return (*IVssDifferentialSoftwareSnapshotMgmt)(unsafe.Pointer(itf)), nil
}

// QuerySnapshotsByVolume calls the equivalent VSS api.
func (mgmt *IVssSnapshotMgmt) QuerySnapshotsByVolume(volumeName string,
	providerID ole.GUID) (*IVssEnumObject, error) {
	volumeNamePointer, err := syscall.UTF16PtrFromString(volumeName)
	if err != nil {
		return nil, err
	}

	var enum *IVssEnumObject
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&providerID))

		result, _, _ = syscall.Syscall9(mgmt.getVTable().querySnapshotsByVolume, 7,
			uintptr(unsafe.Pointer(mgmt)), uintptr(unsafe.Pointer(volumeNamePointer)),
			id[0], id[1], id[2], id[3], uintptr(unsafe.Pointer(&enum)), 0, 0)
	} else {
		result, _, _ = syscall.Syscall6(mgmt.getVTable().querySnapshotsByVolume, 4,
			uintptr(unsafe.Pointer(mgmt)), uintptr(unsafe.Pointer(volumeNamePointer)),
			uintptr(unsafe.Pointer(&providerID)), uintptr(unsafe.Pointer(&enum)), 0, 0)
	}

	return enum, newVssErrorIfResultNotOK("QuerySnapshotsByVolume() failed", HRESULT(result))
}

// QueryVolumesSupportedForSnapshots calls the equivalent VSS api.
func (mgmt *IVssSnapshotMgmt) QueryVolumesSupportedForSnapshots(providerID ole.GUID,
	context VssVolumeSnapshotAttribute) (*IVssEnumMgmtObject, error) {
	var enum *IVssEnumMgmtObject
	var result uintptr = 0

	if runtime.GOARCH == "386" {
		id := (*[4]uintptr)(unsafe.Pointer(&providerID))

		result, _, _ = syscall.Syscall9(mgmt.getVTable().queryVolumesSupportedForSnapshots, 7,
			uintptr(unsafe.Pointer(mgmt)), id[0], id[1], id[2], id[3],
			uintptr(context), uintptr(unsafe.Pointer(&enum)), 0, 0)
	} else {
		result, _, _ = syscall.Syscall6(mgmt.getVTable().queryVolumesSupportedForSnapshots, 4,
			uintptr(unsafe.Pointer(mgmt)), uintptr(unsafe.Pointer(&providerID)),
			uintptr(context), uintptr(unsafe.Pointer(&enum)), 0, 0)
	}

	return enum, newVssErrorIfResultNotOK(
		"QueryVolumesSupportedForSnapshots() failed", HRESULT(result))
}

// IVssDifferentialSoftwareSnapshotMgmt VSS api interface.
type IVssDifferentialSoftwareSnapshotMgmt struct {
	ole.IUnknown
}

// IVssDifferentialSoftwareSnapshotMgmtVTable is the vtable for
// IVssDifferentialSoftwareSnapshotMgmt.
type IVssDifferentialSoftwareSnapshotMgmtVTable struct {
	ole.IUnknownVtbl
	addDiffArea                       uintptr
	changeDiffAreaMaximumSize         uintptr
	queryVolumesSupportedForDiffAreas uintptr
	queryDiffAreasForVolume           uintptr
	queryDiffAreasOnVolume            uintptr
	queryDiffAreasForSnapshot         uintptr
}

// getVTable returns the vtable for IVssDifferentialSoftwareSnapshotMgmt.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) getVTable() *IVssDifferentialSoftwareSnapshotMgmtVTable {
	return (*IVssDifferentialSoftwareSnapshotMgmtVTable)(unsafe.Pointer(diff.RawVTable))
}

// callDiffAreaSize dispatches AddDiffArea or ChangeDiffAreaMaximumSize,
// splitting the 64-bit size across two stack words on 386.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) callDiffAreaSize(slot uintptr, name string,
	volumeName, diffAreaVolumeName string, maximumDiffSpace int64) error {
	volumeNamePointer, err := syscall.UTF16PtrFromString(volumeName)
	if err != nil {
		return err
	}

	diffAreaVolumeNamePointer, err := syscall.UTF16PtrFromString(diffAreaVolumeName)
	if err != nil {
		return err
	}

	var result uintptr = 0

	if runtime.GOARCH == "386" {
		result, _, _ = syscall.Syscall6(slot, 5,
			uintptr(unsafe.Pointer(diff)), uintptr(unsafe.Pointer(volumeNamePointer)),
			uintptr(unsafe.Pointer(diffAreaVolumeNamePointer)),
			uintptr(uint32(maximumDiffSpace)), uintptr(uint32(maximumDiffSpace>>32)), 0)
	} else {
		result, _, _ = syscall.Syscall6(slot, 4,
			uintptr(unsafe.Pointer(diff)), uintptr(unsafe.Pointer(volumeNamePointer)),
			uintptr(unsafe.Pointer(diffAreaVolumeNamePointer)),
			uintptr(maximumDiffSpace), 0, 0)
	}

	return newVssErrorIfResultNotOK(name+" failed", HRESULT(result))
}

// AddDiffArea calls the equivalent VSS api.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) AddDiffArea(volumeName,
	diffAreaVolumeName string, maximumDiffSpace int64) error {
	return diff.callDiffAreaSize(diff.getVTable().addDiffArea, "AddDiffArea()",
		volumeName, diffAreaVolumeName, maximumDiffSpace)
}

// ChangeDiffAreaMaximumSize calls the equivalent VSS api.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) ChangeDiffAreaMaximumSize(volumeName,
	diffAreaVolumeName string, maximumDiffSpace int64) error {
	return diff.callDiffAreaSize(diff.getVTable().changeDiffAreaMaximumSize,
		"ChangeDiffAreaMaximumSize()", volumeName, diffAreaVolumeName, maximumDiffSpace)
}

// queryMgmtEnum dispatches one of the single-volume-argument enumeration
// slots.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) queryMgmtEnum(slot uintptr, name string,
	volumeName string) (*IVssEnumMgmtObject, error) {
	volumeNamePointer, err := syscall.UTF16PtrFromString(volumeName)
	if err != nil {
		return nil, err
	}

	var enum *IVssEnumMgmtObject
	result, _, _ := syscall.Syscall(slot, 3,
		uintptr(unsafe.Pointer(diff)), uintptr(unsafe.Pointer(volumeNamePointer)),
		uintptr(unsafe.Pointer(&enum)))

	return enum, newVssErrorIfResultNotOK(name+" failed", HRESULT(result))
}

// QueryVolumesSupportedForDiffAreas calls the equivalent VSS api.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) QueryVolumesSupportedForDiffAreas(
	originalVolumeName string) (*IVssEnumMgmtObject, error) {
	return diff.queryMgmtEnum(diff.getVTable().queryVolumesSupportedForDiffAreas,
		"QueryVolumesSupportedForDiffAreas()", originalVolumeName)
}

// QueryDiffAreasForVolume calls the equivalent VSS api.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) QueryDiffAreasForVolume(
	volumeName string) (*IVssEnumMgmtObject, error) {
	return diff.queryMgmtEnum(diff.getVTable().queryDiffAreasForVolume,
		"QueryDiffAreasForVolume()", volumeName)
}

// QueryDiffAreasOnVolume calls the equivalent VSS api.
func (diff *IVssDifferentialSoftwareSnapshotMgmt) QueryDiffAreasOnVolume(
	volumeName string) (*IVssEnumMgmtObject, error) {
	return diff.queryMgmtEnum(diff.getVTable().queryDiffAreasOnVolume,
		"QueryDiffAreasOnVolume()", volumeName)
}
