//go:build windows

package vss

import (
	"runtime"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

const ptrSize = unsafe.Sizeof(uintptr(0))

// Vtable structs are passed to the operating system by address, so their
// size pins down both the slot count and the slot order staying purely
// pointer-shaped.
func TestVTableSlotCounts(t *testing.T) {
	// 3 IUnknown slots ahead of the interface-specific ones
	assert.Equal(t, 51*ptrSize, unsafe.Sizeof(IVssBackupComponentsVTable{}))
	assert.Equal(t, 39*ptrSize, unsafe.Sizeof(IVssComponentVTable{}))
	assert.Equal(t, 14*ptrSize, unsafe.Sizeof(IVssExamineWriterMetadataVTable{}))
	assert.Equal(t, 7*ptrSize, unsafe.Sizeof(IVssWMComponentVTable{}))
	assert.Equal(t, 7*ptrSize, unsafe.Sizeof(IVSSAdminVTable{}))
	assert.Equal(t, 7*ptrSize, unsafe.Sizeof(IVssEnumObjectVTable{}))
	assert.Equal(t, 7*ptrSize, unsafe.Sizeof(IVssEnumMgmtObjectVTable{}))
	assert.Equal(t, 6*ptrSize, unsafe.Sizeof(IVSSAsyncVTable{}))
	assert.Equal(t, 6*ptrSize, unsafe.Sizeof(IVssSnapshotMgmtVTable{}))
	assert.Equal(t, 9*ptrSize, unsafe.Sizeof(IVssDifferentialSoftwareSnapshotMgmtVTable{}))
	assert.Equal(t, 3*ptrSize, unsafe.Sizeof(IVssWriterComponentsVTable{}))
	assert.Equal(t, 13*ptrSize, unsafe.Sizeof(IVssSoftwareSnapshotProviderVTable{}))
	assert.Equal(t, 10*ptrSize, unsafe.Sizeof(IVssProviderCreateSnapshotSetVTable{}))
	assert.Equal(t, 5*ptrSize, unsafe.Sizeof(IVssProviderNotificationsVTable{}))
	assert.Equal(t, 9*ptrSize, unsafe.Sizeof(IVssHardwareSnapshotProviderVTable{}))
}

func TestSnapshotPropertiesLayout(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layout assertions are written for the 64-bit ABI")
	}

	var p VssSnapshotProperties
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.snapshotID))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(p.snapshotSetID))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(p.snapshotsCount))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(p.snapshotDeviceObject))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(p.originalVolumeName))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(p.originatingMachine))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(p.serviceMachine))
	assert.Equal(t, uintptr(72), unsafe.Offsetof(p.exposedName))
	assert.Equal(t, uintptr(80), unsafe.Offsetof(p.exposedPath))
	assert.Equal(t, uintptr(88), unsafe.Offsetof(p.providerID))
	assert.Equal(t, uintptr(104), unsafe.Offsetof(p.snapshotAttributes))
	assert.Equal(t, uintptr(112), unsafe.Offsetof(p.creationTimestamp))
	assert.Equal(t, uintptr(120), unsafe.Offsetof(p.status))
	assert.Equal(t, uintptr(128), unsafe.Sizeof(p))
}

func TestProviderPropertiesLayout(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layout assertions are written for the 64-bit ABI")
	}

	var p VssProviderProperties
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.providerID))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(p.providerName))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(p.providerType))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(p.providerVersion))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(p.providerVersionID))
	assert.Equal(t, uintptr(56), unsafe.Offsetof(p.classID))
	assert.Equal(t, uintptr(72), unsafe.Sizeof(p))
}

// The object property union starts with the discriminator and pads to the
// alignment of the largest member; both views of the payload must share the
// same offset.
func TestObjectPropertiesUnionLayout(t *testing.T) {
	var p VssObjectProperties
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.objectType))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(p.snapshot))
	assert.Equal(t,
		unsafe.Pointer(p.Snapshot()), unsafe.Pointer(p.Provider()))

	// the snapshot member is the larger of the two
	assert.GreaterOrEqual(t,
		unsafe.Sizeof(VssSnapshotProperties{}), unsafe.Sizeof(VssProviderProperties{}))
}

func TestMgmtObjectPropertiesUnionLayout(t *testing.T) {
	var p VssMgmtObjectProperties
	assert.Equal(t, uintptr(0), unsafe.Offsetof(p.objectType))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(p.diffArea))
	assert.Equal(t,
		unsafe.Pointer(p.Volume()), unsafe.Pointer(p.DiffArea()))
	assert.Equal(t,
		unsafe.Pointer(p.DiffVolume()), unsafe.Pointer(p.DiffArea()))

	// the diff area member is the largest of the three
	assert.GreaterOrEqual(t,
		unsafe.Sizeof(VssDiffAreaProperties{}), unsafe.Sizeof(VssDiffVolumeProperties{}))
	assert.GreaterOrEqual(t,
		unsafe.Sizeof(VssDiffAreaProperties{}), unsafe.Sizeof(VssVolumeProperties{}))
}

func TestComponentInfoLayout(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layout assertions are written for the 64-bit ABI")
	}

	var i VssComponentInfo
	assert.Equal(t, uintptr(0), unsafe.Offsetof(i.componentType))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(i.logicalPath))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(i.componentName))
	assert.Equal(t, uintptr(24), unsafe.Offsetof(i.caption))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(i.icon))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(i.iconCount))
	assert.Equal(t, uintptr(44), unsafe.Offsetof(i.restoreMetadata))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(i.componentFlags))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(i.dependencies))
}

func TestLunInformationLayout(t *testing.T) {
	if runtime.GOARCH != "amd64" {
		t.Skip("layout assertions are written for the 64-bit ABI")
	}

	var l VdsLunInformation
	assert.Equal(t, uintptr(0), unsafe.Offsetof(l.version))
	assert.Equal(t, uintptr(4), unsafe.Offsetof(l.deviceType))
	assert.Equal(t, uintptr(5), unsafe.Offsetof(l.deviceTypeModifier))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(l.commandQueueing))
	assert.Equal(t, uintptr(12), unsafe.Offsetof(l.busType))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(l.vendorID))
	assert.Equal(t, uintptr(48), unsafe.Offsetof(l.diskSignature))
	assert.Equal(t, uintptr(64), unsafe.Offsetof(l.deviceIDDescriptor))
}
