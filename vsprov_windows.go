//go:build windows

package vss

import (
	"github.com/go-ole/go-ole"
)

// IID_IVSS_SOFTWARE_SNAPSHOT_PROVIDER defines the GUID of
// IVssSoftwareSnapshotProvider.
var IID_IVSS_SOFTWARE_SNAPSHOT_PROVIDER = ole.NewGUID("{609e123e-2c5a-44d3-8f01-0b1d9a47d1ff}")

// IID_IVSS_PROVIDER_CREATE_SNAPSHOT_SET defines the GUID of
// IVssProviderCreateSnapshotSet.
var IID_IVSS_PROVIDER_CREATE_SNAPSHOT_SET = ole.NewGUID("{5F894E5B-1E39-4778-8E23-9ABAD9F0E08C}")

// IID_IVSS_PROVIDER_NOTIFICATIONS defines the GUID of
// IVssProviderNotifications.
var IID_IVSS_PROVIDER_NOTIFICATIONS = ole.NewGUID("{E561901F-03A5-4afe-86D0-72BAEECE7004}")

// IID_IVSS_HARDWARE_SNAPSHOT_PROVIDER defines the GUID of
// IVssHardwareSnapshotProvider.
var IID_IVSS_HARDWARE_SNAPSHOT_PROVIDER = ole.NewGUID("{9593A157-44E9-4344-BBEB-44FBF9B06B10}")

// IVssSoftwareSnapshotProvider VSS api interface. Implemented by software
// providers; declared here so registered provider objects can be addressed
// through the correct slot layout.
type IVssSoftwareSnapshotProvider struct {
	ole.IUnknown
}

// IVssSoftwareSnapshotProviderVTable is the vtable for
// IVssSoftwareSnapshotProvider. Slot order mirrors vsprov.h and must never be
// reordered.
type IVssSoftwareSnapshotProviderVTable struct {
	ole.IUnknownVtbl
	setContext            uintptr
	getSnapshotProperties uintptr
	query                 uintptr
	deleteSnapshots       uintptr
	beginPrepareSnapshot  uintptr
	isVolumeSupported     uintptr
	isVolumeSnapshotted   uintptr
	setSnapshotProperty   uintptr
	revertToSnapshot      uintptr
	queryRevertStatus     uintptr
}

// IVssProviderCreateSnapshotSet VSS api interface. Receives the commit
// sequence callbacks during snapshot set creation.
type IVssProviderCreateSnapshotSet struct {
	ole.IUnknown
}

// IVssProviderCreateSnapshotSetVTable is the vtable for
// IVssProviderCreateSnapshotSet. Slot order mirrors vsprov.h and must never
// be reordered.
type IVssProviderCreateSnapshotSetVTable struct {
	ole.IUnknownVtbl
	endPrepareSnapshots      uintptr
	preCommitSnapshots       uintptr
	commitSnapshots          uintptr
	postCommitSnapshots      uintptr
	preFinalCommitSnapshots  uintptr
	postFinalCommitSnapshots uintptr
	abortSnapshots           uintptr
}

// IVssProviderNotifications VSS api interface.
type IVssProviderNotifications struct {
	ole.IUnknown
}

// IVssProviderNotificationsVTable is the vtable for
// IVssProviderNotifications.
type IVssProviderNotificationsVTable struct {
	ole.IUnknownVtbl
	onLoad   uintptr
	onUnload uintptr
}

// IVssHardwareSnapshotProvider VSS api interface. Implemented by hardware
// providers; the LUN information blocks it exchanges are declared alongside
// the vdslun structures.
type IVssHardwareSnapshotProvider struct {
	ole.IUnknown
}

// IVssHardwareSnapshotProviderVTable is the vtable for
// IVssHardwareSnapshotProvider. Slot order mirrors vsprov.h and must never be
// reordered.
type IVssHardwareSnapshotProviderVTable struct {
	ole.IUnknownVtbl
	areLunsSupported     uintptr
	fillInLunInfo        uintptr
	beginPrepareSnapshot uintptr
	getTargetLuns        uintptr
	locateLuns           uintptr
	onLunEmpty           uintptr
}
