package vss

// VssMgmtObjectType is a custom type for the windows api VSS_MGMT_OBJECT_TYPE type.
type VssMgmtObjectType uint

// VssMgmtObjectType constant values necessary for using VSS api.
const (
	VSS_MGMT_OBJECT_UNKNOWN VssMgmtObjectType = iota
	VSS_MGMT_OBJECT_VOLUME
	VSS_MGMT_OBJECT_DIFF_VOLUME
	VSS_MGMT_OBJECT_DIFF_AREA
)

// VSS_ASSOC_NO_MAX_SPACE and VSS_ASSOC_REMOVE are sentinel sizes for
// IVssDifferentialSoftwareSnapshotMgmt::AddDiffArea and
// ChangeDiffAreaMaximumSize.
const (
	VSS_ASSOC_NO_MAX_SPACE int64 = -1
	VSS_ASSOC_REMOVE       int64 = 0
)
