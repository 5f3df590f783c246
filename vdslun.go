package vss

// VdsStorageBusType is a custom type for the windows api VDS_STORAGE_BUS_TYPE
// type from vdslun.h.
type VdsStorageBusType uint

// VdsStorageBusType constant values necessary for using VSS api.
const (
	VDSBusTypeUnknown           VdsStorageBusType = 0x00
	VDSBusTypeScsi              VdsStorageBusType = 0x01
	VDSBusTypeAtapi             VdsStorageBusType = 0x02
	VDSBusTypeAta               VdsStorageBusType = 0x03
	VDSBusType1394              VdsStorageBusType = 0x04
	VDSBusTypeSsa               VdsStorageBusType = 0x05
	VDSBusTypeFibre             VdsStorageBusType = 0x06
	VDSBusTypeUsb               VdsStorageBusType = 0x07
	VDSBusTypeRAID              VdsStorageBusType = 0x08
	VDSBusTypeiScsi             VdsStorageBusType = 0x09
	VDSBusTypeSas               VdsStorageBusType = 0x0A
	VDSBusTypeSata              VdsStorageBusType = 0x0B
	VDSBusTypeSd                VdsStorageBusType = 0x0C
	VDSBusTypeMmc               VdsStorageBusType = 0x0D
	VDSBusTypeMax               VdsStorageBusType = 0x0E
	VDSBusTypeVirtual           VdsStorageBusType = 0x0E
	VDSBusTypeFileBackedVirtual VdsStorageBusType = 0x0F
	VDSBusTypeSpaces            VdsStorageBusType = 0x10
	VDSBusTypeMaxReserved       VdsStorageBusType = 0x7F
)

// VdsStorageIdentifierCodeSet is a custom type for the windows api
// VDS_STORAGE_IDENTIFIER_CODE_SET type from vdslun.h.
type VdsStorageIdentifierCodeSet uint

// VdsStorageIdentifierCodeSet constant values necessary for using VSS api.
const (
	VDSStorageIdCodeSetReserved VdsStorageIdentifierCodeSet = iota
	VDSStorageIdCodeSetBinary
	VDSStorageIdCodeSetAscii
	VDSStorageIdCodeSetUtf8
)

// VdsStorageIdentifierType is a custom type for the windows api
// VDS_STORAGE_IDENTIFIER_TYPE type from vdslun.h.
type VdsStorageIdentifierType uint

// VdsStorageIdentifierType constant values necessary for using VSS api.
const (
	VDSStorageIdTypeVendorSpecific VdsStorageIdentifierType = iota
	VDSStorageIdTypeVendorId
	VDSStorageIdTypeEUI64
	VDSStorageIdTypeFCPHName
	VDSStorageIdTypePortRelative
	VDSStorageIdTypeTargetPortGroup
	VDSStorageIdTypeLogicalUnitGroup
	VDSStorageIdTypeMD5LogicalUnitIdentifier
	VDSStorageIdTypeScsiNameString
)

// VdsInterconnectAddressType is a custom type for the windows api
// VDS_INTERCONNECT_ADDRESS_TYPE type from vdslun.h.
type VdsInterconnectAddressType uint

// VdsInterconnectAddressType constant values necessary for using VSS api.
const (
	VDSInterconnectAddressTypeReserved VdsInterconnectAddressType = iota
	VDSInterconnectAddressTypeFCFS
	VDSInterconnectAddressTypeFCPH
	VDSInterconnectAddressTypeFCPH3
	VDSInterconnectAddressTypeMAC
	VDSInterconnectAddressTypeSCSI
)
