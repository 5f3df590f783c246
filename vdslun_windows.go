//go:build windows

package vss

import (
	"unsafe"

	"github.com/go-ole/go-ole"
)

// bytePtrToString copies a NUL-terminated ANSI string out of native memory.
func bytePtrToString(p *byte) string {
	if p == nil {
		return ""
	}

	var out []byte
	for offset := uintptr(0); ; offset++ {
		b := *(*byte)(unsafe.Pointer(uintptr(unsafe.Pointer(p)) + offset))
		if b == 0 {
			break
		}
		out = append(out, b)
	}

	return string(out)
}

// VdsStorageIdentifier mirrors the VDS_STORAGE_IDENTIFIER structure from
// vdslun.h.
type VdsStorageIdentifier struct {
	codeSet     uint32
	idType      uint32
	sizeInBytes uint32
	identifier  *byte
}

// CodeSet returns the encoding of the identifier.
func (s *VdsStorageIdentifier) CodeSet() VdsStorageIdentifierCodeSet {
	return VdsStorageIdentifierCodeSet(s.codeSet)
}

// Type returns the identifier type.
func (s *VdsStorageIdentifier) Type() VdsStorageIdentifierType {
	return VdsStorageIdentifierType(s.idType)
}

// Identifier returns a copy of the raw identifier bytes.
func (s *VdsStorageIdentifier) Identifier() []byte {
	if s.identifier == nil || s.sizeInBytes == 0 {
		return nil
	}

	return unsafe.Slice(s.identifier, s.sizeInBytes)
}

// VdsStorageDeviceIDDescriptor mirrors the VDS_STORAGE_DEVICE_ID_DESCRIPTOR
// structure from vdslun.h.
type VdsStorageDeviceIDDescriptor struct {
	version     uint32
	count       uint32
	identifiers *VdsStorageIdentifier
}

// Identifiers returns the storage identifiers held by the descriptor.
func (d *VdsStorageDeviceIDDescriptor) Identifiers() []VdsStorageIdentifier {
	if d.identifiers == nil || d.count == 0 {
		return nil
	}

	return unsafe.Slice(d.identifiers, d.count)
}

// VdsInterconnect mirrors the VDS_INTERCONNECT structure from vdslun.h.
type VdsInterconnect struct {
	addressType   uint32
	portSizeBytes uint32
	port          *byte
	addrSizeBytes uint32
	address       *byte
}

// AddressType returns the interconnect address type.
func (i *VdsInterconnect) AddressType() VdsInterconnectAddressType {
	return VdsInterconnectAddressType(i.addressType)
}

// Port returns the raw port bytes of the interconnect.
func (i *VdsInterconnect) Port() []byte {
	if i.port == nil || i.portSizeBytes == 0 {
		return nil
	}

	return unsafe.Slice(i.port, i.portSizeBytes)
}

// Address returns the raw address bytes of the interconnect.
func (i *VdsInterconnect) Address() []byte {
	if i.address == nil || i.addrSizeBytes == 0 {
		return nil
	}

	return unsafe.Slice(i.address, i.addrSizeBytes)
}

// VdsLunInformation mirrors the VDS_LUN_INFORMATION structure from vdslun.h.
// This is the block exchanged with hardware snapshot providers.
type VdsLunInformation struct {
	version            uint32
	deviceType         byte
	deviceTypeModifier byte
	commandQueueing    int32
	busType            uint32
	vendorID           *byte
	productID          *byte
	productRevision    *byte
	serialNumber       *byte
	diskSignature      ole.GUID
	deviceIDDescriptor VdsStorageDeviceIDDescriptor
	interconnectCount  uint32
	interconnects      *VdsInterconnect
}

// BusType returns the bus the LUN is attached to.
func (l *VdsLunInformation) BusType() VdsStorageBusType {
	return VdsStorageBusType(l.busType)
}

// VendorID returns the SCSI vendor identifier.
func (l *VdsLunInformation) VendorID() string {
	return bytePtrToString(l.vendorID)
}

// ProductID returns the SCSI product identifier.
func (l *VdsLunInformation) ProductID() string {
	return bytePtrToString(l.productID)
}

// ProductRevision returns the SCSI product revision.
func (l *VdsLunInformation) ProductRevision() string {
	return bytePtrToString(l.productRevision)
}

// SerialNumber returns the device serial number.
func (l *VdsLunInformation) SerialNumber() string {
	return bytePtrToString(l.serialNumber)
}

// DiskSignature returns the disk signature GUID.
func (l *VdsLunInformation) DiskSignature() ole.GUID {
	return l.diskSignature
}

// DeviceIDDescriptor returns the storage device id descriptor.
func (l *VdsLunInformation) DeviceIDDescriptor() *VdsStorageDeviceIDDescriptor {
	return &l.deviceIDDescriptor
}

// Interconnects returns the interconnects the LUN is reachable over.
func (l *VdsLunInformation) Interconnects() []VdsInterconnect {
	if l.interconnects == nil || l.interconnectCount == 0 {
		return nil
	}

	return unsafe.Slice(l.interconnects, l.interconnectCount)
}
