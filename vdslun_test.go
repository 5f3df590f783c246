package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStorageBusTypeValues(t *testing.T) {
	assert.Equal(t, VdsStorageBusType(0x00), VDSBusTypeUnknown)
	assert.Equal(t, VdsStorageBusType(0x06), VDSBusTypeFibre)
	assert.Equal(t, VdsStorageBusType(0x09), VDSBusTypeiScsi)
	assert.Equal(t, VdsStorageBusType(0x0B), VDSBusTypeSata)
	assert.Equal(t, VdsStorageBusType(0x10), VDSBusTypeSpaces)
	assert.Equal(t, VdsStorageBusType(0x7F), VDSBusTypeMaxReserved)

	// VDSBusTypeMax and VDSBusTypeVirtual share a value in the native header
	assert.Equal(t, VDSBusTypeMax, VDSBusTypeVirtual)
}

func TestStorageIdentifierValues(t *testing.T) {
	assert.Equal(t, VdsStorageIdentifierCodeSet(1), VDSStorageIdCodeSetBinary)
	assert.Equal(t, VdsStorageIdentifierCodeSet(3), VDSStorageIdCodeSetUtf8)

	assert.Equal(t, VdsStorageIdentifierType(2), VDSStorageIdTypeEUI64)
	assert.Equal(t, VdsStorageIdentifierType(8), VDSStorageIdTypeScsiNameString)
}

func TestInterconnectAddressTypeValues(t *testing.T) {
	assert.Equal(t, VdsInterconnectAddressType(1), VDSInterconnectAddressTypeFCFS)
	assert.Equal(t, VdsInterconnectAddressType(5), VDSInterconnectAddressTypeSCSI)
}
