//go:build !windows

package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStubsReportNotSupported(t *testing.T) {
	assert.Error(t, HasSufficientPrivileges())

	_, err := CreateSnapshot(`C:\`, DefaultOptions)
	assert.Error(t, err)

	_, err = ListSnapshots()
	assert.Error(t, err)

	_, err = ListProviders()
	assert.Error(t, err)

	_, err = WriterStatuses(DefaultOptions)
	assert.Error(t, err)

	assert.Error(t, DeleteSnapshotByID("{00000000-0000-0000-0000-000000000000}"))

	_, err = ExposeSnapshotByID("{00000000-0000-0000-0000-000000000000}", "X:")
	assert.Error(t, err)
}

func TestStubVolumeNamePassthrough(t *testing.T) {
	name, err := GetVolumeNameForVolumeMountPoint(`C:\`)
	assert.NoError(t, err)
	assert.Equal(t, `C:\`, name)
}
