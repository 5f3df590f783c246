package vss

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMgmtObjectTypeValues(t *testing.T) {
	assert.Equal(t, VssMgmtObjectType(0), VSS_MGMT_OBJECT_UNKNOWN)
	assert.Equal(t, VssMgmtObjectType(1), VSS_MGMT_OBJECT_VOLUME)
	assert.Equal(t, VssMgmtObjectType(2), VSS_MGMT_OBJECT_DIFF_VOLUME)
	assert.Equal(t, VssMgmtObjectType(3), VSS_MGMT_OBJECT_DIFF_AREA)
}

func TestDiffAreaSentinels(t *testing.T) {
	assert.Equal(t, int64(-1), VSS_ASSOC_NO_MAX_SPACE)
	assert.Equal(t, int64(0), VSS_ASSOC_REMOVE)
}
