package vss

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultOptions(t *testing.T) {
	assert.Equal(t, VSS_CTX_BACKUP, DefaultOptions.Context)
	assert.Equal(t, VSS_BT_COPY, DefaultOptions.BackupType)
	assert.Equal(t, 180*time.Second, DefaultOptions.Timeout)
}

func TestTimeoutMillis(t *testing.T) {
	assert.Equal(t, uint32(180000), Options{}.timeoutMillis())
	assert.Equal(t, uint32(180000), Options{Timeout: -time.Second}.timeoutMillis())
	assert.Equal(t, uint32(5000), Options{Timeout: 5 * time.Second}.timeoutMillis())

	// IVssAsync::Wait takes a 32-bit timeout
	huge := Options{Timeout: 100 * 365 * 24 * time.Hour}
	assert.Equal(t, uint32(math.MaxUint32), huge.timeoutMillis())
}

func TestFiletimeToTime(t *testing.T) {
	// the FILETIME epoch itself is the unset VSS_TIMESTAMP; it is more than
	// 292 years before 1970 and must not wrap around in nanoseconds
	assert.Equal(t, time.Date(1601, 1, 1, 0, 0, 0, 0, time.UTC),
		filetimeToTime(0).UTC())

	// one tick past the epoch, still outside the int64 nanosecond range
	assert.Equal(t, time.Date(1601, 1, 1, 0, 0, 0, 100, time.UTC),
		filetimeToTime(1).UTC())

	// the unix epoch, expressed in 100ns ticks since 1601
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC),
		filetimeToTime(filetimeEpochDelta).UTC())

	// one second past the unix epoch
	assert.Equal(t, time.Date(1970, 1, 1, 0, 0, 1, 0, time.UTC),
		filetimeToTime(filetimeEpochDelta+10000000).UTC())
}
