package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClock_PinnedToIST(t *testing.T) {
	// 2025-03-09 23:45 UTC is already 2025-03-10 05:15 in IST.
	fixed := time.Date(2025, 3, 9, 23, 45, 0, 0, time.UTC)
	c := NewAt("Asia/Kolkata", func() time.Time { return fixed })

	assert.Equal(t, "2025-03-10", c.Today())
	assert.Equal(t, "05:15", c.NowHHMM())
}

func TestClock_DeviceZoneIrrelevant(t *testing.T) {
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.FixedZone("PST", -8*3600))
	c := NewAt("Asia/Kolkata", func() time.Time { return fixed })

	// 10:00 PST = 18:00 UTC = 23:30 IST, same calendar day.
	assert.Equal(t, "2025-06-01", c.Today())
	assert.Equal(t, "23:30", c.NowHHMM())
}

func TestClock_UnknownZoneFallsBackToIST(t *testing.T) {
	fixed := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewAt("Not/AZone", func() time.Time { return fixed })

	assert.Equal(t, "05:30", c.NowHHMM())
}
