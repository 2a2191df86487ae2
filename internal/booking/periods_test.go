package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotEndTimeTable(t *testing.T) {
	t.Parallel()
	want := map[int]string{
		1: "09:40",
		2: "10:30",
		3: "11:40",
		4: "12:30",
		5: "14:20",
		6: "15:10",
		7: "16:00",
	}
	for period, hm := range want {
		got, err := SlotEndTime("2025-03-21", period)
		require.NoError(t, err)
		assert.Equal(t, hm, got.Format("15:04"), "period %d", period)
		assert.Equal(t, "2025-03-21", got.Format("2006-01-02"))
		assert.Equal(t, time.Local, got.Location())
	}
}

func TestSlotEndTimeRejectsBadInput(t *testing.T) {
	t.Parallel()
	for _, period := range []int{-1, 0, 8, 100} {
		_, err := SlotEndTime("2025-03-21", period)
		assert.ErrorIs(t, err, ErrInvalidInput, "period %d", period)
	}
	for _, date := range []string{"", "21-03-2025", "2025/03/21", "2025-13-40"} {
		_, err := SlotEndTime(date, 1)
		assert.ErrorIs(t, err, ErrInvalidInput, "date %q", date)
	}
}
