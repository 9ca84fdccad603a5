package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatWeekRange(t *testing.T) {
	assert.Equal(t, "Mar 3 - Mar 7", FormatWeekRange(monday, 1))
	assert.Equal(t, "Mar 10 - Mar 14", FormatWeekRange(monday, 2))
}

func TestFormatDayDate(t *testing.T) {
	assert.Equal(t, "Mon, Mar 3", FormatDayDate(monday, 1))
	assert.Equal(t, "Mon, Mar 10", FormatDayDate(monday, 6))
}

func TestIsTodayAt(t *testing.T) {
	assert.True(t, IsTodayAt(monday, 1, monday))
	assert.False(t, IsTodayAt(monday, 2, monday))
	// Time of day does not matter.
	assert.True(t, IsTodayAt(monday, 1, monday.Add(17*time.Hour)))
}

func TestIsPastDayAt(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	assert.True(t, IsPastDayAt(monday, 1, tuesday))
	assert.False(t, IsPastDayAt(monday, 1, monday))
	assert.False(t, IsPastDayAt(monday, 2, monday))
}
