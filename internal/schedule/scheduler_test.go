package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextAtLaterToday(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 7, 18, 9, 0, 0, 0, loc)
	next := NextAt(now, 19*60+30, loc)
	assert.Equal(t, time.Date(2024, 7, 18, 19, 30, 0, 0, loc), next)
}

func TestNextAtRollsToTomorrow(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 7, 18, 20, 0, 0, 0, loc)
	next := NextAt(now, 19*60+30, loc)
	assert.Equal(t, time.Date(2024, 7, 19, 19, 30, 0, 0, loc), next)
}

func TestNextAtExactTimeRolls(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 7, 18, 19, 30, 0, 0, loc)
	next := NextAt(now, 19*60+30, loc)
	assert.Equal(t, time.Date(2024, 7, 19, 19, 30, 0, 0, loc), next)
}

func TestNextAtMonthBoundary(t *testing.T) {
	loc := time.Local
	now := time.Date(2024, 1, 31, 23, 0, 0, 0, loc)
	next := NextAt(now, 8*60, loc)
	assert.Equal(t, time.Date(2024, 2, 1, 8, 0, 0, 0, loc), next)
}
