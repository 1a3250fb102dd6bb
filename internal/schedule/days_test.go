package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uniplan/course-planner-api/internal/models"
)

func TestParseDaysBasic(t *testing.T) {
	days := ParseDays("Mo, We, Fr")
	require.Equal(t, []models.Weekday{models.Monday, models.Wednesday, models.Friday}, days)
}

func TestParseDaysTwoCharacterPrecedence(t *testing.T) {
	// "Th" must never be misread through a "T" prefix, and "Su" must not
	// collide with "Sa".
	assert.Equal(t, []models.Weekday{models.Thursday}, ParseDays("Th"))
	assert.Equal(t, []models.Weekday{models.Tuesday, models.Thursday}, ParseDays("Tu, Th"))
	assert.Equal(t, []models.Weekday{models.Saturday, models.Sunday}, ParseDays("Sa, Su"))
}

func TestParseDaysMalformedTokensDropped(t *testing.T) {
	assert.Equal(t, []models.Weekday{models.Monday}, ParseDays("Mo, Xx, Q"))
	assert.Nil(t, ParseDays(""))
	assert.Nil(t, ParseDays("  ,  "))
}

func TestParseDaysDeduplicates(t *testing.T) {
	assert.Equal(t, []models.Weekday{models.Monday}, ParseDays("Mo, Mo"))
}

func TestParseClock(t *testing.T) {
	require.NotNil(t, ParseClock("10:30"))
	assert.Equal(t, 630, *ParseClock("10:30"))
	assert.Equal(t, 0, *ParseClock("00:00"))
	assert.Equal(t, 1439, *ParseClock("23:59"))

	assert.Nil(t, ParseClock(""))
	assert.Nil(t, ParseClock("24:00"))
	assert.Nil(t, ParseClock("10:60"))
	assert.Nil(t, ParseClock("9:30"))
	assert.Nil(t, ParseClock("ab:cd"))
}
