package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("someone@example.com"))
	assert.False(t, IsValidEmail("someone@"))
	assert.False(t, IsValidEmail("not-an-email"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2024-03-15")
	assert.True(t, ok)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())

	_, ok = IsValidDate("15-03-2024")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	assert.True(t, IsValidClockTime("08:00"))
	assert.True(t, IsValidClockTime("08:00:30"))
	assert.False(t, IsValidClockTime("25:00"))
	assert.False(t, IsValidClockTime("8am"))
}

func TestParseWeekday(t *testing.T) {
	d, ok := ParseWeekday("Sunday")
	assert.True(t, ok)
	assert.Equal(t, time.Sunday, d)

	d, ok = ParseWeekday(" friday ")
	assert.True(t, ok)
	assert.Equal(t, time.Friday, d)

	_, ok = ParseWeekday("Funday")
	assert.False(t, ok)
}

func TestIsValidHolidayName(t *testing.T) {
	assert.True(t, IsValidHolidayName("Eid Holidays"))
	assert.False(t, IsValidHolidayName("Eid 2024"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "from_date", Message: "from_date is required"},
		{Field: "to_date", Message: "to_date is required"},
	}
	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "from_date is required", m["from_date"])
	assert.Contains(t, errs.Error(), "to_date")
}
