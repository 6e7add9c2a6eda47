package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "08:00", "09:30", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidClockTime(v), v)
	}

	invalid := []string{"24:00", "8:00", "08:60", "08:00:00", "", "late"}
	for _, v := range invalid {
		assert.False(t, IsValidClockTime(v), v)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("28-02-2025")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "bulan", Message: "bulan must be between 1 and 12"},
		{Field: "tahun", Message: "tahun is required"},
	}

	m := errs.ToMap()
	assert.Equal(t, "bulan must be between 1 and 12", m["bulan"])
	assert.Equal(t, "tahun is required", m["tahun"])
	assert.Contains(t, errs.Error(), "bulan:")
}
