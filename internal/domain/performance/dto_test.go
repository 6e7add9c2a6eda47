package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

func TestWeeksInMonthSplitsOnSaturdays(t *testing.T) {
	// August 2026 starts on a Saturday.
	weeks := WeeksInMonth(2026, time.August)

	require.Len(t, weeks, 6)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), weeks[0].Start)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), weeks[0].End)
	assert.Equal(t, time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), weeks[1].Start)
	assert.Equal(t, time.Date(2026, time.August, 8, 0, 0, 0, 0, time.UTC), weeks[1].End)
	assert.Equal(t, time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC), weeks[5].Start)
	assert.Equal(t, time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC), weeks[5].End)
}

func TestWeeksInMonthCoverEveryDayExactlyOnce(t *testing.T) {
	weeks := WeeksInMonth(2026, time.February)

	total := 0
	for _, w := range weeks {
		total += int(w.End.Sub(w.Start).Hours()/24) + 1
	}
	assert.Equal(t, 28, total)
}

func TestPeriodRangeFullMonth(t *testing.T) {
	p := Period{Month: 6, Year: 2026}
	start, end := p.Range()

	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.June, 30, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodRangeWeekSegment(t *testing.T) {
	week := 1
	p := Period{Month: 8, Year: 2026, Week: &week}
	start, end := p.Range()

	assert.Equal(t, time.Date(2026, time.August, 2, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.August, 8, 0, 0, 0, 0, time.UTC), end)
}

func TestPeriodValidateRejectsBadMonthAndYear(t *testing.T) {
	p := Period{Month: 13, Year: 1999}
	err := p.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := errs.ToMap()
	assert.Contains(t, fields, "bulan")
	assert.Contains(t, fields, "tahun")
}

func TestPeriodValidateRejectsOutOfRangeWeek(t *testing.T) {
	week := 9
	p := Period{Month: 8, Year: 2026, Week: &week}
	err := p.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.ToMap(), "minggu")
}

func TestPeriodValidateAcceptsValidInput(t *testing.T) {
	week := 0
	p := Period{Month: 1, Year: 2026, Week: &week}
	assert.NoError(t, p.Validate())
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.Equal(t, VariantPointDeduction, p.Variant)

	p, err = PolicyByName("saw")
	require.NoError(t, err)
	assert.Equal(t, VariantSAW, p.Variant)
	assert.Equal(t, 30, p.GraceMinutes)

	_, err = PolicyByName("bogus")
	require.Error(t, err)

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}
