package services

import (
	"context"
	"testing"
	"time"

	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/calendar"
	"ems-portal/internal/testhelpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAttendanceService(now *time.Time) *AttendanceService {
	db := testhelpers.NewMemoryDB()
	svc := NewAttendanceService(db.Attendance(), calendar.New())
	svc.now = func() time.Time { return *now }
	return svc
}

func TestCheckInAndOut(t *testing.T) {
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(&now)
	ctx := context.Background()

	_, err := svc.CheckOut(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	record, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-12", record.WorkDate)

	_, err = svc.CheckIn(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	now = now.Add(8*time.Hour + 15*time.Minute)
	record, err = svc.CheckOut(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 8.25, record.TotalHours)

	_, err = svc.CheckOut(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	// Another employee is independent
	_, err = svc.CheckIn(ctx, 2)
	assert.NoError(t, err)
}

func TestCheckInUsesUTCWorkDate(t *testing.T) {
	// 20:30 on March 12 at UTC-5 is already March 13 in UTC
	now := time.Date(2025, time.March, 12, 20, 30, 0, 0, time.FixedZone("EST", -5*3600))
	svc := newAttendanceService(&now)

	record, err := svc.CheckIn(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-03-13", record.WorkDate)
	assert.Equal(t, time.UTC, record.CheckIn.Location())
}

func TestMonthlyReport(t *testing.T) {
	now := time.Date(2025, time.March, 3, 9, 30, 0, 0, time.UTC)
	svc := newAttendanceService(&now)
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	now = time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)
	_, err = svc.CheckIn(ctx, 1)
	require.NoError(t, err)

	report, err := svc.Report(ctx, 1, 2025, 3)
	require.NoError(t, err)

	require.Len(t, report.Days, 31)
	assert.Equal(t, 21, report.WorkingDays)
	assert.Equal(t, 2, report.Present)
	assert.Equal(t, 6, report.Absent)

	assert.Equal(t, domain.AttendanceWeekend, report.Days[0].Status) // Sat 1st
	assert.Equal(t, domain.AttendancePresent, report.Days[2].Status) // Mon 3rd
	assert.NotNil(t, report.Days[2].CheckIn)
	assert.Equal(t, domain.AttendanceAbsent, report.Days[3].Status)  // Tue 4th
	assert.Equal(t, domain.AttendancePresent, report.Days[11].Status) // today
	assert.Equal(t, "", report.Days[12].Status)                      // tomorrow
}

func TestMonthlyReportHoliday(t *testing.T) {
	now := time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)
	svc := newAttendanceService(&now)

	report, err := svc.Report(context.Background(), 1, 2025, 8)
	require.NoError(t, err)
	assert.Equal(t, domain.AttendanceHoliday, report.Days[14].Status) // Independence Day, a Friday
	assert.Equal(t, 20, report.WorkingDays)
	assert.Equal(t, 20, report.Absent)
}

func TestMonthlyReportValidation(t *testing.T) {
	now := time.Now()
	svc := newAttendanceService(&now)

	_, err := svc.Report(context.Background(), 1, 2025, 13)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = svc.Report(context.Background(), 1, 10, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
