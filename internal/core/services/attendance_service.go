package services

import (
	"context"
	"fmt"
	"math"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"
	"ems-portal/internal/core/domain"
	"ems-portal/internal/pkg/calendar"
	"ems-portal/internal/pkg/logger"
)

const dateLayout = "2006-01-02"

// AttendanceService handles daily check-in/check-out and monthly reports.
// Work dates are UTC calendar days.
type AttendanceService struct {
	attendanceRepo repositories.AttendanceRepository
	calendar       *calendar.Calendar
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo repositories.AttendanceRepository, cal *calendar.Calendar) *AttendanceService {
	return &AttendanceService{attendanceRepo: attendanceRepo, calendar: cal, now: time.Now}
}

// CheckIn records today's arrival; once per day
func (s *AttendanceService) CheckIn(ctx context.Context, employeeID uint) (*models.Attendance, error) {
	now := s.now().UTC()
	day := now.Format(dateLayout)

	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day); err == nil {
		return nil, fmt.Errorf("%w: already checked in today", domain.ErrInvalidState)
	} else if !isNotFound(err) {
		return nil, storageError("load attendance", err)
	}

	record := &models.Attendance{
		EmployeeID: employeeID,
		WorkDate:   day,
		CheckIn:    now,
	}
	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: already checked in today", domain.ErrInvalidState)
		}
		return nil, storageError("create attendance", err)
	}

	logger.Log.Infof("✅ Check-in: employee_id=%d date=%s", employeeID, day)
	return record, nil
}

// CheckOut records today's departure and the hours worked
func (s *AttendanceService) CheckOut(ctx context.Context, employeeID uint) (*models.Attendance, error) {
	now := s.now().UTC()
	day := now.Format(dateLayout)

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: not checked in today", domain.ErrInvalidState)
		}
		return nil, storageError("load attendance", err)
	}
	if record.CheckOut != nil {
		return nil, fmt.Errorf("%w: already checked out today", domain.ErrInvalidState)
	}

	record.CheckOut = &now
	record.TotalHours = math.Round(now.Sub(record.CheckIn).Hours()*100) / 100
	if err := s.attendanceRepo.Update(ctx, record); err != nil {
		return nil, storageError("update attendance", err)
	}

	logger.Log.Infof("✅ Check-out: employee_id=%d hours=%.2f", employeeID, record.TotalHours)
	return record, nil
}

// Report builds the monthly attendance of an employee. Past working days
// without a record are Absent; future days carry no status.
func (s *AttendanceService) Report(ctx context.Context, employeeID uint, year, month int) (*domain.AttendanceReport, error) {
	if month < 1 || month > 12 {
		return nil, invalid("month must be between 1 and 12")
	}
	if year < 1900 || year > 9999 {
		return nil, invalid("year is out of range")
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	records, err := s.attendanceRepo.ListByEmployeeBetween(ctx, employeeID, first.Format(dateLayout), last.Format(dateLayout))
	if err != nil {
		return nil, storageError("list attendance", err)
	}
	byDay := make(map[string]*models.Attendance, len(records))
	for _, r := range records {
		byDay[r.WorkDate] = r
	}

	today := s.now().UTC().Format(dateLayout)
	report := &domain.AttendanceReport{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		Days:       make([]domain.AttendanceDay, 0, last.Day()),
	}

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)
		kind := s.calendar.Kind(d)
		if kind == calendar.Workday {
			report.WorkingDays++
		}

		day := domain.AttendanceDay{Date: date}
		switch rec, ok := byDay[date]; {
		case ok:
			checkIn := rec.CheckIn
			day.Status = domain.AttendancePresent
			day.CheckIn = &checkIn
			day.CheckOut = rec.CheckOut
			day.TotalHours = rec.TotalHours
			report.Present++
		case kind == calendar.Holiday:
			day.Status = domain.AttendanceHoliday
		case kind == calendar.Weekend:
			day.Status = domain.AttendanceWeekend
		case date < today:
			day.Status = domain.AttendanceAbsent
			report.Absent++
		}
		report.Days = append(report.Days, day)
	}

	return report, nil
}
