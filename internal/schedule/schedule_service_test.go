package schedule_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/schedule"
	scheduleerrors "go-taskboard/internal/schedule/errors"
	"go-taskboard/internal/shared/dateutil"

	scheduleMock "go-taskboard/internal/schedule/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type scheduleDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service schedule.Service
	repo    *scheduleMock.MockRepository
}

func setupScheduleTest(t *testing.T) *scheduleDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := scheduleMock.NewMockRepository(ctrl)

	return &scheduleDeps{
		db:      db,
		sqlMock: sqlMock,
		service: schedule.NewService(db, repo),
		repo:    repo,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func sessionUser() domain.CurrentUser {
	return domain.CurrentUser{
		ID:       uuid.NewString(),
		Name:     "Trưởng nhóm 1",
		Role:     domain.RoleTeamLeader,
		TeamID:   uuid.NewString(),
		Location: domain.LocationHanoi,
	}
}

func TestScheduleService_CreatePlan(t *testing.T) {
	ctx := context.Background()
	tomorrow := dateutil.FormatLocalDate(time.Now().AddDate(0, 0, 1))

	t.Run("negative - ten rong khong duoc cham DB", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreatePlan(ctx, sessionUser(), schedule.CreatePlanRequest{
			Name:          "   ",
			ScheduledDate: tomorrow,
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrEmptyPlanName)
	})

	t.Run("negative - ngay qua khu", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreatePlan(ctx, sessionUser(), schedule.CreatePlanRequest{
			Name:          "Họp nhóm",
			ScheduledDate: "2000-01-01",
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrPastDate)
	})

	t.Run("negative - ngay sai dinh dang", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		_, err := deps.service.CreatePlan(ctx, sessionUser(), schedule.CreatePlanRequest{
			Name:          "Họp nhóm",
			ScheduledDate: "01/01/2030",
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrInvalidDate)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		u := sessionUser()
		deps.repo.EXPECT().
			CreatePlan(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, p *schedule.ScheduledTask) error {
				assert.Equal(t, "Họp nhóm", p.Name)
				assert.Equal(t, u.ID, p.CreatedBy.String())
				assert.Equal(t, u.Location, p.Location)
				return nil
			})

		resp, err := deps.service.CreatePlan(ctx, u, schedule.CreatePlanRequest{
			Name:          " Họp nhóm ",
			ScheduledDate: tomorrow,
		})

		assert.NoError(t, err)
		assert.Equal(t, tomorrow, resp.ScheduledDate)
	})
}

func TestScheduleService_SaveWeek(t *testing.T) {
	ctx := context.Background()

	anchor := "2026-03-18" // thứ Tư
	weekStart, _ := dateutil.ParseLocalDate("2026-03-16")
	weekEnd := weekStart.AddDate(0, 0, 6)
	employee := uuid.NewString()

	t.Run("negative - ngay ngoai tuan", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		_, err := deps.service.SaveWeek(ctx, sessionUser(), schedule.SaveWeekRequest{
			Date: anchor,
			Assignments: []schedule.AssignmentInput{
				{EmployeeID: employee, Date: "2026-03-25", Slot: schedule.SlotFullDay, Location: domain.LocationHanoi},
			},
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrOutsideWeek)
	})

	t.Run("negative - trung dung ca trong bo gui len", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		in := schedule.AssignmentInput{EmployeeID: employee, Date: "2026-03-17", Slot: schedule.SlotMorning, Location: domain.LocationHanoi}
		_, err := deps.service.SaveWeek(ctx, sessionUser(), schedule.SaveWeekRequest{
			Date:        anchor,
			Assignments: []schedule.AssignmentInput{in, in},
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftDuplicate)
	})

	t.Run("negative - mot nguoi hai ca cung ngay", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		_, err := deps.service.SaveWeek(ctx, sessionUser(), schedule.SaveWeekRequest{
			Date: anchor,
			Assignments: []schedule.AssignmentInput{
				{EmployeeID: employee, Date: "2026-03-17", Slot: schedule.SlotMorning, Location: domain.LocationHanoi},
				{EmployeeID: employee, Date: "2026-03-17", Slot: schedule.SlotEvening, Location: domain.LocationHanoi},
			},
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftNeedsConfirm)
	})

	t.Run("success - xoa ca tuan roi ghi lai trong mot transaction", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignmentsInRange(ctx, weekStart, weekEnd).Return(nil)
		deps.repo.EXPECT().
			BulkCreateAssignments(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, as []schedule.ShiftAssignment) error {
				assert.Len(t, as, 2)
				return nil
			})

		// Sau khi lưu, service đọc lại lưới
		deps.repo.EXPECT().FindAssignmentsInRange(ctx, weekStart, weekEnd).Return([]schedule.ShiftAssignment{}, nil)
		deps.repo.EXPECT().FindPlansInRange(ctx, weekStart, weekEnd).Return([]schedule.ScheduledTask{}, nil)

		grid, err := deps.service.SaveWeek(ctx, sessionUser(), schedule.SaveWeekRequest{
			Date: anchor,
			Assignments: []schedule.AssignmentInput{
				{EmployeeID: employee, Date: "2026-03-16", Slot: schedule.SlotFullDay, Location: domain.LocationHanoi},
				{EmployeeID: uuid.NewString(), Date: "2026-03-16", Slot: schedule.SlotFullDay, Location: domain.LocationHanoi},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "2026-03-16", grid.WeekStart)
		assert.Equal(t, "2026-03-22", grid.WeekEnd)
		assert.Len(t, grid.Days, 7)
	})

	t.Run("luu hong - khong commit", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignmentsInRange(ctx, weekStart, weekEnd).Return(assert.AnError)

		_, err := deps.service.SaveWeek(ctx, sessionUser(), schedule.SaveWeekRequest{
			Date: anchor,
			Assignments: []schedule.AssignmentInput{
				{EmployeeID: employee, Date: "2026-03-16", Slot: schedule.SlotFullDay, Location: domain.LocationHanoi},
			},
		})

		assert.Error(t, err)
	})
}

func TestScheduleService_AssignShift(t *testing.T) {
	ctx := context.Background()

	employee := uuid.NewString()
	date := "2026-03-17"
	parsedDate, _ := dateutil.ParseLocalDate(date)

	t.Run("negative - trung dung ca", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAssignmentsByEmployeeAndDate(ctx, employee, parsedDate).
			Return([]schedule.ShiftAssignment{
				{ID: uuid.New(), Slot: schedule.SlotMorning, ShiftDate: parsedDate},
			}, nil)

		_, err := deps.service.AssignShift(ctx, sessionUser(), schedule.AssignShiftRequest{
			EmployeeID: employee,
			Date:       date,
			Slot:       schedule.SlotMorning,
			Location:   domain.LocationHanoi,
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftDuplicate)
	})

	t.Run("negative - ca khac cung ngay, chua xac nhan", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAssignmentsByEmployeeAndDate(ctx, employee, parsedDate).
			Return([]schedule.ShiftAssignment{
				{ID: uuid.New(), Slot: schedule.SlotMorning, ShiftDate: parsedDate},
			}, nil)

		_, err := deps.service.AssignShift(ctx, sessionUser(), schedule.AssignShiftRequest{
			EmployeeID: employee,
			Date:       date,
			Slot:       schedule.SlotEvening,
			Location:   domain.LocationHanoi,
		})

		assert.ErrorIs(t, err, scheduleerrors.ErrShiftNeedsConfirm)
	})

	t.Run("success - xac nhan thay ca cu", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		old := schedule.ShiftAssignment{ID: uuid.New(), Slot: schedule.SlotMorning, ShiftDate: parsedDate}

		deps.repo.EXPECT().
			FindAssignmentsByEmployeeAndDate(ctx, employee, parsedDate).
			Return([]schedule.ShiftAssignment{old}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().DeleteAssignment(ctx, old.ID.String()).Return(nil)
		deps.repo.EXPECT().
			CreateAssignment(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, a *schedule.ShiftAssignment) error {
				assert.Equal(t, schedule.SlotEvening, a.Slot)
				assert.Equal(t, employee, a.EmployeeID.String())
				return nil
			})

		resp, err := deps.service.AssignShift(ctx, sessionUser(), schedule.AssignShiftRequest{
			EmployeeID:     employee,
			Date:           date,
			Slot:           schedule.SlotEvening,
			Location:       domain.LocationHanoi,
			ConfirmReplace: true,
		})

		assert.NoError(t, err)
		assert.Equal(t, date, resp.Date)
		assert.Equal(t, schedule.SlotEvening, resp.Slot)
	})

	t.Run("success - ngay trong khong can xac nhan", func(t *testing.T) {
		deps := setupScheduleTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAssignmentsByEmployeeAndDate(ctx, employee, parsedDate).
			Return([]schedule.ShiftAssignment{}, nil)

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().CreateAssignment(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.AssignShift(ctx, sessionUser(), schedule.AssignShiftRequest{
			EmployeeID: employee,
			Date:       date,
			Slot:       schedule.SlotFullDay,
			Location:   domain.LocationHanoi,
		})

		assert.NoError(t, err)
	})
}

