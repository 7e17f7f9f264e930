package schedule

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"go-taskboard/internal/domain"
	scheduleerrors "go-taskboard/internal/schedule/errors"
	"go-taskboard/internal/shared/contextutil"
	"go-taskboard/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=schedule_service.go -destination=mock/schedule_service_mock.go -package=mock
type Service interface {
	CreatePlan(ctx context.Context, u domain.CurrentUser, req CreatePlanRequest) (PlanResponse, error)
	GetWeek(ctx context.Context, u domain.CurrentUser, q WeekQuery) (WeekGridResponse, error)
	SaveWeek(ctx context.Context, u domain.CurrentUser, req SaveWeekRequest) (WeekGridResponse, error)
	AssignShift(ctx context.Context, u domain.CurrentUser, req AssignShiftRequest) (AssignmentResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("schedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.service")
	}
	return &service{db: db, repo: repo, logger: l, now: time.Now}
}

func (s *service) CreatePlan(ctx context.Context, u domain.CurrentUser, req CreatePlanRequest) (PlanResponse, error) {
	// Chặn trước khi chạm DB: tên rỗng và ngày quá khứ
	if strings.TrimSpace(req.Name) == "" {
		return PlanResponse{}, scheduleerrors.ErrEmptyPlanName
	}

	date, err := dateutil.ParseLocalDate(req.ScheduledDate)
	if err != nil {
		return PlanResponse{}, scheduleerrors.ErrInvalidDate
	}
	if dateutil.IsPastDate(date, s.now()) {
		return PlanResponse{}, scheduleerrors.ErrPastDate
	}

	creatorID, err := uuid.Parse(u.ID)
	if err != nil {
		return PlanResponse{}, scheduleerrors.ErrInvalidEmployee
	}

	p := &ScheduledTask{
		ID:            uuid.New(),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		ScheduledDate: date,
		ScheduledTime: req.ScheduledTime,
		CreatedBy:     creatorID,
		Location:      u.Location,
	}
	if req.TaskID != nil && *req.TaskID != "" {
		taskID, err := uuid.Parse(*req.TaskID)
		if err != nil {
			return PlanResponse{}, scheduleerrors.ErrInvalidTaskRef
		}
		p.TaskID = &taskID
	}

	if err := s.repo.CreatePlan(ctx, p); err != nil {
		s.logger.Error("create plan persist failed", zap.Error(err))
		return PlanResponse{}, err
	}

	return mapPlanToResponse(*p), nil
}

func (s *service) GetWeek(ctx context.Context, u domain.CurrentUser, q WeekQuery) (WeekGridResponse, error) {
	anchor, err := dateutil.ParseLocalDate(q.Date)
	if err != nil {
		return WeekGridResponse{}, scheduleerrors.ErrInvalidDate
	}

	from := dateutil.StartOfWeek(anchor)
	to := dateutil.EndOfWeek(anchor)

	return s.buildWeekGrid(ctx, from, to)
}

// SaveWeek thay thế toàn bộ assignment của tuần bằng bộ mới trong một
// transaction: xoá khoảng tuần rồi ghi lại. Lưu hỏng thì dữ liệu cũ
// còn nguyên.
func (s *service) SaveWeek(ctx context.Context, u domain.CurrentUser, req SaveWeekRequest) (WeekGridResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	anchor, err := dateutil.ParseLocalDate(req.Date)
	if err != nil {
		return WeekGridResponse{}, scheduleerrors.ErrInvalidDate
	}

	from := dateutil.StartOfWeek(anchor)
	to := dateutil.EndOfWeek(anchor)

	assignments, err := s.validateWeekSet(req.Assignments, from, to)
	if err != nil {
		return WeekGridResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save week begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return WeekGridResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.DeleteAssignmentsInRange(ctx, from, to); err != nil {
		s.logger.Error("save week clear range failed", zap.String("request_id", rid), zap.Error(err))
		return WeekGridResponse{}, err
	}
	if err := qtx.BulkCreateAssignments(ctx, assignments); err != nil {
		s.logger.Error("save week insert failed", zap.String("request_id", rid), zap.Error(err))
		return WeekGridResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save week commit failed", zap.String("request_id", rid), zap.Error(err))
		return WeekGridResponse{}, err
	}

	s.logger.Info("save week success",
		zap.String("request_id", rid),
		zap.String("week_start", dateutil.FormatLocalDate(from)),
		zap.Int("assignments", len(assignments)),
	)

	return s.buildWeekGrid(ctx, from, to)
}

// validateWeekSet kiểm tra bộ assignment gửi lên trước khi ghi:
// ngày phải nằm trong tuần, ca hợp lệ, và mỗi nhân viên một ca mỗi ngày.
func (s *service) validateWeekSet(inputs []AssignmentInput, from, to time.Time) ([]ShiftAssignment, error) {
	type dayKey struct {
		employee string
		date     string
	}
	seenExact := map[string]bool{}
	seenDay := map[dayKey]bool{}

	assignments := make([]ShiftAssignment, 0, len(inputs))
	for _, in := range inputs {
		employeeID, err := uuid.Parse(in.EmployeeID)
		if err != nil {
			return nil, scheduleerrors.ErrInvalidEmployee
		}
		date, err := dateutil.ParseLocalDate(in.Date)
		if err != nil {
			return nil, scheduleerrors.ErrInvalidDate
		}
		if !dateutil.WithinDays(date, from, to) {
			return nil, scheduleerrors.ErrOutsideWeek
		}
		if !ValidSlot(in.Slot) {
			return nil, scheduleerrors.ErrInvalidSlot
		}

		exact := in.EmployeeID + "|" + in.Date + "|" + in.Slot
		if seenExact[exact] {
			return nil, scheduleerrors.ErrShiftDuplicate
		}
		seenExact[exact] = true

		day := dayKey{employee: in.EmployeeID, date: in.Date}
		if seenDay[day] {
			// Hai ca khác nhau cùng ngày cho một người: client phải
			// giải quyết xung đột ở bước kéo-thả trước khi lưu
			return nil, scheduleerrors.ErrShiftNeedsConfirm
		}
		seenDay[day] = true

		assignments = append(assignments, ShiftAssignment{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			ShiftDate:  date,
			Slot:       in.Slot,
			Location:   in.Location,
		})
	}
	return assignments, nil
}

// AssignShift xử lý một thao tác thả vào lưới: trùng đúng ca là từ chối
// thẳng, trùng ngày khác ca thì đòi xác nhận rồi mới thay.
func (s *service) AssignShift(ctx context.Context, u domain.CurrentUser, req AssignShiftRequest) (AssignmentResponse, error) {
	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return AssignmentResponse{}, scheduleerrors.ErrInvalidEmployee
	}
	date, err := dateutil.ParseLocalDate(req.Date)
	if err != nil {
		return AssignmentResponse{}, scheduleerrors.ErrInvalidDate
	}
	if !ValidSlot(req.Slot) {
		return AssignmentResponse{}, scheduleerrors.ErrInvalidSlot
	}

	existing, err := s.repo.FindAssignmentsByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		return AssignmentResponse{}, err
	}

	for _, a := range existing {
		if a.Slot == req.Slot {
			return AssignmentResponse{}, scheduleerrors.ErrShiftDuplicate
		}
	}
	if len(existing) > 0 && !req.ConfirmReplace {
		return AssignmentResponse{}, scheduleerrors.ErrShiftNeedsConfirm
	}

	assignment := &ShiftAssignment{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		ShiftDate:  date,
		Slot:       req.Slot,
		Location:   req.Location,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AssignmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	for _, a := range existing {
		if err := qtx.DeleteAssignment(ctx, a.ID.String()); err != nil {
			s.logger.Error("replace shift delete failed",
				zap.String("assignment_id", a.ID.String()),
				zap.Error(err),
			)
			return AssignmentResponse{}, err
		}
	}
	if err := qtx.CreateAssignment(ctx, assignment); err != nil {
		s.logger.Error("assign shift persist failed", zap.Error(err))
		return AssignmentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return AssignmentResponse{}, err
	}

	return mapAssignmentToResponse(*assignment), nil
}

func (s *service) buildWeekGrid(ctx context.Context, from, to time.Time) (WeekGridResponse, error) {
	assignments, err := s.repo.FindAssignmentsInRange(ctx, from, to)
	if err != nil {
		// Lưới hỏng không được sập màn hình: trả lưới rỗng và log lỗi
		s.logger.Error("load week assignments failed", zap.Error(err))
		assignments = nil
	}
	plans, err := s.repo.FindPlansInRange(ctx, from, to)
	if err != nil {
		s.logger.Error("load week plans failed", zap.Error(err))
		plans = nil
	}

	grid := WeekGridResponse{
		WeekStart:   dateutil.FormatLocalDate(from),
		WeekEnd:     dateutil.FormatLocalDate(to),
		Days:        make([]string, 0, 7),
		Assignments: make(map[string][]AssignmentResponse),
		Plans:       make(map[string][]PlanResponse),
	}
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		grid.Days = append(grid.Days, dateutil.FormatLocalDate(d))
	}
	for _, a := range assignments {
		key := dateutil.FormatLocalDate(a.ShiftDate)
		grid.Assignments[key] = append(grid.Assignments[key], mapAssignmentToResponse(a))
	}
	for _, p := range plans {
		key := dateutil.FormatLocalDate(p.ScheduledDate)
		grid.Plans[key] = append(grid.Plans[key], mapPlanToResponse(p))
	}
	return grid, nil
}

func mapPlanToResponse(p ScheduledTask) PlanResponse {
	resp := PlanResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		ScheduledDate: dateutil.FormatLocalDate(p.ScheduledDate),
		ScheduledTime: p.ScheduledTime,
		CreatedBy:     p.CreatedBy.String(),
		Location:      p.Location,
	}
	if p.TaskID != nil {
		resp.TaskID = p.TaskID.String()
	}
	return resp
}

func mapAssignmentToResponse(a ShiftAssignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       dateutil.FormatLocalDate(a.ShiftDate),
		Slot:       a.Slot,
		Location:   a.Location,
	}
}
