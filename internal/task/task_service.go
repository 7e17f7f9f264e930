package task

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/events"
	"go-taskboard/internal/messaging/kafka"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/shared/contextutil"
	"go-taskboard/internal/shared/dateutil"
	taskerrors "go-taskboard/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_service.go -destination=mock/task_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, u domain.CurrentUser, req CreateTaskRequest) (TaskResponse, error)
	GetByID(ctx context.Context, u domain.CurrentUser, id string) (TaskResponse, error)
	Update(ctx context.Context, u domain.CurrentUser, id string, req UpdateTaskRequest) (TaskResponse, error)
	Delete(ctx context.Context, u domain.CurrentUser, id string) error
	List(ctx context.Context, u domain.CurrentUser, q ListTasksQuery) ([]StatusGroup, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	perm   permission.Service
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(
	db *sql.DB,
	repo Repository,
	perm permission.Service,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		perm:   perm,
		outbox: outboxRepo,
		logger: l,
		now:    time.Now,
	}
}

func (s *service) Create(ctx context.Context, u domain.CurrentUser, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if u.IsZero() {
		return TaskResponse{}, taskerrors.ErrTaskForbidden
	}

	startDate, dueDate, err := parseTaskDates(req.StartDate, req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}

	creatorID, err := uuid.Parse(u.ID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	// Không chỉ định người làm thì người tạo tự nhận việc
	assignedTo := creatorID
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		assignedTo, err = uuid.Parse(*req.AssignedTo)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidAssignee
		}
	}

	workTypes := make(WorkTypeList, 0, len(req.WorkTypes))
	for _, wt := range req.WorkTypes {
		workTypes = append(workTypes, NormalizeWorkType(wt))
	}

	t := &Task{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		WorkTypes:   workTypes,
		Priority:    defaultIfEmpty(req.Priority, PriorityNormal),
		Status:      StatusNewRequests,
		ShareScope:  defaultIfEmpty(req.ShareScope, permission.ScopeTeam),
		CreatedBy:   creatorID,
		AssignedTo:  &assignedTo,
		Location:    u.Location,
		StartDate:   startDate,
		DueDate:     dueDate,
	}
	if u.TeamID != "" {
		if teamID, err := uuid.Parse(u.TeamID); err == nil {
			t.TeamID = &teamID
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	if err := s.queueTaskEvent(ctx, tx, events.TaskEventCreated, t, u); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create task commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("create task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)

	// Preload creator/assignee để response có tên người
	if full, err := s.repo.FindByID(ctx, t.ID.String()); err == nil {
		t = full
	}
	return mapToResponse(*t), nil
}

func (s *service) GetByID(ctx context.Context, u domain.CurrentUser, id string) (TaskResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}

	ok, err := s.perm.CanViewTask(ctx, u, taskView(*t))
	if err != nil {
		return TaskResponse{}, err
	}
	if !ok {
		return TaskResponse{}, taskerrors.ErrTaskForbidden
	}

	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, u domain.CurrentUser, id string, req UpdateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	startDate, dueDate, err := parseTaskDates(req.StartDate, req.DueDate)
	if err != nil {
		return TaskResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}

	ok, err := s.perm.CanEditTask(ctx, u, taskView(*t))
	if err != nil {
		return TaskResponse{}, err
	}
	if !ok {
		return TaskResponse{}, taskerrors.ErrTaskForbidden
	}

	workTypes := make(WorkTypeList, 0, len(req.WorkTypes))
	for _, wt := range req.WorkTypes {
		workTypes = append(workTypes, NormalizeWorkType(wt))
	}

	t.Name = req.Name
	t.Description = req.Description
	t.WorkTypes = workTypes
	t.Priority = req.Priority
	t.Status = req.Status
	t.ShareScope = req.ShareScope
	t.StartDate = startDate
	t.DueDate = dueDate

	if req.AssignedTo != nil && *req.AssignedTo != "" {
		assignee, err := uuid.Parse(*req.AssignedTo)
		if err != nil {
			return TaskResponse{}, taskerrors.ErrInvalidAssignee
		}
		t.AssignedTo = &assignee
	}

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Error("update task persist failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	if err := s.queueTaskEvent(ctx, tx, events.TaskEventUpdated, t, u); err != nil {
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update task commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	// Xoá ngay cache quyết định trên instance này, các instance khác
	// nhận qua event.
	s.perm.InvalidateTask(ctx, t.ID.String())

	s.logger.Info("update task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, u domain.CurrentUser, id string) error {
	rid := contextutil.GetRequestID(ctx)

	if _, err := uuid.Parse(id); err != nil {
		return taskerrors.ErrInvalidTaskID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return taskerrors.ErrTaskNotFound
		}
		return err
	}

	ok, err := s.perm.CanEditTask(ctx, u, taskView(*t))
	if err != nil {
		return err
	}
	if !ok {
		return taskerrors.ErrTaskForbidden
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete task persist failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.queueTaskEvent(ctx, tx, events.TaskEventDeleted, t, u); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete task commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.perm.InvalidateTask(ctx, t.ID.String())

	s.logger.Info("delete task success",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
	)
	return nil
}

// List trả về task của tab đang mở, đã lọc quyền xem từng task,
// đã qua bộ lọc người dùng và đã chia nhóm theo trạng thái.
func (s *service) List(ctx context.Context, u domain.CurrentUser, q ListTasksQuery) ([]StatusGroup, error) {
	caps, err := s.perm.Capabilities(u)
	if err != nil {
		return nil, err
	}
	if !caps.CanUseTab(q.Tab) {
		return nil, taskerrors.ErrTabNotAllowed
	}

	// Người không có quyền chọn khu vực luôn bị ghim vào khu vực của mình
	location := u.Location
	if q.Location != "" && caps.CanSeeLocationTabs {
		location = q.Location
	}

	var tasks []Task
	switch q.Tab {
	case domain.TabMyTasks:
		tasks, err = s.repo.FindOwn(ctx, u.ID)

	case domain.TabTeamTasks:
		teamID := u.TeamID
		if q.TeamID != "" && caps.CanSeeTeamSelector {
			teamID = q.TeamID
		}
		if teamID == "" {
			return nil, taskerrors.ErrNoTeam
		}
		tasks, err = s.repo.FindByTeam(ctx, teamID)

	case domain.TabDepartmentTasks:
		tasks, err = s.repo.FindDepartment(ctx, u.ID, location)
	}

	if err != nil {
		// Query hỏng không được làm vỡ cả màn hình: trả danh sách rỗng
		s.logger.Error("list tasks query failed",
			zap.String("tab", q.Tab),
			zap.String("user_id", u.ID),
			zap.Error(err),
		)
		return []StatusGroup{}, nil
	}

	visible := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := s.perm.CanViewTask(ctx, u, taskView(t))
		if err != nil {
			s.logger.Warn("task view check failed, skipping task",
				zap.String("task_id", t.ID.String()),
				zap.Error(err),
			)
			continue
		}
		if ok {
			visible = append(visible, t)
		}
	}

	filtered := ApplyFilters(visible, Filters{
		SearchTerm: q.Search,
		DateFilter: q.DateFilter,
		WorkType:   q.WorkType,
		Priority:   q.Priority,
	}, s.now())

	return GroupByStatus(filtered), nil
}

func (s *service) queueTaskEvent(ctx context.Context, tx *sql.Tx, eventType string, t *Task, u domain.CurrentUser) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.TaskChangedEvent{
		EventType:  eventType,
		RequestID:  rid,
		TaskID:     t.ID.String(),
		Location:   t.Location,
		ActorID:    u.ID,
		OccurredAt: time.Now().UTC(),
	}
	if t.TeamID != nil {
		event.TeamID = t.TeamID.String()
	}

	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal task event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "task",
		AggregateID:   t.ID.String(),
		EventType:     eventType,
		Topic:         events.TaskChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}); err != nil {
		s.logger.Error("queue task event failed",
			zap.String("task_id", t.ID.String()),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func taskView(t Task) permission.TaskView {
	v := permission.TaskView{
		ID:         t.ID.String(),
		CreatedBy:  t.CreatedBy.String(),
		Location:   t.Location,
		ShareScope: t.ShareScope,
	}
	if t.AssignedTo != nil {
		v.AssignedTo = t.AssignedTo.String()
	}
	if t.TeamID != nil {
		v.TeamID = t.TeamID.String()
	}
	return v
}

func parseTaskDates(start, due *string) (*time.Time, *time.Time, error) {
	var startDate, dueDate *time.Time

	if start != nil && *start != "" {
		d, err := dateutil.ParseLocalDate(*start)
		if err != nil {
			return nil, nil, taskerrors.ErrInvalidDateFormat
		}
		startDate = &d
	}
	if due != nil && *due != "" {
		d, err := dateutil.ParseLocalDate(*due)
		if err != nil {
			return nil, nil, taskerrors.ErrInvalidDateFormat
		}
		dueDate = &d
	}
	if startDate != nil && dueDate != nil && startDate.After(*dueDate) {
		return nil, nil, taskerrors.ErrInvalidDateRange
	}
	return startDate, dueDate, nil
}

func defaultIfEmpty(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		Description: t.Description,
		WorkTypes:   append([]string{}, t.WorkTypes...),
		Priority:    t.Priority,
		Status:      t.Status,
		ShareScope:  t.ShareScope,
		CreatedBy:   t.CreatedBy.String(),
		Location:    t.Location,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.AssignedTo != nil {
		resp.AssignedTo = t.AssignedTo.String()
	}
	if t.TeamID != nil {
		resp.TeamID = t.TeamID.String()
	}
	if t.Creator != nil {
		resp.CreatorName = t.Creator.Name
	}
	if t.Assignee != nil {
		resp.AssigneeName = t.Assignee.Name
	}
	if t.StartDate != nil {
		resp.StartDate = dateutil.FormatLocalDate(*t.StartDate)
	}
	if t.DueDate != nil {
		resp.DueDate = dateutil.FormatLocalDate(*t.DueDate)
	}
	return resp
}
