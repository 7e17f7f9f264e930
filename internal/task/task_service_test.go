package task_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/task"
	taskerrors "go-taskboard/internal/task/errors"

	kafkaMock "go-taskboard/internal/messaging/kafka/mock"
	permMock "go-taskboard/internal/permission/mock"
	taskMock "go-taskboard/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service task.Service
	repo    *taskMock.MockRepository
	perm    *permMock.MockService
	outbox  *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := taskMock.NewMockRepository(ctrl)
	perm := permMock.NewMockService(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := task.NewService(db, repo, perm, outbox)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		perm:    perm,
		outbox:  outbox,
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

func leaderUser() domain.CurrentUser {
	return domain.CurrentUser{
		ID:       uuid.NewString(),
		Name:     "Trưởng nhóm 1",
		Role:     domain.RoleTeamLeader,
		TeamID:   uuid.NewString(),
		Location: domain.LocationHanoi,
	}
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - nguoi tao tu nhan viec khi khong chi dinh", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		req := task.CreateTaskRequest{
			Name:      "Báo giá dự án",
			WorkTypes: []string{task.WorkTypeQuoteNew, "khong-biet"},
		}

		var createdID string
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, tk *task.Task) error {
				assert.Equal(t, u.ID, tk.CreatedBy.String())
				assert.Equal(t, u.ID, tk.AssignedTo.String())
				assert.Equal(t, u.TeamID, tk.TeamID.String())
				assert.Equal(t, u.Location, tk.Location)
				assert.Equal(t, task.StatusNewRequests, tk.Status)
				assert.Equal(t, task.PriorityNormal, tk.Priority)
				assert.Equal(t, permission.ScopeTeam, tk.ShareScope)
				assert.Equal(t, task.WorkTypeList{task.WorkTypeQuoteNew, task.WorkTypeOther}, tk.WorkTypes)
				createdID = tk.ID.String()
				return nil
			})

		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		deps.repo.EXPECT().
			FindByID(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, id string) (*task.Task, error) {
				return nil, errors.New("no preload in test")
			})

		resp, err := deps.service.Create(ctx, u, req)

		assert.NoError(t, err)
		assert.Equal(t, createdID, resp.ID)
		assert.Equal(t, task.StatusNewRequests, resp.Status)
	})

	t.Run("negative - ngay sai dinh dang", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		bad := "18/03/2026"
		_, err := deps.service.Create(ctx, leaderUser(), task.CreateTaskRequest{
			Name:    "Việc",
			DueDate: &bad,
		})

		assert.ErrorIs(t, err, taskerrors.ErrInvalidDateFormat)
	})

	t.Run("negative - bat dau sau han chot", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		start := "2026-03-20"
		due := "2026-03-18"
		_, err := deps.service.Create(ctx, leaderUser(), task.CreateTaskRequest{
			Name:      "Việc",
			StartDate: &start,
			DueDate:   &due,
		})

		assert.ErrorIs(t, err, taskerrors.ErrInvalidDateRange)
	})

	t.Run("negative - nguoi duoc giao khong hop le", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		badAssignee := "not-a-uuid"
		_, err := deps.service.Create(ctx, leaderUser(), task.CreateTaskRequest{
			Name:       "Việc",
			AssignedTo: &badAssignee,
		})

		assert.ErrorIs(t, err, taskerrors.ErrInvalidAssignee)
	})
}

func TestTaskService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("negative - khong co quyen xem", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		id := uuid.NewString()
		stored := &task.Task{
			ID:         uuid.MustParse(id),
			Name:       "Việc riêng của người khác",
			Status:     task.StatusApproved,
			ShareScope: permission.ScopePrivate,
			CreatedBy:  uuid.New(),
			Location:   domain.LocationHCM,
		}

		deps.repo.EXPECT().FindByID(ctx, id).Return(stored, nil)
		deps.perm.EXPECT().CanViewTask(ctx, u, gomock.Any()).Return(false, nil)

		_, err := deps.service.GetByID(ctx, u, id)

		assert.ErrorIs(t, err, taskerrors.ErrTaskForbidden)
	})

	t.Run("negative - id khong hop le", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.GetByID(ctx, leaderUser(), "abc")

		assert.ErrorIs(t, err, taskerrors.ErrInvalidTaskID)
	})
}

func TestTaskService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("negative - employee khong duoc mo tab team-tasks", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		u.Role = domain.RoleEmployee

		caps, _ := permission.ResolveCapabilities(u)
		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)

		_, err := deps.service.List(ctx, u, task.ListTasksQuery{Tab: domain.TabTeamTasks})

		assert.ErrorIs(t, err, taskerrors.ErrTabNotAllowed)
	})

	t.Run("negative - chua thuoc nhom nao", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		u.TeamID = ""

		caps, _ := permission.ResolveCapabilities(u)
		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)

		_, err := deps.service.List(ctx, u, task.ListTasksQuery{Tab: domain.TabTeamTasks})

		assert.ErrorIs(t, err, taskerrors.ErrNoTeam)
	})

	t.Run("query hong - tra danh sach rong, khong loi", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		caps, _ := permission.ResolveCapabilities(u)
		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		deps.repo.EXPECT().FindOwn(ctx, u.ID).Return(nil, errors.New("db down"))

		groups, err := deps.service.List(ctx, u, task.ListTasksQuery{Tab: domain.TabMyTasks})

		assert.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("success - loc quyen tung task roi chia nhom", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		caps, _ := permission.ResolveCapabilities(u)

		visible := task.Task{
			ID:        uuid.New(),
			Name:      "Việc thấy được",
			Status:    task.StatusApproved,
			CreatedBy: uuid.MustParse(u.ID),
			Location:  u.Location,
		}
		hidden := task.Task{
			ID:         uuid.New(),
			Name:       "Việc riêng",
			Status:     task.StatusApproved,
			ShareScope: permission.ScopePrivate,
			CreatedBy:  uuid.New(),
			Location:   u.Location,
		}

		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		deps.repo.EXPECT().
			FindDepartment(ctx, u.ID, u.Location).
			Return([]task.Task{visible, hidden}, nil)
		deps.perm.EXPECT().
			CanViewTask(ctx, u, gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.CurrentUser, tv permission.TaskView) (bool, error) {
				return tv.ID == visible.ID.String(), nil
			}).
			Times(2)

		groups, err := deps.service.List(ctx, u, task.ListTasksQuery{Tab: domain.TabDepartmentTasks})

		assert.NoError(t, err)
		assert.Len(t, groups, 1)
		assert.Equal(t, task.StatusApproved, groups[0].Key)
		assert.Len(t, groups[0].Tasks, 1)
		assert.Equal(t, "Việc thấy được", groups[0].Tasks[0].Name)
	})

	t.Run("employee bi ghim vao khu vuc cua minh", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		u.Role = domain.RoleEmployee
		caps, _ := permission.ResolveCapabilities(u)

		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		// Dù query đòi hcm, repo vẫn phải được gọi với khu vực của user
		deps.repo.EXPECT().
			FindDepartment(ctx, u.ID, domain.LocationHanoi).
			Return([]task.Task{}, nil)

		groups, err := deps.service.List(ctx, u, task.ListTasksQuery{
			Tab:      domain.TabDepartmentTasks,
			Location: domain.LocationHCM,
		})

		assert.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestTaskService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success - xoa va vo hieu cache quyen", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		id := uuid.NewString()
		stored := &task.Task{
			ID:        uuid.MustParse(id),
			Name:      "Việc cần xoá",
			Status:    task.StatusLive,
			CreatedBy: uuid.MustParse(u.ID),
			Location:  u.Location,
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(stored, nil)
		deps.perm.EXPECT().CanEditTask(ctx, u, gomock.Any()).Return(true, nil)
		deps.repo.EXPECT().Delete(ctx, id).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.perm.EXPECT().InvalidateTask(ctx, id)

		err := deps.service.Delete(ctx, u, id)

		assert.NoError(t, err)
	})

	t.Run("negative - khong co quyen sua", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		u := leaderUser()
		id := uuid.NewString()
		stored := &task.Task{
			ID:        uuid.MustParse(id),
			CreatedBy: uuid.New(),
			Location:  domain.LocationHCM,
		}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(stored, nil)
		deps.perm.EXPECT().CanEditTask(ctx, u, gomock.Any()).Return(false, nil)

		err := deps.service.Delete(ctx, u, id)

		assert.ErrorIs(t, err, taskerrors.ErrTaskForbidden)
	})
}
