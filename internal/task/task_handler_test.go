package task_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/task"
	taskerrors "go-taskboard/internal/task/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeTaskService struct {
	CreateFn  func(ctx context.Context, u domain.CurrentUser, req task.CreateTaskRequest) (task.TaskResponse, error)
	GetByIDFn func(ctx context.Context, u domain.CurrentUser, id string) (task.TaskResponse, error)
	UpdateFn  func(ctx context.Context, u domain.CurrentUser, id string, req task.UpdateTaskRequest) (task.TaskResponse, error)
	DeleteFn  func(ctx context.Context, u domain.CurrentUser, id string) error
	ListFn    func(ctx context.Context, u domain.CurrentUser, q task.ListTasksQuery) ([]task.StatusGroup, error)
}

func (f *fakeTaskService) Create(ctx context.Context, u domain.CurrentUser, req task.CreateTaskRequest) (task.TaskResponse, error) {
	return f.CreateFn(ctx, u, req)
}
func (f *fakeTaskService) GetByID(ctx context.Context, u domain.CurrentUser, id string) (task.TaskResponse, error) {
	return f.GetByIDFn(ctx, u, id)
}
func (f *fakeTaskService) Update(ctx context.Context, u domain.CurrentUser, id string, req task.UpdateTaskRequest) (task.TaskResponse, error) {
	return f.UpdateFn(ctx, u, id, req)
}
func (f *fakeTaskService) Delete(ctx context.Context, u domain.CurrentUser, id string) error {
	return f.DeleteFn(ctx, u, id)
}
func (f *fakeTaskService) List(ctx context.Context, u domain.CurrentUser, q task.ListTasksQuery) ([]task.StatusGroup, error) {
	return f.ListFn(ctx, u, q)
}

func setSessionKeys(c *gin.Context, u domain.CurrentUser) {
	c.Set("user_id", u.ID)
	c.Set("user_name", u.Name)
	c.Set("role", u.Role)
	c.Set("team_id", u.TeamID)
	c.Set("location", u.Location)
}

func TestTaskHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		u := domain.CurrentUser{ID: uuid.NewString(), Role: domain.RoleEmployee, Location: domain.LocationHanoi}
		svc := &fakeTaskService{
			CreateFn: func(ctx context.Context, cu domain.CurrentUser, req task.CreateTaskRequest) (task.TaskResponse, error) {
				assert.Equal(t, u.ID, cu.ID)
				assert.Equal(t, "Báo giá", req.Name)
				return task.TaskResponse{ID: uuid.NewString(), Name: req.Name, Status: task.StatusNewRequests}, nil
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"name":"Báo giá"}`))
		c.Request.Header.Set("Content-Type", "application/json")
		setSessionKeys(c, u)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("validation error - thieu ten", func(t *testing.T) {
		h := task.NewHandler(&fakeTaskService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{}`))
		c.Request.Header.Set("Content-Type", "application/json")

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success - tra ve cac nhom trang thai", func(t *testing.T) {
		u := domain.CurrentUser{ID: uuid.NewString(), Role: domain.RoleTeamLeader, TeamID: uuid.NewString(), Location: domain.LocationHanoi}
		svc := &fakeTaskService{
			ListFn: func(ctx context.Context, cu domain.CurrentUser, q task.ListTasksQuery) ([]task.StatusGroup, error) {
				assert.Equal(t, domain.TabTeamTasks, q.Tab)
				assert.Equal(t, "week", q.DateFilter)
				return []task.StatusGroup{
					{Key: task.StatusApproved, Label: "Đang thực hiện", Tasks: []task.TaskResponse{{Name: "A"}}},
				}, nil
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/tasks?tab=team-tasks&date_filter=week", nil)
		setSessionKeys(c, u)

		h.List(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Ok   bool               `json:"ok"`
			Data []task.StatusGroup `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Len(t, body.Data, 1)
		assert.Equal(t, task.StatusApproved, body.Data[0].Key)
	})

	t.Run("validation error - tab la", func(t *testing.T) {
		h := task.NewHandler(&fakeTaskService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/tasks?tab=all-tasks", nil)

		h.List(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("tab bi cam - 403", func(t *testing.T) {
		svc := &fakeTaskService{
			ListFn: func(ctx context.Context, cu domain.CurrentUser, q task.ListTasksQuery) ([]task.StatusGroup, error) {
				return nil, taskerrors.ErrTabNotAllowed
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodGet, "/tasks?tab=team-tasks", nil)

		h.List(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestTaskHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		svc := &fakeTaskService{
			DeleteFn: func(ctx context.Context, cu domain.CurrentUser, id string) error {
				return taskerrors.ErrTaskNotFound
			},
		}

		h := task.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		c.Request = httptest.NewRequest(http.MethodDelete, "/tasks/x", nil)
		c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

		h.Delete(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
