package permission_test

import (
	"context"
	"testing"
	"time"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/permission"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

// Kịch bản trong thiết kế: nhân viên Trịnh Thị Bốn (NHÓM 3, Hà Nội)
var employee = domain.CurrentUser{
	ID:       "user-bon",
	Name:     "Trịnh Thị Bốn",
	Role:     domain.RoleEmployee,
	TeamID:   "team-3",
	Location: domain.LocationHanoi,
}

func TestDecideView_CreatorAndAssignee(t *testing.T) {
	created := permission.TaskView{
		ID:         "t1",
		CreatedBy:  employee.ID,
		ShareScope: permission.ScopePrivate,
	}
	assigned := permission.TaskView{
		ID:         "t2",
		CreatedBy:  "someone-else",
		AssignedTo: employee.ID,
		ShareScope: permission.ScopePrivate,
	}

	ok, err := permission.DecideView(employee, created)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = permission.DecideView(employee, assigned)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestDecideView_PrivateOfOthersHidden(t *testing.T) {
	// share_scope không cứu được task private của người khác
	ok, err := permission.DecideView(employee, permission.TaskView{
		ID:         "t3",
		CreatedBy:  "someone-else",
		AssignedTo: "someone-else",
		TeamID:     employee.TeamID,
		Location:   employee.Location,
		ShareScope: permission.ScopePrivate,
	})

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestDecideView_TeamScope(t *testing.T) {
	sameTeam := permission.TaskView{
		ID:         "t4",
		CreatedBy:  "colleague",
		TeamID:     "team-3",
		Location:   domain.LocationHanoi,
		ShareScope: permission.ScopeTeam,
	}
	otherTeam := permission.TaskView{
		ID:         "t5",
		CreatedBy:  "colleague",
		TeamID:     "team-5",
		Location:   domain.LocationHanoi,
		ShareScope: permission.ScopeTeam,
	}

	ok, _ := permission.DecideView(employee, sameTeam)
	assert.True(t, ok)

	ok, _ = permission.DecideView(employee, otherTeam)
	assert.False(t, ok)
}

func TestDecideView_PublicScopeByLocation(t *testing.T) {
	// public từ nhóm khác nhưng cùng Hà Nội: thấy
	hanoiPublic := permission.TaskView{
		ID:         "t6",
		CreatedBy:  "colleague",
		TeamID:     "team-5",
		Location:   domain.LocationHanoi,
		ShareScope: permission.ScopePublic,
	}
	hcmPublic := permission.TaskView{
		ID:         "t7",
		CreatedBy:  "colleague",
		TeamID:     "team-9",
		Location:   domain.LocationHCM,
		ShareScope: permission.ScopePublic,
	}

	ok, _ := permission.DecideView(employee, hanoiPublic)
	assert.True(t, ok)

	ok, _ = permission.DecideView(employee, hcmPublic)
	assert.False(t, ok)
}

func TestDecideView_RetailDirectorSeesAll(t *testing.T) {
	director := domain.CurrentUser{
		ID:       "user-director",
		Role:     domain.RoleRetailDirector,
		Location: domain.LocationHanoi,
	}

	ok, err := permission.DecideView(director, permission.TaskView{
		ID:         "t8",
		CreatedBy:  "someone",
		TeamID:     "team-9",
		Location:   domain.LocationHCM,
		ShareScope: permission.ScopePrivate,
	})

	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestDecideView_Unauthenticated(t *testing.T) {
	_, err := permission.DecideView(domain.CurrentUser{}, permission.TaskView{ID: "t9"})
	assert.Error(t, err)
}

func TestDecideEdit(t *testing.T) {
	leader := domain.CurrentUser{
		ID:       "user-leader",
		Role:     domain.RoleTeamLeader,
		TeamID:   "team-3",
		Location: domain.LocationHanoi,
	}

	teamTask := permission.TaskView{
		ID:         "t10",
		CreatedBy:  employee.ID,
		TeamID:     "team-3",
		ShareScope: permission.ScopeTeam,
	}
	otherTeamTask := permission.TaskView{
		ID:        "t11",
		CreatedBy: "someone",
		TeamID:    "team-5",
	}

	ok, _ := permission.DecideEdit(leader, teamTask)
	assert.True(t, ok)

	ok, _ = permission.DecideEdit(leader, otherTeamTask)
	assert.False(t, ok)

	// nhân viên không sửa được task nhóm của người khác
	ok, _ = permission.DecideEdit(employee, permission.TaskView{
		ID:         "t12",
		CreatedBy:  "colleague",
		TeamID:     "team-3",
		ShareScope: permission.ScopeTeam,
	})
	assert.False(t, ok)
}

func TestDecisionCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then set then hit", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := permission.NewDecisionCache(rdb)

		mock.ExpectGet("perm:task:t1:u1").RedisNil()
		_, found := cache.Get(ctx, "t1", "u1")
		assert.False(t, found)

		mock.ExpectSet("perm:task:t1:u1", "1", 10*time.Minute).SetVal("OK")
		cache.Set(ctx, "t1", "u1", true)

		mock.ExpectGet("perm:task:t1:u1").SetVal("1")
		allowed, found := cache.Get(ctx, "t1", "u1")
		assert.True(t, found)
		assert.True(t, allowed)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalidate deletes all users of task", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		cache := permission.NewDecisionCache(rdb)

		mock.ExpectScan(0, "perm:task:t1:*", 100).SetVal(
			[]string{"perm:task:t1:u1", "perm:task:t1:u2"}, 0,
		)
		mock.ExpectDel("perm:task:t1:u1", "perm:task:t1:u2").SetVal(2)

		cache.InvalidateTask(ctx, "t1")

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil client is a no-op", func(t *testing.T) {
		cache := permission.NewDecisionCache(nil)

		_, found := cache.Get(ctx, "t1", "u1")
		assert.False(t, found)

		cache.Set(ctx, "t1", "u1", true)
		cache.InvalidateTask(ctx, "t1")
	})
}
