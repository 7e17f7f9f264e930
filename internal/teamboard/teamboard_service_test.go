package teamboard_test

import (
	"context"
	"testing"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/task"
	"go-taskboard/internal/team"
	"go-taskboard/internal/teamboard"
	teamboarderrors "go-taskboard/internal/teamboard/errors"
	"go-taskboard/internal/user"

	permMock "go-taskboard/internal/permission/mock"
	taskMock "go-taskboard/internal/task/mock"
	teamMock "go-taskboard/internal/team/mock"
	userMock "go-taskboard/internal/user/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type boardDeps struct {
	service  teamboard.Service
	teamRepo *teamMock.MockRepository
	userRepo *userMock.MockRepository
	taskRepo *taskMock.MockRepository
	perm     *permMock.MockService
}

func setupBoardTest(t *testing.T) *boardDeps {
	ctrl := gomock.NewController(t)

	teamRepo := teamMock.NewMockRepository(ctrl)
	userRepo := userMock.NewMockRepository(ctrl)
	taskRepo := taskMock.NewMockRepository(ctrl)
	perm := permMock.NewMockService(ctrl)

	return &boardDeps{
		service:  teamboard.NewService(teamRepo, userRepo, taskRepo, perm),
		teamRepo: teamRepo,
		userRepo: userRepo,
		taskRepo: taskRepo,
		perm:     perm,
	}
}

func directorUser() domain.CurrentUser {
	return domain.CurrentUser{
		ID:       uuid.NewString(),
		Name:     "Giám đốc bán lẻ",
		Role:     domain.RoleRetailDirector,
		Location: domain.LocationHanoi,
	}
}

func TestTeamboardService_Overview(t *testing.T) {
	ctx := context.Background()

	t.Run("sap xep nhom theo so cuoi ten, khong so xuong cuoi", func(t *testing.T) {
		deps := setupBoardTest(t)
		u := directorUser()
		caps, _ := permission.ResolveCapabilities(u)

		teams := []team.Team{
			{ID: uuid.New(), Name: "Nhóm 10", Location: domain.LocationHanoi},
			{ID: uuid.New(), Name: "Nhóm dự án", Location: domain.LocationHanoi},
			{ID: uuid.New(), Name: "Nhóm 2", Location: domain.LocationHanoi},
		}

		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		deps.teamRepo.EXPECT().FindAllByLocation(ctx, domain.LocationHanoi).Return(teams, nil)
		deps.userRepo.EXPECT().FindAllByTeam(ctx, gomock.Any()).Return([]user.User{}, nil).Times(3)
		deps.taskRepo.EXPECT().FindByTeam(ctx, gomock.Any()).Return([]task.Task{}, nil).Times(3)

		boards, err := deps.service.Overview(ctx, u, teamboard.OverviewQuery{})

		assert.NoError(t, err)
		assert.Len(t, boards, 3)
		assert.Equal(t, "Nhóm 2", boards[0].TeamName)
		assert.Equal(t, "Nhóm 10", boards[1].TeamName)
		assert.Equal(t, "Nhóm dự án", boards[2].TeamName)
	})

	t.Run("truong nhom len dau, dem viec theo nguoi tao hoac nguoi nhan", func(t *testing.T) {
		deps := setupBoardTest(t)
		u := directorUser()
		caps, _ := permission.ResolveCapabilities(u)

		teamID := uuid.New()
		leader := user.User{ID: uuid.New(), Name: "Văn", Role: domain.RoleTeamLeader}
		memberA := user.User{ID: uuid.New(), Name: "An", Role: domain.RoleEmployee}
		memberB := user.User{ID: uuid.New(), Name: "Bình", Role: domain.RoleEmployee}

		assignedA := memberA.ID
		tasks := []task.Task{
			// An vừa tạo vừa nhận: chỉ đếm một lần
			{ID: uuid.New(), Name: "Báo giá", Status: task.StatusLive, CreatedBy: memberA.ID, AssignedTo: &assignedA},
			{ID: uuid.New(), Name: "Khảo sát", Status: task.StatusNewRequests, CreatedBy: leader.ID, AssignedTo: &assignedA},
		}

		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		deps.teamRepo.EXPECT().
			FindByID(ctx, teamID.String()).
			Return(&team.Team{ID: teamID, Name: "Nhóm 1", Location: domain.LocationHanoi}, nil)
		deps.userRepo.EXPECT().
			FindAllByTeam(ctx, teamID.String()).
			Return([]user.User{memberB, memberA, leader}, nil)
		deps.taskRepo.EXPECT().FindByTeam(ctx, teamID.String()).Return(tasks, nil)

		boards, err := deps.service.Overview(ctx, u, teamboard.OverviewQuery{TeamID: teamID.String()})

		assert.NoError(t, err)
		assert.Len(t, boards, 1)

		b := boards[0]
		assert.Equal(t, 2, b.TaskCount)
		assert.Equal(t, []string{"Văn", "An", "Bình"}, []string{
			b.Members[0].Name, b.Members[1].Name, b.Members[2].Name,
		})
		assert.Equal(t, 1, b.Members[0].TaskCount) // Văn tạo 1 việc
		assert.Equal(t, 2, b.Members[1].TaskCount) // An dính cả 2 việc
		assert.Equal(t, 0, b.Members[2].TaskCount)

		// Mỗi nhóm mang luôn danh sách việc chia theo trạng thái
		assert.Len(t, b.TaskGroups, 2)
		assert.Equal(t, task.StatusNewRequests, b.TaskGroups[0].Key)
		assert.Equal(t, "Khảo sát", b.TaskGroups[0].Tasks[0].Name)
		assert.Equal(t, task.StatusLive, b.TaskGroups[1].Key)
		assert.Equal(t, "Báo giá", b.TaskGroups[1].Tasks[0].Name)
	})

	t.Run("khong co quyen chon nhom - chi thay nhom cua minh", func(t *testing.T) {
		deps := setupBoardTest(t)

		teamID := uuid.New()
		u := domain.CurrentUser{
			ID:       uuid.NewString(),
			Role:     domain.RoleTeamLeader,
			TeamID:   teamID.String(),
			Location: domain.LocationHanoi,
		}
		caps, _ := permission.ResolveCapabilities(u)

		otherTeam := uuid.NewString()
		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		// team_id trong query bị bỏ qua, vẫn chỉ load nhóm của user
		deps.teamRepo.EXPECT().
			FindByID(ctx, teamID.String()).
			Return(&team.Team{ID: teamID, Name: "Nhóm 3", Location: domain.LocationHanoi}, nil)
		deps.userRepo.EXPECT().FindAllByTeam(ctx, teamID.String()).Return([]user.User{}, nil)
		deps.taskRepo.EXPECT().FindByTeam(ctx, teamID.String()).Return([]task.Task{}, nil)

		boards, err := deps.service.Overview(ctx, u, teamboard.OverviewQuery{TeamID: otherTeam})

		assert.NoError(t, err)
		assert.Len(t, boards, 1)
		assert.Equal(t, "Nhóm 3", boards[0].TeamName)
	})

	t.Run("negative - khong thuoc nhom nao", func(t *testing.T) {
		deps := setupBoardTest(t)

		u := domain.CurrentUser{ID: uuid.NewString(), Role: domain.RoleEmployee, Location: domain.LocationHCM}
		caps, _ := permission.ResolveCapabilities(u)
		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)

		_, err := deps.service.Overview(ctx, u, teamboard.OverviewQuery{})

		assert.ErrorIs(t, err, teamboarderrors.ErrNoTeam)
	})

	t.Run("loc theo member_id - thu hep ca danh sach viec", func(t *testing.T) {
		deps := setupBoardTest(t)
		u := directorUser()
		caps, _ := permission.ResolveCapabilities(u)

		teamID := uuid.New()
		target := user.User{ID: uuid.New(), Name: "An", Role: domain.RoleEmployee}
		other := user.User{ID: uuid.New(), Name: "Bình", Role: domain.RoleEmployee}

		assignedOther := other.ID
		tasks := []task.Task{
			{ID: uuid.New(), Name: "Việc của An", Status: task.StatusApproved, CreatedBy: target.ID},
			// Bình tạo và tự nhận: phải biến mất khi lọc theo An
			{ID: uuid.New(), Name: "Việc của Bình", Status: task.StatusApproved, CreatedBy: other.ID, AssignedTo: &assignedOther},
		}

		deps.perm.EXPECT().Capabilities(u).Return(caps, nil)
		deps.teamRepo.EXPECT().
			FindByID(ctx, teamID.String()).
			Return(&team.Team{ID: teamID, Name: "Nhóm 1"}, nil)
		deps.userRepo.EXPECT().FindAllByTeam(ctx, teamID.String()).Return([]user.User{target, other}, nil)
		deps.taskRepo.EXPECT().FindByTeam(ctx, teamID.String()).Return(tasks, nil)

		boards, err := deps.service.Overview(ctx, u, teamboard.OverviewQuery{
			TeamID:   teamID.String(),
			MemberID: target.ID.String(),
		})

		assert.NoError(t, err)
		b := boards[0]
		assert.Len(t, b.Members, 1)
		assert.Equal(t, "An", b.Members[0].Name)
		assert.Equal(t, 1, b.Members[0].TaskCount)

		// Tổng số việc và các nhóm trạng thái chỉ còn việc của An
		assert.Equal(t, 1, b.TaskCount)
		assert.Len(t, b.TaskGroups, 1)
		assert.Equal(t, task.StatusApproved, b.TaskGroups[0].Key)
		assert.Len(t, b.TaskGroups[0].Tasks, 1)
		assert.Equal(t, "Việc của An", b.TaskGroups[0].Tasks[0].Name)
	})
}
