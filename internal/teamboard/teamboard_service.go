package teamboard

import (
	"context"
	"regexp"
	"sort"
	"strconv"

	"go-taskboard/internal/domain"
	"go-taskboard/internal/permission"
	"go-taskboard/internal/task"
	"go-taskboard/internal/team"
	teamboarderrors "go-taskboard/internal/teamboard/errors"
	"go-taskboard/internal/user"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

//go:generate mockgen -source=teamboard_service.go -destination=mock/teamboard_service_mock.go -package=mock
type Service interface {
	Overview(ctx context.Context, u domain.CurrentUser, q OverviewQuery) ([]TeamBoard, error)
}

type service struct {
	teamRepo team.Repository
	userRepo user.Repository
	taskRepo task.Repository
	perm     permission.Service
	collator *collate.Collator
	logger   *zap.Logger
}

func NewService(
	teamRepo team.Repository,
	userRepo user.Repository,
	taskRepo task.Repository,
	perm permission.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("teamboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("teamboard.service")
	}
	return &service{
		teamRepo: teamRepo,
		userRepo: userRepo,
		taskRepo: taskRepo,
		perm:     perm,
		// Tên người và tên nhóm là tiếng Việt, so sánh byte thường xếp sai dấu
		collator: collate.New(language.Vietnamese),
		logger:   l,
	}
}

// Overview dựng bảng tổng quan: mỗi nhóm một khối, thành viên kèm số việc.
// Số việc luôn đếm lại từ danh sách task hiện tại, không lưu sẵn.
func (s *service) Overview(ctx context.Context, u domain.CurrentUser, q OverviewQuery) ([]TeamBoard, error) {
	caps, err := s.perm.Capabilities(u)
	if err != nil {
		return nil, err
	}

	teams, err := s.visibleTeams(ctx, u, caps, q)
	if err != nil {
		return nil, err
	}

	s.sortTeams(teams)

	boards := make([]TeamBoard, 0, len(teams))
	for _, t := range teams {
		board, err := s.buildBoard(ctx, t, q.MemberID)
		if err != nil {
			s.logger.Error("build team board failed",
				zap.String("team_id", t.ID.String()),
				zap.Error(err),
			)
			continue
		}
		boards = append(boards, board)
	}
	return boards, nil
}

func (s *service) visibleTeams(ctx context.Context, u domain.CurrentUser, caps permission.Capabilities, q OverviewQuery) ([]team.Team, error) {
	if !caps.CanSeeTeamSelector {
		// Không có quyền chọn nhóm chéo thì chỉ thấy nhóm của mình
		if u.TeamID == "" {
			return nil, teamboarderrors.ErrNoTeam
		}
		t, err := s.teamRepo.FindByID(ctx, u.TeamID)
		if err != nil {
			return nil, err
		}
		return []team.Team{*t}, nil
	}

	if q.TeamID != "" {
		t, err := s.teamRepo.FindByID(ctx, q.TeamID)
		if err != nil {
			return nil, err
		}
		return []team.Team{*t}, nil
	}

	location := u.Location
	if q.Location != "" && caps.CanSeeLocationTabs {
		location = q.Location
	}
	return s.teamRepo.FindAllByLocation(ctx, location)
}

var teamNameNumber = regexp.MustCompile(`(\d+)\s*$`)

// sortTeams xếp theo số cuối tên ("Nhóm 2" trước "Nhóm 10"), nhóm không có
// số xuống cuối, hoà thì theo tên. Kết quả không phụ thuộc thứ tự đầu vào.
func (s *service) sortTeams(teams []team.Team) {
	sort.SliceStable(teams, func(i, j int) bool {
		ni, oki := trailingNumber(teams[i].Name)
		nj, okj := trailingNumber(teams[j].Name)
		switch {
		case oki && okj && ni != nj:
			return ni < nj
		case oki != okj:
			return oki
		}
		return s.collator.CompareString(teams[i].Name, teams[j].Name) < 0
	})
}

func trailingNumber(name string) (int, bool) {
	m := teamNameNumber.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s *service) buildBoard(ctx context.Context, t team.Team, memberID string) (TeamBoard, error) {
	members, err := s.userRepo.FindAllByTeam(ctx, t.ID.String())
	if err != nil {
		return TeamBoard{}, err
	}

	tasks, err := s.taskRepo.FindByTeam(ctx, t.ID.String())
	if err != nil {
		return TeamBoard{}, err
	}

	// Lọc theo thành viên trước khi đếm và gom nhóm: chọn một người thì
	// bảng chỉ còn việc người đó tạo hoặc được giao
	if memberID != "" {
		tasks = filterByMember(tasks, memberID)
	}

	counts := make(map[string]int, len(members))
	for _, tk := range tasks {
		seen := map[string]bool{}
		seen[tk.CreatedBy.String()] = true
		if tk.AssignedTo != nil {
			seen[tk.AssignedTo.String()] = true
		}
		for id := range seen {
			counts[id]++
		}
	}

	s.sortMembers(members)

	board := TeamBoard{
		TeamID:     t.ID.String(),
		TeamName:   t.Name,
		Location:   t.Location,
		TaskCount:  len(tasks),
		TaskGroups: task.GroupByStatus(tasks),
		Members:    make([]MemberSummary, 0, len(members)),
	}
	for _, m := range members {
		if memberID != "" && m.ID.String() != memberID {
			continue
		}
		board.Members = append(board.Members, MemberSummary{
			UserID:    m.ID.String(),
			Name:      m.Name,
			Role:      m.Role,
			TaskCount: counts[m.ID.String()],
		})
	}
	return board, nil
}

func filterByMember(tasks []task.Task, memberID string) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, tk := range tasks {
		if tk.CreatedBy.String() == memberID ||
			(tk.AssignedTo != nil && tk.AssignedTo.String() == memberID) {
			out = append(out, tk)
		}
	}
	return out
}

// sortMembers đưa trưởng nhóm lên đầu, còn lại theo tên.
func (s *service) sortMembers(members []user.User) {
	sort.SliceStable(members, func(i, j int) bool {
		li := members[i].Role == domain.RoleTeamLeader
		lj := members[j].Role == domain.RoleTeamLeader
		if li != lj {
			return li
		}
		return s.collator.CompareString(members[i].Name, members[j].Name) < 0
	})
}
