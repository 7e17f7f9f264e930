package permission

import (
	"context"
	"sync"

	"go-taskboard/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=permission_service.go -destination=mock/permission_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	Capabilities(u domain.CurrentUser) (Capabilities, error)
	CanViewTask(ctx context.Context, u domain.CurrentUser, t TaskView) (bool, error)
	CanEditTask(ctx context.Context, u domain.CurrentUser, t TaskView) (bool, error)
	InvalidateTask(ctx context.Context, taskID string)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	cache    *DecisionCache
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, cache *DecisionCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("permission.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("permission.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		cache:    cache,
		logger:   l,
	}
}

// LoadPolicy nạp lại policy resource/action từ DB cộng với cây kế thừa role
// cố định: retail_director > team_leader > employee.
func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked()
}

func (s *service) loadPolicyUnlocked() error {
	s.enforcer.ClearPolicy()

	if _, err := s.enforcer.AddGroupingPolicy(domain.RoleRetailDirector, domain.RoleTeamLeader); err != nil {
		return err
	}
	if _, err := s.enforcer.AddGroupingPolicy(domain.RoleTeamLeader, domain.RoleEmployee); err != nil {
		return err
	}

	rolePerms, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}
	s.logger.Debug("permission policy loaded", zap.Int("role_permissions", len(rolePerms)))

	for _, rp := range rolePerms {
		_, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce result",
		zap.String("user_id", req.UserID),
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) Capabilities(u domain.CurrentUser) (Capabilities, error) {
	return ResolveCapabilities(u)
}

// CanViewTask xét quyền xem một task, có cache theo task id.
func (s *service) CanViewTask(ctx context.Context, u domain.CurrentUser, t TaskView) (bool, error) {
	if allowed, found := s.cache.Get(ctx, t.ID, u.ID); found {
		return allowed, nil
	}

	allowed, err := DecideView(u, t)
	if err != nil {
		return false, err
	}

	s.cache.Set(ctx, t.ID, u.ID, allowed)
	return allowed, nil
}

// CanEditTask không cache: quyết định sửa rẻ và hiếm hơn nhiều so với xem.
func (s *service) CanEditTask(ctx context.Context, u domain.CurrentUser, t TaskView) (bool, error) {
	return DecideEdit(u, t)
}

func (s *service) InvalidateTask(ctx context.Context, taskID string) {
	s.cache.InvalidateTask(ctx, taskID)
}
