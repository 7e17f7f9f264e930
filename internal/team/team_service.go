package team

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	teamerrors "go-taskboard/internal/team/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	TeamAllKeyPrefix = "teams:all:"
)

// GetTeamAllKey trả về cache key danh sách team theo khu vực
// ("all" khi không lọc khu vực).
func GetTeamAllKey(location string) string {
	if location == "" {
		location = "all"
	}
	return TeamAllKeyPrefix + location
}

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error)
	GetAll(ctx context.Context, location string) ([]TeamResponse, error)
	GetByID(ctx context.Context, id string) (TeamResponse, error)
	Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateTeamRequest) (TeamResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t := &Team{
		ID:       uuid.New(),
		Name:     req.Name,
		Location: req.Location,
	}

	if err := qtx.Create(ctx, t); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return TeamResponse{}, teamerrors.ErrTeamNameTaken
		}
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TeamResponse{}, err
	}

	s.invalidateCache(ctx, t.Location)

	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, location string) ([]TeamResponse, error) {
	cacheKey := GetTeamAllKey(location)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []TeamResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	// Singleflight chặn dồn query trùng vào DB khi cache miss
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		var (
			teams []Team
			err   error
		)
		if location == "" {
			teams, err = s.repo.FindAll(ctx)
		} else {
			teams, err = s.repo.FindAllByLocation(ctx, location)
		}
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(teams)

		// Dữ liệu master, TTL 30 phút là đủ
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 30*time.Minute)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]TeamResponse), nil
}

func (s *service) GetByID(ctx context.Context, id string) (TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidTeamID
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateTeamRequest) (TeamResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeamResponse{}, teamerrors.ErrInvalidTeamID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeamResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}

	oldLocation := t.Location
	t.Name = req.Name
	t.Location = req.Location

	if err := qtx.Update(ctx, t); err != nil {
		return TeamResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return TeamResponse{}, err
	}

	s.invalidateCache(ctx, oldLocation)
	if req.Location != oldLocation {
		s.invalidateCache(ctx, req.Location)
	}

	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	// Validate trước khi mở transaction: id hỏng thì không đụng DB
	if _, err := uuid.Parse(id); err != nil {
		return teamerrors.ErrInvalidTeamID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrTeamNotFound
		}
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, t.Location)
	return nil
}

func (s *service) invalidateCache(ctx context.Context, location string) {
	if s.rdb == nil {
		return
	}
	for _, key := range []string{GetTeamAllKey(""), GetTeamAllKey(location)} {
		if err := s.rdb.Del(ctx, key).Err(); err != nil {
			s.logger.Error("invalidate team cache failed", zap.String("key", key), zap.Error(err))
		}
	}
}

func mapToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:       t.ID.String(),
		Name:     t.Name,
		Location: t.Location,
	}
}

func mapToListResponse(teams []Team) []TeamResponse {
	resp := make([]TeamResponse, len(teams))
	for i, t := range teams {
		resp[i] = mapToResponse(t)
	}
	return resp
}
