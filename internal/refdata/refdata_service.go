package refdata

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const cacheKeyPrefix = "refdata:"

// Reference rows change rarely, a long TTL is safe.
const cacheTTL = 6 * time.Hour

//go:generate mockgen -source=refdata_service.go -destination=mock/refdata_service_mock.go -package=mock
type Service interface {
	GetRegions(ctx context.Context) ([]Region, error)
	GetDistricts(ctx context.Context, regionID int64) ([]District, error)
	GetNations(ctx context.Context) ([]Nation, error)
	GetEducationLevels(ctx context.Context) ([]EducationLevel, error)
	GetAcademicDegrees(ctx context.Context) ([]AcademicDegree, error)
	GetAcademicSpecializations(ctx context.Context) ([]AcademicSpecialization, error)
	GetAcademicTitles(ctx context.Context) ([]AcademicTitle, error)
	SyncSeedData(ctx context.Context) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("refdata.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("refdata.service")
	}
	return &service{repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) GetRegions(ctx context.Context) ([]Region, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"regions", func() ([]Region, error) {
		return s.repo.ListRegions(ctx)
	})
}

func (s *service) GetDistricts(ctx context.Context, regionID int64) ([]District, error) {
	key := fmt.Sprintf("%sdistricts:%d", cacheKeyPrefix, regionID)
	return cachedList(ctx, s, key, func() ([]District, error) {
		return s.repo.ListDistricts(ctx, regionID)
	})
}

func (s *service) GetNations(ctx context.Context) ([]Nation, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"nations", func() ([]Nation, error) {
		return s.repo.ListNations(ctx)
	})
}

func (s *service) GetEducationLevels(ctx context.Context) ([]EducationLevel, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"education_levels", func() ([]EducationLevel, error) {
		return s.repo.ListEducationLevels(ctx)
	})
}

func (s *service) GetAcademicDegrees(ctx context.Context) ([]AcademicDegree, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"academic_degrees", func() ([]AcademicDegree, error) {
		return s.repo.ListAcademicDegrees(ctx)
	})
}

func (s *service) GetAcademicSpecializations(ctx context.Context) ([]AcademicSpecialization, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"academic_specializations", func() ([]AcademicSpecialization, error) {
		return s.repo.ListAcademicSpecializations(ctx)
	})
}

func (s *service) GetAcademicTitles(ctx context.Context) ([]AcademicTitle, error) {
	return cachedList(ctx, s, cacheKeyPrefix+"academic_titles", func() ([]AcademicTitle, error) {
		return s.repo.ListAcademicTitles(ctx)
	})
}

// SyncSeedData upserts the embedded region/district registry. Existing
// rows keep their ids so personnel references stay valid.
func (s *service) SyncSeedData(ctx context.Context) error {
	regions, districts, err := loadSeedData()
	if err != nil {
		return err
	}

	if err := s.repo.UpsertRegions(ctx, regions); err != nil {
		s.logger.Error("sync regions failed", zap.Error(err))
		return err
	}
	if err := s.repo.UpsertDistricts(ctx, districts); err != nil {
		s.logger.Error("sync districts failed", zap.Error(err))
		return err
	}

	s.logger.Info("reference seed data synced",
		zap.Int("regions", len(regions)),
		zap.Int("districts", len(districts)),
	)
	return nil
}

// cachedList is the shared redis + singleflight read path for all lookup
// tables.
func cachedList[T any](ctx context.Context, s *service, key string, fetch func() ([]T, error)) ([]T, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var rows []T
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return rows, nil
			}
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		rows, err := fetch()
		if err != nil {
			return nil, err
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(rows); err == nil {
				s.rdb.Set(ctx, key, jsonData, cacheTTL)
			}
		}

		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]T), nil
}
