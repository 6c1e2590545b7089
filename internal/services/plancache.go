package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/lumistudy/lumistudy-backend/internal/logger"
	"github.com/lumistudy/lumistudy-backend/internal/scheduler"
	"github.com/lumistudy/lumistudy-backend/internal/utils"
)

// PlanCache is a read-through cache for generated daily plans. It is
// strictly best-effort: a miss or a cache error always falls back to the
// store.
type PlanCache interface {
	Get(ctx context.Context, userID uuid.UUID, date string) (*scheduler.DayPlan, error)
	Set(ctx context.Context, userID uuid.UUID, date string, plan scheduler.DayPlan) error
	Invalidate(ctx context.Context, userID uuid.UUID, date string) error
}

type planCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

// NewPlanCache connects to redis via REDIS_ADDR. An empty address means
// caching is disabled; callers must tolerate a nil cache.
func NewPlanCache(log *logger.Logger) (PlanCache, error) {
	addr := strings.TrimSpace(utils.GetEnv("REDIS_ADDR", "", log))
	if addr == "" {
		return nil, nil
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	ttl := time.Duration(utils.GetEnvAsInt("PLAN_CACHE_TTL_SECONDS", 86400, log)) * time.Second
	return &planCache{
		log: log.With("service", "PlanCache"),
		rdb: rdb,
		ttl: ttl,
	}, nil
}

func planKey(userID uuid.UUID, date string) string {
	return fmt.Sprintf("plan:%s:%s", userID, date)
}

func (pc *planCache) Get(ctx context.Context, userID uuid.UUID, date string) (*scheduler.DayPlan, error) {
	raw, err := pc.rdb.Get(ctx, planKey(userID, date)).Bytes()
	if err == goredis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var plan scheduler.DayPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

func (pc *planCache) Set(ctx context.Context, userID uuid.UUID, date string, plan scheduler.DayPlan) error {
	raw, err := json.Marshal(plan)
	if err != nil {
		return err
	}
	return pc.rdb.Set(ctx, planKey(userID, date), raw, pc.ttl).Err()
}

func (pc *planCache) Invalidate(ctx context.Context, userID uuid.UUID, date string) error {
	return pc.rdb.Del(ctx, planKey(userID, date)).Err()
}
