package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"zeaz/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	jobKeyPrefix = "job:"
	jobIndexKey  = "jobs"
	jobTTL       = 7 * 24 * time.Hour
)

type redisJobRepository struct {
	client *redis.Client
}

// NewRedisJobRepository creates a Redis-backed job repository. Jobs are
// stored as JSON blobs with an index list for newest-first ordering.
func NewRedisJobRepository(client *redis.Client) JobRepository {
	return &redisJobRepository{client: client}
}

func (r *redisJobRepository) Create(ctx context.Context, job *models.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, jobKeyPrefix+job.ID, data, jobTTL)
	pipe.LPush(ctx, jobIndexKey, job.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store job: %w", err)
	}
	return nil
}

func (r *redisJobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	data, err := r.client.Get(ctx, jobKeyPrefix+id).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	var job models.Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job: %w", err)
	}
	return &job, nil
}

func (r *redisJobRepository) List(ctx context.Context) ([]*models.Job, error) {
	ids, err := r.client.LRange(ctx, jobIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	jobs := make([]*models.Job, 0, len(ids))
	for _, id := range ids {
		job, err := r.Get(ctx, id)
		if err != nil {
			if err == ErrJobNotFound {
				// Expired blob still referenced by the index.
				continue
			}
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
