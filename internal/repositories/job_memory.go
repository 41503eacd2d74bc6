package repositories

import (
	"context"
	"sync"

	"zeaz/internal/models"
)

// MemoryJobRepository is an in-memory JobRepository for tests and local runs.
type MemoryJobRepository struct {
	mu   sync.Mutex
	jobs map[string]*models.Job
	ids  []string
}

func NewMemoryJobRepository() *MemoryJobRepository {
	return &MemoryJobRepository{jobs: make(map[string]*models.Job)}
}

func (r *MemoryJobRepository) Create(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *job
	r.jobs[job.ID] = &stored
	r.ids = append(r.ids, job.ID)
	return nil
}

func (r *MemoryJobRepository) Get(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	jobs := make([]*models.Job, 0, len(r.ids))
	for i := len(r.ids) - 1; i >= 0; i-- {
		copied := *r.jobs[r.ids[i]]
		jobs = append(jobs, &copied)
	}
	return jobs, nil
}
