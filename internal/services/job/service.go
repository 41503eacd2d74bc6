// Package job manages content-generation jobs for the TikTok affiliate flow.
// Generation itself is stubbed; jobs only track requests and their status.
package job

import (
	"context"
	"strings"
	"time"

	"zeaz/internal/models"
	"zeaz/internal/repositories"

	"github.com/google/uuid"
)

// Service creates and reads content jobs.
type Service interface {
	CreateFeedForm(ctx context.Context, req FeedFormRequest) (*models.Job, error)
	CreateVideo(ctx context.Context, req VideoRequest) (*models.Job, error)
	CreateUpload(ctx context.Context, req UploadRequest) (*models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
}

type service struct {
	repo repositories.JobRepository
}

func NewService(repo repositories.JobRepository) Service {
	if repo == nil {
		panic("job repo is required")
	}
	return &service{repo: repo}
}

func (s *service) CreateFeedForm(ctx context.Context, req FeedFormRequest) (*models.Job, error) {
	highlights := req.Highlights
	if len(highlights) > 3 {
		highlights = highlights[:3]
	}
	payload := map[string]interface{}{
		"product_id":  req.ProductID,
		"title":       req.Title,
		"price":       req.Price,
		"currency":    strings.ToUpper(strings.TrimSpace(req.Currency)),
		"highlights":  req.Highlights,
		"description": req.Title + " | " + strings.Join(highlights, ", "),
	}
	return s.create(ctx, models.JobTypeFeedForm, models.JobStatusGenerated, payload)
}

func (s *service) CreateVideo(ctx context.Context, req VideoRequest) (*models.Job, error) {
	payload := map[string]interface{}{
		"product_id":       req.ProductID,
		"script_style":     req.ScriptStyle,
		"duration_seconds": req.DurationSeconds,
		"storyboard": []string{
			"Hook: show product in first 3 seconds",
			"Benefit: highlight top feature",
			"CTA: check TikTok Shop link",
		},
	}
	return s.create(ctx, models.JobTypeVideo, models.JobStatusRendering, payload)
}

func (s *service) CreateUpload(ctx context.Context, req UploadRequest) (*models.Job, error) {
	payload := map[string]interface{}{
		"job_reference":  req.JobReference,
		"shop_id":        req.ShopID,
		"creator_handle": req.CreatorHandle,
		"platform":       "tiktok_shop_affiliate",
	}
	return s.create(ctx, models.JobTypeUpload, models.JobStatusUploaded, payload)
}

func (s *service) Get(ctx context.Context, id string) (*models.Job, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*models.Job, error) {
	return s.repo.List(ctx)
}

func (s *service) create(ctx context.Context, jobType, status string, payload map[string]interface{}) (*models.Job, error) {
	now := time.Now().UTC()
	j := &models.Job{
		ID:        "job_" + uuid.NewString(),
		Type:      jobType,
		Status:    status,
		Payload:   payload,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}
