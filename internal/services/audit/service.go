// Package audit writes the best-effort audit trail.
//
// Audit rows are a secondary, non-authoritative record of successful ledger
// writes: a failed audit write is logged and swallowed, and never rolls back
// or invalidates the ledger entry it describes.
package audit

import (
	"context"
	"log"

	"zeaz/internal/models"
	"zeaz/internal/repositories"
)

// Service records audit entries.
type Service interface {
	Record(ctx context.Context, actor, action, details string)
}

type service struct {
	repo repositories.AuditRepository
}

func NewService(repo repositories.AuditRepository) Service {
	if repo == nil {
		panic("audit repo is required")
	}
	return &service{repo: repo}
}

func (s *service) Record(ctx context.Context, actor, action, details string) {
	entry := &models.AuditLog{
		Actor:   actor,
		Action:  action,
		Details: details,
	}
	if err := s.repo.Record(ctx, entry); err != nil {
		log.Printf("audit write failed (actor=%s action=%s): %v", actor, action, err)
	}
}
