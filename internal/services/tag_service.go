package services

import (
	"context"
	"strings"

	"github.com/miniactivity/server/internal/models"
	"github.com/miniactivity/server/internal/repositories"
	"github.com/miniactivity/server/pkg/logger"
)

type TagService struct {
	tagRepo repositories.TagRepository
}

func NewTagService(tagRepo repositories.TagRepository) *TagService {
	return &TagService{
		tagRepo: tagRepo,
	}
}

// CreateTag creates a tag, idempotently: a label that already exists
// (case-insensitively) returns the existing tag instead of a duplicate.
func (s *TagService) CreateTag(ctx context.Context, label string) (*models.Tag, error) {
	log := logger.FromContext(ctx)
	log.Infof("[Tag] Attempt create tag: %s", label)

	label = strings.TrimSpace(label)

	existing, err := s.tagRepo.GetByLabel(label)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	tag := models.NewTag(label)
	if err := s.tagRepo.Create(tag); err != nil {
		return nil, err
	}

	log.Infof("[Tag] Created tag: %s", tag.ID)
	return tag, nil
}

// ListTags retrieves all tags
func (s *TagService) ListTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tagRepo.List()
}

// SearchTags retrieves tags whose label contains the query, case-insensitively
func (s *TagService) SearchTags(ctx context.Context, query string) ([]*models.Tag, error) {
	return s.tagRepo.Search(query)
}
