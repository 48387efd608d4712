package services

import (
	"context"
	"testing"

	"github.com/miniactivity/server/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTagIsIdempotent(t *testing.T) {
	tagRepo := repositories.NewMemoryTagRepository()
	service := NewTagService(tagRepo)
	ctx := context.Background()

	first, err := service.CreateTag(ctx, "Workshop")
	require.NoError(t, err)

	// case-insensitive: the existing tag comes back, no duplicate created
	second, err := service.CreateTag(ctx, "workshop")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Workshop", second.Label)
	assert.Len(t, tagRepo.Tags, 1)
}

func TestSearchTags(t *testing.T) {
	tagRepo := repositories.NewMemoryTagRepository()
	service := NewTagService(tagRepo)
	ctx := context.Background()

	for _, label := range []string{"Workshop", "Tech Talk", "Networking"} {
		_, err := service.CreateTag(ctx, label)
		require.NoError(t, err)
	}

	results, err := service.SearchTags(ctx, "WORK")
	require.NoError(t, err)
	require.Len(t, results, 2)

	labels := []string{results[0].Label, results[1].Label}
	assert.Contains(t, labels, "Workshop")
	assert.Contains(t, labels, "Networking")

	results, err = service.SearchTags(ctx, "nothing")
	require.NoError(t, err)
	assert.Empty(t, results)
}
