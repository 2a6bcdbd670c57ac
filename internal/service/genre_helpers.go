package service

import (
	"context"
	"strings"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
)

type genreRepository interface {
	ListFor(ctx context.Context, owner models.GenreOwner, ownerID string) ([]string, error)
	Replace(ctx context.Context, owner models.GenreOwner, ownerID string, names []string) (added, removed []string, err error)
}

// normalizeGenres trims names and drops blanks and case-insensitive duplicates,
// keeping the first spelling seen.
func normalizeGenres(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

func replaceGenres(ctx context.Context, repo genreRepository, owner models.GenreOwner, ownerID string, names []string) (*dto.UpdateGenresResponse, error) {
	added, removed, err := repo.Replace(ctx, owner, ownerID, normalizeGenres(names))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update genres")
	}
	current, err := repo.ListFor(ctx, owner, ownerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load genres")
	}
	return &dto.UpdateGenresResponse{Genres: nonNil(current), Added: nonNil(added), Removed: nonNil(removed)}, nil
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
