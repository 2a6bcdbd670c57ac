package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
)

// ArtistService serves artist profiles and their genres.
type ArtistService struct {
	artists   artistLookup
	genres    genreRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewArtistService constructs an ArtistService.
func NewArtistService(artists artistLookup, genres genreRepository, validate *validator.Validate, logger *zap.Logger) *ArtistService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ArtistService{artists: artists, genres: genres, validator: validate, logger: logger}
}

// Get returns an artist with its genres.
func (s *ArtistService) Get(ctx context.Context, id string) (*models.Artist, error) {
	artist, err := findArtist(ctx, s.artists, id)
	if err != nil {
		return nil, err
	}
	genres, err := s.genres.ListFor(ctx, models.GenreOwnerArtist, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load artist genres")
	}
	artist.Genres = nonNil(genres)
	return artist, nil
}

// UpdateGenres replaces the artist's genre set.
func (s *ArtistService) UpdateGenres(ctx context.Context, id string, req dto.UpdateGenresRequest) (*dto.UpdateGenresResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid genres payload")
	}
	if _, err := findArtist(ctx, s.artists, id); err != nil {
		return nil, err
	}
	resp, err := replaceGenres(ctx, s.genres, models.GenreOwnerArtist, id, req.Genres)
	if err != nil {
		return nil, err
	}
	s.logger.Info("artist genres updated", zap.String("artist_id", id), zap.Strings("added", resp.Added), zap.Strings("removed", resp.Removed))
	return resp, nil
}
