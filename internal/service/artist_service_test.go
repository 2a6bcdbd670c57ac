package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ibuttimer/fyyur/internal/dto"
	"github.com/ibuttimer/fyyur/internal/models"
	appErrors "github.com/ibuttimer/fyyur/pkg/errors"
)

func newArtistFixture() (*ArtistService, *artistLookupStub, *genreRepoStub) {
	artists := &artistLookupStub{items: map[string]*models.Artist{"artist-1": {ID: "artist-1", Name: "Guns N Petals"}}}
	genres := &genreRepoStub{current: map[string][]string{}}
	return NewArtistService(artists, genres, nil, zap.NewNop()), artists, genres
}

func TestArtistServiceGet(t *testing.T) {
	svc, artists, _ := newArtistFixture()

	artist, err := svc.Get(context.Background(), "artist-1")
	require.NoError(t, err)
	assert.Equal(t, "Guns N Petals", artist.Name)
	assert.Equal(t, []string{}, artist.Genres)

	_, err = svc.Get(context.Background(), "artist-2")
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))

	artists.err = errors.New("db closed")
	_, err = svc.Get(context.Background(), "artist-1")
	assert.True(t, appErrors.Is(err, appErrors.ErrInternal))
}

func TestArtistServiceUpdateGenres(t *testing.T) {
	svc, _, genres := newArtistFixture()

	resp, err := svc.UpdateGenres(context.Background(), "artist-1", dto.UpdateGenresRequest{Genres: []string{"Rock n Roll"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Rock n Roll"}, resp.Added)
	assert.Equal(t, []string{"Rock n Roll"}, genres.current["artist:artist-1"])

	_, err = svc.UpdateGenres(context.Background(), "artist-1", dto.UpdateGenresRequest{Genres: []string{strings.Repeat("x", 121)}})
	assert.True(t, appErrors.Is(err, appErrors.ErrValidation))

	_, err = svc.UpdateGenres(context.Background(), "artist-9", dto.UpdateGenresRequest{})
	assert.True(t, appErrors.Is(err, appErrors.ErrNotFound))
}

func TestNormalizeGenres(t *testing.T) {
	assert.Equal(t, []string{"Jazz", "Hip-Hop"}, normalizeGenres([]string{"Jazz", " jazz", "Hip-Hop", "  "}))
	assert.Equal(t, []string{}, normalizeGenres(nil))
}
