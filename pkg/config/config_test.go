package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, 6, cfg.Shows.PageSize)
	assert.Equal(t, 50, cfg.Shows.MaxPageSize)
	assert.True(t, cfg.Availability.CacheEnabled)
	assert.Equal(t, 10*time.Minute, cfg.Availability.CacheTTL)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, "fyyur.shows", cfg.Events.Queue)
	assert.Equal(t, 2*time.Second, cfg.Events.RetryDelay)
	assert.Equal(t, 10, cfg.Redis.PoolSize)
	assert.Equal(t, 3*time.Second, cfg.Redis.DialTimeout)
	assert.Empty(t, cfg.Redis.URL)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("SHOWS_PER_PAGE", 0)
	v.Set("SHOWS_MAX_PER_PAGE", 2)
	v.Set("AVAILABILITY_CACHE_TTL", "not-a-duration")
	v.Set("ALLOWED_ORIGINS", " http://a.test , ,http://b.test")

	cfg := fromViper(v)

	assert.Equal(t, 6, cfg.Shows.PageSize)
	assert.Equal(t, 6, cfg.Shows.MaxPageSize)
	assert.Equal(t, 10*time.Minute, cfg.Availability.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}
