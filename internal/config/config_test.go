package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")

	cfg, err := LoadFiles()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "course_events", cfg.AMQP.Queue)
	assert.False(t, cfg.AMQP.Enabled())
	assert.Equal(t, "edu-dashboard", cfg.Auth.Issuer)
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.Equal(t, "default_campaign", cfg.Courses.DefaultCampaign)
	assert.Equal(t, "ClassroomProgramCourse", cfg.Courses.DefaultType)
	assert.Equal(t, 2*time.Hour, cfg.Courses.SessionTTL)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_SECRET", "")
	os.Unsetenv("AUTH_SECRET")

	_, err := LoadFiles()
	assert.Error(t, err)
}

func TestLoadDotenv(t *testing.T) {
	t.Setenv("AUTH_SECRET", "s3cret")
	t.Setenv("COURSES_STRING_PREFIX", "courses_generic")
	t.Cleanup(func() { os.Unsetenv("COURSES_DEFAULT_CAMPAIGN") })

	path := filepath.Join(t.TempDir(), ".env")
	content := "COURSES_DEFAULT_CAMPAIGN=spring_2025\nCOURSES_STRING_PREFIX=ignored\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "spring_2025", cfg.Courses.DefaultCampaign)
	assert.Equal(t, "courses_generic", cfg.Courses.StringPrefix)
}
