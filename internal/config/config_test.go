package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwoodham/bucksbot/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "bucksbot", cfg.App.Name)
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "bank.json", cfg.Snapshot.Path)
	assert.Equal(t, 6*time.Minute, cfg.Snapshot.SaveInterval)
	assert.Equal(t, "!bucks", cfg.Bot.Trigger)
	assert.Equal(t, "bucksbot", cfg.Bot.Name)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SNAPSHOT_SAVE_INTERVAL", "30s")
	t.Setenv("BOT_MODERATORS", "alice,bob")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, 30*time.Second, cfg.Snapshot.SaveInterval)
	assert.Equal(t, []string{"alice", "bob"}, cfg.Bot.Moderators)
}
