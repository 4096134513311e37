package main

import (
	"math/rand"
	"testing"

	"github.com/milk9111/spookymaze/config"
	"github.com/milk9111/spookymaze/prefabs"
	"github.com/milk9111/spookymaze/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFlagsOverrideConfig(t *testing.T) {
	o, set, err := parseFlags([]string{"-s", "800x600", "-seed", "7", "-debug", "-d", "data"})
	require.NoError(t, err)

	cfg := config.Default()
	cfg.Game.Level = "level-1.txt"
	require.NoError(t, applyFlags(cfg, o, set))

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.True(t, cfg.Game.Debug)
	assert.Equal(t, "data", cfg.Game.DataDir)
	assert.Equal(t, "level-1.txt", cfg.Game.Level, "unset flags leave the file value")
	assert.False(t, cfg.Window.Fullscreen)
}

func TestBadFlags(t *testing.T) {
	o, set, err := parseFlags([]string{"-size", "big"})
	require.NoError(t, err)
	assert.Error(t, applyFlags(config.Default(), o, set))

	_, _, err = parseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestHUDText(t *testing.T) {
	w := system.NewWorld("", rand.New(rand.NewSource(3)), zap.NewNop())
	w.Fixed = "level-0.txt"
	s := system.NewSession(w, system.DefaultRules(), prefabs.DefaultSpecs(), nil)
	require.NoError(t, s.Start())
	s.State().Score = 1234

	assert.Equal(t, "SCORE 001234   LIVES 3   LEVEL 1   TIME 75   GOODIES 12", hudText(s))
}
