package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name          string
		content       string
		noFile        bool
		validate      func(*testing.T, *Config)
		expectedError bool
	}{
		{
			name:   "MissingFile_Defaults",
			noFile: true,
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "DRONE SIMULATOR", cfg.Window.Title)
				assert.Equal(t, 360, cfg.Window.Width)
				assert.Equal(t, float32(20), cfg.View.Azimuth)
				assert.Equal(t, float32(3), cfg.View.StepSize)
				assert.False(t, cfg.Render.ShowHUD)
			},
		},
		{
			name:    "PartialOverride",
			content: "window:\n  width: 800\nview:\n  azimuth: -10\n  step_max: 5\nrender:\n  show_hud: true\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 800, cfg.Window.Width)
				assert.Equal(t, 360, cfg.Window.Height, "untouched fields keep defaults")
				assert.Equal(t, float32(-10), cfg.View.Azimuth)
				assert.Equal(t, float32(5), cfg.View.StepMax)
				assert.Equal(t, float32(0.1), cfg.View.StepMin)
				assert.True(t, cfg.Render.ShowHUD)
			},
		},
		{
			name:          "EmptyStepRange",
			content:       "view:\n  step_min: 4\n  step_max: 2\n",
			expectedError: true,
		},
		{
			name:          "BadStepScale",
			content:       "view:\n  step_scale: 1\n",
			expectedError: true,
		},
		{
			name:          "StepAboveFullTurn",
			content:       "view:\n  step_size: 900\n  step_max: 1000\n",
			expectedError: true,
		},
		{
			name:    "StepMaxFullTurn",
			content: "view:\n  step_size: 360\n  step_max: 360\n",
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, float32(360), cfg.View.StepMax)
			},
		},
		{
			name:          "ZeroAzimuthLimit",
			content:       "view:\n  azimuth_limit: 0\n",
			expectedError: true,
		},
		{
			name:          "AzimuthLimitAtVertical",
			content:       "view:\n  azimuth_limit: 90\n",
			expectedError: true,
		},
		{
			name:          "ZeroHUDFont",
			content:       "render:\n  hud_font_px: 0\n",
			expectedError: true,
		},
		{
			name:          "NegativeStepMin",
			content:       "view:\n  step_min: -1\n",
			expectedError: true,
		},
		{
			name:          "NonPositiveWindow",
			content:       "window:\n  height: 0\n",
			expectedError: true,
		},
		{
			name:          "Malformed",
			content:       "window: [1, 2\n",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tempDir, tt.name+".yaml")
			if !tt.noFile {
				require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			}

			cfg, err := Load(path)
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNewViewStateClampsInitialValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.View.Azimuth = 120
	cfg.View.StepSize = 50
	cfg.View.Rotation = 540

	s := cfg.NewViewState()
	assert.Equal(t, float32(80), s.Azimuth)
	assert.Equal(t, float32(10), s.StepSize)
	assert.Equal(t, float32(180), s.Rotation)

	cfg.View.Rotation = -180
	assert.Equal(t, float32(180), cfg.NewViewState().Rotation)
}

func TestRenderToggles(t *testing.T) {
	t.Cleanup(func() { ApplyRender(DefaultConfig()) })

	cfg := DefaultConfig()
	cfg.Render.Wireframe = true
	ApplyRender(cfg)
	assert.True(t, GetWireframe())
	assert.False(t, GetShowHUD())

	SetShowHUD(true)
	assert.True(t, GetShowHUD())
}

func TestSetupLogging(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	var buf bytes.Buffer
	require.NoError(t, SetupLogging(&buf, "debug"))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	log.WithField("key", "w").Debug("key pressed")
	assert.Contains(t, buf.String(), "key pressed")
	assert.Contains(t, buf.String(), "key=w")

	require.NoError(t, SetupLogging(&buf, ""))
	assert.Equal(t, log.InfoLevel, log.GetLevel())

	assert.Error(t, SetupLogging(&buf, "loud"))
	log.SetOutput(os.Stderr)
}

func TestLoadKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.yaml")
	data := "keys:\n  x: quit\n  w: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"x": "quit", "w": ""}, cfg.Keys)
}
