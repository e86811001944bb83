package sand

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMapOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":                 "64",
		"h":                 "bogus",
		"seed":              "9",
		"gravity_sand":      "0.25",
		"fire_rise_chance":  "5",
		"fire_lifetime_max": "1",
		"unknown_key":       "3",
	})
	def := DefaultConfig()
	assert.Equal(t, 64, cfg.Width)
	assert.Equal(t, def.Height, cfg.Height)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 0.25, cfg.Params.GravitySand)
	assert.Equal(t, 1.0, cfg.Params.FireRiseChance, "chances clamp to 1")
	assert.Equal(t, cfg.Params.FireLifetimeMin, cfg.Params.FireLifetimeMax, "max never drops below min")
	require.NoError(t, cfg.Validate())
}

func TestFromMapNilReturnsDefaults(t *testing.T) {
	assert.Equal(t, DefaultConfig(), FromMap(nil))
}

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	assert.Equal(t, 0.1, p.GravitySand)
	assert.Equal(t, 5.0, p.MaxVelocitySand)
	assert.Equal(t, 1.0, p.DiagonalVelocitySand)
	assert.Equal(t, 0.05, p.GravityWater)
	assert.Equal(t, 3.0, p.MaxVelocityWater)
	assert.Equal(t, 0.5, p.DiagonalVelocityWater)

	assert.Less(t, p.GravityOil, p.GravityWater, "oil falls slowest")
	assert.Less(t, p.MaxVelocityOil, p.MaxVelocityWater)
	assert.Less(t, p.DiagonalVelocityOil, p.DiagonalVelocityWater)

	assert.Equal(t, 2.0, p.FireLifetimeMin)
	assert.Equal(t, 4.0, p.FireLifetimeMax)
	assert.Equal(t, 0.5, p.FireFlickerThreshold)
	assert.Equal(t, 0.05, p.FireFlickerChance)
	assert.Equal(t, 0.7, p.FireRiseChance)
	assert.Equal(t, 0.3, p.FireSpreadChance)
	assert.Equal(t, 0.8, p.FireSmokeThreshold)
	assert.Equal(t, 0.02, p.FireSmokeChance)
}

func TestParamsSetUnknownKey(t *testing.T) {
	p := DefaultParams()
	assert.False(t, p.Set("gravity_lava", 1))
	assert.True(t, p.Set("gravity_oil", -3))
	assert.Zero(t, p.GravityOil)
}

func TestValidateRejectsInvertedLifetime(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.FireLifetimeMin = 5
	cfg.Params.FireLifetimeMax = 1
	require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestParseTuningOverlaysConfig(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseTuning([]byte(`
width: 96
params:
  gravity_water: 0.12
  fire_smoke_chance: 0.1
`), &cfg)
	require.NoError(t, err)
	assert.Equal(t, 96, cfg.Width)
	assert.Equal(t, DefaultConfig().Height, cfg.Height)
	assert.Equal(t, 0.12, cfg.Params.GravityWater)
	assert.Equal(t, 0.1, cfg.Params.FireSmokeChance)
	assert.Equal(t, DefaultParams().GravitySand, cfg.Params.GravitySand)
}

func TestParseTuningRejectsSchemaViolations(t *testing.T) {
	docs := map[string]string{
		"unknown key":    "params:\n  gravity_lava: 1\n",
		"chance too big": "params:\n  fire_rise_chance: 1.5\n",
		"bad width":      "width: 0\n",
		"wrong type":     "height: tall\n",
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := ParseTuning([]byte(doc), &cfg)
			require.ErrorIs(t, err, ErrInvalidTuning)
			assert.Equal(t, DefaultConfig(), cfg, "rejected tuning must not modify the config")
		})
	}
}

func TestParseTuningRejectsInvertedLifetime(t *testing.T) {
	cfg := DefaultConfig()
	err := ParseTuning([]byte("params:\n  fire_lifetime_min: 9\n"), &cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Equal(t, DefaultParams().FireLifetimeMin, cfg.Params.FireLifetimeMin)
}

func TestParseTuningEmptyDocument(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, ParseTuning(nil, &cfg))
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadTuningFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\nparams:\n  gravity_sand: 0.2\n"), 0o644))

	cfg := DefaultConfig()
	require.NoError(t, LoadTuning(path, &cfg))
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.2, cfg.Params.GravitySand)

	err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"), &cfg)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParameterSurface(t *testing.T) {
	world := newTestWorld(t, 8, 8)
	snap := world.Parameters()
	require.NotEmpty(t, snap.Groups)
	assert.Equal(t, "World", snap.Groups[0].Name)

	p, ok := snap.Lookup("gravity_sand")
	require.True(t, ok)
	assert.Equal(t, "0.1", p.Value)
	assert.Len(t, world.ParameterControls(), len(paramDefs))

	require.True(t, world.SetFloatParameter("gravity_sand", 0.3))
	assert.Equal(t, 0.3, world.Config().Params.GravitySand)
	assert.False(t, world.SetFloatParameter("nope", 1))

	require.True(t, world.SetFloatParameter("fire_lifetime_min", 10))
	assert.Equal(t, 10.0, world.Config().Params.FireLifetimeMax)
	require.True(t, world.SetFloatParameter("fire_lifetime_max", 1))
	assert.Equal(t, 1.0, world.Config().Params.FireLifetimeMin)
}

func TestParseMaterial(t *testing.T) {
	m, ok := ParseMaterial(" Water ")
	require.True(t, ok)
	assert.Equal(t, Water, m)
	_, ok = ParseMaterial("lava")
	assert.False(t, ok)
	assert.Equal(t, "unknown", Material(99).String())
}
