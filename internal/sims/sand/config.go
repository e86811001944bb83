package sand

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidConfig reports configuration values the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid sand config")

// Params holds the tuning constants for the material rules. Gravity is added
// to a particle's velocity once per tick; it does not scale with dt.
type Params struct {
	GravitySand          float64 `yaml:"gravity_sand"`
	MaxVelocitySand      float64 `yaml:"max_velocity_sand"`
	DiagonalVelocitySand float64 `yaml:"diagonal_velocity_sand"`

	GravityWater          float64 `yaml:"gravity_water"`
	MaxVelocityWater      float64 `yaml:"max_velocity_water"`
	DiagonalVelocityWater float64 `yaml:"diagonal_velocity_water"`

	GravityOil          float64 `yaml:"gravity_oil"`
	MaxVelocityOil      float64 `yaml:"max_velocity_oil"`
	DiagonalVelocityOil float64 `yaml:"diagonal_velocity_oil"`

	FireLifetimeMin      float64 `yaml:"fire_lifetime_min"`
	FireLifetimeMax      float64 `yaml:"fire_lifetime_max"`
	FireFlickerThreshold float64 `yaml:"fire_flicker_threshold"`
	FireFlickerChance    float64 `yaml:"fire_flicker_chance"`
	FireRiseChance       float64 `yaml:"fire_rise_chance"`
	FireSpreadChance     float64 `yaml:"fire_spread_chance"`
	FireSmokeThreshold   float64 `yaml:"fire_smoke_threshold"`
	FireSmokeChance      float64 `yaml:"fire_smoke_chance"`
}

// Config controls the sand simulation dimensions and rules.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultParams returns the standard rule constants.
func DefaultParams() Params {
	return Params{
		GravitySand:          0.1,
		MaxVelocitySand:      5,
		DiagonalVelocitySand: 1,

		GravityWater:          0.05,
		MaxVelocityWater:      3,
		DiagonalVelocityWater: 0.5,

		GravityOil:          0.04,
		MaxVelocityOil:      2.5,
		DiagonalVelocityOil: 0.3,

		FireLifetimeMin:      2,
		FireLifetimeMax:      4,
		FireFlickerThreshold: 0.5,
		FireFlickerChance:    0.05,
		FireRiseChance:       0.7,
		FireSpreadChance:     0.3,
		FireSmokeThreshold:   0.8,
		FireSmokeChance:      0.02,
	}
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  200,
		Height: 150,
		Seed:   1337,
		Params: DefaultParams(),
	}
}

// paramDef binds a Params field to its flag key, HUD label and bounds.
type paramDef struct {
	key   string
	label string
	group string
	step  float64
	min   float64
	max   float64
	field func(*Params) *float64
}

var paramDefs = []paramDef{
	{"gravity_sand", "Sand gravity", "Sand", 0.01, 0, 2, func(p *Params) *float64 { return &p.GravitySand }},
	{"max_velocity_sand", "Sand max velocity", "Sand", 0.5, 0.5, 32, func(p *Params) *float64 { return &p.MaxVelocitySand }},
	{"diagonal_velocity_sand", "Sand diagonal velocity", "Sand", 0.1, 0, 32, func(p *Params) *float64 { return &p.DiagonalVelocitySand }},
	{"gravity_water", "Water gravity", "Water", 0.01, 0, 2, func(p *Params) *float64 { return &p.GravityWater }},
	{"max_velocity_water", "Water max velocity", "Water", 0.5, 0.5, 32, func(p *Params) *float64 { return &p.MaxVelocityWater }},
	{"diagonal_velocity_water", "Water diagonal velocity", "Water", 0.1, 0, 32, func(p *Params) *float64 { return &p.DiagonalVelocityWater }},
	{"gravity_oil", "Oil gravity", "Oil", 0.01, 0, 2, func(p *Params) *float64 { return &p.GravityOil }},
	{"max_velocity_oil", "Oil max velocity", "Oil", 0.5, 0.5, 32, func(p *Params) *float64 { return &p.MaxVelocityOil }},
	{"diagonal_velocity_oil", "Oil diagonal velocity", "Oil", 0.1, 0, 32, func(p *Params) *float64 { return &p.DiagonalVelocityOil }},
	{"fire_lifetime_min", "Fire lifetime min", "Fire", 0.1, 0, 60, func(p *Params) *float64 { return &p.FireLifetimeMin }},
	{"fire_lifetime_max", "Fire lifetime max", "Fire", 0.1, 0, 60, func(p *Params) *float64 { return &p.FireLifetimeMax }},
	{"fire_flicker_threshold", "Fire flicker threshold", "Fire", 0.05, 0, 60, func(p *Params) *float64 { return &p.FireFlickerThreshold }},
	{"fire_flicker_chance", "Fire flicker chance", "Fire", 0.01, 0, 1, func(p *Params) *float64 { return &p.FireFlickerChance }},
	{"fire_rise_chance", "Fire rise chance", "Fire", 0.05, 0, 1, func(p *Params) *float64 { return &p.FireRiseChance }},
	{"fire_spread_chance", "Fire spread chance", "Fire", 0.05, 0, 1, func(p *Params) *float64 { return &p.FireSpreadChance }},
	{"fire_smoke_threshold", "Fire smoke threshold", "Fire", 0.05, 0, 60, func(p *Params) *float64 { return &p.FireSmokeThreshold }},
	{"fire_smoke_chance", "Fire smoke chance", "Fire", 0.01, 0, 1, func(p *Params) *float64 { return &p.FireSmokeChance }},
}

func lookupParam(key string) (paramDef, bool) {
	for _, def := range paramDefs {
		if def.key == key {
			return def, true
		}
	}
	return paramDef{}, false
}

// Set assigns the parameter named by key, clamped to its bounds. It reports
// false for unknown keys.
func (p *Params) Set(key string, value float64) bool {
	def, ok := lookupParam(key)
	if !ok {
		return false
	}
	if value < def.min {
		value = def.min
	}
	if value > def.max {
		value = def.max
	}
	*def.field(p) = value
	return true
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	for _, def := range paramDefs {
		v, ok := cfg[def.key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Set(def.key, parsed)
		}
	}
	if c.Params.FireLifetimeMax < c.Params.FireLifetimeMin {
		c.Params.FireLifetimeMax = c.Params.FireLifetimeMin
	}
	return c
}

// Validate reports the first configuration value the rules cannot honor.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	}
	p := c.Params
	for _, def := range paramDefs {
		v := *def.field(&p)
		if v < def.min || v > def.max {
			return fmt.Errorf("%w: %s=%g outside [%g, %g]", ErrInvalidConfig, def.key, v, def.min, def.max)
		}
	}
	if p.FireLifetimeMax < p.FireLifetimeMin {
		return fmt.Errorf("%w: fire_lifetime_max %g below fire_lifetime_min %g", ErrInvalidConfig, p.FireLifetimeMax, p.FireLifetimeMin)
	}
	return nil
}
