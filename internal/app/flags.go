package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Width  int
	Height int
	Tuning string
	Brush  int
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", Scale: 4, TPS: 60, Seed: 42, Brush: 2, HUD: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells (0 keeps the sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells (0 keeps the sim default)")
	fs.StringVar(&c.Tuning, "tuning", c.Tuning, "YAML tuning file overriding rule constants")
	fs.IntVar(&c.Brush, "brush", c.Brush, "initial brush radius in cells")
	fs.IntVar(&c.HUD, "hud", c.HUD, "parameter panel width in pixels (0 hides it)")
}

// SimOptions converts the configuration into factory options.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{"seed": strconv.FormatInt(c.Seed, 10)}
	if c.Width > 0 {
		opts["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		opts["h"] = strconv.Itoa(c.Height)
	}
	if c.Tuning != "" {
		opts["tuning"] = c.Tuning
	}
	return opts
}
