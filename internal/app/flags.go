package app

import "flag"

// Config represents the command-line parameters for the viewer.
type Config struct {
	Rules     string
	Seed      string
	Scale     int
	TPS       int
	MaxRounds int
}

// NewConfig returns a Config populated with sensible defaults. The built-in
// demo rule set supports two rounds, hence the conservative MaxRounds.
func NewConfig() *Config {
	return &Config{Seed: "", Scale: 16, TPS: 2, MaxRounds: 2}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rules, "rules", c.Rules, "path to a rule file, one PATTERN => REPLACEMENT per line (default: built-in demo rules)")
	fs.StringVar(&c.Seed, "seed", c.Seed, "starting pattern, e.g. .#./..#/### (default: the glider seed)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "enhancement rounds per second")
	fs.IntVar(&c.MaxRounds, "max-rounds", c.MaxRounds, "stop enhancing after this many rounds; grid size grows every round")
}
