// Package config provides configuration loading and access for the pasture.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Mating growth policies.
const (
	MateGrowthClamp    = "clamp"    // parents' growth stays capped at 100
	MateGrowthUncapped = "uncapped" // parents' growth may exceed 100
)

// Config holds all simulation configuration parameters.
type Config struct {
	Screen       ScreenConfig       `yaml:"screen"`
	Field        FieldConfig        `yaml:"field"`
	Population   PopulationConfig   `yaml:"population"`
	Movement     MovementConfig     `yaml:"movement"`
	Growth       GrowthConfig       `yaml:"growth"`
	Reproduction ReproductionConfig `yaml:"reproduction"`
	Predation    PredationConfig    `yaml:"predation"`
	Shepherd     ShepherdConfig     `yaml:"shepherd"`
	Dog          DogConfig          `yaml:"dog"`
	Sprites      SpritesConfig      `yaml:"sprites"`
	Telemetry    TelemetryConfig    `yaml:"telemetry"`
	Bookmarks    BookmarksConfig    `yaml:"bookmarks"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`  // 0 = field width
	Height    int    `yaml:"height"` // 0 = field height
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// FieldConfig holds the simulated field dimensions.
type FieldConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	Boundary int `yaml:"boundary"` // minimal distance of animals to the border
}

// PopulationConfig holds start-up population parameters.
type PopulationConfig struct {
	Sheep    int  `yaml:"sheep"`
	Wolves   int  `yaml:"wolves"`
	Shepherd bool `yaml:"shepherd"`  // spawn the shepherd and its dog
	MaxSheep int  `yaml:"max_sheep"` // 0 = unlimited
}

// MovementConfig holds step sizes and wandering parameters.
type MovementConfig struct {
	BaseSpeed    int `yaml:"base_speed"`
	BoostSpeed   int `yaml:"boost_speed"` // while fleeing or chasing
	WanderRadius int `yaml:"wander_radius"`
}

// GrowthConfig holds sheep maturation parameters.
type GrowthConfig struct {
	Cadence int `yaml:"cadence"` // growth advances when (now - birth) % cadence == 0
}

// ReproductionConfig holds mating parameters.
type ReproductionConfig struct {
	MateGrowth string `yaml:"mate_growth"` // clamp | uncapped
}

// PredationConfig holds wolf/sheep interaction parameters.
type PredationConfig struct {
	ChaseRadius  float64 `yaml:"chase_radius"`
	FleeDistance float64 `yaml:"flee_distance"`
	Pursuit      bool    `yaml:"pursuit"` // wolves steer toward sheep in range
}

// ShepherdConfig holds the player-controlled shepherd parameters.
type ShepherdConfig struct {
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
	Step   int `yaml:"step"`
}

// DogConfig holds the shepherd dog orbit parameters.
type DogConfig struct {
	OrbitSpeed  float64 `yaml:"orbit_speed"`  // radians per tick
	OrbitRadius float64 `yaml:"orbit_radius"` // 0 = half the shepherd's width
}

// SpriteConfig describes one sprite asset.
// Width and Height are used when no texture is loaded (headless).
type SpriteConfig struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// SpritesConfig holds sprite assets for every kind and sheep growth stage.
type SpritesConfig struct {
	Dir      string       `yaml:"dir"`
	Lamb     SpriteConfig `yaml:"lamb"`     // growth <= 25
	Young    SpriteConfig `yaml:"young"`    // growth 26-50
	Juvenile SpriteConfig `yaml:"juvenile"` // growth 51-75
	Sheep    SpriteConfig `yaml:"sheep"`    // growth 76+
	Wolf     SpriteConfig `yaml:"wolf"`
	Shepherd SpriteConfig `yaml:"shepherd"`
	Dog      SpriteConfig `yaml:"dog"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // ticks per stats window
	PerfWindow  int `yaml:"perf_window"`  // ticks averaged by the perf collector
}

// BookmarksConfig holds bookmark detection thresholds.
type BookmarksConfig struct {
	FlockCrash FlockCrashConfig `yaml:"flock_crash"`
	Feast      FeastConfig      `yaml:"feast"`
	Boom       BoomConfig       `yaml:"boom"`
}

// FlockCrashConfig holds flock crash detection parameters.
type FlockCrashConfig struct {
	DropPercent float64 `yaml:"drop_percent"`
	MinDrop     int     `yaml:"min_drop"`
}

// FeastConfig holds wolf feast detection parameters.
type FeastConfig struct {
	MinKills int `yaml:"min_kills"`
}

// BoomConfig holds lambing boom detection parameters.
type BoomConfig struct {
	MinBirths int `yaml:"min_births"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW int32 // effective window width
	ScreenH int32 // effective window height
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Field.Width <= 0 || c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field: size must be positive, got %dx%d", c.Field.Width, c.Field.Height))
	}
	if c.Field.Boundary < 0 || 2*c.Field.Boundary > c.Field.Width || 2*c.Field.Boundary > c.Field.Height {
		errs = append(errs, fmt.Errorf("field: boundary %d does not fit a %dx%d field", c.Field.Boundary, c.Field.Width, c.Field.Height))
	}
	if c.Movement.BaseSpeed < 1 || c.Movement.BoostSpeed < c.Movement.BaseSpeed {
		errs = append(errs, fmt.Errorf("movement: need 1 <= base_speed <= boost_speed, got %d/%d", c.Movement.BaseSpeed, c.Movement.BoostSpeed))
	}
	if c.Movement.WanderRadius < 0 {
		errs = append(errs, errors.New("movement: wander_radius must not be negative"))
	}
	if c.Growth.Cadence < 1 {
		errs = append(errs, errors.New("growth: cadence must be at least 1"))
	}
	if c.Predation.ChaseRadius < 0 || c.Predation.FleeDistance < 0 {
		errs = append(errs, errors.New("predation: radii must not be negative"))
	}
	switch c.Reproduction.MateGrowth {
	case MateGrowthClamp, MateGrowthUncapped:
	default:
		errs = append(errs, fmt.Errorf("reproduction: unknown mate_growth %q", c.Reproduction.MateGrowth))
	}
	if c.Population.Sheep < 0 || c.Population.Wolves < 0 || c.Population.MaxSheep < 0 {
		errs = append(errs, errors.New("population: counts must not be negative"))
	}

	return errors.Join(errs...)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	// Window defaults to the field size
	w := c.Screen.Width
	if w == 0 {
		w = c.Field.Width
	}
	h := c.Screen.Height
	if h == 0 {
		h = c.Field.Height
	}
	c.Derived.ScreenW = int32(w)
	c.Derived.ScreenH = int32(h)

	if c.Telemetry.StatsWindow < 1 {
		c.Telemetry.StatsWindow = 600
	}
	if c.Telemetry.PerfWindow < 1 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
