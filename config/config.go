// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Player    PlayerConfig    `yaml:"player"`
	Daylight  DaylightConfig  `yaml:"daylight"`
	Signals   SignalsConfig   `yaml:"signals"`
	Birds     BirdsConfig     `yaml:"birds"`
	Trees     TreesConfig     `yaml:"trees"`
	Buildings BuildingsConfig `yaml:"buildings"`
	Landmarks LandmarksConfig `yaml:"landmarks"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds the city grid and boundary parameters.
// Building cells sit at grid_min + i*grid_step on both axes; road stripes run
// along the block boundaries halfway between neighboring cells.
type WorldConfig struct {
	GridMin       int     `yaml:"grid_min"`        // First building cell coordinate
	GridStep      int     `yaml:"grid_step"`       // Spacing between cells
	GridCount     int     `yaml:"grid_count"`      // Cells per axis
	RoadHalfWidth float64 `yaml:"road_half_width"` // Half the paved road width
	RoadMargin    float64 `yaml:"road_margin"`     // Extra keep-out beyond the pavement
	SidewalkWidth float64 `yaml:"sidewalk_width"`  // Paved strip alongside roads
	BoundLimit    float64 `yaml:"bound_limit"`     // Player clamp at +-limit on x and z
}

// PlayerConfig holds movement integrator parameters.
type PlayerConfig struct {
	EyeHeight   float64 `yaml:"eye_height"`   // Camera height, y is pinned here
	Radius      float64 `yaml:"radius"`       // Collision padding added to collider extents
	WalkAccel   float64 `yaml:"walk_accel"`   // Velocity gain per second, normal
	SprintAccel float64 `yaml:"sprint_accel"` // Velocity gain per second, sprinting
	Friction    float64 `yaml:"friction"`     // Exponential decay rate per second
	MaxDT       float64 `yaml:"max_dt"`       // Frame delta clamp in seconds
}

// DaylightConfig holds the day/night cycle parameters.
// Phase 0 is dawn (06:00); one full cycle is day_seconds of real time.
type DaylightConfig struct {
	DaySeconds    float64 `yaml:"day_seconds"`    // Real seconds per full cycle
	OrbitRadius   float64 `yaml:"orbit_radius"`   // Sun/moon orbit radius in the x/y plane
	OrbitZ        float64 `yaml:"orbit_z"`        // Fixed z offset of the orbit plane
	HorizonMargin float64 `yaml:"horizon_margin"` // Visibility threshold below y=0
	SunMax        float64 `yaml:"sun_max"`        // Directional intensity at zenith
	AmbientBase   float64 `yaml:"ambient_base"`   // Ambient floor at midnight
	AmbientMax    float64 `yaml:"ambient_max"`    // Ambient gain added at zenith
	LampScale     float64 `yaml:"lamp_scale"`     // Street lamp intensity scale
	LampThreshold float64 `yaml:"lamp_threshold"` // Night factor where lamps start ramping
	GlowThreshold float64 `yaml:"glow_threshold"` // Lamp intensity where the glow toggles on
	BlendGate     float64 `yaml:"blend_gate"`     // Day factor gating day->sunset vs sunset->night

	DayColor    []float64 `yaml:"day_color"`    // Sky/fog RGB at full day
	SunsetColor []float64 `yaml:"sunset_color"` // Sky/fog RGB at the gate
	NightColor  []float64 `yaml:"night_color"`  // Sky/fog RGB at full night
}

// SignalsConfig holds traffic light phase durations in seconds.
type SignalsConfig struct {
	RedSeconds    float64 `yaml:"red_seconds"`
	GreenSeconds  float64 `yaml:"green_seconds"`
	YellowSeconds float64 `yaml:"yellow_seconds"`
}

// BirdsConfig holds the ambient bird flock parameters.
type BirdsConfig struct {
	Count        int     `yaml:"count"`
	SpeedMin     float64 `yaml:"speed_min"`
	SpeedMax     float64 `yaml:"speed_max"`
	Altitude     float64 `yaml:"altitude"`      // Base flight height
	BobAmplitude float64 `yaml:"bob_amplitude"` // Vertical bob from the flap phase
	FlapHz       float64 `yaml:"flap_hz"`       // Wing beat frequency, wall-clock driven
	WrapBound    float64 `yaml:"wrap_bound"`    // Teleport to the opposite edge past +-bound
}

// TreesConfig holds decorative tree placement parameters.
type TreesConfig struct {
	Clearance      float64 `yaml:"clearance"`        // Gap between footprint and inner ring
	MaxRadius      float64 `yaml:"max_radius"`       // Outer sampling ring cap
	MinSpacing     float64 `yaml:"min_spacing"`      // Minimum distance between trees in a batch
	Attempts       int     `yaml:"attempts"`         // Sampling attempts per tree
	MaxPerBuilding int     `yaml:"max_per_building"` // Target count upper bound
}

// BuildingsConfig holds procedural building generation parameters.
type BuildingsConfig struct {
	FootprintMin      float64 `yaml:"footprint_min"`     // Smallest width/depth
	FootprintMax      float64 `yaml:"footprint_max"`     // Largest width/depth
	CentralThreshold  float64 `yaml:"central_threshold"` // |x| and |z| at or below this is downtown
	CentralHeightMin  float64 `yaml:"central_height_min"`
	CentralHeightMax  float64 `yaml:"central_height_max"`
	OutskirtHeightMin float64 `yaml:"outskirt_height_min"`
	OutskirtHeightMax float64 `yaml:"outskirt_height_max"`
}

// LandmarksConfig pins fixed and reserved cells of the grid.
type LandmarksConfig struct {
	SchoolCell  []int         `yaml:"school_cell"`  // Reserved cell for the school
	ParkingCell []int         `yaml:"parking_cell"` // Reserved cell for the parking lot
	Towers      []TowerConfig `yaml:"towers"`       // Fixed skyscraper cells
}

// TowerConfig is one fixed skyscraper placement.
type TowerConfig struct {
	Cell   []int   `yaml:"cell"`
	Height float64 `yaml:"height"`
}

// QuizConfig holds sign encounter parameters.
type QuizConfig struct {
	TriggerRadius float64 `yaml:"trigger_radius"` // Distance at which a sign offers its quiz
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"` // Seconds between stats flushes to the log
}

// RGB is a color triple in 0..255 channel space.
type RGB struct {
	R, G, B float32
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	CycleSpeed float32   // Phase advance per real second (1 / day_seconds)
	RoadLines  []float32 // Stripe center coordinates, shared by both axes
	DayRGB     RGB
	SunsetRGB  RGB
	NightRGB   RGB
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Compute derived values
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configs the generator or clock cannot work with.
func (c *Config) validate() error {
	if c.World.GridStep <= 0 || c.World.GridCount <= 0 {
		return fmt.Errorf("world: grid_step and grid_count must be positive")
	}
	if c.World.RoadHalfWidth <= 0 {
		return fmt.Errorf("world: road_half_width must be positive")
	}
	if c.Daylight.DaySeconds <= 0 {
		return fmt.Errorf("daylight: day_seconds must be positive")
	}
	if c.Player.Friction <= 0 {
		return fmt.Errorf("player: friction must be positive")
	}
	for _, col := range [][]float64{c.Daylight.DayColor, c.Daylight.SunsetColor, c.Daylight.NightColor} {
		if len(col) != 3 {
			return fmt.Errorf("daylight: color stops need exactly 3 channels, got %d", len(col))
		}
	}
	if len(c.Landmarks.SchoolCell) != 2 || len(c.Landmarks.ParkingCell) != 2 {
		return fmt.Errorf("landmarks: school_cell and parking_cell need exactly 2 coordinates")
	}
	for i, tw := range c.Landmarks.Towers {
		if len(tw.Cell) != 2 {
			return fmt.Errorf("landmarks: towers[%d].cell needs exactly 2 coordinates", i)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.CycleSpeed = float32(1.0 / c.Daylight.DaySeconds)

	// Road stripes sit on the block boundaries: one half-step outside each
	// cell, so a grid of N cells is enclosed by N+1 stripes per axis.
	half := float32(c.World.GridStep) / 2
	lines := make([]float32, 0, c.World.GridCount+1)
	for i := 0; i <= c.World.GridCount; i++ {
		lines = append(lines, float32(c.World.GridMin+i*c.World.GridStep)-half)
	}
	c.Derived.RoadLines = lines

	c.Derived.DayRGB = rgbFromSlice(c.Daylight.DayColor)
	c.Derived.SunsetRGB = rgbFromSlice(c.Daylight.SunsetColor)
	c.Derived.NightRGB = rgbFromSlice(c.Daylight.NightColor)
}

func rgbFromSlice(s []float64) RGB {
	return RGB{R: float32(s[0]), G: float32(s[1]), B: float32(s[2])}
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
