package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/field-sketch/audio"
	"github.com/lixenwraith/field-sketch/field"
	"github.com/lixenwraith/field-sketch/input"
)

// EnvPrefix namespaces environment overrides, e.g. FIELDSKETCH_LOGGER_LEVEL
const EnvPrefix = "FIELDSKETCH"

// EnvKeyReplacer maps nested keys like logger.level onto LOGGER_LEVEL
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Color modes accepted by display.color
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

// Config is the fully resolved application configuration
type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
	Grid    GridConfig    `mapstructure:"grid" yaml:"grid"`
	Physics PhysicsConfig `mapstructure:"physics" yaml:"physics"`
	Slider  SliderConfig  `mapstructure:"slider" yaml:"slider"`
	Audio   AudioConfig   `mapstructure:"audio" yaml:"audio"`
	Display DisplayConfig `mapstructure:"display" yaml:"display"`
	Keys    KeysConfig    `mapstructure:"keys" yaml:"keys"`
}

// LoggerConfig holds logging settings, an empty LogFile disables logging
type LoggerConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	AddSource  bool   `mapstructure:"add_source" yaml:"add_source"`
	LogFile    string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize    int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge     int    `mapstructure:"max_age" yaml:"max_age"`
	Compress   bool   `mapstructure:"compress" yaml:"compress"`
}

// GridConfig is the sampling lattice in scene units
type GridConfig struct {
	MinX         float64 `mapstructure:"min_x" yaml:"min_x"`
	MaxX         float64 `mapstructure:"max_x" yaml:"max_x"`
	MinY         float64 `mapstructure:"min_y" yaml:"min_y"`
	MaxY         float64 `mapstructure:"max_y" yaml:"max_y"`
	ElectricStep float64 `mapstructure:"electric_step" yaml:"electric_step"`
	MagneticStep float64 `mapstructure:"magnetic_step" yaml:"magnetic_step"`
}

// PhysicsConfig holds the field model constants
type PhysicsConfig struct {
	Coulomb         float64 `mapstructure:"coulomb" yaml:"coulomb"`
	Permeability    float64 `mapstructure:"permeability" yaml:"permeability"`
	RMin            float64 `mapstructure:"r_min" yaml:"r_min"`
	MinDistance     float64 `mapstructure:"min_distance" yaml:"min_distance"`
	DisplayScale    float64 `mapstructure:"display_scale" yaml:"display_scale"`
	ExtrusionHeight float64 `mapstructure:"extrusion_height" yaml:"extrusion_height"`
}

// SliderConfig is the strength slider range, effective strength is Value*Unit
type SliderConfig struct {
	Min   float64 `mapstructure:"min" yaml:"min"`
	Max   float64 `mapstructure:"max" yaml:"max"`
	Step  float64 `mapstructure:"step" yaml:"step"`
	Value float64 `mapstructure:"value" yaml:"value"`
	Unit  float64 `mapstructure:"unit" yaml:"unit"`
}

type AudioConfig struct {
	Enabled      bool    `mapstructure:"enabled" yaml:"enabled"`
	Muted        bool    `mapstructure:"muted" yaml:"muted"`
	MasterVolume float64 `mapstructure:"master_volume" yaml:"master_volume"`
	SampleRate   int     `mapstructure:"sample_rate" yaml:"sample_rate"`
}

type DisplayConfig struct {
	Color     string `mapstructure:"color" yaml:"color"`
	FrameRate int    `mapstructure:"frame_rate" yaml:"frame_rate"`
}

// KeysConfig overrides key bindings by action name, "none" unbinds
// Keys are lowercased by viper, so rune bindings are case-insensitive
type KeysConfig struct {
	Runes   map[string]string `mapstructure:"runes" yaml:"runes"`
	Special map[string]string `mapstructure:"special" yaml:"special"`
}

// SetDefaults registers every key so env overrides and Unmarshal see it
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Grid --
	grid := field.DefaultGrid()
	v.SetDefault("grid.min_x", grid.MinX)
	v.SetDefault("grid.max_x", grid.MaxX)
	v.SetDefault("grid.min_y", grid.MinY)
	v.SetDefault("grid.max_y", grid.MaxY)
	v.SetDefault("grid.electric_step", grid.ElectricStep)
	v.SetDefault("grid.magnetic_step", grid.MagneticStep)

	// -- Physics --
	v.SetDefault("physics.coulomb", field.Coulomb)
	v.SetDefault("physics.permeability", field.Permeability)
	v.SetDefault("physics.r_min", field.RMin)
	v.SetDefault("physics.min_distance", 0.0)
	v.SetDefault("physics.display_scale", field.DisplayScale)
	v.SetDefault("physics.extrusion_height", 1.0)

	// -- Slider --
	slider := input.DefaultSliderConfig()
	v.SetDefault("slider.min", slider.Min)
	v.SetDefault("slider.max", slider.Max)
	v.SetDefault("slider.step", slider.Step)
	v.SetDefault("slider.value", slider.Value)
	v.SetDefault("slider.unit", slider.Unit)

	// -- Audio --
	snd := audio.DefaultAudioConfig()
	v.SetDefault("audio.enabled", snd.Enabled)
	v.SetDefault("audio.muted", snd.Muted)
	v.SetDefault("audio.master_volume", snd.MasterVolume)
	v.SetDefault("audio.sample_rate", snd.SampleRate)

	// -- Display --
	v.SetDefault("display.color", ColorAuto)
	v.SetDefault("display.frame_rate", 60)
}

// NewDefaultConfig returns the configuration with nothing but defaults applied
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static, failure here is a programming error
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewConfigFromViper unmarshals and validates the merged configuration
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks ranges across every section
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Logger.Level); err != nil {
		return fmt.Errorf("logger.level: %w", err)
	}
	if c.Logger.Format != "console" && c.Logger.Format != "json" {
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("grid configuration invalid: %w", err)
	}
	if err := c.Physics.Validate(); err != nil {
		return fmt.Errorf("physics configuration invalid: %w", err)
	}
	if err := c.Slider.Validate(); err != nil {
		return fmt.Errorf("slider configuration invalid: %w", err)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume must be between 0.0 and 1.0")
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sample_rate must be a positive integer")
	}
	switch c.Display.Color {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("display.color must be auto, truecolor or 256, got %q", c.Display.Color)
	}
	if c.Display.FrameRate <= 0 || c.Display.FrameRate > 240 {
		return fmt.Errorf("display.frame_rate must be between 1 and 240")
	}
	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("keys configuration invalid: %w", err)
	}
	return nil
}

func (g *GridConfig) Validate() error {
	if g.MaxX <= g.MinX || g.MaxY <= g.MinY {
		return fmt.Errorf("bounds must satisfy min < max")
	}
	if g.ElectricStep <= 0 || g.MagneticStep <= 0 {
		return fmt.Errorf("steps must be positive")
	}
	return nil
}

func (p *PhysicsConfig) Validate() error {
	if p.Coulomb <= 0 || p.Permeability <= 0 {
		return fmt.Errorf("coulomb and permeability must be positive")
	}
	if p.RMin <= 0 {
		return fmt.Errorf("r_min must be positive")
	}
	if p.MinDistance < 0 {
		return fmt.Errorf("min_distance must not be negative")
	}
	if p.DisplayScale <= 0 {
		return fmt.Errorf("display_scale must be positive")
	}
	if p.ExtrusionHeight <= 0 {
		return fmt.Errorf("extrusion_height must be positive")
	}
	return nil
}

func (s *SliderConfig) Validate() error {
	if s.Max <= s.Min {
		return fmt.Errorf("min must be below max")
	}
	if s.Step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	if s.Value < s.Min || s.Value > s.Max {
		return fmt.Errorf("value %g outside [%g, %g]", s.Value, s.Min, s.Max)
	}
	if s.Unit == 0 {
		return fmt.Errorf("unit must be non-zero")
	}
	return nil
}

// FieldGrid converts the grid section for field.NewSampler
func (c *Config) FieldGrid() field.Grid {
	return field.Grid{
		MinX:         c.Grid.MinX,
		MaxX:         c.Grid.MaxX,
		MinY:         c.Grid.MinY,
		MaxY:         c.Grid.MaxY,
		ElectricStep: c.Grid.ElectricStep,
		MagneticStep: c.Grid.MagneticStep,
	}
}

// FieldParams overlays the physics section on the default palette
func (c *Config) FieldParams() field.Params {
	p := field.DefaultParams()
	p.Coulomb = c.Physics.Coulomb
	p.Permeability = c.Physics.Permeability
	p.RMin = c.Physics.RMin
	p.MinDistance = c.Physics.MinDistance
	p.DisplayScale = c.Physics.DisplayScale
	return p
}

func (c *Config) SliderConfig() input.SliderConfig {
	return input.SliderConfig{
		Min:   c.Slider.Min,
		Max:   c.Slider.Max,
		Step:  c.Slider.Step,
		Value: c.Slider.Value,
		Unit:  c.Slider.Unit,
	}
}

// AudioConfig keeps the default per-cue volumes
func (c *Config) AudioConfig() *audio.AudioConfig {
	a := audio.DefaultAudioConfig()
	a.Enabled = c.Audio.Enabled
	a.Muted = c.Audio.Muted
	a.MasterVolume = c.Audio.MasterVolume
	a.SampleRate = c.Audio.SampleRate
	return a
}

// KeyTable merges the configured bindings over the defaults
func (c *Config) KeyTable() (*input.KeyTable, error) {
	override, err := input.LoadKeyConfig(c.Keys.Runes, c.Keys.Special)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(input.DefaultKeyTable(), override), nil
}
