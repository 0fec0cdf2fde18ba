package paraxial

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LensCfg describes one lens in a system description file.
// `required` on the focal length doubles as the non-zero check: a zero
// focal length is indistinguishable from "missing" and equally invalid.
type LensCfg struct {
	FocalLength        Real `json:"focalLength" yaml:"focalLength" validate:"required"`
	Position           Real `json:"position" yaml:"position"`
	ApertureHalfHeight Real `json:"apertureHalfHeight,omitempty" yaml:"apertureHalfHeight,omitempty" validate:"gte=0"`
}

// SourceCfg is the file form of the Source variant: kind selects the
// case, and only that case's fields are read.
type SourceCfg struct {
	Kind     string `json:"kind" yaml:"kind" validate:"required,oneof=point distant"`
	Z        Real   `json:"z,omitempty" yaml:"z,omitempty"`
	Y        Real   `json:"y,omitempty" yaml:"y,omitempty"`
	AngleDeg Real   `json:"angleDeg,omitempty" yaml:"angleDeg,omitempty"`
}

// Config is a declarative description of a whole optical bench: the
// lenses, what illuminates them, and how many rays to draw.
type Config struct {
	Lenses []LensCfg  `json:"lenses" yaml:"lenses" validate:"required,min=1,dive"`
	Source *SourceCfg `json:"source,omitempty" yaml:"source,omitempty"`
	Rays   int        `json:"rays,omitempty" yaml:"rays,omitempty" validate:"gte=0"`
}

var cfgValidate = validator.New()

// LoadConfig reads a JSON or YAML system description (decided by file
// extension; everything that is not .yaml/.yml parses as JSON), applies
// defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrapf(err, "parse %s", path)
		}
	}
	// Defaults / validation
	if cfg.Rays <= 0 {
		cfg.Rays = DefaultRayCount
	}
	for i := range cfg.Lenses {
		if cfg.Lenses[i].ApertureHalfHeight <= 0 {
			cfg.Lenses[i].ApertureHalfHeight = DefaultApertureHalfHeight
		}
	}
	if err := cfgValidate.Struct(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &cfg, nil
}

// BuildSystem constructs the optical system the description names.
func (c *Config) BuildSystem() (*OpticalSystem, error) {
	sys := NewSystem()
	for i, lc := range c.Lenses {
		if _, err := sys.AddLens(lc.FocalLength, lc.Position, lc.ApertureHalfHeight); err != nil {
			return nil, errors.Wrapf(err, "lens #%d", i)
		}
	}
	return sys, nil
}

// BuildSource converts the file form into the Source variant, or nil
// when the description has no source section.
func (c *Config) BuildSource() (Source, error) {
	if c.Source == nil {
		return nil, nil
	}
	switch c.Source.Kind {
	case "point":
		return PointSource{Z: c.Source.Z, Y: c.Source.Y}, nil
	case "distant":
		return DistantSource{AngleDeg: c.Source.AngleDeg}, nil
	default:
		return nil, errors.Errorf("unknown source kind %q", c.Source.Kind)
	}
}
