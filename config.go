package starfield

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gekko3d/starfield/fx/field"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown scene format")

// SceneFormat names a scene file encoding.
type SceneFormat string

const (
	FormatTOML SceneFormat = "toml"
	FormatYAML SceneFormat = "yaml"
	FormatJSON SceneFormat = "json"
)

// FormatOf picks the encoding from a file extension.
func FormatOf(path string) (SceneFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
}

// LoadSceneFile reads, decodes and validates a scene file. A leading "~"
// expands to the user's home directory.
func LoadSceneFile(path string) (SceneDef, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return SceneDef{}, fmt.Errorf("scene path: %w", err)
	}
	format, err := FormatOf(path)
	if err != nil {
		return SceneDef{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneDef{}, fmt.Errorf("read scene: %w", err)
	}
	def, err := DecodeScene(data, format)
	if err != nil {
		return SceneDef{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// DecodeScene decodes data over DefaultScene and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func DecodeScene(data []byte, format SceneFormat) (SceneDef, error) {
	def := DefaultScene()

	var err error
	switch format {
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&def)
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&def)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&def)
	default:
		return SceneDef{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return SceneDef{}, fmt.Errorf("decode %s scene: %w", format, err)
	}

	if err := def.Validate(); err != nil {
		return SceneDef{}, err
	}
	return def, nil
}

// Validate checks everything the modules would otherwise panic on.
func (def SceneDef) Validate() error {
	var errs []error
	if def.Window.Width <= 0 || def.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", def.Window.Width, def.Window.Height))
	}
	if def.Camera.Fov <= 0 || def.Camera.Fov >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v must be in (0, 180)", def.Camera.Fov))
	}
	if def.Camera.Near <= 0 || def.Camera.Far <= def.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip range [%v, %v] is empty", def.Camera.Near, def.Camera.Far))
	}
	if def.Effects.Galaxy {
		if err := def.Galaxy.Validate(field.KindGalaxy); err != nil {
			errs = append(errs, err)
		}
	}
	if def.Effects.Trail {
		if err := def.Trail.Validate(field.KindTrail); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithSeed sets the same seed on both effects. Zero leaves them unchanged.
func (def SceneDef) WithSeed(seed int64) SceneDef {
	if seed != 0 {
		def.Galaxy.Seed = seed
		def.Trail.Seed = seed
	}
	return def
}
