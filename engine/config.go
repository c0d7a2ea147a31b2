package engine

import (
	"math"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/lixenwraith/tread/render"
	"github.com/lixenwraith/tread/terminal"
)

// CameraConfig mirrors render.Camera in the config file
type CameraConfig struct {
	Distance   float64 `toml:"distance"`
	FovDegrees float64 `toml:"fov_degrees"`
	Near       float64 `toml:"near"`
	Far        float64 `toml:"far"`
	CellAspect float64 `toml:"cell_aspect"`
}

// Config holds session settings loaded from TOML, zero TargetFPS disables pacing
type Config struct {
	TargetFPS  int          `toml:"target_fps"`
	Enable3D   bool         `toml:"enable_3d"`
	Backend    string       `toml:"backend"`
	QuitKeys   []string     `toml:"quit_keys"`
	ClearColor string       `toml:"clear_color"`
	Camera     CameraConfig `toml:"camera"`
}

// DefaultConfig returns the settings used when no file is present
func DefaultConfig() Config {
	cam := render.DefaultCamera()
	return Config{
		TargetFPS:  60,
		Enable3D:   false,
		Backend:    string(terminal.KindNative),
		QuitKeys:   []string{"escape", "q"},
		ClearColor: "black",
		Camera: CameraConfig{
			Distance:   cam.Distance,
			FovDegrees: cam.FovDegrees,
			Near:       cam.Near,
			Far:        cam.Far,
			CellAspect: cam.CellAspect,
		},
	}
}

// LoadConfig decodes path over the defaults. A missing file or empty path yields the
// defaults, unknown keys are an error
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks every field that can be wrong independently of the terminal
func (c Config) Validate() error {
	if c.TargetFPS < 0 {
		return errors.Errorf("target_fps %d is negative", c.TargetFPS)
	}
	if _, err := terminal.ParseKind(c.Backend); err != nil {
		return errors.Wrap(err, "backend")
	}
	if _, err := c.quitKeys(); err != nil {
		return err
	}
	if _, err := c.clearColor(); err != nil {
		return err
	}
	cam := c.Camera
	for _, f := range []struct {
		key string
		v   float64
	}{
		{"distance", cam.Distance},
		{"fov_degrees", cam.FovDegrees},
		{"near", cam.Near},
		{"far", cam.Far},
		{"cell_aspect", cam.CellAspect},
	} {
		// NaN slips past every comparison below
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return errors.Errorf("camera %s %g must be finite", f.key, f.v)
		}
	}
	switch {
	case cam.Distance <= 0:
		return errors.Errorf("camera distance %g must be positive", cam.Distance)
	case cam.FovDegrees <= 0 || cam.FovDegrees >= 180:
		return errors.Errorf("camera fov_degrees %g outside (0,180)", cam.FovDegrees)
	case cam.Near <= 0 || cam.Near >= cam.Far:
		return errors.Errorf("camera near %g must be positive and below far %g", cam.Near, cam.Far)
	case cam.CellAspect <= 0:
		return errors.Errorf("camera cell_aspect %g must be positive", cam.CellAspect)
	}
	return nil
}

func (c Config) quitKeys() ([]terminal.Key, error) {
	keys := make([]terminal.Key, 0, len(c.QuitKeys))
	for _, name := range c.QuitKeys {
		k, err := terminal.ParseKey(name)
		if err != nil {
			return nil, errors.Wrap(err, "quit_keys")
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (c Config) clearColor() (terminal.Color, error) {
	if c.ClearColor == "" {
		return terminal.Black, nil
	}
	col, err := terminal.ParseColor(c.ClearColor)
	if err != nil {
		return terminal.Color{}, errors.Wrap(err, "clear_color")
	}
	return col, nil
}

func (c Config) camera() render.Camera {
	return render.Camera{
		Distance:   c.Camera.Distance,
		FovDegrees: c.Camera.FovDegrees,
		Near:       c.Camera.Near,
		Far:        c.Camera.Far,
		CellAspect: c.Camera.CellAspect,
	}
}
