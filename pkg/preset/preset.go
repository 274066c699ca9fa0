// Package preset loads named animation configurations from YAML, so the
// curve, duration and delay of higher-level transitions can be tuned
// without recompiling.
//
// A preset file maps names to animation parameters:
//
//	window-open:
//	  curve: smooth-end
//	  duration: 300ms
//	window-close:
//	  curve: smooth-start
//	  duration: 250ms
//	hud-fade:
//	  curve: smooth
//	  duration: 200ms
//	  unscaled: true
//
// Curve identifiers are validated when the file is parsed, never when an
// animation starts: a typo fails at load time with a structured error.
package preset

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/tween"
)

// Duration wraps time.Duration with YAML unmarshalling from strings like
// "300ms" or "1.5s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration back to its string form.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Preset describes one named animation configuration.
type Preset struct {
	// Curve is a curve identifier accepted by [tween.CurveByName].
	// Empty means linear.
	Curve string `yaml:"curve,omitempty"`
	// Duration is how long the animation runs.
	Duration Duration `yaml:"duration"`
	// Delay is consumed before the animation begins.
	Delay Duration `yaml:"delay,omitempty"`
	// Unscaled selects the unscaled scheduler clock, for animations that
	// must keep running while game time is slowed or frozen.
	Unscaled bool `yaml:"unscaled,omitempty"`

	curve tween.Curve
}

// CurveFunc returns the resolved easing curve.
func (p Preset) CurveFunc() tween.Curve {
	if p.curve == nil {
		return tween.Linear
	}
	return p.curve
}

// Apply configures an unstarted tween with the preset's curve, delay and
// time source. Returns the tween for chaining.
func (p Preset) Apply(t *tween.Tween) *tween.Tween {
	return t.SetCurve(p.CurveFunc()).
		SetDelay(time.Duration(p.Delay)).
		UseUnscaledTime(p.Unscaled)
}

// New builds a preset programmatically, resolving the curve identifier the
// same way Parse does. Consumers use it for code defaults that a preset
// file may override.
func New(curveName string, duration time.Duration) (Preset, error) {
	p := Preset{Curve: curveName, Duration: Duration(duration)}
	if curveName != "" {
		curve, err := tween.CurveByName(curveName)
		if err != nil {
			return Preset{}, errors.New("preset.New", errors.KindConfig, err)
		}
		p.curve = curve
	}
	return p, nil
}

// MustNew is like New but panics on an unknown curve identifier. For
// package-level defaults over known-good names.
func MustNew(curveName string, duration time.Duration) Preset {
	p, err := New(curveName, duration)
	if err != nil {
		panic(err)
	}
	return p
}

// Library holds named presets.
type Library struct {
	presets map[string]Preset
}

// Parse reads presets from YAML and resolves every curve identifier,
// failing on the first unknown one.
func Parse(data []byte) (*Library, error) {
	raw := make(map[string]Preset)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.New("preset.Parse", errors.KindConfig, err)
	}

	for name, p := range raw {
		if p.Curve == "" {
			continue
		}
		curve, err := tween.CurveByName(p.Curve)
		if err != nil {
			return nil, errors.Newf("preset.Parse", errors.KindConfig,
				"preset %q: %w", name, err)
		}
		p.curve = curve
		raw[name] = p
	}

	return &Library{presets: raw}, nil
}

// LoadOptional reads a preset file if present. A missing file yields an
// empty library, not an error, so programs ship with code defaults and the
// file only overrides them.
func LoadOptional(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Library{presets: make(map[string]Preset)}, nil
		}
		return nil, errors.New("preset.LoadOptional", errors.KindConfig, err)
	}
	return Parse(data)
}

// Get returns the named preset.
func (l *Library) Get(name string) (Preset, bool) {
	p, ok := l.presets[name]
	return p, ok
}

// GetOr returns the named preset, or fallback when it is absent. The
// pattern lets consumers define code defaults that a preset file can
// override.
func (l *Library) GetOr(name string, fallback Preset) Preset {
	if l == nil {
		return fallback
	}
	if p, ok := l.presets[name]; ok {
		return p
	}
	return fallback
}

// Len returns the number of presets in the library.
func (l *Library) Len() int { return len(l.presets) }

// Define adds or replaces a preset programmatically. The curve identifier
// is resolved immediately, like Parse.
func (l *Library) Define(name string, p Preset) error {
	if p.Curve != "" {
		curve, err := tween.CurveByName(p.Curve)
		if err != nil {
			return errors.Newf("preset.Define", errors.KindConfig,
				"preset %q: %w", name, err)
		}
		p.curve = curve
	}
	if l.presets == nil {
		l.presets = make(map[string]Preset)
	}
	l.presets[name] = p
	return nil
}
