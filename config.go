package shade

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Tuning holds the timing and motion parameters shared by every overlay.
// Hosts typically ship DefaultTuning; a TOML file lets designers adjust
// delays and spring feel without recompiling.
type Tuning struct {
	Hover struct {
		OpenDelayMS  int `toml:"open_delay_ms"`
		CloseDelayMS int `toml:"close_delay_ms"`
	} `toml:"hover"`

	Overlay struct {
		// Gap between the trigger's bottom edge and the floating content.
		Gap float32 `toml:"gap"`
	} `toml:"overlay"`

	Spring struct {
		// Proportional step per frame while far from the target.
		Factor float32 `toml:"factor"`
		// Minimum step so the animation never fully stalls near the target.
		MinStep float32 `toml:"min_step"`
		// Distance below which the animation snaps to the target.
		SnapEpsilon float32 `toml:"snap_epsilon"`
	} `toml:"spring"`

	Toast struct {
		DurationMS int `toml:"duration_ms"`
	} `toml:"toast"`
}

// DefaultTuning returns the stock parameters: 200ms hover open delay,
// 100ms close delay, 4px anchor gap and the standard spring curve.
func DefaultTuning() Tuning {
	var t Tuning
	t.Hover.OpenDelayMS = 200
	t.Hover.CloseDelayMS = 100
	t.Overlay.Gap = 4
	t.Spring.Factor = 0.15
	t.Spring.MinStep = 0.008
	t.Spring.SnapEpsilon = 0.001
	t.Toast.DurationMS = 3000
	return t
}

// HoverOpenDelay returns the hover-intent open delay as a duration.
func (t Tuning) HoverOpenDelay() time.Duration {
	return time.Duration(t.Hover.OpenDelayMS) * time.Millisecond
}

// HoverCloseDelay returns the hover-intent close delay as a duration.
func (t Tuning) HoverCloseDelay() time.Duration {
	return time.Duration(t.Hover.CloseDelayMS) * time.Millisecond
}

// ToastDuration returns the default toast lifetime as a duration.
func (t Tuning) ToastDuration() time.Duration {
	return time.Duration(t.Toast.DurationMS) * time.Millisecond
}

// Validate checks the tuning for values that would break the engine.
func (t Tuning) Validate() error {
	if t.Hover.OpenDelayMS < 0 || t.Hover.CloseDelayMS < 0 {
		return fmt.Errorf("tuning: hover delays must be non-negative (open %dms, close %dms)",
			t.Hover.OpenDelayMS, t.Hover.CloseDelayMS)
	}
	if t.Spring.Factor <= 0 || t.Spring.Factor >= 1 {
		return fmt.Errorf("tuning: spring factor must be in (0, 1), got %g", t.Spring.Factor)
	}
	if t.Spring.MinStep <= 0 {
		return fmt.Errorf("tuning: spring min_step must be positive, got %g", t.Spring.MinStep)
	}
	if t.Spring.SnapEpsilon <= 0 {
		return fmt.Errorf("tuning: spring snap_epsilon must be positive, got %g", t.Spring.SnapEpsilon)
	}
	if t.Toast.DurationMS <= 0 {
		return fmt.Errorf("tuning: toast duration must be positive, got %dms", t.Toast.DurationMS)
	}
	return nil
}

// LoadTuning reads a TOML tuning file. Fields absent from the file keep
// their defaults.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning file: %w", err)
	}
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// ParseTuning decodes TOML tuning data from memory, applying the same
// defaulting and validation as LoadTuning.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	if err := toml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}
