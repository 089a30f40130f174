package interaction

import "time"

// Config holds the cosmetic tuning constants of the controller.
type Config struct {
	// WheelBase is the zoom factor per wheel step: factor = WheelBase^-delta.
	WheelBase float64
	// KeyZoomBase and KeyZoomStep give the PageUp/PageDown factor
	// KeyZoomBase^∓KeyZoomStep; Shift divides the step by FineDivisor.
	KeyZoomBase float64
	KeyZoomStep float64
	FineDivisor float64
	// AutoZoomRate is the per-second scale factor while auto-zooming in;
	// zooming out uses its reciprocal.
	AutoZoomRate float64
	// PanStep is the arrow-key pan distance in pixels.
	PanStep float64
	// DoubleClickInterval is used by ClickTracker.
	DoubleClickInterval time.Duration
}

func DefaultConfig() Config {
	return Config{
		WheelBase:           1.1,
		KeyZoomBase:         1.07,
		KeyZoomStep:         3,
		FineDivisor:         10,
		AutoZoomRate:        0.5,
		PanStep:             10,
		DoubleClickInterval: 700 * time.Millisecond,
	}
}
