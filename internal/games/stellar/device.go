package stellar

// Device classes. The terminal class is the character-cell frontend.
const (
	DeviceDesktop  = "desktop"
	DeviceTablet   = "tablet"
	DeviceMobile   = "mobile"
	DeviceTerminal = "terminal"
)

// Profile holds the per-device layout and effect budget.
type Profile struct {
	Device         string
	HUDTop         float64 // px reserved for the HUD at the top
	ControlsBottom float64 // px reserved for on-screen controls at the bottom
	Stars          int
	LargeBurst     int // particles per large explosion
	SmallBurst     int // particles per small explosion
}

// ProfileFor returns the profile for a device class. Unknown classes get
// the desktop profile. Bottom controls are only reserved on touch devices.
func ProfileFor(device string, touch bool) Profile {
	var p Profile
	switch device {
	case DeviceMobile:
		p = Profile{Device: device, HUDTop: 60, ControlsBottom: 220, Stars: 50, LargeBurst: 10, SmallBurst: 3}
	case DeviceTablet:
		p = Profile{Device: device, HUDTop: 90, ControlsBottom: 320, Stars: 100, LargeBurst: 15, SmallBurst: 5}
	case DeviceTerminal:
		// Two HUD rows of 20px cells; one glyph per star, so keep it sparse.
		p = Profile{Device: device, HUDTop: 40, Stars: 40, LargeBurst: 10, SmallBurst: 3}
	default:
		p = Profile{Device: DeviceDesktop, HUDTop: 100, Stars: 200, LargeBurst: 25, SmallBurst: 10}
	}
	if !touch {
		p.ControlsBottom = 0
	}
	return p
}

// Bounds is the safe play area inside the canvas.
type Bounds struct {
	Top    float64
	Bottom float64
	Width  float64
	Height float64 // full canvas height, used for off-screen culling
}

// BoundsFor derives the play area from a canvas size and device profile.
func BoundsFor(width, height float64, p Profile) Bounds {
	bottom := height - p.ControlsBottom
	if bottom < p.HUDTop {
		bottom = p.HUDTop
	}
	return Bounds{
		Top:    p.HUDTop,
		Bottom: bottom,
		Width:  width,
		Height: height,
	}
}
