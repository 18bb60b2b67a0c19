package shade

// Spacing constants for consistent layout.
const (
	SpaceXS float32 = 2
	SpaceSM float32 = 4
	SpaceMD float32 = 8
	SpaceLG float32 = 12
	SpaceXL float32 = 16
)

// Theme defines the visual appearance of overlay surfaces and triggers.
// Per-widget pixel styling is deliberately coarse; the theme exists so every
// overlay paints consistently, not to reproduce any particular design system.
type Theme struct {
	// Text
	TextColor      uint32
	MutedTextColor uint32

	// Trigger buttons
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	// Floating panels (popover, menu, dialog, sheet)
	PopoverColor       uint32
	PopoverBorderColor uint32

	// Item rows inside menus and palettes
	SelectedBgColor   uint32
	SelectedTextColor uint32
	HoveredBgColor    uint32

	// Modal backdrop at full opacity; sheets and dialogs scale its alpha
	// with their animation offset.
	BackdropColor uint32

	// Inputs (command palette query line)
	InputBgColor     uint32
	InputBorderColor uint32

	// Decorations
	ArrowColor     uint32
	SeparatorColor uint32

	// Toast notification colors
	ToastInfoColor    uint32
	ToastSuccessColor uint32
	ToastWarningColor uint32
	ToastErrorColor   uint32

	// Sizing
	FontScale     float32
	CharWidth     float32
	CharHeight    float32
	ItemSpacing   float32
	PanelPadding  float32
	ButtonPadding float32
	BorderSize    float32
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		TextColor:      ColorWhite,
		MutedTextColor: ColorGray,

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),

		PopoverColor:       RGBA(25, 25, 28, 250),
		PopoverBorderColor: RGBA(90, 90, 95, 255),

		SelectedBgColor:   RGBA(50, 100, 150, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(60, 60, 60, 255),

		BackdropColor: RGBA(0, 0, 0, 128),

		InputBgColor:     RGBA(30, 30, 30, 255),
		InputBorderColor: RGBA(100, 100, 100, 255),

		ArrowColor:     RGBA(180, 180, 180, 255),
		SeparatorColor: RGBA(80, 80, 80, 255),

		ToastInfoColor:    RGBA(50, 100, 150, 230),
		ToastSuccessColor: RGBA(50, 130, 80, 230),
		ToastWarningColor: RGBA(180, 130, 40, 230),
		ToastErrorColor:   RGBA(180, 60, 60, 230),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		BorderSize:    1,
	}
}

// LightTheme returns a light theme.
func LightTheme() Theme {
	return Theme{
		TextColor:      RGBA(20, 20, 20, 255),
		MutedTextColor: RGBA(150, 150, 150, 255),

		ButtonColor:        RGBA(220, 220, 220, 255),
		ButtonHoveredColor: RGBA(200, 200, 200, 255),
		ButtonActiveColor:  RGBA(180, 180, 180, 255),

		PopoverColor:       RGBA(255, 255, 255, 255),
		PopoverBorderColor: RGBA(200, 200, 200, 255),

		SelectedBgColor:   RGBA(0, 120, 215, 255),
		SelectedTextColor: ColorWhite,
		HoveredBgColor:    RGBA(230, 230, 230, 255),

		BackdropColor: RGBA(0, 0, 0, 100),

		InputBgColor:     ColorWhite,
		InputBorderColor: RGBA(150, 150, 150, 255),

		ArrowColor:     RGBA(80, 80, 80, 255),
		SeparatorColor: RGBA(200, 200, 200, 255),

		ToastInfoColor:    RGBA(0, 100, 180, 230),
		ToastSuccessColor: RGBA(30, 140, 70, 230),
		ToastWarningColor: RGBA(200, 140, 20, 230),
		ToastErrorColor:   RGBA(200, 50, 50, 230),

		FontScale:     1.0,
		CharWidth:     8,
		CharHeight:    8,
		ItemSpacing:   4,
		PanelPadding:  8,
		ButtonPadding: 6,
		BorderSize:    1,
	}
}
