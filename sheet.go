package shade

// SheetSide selects which screen edge a sheet slides in from.
type SheetSide uint8

const (
	SheetRight SheetSide = iota
	SheetLeft
	SheetTop
	SheetBottom
)

// Sheet is a panel that slides in from a screen edge over a dimmed backdrop.
// Visibility is owned by the caller through the open flag; the sheet animates
// towards whatever the flag says and clears it on dismissal (outside click or
// Escape). Unlike anchored overlays, which dismiss on button release, a sheet
// dismisses on the press itself; Escape closes at any point of the slide.
//
//	shade.NewSheet("settings").Title("Settings").Show(ctx, &settingsOpen, func(ctx *shade.Context) {
//		ctx.Text("...")
//	})
type Sheet struct {
	id     ID
	side   SheetSide
	extent float32 // width for left/right, height for top/bottom
	title  string
}

// NewSheet creates a sheet keyed by seed, sliding from the right by default.
func NewSheet(seed string) *Sheet {
	return &Sheet{id: NewID(seed), side: SheetRight, extent: 300}
}

// NewDrawer creates a bottom sheet, the drawer preset.
func NewDrawer(seed string) *Sheet {
	return &Sheet{id: NewID(seed), side: SheetBottom, extent: 240}
}

// Side sets the edge the sheet slides in from.
func (s *Sheet) Side(side SheetSide) *Sheet {
	s.side = side
	return s
}

// Extent sets the sheet's size along its slide axis: width for left/right
// sheets, height for top/bottom ones.
func (s *Sheet) Extent(px float32) *Sheet {
	s.extent = px
	return s
}

// Title sets an optional heading drawn above the content.
func (s *Sheet) Title(title string) *Sheet {
	s.title = title
	return s
}

// rectAt returns the sheet rect translated by the animation offset: offset 0
// is fully on screen, offset 1 fully past the edge.
func (s *Sheet) rectAt(display Vec2, offset float32) Rect {
	switch s.side {
	case SheetLeft:
		return Rect{X: -s.extent * offset, Y: 0, W: s.extent, H: display.Y}
	case SheetTop:
		return Rect{X: 0, Y: -s.extent * offset, W: display.X, H: s.extent}
	case SheetBottom:
		return Rect{X: 0, Y: display.Y - s.extent*(1-offset), W: display.X, H: s.extent}
	default:
		return Rect{X: display.X - s.extent*(1-offset), Y: 0, W: s.extent, H: display.Y}
	}
}

// Show animates and paints the sheet. Returns true while any part of it is
// on screen, including the closing slide after open has gone false.
func (s *Sheet) Show(ctx *Context, open *bool, content func(*Context)) bool {
	animKey := s.id.Role("anim")
	anim := LoadSlideAnimation(ctx.Store(), animKey)

	// Retarget whenever the flag disagrees with where the animation is headed.
	if *open && (!anim.Opening || (!anim.Animating && anim.Offset >= 1)) {
		anim.StartOpen()
	} else if !*open && (anim.Opening || (anim.Animating && anim.Offset < 1)) {
		anim.StartClose()
	}

	anim.Update(ctx)

	if !anim.IsVisible() {
		StoreSlideAnimation(ctx.Store(), animKey, anim)
		return false
	}

	theme := ctx.Theme()
	rect := s.rectAt(ctx.DisplaySize, anim.Offset)

	// Backdrop opacity tracks the slide so the dimming fades with the panel.
	_, _, _, baseAlpha := UnpackRGBA(theme.BackdropColor)
	alpha := uint8((1 - anim.Offset) * float32(baseAlpha))
	ctx.Foreground.AddRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y, WithAlpha(theme.BackdropColor, alpha))

	ctx.Foreground.AddRect(rect.X, rect.Y, rect.W, rect.H, theme.PopoverColor)
	ctx.Foreground.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, theme.PopoverBorderColor, theme.BorderSize)

	saved := ctx.GetCursorPos()
	ctx.SetCursorPos(rect.X+theme.PanelPadding, rect.Y+theme.PanelPadding)
	ctx.inForeground(func() {
		if s.title != "" {
			ctx.Text(s.title)
			ctx.Separator(rect.W - theme.PanelPadding*2)
		}
		content(ctx)
	})
	ctx.SetCursorPos(saved.X, saved.Y)

	// Outside-click dismissal only once the sheet is mostly on screen; clicks
	// during the opening slide would otherwise instantly close it. Escape is
	// not gated: it closes whenever the sheet is open, mid-animation included.
	if *open {
		if anim.Offset < 0.3 && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) && !rect.Contains(ctx.Input.PointerPos()) {
			*open = false
		}
		if ctx.escapePressed() {
			*open = false
		}
	}

	StoreSlideAnimation(ctx.Store(), animKey, anim)
	ctx.WantCaptureMouse = true
	ctx.WantCaptureKeyboard = true
	return true
}
