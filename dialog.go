package shade

// Dialog is a centered modal panel over a dimmed backdrop. The caller owns
// visibility through the open flag; clicking outside the panel or pressing
// Escape clears it. It fades in and out with the spring animator.
type Dialog struct {
	id    ID
	width float32
	title string
	modal bool // ignore outside clicks (alert dialog)
}

// NewDialog creates a dialog keyed by seed.
func NewDialog(seed string) *Dialog {
	return &Dialog{id: NewID(seed), width: 320}
}

// NewAlertDialog creates a dialog that cannot be dismissed by clicking
// outside it; the content must offer an explicit action that clears the
// open flag. Escape still closes it.
func NewAlertDialog(seed string) *Dialog {
	return &Dialog{id: NewID(seed), width: 320, modal: true}
}

// Width sets the panel width (default 320).
func (d *Dialog) Width(w float32) *Dialog {
	d.width = w
	return d
}

// Title sets an optional heading drawn above the content.
func (d *Dialog) Title(title string) *Dialog {
	d.title = title
	return d
}

// Show animates and paints the dialog centered on screen. Returns true while
// it is visible, including the closing fade.
func (d *Dialog) Show(ctx *Context, open *bool, content func(*Context)) bool {
	animKey := d.id.Role("anim")
	anim := LoadSlideAnimation(ctx.Store(), animKey)

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
	fade := 1 - anim.Offset

	// Panel height is last frame's measured content height.
	height := Get(ctx.Store(), d.id.Role("size"), ctx.lineHeight()*3+theme.PanelPadding*2)
	rect := Rect{
		X: (ctx.DisplaySize.X - d.width) / 2,
		Y: (ctx.DisplaySize.Y - height) / 2,
		W: d.width,
		H: height,
	}

	_, _, _, baseAlpha := UnpackRGBA(theme.BackdropColor)
	ctx.Foreground.AddRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y,
		WithAlpha(theme.BackdropColor, uint8(fade*float32(baseAlpha))))

	_, _, _, panelAlpha := UnpackRGBA(theme.PopoverColor)
	ctx.Foreground.AddRect(rect.X, rect.Y, rect.W, rect.H, WithAlpha(theme.PopoverColor, uint8(fade*float32(panelAlpha))))
	ctx.Foreground.AddRectOutline(rect.X, rect.Y, rect.W, rect.H,
		WithAlpha(theme.PopoverBorderColor, uint8(fade*255)), theme.BorderSize)

	saved := ctx.GetCursorPos()
	ctx.SetCursorPos(rect.X+theme.PanelPadding, rect.Y+theme.PanelPadding)
	ctx.inForeground(func() {
		if d.title != "" {
			ctx.Text(d.title)
			ctx.Separator(rect.W - theme.PanelPadding*2)
		}
		content(ctx)
	})
	measured := ctx.GetCursorPos().Y - rect.Y + theme.PanelPadding - theme.ItemSpacing
	if measured < ctx.lineHeight() {
		measured = ctx.lineHeight()
	}
	Set(ctx.Store(), d.id.Role("size"), measured)
	ctx.SetCursorPos(saved.X, saved.Y)

	// Outside clicks only count once the fade has mostly completed; Escape
	// closes whenever the dialog is open, mid-animation included.
	if *open {
		if anim.Offset < 0.3 && !d.modal && ctx.outsideRelease(rect) {
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
