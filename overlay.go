package shade

// Trigger describes the anchor element an overlay hangs off: its screen
// bounds this frame and its click/hover signals. Widgets like Context.Button
// produce one; tests and custom triggers can construct one directly.
type Trigger struct {
	ID      ID
	Rect    Rect
	Clicked bool // primary button pressed on the trigger this frame
	Hovered bool
}

// overlayFrame is the resolved open/close decision for one overlay instance
// in one frame.
type overlayFrame struct {
	open       bool // state after applying this frame's signals
	wasOpen    bool // state at frame start
	justOpened bool // flipped closed->open this frame
}

// resolveOverlay applies one frame of trigger/outside-click/escape signals to
// an overlay's open flag. Exactly one signal can flip the flag per frame; if
// none apply the flag is unchanged.
//
// The outside-click check is guarded on "already open at frame start" so the
// click that opens the overlay is never simultaneously read as an outside
// click that closes it again - without the guard every overlay would flicker
// open-then-instantly-closed.
func (ctx *Context) resolveOverlay(id ID, trigger Trigger) overlayFrame {
	openKey := id.Role("open")
	wasOpen := Get(ctx.Store(), openKey, false)
	open := wasOpen

	if trigger.Clicked {
		// Toggle, not set, so clicking an open trigger closes it.
		open = !open
	}
	justOpened := open && !wasOpen

	if wasOpen && !justOpened {
		// The content area is the previous frame's painted rect; before the
		// first paint it defaults to the trigger rect, a degenerate union
		// that cannot swallow unrelated clicks.
		area := Get(ctx.Store(), id.Role("area"), trigger.Rect)
		if ctx.outsideRelease(trigger.Rect, area) {
			open = false
			logger.Debug("overlay dismissed by outside click", "id", id)
		}
	}

	if open && ctx.escapePressed() {
		open = false
		logger.Debug("overlay dismissed by escape", "id", id)
	}

	return overlayFrame{open: open, wasOpen: wasOpen, justOpened: justOpened}
}

// setOverlayOpen writes the open flag back for the next frame.
func (ctx *Context) setOverlayOpen(id ID, open bool) {
	Set(ctx.Store(), id.Role("open"), open)
}

// anchorPos computes where floating content hangs below a trigger: the
// trigger's bottom-left corner plus the configured gap. There is no
// viewport-boundary collision handling; content near a screen edge can
// extend past it.
func (ctx *Context) anchorPos(trigger Rect) Vec2 {
	return trigger.BottomLeft().Add(Vec2{Y: ctx.Tuning().Overlay.Gap})
}

// paintAnchored paints a floating panel at pos into the foreground layer and
// runs content inside it, returning the panel rect. The panel height is the
// previous frame's measured content height (remembered under the instance's
// "area" role), the standard immediate-mode one-frame-stale sizing: the
// background must paint before the content whose extent is only known after.
func (ctx *Context) paintAnchored(id ID, pos Vec2, width float32, content func(*Context)) Rect {
	theme := ctx.Theme()
	pad := theme.PanelPadding

	prev := Get(ctx.Store(), id.Role("area"), Rect{X: pos.X, Y: pos.Y, W: width, H: ctx.lineHeight() + pad*2})
	panel := Rect{X: pos.X, Y: pos.Y, W: width, H: prev.H}

	ctx.Foreground.AddRect(panel.X, panel.Y, panel.W, panel.H, theme.PopoverColor)
	ctx.Foreground.AddRectOutline(panel.X, panel.Y, panel.W, panel.H, theme.PopoverBorderColor, theme.BorderSize)

	saved := ctx.GetCursorPos()
	ctx.SetCursorPos(pos.X+pad, pos.Y+pad)
	ctx.inForeground(func() {
		content(ctx)
	})
	contentEnd := ctx.GetCursorPos()
	ctx.SetCursorPos(saved.X, saved.Y)

	measured := Rect{X: pos.X, Y: pos.Y, W: width, H: contentEnd.Y - pos.Y + pad - theme.ItemSpacing}
	if measured.H < ctx.lineHeight() {
		measured.H = ctx.lineHeight()
	}
	Set(ctx.Store(), id.Role("area"), measured)

	if ctx.isHovered(panel) {
		ctx.WantCaptureMouse = true
	}

	return measured
}

// Popover is a click-to-toggle floating panel anchored below a trigger.
// It stays open until the trigger is clicked again, a click lands outside
// both trigger and panel, Escape is pressed, or content calls Close.
//
//	trigger := ctx.Button("Open")
//	NewPopover("settings").Width(260).Show(ctx, trigger, func(ctx *shade.Context) {
//		ctx.Text("Popover content")
//	})
type Popover struct {
	id    ID
	width float32
}

// NewPopover creates a popover keyed by seed.
func NewPopover(seed string) *Popover {
	return &Popover{id: NewID(seed), width: 200}
}

// Width sets the panel width (default 200).
func (p *Popover) Width(w float32) *Popover {
	p.width = w
	return p
}

// Show applies this frame's open/close signals and, while open, paints the
// panel below the trigger. Returns true while the popover is open.
func (p *Popover) Show(ctx *Context, trigger Trigger, content func(*Context)) bool {
	f := ctx.resolveOverlay(p.id, trigger)

	if !f.open {
		ctx.setOverlayOpen(p.id, false)
		return false
	}

	pos := ctx.anchorPos(trigger.Rect)
	ctx.paintAnchored(p.id, pos, p.width, content)

	// Content may have requested closing via Close.
	ctx.setOverlayOpen(p.id, f.open && !Get(ctx.Store(), p.id.Role("close_req"), false))
	Remove(ctx.Store(), p.id.Role("close_req"))
	ctx.WantCaptureKeyboard = true
	return true
}

// Close requests the popover close at the end of this frame. Call from
// within the content callback, e.g. on a "Done" button.
func (p *Popover) Close(ctx *Context) {
	Set(ctx.Store(), p.id.Role("close_req"), true)
}

// IsOpen reports the popover's stored open flag without painting anything.
func (p *Popover) IsOpen(ctx *Context) bool {
	return Get(ctx.Store(), p.id.Role("open"), false)
}
