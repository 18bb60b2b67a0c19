package shade

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI frame context.
// Exactly one frame executes at a time; nothing here is safe for
// concurrent use, and the engine confines the context to the UI thread.
type Context struct {
	// Drawing output
	DrawList   *DrawList
	Foreground *DrawList // Floating content (popups, menus, sheets) painted on top

	// Input (read-only during frame)
	Input *InputState

	// Widget state (persisted between frames)
	store *Store

	// Styling and motion parameters
	theme  Theme
	tuning Tuning

	// Screen
	DisplaySize Vec2

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Layout cursor
	cursor Vec2

	// Font texture ID (set by the renderer each frame)
	FontTextureID uint32

	// Input capture flags (output from the engine to the application)
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	// wantRedraw is set when an in-flight animation or pending hover timer
	// needs another frame immediately instead of waiting for input.
	wantRedraw bool

	// foreground drawing depth; while > 0 draw() routes to Foreground
	foregroundDepth int
}

// newContext creates a frame context bound to a store.
func newContext(store *Store) *Context {
	return &Context{store: store}
}

// reset prepares the context for a new frame.
func (ctx *Context) reset(displaySize Vec2, deltaTime float32) {
	ctx.FrameCount++
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.cursor = Vec2{}
	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.wantRedraw = false
	ctx.foregroundDepth = 0
}

// Store returns the ephemeral state store for this frame.
func (ctx *Context) Store() *Store {
	return ctx.store
}

// Theme returns the active theme.
func (ctx *Context) Theme() Theme {
	return ctx.theme
}

// Tuning returns the active timing and motion parameters.
func (ctx *Context) Tuning() Tuning {
	return ctx.tuning
}

// Now returns the frame-stable monotonic clock reading in seconds.
// Every timing decision within one frame sees the same instant.
func (ctx *Context) Now() float64 {
	if ctx.Input == nil {
		return 0
	}
	return ctx.Input.Time
}

// RequestRedraw asks the host to schedule another frame immediately rather
// than waiting for the next input event. This is the mechanism that turns the
// normally event-driven redraw loop into a time-driven one for the duration
// of an animation or a pending hover timer.
func (ctx *Context) RequestRedraw() {
	ctx.wantRedraw = true
}

// WantsRedraw reports whether anything this frame requested an immediate
// follow-up frame. Hosts should check this after Engine.End and redraw
// without blocking on input when it is true.
func (ctx *Context) WantsRedraw() bool {
	return ctx.wantRedraw
}

// SetCursorPos sets the layout cursor for the next widget.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the current layout cursor.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// advanceCursor moves the cursor down past a widget of the given size.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.theme.ItemSpacing
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.theme.CharHeight * ctx.theme.FontScale
}

// MeasureText returns the rendered size of a string in the cell font.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := 0
	for range text {
		n++
	}
	return Vec2{
		X: float32(n) * ctx.theme.CharWidth * ctx.theme.FontScale,
		Y: ctx.lineHeight(),
	}
}

// draw returns the draw list widgets should paint into: the foreground list
// inside floating content, the base list everywhere else.
func (ctx *Context) draw() *DrawList {
	if ctx.foregroundDepth > 0 && ctx.Foreground != nil {
		return ctx.Foreground
	}
	return ctx.DrawList
}

// inForeground runs fn with drawing routed to the top-most layer, so floating
// content paints over everything drawn earlier this frame.
func (ctx *Context) inForeground(fn func()) {
	ctx.foregroundDepth++
	fn()
	ctx.foregroundDepth--
}

// addText paints text into the current draw target.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	dl := ctx.draw()
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.theme.FontScale, ctx.theme.CharWidth, ctx.theme.CharHeight)
	dl.SetTexture(0)
}

// isHovered returns true if the rectangle is under the pointer.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.Input.PointerPos())
}

// isClicked returns true if the primary button was pressed inside rect
// this frame.
func (ctx *Context) isClicked(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(rect) && ctx.Input.MouseClicked(MouseButtonLeft)
}

// outsideRelease reports whether the primary button was released this frame
// with the pointer outside the union of the given rectangles. This is the
// "outside click" that dismisses open overlays.
func (ctx *Context) outsideRelease(rects ...Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseReleased(MouseButtonLeft) {
		return false
	}
	p := ctx.Input.PointerPos()
	if len(rects) == 0 {
		return true
	}
	u := rects[0]
	for _, r := range rects[1:] {
		u = u.Union(r)
	}
	return !u.Contains(p)
}

// escapePressed reports whether Escape was pressed this frame.
func (ctx *Context) escapePressed() bool {
	return ctx.Input != nil && ctx.Input.KeyPressed(KeyEscape)
}

// Text draws a line of text at the cursor and advances it.
func (ctx *Context) Text(text string) {
	pos := ctx.cursor
	ctx.addText(pos.X, pos.Y, text, ctx.theme.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextMuted draws a line of de-emphasized text at the cursor.
func (ctx *Context) TextMuted(text string) {
	pos := ctx.cursor
	ctx.addText(pos.X, pos.Y, text, ctx.theme.MutedTextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// Separator draws a horizontal rule across the given width.
func (ctx *Context) Separator(width float32) {
	pos := ctx.cursor
	ctx.draw().AddRect(pos.X, pos.Y+2, width, 1, ctx.theme.SeparatorColor)
	ctx.advanceCursor(Vec2{X: width, Y: 5})
}
