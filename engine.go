package shade

// Renderer is the interface for rendering engine draw data.
// The host immediate-mode renderer supplies it; the engine only produces
// draw lists and never touches the GPU directly.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// Engine manages the overlay engine across frames: the renderer, the
// ephemeral state store, and the theme/tuning shared by all overlays.
type Engine struct {
	renderer Renderer
	store    *Store
	theme    Theme
	tuning   Tuning
	ctx      *Context
}

// Option configures an Engine instance.
type Option func(*Engine)

// WithTheme sets the engine theme.
func WithTheme(theme Theme) Option {
	return func(e *Engine) { e.theme = theme }
}

// WithTuning sets the timing and motion parameters.
func WithTuning(t Tuning) Option {
	return func(e *Engine) { e.tuning = t }
}

// WithStore injects a store, e.g. one shared with another engine or one a
// test inspects directly.
func WithStore(s *Store) Option {
	return func(e *Engine) { e.store = s }
}

// New creates a new engine instance.
func New(renderer Renderer, opts ...Option) *Engine {
	e := &Engine{
		renderer: renderer,
		store:    NewStore(),
		theme:    DarkTheme(),
		tuning:   DefaultTuning(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.ctx = newContext(e.store)
	return e
}

// Begin starts a new frame and returns the frame context.
// Call this at the start of each frame before drawing any UI.
func (e *Engine) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := e.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.Foreground = AcquireDrawList()

	ctx.Input = input
	ctx.store = e.store
	ctx.theme = e.theme
	ctx.tuning = e.tuning
	ctx.FontTextureID = e.renderer.FontTextureID()

	ctx.reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI: the base list first, then the
// foreground list so floating content paints over everything else.
func (e *Engine) End() error {
	ctx := e.ctx
	if ctx.DrawList == nil {
		return nil
	}

	err := e.renderer.Render(ctx.DrawList)
	if err == nil && ctx.Foreground != nil && len(ctx.Foreground.VtxBuffer) > 0 {
		err = e.renderer.Render(ctx.Foreground)
	}

	ReleaseDrawList(ctx.DrawList)
	ctx.DrawList = nil
	if ctx.Foreground != nil {
		ReleaseDrawList(ctx.Foreground)
		ctx.Foreground = nil
	}

	return err
}

// Context returns the current frame context.
// Only valid between Begin() and End() calls for drawing; WantsRedraw may be
// read after End to decide whether to schedule another frame immediately.
func (e *Engine) Context() *Context {
	return e.ctx
}

// Store returns the engine's ephemeral state store.
func (e *Engine) Store() *Store {
	return e.store
}

// Theme returns the current theme.
func (e *Engine) Theme() Theme {
	return e.theme
}

// SetTheme replaces the theme for subsequent frames.
func (e *Engine) SetTheme(theme Theme) {
	e.theme = theme
}

// Tuning returns the current timing and motion parameters.
func (e *Engine) Tuning() Tuning {
	return e.tuning
}

// SetTuning replaces the tuning for subsequent frames.
func (e *Engine) SetTuning(t Tuning) {
	e.tuning = t
}

// Resize notifies the renderer of a display size change.
func (e *Engine) Resize(width, height int) {
	e.renderer.Resize(width, height)
}
