package shade

// springParams shapes the per-frame spring step.
type springParams struct {
	factor  float32 // proportional step while far from the target
	minStep float32 // floor so the step never fully stalls
	snap    float32 // distance below which the value snaps to the target
}

// defaultSpring matches DefaultTuning.
var defaultSpring = springParams{factor: 0.15, minStep: 0.008, snap: 0.001}

// springFromTuning extracts the spring shape from a tuning block.
func springFromTuning(t Tuning) springParams {
	return springParams{
		factor:  t.Spring.Factor,
		minStep: t.Spring.MinStep,
		snap:    t.Spring.SnapEpsilon,
	}
}

// SpringAdvance moves current one frame-step toward target.
// It returns the new value and true while the animation is still in flight;
// once current is within the snap epsilon of target it returns (target, false)
// and further calls are no-ops.
//
// The step is proportional with a floor: fast when far, slow near the target,
// never stalling, never overshooting. It is evaluated once per rendered frame,
// so the time constant depends on frame rate rather than wall clock.
func SpringAdvance(current, target float32) (float32, bool) {
	return springAdvance(current, target, defaultSpring)
}

func springAdvance(current, target float32, p springParams) (float32, bool) {
	diff := current - target
	if absf32(diff) < p.snap {
		return target, false
	}

	step := maxf(absf32(diff)*p.factor, p.minStep)

	var next float32
	if target > current {
		next = minf(current+step, target)
	} else {
		next = maxf(current-step, target)
	}
	return next, true
}

// SlideAnimation drives slide-in/out transitions for sheets and drawers.
// Offset 1 means fully hidden, 0 fully visible. The zero value is not
// meaningful; use NewSlideAnimation or LoadSlideAnimation, which start
// fully hidden.
type SlideAnimation struct {
	// Offset is the current position (0 = fully visible, 1 = fully hidden).
	Offset float32
	// Opening is true while animating towards visible.
	Opening bool
	// Animating is true while an animation is in progress. When false,
	// Offset is exactly 0 or 1 and Update is a no-op.
	Animating bool
}

// NewSlideAnimation returns an animation in the fully hidden resting state.
func NewSlideAnimation() SlideAnimation {
	return SlideAnimation{Offset: 1}
}

// LoadSlideAnimation reads the animation stored under id, defaulting to
// fully hidden on first use.
func LoadSlideAnimation(s *Store, id ID) SlideAnimation {
	return Get(s, id, NewSlideAnimation())
}

// StoreSlideAnimation writes the animation back for the next frame.
func StoreSlideAnimation(s *Store, id ID, a SlideAnimation) {
	Set(s, id, a)
}

// StartOpen begins animating towards fully visible. Calling it mid-flight
// simply retargets the animation; no state is corrupted because each step is
// a pure function of the current offset and target.
func (a *SlideAnimation) StartOpen() {
	a.Opening = true
	a.Animating = true
}

// StartClose begins animating towards fully hidden.
func (a *SlideAnimation) StartClose() {
	a.Opening = false
	a.Animating = true
}

// Target returns the offset the animation is heading for.
func (a *SlideAnimation) Target() float32 {
	if a.Opening {
		return 0
	}
	return 1
}

// Update advances the animation one frame-step and returns true if it is
// still in flight. While animating it requests an immediate redraw so the
// transition progresses without waiting for the next input event; on
// completion it snaps the offset to the target.
func (a *SlideAnimation) Update(ctx *Context) bool {
	if !a.Animating {
		return false
	}

	target := a.Target()
	next, animating := springAdvance(a.Offset, target, springFromTuning(ctx.Tuning()))
	a.Offset = next
	if animating {
		ctx.RequestRedraw()
		return true
	}
	a.Animating = false
	return false
}

// IsVisible returns true if the component should render at all: partially or
// fully on screen, or still heading there.
func (a *SlideAnimation) IsVisible() bool {
	return a.Offset < 1.0 || a.Opening
}

// IsFullyClosed returns true only when the animation has settled fully hidden.
func (a *SlideAnimation) IsFullyClosed() bool {
	return a.Offset >= 1.0 && !a.Opening && !a.Animating
}
