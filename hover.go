package shade

import "time"

// hoverPhase is the explicit hover-intent state. The phases are mutually
// exclusive; transitioning between them resets the timer.
type hoverPhase uint8

const (
	hoverIdle    hoverPhase = iota // pointer away, nothing shown
	hoverPending                   // pointer on trigger, open delay running
	hoverShown                     // overlay visible
	hoverClosing                   // pointer left, close delay running
)

// hoverState is the per-instance debouncer state kept in the store.
type hoverState struct {
	Phase hoverPhase
	Since float64 // clock reading when the current phase began
}

// HoverIntent is the hover debouncer: the overlay becomes visible only after
// the pointer has rested on the trigger for OpenDelay, and stays visible for
// CloseDelay after the pointer leaves, so brief pointer excursions neither
// flash the overlay open nor flicker it closed.
type HoverIntent struct {
	OpenDelay  time.Duration
	CloseDelay time.Duration
}

// step advances the debouncer one frame. hovered must be true while the
// pointer is over the trigger or the floating content itself - moving from
// trigger to content counts as renewed hover and resets the close countdown.
// Returns the new state and whether the overlay is visible this frame.
func (h HoverIntent) step(now float64, hovered bool, st hoverState) (hoverState, bool) {
	switch st.Phase {
	case hoverIdle:
		if hovered {
			st = hoverState{Phase: hoverPending, Since: now}
			if now-st.Since >= h.OpenDelay.Seconds() {
				st = hoverState{Phase: hoverShown, Since: now}
				return st, true
			}
		}
		return st, false

	case hoverPending:
		if !hovered {
			return hoverState{Phase: hoverIdle}, false
		}
		if now-st.Since >= h.OpenDelay.Seconds() {
			return hoverState{Phase: hoverShown, Since: now}, true
		}
		return st, false

	case hoverShown:
		if hovered {
			return st, true
		}
		st = hoverState{Phase: hoverClosing, Since: now}
		if now-st.Since >= h.CloseDelay.Seconds() {
			return hoverState{Phase: hoverIdle}, false
		}
		return st, true

	case hoverClosing:
		if hovered {
			return hoverState{Phase: hoverShown, Since: now}, true
		}
		if now-st.Since >= h.CloseDelay.Seconds() {
			return hoverState{Phase: hoverIdle}, false
		}
		return st, true
	}

	return hoverState{Phase: hoverIdle}, false
}

// waiting reports whether a delay is currently running, meaning the frame
// loop must keep redrawing for time to advance.
func (st hoverState) waiting() bool {
	return st.Phase == hoverPending || st.Phase == hoverClosing
}

// HoverCard shows rich preview content when the pointer rests on a trigger.
//
//	trigger := ctx.Button("@username")
//	NewHoverCard("user_preview").Show(ctx, trigger, func(ctx *shade.Context) {
//		ctx.Text("User Profile")
//		ctx.TextMuted("Joined in 2020")
//	})
type HoverCard struct {
	id         ID
	width      float32
	openDelay  time.Duration
	closeDelay time.Duration
	hasDelays  bool
}

// NewHoverCard creates a hover card keyed by seed.
// Delays default to the engine tuning (200ms open, 100ms close).
func NewHoverCard(seed string) *HoverCard {
	return &HoverCard{id: NewID(seed), width: 300}
}

// Width sets the card width (default 300).
func (hc *HoverCard) Width(w float32) *HoverCard {
	hc.width = w
	return hc
}

// Delays overrides the tuning's open and close delays for this card.
func (hc *HoverCard) Delays(open, close time.Duration) *HoverCard {
	hc.openDelay = open
	hc.closeDelay = close
	hc.hasDelays = true
	return hc
}

// Show runs the debouncer and paints the card below the trigger while
// visible. Returns true if the card is visible this frame.
func (hc *HoverCard) Show(ctx *Context, trigger Trigger, content func(*Context)) bool {
	intent := HoverIntent{
		OpenDelay:  ctx.Tuning().HoverOpenDelay(),
		CloseDelay: ctx.Tuning().HoverCloseDelay(),
	}
	if hc.hasDelays {
		intent = HoverIntent{OpenDelay: hc.openDelay, CloseDelay: hc.closeDelay}
	}

	stateKey := hc.id.Role("hover")
	areaKey := hc.id.Role("area")

	// Pointer over the card itself counts as renewed hover, so moving from
	// trigger to content does not dismiss it.
	hovered := trigger.Hovered
	if area, ok := Lookup[Rect](ctx.Store(), areaKey); ok && ctx.isHovered(area) {
		hovered = true
	}

	st := Get(ctx.Store(), stateKey, hoverState{})
	st, visible := intent.step(ctx.Now(), hovered, st)
	Set(ctx.Store(), stateKey, st)

	// A running delay only expires if frames keep coming.
	if st.waiting() {
		ctx.RequestRedraw()
	}

	if !visible {
		Remove(ctx.Store(), areaKey)
		return false
	}

	pos := ctx.anchorPos(trigger.Rect)
	ctx.paintAnchored(hc.id, pos, hc.width, content)
	return true
}

// Tooltip shows a single line of text after the pointer rests on a trigger.
// It is the HoverCard plumbing with text content and a snug width.
func (ctx *Context) Tooltip(seed string, trigger Trigger, text string) bool {
	width := ctx.MeasureText(text).X + ctx.Theme().PanelPadding*2
	card := NewHoverCard(seed)
	card.width = width
	return card.Show(ctx, trigger, func(ctx *Context) {
		ctx.Text(text)
	})
}
