package shade_test

import (
	"testing"
	"time"

	"github.com/shadeui/shade"
)

// hoverFrame runs one frame showing the hover card with the given clock
// reading and hover state, returning whether the card was visible.
func hoverFrame(ui *shade.Engine, input *shade.InputState, hc *shade.HoverCard, now float64, hovered bool, content func(*shade.Context)) bool {
	input.Reset()
	input.SetTime(now)
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	trigger := shade.Trigger{ID: shade.NewID("trig"), Rect: shade.Rect{X: 100, Y: 100, W: 80, H: 20}, Hovered: hovered}
	visible := hc.Show(ctx, trigger, content)
	_ = ui.End()
	return visible
}

func TestHoverCardOpenDelay(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("delay_open")
	content := func(ctx *shade.Context) { ctx.Text("card") }

	// Default open delay is 200ms: hovering shows nothing until the pointer
	// has rested that long.
	if hoverFrame(ui, input, hc, 0, true, content) {
		t.Error("card must not show on the first hovered frame")
	}
	if hoverFrame(ui, input, hc, 0.15, true, content) {
		t.Error("card must not show at 150ms")
	}
	if !hoverFrame(ui, input, hc, 0.25, true, content) {
		t.Error("card should show at 250ms")
	}
}

func TestHoverCardCloseDelay(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("delay_close")
	content := func(ctx *shade.Context) { ctx.Text("card") }

	hoverFrame(ui, input, hc, 0, true, content)
	if !hoverFrame(ui, input, hc, 0.25, true, content) {
		t.Fatal("card should be shown after the open delay")
	}

	// Pointer leaves at 250ms; the card lingers for the 100ms close delay.
	if !hoverFrame(ui, input, hc, 0.26, false, content) {
		t.Error("card should linger right after the pointer leaves")
	}
	if !hoverFrame(ui, input, hc, 0.34, false, content) {
		t.Error("card should still be visible at 340ms")
	}
	if hoverFrame(ui, input, hc, 0.37, false, content) {
		t.Error("card should hide once the close delay has elapsed")
	}
}

func TestHoverCardReenterCancelsClose(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("reenter")
	content := func(ctx *shade.Context) { ctx.Text("card") }

	hoverFrame(ui, input, hc, 0, true, content)
	hoverFrame(ui, input, hc, 0.25, true, content)

	// Leave, then come back inside the close window.
	hoverFrame(ui, input, hc, 0.30, false, content)
	if !hoverFrame(ui, input, hc, 0.35, true, content) {
		t.Fatal("re-entering should keep the card visible")
	}

	// The close countdown restarted: leaving again gives a fresh 100ms.
	if !hoverFrame(ui, input, hc, 0.40, false, content) {
		t.Error("fresh close delay should be running after re-entry")
	}
	if !hoverFrame(ui, input, hc, 0.48, false, content) {
		t.Error("card should still be visible 80ms after the second leave")
	}
	if hoverFrame(ui, input, hc, 0.52, false, content) {
		t.Error("card should hide 120ms after the second leave")
	}
}

func TestHoverCardBriefPassDoesNotShow(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("brief")
	content := func(ctx *shade.Context) { ctx.Text("card") }

	// Sweep across the trigger faster than the open delay.
	hoverFrame(ui, input, hc, 0, true, content)
	hoverFrame(ui, input, hc, 0.05, true, content)
	if hoverFrame(ui, input, hc, 0.10, false, content) {
		t.Error("a brief pass must not show the card")
	}

	// And a later long hover starts the delay from scratch.
	hoverFrame(ui, input, hc, 1.0, true, content)
	if hoverFrame(ui, input, hc, 1.15, true, content) {
		t.Error("earlier aborted hover must not shorten the delay")
	}
	if !hoverFrame(ui, input, hc, 1.25, true, content) {
		t.Error("card should show after a full fresh delay")
	}
}

func TestHoverCardContentHoverRenews(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("content_hover")
	content := func(ctx *shade.Context) { ctx.Text("card") }

	hoverFrame(ui, input, hc, 0, true, content)
	if !hoverFrame(ui, input, hc, 0.25, true, content) {
		t.Fatal("card should be shown")
	}

	// Move the pointer off the trigger and onto the card itself. The card
	// hangs below the trigger's bottom-left corner.
	input.SetMousePos(110, 130)
	if !hoverFrame(ui, input, hc, 0.30, false, content) {
		t.Fatal("card should stay while the pointer is over it")
	}
	// Well past the close delay, still over the card.
	if !hoverFrame(ui, input, hc, 0.60, false, content) {
		t.Error("pointer over the card counts as renewed hover")
	}
}

func TestHoverCardRequestsRedrawWhileWaiting(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("redraw")

	input.Reset()
	input.SetTime(0)
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	trigger := shade.Trigger{ID: shade.NewID("trig"), Rect: shade.Rect{X: 100, Y: 100, W: 80, H: 20}, Hovered: true}
	hc.Show(ctx, trigger, func(ctx *shade.Context) { ctx.Text("card") })

	// A pending open delay only expires if frames keep coming.
	if !ctx.WantsRedraw() {
		t.Error("pending hover delay must request a redraw")
	}
	_ = ui.End()
}

func TestHoverCardCustomDelays(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	hc := shade.NewHoverCard("custom").Delays(50*time.Millisecond, 25*time.Millisecond)
	content := func(ctx *shade.Context) { ctx.Text("card") }

	if hoverFrame(ui, input, hc, 0, true, content) {
		t.Error("card must not show immediately")
	}
	if !hoverFrame(ui, input, hc, 0.06, true, content) {
		t.Error("card should show after the custom 50ms delay")
	}
	hoverFrame(ui, input, hc, 0.10, false, content)
	if hoverFrame(ui, input, hc, 0.14, false, content) {
		t.Error("card should hide after the custom 25ms close delay")
	}
}

func TestTooltip(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()

	show := func(now float64, hovered bool) bool {
		input.Reset()
		input.SetTime(now)
		ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
		trigger := shade.Trigger{ID: shade.NewID("tip_trig"), Rect: shade.Rect{X: 200, Y: 50, W: 40, H: 16}, Hovered: hovered}
		visible := ctx.Tooltip("tip", trigger, "hint text")
		_ = ui.End()
		return visible
	}

	if show(0, true) {
		t.Error("tooltip must respect the open delay")
	}
	if !show(0.25, true) {
		t.Error("tooltip should show after the delay")
	}
}
