/*
Package shade is an overlay state and animation engine for immediate-mode
GUIs: popovers, dropdown and context menus, hover cards, sheets, dialogs,
a command palette and toasts, built on an ephemeral keyed store and a
frame-stepped spring animator.

# Overview

In an immediate-mode interface the entire UI is rebuilt every frame, so a
"stays open" popover or a "slides in" sheet cannot hold its own state - it is
reconstructed from scratch each time it is drawn. This package supplies the
three pieces that make such overlays work:

  - a Store that persists small typed values between frames under stable IDs,
    with safe defaults on missing or mismatched entries
  - an open/close lifecycle shared by every overlay: trigger click toggles,
    a click elsewhere or Escape dismisses, and the click that opens an overlay
    is never also counted as the click that closes it
  - timed transitions: a hover-intent debouncer (delay before showing, grace
    period before hiding) and a spring animator that eases sheets and dialogs
    in and out without overshooting

# Quick Start

	renderer, _ := opengl.NewRenderer(800, 600)
	adapter := opengl.NewGLFWInputAdapter(window)
	ui := shade.New(renderer)

	for !window.ShouldClose() {
	    if ui.Context().WantsRedraw() {
	        glfw.PollEvents() // animation in flight: keep frames coming
	    } else {
	        glfw.WaitEvents() // idle: block until input
	    }
	    input := adapter.Update(dt)

	    ctx := ui.Begin(input, displaySize, dt)

	    shade.NewPopover("settings").Show(ctx, ctx.Button("Settings"), func(ctx *shade.Context) {
	        ctx.Text("Popover content")
	    })

	    ui.End()
	    window.SwapBuffers()
	}

# Overlay Components

	NewPopover(seed)        Click-to-toggle floating panel below a trigger.
	NewDropdownMenu(seed)   Action menu; returns the activated item index.
	NewContextMenu(seed)    Right-click menu painted at the pointer.
	ctx.Select(...)         Selection dropdown with keyboard navigation.
	NewHoverCard(seed)      Rich preview shown after the pointer rests.
	ctx.Tooltip(...)        Single-line hover card.
	NewSheet(seed)          Edge panel sliding over a dimmed backdrop.
	NewDrawer(seed)         Bottom-edge sheet preset.
	NewDialog(seed)         Centered modal; outside click dismisses.
	NewAlertDialog(seed)    Centered modal; only explicit action dismisses.
	NewCommandPalette(src)  Searchable command list (struct-held state).
	NewToasts(tuning)       Transient notification queue.

# Dismissal Rules

Anchored overlays (popover, menus, select) close when any of these happen:

	Trigger click    Toggles: a click on an open overlay's trigger closes it.
	Outside click    Primary button released outside trigger and content,
	                 only when the overlay was already open at frame start.
	Escape           Closes, and wins over a same-frame opening click.

Sheets and dialogs are owned by a caller-side open flag; dismissal clears the
flag and the panel animates out before disappearing.

# Timing

Hover cards use a two-sided debouncer: the card appears only after the
pointer has rested on the trigger for the open delay (default 200ms) and
survives pointer excursions shorter than the close delay (default 100ms).
Moving the pointer onto the card itself counts as renewed hover.

Slide and fade transitions step a spring each frame: the step is proportional
to the remaining distance with a minimum step floor, snapping to the target
inside an epsilon. While a delay or animation is running the frame requests
an immediate redraw (Context.WantsRedraw), turning an event-driven loop into
a time-driven one exactly as long as needed.

All timing reads InputState.Time, a host-supplied monotonic clock sampled
once per frame, so every decision within a frame sees the same instant.

# Tuning

Delays, the anchor gap and the spring shape live in a Tuning value, loadable
from TOML:

	[hover]
	open_delay_ms = 200
	close_delay_ms = 100

	[overlay]
	gap = 4

	[spring]
	factor = 0.15
	min_step = 0.008
	snap_epsilon = 0.001

	[toast]
	duration_ms = 3000

Pass it with shade.WithTuning(shade.LoadTuning(path)); absent fields keep
their defaults.

# State Keys

Overlay instances are keyed by a seed string hashed to an ID; per-facet
state (open flag, painted area, animation slot) lives under role-derived
sub-keys of that ID. Two widgets built from the same seed share state, so
seeds must be unique per logical instance. The store never expires entries;
widgets remove their own keys when they become invisible.

Logging is off by default; set SHADE_LOG=debug to trace overlay lifecycle
decisions on stderr.
*/
package shade
