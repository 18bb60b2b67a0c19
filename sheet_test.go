package shade_test

import (
	"testing"

	"github.com/shadeui/shade"
)

// sheetFrame runs one frame of the sheet with prepared input events.
func sheetFrame(ui *shade.Engine, input *shade.InputState, sh *shade.Sheet, open *bool) bool {
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	visible := sh.Show(ctx, open, func(ctx *shade.Context) {
		ctx.Text("sheet content")
	})
	_ = ui.End()
	return visible
}

func TestSheetSlidesOpenAndClosed(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("slide")
	open := false

	// Closed sheet paints nothing.
	input.Reset()
	if sheetFrame(ui, input, sh, &open) {
		t.Fatal("closed sheet must not be visible")
	}

	// Opening: visible immediately, and animating over multiple frames.
	open = true
	input.Reset()
	if !sheetFrame(ui, input, sh, &open) {
		t.Fatal("opening sheet should be visible")
	}

	animKey := shade.NewID("slide").Role("anim")
	frames := 0
	for shade.LoadSlideAnimation(ui.Store(), animKey).Animating {
		input.Reset()
		sheetFrame(ui, input, sh, &open)
		frames++
		if frames > 1000 {
			t.Fatal("open animation did not settle")
		}
	}
	if frames < 2 {
		t.Errorf("slide-in should take multiple frames, took %d", frames)
	}

	anim := shade.LoadSlideAnimation(ui.Store(), animKey)
	if anim.Offset != 0 {
		t.Errorf("settled open sheet should be at offset 0, got %g", anim.Offset)
	}

	// Closing: still visible during the slide-out, gone once settled.
	open = false
	input.Reset()
	if !sheetFrame(ui, input, sh, &open) {
		t.Error("closing sheet should remain visible during the slide-out")
	}
	for shade.LoadSlideAnimation(ui.Store(), animKey).Animating {
		input.Reset()
		sheetFrame(ui, input, sh, &open)
	}
	input.Reset()
	if sheetFrame(ui, input, sh, &open) {
		t.Error("settled closed sheet must not be visible")
	}
}

func TestSheetOutsideClickCloses(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("dismiss") // slides from the right, 300 wide
	open := true

	// Let it settle fully open.
	for i := 0; i < 200; i++ {
		input.Reset()
		sheetFrame(ui, input, sh, &open)
	}

	// Click on the backdrop, left of the panel.
	input.Reset()
	input.SetMousePos(100, 300)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	sheetFrame(ui, input, sh, &open)

	if open {
		t.Error("backdrop click should clear the open flag")
	}
}

func TestSheetClickInsidePanelStaysOpen(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("keep")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		sheetFrame(ui, input, sh, &open)
	}

	// Click inside the panel (right 300px of the 800px display).
	input.Reset()
	input.SetMousePos(650, 300)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	sheetFrame(ui, input, sh, &open)

	if !open {
		t.Error("click inside the panel must not close the sheet")
	}
}

func TestSheetClickDuringOpeningSlideIgnored(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("early")
	open := true

	// First frame: the sheet is barely on screen (offset near 1), so an
	// outside click must not dismiss it yet.
	input.Reset()
	input.SetMousePos(100, 300)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	sheetFrame(ui, input, sh, &open)

	if !open {
		t.Error("click during the opening slide must be ignored")
	}
}

func TestSheetEscapeCloses(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("esc")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		sheetFrame(ui, input, sh, &open)
	}

	input.Reset()
	input.SetKey(shade.KeyEscape, true)
	sheetFrame(ui, input, sh, &open)

	if open {
		t.Error("Escape should clear the open flag")
	}
}

func TestSheetEscapeClosesDuringOpeningSlide(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	sh := shade.NewSheet("esc_early")
	open := true

	// One frame in, the slide has barely started.
	input.Reset()
	sheetFrame(ui, input, sh, &open)

	animKey := shade.NewID("esc_early").Role("anim")
	if a := shade.LoadSlideAnimation(ui.Store(), animKey); !a.Animating || a.Offset < 0.3 {
		t.Fatalf("slide should still be in flight, got %+v", a)
	}

	// Escape mid-slide closes; outside clicks at this point would not.
	input.Reset()
	input.SetKey(shade.KeyEscape, true)
	sheetFrame(ui, input, sh, &open)

	if open {
		t.Error("Escape during the opening slide should clear the open flag")
	}
}

func TestDrawerSlidesFromBottom(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	dr := shade.NewDrawer("bottom")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
		dr.Show(ctx, &open, func(ctx *shade.Context) { ctx.Text("drawer") })
		_ = ui.End()
	}

	// A settled drawer occupies the bottom of the screen: clicking near the
	// top closes it, clicking near the bottom doesn't.
	input.Reset()
	input.SetMousePos(400, 580)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	dr.Show(ctx, &open, func(ctx *shade.Context) { ctx.Text("drawer") })
	_ = ui.End()
	if !open {
		t.Error("click inside the drawer must not close it")
	}

	input.Reset()
	input.SetMouseButton(shade.MouseButtonLeft, false)
	input.SetMousePos(400, 50)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	ctx = ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	dr.Show(ctx, &open, func(ctx *shade.Context) { ctx.Text("drawer") })
	_ = ui.End()
	if open {
		t.Error("click above the drawer should close it")
	}
}

// dialogFrame runs one frame of the dialog with prepared input events.
func dialogFrame(ui *shade.Engine, input *shade.InputState, d *shade.Dialog, open *bool) bool {
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	visible := d.Show(ctx, open, func(ctx *shade.Context) {
		ctx.Text("dialog body")
	})
	_ = ui.End()
	return visible
}

func TestDialogOutsideReleaseCloses(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	d := shade.NewDialog("confirm")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		dialogFrame(ui, input, d, &open)
	}

	// Release on the backdrop, far from the centered panel.
	input.Reset()
	input.SetMousePos(20, 20)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	input.SetMouseButton(shade.MouseButtonLeft, false)
	dialogFrame(ui, input, d, &open)

	if open {
		t.Error("outside release should close the dialog")
	}
}

func TestAlertDialogIgnoresOutsideClick(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	d := shade.NewAlertDialog("destructive")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		dialogFrame(ui, input, d, &open)
	}

	input.Reset()
	input.SetMousePos(20, 20)
	input.SetMouseButton(shade.MouseButtonLeft, true)
	input.SetMouseButton(shade.MouseButtonLeft, false)
	dialogFrame(ui, input, d, &open)

	if !open {
		t.Error("alert dialog must ignore outside clicks")
	}

	// Escape still works.
	input.Reset()
	input.SetKey(shade.KeyEscape, true)
	dialogFrame(ui, input, d, &open)
	if open {
		t.Error("Escape should close the alert dialog")
	}
}

func TestDialogEscapeClosesDuringOpeningFade(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	d := shade.NewDialog("esc_fade")
	open := true

	input.Reset()
	dialogFrame(ui, input, d, &open)

	animKey := shade.NewID("esc_fade").Role("anim")
	if a := shade.LoadSlideAnimation(ui.Store(), animKey); !a.Animating || a.Offset < 0.3 {
		t.Fatalf("fade should still be in flight, got %+v", a)
	}

	input.Reset()
	input.SetKey(shade.KeyEscape, true)
	dialogFrame(ui, input, d, &open)

	if open {
		t.Error("Escape during the opening fade should clear the open flag")
	}
}

func TestDialogClosingFadeStaysVisible(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	d := shade.NewDialog("fade")
	open := true

	for i := 0; i < 200; i++ {
		input.Reset()
		dialogFrame(ui, input, d, &open)
	}

	open = false
	input.Reset()
	if !dialogFrame(ui, input, d, &open) {
		t.Error("dialog should remain visible during the closing fade")
	}

	animKey := shade.NewID("fade").Role("anim")
	for shade.LoadSlideAnimation(ui.Store(), animKey).Animating {
		input.Reset()
		dialogFrame(ui, input, d, &open)
	}
	input.Reset()
	if dialogFrame(ui, input, d, &open) {
		t.Error("settled closed dialog must not be visible")
	}
}
