package shade_test

import (
	"testing"

	"github.com/shadeui/shade"
)

func TestStringCommandSourceFilter(t *testing.T) {
	src := shade.NewStringCommandSource([]string{"Open File", "Save File", "Close Window"})

	if src.Count() != 3 {
		t.Fatalf("unfiltered count = %d, want 3", src.Count())
	}

	src.Filter("file")
	if src.Count() != 2 {
		t.Errorf("filter 'file' matched %d, want 2", src.Count())
	}
	if src.Label(0) != "Open File" || src.Label(1) != "Save File" {
		t.Errorf("unexpected filtered labels: %q, %q", src.Label(0), src.Label(1))
	}
	if src.At(1) != 1 {
		t.Errorf("At(1) = %d, want original index 1", src.At(1))
	}

	src.Filter("zzz")
	if src.Count() != 0 {
		t.Errorf("filter 'zzz' matched %d, want 0", src.Count())
	}

	src.Filter("")
	if src.Count() != 3 {
		t.Errorf("cleared filter matched %d, want 3", src.Count())
	}
}

func TestCommandPaletteKeyboardFlow(t *testing.T) {
	src := shade.NewStringCommandSource([]string{"alpha", "beta", "gamma"})
	p := shade.NewCommandPalette(src)
	input := shade.NewInputState()

	if p.IsOpen() {
		t.Fatal("palette should start closed")
	}
	if p.HandleInput(input) != -1 {
		t.Error("closed palette must not consume input")
	}

	p.Open()
	if !p.IsOpen() || p.Query() != "" {
		t.Fatal("Open should reset the query")
	}

	// Down, down, Enter confirms index 2.
	input.Reset()
	input.SetKey(shade.KeyDown, true)
	p.HandleInput(input)
	input.Reset()
	input.SetKey(shade.KeyDown, false)
	input.SetKey(shade.KeyDown, true)
	p.HandleInput(input)

	input.Reset()
	input.SetKey(shade.KeyDown, false)
	input.SetKey(shade.KeyEnter, true)
	confirmed := p.HandleInput(input)

	if confirmed != 2 {
		t.Errorf("expected confirmation of index 2, got %d", confirmed)
	}
	if p.IsOpen() {
		t.Error("confirming should close the palette")
	}
}

func TestCommandPaletteTypingFilters(t *testing.T) {
	src := shade.NewStringCommandSource([]string{"Open File", "Save File", "Quit"})
	p := shade.NewCommandPalette(src)
	input := shade.NewInputState()

	p.Open()

	input.Reset()
	input.AddInputChar('q')
	p.HandleInput(input)

	if p.Query() != "q" {
		t.Errorf("query = %q, want %q", p.Query(), "q")
	}
	if src.Count() != 1 || src.Label(0) != "Quit" {
		t.Errorf("typing should filter the source, count=%d", src.Count())
	}

	// Backspace restores.
	input.Reset()
	input.SetKey(shade.KeyBackspace, true)
	p.HandleInput(input)
	if p.Query() != "" || src.Count() != 3 {
		t.Errorf("backspace should clear the query, query=%q count=%d", p.Query(), src.Count())
	}

	// Enter confirms the first (and only) match after re-filtering.
	input.Reset()
	input.SetKey(shade.KeyBackspace, false)
	input.AddInputChar('s')
	input.AddInputChar('a')
	p.HandleInput(input)
	input.Reset()
	input.SetKey(shade.KeyEnter, true)
	confirmed := p.HandleInput(input)
	if confirmed != 0 || src.At(confirmed) != 1 {
		t.Errorf("expected filtered index 0 mapping to original 1, got %d", confirmed)
	}
}

func TestCommandPaletteEscapeCancels(t *testing.T) {
	src := shade.NewStringCommandSource([]string{"alpha"})
	p := shade.NewCommandPalette(src)
	input := shade.NewInputState()

	p.Open()
	input.Reset()
	input.SetKey(shade.KeyEscape, true)
	if got := p.HandleInput(input); got != -1 {
		t.Errorf("Escape must not confirm, got %d", got)
	}
	if p.IsOpen() {
		t.Error("Escape should close the palette")
	}
}

func TestCommandPaletteDraw(t *testing.T) {
	ui := shade.New(&mockRenderer{})
	input := shade.NewInputState()
	src := shade.NewStringCommandSource([]string{"alpha", "beta"})
	p := shade.NewCommandPalette(src)

	// Drawing a closed palette is a no-op.
	input.Reset()
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	if p.Draw(ctx) != -1 {
		t.Error("closed palette draw should confirm nothing")
	}
	_ = ui.End()

	p.Open()
	input.Reset()
	ctx = ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	p.Draw(ctx)
	if !ctx.WantCaptureKeyboard {
		t.Error("open palette should capture the keyboard")
	}
	_ = ui.End()
}
