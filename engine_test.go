package shade_test

import (
	"testing"

	"github.com/shadeui/shade"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
}

func (m *mockRenderer) Render(dl *shade.DrawList) error {
	m.renderCalls++
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

func TestEngineBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)

	input := shade.NewInputState()
	displaySize := shade.Vec2{X: 1920, Y: 1080}

	ctx := ui.Begin(input, displaySize, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}

	ctx.Text("Hello World")
	ctx.TextMuted("muted")

	err := ui.End()
	if err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
}

func TestEngineRendersForegroundSeparately(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()

	pop := shade.NewPopover("fg_test")
	trigger := shade.Trigger{ID: shade.NewID("t"), Rect: shade.Rect{X: 10, Y: 10, W: 60, H: 20}}

	// Open the popover so the foreground list gets content.
	input.Reset()
	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)
	ctx.Text("base content")
	open := pop.Show(ctx, shade.Trigger{ID: trigger.ID, Rect: trigger.Rect, Clicked: true}, func(ctx *shade.Context) {
		ctx.Text("floating")
	})
	if !open {
		t.Fatal("popover should open on trigger click")
	}
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	// Base list plus foreground list.
	if renderer.renderCalls != 2 {
		t.Errorf("expected 2 render calls (base + foreground), got %d", renderer.renderCalls)
	}
}

func TestButtonTrigger(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()

	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)

	trigger := ctx.Button("Test Button")
	if trigger.Clicked {
		t.Error("button should not be clicked without mouse input")
	}
	if trigger.Rect.W == 0 || trigger.Rect.H == 0 {
		t.Error("button trigger should carry its screen rect")
	}

	_ = ui.End()
}

func TestButtonClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()

	// Pointer inside the button drawn at the origin.
	input.SetMousePos(10, 5)
	input.SetMouseButton(shade.MouseButtonLeft, true)

	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)

	trigger := ctx.Button("Click Me")
	if !trigger.Clicked {
		t.Error("button under the pointer should report the click")
	}
	if !ctx.WantCaptureMouse {
		t.Error("hovering a button should capture the mouse")
	}

	_ = ui.End()
}

func TestSelectableClick(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()

	input.SetMousePos(50, 8)
	input.SetMouseButton(shade.MouseButtonLeft, true)

	ctx := ui.Begin(input, shade.Vec2{X: 800, Y: 600}, 0.016)

	if !ctx.Selectable("Row", false, 200) {
		t.Error("selectable under the pointer should report the click")
	}

	_ = ui.End()
}

func TestEngineThemeAndTuningSwap(t *testing.T) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer, shade.WithTheme(shade.LightTheme()))

	if ui.Theme() != shade.LightTheme() {
		t.Error("WithTheme should set the engine theme")
	}

	ui.SetTheme(shade.DarkTheme())
	if ui.Theme() != shade.DarkTheme() {
		t.Error("SetTheme should replace the theme")
	}

	custom := shade.DefaultTuning()
	custom.Overlay.Gap = 12
	ui.SetTuning(custom)
	if ui.Tuning().Overlay.Gap != 12 {
		t.Error("SetTuning should replace the tuning")
	}
}

func TestWithStoreInjection(t *testing.T) {
	store := shade.NewStore()
	id := shade.NewID("preseed")
	shade.Set(store, id, 7)

	renderer := &mockRenderer{}
	ui := shade.New(renderer, shade.WithStore(store))

	if ui.Store() != store {
		t.Fatal("WithStore should inject the given store")
	}
	if got := shade.Get(ui.Store(), id, 0); got != 7 {
		t.Errorf("injected store should keep its entries, got %d", got)
	}
}

func TestDrawListPool(t *testing.T) {
	dl1 := shade.AcquireDrawList()
	if dl1 == nil {
		t.Fatal("expected non-nil DrawList")
	}

	dl1.AddRect(0, 0, 100, 100, shade.ColorWhite)
	shade.ReleaseDrawList(dl1)

	dl2 := shade.AcquireDrawList()
	if dl2 == nil {
		t.Fatal("expected non-nil DrawList after release")
	}
	if len(dl2.VtxBuffer) != 0 {
		t.Error("reused DrawList should be cleared")
	}

	shade.ReleaseDrawList(dl2)
}

func TestColorFunctions(t *testing.T) {
	c := shade.RGBA(255, 128, 64, 200)
	r, g, b, a := shade.UnpackRGBA(c)
	if r != 255 || g != 128 || b != 64 || a != 200 {
		t.Errorf("RGBA roundtrip failed: got %d,%d,%d,%d", r, g, b, a)
	}

	c2 := shade.WithAlpha(c, 30)
	_, _, _, a2 := shade.UnpackRGBA(c2)
	if a2 != 30 {
		t.Errorf("WithAlpha should replace alpha, got %d", a2)
	}
}

func BenchmarkFullFrame(b *testing.B) {
	renderer := &mockRenderer{}
	ui := shade.New(renderer)
	input := shade.NewInputState()
	displaySize := shade.Vec2{X: 1920, Y: 1080}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx := ui.Begin(input, displaySize, 0.016)

		ctx.Text("Title")
		for j := 0; j < 10; j++ {
			ctx.Selectable("Item", false, 200)
		}

		_ = ui.End()
	}
}
