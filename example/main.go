// Example demonstrates the overlay widgets: popover, select, hover card,
// sheet, dialog, context menu, command palette, and toasts.
//
// Prerequisites:
//
//	OpenGL 4.1 and X11/Wayland headers for GLFW
//	go run ./example/
//
// The loop is event-driven: it blocks in WaitEvents until input arrives,
// except while an animation or hover timer is running, when WantsRedraw
// switches it to continuous redraw.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/shadeui/shade"
	"github.com/shadeui/shade/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "shade example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("shade renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	tuning := shade.DefaultTuning()
	if path := os.Getenv("SHADE_TUNING"); path != "" {
		tuning, err = shade.LoadTuning(path)
		if err != nil {
			return fmt.Errorf("load tuning: %w", err)
		}
	}

	ui := shade.New(renderer, shade.WithTuning(tuning))

	// Application state.
	settings := shade.NewPopover("settings").Width(240)
	commands := []string{"Open File", "Save File", "Close Window", "Toggle Theme", "Quit"}
	source := shade.NewStringCommandSource(commands)
	palette := shade.NewCommandPalette(source)
	toasts := shade.NewToasts(tuning)
	editItems := []shade.MenuItem{
		{Label: "Cut"}, {Label: "Copy"}, {Separator: true}, {Label: "Paste", Disabled: true},
	}

	quality := 1
	qualities := []string{"Low", "Medium", "High"}
	sheetOpen := false
	dialogOpen := false
	dark := true

	lastTime := glfw.GetTime()

	for !window.ShouldClose() {
		// Block on input unless something is animating.
		if ui.Context().WantsRedraw() {
			glfw.PollEvents()
		} else {
			glfw.WaitEvents()
		}

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		input := inputAdapter.Update(dt)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.10, 0.10, 0.12, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := shade.Vec2{X: float32(w), Y: float32(h)}
		ctx := ui.Begin(input, displaySize, dt)

		ctx.SetCursorPos(20, 20)
		ctx.Text("shade overlay demo")
		ctx.TextMuted("click around; Tab opens the command palette")

		settings.Show(ctx, ctx.Button("Settings"), func(ctx *shade.Context) {
			ctx.Text("Settings")
			ctx.Separator(200)
			if ctx.Selectable("Toggle theme", dark, 200) {
				dark = !dark
				if dark {
					ui.SetTheme(shade.DarkTheme())
				} else {
					ui.SetTheme(shade.LightTheme())
				}
				settings.Close(ctx)
			}
		})

		if i := shade.NewDropdownMenu("edit").Items(editItems).Show(ctx, ctx.Button("Edit")); i >= 0 {
			toasts.Info(editItems[i].Label)
		}

		if ctx.Select("Quality", &quality, qualities) {
			toasts.Success("Quality: " + qualities[quality])
		}

		shade.NewHoverCard("author").Show(ctx, ctx.Button("@shadeui"), func(ctx *shade.Context) {
			ctx.Text("shadeui")
			ctx.TextMuted("Ephemeral overlay widgets for")
			ctx.TextMuted("immediate-mode Go interfaces.")
		})

		if ctx.Button("Open sheet").Clicked {
			sheetOpen = true
		}
		if ctx.Button("Open dialog").Clicked {
			dialogOpen = true
		}

		canvas := shade.Rect{X: 0, Y: 0, W: displaySize.X, H: displaySize.Y}
		if i := shade.NewContextMenu("background").Items(editItems).Show(ctx, canvas); i >= 0 {
			toasts.Info("Context: " + editItems[i].Label)
		}

		shade.NewSheet("side").Title("Side sheet").Show(ctx, &sheetOpen, func(ctx *shade.Context) {
			ctx.Text("Slides in from the right.")
			ctx.TextMuted("Click outside or press Escape.")
		})

		shade.NewDialog("confirm").Title("Confirm").Show(ctx, &dialogOpen, func(ctx *shade.Context) {
			ctx.Text("Proceed with the operation?")
			if ctx.Button("OK").Clicked {
				dialogOpen = false
				toasts.Success("Confirmed")
			}
		})

		if input.KeyPressed(shade.KeyTab) {
			palette.Toggle()
		}
		if i := palette.HandleInput(input); i >= 0 {
			toasts.Info("Run: " + commands[source.At(i)])
		}
		if i := palette.Draw(ctx); i >= 0 {
			toasts.Info("Run: " + commands[source.At(i)])
		}

		toasts.Update(dt)
		ctx.DrawToasts(toasts)

		if err := ui.End(); err != nil {
			return fmt.Errorf("shade render: %w", err)
		}

		window.SwapBuffers()
	}

	return nil
}
