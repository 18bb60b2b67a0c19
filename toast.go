package shade

// ToastKind classifies a toast notification.
type ToastKind uint8

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastWarning
	ToastError
)

// Toast is a single transient notification.
type Toast struct {
	Message  string
	Kind     ToastKind
	Duration float32 // seconds on screen
	Elapsed  float32
}

// Toasts holds the active notification queue. Store it in the application
// and pass it to Context.DrawToasts at the end of each frame.
type Toasts struct {
	active          []Toast
	defaultDuration float32
}

// ToastMaxVisible caps how many toasts stack on screen at once.
const ToastMaxVisible = 5

// NewToasts creates a queue whose default per-toast duration comes from the
// tuning block.
func NewToasts(t Tuning) *Toasts {
	return &Toasts{defaultDuration: float32(t.ToastDuration().Seconds())}
}

// Add enqueues a toast with an explicit duration in seconds.
func (ts *Toasts) Add(message string, kind ToastKind, duration float32) {
	ts.active = append(ts.active, Toast{Message: message, Kind: kind, Duration: duration})
	if len(ts.active) > ToastMaxVisible*2 {
		ts.active = ts.active[len(ts.active)-ToastMaxVisible:]
	}
}

// Info enqueues an informational toast with the default duration.
func (ts *Toasts) Info(message string) { ts.Add(message, ToastInfo, ts.defaultDuration) }

// Success enqueues a success toast with the default duration.
func (ts *Toasts) Success(message string) { ts.Add(message, ToastSuccess, ts.defaultDuration) }

// Warning enqueues a warning toast with the default duration.
func (ts *Toasts) Warning(message string) { ts.Add(message, ToastWarning, ts.defaultDuration) }

// Error enqueues an error toast with the default duration.
func (ts *Toasts) Error(message string) { ts.Add(message, ToastError, ts.defaultDuration) }

// Len returns the number of queued toasts.
func (ts *Toasts) Len() int { return len(ts.active) }

// Update advances toast timers and drops expired ones.
// Call once per frame with the frame delta time in seconds.
func (ts *Toasts) Update(deltaTime float32) {
	live := ts.active[:0]
	for i := range ts.active {
		ts.active[i].Elapsed += deltaTime
		if ts.active[i].Elapsed < ts.active[i].Duration {
			live = append(live, ts.active[i])
		}
	}
	ts.active = live
}

// DrawToasts paints the queue stacked in the bottom-right corner, newest at
// the bottom, each fading in and out over its lifetime. While any toast is
// live it requests redraws so the timers advance without input.
func (ctx *Context) DrawToasts(ts *Toasts) {
	if ts == nil || len(ts.active) == 0 {
		return
	}

	const (
		padX        = float32(12)
		padY        = float32(8)
		margin      = float32(10)
		gap         = float32(6)
		fadeIn      = float32(0.15)
		fadeOutFrom = float32(0.7) // fraction of duration where fade-out starts
	)

	baseX := ctx.DisplaySize.X - margin
	baseY := ctx.DisplaySize.Y - margin

	start := 0
	if len(ts.active) > ToastMaxVisible {
		start = len(ts.active) - ToastMaxVisible
	}

	for i := len(ts.active) - 1; i >= start; i-- {
		t := &ts.active[i]

		opacity := float32(1)
		if t.Elapsed < fadeIn {
			opacity = t.Elapsed / fadeIn
		} else if t.Elapsed > t.Duration*fadeOutFrom {
			opacity = 1 - (t.Elapsed-t.Duration*fadeOutFrom)/(t.Duration*(1-fadeOutFrom))
		}
		if opacity <= 0 {
			continue
		}

		icon := toastIcon(t.Kind)
		iconW := ctx.MeasureText(icon + " ").X
		textSize := ctx.MeasureText(t.Message)
		w := iconW + textSize.X + padX*2
		h := textSize.Y + padY*2

		x := baseX - w
		y := baseY - h

		bg := ctx.toastColor(t.Kind)
		_, _, _, baseAlpha := UnpackRGBA(bg)
		bg = WithAlpha(bg, uint8(float32(baseAlpha)*opacity))

		ctx.Foreground.AddRect(x, y, w, h, bg)
		ctx.Foreground.AddRectOutline(x, y, w, h, RGBA(255, 255, 255, uint8(60*opacity)), 1)

		textColor := RGBA(255, 255, 255, uint8(255*opacity))
		ctx.inForeground(func() {
			ctx.addText(x+padX, y+padY, icon+" ", textColor)
			ctx.addText(x+padX+iconW, y+padY, t.Message, textColor)
		})

		baseY -= h + gap
	}

	// Timers only expire if frames keep coming.
	ctx.RequestRedraw()
}

func (ctx *Context) toastColor(k ToastKind) uint32 {
	switch k {
	case ToastSuccess:
		return ctx.theme.ToastSuccessColor
	case ToastWarning:
		return ctx.theme.ToastWarningColor
	case ToastError:
		return ctx.theme.ToastErrorColor
	default:
		return ctx.theme.ToastInfoColor
	}
}

func toastIcon(k ToastKind) string {
	switch k {
	case ToastSuccess:
		return "+"
	case ToastWarning:
		return "!"
	case ToastError:
		return "X"
	default:
		return "i"
	}
}
