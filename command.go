package shade

import "strings"

// CommandSource provides the entries a command palette displays.
// The palette doesn't know what the entries represent - just how to display
// and filter them.
type CommandSource interface {
	// Count returns the number of entries after filtering.
	Count() int

	// Label returns the display text for the entry at index.
	Label(index int) string

	// Filter applies a query to the source. Empty string shows everything.
	Filter(query string)
}

// CommandPalette is a searchable command list painted centered near the top
// of the screen. The host opens it (typically on a hotkey), feeds it input
// each frame, and draws it; confirming an entry or pressing Escape closes it.
//
//	palette := shade.NewCommandPalette(commands)
//	// per frame:
//	if input.KeyPressed(shade.KeyTab) { palette.Toggle() }
//	if i := palette.HandleInput(input); i >= 0 { run(commands.At(i)) }
//	palette.Draw(ctx)
type CommandPalette struct {
	source CommandSource

	open        bool
	selectedIdx int
	scrollIdx   int
	query       string

	maxVisible int
	width      float32
}

// NewCommandPalette creates a palette over the given source.
func NewCommandPalette(source CommandSource) *CommandPalette {
	return &CommandPalette{
		source:     source,
		maxVisible: 10,
		width:      420,
	}
}

// Open opens the palette with a cleared query.
func (p *CommandPalette) Open() {
	p.open = true
	p.selectedIdx = 0
	p.scrollIdx = 0
	p.query = ""
	p.source.Filter("")
}

// Close closes the palette.
func (p *CommandPalette) Close() {
	p.open = false
}

// Toggle opens the palette if closed and closes it if open.
func (p *CommandPalette) Toggle() {
	if p.open {
		p.Close()
	} else {
		p.Open()
	}
}

// IsOpen returns true while the palette is open.
func (p *CommandPalette) IsOpen() bool {
	return p.open
}

// Query returns the current filter text.
func (p *CommandPalette) Query() string {
	return p.query
}

// HandleInput processes one frame of keyboard input. Returns the confirmed
// entry index when Enter is pressed, or -1. Confirming or cancelling closes
// the palette. Call before Draw.
func (p *CommandPalette) HandleInput(input *InputState) int {
	if !p.open {
		return -1
	}

	n := p.source.Count()
	p.clampIndices(n)

	if input.KeyRepeated(KeyUp) && p.selectedIdx > 0 {
		p.selectedIdx--
	}
	if input.KeyRepeated(KeyDown) && p.selectedIdx < n-1 {
		p.selectedIdx++
	}
	if input.KeyPressed(KeyHome) {
		p.selectedIdx = 0
	}
	if input.KeyPressed(KeyEnd) && n > 0 {
		p.selectedIdx = n - 1
	}
	p.scrollToSelection()

	if input.KeyPressed(KeyEnter) && n > 0 {
		confirmed := p.selectedIdx
		p.Close()
		return confirmed
	}
	if input.KeyPressed(KeyEscape) {
		p.Close()
		return -1
	}

	if input.HasInputChars() {
		for _, ch := range input.InputChars {
			if ch >= 32 && ch < 127 {
				p.query += string(ch)
			}
		}
		p.source.Filter(p.query)
		p.selectedIdx = 0
		p.scrollIdx = 0
	}
	if input.KeyRepeated(KeyBackspace) && len(p.query) > 0 {
		p.query = p.query[:len(p.query)-1]
		p.source.Filter(p.query)
		p.selectedIdx = 0
		p.scrollIdx = 0
	}

	return -1
}

// Draw paints the palette into the foreground layer. Returns the index of an
// entry confirmed by mouse click, or -1.
func (p *CommandPalette) Draw(ctx *Context) int {
	if !p.open {
		return -1
	}

	theme := ctx.Theme()
	pad := theme.PanelPadding
	n := p.source.Count()
	p.clampIndices(n)

	rowH := ctx.lineHeight() + theme.ButtonPadding*2
	visible := n
	if visible > p.maxVisible {
		visible = p.maxVisible
	}
	queryH := ctx.lineHeight() + pad
	height := queryH + float32(visible)*(rowH+theme.ItemSpacing) + pad*2

	rect := Rect{
		X: (ctx.DisplaySize.X - p.width) / 2,
		Y: ctx.DisplaySize.Y * 0.15,
		W: p.width,
		H: height,
	}

	ctx.Foreground.AddRect(rect.X, rect.Y, rect.W, rect.H, theme.PopoverColor)
	ctx.Foreground.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, theme.PopoverBorderColor, theme.BorderSize)

	// Query line
	queryRect := Rect{X: rect.X + pad, Y: rect.Y + pad, W: rect.W - pad*2, H: ctx.lineHeight() + 4}
	ctx.Foreground.AddRect(queryRect.X, queryRect.Y, queryRect.W, queryRect.H, theme.InputBgColor)
	ctx.Foreground.AddRectOutline(queryRect.X, queryRect.Y, queryRect.W, queryRect.H, theme.InputBorderColor, theme.BorderSize)

	confirmed := -1
	saved := ctx.GetCursorPos()
	ctx.SetCursorPos(rect.X+pad, rect.Y+pad+queryH)
	ctx.inForeground(func() {
		if p.query != "" {
			ctx.addText(queryRect.X+2, queryRect.Y+2, p.query, theme.TextColor)
		} else {
			ctx.addText(queryRect.X+2, queryRect.Y+2, "Type a command...", theme.MutedTextColor)
		}

		end := p.scrollIdx + p.maxVisible
		if end > n {
			end = n
		}
		for i := p.scrollIdx; i < end; i++ {
			if ctx.Selectable(p.source.Label(i), i == p.selectedIdx, rect.W-pad*2) {
				confirmed = i
			}
		}
	})
	ctx.SetCursorPos(saved.X, saved.Y)

	// Click outside dismisses without confirming.
	if confirmed < 0 && ctx.outsideRelease(rect) {
		p.Close()
	}
	if confirmed >= 0 {
		p.Close()
	}

	ctx.WantCaptureMouse = true
	ctx.WantCaptureKeyboard = true
	return confirmed
}

func (p *CommandPalette) clampIndices(n int) {
	if p.scrollIdx > n-p.maxVisible {
		p.scrollIdx = n - p.maxVisible
	}
	if p.scrollIdx < 0 {
		p.scrollIdx = 0
	}
	if p.selectedIdx >= n {
		p.selectedIdx = n - 1
	}
	if p.selectedIdx < 0 {
		p.selectedIdx = 0
	}
}

func (p *CommandPalette) scrollToSelection() {
	if p.selectedIdx < p.scrollIdx {
		p.scrollIdx = p.selectedIdx
	}
	if p.selectedIdx >= p.scrollIdx+p.maxVisible {
		p.scrollIdx = p.selectedIdx - p.maxVisible + 1
	}
}

// StringCommandSource is a CommandSource over a static string slice with
// case-insensitive substring filtering.
type StringCommandSource struct {
	all      []string
	filtered []int
}

// NewStringCommandSource creates a source over items.
func NewStringCommandSource(items []string) *StringCommandSource {
	s := &StringCommandSource{all: items}
	s.Filter("")
	return s
}

// Count returns the number of entries matching the current filter.
func (s *StringCommandSource) Count() int { return len(s.filtered) }

// Label returns the display text of the filtered entry at index.
func (s *StringCommandSource) Label(index int) string { return s.all[s.filtered[index]] }

// At returns the original-slice index of the filtered entry at index.
func (s *StringCommandSource) At(index int) int { return s.filtered[index] }

// Filter narrows the source to entries containing query (case-insensitive).
func (s *StringCommandSource) Filter(query string) {
	s.filtered = s.filtered[:0]
	q := strings.ToLower(query)
	for i, item := range s.all {
		if q == "" || strings.Contains(strings.ToLower(item), q) {
			s.filtered = append(s.filtered, i)
		}
	}
}
