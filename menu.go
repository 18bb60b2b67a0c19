package shade

// MenuItem is one entry of a dropdown or context menu.
type MenuItem struct {
	Label     string
	Disabled  bool
	Separator bool // drawn as a rule; never activatable
}

// DropdownMenu is a click-to-toggle action menu anchored below a trigger.
// Unlike Select it carries no persistent selection; activating an item fires
// once and closes the menu.
//
//	items := []shade.MenuItem{{Label: "Cut"}, {Label: "Copy"}, {Separator: true}, {Label: "Paste"}}
//	if i := shade.NewDropdownMenu("edit").Items(items).Show(ctx, ctx.Button("Edit")); i >= 0 {
//		apply(items[i])
//	}
type DropdownMenu struct {
	id    ID
	width float32
	items []MenuItem
}

// NewDropdownMenu creates a dropdown menu keyed by seed.
func NewDropdownMenu(seed string) *DropdownMenu {
	return &DropdownMenu{id: NewID(seed), width: 180}
}

// Width sets the menu width (default 180).
func (m *DropdownMenu) Width(w float32) *DropdownMenu {
	m.width = w
	return m
}

// Items sets the menu entries.
func (m *DropdownMenu) Items(items []MenuItem) *DropdownMenu {
	m.items = items
	return m
}

// Show applies this frame's open/close signals and, while open, paints the
// menu below the trigger. Returns the index of the activated item, or -1.
// Activation closes the menu.
func (m *DropdownMenu) Show(ctx *Context, trigger Trigger) int {
	f := ctx.resolveOverlay(m.id, trigger)
	if !f.open {
		ctx.setOverlayOpen(m.id, false)
		return -1
	}

	pos := ctx.anchorPos(trigger.Rect)
	activated := ctx.menuRows(m.id, pos, m.width, m.items)

	ctx.setOverlayOpen(m.id, activated < 0)
	ctx.WantCaptureKeyboard = true
	return activated
}

// menuRows paints a panel of menu items at pos and returns the index of the
// item clicked this frame, or -1. Shared by dropdown and context menus.
func (ctx *Context) menuRows(id ID, pos Vec2, width float32, items []MenuItem) int {
	activated := -1
	ctx.paintAnchored(id, pos, width, func(ctx *Context) {
		theme := ctx.Theme()
		for i, item := range items {
			if item.Separator {
				ctx.Separator(width - theme.PanelPadding*2)
				continue
			}
			if item.Disabled {
				ctx.TextMuted(item.Label)
				continue
			}
			if ctx.Selectable(item.Label, false, width-theme.PanelPadding*2) {
				activated = i
			}
		}
	})
	return activated
}

// selectState is the per-instance dropdown state for Select.
type selectState struct {
	KeyboardIndex int
}

// Select draws a selection dropdown: a header box showing the current choice
// and, while open, a list of options below it. Returns true when the
// selection changed this frame.
//
// The open list supports mouse choice and Up/Down/Enter keyboard navigation;
// Escape or a click elsewhere dismisses it without changing the selection.
//
//	items := []string{"Low", "Medium", "High"}
//	if ctx.Select("Quality", &quality, items) {
//		applyQuality(quality)
//	}
func (ctx *Context) Select(label string, selectedIndex *int, items []string) bool {
	id := NewID(label)
	theme := ctx.Theme()
	pad := theme.ButtonPadding

	labelWidth := float32(0)
	if label != "" {
		labelWidth = ctx.MeasureText(label).X + theme.ItemSpacing
	}

	// Width fits the longest option plus the arrow.
	width := float32(150)
	for _, item := range items {
		w := ctx.MeasureText(item).X + pad*2 + 20
		if w > width {
			width = w
		}
	}

	h := ctx.lineHeight() + pad*2
	pos := ctx.cursor

	if label != "" {
		ctx.addText(pos.X, pos.Y+(h-ctx.lineHeight())/2, label, theme.TextColor)
	}

	header := Rect{X: pos.X + labelWidth, Y: pos.Y, W: width, H: h}
	hovered := ctx.isHovered(header)
	clicked := ctx.isClicked(header)
	wasOpen := Get(ctx.Store(), id.Role("open"), false)

	bg := theme.ButtonColor
	if hovered || wasOpen {
		bg = theme.ButtonHoveredColor
	}
	ctx.draw().AddRect(header.X, header.Y, header.W, header.H, bg)
	ctx.draw().AddRectOutline(header.X, header.Y, header.W, header.H, theme.InputBorderColor, theme.BorderSize)

	if *selectedIndex >= 0 && *selectedIndex < len(items) {
		ctx.addText(header.X+pad, header.Y+(h-ctx.lineHeight())/2, items[*selectedIndex], theme.TextColor)
	}

	// Arrow points down when closed, up when open.
	arrowSize := float32(8)
	ax := header.X + width - pad - arrowSize
	ay := header.Y + h/2
	if wasOpen {
		ctx.draw().AddTriangle(ax+arrowSize/2, ay-arrowSize/4, ax, ay+arrowSize/4, ax+arrowSize, ay+arrowSize/4, theme.ArrowColor)
	} else {
		ctx.draw().AddTriangle(ax+arrowSize/2, ay+arrowSize/4, ax, ay-arrowSize/4, ax+arrowSize, ay-arrowSize/4, theme.ArrowColor)
	}

	trigger := Trigger{ID: id, Rect: header, Clicked: clicked, Hovered: hovered}
	f := ctx.resolveOverlay(id, trigger)

	changed := false
	if f.open {
		st := Get(ctx.Store(), id.Role("nav"), selectState{KeyboardIndex: *selectedIndex})
		if f.justOpened {
			st.KeyboardIndex = *selectedIndex
		}

		if ctx.Input != nil {
			if ctx.Input.KeyRepeated(KeyUp) && st.KeyboardIndex > 0 {
				st.KeyboardIndex--
			}
			if ctx.Input.KeyRepeated(KeyDown) && st.KeyboardIndex < len(items)-1 {
				st.KeyboardIndex++
			}
			if !f.justOpened && ctx.Input.KeyPressed(KeyEnter) {
				if st.KeyboardIndex >= 0 && st.KeyboardIndex < len(items) {
					if st.KeyboardIndex != *selectedIndex {
						*selectedIndex = st.KeyboardIndex
						changed = true
					}
					f.open = false
				}
			}
		}

		if f.open {
			listPos := ctx.anchorPos(header)
			ctx.paintAnchored(id, listPos, width, func(ctx *Context) {
				for i, item := range items {
					sel := i == *selectedIndex || i == st.KeyboardIndex
					if ctx.Selectable(item, sel, width-theme.PanelPadding*2) {
						if i != *selectedIndex {
							*selectedIndex = i
							changed = true
						}
						f.open = false
					}
				}
			})
			ctx.WantCaptureKeyboard = true
		}

		Set(ctx.Store(), id.Role("nav"), st)
	}
	ctx.setOverlayOpen(id, f.open)

	if hovered {
		ctx.WantCaptureMouse = true
	}
	ctx.advanceCursor(Vec2{X: labelWidth + width, Y: h})
	return changed
}
