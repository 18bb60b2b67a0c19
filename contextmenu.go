package shade

// ContextMenu is an action menu opened by right-clicking a target region,
// painted at the pointer position rather than anchored to a trigger.
//
//	canvas := shade.Rect{X: 0, Y: 0, W: 400, H: 300}
//	if i := shade.NewContextMenu("canvas").Items(items).Show(ctx, canvas); i >= 0 {
//		apply(items[i])
//	}
type ContextMenu struct {
	id    ID
	width float32
	items []MenuItem
}

// NewContextMenu creates a context menu keyed by seed.
func NewContextMenu(seed string) *ContextMenu {
	return &ContextMenu{id: NewID(seed), width: 180}
}

// Width sets the menu width (default 180).
func (m *ContextMenu) Width(w float32) *ContextMenu {
	m.width = w
	return m
}

// Items sets the menu entries.
func (m *ContextMenu) Items(items []MenuItem) *ContextMenu {
	m.items = items
	return m
}

// Show opens the menu when the secondary button is pressed inside target and
// paints it at the press position while open. A repeated right click moves
// the menu to the new pointer position. Returns the index of the activated
// item, or -1.
func (m *ContextMenu) Show(ctx *Context, target Rect) int {
	openKey := m.id.Role("open")
	posKey := m.id.Role("pos")

	open := Get(ctx.Store(), openKey, false)
	justOpened := false

	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonRight) && ctx.isHovered(target) {
		open = true
		justOpened = true
		Set(ctx.Store(), posKey, ctx.Input.PointerPos())
	}

	if open && !justOpened {
		area := Get(ctx.Store(), m.id.Role("area"), Rect{})
		if ctx.outsideRelease(area) {
			open = false
		}
	}
	if open && ctx.escapePressed() {
		open = false
	}

	if !open {
		ctx.setOverlayOpen(m.id, false)
		return -1
	}

	pos := Get(ctx.Store(), posKey, Vec2{})
	activated := ctx.menuRows(m.id, pos, m.width, m.items)

	ctx.setOverlayOpen(m.id, activated < 0)
	ctx.WantCaptureKeyboard = true
	return activated
}
