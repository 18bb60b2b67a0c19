package shade

// Button draws a push button at the cursor and returns its Trigger, so the
// result can feed an overlay directly:
//
//	if NewPopover("menu").Show(ctx, ctx.Button("Open"), content) { ... }
func (ctx *Context) Button(label string) Trigger {
	id := NewID(label)
	theme := ctx.Theme()
	pad := theme.ButtonPadding

	size := ctx.MeasureText(label)
	rect := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: size.X + pad*2,
		H: size.Y + pad*2,
	}

	hovered := ctx.isHovered(rect)
	clicked := hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft)

	bg := theme.ButtonColor
	if hovered {
		bg = theme.ButtonHoveredColor
		if ctx.Input != nil && ctx.Input.MouseDown(MouseButtonLeft) {
			bg = theme.ButtonActiveColor
		}
	}

	ctx.draw().AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	ctx.addText(rect.X+pad, rect.Y+pad, label, theme.TextColor)

	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})

	if hovered {
		ctx.WantCaptureMouse = true
	}

	return Trigger{ID: id, Rect: rect, Clicked: clicked, Hovered: hovered}
}

// Selectable draws a full-width highlightable row, the building block of menu
// and list items. Returns true when the row is clicked.
func (ctx *Context) Selectable(label string, selected bool, width float32) bool {
	theme := ctx.Theme()
	pad := theme.ButtonPadding

	rect := Rect{
		X: ctx.cursor.X,
		Y: ctx.cursor.Y,
		W: width,
		H: ctx.lineHeight() + pad*2,
	}

	hovered := ctx.isHovered(rect)
	clicked := hovered && ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft)

	textColor := theme.TextColor
	if selected {
		ctx.draw().AddRect(rect.X, rect.Y, rect.W, rect.H, theme.SelectedBgColor)
		textColor = theme.SelectedTextColor
	} else if hovered {
		ctx.draw().AddRect(rect.X, rect.Y, rect.W, rect.H, theme.HoveredBgColor)
	}
	ctx.addText(rect.X+pad, rect.Y+pad, label, textColor)

	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})

	if hovered {
		ctx.WantCaptureMouse = true
	}

	return clicked
}
