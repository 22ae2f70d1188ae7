package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const sectionGap = 4

// Renderer draws panels and descriptor-driven sections with one theme.
type Renderer struct {
	Theme Theme
}

// NewRenderer returns a renderer using DefaultTheme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel fills and outlines a panel.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws title and returns the next row's Y.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws "label: value" and returns the next row's Y.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	t := r.Theme
	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawText(value, x+t.LabelWidth, y, t.FontSize, t.ValueColor)
	return y + t.LineHeight
}

// DrawBar draws a labelled bar for value in [0, 1] with its percentage.
func (r *Renderer) DrawBar(x, y int32, label string, value float32, width int32) int32 {
	t := r.Theme
	value = max(0, min(1, value))
	barX := x + t.LabelWidth
	barW := width - t.LabelWidth - 50

	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawRectangle(barX, y+2, barW, t.BarHeight, t.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barW)*value), t.BarHeight, t.BarFill)
	rl.DrawText(fmt.Sprintf("%.0f%%", value*100), barX+barW+5, y, t.FontSize, t.ValueColor)
	return y + r.rowHeight(WidgetBar)
}

func (r *Renderer) rowHeight(w WidgetType) int32 {
	if w == WidgetBar {
		return r.Theme.LineHeight + 2
	}
	return r.Theme.LineHeight
}

// FieldText returns a field's value as display text.
func FieldText(fd FieldDescriptor, data any) string {
	switch {
	case fd.TextGetter != nil:
		return fd.TextGetter(data)
	case fd.Getter != nil:
		return fmt.Sprintf(fd.Format, fd.Getter(data))
	}
	return ""
}

// DrawField draws one row and returns the next row's Y.
func (r *Renderer) DrawField(x, y int32, fd FieldDescriptor, data any, width int32) int32 {
	if fd.Widget == WidgetBar {
		var v float32
		if fd.Getter != nil {
			v = fd.Getter(data)
		}
		return r.DrawBar(x, y, fd.Label, v, width)
	}
	return r.DrawLabelValue(x, y, fd.Label, FieldText(fd, data))
}

// DrawSection draws the visible rows of sd and returns the Y below it.
// A hidden section draws nothing.
func (r *Renderer) DrawSection(x, y int32, sd SectionDescriptor, data any, width int32) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return y
	}
	if sd.Title != "" {
		y = r.DrawSectionHeader(x, y, sd.Title)
	}
	for _, fd := range sd.Fields {
		if fd.Visible == nil || fd.Visible(data) {
			y = r.DrawField(x, y, fd, data, width)
		}
	}
	return y + sectionGap
}

// SectionHeight returns how far DrawSection would advance Y.
func (r *Renderer) SectionHeight(sd SectionDescriptor, data any) int32 {
	if sd.Visible != nil && !sd.Visible(data) {
		return 0
	}
	var h int32
	if sd.Title != "" {
		h += r.Theme.LineHeight
	}
	for _, fd := range sd.Fields {
		if fd.Visible == nil || fd.Visible(data) {
			h += r.rowHeight(fd.Widget)
		}
	}
	return h + sectionGap
}
