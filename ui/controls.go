package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var (
	toggleOn  = rl.Color{R: 100, G: 200, B: 100, A: 255}
	toggleOff = rl.Color{R: 80, G: 80, B: 80, A: 255}
	keyColor  = rl.Color{R: 150, G: 150, B: 150, A: 255}
)

// ControlsPanel lists the overlays by category with their keys and state.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a hidden controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{renderer: NewRenderer(), x: x, y: y, width: width}
}

// SetPosition moves the panel.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x, c.y = x, y
}

// IsVisible reports whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle shows or hides the panel and returns the new state.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Height returns the panel height for the overlays in reg.
func (c *ControlsPanel) Height(reg *OverlayRegistry) int32 {
	t := c.renderer.Theme
	rows := int32(len(reg.All()))
	cats := int32(len(reg.Categories()))
	return t.Padding*2 + (t.LineHeight+4)*(cats+1) + t.LineHeight*rows
}

// Draw renders the panel and returns the Y below it. A hidden panel draws
// nothing and returns its own Y.
func (c *ControlsPanel) Draw(reg *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}
	r := c.renderer
	t := r.Theme

	r.DrawPanel(c.x, c.y, c.width, c.Height(reg))
	x := c.x + t.Padding
	y := c.y + t.Padding

	rl.DrawText("Overlays", x, y, t.HeaderFontSize+2, rl.White)
	y += t.LineHeight + 4

	for _, cat := range reg.Categories() {
		rl.DrawText(categoryLabel(cat), x, y, t.HeaderFontSize, t.SectionHeader)
		y += t.LineHeight
		for _, d := range reg.ByCategory(cat) {
			c.drawToggle(x, y, d, reg.IsEnabled(d.ID))
			y += t.LineHeight
		}
		y += 4
	}
	return c.y + c.Height(reg)
}

func (c *ControlsPanel) drawToggle(x, y int32, d OverlayDescriptor, on bool) {
	t := c.renderer.Theme
	box, name := toggleOff, t.LabelColor
	if on {
		box, name = toggleOn, rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, box)
	rl.DrawText(d.Name, x+14, y, t.FontSize, name)

	if d.KeyLabel != "" {
		key := fmt.Sprintf("[%s]", d.KeyLabel)
		right := c.x + c.width - t.Padding
		rl.DrawText(key, right-rl.MeasureText(key, t.FontSize), y, t.FontSize, keyColor)
	}
}

// categoryLabel capitalises a category name for display.
func categoryLabel(cat string) string {
	if cat == "" {
		return "Other"
	}
	return strings.ToUpper(cat[:1]) + cat[1:]
}
