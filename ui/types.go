// Package ui draws the pasture's HUD, overlay toggles and entity inspector
// on top of the raylib window. Panels are built from field descriptors.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// WidgetType selects how a field is drawn.
type WidgetType int

const (
	WidgetText WidgetType = iota // label and formatted value
	WidgetBar                    // label and a [0, 1] bar
)

// FieldDescriptor describes one inspector row. Values are read from the
// panel's data with Getter (numeric, formatted with Format) or TextGetter.
type FieldDescriptor struct {
	ID         string
	Label      string
	Widget     WidgetType
	Format     string
	Visible    func(any) bool // nil = always
	Getter     func(any) float32
	TextGetter func(any) string
}

// SectionDescriptor groups fields under a title.
type SectionDescriptor struct {
	ID      string
	Title   string
	Fields  []FieldDescriptor
	Visible func(any) bool // nil = always
}

// Theme holds colors and metrics shared by all panels.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme is a dark green theme that reads well over grass.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 30, B: 20, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 80, B: 60, A: 255},
		SectionHeader:  rl.Color{R: 240, G: 210, B: 90, A: 255},
		LabelColor:     rl.LightGray,
		ValueColor:     rl.RayWhite,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 230, G: 230, B: 210, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
