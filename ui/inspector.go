package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/ground"
	"github.com/pthm-cable/pasture/telemetry"
)

// InspectorData holds everything the inspector shows about one entity.
type InspectorData struct {
	View     ground.EntityView
	Lifetime *telemetry.LifetimeStats // nil if untracked
	Tick     int64
}

func inspected(data any) InspectorData {
	return data.(InspectorData)
}

func isSheep(data any) bool {
	return inspected(data).View.Kind == components.KindSheep
}

func hasLifetime(data any) bool {
	return inspected(data).Lifetime != nil
}

// inspectorSections describes the inspector layout.
var inspectorSections = []SectionDescriptor{
	{
		ID:    "entity",
		Title: "Entity",
		Fields: []FieldDescriptor{
			{ID: "id", Label: "ID", Widget: WidgetText, TextGetter: func(d any) string {
				v := inspected(d).View
				return fmt.Sprintf("%s #%d", v.Kind, v.ID)
			}},
			{ID: "pos", Label: "Position", Widget: WidgetText, TextGetter: func(d any) string {
				v := inspected(d).View
				return fmt.Sprintf("(%d, %d)", v.Position.X, v.Position.Y)
			}},
			{ID: "target", Label: "Target", Widget: WidgetText, TextGetter: func(d any) string {
				v := inspected(d).View
				return fmt.Sprintf("(%d, %d)", v.Target.X, v.Target.Y)
			}},
			{ID: "speed", Label: "Speed", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 {
				return float32(inspected(d).View.Speed)
			}},
		},
	},
	{
		ID:      "growth",
		Title:   "Growth",
		Visible: isSheep,
		Fields: []FieldDescriptor{
			{ID: "growth", Label: "Growth", Widget: WidgetBar, Getter: func(d any) float32 {
				return float32(inspected(d).View.Growth) / 100
			}},
			{ID: "stage", Label: "Stage", Widget: WidgetText, TextGetter: func(d any) string {
				return inspected(d).View.Stage.String()
			}},
			{ID: "sex", Label: "Sex", Widget: WidgetText, TextGetter: func(d any) string {
				if inspected(d).View.Female {
					return "ewe"
				}
				return "ram"
			}},
		},
	},
	{
		ID:      "lifetime",
		Title:   "Lifetime",
		Visible: hasLifetime,
		Fields: []FieldDescriptor{
			{ID: "age", Label: "Age", Widget: WidgetText, TextGetter: func(d any) string {
				data := inspected(d)
				return fmt.Sprintf("%d ticks", data.Tick-data.Lifetime.BirthTick)
			}},
			{ID: "chases", Label: "Chases", Widget: WidgetText, Format: "%.0f", Getter: func(d any) float32 {
				return float32(inspected(d).Lifetime.Chases)
			}},
			{ID: "kills", Label: "Kills", Widget: WidgetText, Format: "%.0f",
				Visible: func(d any) bool { return inspected(d).View.Kind == components.KindWolf },
				Getter: func(d any) float32 {
					return float32(inspected(d).Lifetime.Kills)
				}},
			{ID: "children", Label: "Lambs", Widget: WidgetText, Format: "%.0f", Visible: isSheep,
				Getter: func(d any) float32 {
					return float32(inspected(d).Lifetime.Children)
				}},
		},
	},
}

// Inspector renders the entity inspection panel.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewInspector creates a new inspector panel.
func NewInspector(x, y, width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the inspector position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the inspector panel and highlights the entity.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	padding := r.Theme.Padding

	v := data.View
	rl.DrawRectangleLines(int32(v.Position.X), int32(v.Position.Y), int32(v.W), int32(v.H), rl.Yellow)

	panelHeight := padding * 2
	for _, sd := range inspectorSections {
		panelHeight += r.SectionHeight(sd, data)
	}
	r.DrawPanel(ins.x, ins.y, ins.width, panelHeight)

	y := ins.y + padding
	for _, sd := range inspectorSections {
		y = r.DrawSection(ins.x+padding, y, sd, data, ins.width-padding*2)
	}
	return y
}

// Pick returns the entity whose sprite covers (x, y). Later views are drawn
// on top, so they win.
func Pick(views []ground.EntityView, x, y int) (ground.EntityView, bool) {
	for i := len(views) - 1; i >= 0; i-- {
		v := views[i]
		if x >= v.Position.X && x < v.Position.X+v.W &&
			y >= v.Position.Y && y < v.Position.Y+v.H {
			return v, true
		}
	}
	return ground.EntityView{}, false
}
