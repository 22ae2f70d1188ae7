package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/ground"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// ---------- overlays ----------

func TestOverlayRegistry_Defaults(t *testing.T) {
	reg := NewOverlayRegistry()

	if len(reg.All()) != 5 {
		t.Fatalf("registered %d overlays, want 5", len(reg.All()))
	}
	if got := reg.Categories(); len(got) != 2 || got[0] != "field" || got[1] != "debug" {
		t.Errorf("Categories() = %v", got)
	}
	if len(reg.EnabledOverlays()) != 0 {
		t.Error("overlays should start disabled")
	}
}

func TestOverlayRegistry_HandleKeyPress(t *testing.T) {
	reg := NewOverlayRegistry()

	id, on, ok := reg.HandleKeyPress(rl.KeyC)
	if !ok || id != OverlayChaseRadius || !on {
		t.Fatalf("HandleKeyPress(C) = %v, %v, %v", id, on, ok)
	}
	if !reg.IsEnabled(OverlayChaseRadius) {
		t.Error("chase radius overlay not enabled")
	}

	if _, on, _ := reg.HandleKeyPress(rl.KeyC); on {
		t.Error("second press should disable")
	}
	if _, _, ok := reg.HandleKeyPress(rl.KeyW); ok {
		t.Error("W moves the shepherd and must not toggle an overlay")
	}
}

func TestOverlayRegistry_Register(t *testing.T) {
	reg := NewOverlayRegistry()
	reg.Toggle(OverlayTargets)

	reg.Register(OverlayDescriptor{ID: "herd", Category: CategoryField, On: true})
	reg.Register(OverlayDescriptor{ID: OverlayTargets, Name: "Walk Targets", Category: CategoryDebug})

	if len(reg.All()) != 6 {
		t.Fatalf("registered %d overlays, want 6", len(reg.All()))
	}
	if reg.IsEnabled(OverlayTargets) {
		t.Error("re-registering should reset the overlay's state")
	}
	if got := reg.EnabledOverlays(); len(got) != 1 || got[0] != "herd" {
		t.Errorf("EnabledOverlays() = %v", got)
	}
	if got := reg.ByCategory(CategoryField); len(got) != 4 || got[3].ID != "herd" {
		t.Errorf("ByCategory(field) = %v", got)
	}
	if reg.Toggle("missing") {
		t.Error("unknown overlay should stay off")
	}
}

// ---------- picking ----------

func TestPick(t *testing.T) {
	views := []ground.EntityView{
		{ID: 1, Position: components.Position{X: 10, Y: 10}, W: 40, H: 30},
		{ID: 2, Position: components.Position{X: 30, Y: 20}, W: 40, H: 30},
	}

	tests := []struct {
		name   string
		x, y   int
		wantID uint32
		wantOK bool
	}{
		{"first only", 12, 12, 1, true},
		{"overlap picks topmost", 35, 25, 2, true},
		{"right edge excluded", 70, 25, 0, false},
		{"miss", 500, 500, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Pick(views, tt.x, tt.y)
			if ok != tt.wantOK || v.ID != tt.wantID {
				t.Errorf("Pick(%d, %d) = #%d, %v; want #%d, %v", tt.x, tt.y, v.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

// ---------- inspector layout ----------

func fieldByID(t *testing.T, sectionID, fieldID string) (SectionDescriptor, FieldDescriptor) {
	t.Helper()
	for _, sd := range inspectorSections {
		if sd.ID != sectionID {
			continue
		}
		for _, fd := range sd.Fields {
			if fd.ID == fieldID {
				return sd, fd
			}
		}
	}
	t.Fatalf("no field %s/%s", sectionID, fieldID)
	return SectionDescriptor{}, FieldDescriptor{}
}

func TestInspectorSections_Text(t *testing.T) {
	data := InspectorData{
		View: ground.EntityView{
			ID:     7,
			Kind:   components.KindSheep,
			Growth: 40,
			Female: true,
			Stage:  systems.StageFor(40),
		},
		Lifetime: &telemetry.LifetimeStats{BirthTick: 10, Children: 2},
		Tick:     110,
	}

	tests := []struct {
		section, field, want string
	}{
		{"entity", "id", "sheep #7"},
		{"growth", "sex", "ewe"},
		{"lifetime", "age", "100 ticks"},
		{"lifetime", "children", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			_, fd := fieldByID(t, tt.section, tt.field)
			if got := FieldText(fd, data); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInspectorSections_Visibility(t *testing.T) {
	wolf := InspectorData{View: ground.EntityView{Kind: components.KindWolf}}
	growth, _ := fieldByID(t, "growth", "stage")
	lifetime, _ := fieldByID(t, "lifetime", "age")

	if growth.Visible(wolf) {
		t.Error("growth section shown for a wolf")
	}
	if lifetime.Visible(wolf) {
		t.Error("lifetime section shown without stats")
	}

	r := NewRenderer()
	if h := r.SectionHeight(growth, wolf); h != 0 {
		t.Errorf("hidden section height = %d, want 0", h)
	}

	_, kills := fieldByID(t, "lifetime", "kills")
	wolf.Lifetime = &telemetry.LifetimeStats{Kills: 3}
	if !kills.Visible(wolf) || FieldText(kills, wolf) != "3" {
		t.Errorf("wolf kills: visible=%v text=%q", kills.Visible(wolf), FieldText(kills, wolf))
	}
}

// ---------- controls ----------

func TestCategoryLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{CategoryField, "Field"},
		{CategoryDebug, "Debug"},
		{"", "Other"},
	}
	for _, tt := range tests {
		if got := categoryLabel(tt.in); got != tt.want {
			t.Errorf("categoryLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestControlsPanel_HiddenDrawsNothing(t *testing.T) {
	c := NewControlsPanel(10, 100, 200)
	reg := NewOverlayRegistry()

	if c.IsVisible() {
		t.Fatal("panel should start hidden")
	}
	if y := c.Draw(reg); y != 100 {
		t.Errorf("hidden Draw() = %d, want 100", y)
	}

	// title + 2 category headers (each +4 gap) and 5 rows
	th := DefaultTheme()
	want := th.Padding*2 + (th.LineHeight+4)*3 + th.LineHeight*5
	if got := c.Height(reg); got != want {
		t.Errorf("Height() = %d, want %d", got, want)
	}
}
