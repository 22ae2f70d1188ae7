package assets

import (
	"path/filepath"
	"testing"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
)

func TestSlotFor(t *testing.T) {
	tests := []struct {
		kind  components.Kind
		stage systems.GrowthStage
		want  Slot
	}{
		{components.KindSheep, systems.StageLamb, SlotLamb},
		{components.KindSheep, systems.StageYoung, SlotYoung},
		{components.KindSheep, systems.StageJuvenile, SlotJuvenile},
		{components.KindSheep, systems.StageAdolescent, SlotSheep},
		{components.KindSheep, systems.StageMature, SlotSheep},
		{components.KindWolf, systems.StageLamb, SlotWolf},
		{components.KindShepherd, systems.StageMature, SlotShepherd},
		{components.KindShepherdDog, systems.StageMature, SlotDog},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String()+"/"+tt.stage.String(), func(t *testing.T) {
			if got := SlotFor(tt.kind, tt.stage); got != tt.want {
				t.Errorf("SlotFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCatalog_ResolveDefaults(t *testing.T) {
	cat := NewCatalog(config.Defaults().Sprites)

	id, w, h := cat.Resolve(components.KindSheep, systems.StageMature)
	if w != 40 || h != 30 {
		t.Errorf("adult sheep size = %dx%d, want 40x30", w, h)
	}
	if slot, ok := SlotOf(id); !ok || slot != SlotSheep {
		t.Errorf("SlotOf(%d) = %v, %v", id, slot, ok)
	}

	_, lw, _ := cat.Resolve(components.KindSheep, systems.StageLamb)
	if lw >= w {
		t.Errorf("lamb width %d should be smaller than adult %d", lw, w)
	}

	if got := cat.Sprite(SlotWolf).Path; got != filepath.Join("media", "wolf.png") {
		t.Errorf("wolf path = %q", got)
	}
}

func TestCatalog_SetSize(t *testing.T) {
	cat := NewCatalog(config.Defaults().Sprites)
	cat.SetSize(SlotDog, 50, 40)
	if _, w, h := cat.Resolve(components.KindShepherdDog, systems.StageMature); w != 50 || h != 40 {
		t.Errorf("dog size = %dx%d, want 50x40", w, h)
	}
}

func TestSpriteIDs_NonZeroAndDistinct(t *testing.T) {
	seen := map[components.SpriteID]Slot{}
	for s := Slot(0); s < NumSlots; s++ {
		id := s.ID()
		if id == 0 {
			t.Fatalf("slot %v has zero id", s)
		}
		if prev, dup := seen[id]; dup {
			t.Fatalf("slots %v and %v share id %d", prev, s, id)
		}
		seen[id] = s
	}
	if _, ok := SlotOf(0); ok {
		t.Error("SlotOf(0) should fail")
	}
}
