package ground

import (
	"math"
	"testing"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// eventLog records every event it receives.
type eventLog struct {
	events []telemetry.Event
}

func (l *eventLog) Record(ev telemetry.Event) {
	l.events = append(l.events, ev)
}

func (l *eventLog) count(typ telemetry.EventType) int {
	n := 0
	for _, ev := range l.events {
		if ev.Type == typ {
			n++
		}
	}
	return n
}

// drawLog counts sprite draws.
type drawLog struct {
	calls int
	zero  int
}

func (d *drawLog) DrawSprite(sprite components.SpriteID, _ components.Position, _, _ int) {
	d.calls++
	if sprite == 0 {
		d.zero++
	}
}

type fixedClock struct{ now int64 }

func (c *fixedClock) Now() int64 { return c.now }

// testOptions returns the default tuning with a seeded source.
func testOptions() Options {
	opts := OptionsFromConfig(config.Defaults())
	opts.Source = systems.NewSeededSource(1)
	return opts
}

// openOptions uses a 1000x1000 field without boundary so entities can sit at the origin.
func openOptions() Options {
	opts := testOptions()
	opts.Field = systems.Field{Width: 1000, Height: 1000}
	return opts
}

// still describes an entity whose target is its own position.
func still(kind components.Kind, x, y int, growth components.Growth) Spawn {
	return Spawn{
		Kind:     kind,
		Position: components.Position{X: x, Y: y},
		Target:   components.Target{X: x, Y: y},
		Growth:   growth,
	}
}

// ---------- Predation ----------

func TestTick_ChaseBoostsAndFleesDirectlyAway(t *testing.T) {
	g := New(openOptions())
	wolf := g.Add(still(components.KindWolf, 0, 0, components.Growth{}))
	sheep := g.Add(still(components.KindSheep, 150, 0, components.Growth{}))

	g.Tick()

	s, ok := g.Get(sheep)
	if !ok {
		t.Fatal("sheep at distance 150 should survive")
	}
	if s.Speed != 2 {
		t.Errorf("sheep speed = %d, want 2", s.Speed)
	}
	if s.Target != (components.Target{X: 250, Y: 0}) {
		t.Errorf("flee target = %v, want {250 0}", s.Target)
	}

	w, _ := g.Get(wolf)
	if w.Speed != 2 {
		t.Errorf("wolf speed = %d, want 2", w.Speed)
	}
	if w.Target != (components.Target{X: 150, Y: 0}) {
		t.Errorf("wolf target = %v, want the sheep at {150 0}", w.Target)
	}
}

func TestTick_ContactEatsSheepThatTick(t *testing.T) {
	log := &eventLog{}
	opts := openOptions()
	opts.Events = log
	g := New(opts)

	g.Add(still(components.KindWolf, 0, 0, components.Growth{}))
	sheep := g.Add(still(components.KindSheep, 15, 0, components.Growth{}))
	if _, w, _ := opts.Sprites.Resolve(components.KindSheep, systems.StageMature); w != 40 {
		t.Fatalf("sheep width = %d, test expects 40", w)
	}

	g.Tick()

	if _, ok := g.Get(sheep); ok {
		t.Fatal("sheep within contact distance should be eaten")
	}
	if g.Count(components.KindSheep) != 0 || g.Len() != 1 {
		t.Errorf("count = %d, len = %d; want 0, 1", g.Count(components.KindSheep), g.Len())
	}
	if log.count(telemetry.EventKill) != 1 {
		t.Errorf("kill events = %d, want 1", log.count(telemetry.EventKill))
	}

	g.Tick()
	for _, v := range g.Snapshot() {
		if v.Kind == components.KindSheep {
			t.Error("eaten sheep reappeared")
		}
	}
}

func TestTick_DeadSheepSkippedByLaterPairs(t *testing.T) {
	log := &eventLog{}
	opts := openOptions()
	opts.Events = log
	g := New(opts)

	g.Add(still(components.KindWolf, 500, 500, components.Growth{}))
	g.Add(still(components.KindSheep, 505, 500, components.Growth{}))
	g.Add(still(components.KindWolf, 510, 500, components.Growth{}))

	g.Tick()

	if got := log.count(telemetry.EventKill); got != 1 {
		t.Errorf("kill events = %d, want 1", got)
	}
	if got := log.count(telemetry.EventChase); got != 1 {
		t.Errorf("chase events = %d, want 1 (second wolf sees no live sheep)", got)
	}
}

func TestTick_WolfPursuesNearestSheep(t *testing.T) {
	tests := []struct {
		name       string
		sheepOrder []int // x positions, added in this order
	}{
		{"nearer first", []int{550, 650}},
		{"farther first", []int{650, 550}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(openOptions())
			wolf := g.Add(still(components.KindWolf, 500, 500, components.Growth{}))
			for _, x := range tt.sheepOrder {
				g.Add(still(components.KindSheep, x, 500, components.Growth{}))
			}

			g.Tick()

			w, _ := g.Get(wolf)
			if w.Target != (components.Target{X: 550, Y: 500}) {
				t.Errorf("wolf target = %v, want the nearest sheep at {550 500}", w.Target)
			}
		})
	}
}

func TestTick_SpeedResetsOutsideChaseRadius(t *testing.T) {
	g := New(openOptions())
	wolf := g.Add(still(components.KindWolf, 0, 0, components.Growth{}))
	sheep := g.Add(still(components.KindSheep, 150, 0, components.Growth{}))

	g.Tick()
	if s, _ := g.Get(sheep); s.Speed != 2 {
		t.Fatalf("sheep speed = %d, want 2 while chased", s.Speed)
	}

	// Carry the sheep far away
	_, pos, target, _, _ := g.entityMapper.Get(sheep)
	*pos = components.Position{X: 900, Y: 900}
	*target = components.Target{X: 900, Y: 900}

	g.Tick()
	s, _ := g.Get(sheep)
	w, _ := g.Get(wolf)
	if s.Speed != 1 || w.Speed != 1 {
		t.Errorf("speeds = %d/%d, want base 1 once out of range", s.Speed, w.Speed)
	}
}

func TestSetChaseRadius(t *testing.T) {
	g := New(openOptions())
	g.Add(still(components.KindWolf, 0, 0, components.Growth{}))
	sheep := g.Add(still(components.KindSheep, 150, 0, components.Growth{}))

	g.SetChaseRadius(100)
	g.Tick()

	if s, _ := g.Get(sheep); s.Speed != 1 {
		t.Errorf("sheep speed = %d, want 1 outside a 100 chase radius", s.Speed)
	}
}

// ---------- Reproduction ----------

func TestTick_MatingProducesOneLamb(t *testing.T) {
	tests := []struct {
		name          string
		policy        systems.MateGrowthPolicy
		parentGrowth  int
		sheepAfterTwo int
	}{
		{"clamp", systems.MateGrowthClamp, 100, 4},
		{"uncapped", systems.MateGrowthUncapped, 101, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &eventLog{}
			opts := openOptions()
			opts.MateGrowth = tt.policy
			opts.Events = log
			g := New(opts)

			g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, true)))
			g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, false)))

			g.Tick()

			if g.Count(components.KindSheep) != 3 {
				t.Fatalf("sheep = %d, want 3", g.Count(components.KindSheep))
			}
			if log.count(telemetry.EventBirth) != 1 {
				t.Fatalf("birth events = %d, want 1", log.count(telemetry.EventBirth))
			}

			lamb := g.Snapshot()[2]
			if lamb.Growth != 1 || lamb.Stage != systems.StageLamb {
				t.Errorf("lamb growth = %d stage %v, want 1 lamb", lamb.Growth, lamb.Stage)
			}
			if lamb.Position != (components.Position{X: 300, Y: 300}) {
				t.Errorf("lamb at %v, want the first parent's position", lamb.Position)
			}
			if _, w, _ := opts.Sprites.Resolve(components.KindSheep, systems.StageLamb); lamb.W != w {
				t.Errorf("lamb width = %d, want smallest sprite width %d", lamb.W, w)
			}

			for _, parent := range g.Snapshot()[:2] {
				if parent.Growth != tt.parentGrowth {
					t.Errorf("parent %d growth = %d, want %d", parent.ID, parent.Growth, tt.parentGrowth)
				}
			}

			g.Tick()
			if got := g.Count(components.KindSheep); got != tt.sheepAfterTwo {
				t.Errorf("sheep after two ticks = %d, want %d", got, tt.sheepAfterTwo)
			}
		})
	}
}

func TestTick_SameSexDoesNotMate(t *testing.T) {
	g := New(openOptions())
	g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, true)))
	g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, true)))

	g.Tick()

	if g.Count(components.KindSheep) != 2 {
		t.Errorf("sheep = %d, want 2", g.Count(components.KindSheep))
	}
}

func TestTick_MaxSheepCapsBirths(t *testing.T) {
	log := &eventLog{}
	opts := openOptions()
	opts.MaxSheep = 2
	opts.Events = log
	g := New(opts)

	g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, true)))
	g.Add(still(components.KindSheep, 300, 300, systems.NewAdult(0, false)))

	g.Tick()

	if g.Count(components.KindSheep) != 2 {
		t.Errorf("sheep = %d, want 2 at the cap", g.Count(components.KindSheep))
	}
	if log.count(telemetry.EventBirthCapped) != 1 {
		t.Errorf("capped events = %d, want 1", log.count(telemetry.EventBirthCapped))
	}
}

func TestTick_EatenSheepFreeRoomUnderCap(t *testing.T) {
	log := &eventLog{}
	opts := openOptions()
	opts.MaxSheep = 3
	opts.Events = log
	g := New(opts)

	g.Add(still(components.KindWolf, 500, 500, components.Growth{}))
	g.Add(still(components.KindSheep, 505, 500, components.Growth{}))
	g.Add(still(components.KindSheep, 100, 100, systems.NewAdult(0, true)))
	g.Add(still(components.KindSheep, 100, 100, systems.NewAdult(0, false)))

	g.Tick()

	if log.count(telemetry.EventKill) != 1 {
		t.Fatalf("kill events = %d, want 1", log.count(telemetry.EventKill))
	}
	if log.count(telemetry.EventBirth) != 1 || log.count(telemetry.EventBirthCapped) != 0 {
		t.Errorf("births = %d, capped = %d; want 1, 0", log.count(telemetry.EventBirth), log.count(telemetry.EventBirthCapped))
	}
	if got := g.Count(components.KindSheep); got != 3 {
		t.Errorf("sheep = %d, want 3", got)
	}
}

// ---------- Invariants over long runs ----------

func TestTick_LongRunInvariants(t *testing.T) {
	log := &eventLog{}
	opts := testOptions()
	opts.MaxSheep = 60
	opts.Events = log
	g := New(opts)
	g.Populate(20, 4, true)

	f := opts.Field
	eaten := map[uint32]bool{}
	seen := 0

	for tick := 0; tick < 1500; tick++ {
		g.Tick()

		for _, ev := range log.events[seen:] {
			if ev.Type == telemetry.EventKill {
				eaten[ev.TargetID] = true
			}
		}
		seen = len(log.events)

		for _, v := range g.Snapshot() {
			if eaten[v.ID] {
				t.Fatalf("tick %d: eaten sheep %d is back", tick, v.ID)
			}
			if v.Speed != opts.BaseSpeed && v.Speed != opts.BoostSpeed {
				t.Fatalf("tick %d: %v %d speed %d", tick, v.Kind, v.ID, v.Speed)
			}
			if !v.Kind.Autonomous() {
				continue
			}
			if v.Position.X < f.Min(systems.Horizontal) || v.Position.X > f.Max(systems.Horizontal) ||
				v.Position.Y < f.Min(systems.Vertical) || v.Position.Y > f.Max(systems.Vertical) {
				t.Fatalf("tick %d: %v %d at %v left the field", tick, v.Kind, v.ID, v.Position)
			}
			if v.Kind == components.KindSheep && (v.Growth < 1 || v.Growth > systems.MaxGrowth) {
				t.Fatalf("tick %d: sheep %d growth %d", tick, v.ID, v.Growth)
			}
		}
		if g.Count(components.KindSheep) > opts.MaxSheep {
			t.Fatalf("tick %d: %d sheep above the cap", tick, g.Count(components.KindSheep))
		}
	}

	if g.CurrentTick() != 1500 {
		t.Errorf("CurrentTick = %d, want 1500", g.CurrentTick())
	}
	if len(g.Growths()) != g.Count(components.KindSheep) {
		t.Errorf("growth samples = %d, sheep = %d", len(g.Growths()), g.Count(components.KindSheep))
	}
}

// ---------- Collaborators ----------

func TestTick_RendersEveryEntity(t *testing.T) {
	draws := &drawLog{}
	opts := testOptions()
	opts.Renderer = draws
	g := New(opts)
	g.Populate(5, 2, true)

	g.Tick()

	if draws.calls != 9 {
		t.Errorf("draw calls = %d, want 9", draws.calls)
	}
	if draws.zero != 0 {
		t.Errorf("%d draws without a sprite", draws.zero)
	}
}

func TestTick_GrowthFollowsClock(t *testing.T) {
	clock := &fixedClock{}
	opts := openOptions()
	opts.Clock = clock
	g := New(opts)
	lamb := g.Add(still(components.KindSheep, 300, 300, systems.NewOffspring(0, true)))

	clock.now = 3
	g.Tick()
	if v, _ := g.Get(lamb); v.Growth != 1 {
		t.Errorf("growth at clock 3 = %d, want 1", v.Growth)
	}

	clock.now = 4
	g.Tick()
	if v, _ := g.Get(lamb); v.Growth != 2 {
		t.Errorf("growth at clock 4 = %d, want 2", v.Growth)
	}
}

func TestNew_PanicsOnInvalidOptions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"nil source", func(o *Options) { o.Source = nil }},
		{"nil sprites", func(o *Options) { o.Sprites = nil }},
		{"negative radius", func(o *Options) { o.ChaseRadius = -1 }},
		{"boundary too wide", func(o *Options) { o.Field.Boundary = 400 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			opts := testOptions()
			tt.mutate(&opts)
			New(opts)
		})
	}
}

// ---------- Shepherd and dog ----------

func TestHandleInput_MovesShepherdAndDogFollows(t *testing.T) {
	opts := testOptions()
	g := New(opts)
	g.Populate(0, 0, true)

	g.HandleInput(systems.InputEvent{Key: systems.KeyRight, Down: true})
	g.Tick()

	shep, ok := g.Shepherd()
	if !ok {
		t.Fatal("no shepherd")
	}
	want := components.Position{X: opts.ShepherdStart.X + opts.ShepherdStep, Y: opts.ShepherdStart.Y}
	if shep.Position != want {
		t.Errorf("shepherd at %v, want %v", shep.Position, want)
	}

	g.HandleInput(systems.InputEvent{Key: systems.KeyRight, Down: false})
	for i := 0; i < 50; i++ {
		g.Tick()
	}
	shep, _ = g.Shepherd()
	if shep.Position != want {
		t.Errorf("shepherd moved to %v after key release", shep.Position)
	}

	for _, v := range g.Snapshot() {
		if v.Kind != components.KindShepherdDog {
			continue
		}
		d := systems.Distance(v.Position, shep.Position)
		if math.Abs(d-float64(shep.W)/2) > 1 {
			t.Errorf("dog %v is %.2f from shepherd, want ~%d", v.Position, d, shep.W/2)
		}
		if v.Target != components.Target(v.Position) {
			t.Errorf("dog target %v does not mirror its position %v", v.Target, v.Position)
		}
	}
}

func TestPopulate_Order(t *testing.T) {
	g := New(testOptions())
	g.Populate(3, 2, true)

	want := []components.Kind{
		components.KindShepherd, components.KindShepherdDog,
		components.KindSheep, components.KindSheep, components.KindSheep,
		components.KindWolf, components.KindWolf,
	}
	snap := g.Snapshot()
	if len(snap) != len(want) {
		t.Fatalf("len = %d, want %d", len(snap), len(want))
	}
	for i, v := range snap {
		if v.Kind != want[i] {
			t.Errorf("entity %d kind = %v, want %v", i, v.Kind, want[i])
		}
		if v.Kind == components.KindSheep && v.Growth != systems.MaxGrowth {
			t.Errorf("start-up sheep growth = %d, want mature", v.Growth)
		}
	}
	if g.Counts()[components.KindSheep] != 3 {
		t.Errorf("Counts = %v", g.Counts())
	}
}
