// Package ground runs the pasture: it owns every entity and advances them
// one tick at a time.
package ground

import (
	"fmt"
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Spawn describes an entity to add.
type Spawn struct {
	Kind     components.Kind
	Position components.Position
	Target   components.Target

	// Growth is used for sheep only. A zero Percent adds a mature sheep born
	// at the current tick.
	Growth components.Growth
}

// updater advances one entity during the update phase.
type updater func(g *Ground, e ecs.Entity, now int64)

// Ground is the interaction engine. All mutation happens inside Tick,
// Add and HandleInput; it is not safe for concurrent use.
type Ground struct {
	opts Options

	world *ecs.World

	// Component mappers
	entityMapper *ecs.Map5[
		components.Identity,
		components.Position,
		components.Target,
		components.Motion,
		components.Appearance,
	]
	growthMap    *ecs.Map[components.Growth]
	orbitMap     *ecs.Map[components.Orbit]
	growthFilter *ecs.Filter1[components.Growth]

	// Ordered collection; ticks visit entities in insertion order
	entities []ecs.Entity
	counts   [components.NumKinds]int

	shepherd    ecs.Entity
	hasShepherd bool
	controller  *systems.ShepherdController
	updaters    [components.NumKinds]updater

	// Per-tick scratch, indexed by snapshot position
	dead        []bool
	engaged     []bool
	pursuitDist []float64 // per wolf: distance to the sheep it pursues
	deadSheep   int
	pending     []Spawn
	parents     [][2]uint32

	tick   int64
	nextID uint32
}

// New creates an empty ground. It panics on invalid options.
func New(opts Options) *Ground {
	if err := opts.Validate(); err != nil {
		panic(fmt.Sprintf("ground: %v", err))
	}

	world := ecs.NewWorld()

	g := &Ground{
		opts:  opts,
		world: world,
		entityMapper: ecs.NewMap5[
			components.Identity,
			components.Position,
			components.Target,
			components.Motion,
			components.Appearance,
		](world),
		growthMap:    ecs.NewMap[components.Growth](world),
		orbitMap:     ecs.NewMap[components.Orbit](world),
		growthFilter: ecs.NewFilter1[components.Growth](world),
		controller:   systems.NewShepherdController(opts.ShepherdStep),
		nextID:       1,
	}

	g.updaters = [components.NumKinds]updater{
		components.KindSheep:       updateSheep,
		components.KindWolf:        updateWolf,
		components.KindShepherdDog: updateDog,
		components.KindShepherd:    updateShepherd,
	}

	return g
}

// Add appends an entity to the collection and returns it.
func (g *Ground) Add(spec Spawn) ecs.Entity {
	if spec.Kind >= components.NumKinds {
		panic(fmt.Sprintf("ground: unknown kind %d", spec.Kind))
	}

	id := components.Identity{ID: g.nextID, Kind: spec.Kind}
	g.nextID++
	pos := spec.Position
	target := spec.Target
	motion := components.Motion{Speed: g.opts.BaseSpeed}

	stage := systems.StageMature
	var growth components.Growth
	if spec.Kind == components.KindSheep {
		growth = spec.Growth
		if growth.Percent == 0 {
			growth = systems.NewAdult(g.now(), growth.Female)
		}
		stage = systems.StageFor(growth.Percent)
	}
	var app components.Appearance
	app.Sprite, app.W, app.H = g.opts.Sprites.Resolve(spec.Kind, stage)

	entity := g.entityMapper.NewEntity(&id, &pos, &target, &motion, &app)

	switch spec.Kind {
	case components.KindSheep:
		g.growthMap.Add(entity, &growth)
	case components.KindShepherdDog:
		g.orbitMap.Add(entity, &components.Orbit{})
	case components.KindShepherd:
		if !g.hasShepherd {
			g.shepherd = entity
			g.hasShepherd = true
		}
	}

	g.entities = append(g.entities, entity)
	g.counts[spec.Kind]++
	return entity
}

// SpawnRandom adds an entity at a random spawn point walking toward a
// random target. Sheep start mature with a random sex.
func (g *Ground) SpawnRandom(kind components.Kind) ecs.Entity {
	src := g.opts.Source
	pos := systems.SpawnPosition(src, g.opts.Field)
	spec := Spawn{
		Kind:     kind,
		Position: pos,
		Target:   systems.WanderPoint(src, g.opts.Field, pos, g.opts.WanderRadius),
	}
	if kind == components.KindSheep {
		spec.Growth = systems.NewAdult(g.now(), systems.RandomSex(src))
	}
	return g.Add(spec)
}

// Populate adds the start-up population: the shepherd and its dog, then
// sheep, then wolves.
func (g *Ground) Populate(sheep, wolves int, withShepherd bool) {
	if withShepherd {
		start := g.opts.ShepherdStart
		g.Add(Spawn{
			Kind:     components.KindShepherd,
			Position: start,
			Target:   components.Target(start),
		})
		g.Add(Spawn{
			Kind:     components.KindShepherdDog,
			Position: start,
			Target:   components.Target(start),
		})
	}
	for i := 0; i < sheep; i++ {
		g.SpawnRandom(components.KindSheep)
	}
	for i := 0; i < wolves; i++ {
		g.SpawnRandom(components.KindWolf)
	}
}

// HandleInput forwards a key event to the shepherd.
func (g *Ground) HandleInput(ev systems.InputEvent) {
	g.controller.HandleInput(ev)
}

// Tick advances the pasture by one step: every entity moves and is drawn,
// then every pair present at the start of the step interacts once, then
// eaten sheep are removed and newborn lambs join.
func (g *Ground) Tick() {
	now := g.now()

	g.startPhase(telemetry.PhaseUpdate)
	for _, e := range g.entities {
		id, pos, _, _, app := g.entityMapper.Get(e)
		g.updaters[id.Kind](g, e, now)
		if g.opts.Renderer != nil {
			g.opts.Renderer.DrawSprite(app.Sprite, *pos, app.W, app.H)
		}
	}

	g.startPhase(telemetry.PhaseInteract)
	n := len(g.entities)
	g.resetScratch(n)
	for i := 0; i < n; i++ {
		if g.dead[i] {
			continue
		}
		for j := i + 1; j < n; j++ {
			if g.dead[j] {
				continue
			}
			g.interact(i, j, now)
			if g.dead[i] {
				break
			}
		}
	}
	for i, e := range g.entities {
		if !g.engaged[i] && !g.dead[i] {
			_, _, _, motion, _ := g.entityMapper.Get(e)
			motion.Speed = g.opts.BaseSpeed
		}
	}

	g.startPhase(telemetry.PhaseCompact)
	g.compact()

	g.tick++
}

func (g *Ground) resetScratch(n int) {
	if cap(g.dead) < n {
		g.dead = make([]bool, n)
		g.engaged = make([]bool, n)
		g.pursuitDist = make([]float64, n)
	}
	g.dead = g.dead[:n]
	g.engaged = g.engaged[:n]
	g.pursuitDist = g.pursuitDist[:n]
	clear(g.dead)
	clear(g.engaged)
	for i := range g.pursuitDist {
		g.pursuitDist[i] = math.Inf(1)
	}
	g.deadSheep = 0
	g.pending = g.pending[:0]
	g.parents = g.parents[:0]
}

// compact drops eaten entities and appends queued offspring.
func (g *Ground) compact() {
	alive := g.entities[:0]
	for i, e := range g.entities {
		if !g.dead[i] {
			alive = append(alive, e)
			continue
		}
		id, _, _, _, _ := g.entityMapper.Get(e)
		g.counts[id.Kind]--
		if g.hasShepherd && e == g.shepherd {
			g.hasShepherd = false
		}
		g.world.RemoveEntity(e)
	}
	clear(g.entities[len(alive):])
	g.entities = alive

	for i, spec := range g.pending {
		child := g.Add(spec)
		id, _, _, _, _ := g.entityMapper.Get(child)
		g.emit(telemetry.NewBirthEvent(g.tick, id.ID, g.parents[i][0], g.parents[i][1]))
	}
}

func (g *Ground) now() int64 {
	if g.opts.Clock != nil {
		return g.opts.Clock.Now()
	}
	return g.tick
}

func (g *Ground) emit(ev telemetry.Event) {
	if g.opts.Events != nil {
		g.opts.Events.Record(ev)
	}
}

func (g *Ground) startPhase(phase string) {
	if g.opts.Phases != nil {
		g.opts.Phases.StartPhase(phase)
	}
}

// SetChaseRadius changes the chase radius for subsequent ticks.
func (g *Ground) SetChaseRadius(r float64) {
	if r < 0 {
		panic(fmt.Sprintf("ground: negative chase radius %v", r))
	}
	g.opts.ChaseRadius = r
}

// ChaseRadius returns the current chase radius.
func (g *Ground) ChaseRadius() float64 {
	return g.opts.ChaseRadius
}

// Field returns the field entities live on.
func (g *Ground) Field() systems.Field {
	return g.opts.Field
}
