package ground

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
)

// EntityView is a read-only copy of one entity's state.
type EntityView struct {
	Entity   ecs.Entity
	ID       uint32
	Kind     components.Kind
	Position components.Position
	Target   components.Target
	Speed    int
	Sprite   components.SpriteID
	W, H     int

	// Sheep only
	Growth int
	Female bool
	Stage  systems.GrowthStage
}

func (g *Ground) view(e ecs.Entity) EntityView {
	id, pos, target, motion, app := g.entityMapper.Get(e)
	v := EntityView{
		Entity:   e,
		ID:       id.ID,
		Kind:     id.Kind,
		Position: *pos,
		Target:   *target,
		Speed:    motion.Speed,
		Sprite:   app.Sprite,
		W:        app.W,
		H:        app.H,
		Stage:    systems.StageMature,
	}
	if g.growthMap.Has(e) {
		growth := g.growthMap.Get(e)
		v.Growth = growth.Percent
		v.Female = growth.Female
		v.Stage = systems.StageFor(growth.Percent)
	}
	return v
}

// Snapshot returns every entity in collection order.
func (g *Ground) Snapshot() []EntityView {
	views := make([]EntityView, len(g.entities))
	for i, e := range g.entities {
		views[i] = g.view(e)
	}
	return views
}

// Get returns the view of e if it is still on the ground.
func (g *Ground) Get(e ecs.Entity) (EntityView, bool) {
	if !g.world.Alive(e) {
		return EntityView{}, false
	}
	return g.view(e), true
}

// Shepherd returns the shepherd the dog follows.
func (g *Ground) Shepherd() (EntityView, bool) {
	if !g.hasShepherd {
		return EntityView{}, false
	}
	return g.view(g.shepherd), true
}

// Count returns the number of living entities of kind.
func (g *Ground) Count(kind components.Kind) int {
	if kind >= components.NumKinds {
		return 0
	}
	return g.counts[kind]
}

// Counts returns the population of every kind.
func (g *Ground) Counts() [components.NumKinds]int {
	return g.counts
}

// Len returns the collection size.
func (g *Ground) Len() int {
	return len(g.entities)
}

// CurrentTick returns the number of completed ticks.
func (g *Ground) CurrentTick() int64 {
	return g.tick
}

// Growths returns the growth percentage of every sheep.
func (g *Ground) Growths() []float64 {
	values := make([]float64, 0, g.counts[components.KindSheep])
	query := g.growthFilter.Query()
	for query.Next() {
		growth := query.Get()
		values = append(values, float64(growth.Percent))
	}
	return values
}
