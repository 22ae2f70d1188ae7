package ground

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
)

// resolve refreshes the sprite and size of an entity for its growth stage.
func (g *Ground) resolve(kind components.Kind, stage systems.GrowthStage, app *components.Appearance) {
	app.Sprite, app.W, app.H = g.opts.Sprites.Resolve(kind, stage)
}

// updateSheep shows the sprite for the current stage, grows, then wanders.
func updateSheep(g *Ground, e ecs.Entity, now int64) {
	_, pos, target, motion, app := g.entityMapper.Get(e)
	growth := g.growthMap.Get(e)

	g.resolve(components.KindSheep, systems.StageFor(growth.Percent), app)
	systems.Grow(growth, now, g.opts.GrowthCadence)
	systems.Wander(g.opts.Source, g.opts.Field, pos, target, motion.Speed, g.opts.WanderRadius)
}

func updateWolf(g *Ground, e ecs.Entity, _ int64) {
	_, pos, target, motion, app := g.entityMapper.Get(e)
	g.resolve(components.KindWolf, systems.StageMature, app)
	systems.Wander(g.opts.Source, g.opts.Field, pos, target, motion.Speed, g.opts.WanderRadius)
}

func updateShepherd(g *Ground, e ecs.Entity, _ int64) {
	_, pos, target, _, app := g.entityMapper.Get(e)
	g.resolve(components.KindShepherd, systems.StageMature, app)
	g.controller.Step(pos, *app, g.opts.Field)
	*target = components.Target(*pos)
}

// updateDog circles the shepherd. Without a shepherd the dog stays put.
func updateDog(g *Ground, e ecs.Entity, _ int64) {
	_, pos, target, _, app := g.entityMapper.Get(e)
	g.resolve(components.KindShepherdDog, systems.StageMature, app)
	if !g.hasShepherd {
		return
	}

	_, masterPos, _, _, masterApp := g.entityMapper.Get(g.shepherd)
	systems.OrbitStep(g.orbitMap.Get(e), pos, *masterPos, *masterApp, *app,
		g.opts.Field, g.opts.DogOrbitSpeed, g.opts.DogOrbitRadius)
	*target = components.Target(*pos)
}
