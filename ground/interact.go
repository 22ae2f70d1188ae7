package ground

import (
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// pairKind classifies an unordered pair of kinds.
type pairKind uint8

const (
	pairNone pairKind = iota
	pairMates
	pairPredation
)

func classify(a, b components.Kind) pairKind {
	switch {
	case a == components.KindSheep && b == components.KindSheep:
		return pairMates
	case a == components.KindWolf && b == components.KindSheep,
		a == components.KindSheep && b == components.KindWolf:
		return pairPredation
	default:
		return pairNone
	}
}

// interact applies the rules for the pair at snapshot positions i < j.
func (g *Ground) interact(i, j int, now int64) {
	a, b := g.entities[i], g.entities[j]
	idA, _, _, _, _ := g.entityMapper.Get(a)
	idB, _, _, _, _ := g.entityMapper.Get(b)

	switch classify(idA.Kind, idB.Kind) {
	case pairMates:
		g.mate(i, j, now)
	case pairPredation:
		if idA.Kind == components.KindWolf {
			g.predate(i, j)
		} else {
			g.predate(j, i)
		}
	}
}

// mate queues a lamb at the first parent's position when both sheep can mate.
func (g *Ground) mate(i, j int, now int64) {
	a, b := g.entities[i], g.entities[j]
	idA, posA, _, _, _ := g.entityMapper.Get(a)
	idB, posB, _, _, appB := g.entityMapper.Get(b)
	growthA, growthB := g.growthMap.Get(a), g.growthMap.Get(b)

	if !systems.CanMate(*growthA, *growthB, *posA, *posB, *appB) {
		return
	}
	if g.opts.MaxSheep > 0 && g.counts[components.KindSheep]-g.deadSheep+len(g.pending) >= g.opts.MaxSheep {
		g.emit(telemetry.NewBirthCappedEvent(g.tick, idA.ID, idB.ID))
		return
	}

	src := g.opts.Source
	g.pending = append(g.pending, Spawn{
		Kind:     components.KindSheep,
		Position: *posA,
		Target:   systems.WanderPoint(src, g.opts.Field, *posA, g.opts.WanderRadius),
		Growth:   systems.NewOffspring(now, systems.RandomSex(src)),
	})
	g.parents = append(g.parents, [2]uint32{idA.ID, idB.ID})

	systems.MateGrowth(growthA, g.opts.MateGrowth)
	systems.MateGrowth(growthB, g.opts.MateGrowth)
}

// predate runs the chase between the wolf at w and the sheep at s. A sheep
// within half its width of the wolf is eaten. A pursuing wolf targets the
// nearest sheep in range.
func (g *Ground) predate(w, s int) {
	wolf, sheep := g.entities[w], g.entities[s]
	wolfID, wolfPos, wolfTarget, wolfMotion, _ := g.entityMapper.Get(wolf)
	sheepID, sheepPos, sheepTarget, sheepMotion, sheepApp := g.entityMapper.Get(sheep)

	d := systems.Distance(*wolfPos, *sheepPos)
	if d > g.opts.ChaseRadius {
		return
	}

	g.engaged[w], g.engaged[s] = true, true
	sheepMotion.Speed = g.opts.BoostSpeed
	*sheepTarget = systems.FleeTarget(g.opts.Field, *wolfPos, *sheepPos, *sheepApp, g.opts.FleeDistance)
	wolfMotion.Speed = g.opts.BoostSpeed
	if g.opts.Pursuit && d < g.pursuitDist[w] {
		g.pursuitDist[w] = d
		*wolfTarget = components.Target(*sheepPos)
	}
	g.emit(telemetry.NewChaseEvent(g.tick, wolfID.ID, sheepID.ID, d))

	if d <= float64(sheepApp.W)/2 {
		g.dead[s] = true
		g.deadSheep++
		g.emit(telemetry.NewKillEvent(g.tick, wolfID.ID, sheepID.ID, d))
	}
}
