package systems

import (
	"fmt"

	"github.com/pthm-cable/pasture/components"
)

// MaxGrowth is the growth percentage of a mature sheep.
const MaxGrowth = 100

// GrowthStage selects the displayed sprite and therefore the size of a sheep.
type GrowthStage uint8

const (
	StageLamb       GrowthStage = iota // growth <= 25
	StageYoung                         // 26-50
	StageJuvenile                      // 51-75
	StageAdolescent                    // 76-99
	StageMature                        // 100 and above
)

// String returns the stage name.
func (s GrowthStage) String() string {
	switch s {
	case StageLamb:
		return "lamb"
	case StageYoung:
		return "young"
	case StageJuvenile:
		return "juvenile"
	case StageAdolescent:
		return "adolescent"
	case StageMature:
		return "mature"
	default:
		return "unknown"
	}
}

// StageFor maps a growth percentage to its stage.
func StageFor(percent int) GrowthStage {
	switch {
	case percent <= 25:
		return StageLamb
	case percent <= 50:
		return StageYoung
	case percent <= 75:
		return StageJuvenile
	case percent < MaxGrowth:
		return StageAdolescent
	default:
		return StageMature
	}
}

// MateGrowthPolicy decides what mating does to a parent's growth.
type MateGrowthPolicy uint8

const (
	// MateGrowthClamp keeps growth at or below MaxGrowth.
	MateGrowthClamp MateGrowthPolicy = iota
	// MateGrowthUncapped lets growth pass MaxGrowth. Such a sheep no longer
	// equals MaxGrowth and so cannot mate again.
	MateGrowthUncapped
)

// ParseMateGrowthPolicy converts a config value to a policy.
func ParseMateGrowthPolicy(s string) (MateGrowthPolicy, error) {
	switch s {
	case "clamp", "":
		return MateGrowthClamp, nil
	case "uncapped":
		return MateGrowthUncapped, nil
	default:
		return 0, fmt.Errorf("unknown mate growth policy %q", s)
	}
}

// Grow advances growth by one percent when the tick cadence allows it.
// Mature sheep stop growing.
func Grow(g *components.Growth, now, cadence int64) {
	if cadence < 1 {
		panic(fmt.Sprintf("systems: growth cadence %d < 1", cadence))
	}
	if g.Percent >= MaxGrowth {
		return
	}
	if (now-g.BirthTick)%cadence == 0 {
		g.Percent++
	}
}

// Mature reports whether a sheep can mate.
func Mature(g components.Growth) bool {
	return g.Percent == MaxGrowth
}

// NewOffspring initializes the growth of a newborn sheep.
func NewOffspring(now int64, female bool) components.Growth {
	return components.Growth{Percent: 1, BirthTick: now, Female: female}
}

// NewAdult initializes the growth of a sheep spawned at start-up.
func NewAdult(now int64, female bool) components.Growth {
	return components.Growth{Percent: MaxGrowth, BirthTick: now, Female: female}
}

// MateGrowth applies the growth side effect of mating to a parent.
func MateGrowth(g *components.Growth, policy MateGrowthPolicy) {
	g.Percent++
	if policy == MateGrowthClamp && g.Percent > MaxGrowth {
		g.Percent = MaxGrowth
	}
}

// CanMate reports whether two sheep form a reproducing couple: both mature,
// opposite sex, and a within half of b's width.
func CanMate(a, b components.Growth, posA, posB components.Position, sizeB components.Appearance) bool {
	if !Mature(a) || !Mature(b) || a.Female == b.Female {
		return false
	}
	return Distance(posA, posB) <= float64(sizeB.W)/2
}
