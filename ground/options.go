package ground

import (
	"errors"
	"fmt"

	"github.com/pthm-cable/pasture/assets"
	"github.com/pthm-cable/pasture/components"
	"github.com/pthm-cable/pasture/config"
	"github.com/pthm-cable/pasture/systems"
	"github.com/pthm-cable/pasture/telemetry"
)

// Renderer draws one sprite. A nil Renderer disables drawing.
type Renderer interface {
	DrawSprite(sprite components.SpriteID, pos components.Position, w, h int)
}

// Clock supplies the tick used for growth. Readings must not decrease.
type Clock interface {
	Now() int64
}

// SpriteResolver maps a kind and growth stage to a sprite and its size.
type SpriteResolver interface {
	Resolve(kind components.Kind, stage systems.GrowthStage) (components.SpriteID, int, int)
}

// EventSink receives chase, kill and birth events.
type EventSink interface {
	Record(ev telemetry.Event)
}

// PhaseTimer is told when each tick phase starts.
type PhaseTimer interface {
	StartPhase(phase string)
}

// Options configures a Ground.
type Options struct {
	Field systems.Field

	BaseSpeed     int
	BoostSpeed    int
	WanderRadius  int
	GrowthCadence int64
	MateGrowth    systems.MateGrowthPolicy
	MaxSheep      int // 0 = unlimited

	ChaseRadius  float64
	FleeDistance float64
	Pursuit      bool

	ShepherdStart  components.Position
	ShepherdStep   int
	DogOrbitSpeed  float64
	DogOrbitRadius float64 // 0 = half the shepherd's width

	// Collaborators. Source and Sprites are required.
	Source   systems.Source
	Clock    Clock // nil = the engine's own tick counter
	Sprites  SpriteResolver
	Renderer Renderer   // nil = headless
	Events   EventSink  // nil = no events
	Phases   PhaseTimer // nil = no phase timing
}

// OptionsFromConfig fills the tuning values from cfg and uses an entropy
// source with the static sprite catalog.
func OptionsFromConfig(cfg *config.Config) Options {
	policy, err := systems.ParseMateGrowthPolicy(cfg.Reproduction.MateGrowth)
	if err != nil {
		panic(fmt.Sprintf("ground: %v", err))
	}
	return Options{
		Field: systems.Field{
			Width:    cfg.Field.Width,
			Height:   cfg.Field.Height,
			Boundary: cfg.Field.Boundary,
		},
		BaseSpeed:      cfg.Movement.BaseSpeed,
		BoostSpeed:     cfg.Movement.BoostSpeed,
		WanderRadius:   cfg.Movement.WanderRadius,
		GrowthCadence:  int64(cfg.Growth.Cadence),
		MateGrowth:     policy,
		MaxSheep:       cfg.Population.MaxSheep,
		ChaseRadius:    cfg.Predation.ChaseRadius,
		FleeDistance:   cfg.Predation.FleeDistance,
		Pursuit:        cfg.Predation.Pursuit,
		ShepherdStart:  components.Position{X: cfg.Shepherd.StartX, Y: cfg.Shepherd.StartY},
		ShepherdStep:   cfg.Shepherd.Step,
		DogOrbitSpeed:  cfg.Dog.OrbitSpeed,
		DogOrbitRadius: cfg.Dog.OrbitRadius,
		Source:         systems.EntropySource{},
		Sprites:        assets.NewCatalog(cfg.Sprites),
	}
}

// Validate reports values the engine cannot run with.
func (o Options) Validate() error {
	var errs []error
	if err := o.Field.Validate(); err != nil {
		errs = append(errs, err)
	}
	if o.BaseSpeed < 1 || o.BoostSpeed < o.BaseSpeed {
		errs = append(errs, fmt.Errorf("need 1 <= base speed <= boost speed, got %d/%d", o.BaseSpeed, o.BoostSpeed))
	}
	if o.WanderRadius < 0 {
		errs = append(errs, fmt.Errorf("negative wander radius %d", o.WanderRadius))
	}
	if o.GrowthCadence < 1 {
		errs = append(errs, fmt.Errorf("growth cadence %d < 1", o.GrowthCadence))
	}
	if o.ChaseRadius < 0 || o.FleeDistance < 0 {
		errs = append(errs, errors.New("negative predation radius"))
	}
	if o.MaxSheep < 0 || o.ShepherdStep < 0 {
		errs = append(errs, errors.New("negative sheep limit or shepherd step"))
	}
	if o.Source == nil {
		errs = append(errs, errors.New("nil random source"))
	}
	if o.Sprites == nil {
		errs = append(errs, errors.New("nil sprite resolver"))
	}
	return errors.Join(errs...)
}
