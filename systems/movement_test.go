package systems

import (
	"testing"

	"github.com/pthm-cable/pasture/components"
)

func TestAdvanceTowardTarget(t *testing.T) {
	tests := []struct {
		name   string
		pos    components.Position
		target components.Target
		speed  int
		want   components.Position
	}{
		{"diagonal", components.Position{X: 0, Y: 0}, components.Target{X: 10, Y: -10}, 2, components.Position{X: 2, Y: -2}},
		{"x only", components.Position{X: 5, Y: 5}, components.Target{X: 1, Y: 5}, 1, components.Position{X: 4, Y: 5}},
		{"at target", components.Position{X: 5, Y: 5}, components.Target{X: 5, Y: 5}, 2, components.Position{X: 5, Y: 5}},
		{"overshoot", components.Position{X: 9, Y: 0}, components.Target{X: 10, Y: 0}, 2, components.Position{X: 11, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := tt.pos
			AdvanceTowardTarget(&pos, tt.target, tt.speed)
			if pos != tt.want {
				t.Errorf("got %v, want %v", pos, tt.want)
			}
		})
	}
}

func TestReachedTarget(t *testing.T) {
	tests := []struct {
		name   string
		pos    components.Position
		target components.Target
		speed  int
		want   bool
	}{
		{"exact", components.Position{X: 3, Y: 3}, components.Target{X: 3, Y: 3}, 1, true},
		{"within speed", components.Position{X: 4, Y: 2}, components.Target{X: 3, Y: 3}, 1, true},
		{"one axis far", components.Position{X: 3, Y: 6}, components.Target{X: 3, Y: 3}, 2, false},
		{"boost reaches", components.Position{X: 5, Y: 1}, components.Target{X: 3, Y: 3}, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReachedTarget(tt.pos, tt.target, tt.speed); got != tt.want {
				t.Errorf("ReachedTarget(%v, %v, %d) = %v, want %v", tt.pos, tt.target, tt.speed, got, tt.want)
			}
		})
	}
}

func TestWander_StaysInFieldAndRetargetsWithinRadius(t *testing.T) {
	const radius = 100
	src := NewSeededSource(42)

	for _, speed := range []int{1, 2} {
		pos := components.Position{X: 350, Y: 225}
		target := WanderPoint(src, pasture, pos, radius)
		retargets := 0

		for i := 0; i < 20000; i++ {
			prev := target
			Wander(src, pasture, &pos, &target, speed, radius)

			if pos.X < 100 || pos.X > 600 || pos.Y < 100 || pos.Y > 350 {
				t.Fatalf("speed %d tick %d: position %v left the field", speed, i, pos)
			}
			if target != prev {
				retargets++
				if absInt(target.X-pos.X) > radius || absInt(target.Y-pos.Y) > radius {
					t.Fatalf("speed %d tick %d: target %v farther than %d from %v", speed, i, target, radius, pos)
				}
				if target.X < 100 || target.X > 600 || target.Y < 100 || target.Y > 350 {
					t.Fatalf("speed %d tick %d: target %v outside the field", speed, i, target)
				}
			}
		}
		if retargets == 0 {
			t.Errorf("speed %d: wander never re-targeted", speed)
		}
	}
}

func TestWander_NoRetargetBeforeArrival(t *testing.T) {
	src := NewSeededSource(1)
	pos := components.Position{X: 200, Y: 200}
	target := components.Target{X: 300, Y: 200}

	Wander(src, pasture, &pos, &target, 1, 100)

	if pos != (components.Position{X: 201, Y: 200}) {
		t.Errorf("pos = %v, want {201 200}", pos)
	}
	if target != (components.Target{X: 300, Y: 200}) {
		t.Errorf("target changed to %v before arrival", target)
	}
}

func TestClampToField(t *testing.T) {
	pos := components.Position{X: -20, Y: 900}
	ClampToField(pasture, &pos)
	if pos != (components.Position{X: 100, Y: 350}) {
		t.Errorf("got %v, want {100 350}", pos)
	}
}
