// Package telemetry provides flock health tracking, bookmarking, and CSV output.
package telemetry

import "github.com/pthm-cable/pasture/components"

// EventType identifies telemetry events.
type EventType uint8

const (
	EventChase EventType = iota
	EventKill
	EventBirth
	EventBirthCapped
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventChase:
		return "chase"
	case EventKill:
		return "kill"
	case EventBirth:
		return "birth"
	case EventBirthCapped:
		return "birth_capped"
	default:
		return "unknown"
	}
}

// Event represents a single telemetry event.
type Event struct {
	Type     EventType
	Tick     int64
	EntityID uint32
	Kind     components.Kind

	// Optional fields depending on event type
	TargetID  uint32  // prey for chase/kill, first parent for births
	PartnerID uint32  // second parent for births
	Distance  float64 // wolf/sheep distance for chase/kill
}

// NewChaseEvent creates an event for a wolf with a sheep inside its chase radius.
func NewChaseEvent(tick int64, wolfID, sheepID uint32, distance float64) Event {
	return Event{
		Type:     EventChase,
		Tick:     tick,
		EntityID: wolfID,
		Kind:     components.KindWolf,
		TargetID: sheepID,
		Distance: distance,
	}
}

// NewKillEvent creates a kill event (sheep eaten by a wolf).
func NewKillEvent(tick int64, wolfID, sheepID uint32, distance float64) Event {
	return Event{
		Type:     EventKill,
		Tick:     tick,
		EntityID: wolfID,
		Kind:     components.KindWolf,
		TargetID: sheepID,
		Distance: distance,
	}
}

// NewBirthEvent creates a birth event.
func NewBirthEvent(tick int64, childID, parentID, partnerID uint32) Event {
	return Event{
		Type:      EventBirth,
		Tick:      tick,
		EntityID:  childID,
		Kind:      components.KindSheep,
		TargetID:  parentID,
		PartnerID: partnerID,
	}
}

// NewBirthCappedEvent records a mating that produced no lamb because the
// flock is at its size limit.
func NewBirthCappedEvent(tick int64, parentID, partnerID uint32) Event {
	return Event{
		Type:      EventBirthCapped,
		Tick:      tick,
		Kind:      components.KindSheep,
		TargetID:  parentID,
		PartnerID: partnerID,
	}
}
