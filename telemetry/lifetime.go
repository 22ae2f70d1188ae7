package telemetry

import "github.com/pthm-cable/pasture/components"

// LifetimeStats tracks per-entity statistics over its lifetime.
type LifetimeStats struct {
	Kind      components.Kind
	BirthTick int64

	Chases   int // ticks spent chasing or being chased
	Kills    int // wolves only
	Children int // sheep only
}

// LifetimeTracker manages per-entity lifetime statistics.
// It is fed the same events as the Collector.
type LifetimeTracker struct {
	stats map[uint32]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[uint32]*LifetimeStats),
	}
}

// Register creates lifetime stats for an entity.
func (lt *LifetimeTracker) Register(entityID uint32, kind components.Kind, birthTick int64) {
	lt.stats[entityID] = &LifetimeStats{Kind: kind, BirthTick: birthTick}
}

// Get returns the lifetime stats for an entity, or nil if not found.
func (lt *LifetimeTracker) Get(entityID uint32) *LifetimeStats {
	return lt.stats[entityID]
}

// Remove removes an entity's stats and returns them.
func (lt *LifetimeTracker) Remove(entityID uint32) *LifetimeStats {
	stats := lt.stats[entityID]
	delete(lt.stats, entityID)
	return stats
}

// Record updates the stats of the entities an event refers to.
func (lt *LifetimeTracker) Record(ev Event) {
	switch ev.Type {
	case EventChase:
		if s := lt.stats[ev.EntityID]; s != nil {
			s.Chases++
		}
		if s := lt.stats[ev.TargetID]; s != nil {
			s.Chases++
		}
	case EventKill:
		if s := lt.stats[ev.EntityID]; s != nil {
			s.Kills++
		}
		lt.Remove(ev.TargetID)
	case EventBirth:
		lt.Register(ev.EntityID, components.KindSheep, ev.Tick)
		for _, parent := range []uint32{ev.TargetID, ev.PartnerID} {
			if s := lt.stats[parent]; s != nil {
				s.Children++
			}
		}
	}
}

// TopHunter returns the wolf with the most kills, ties broken by lower ID.
func (lt *LifetimeTracker) TopHunter() (uint32, *LifetimeStats, bool) {
	var bestID uint32
	var best *LifetimeStats
	for id, s := range lt.stats {
		if s.Kind != components.KindWolf {
			continue
		}
		if best == nil || s.Kills > best.Kills || (s.Kills == best.Kills && id < bestID) {
			bestID, best = id, s
		}
	}
	return bestID, best, best != nil
}

// Count returns the number of tracked entities.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}
