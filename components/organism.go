package components

// Identity bundles a stable entity ID with its kind.
type Identity struct {
	ID   uint32
	Kind Kind
}

// Growth tracks sheep maturation. Only sheep carry it.
type Growth struct {
	Percent   int   // 1..100, 100 = mature
	BirthTick int64 // tick at which growth began
	Female    bool  // fixed at creation
}

// Orbit holds the shepherd dog's angle around its master.
type Orbit struct {
	Angle float64 // radians
}
