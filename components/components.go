// Package components defines ECS components for the pasture simulation.
package components

// Kind is the closed set of entity variants.
type Kind uint8

const (
	KindSheep Kind = iota
	KindWolf
	KindShepherdDog
	KindShepherd

	// NumKinds is the number of kinds; keep it last.
	NumKinds
)

// String returns the display name for a Kind.
func (k Kind) String() string {
	names := KindNames()
	if int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

// KindNames returns the display names for all kinds.
// The order matches the Kind constants.
func KindNames() []string {
	return []string{"sheep", "wolf", "shepherd_dog", "shepherd"}
}

// Autonomous reports whether the kind wanders on its own and stays inside
// the field boundary. The shepherd follows player input and the dog
// follows the shepherd.
func (k Kind) Autonomous() bool {
	return k == KindSheep || k == KindWolf
}
