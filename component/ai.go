package component

// Behavior selects the AI movement pattern
type Behavior string

const (
	BehaviorChase  Behavior = "chase"
	BehaviorPatrol Behavior = "patrol"
	BehaviorIdle   Behavior = "idle"
)

// AIBehavior drives Velocity for non-player entities
// Target addresses another entity by spec name; empty = none
type AIBehavior struct {
	Kind         Behavior
	Target       string
	DetectRadius float64
	Speed        float64
	PatrolRange  float64

	// Runtime patrol state
	OriginX   float64
	OriginSet bool
	Direction float64
}
