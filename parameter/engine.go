package parameter

// Fixed-timestep loop tuning
const (
	// FixedStep is the simulation step in seconds (60 Hz)
	FixedStep = 1.0 / 60.0

	// MaxCatchUpSteps caps simulation steps per visual frame so a long
	// stall cannot snowball into unbounded catch-up work
	MaxCatchUpSteps = 5

	// EventQueueSize is the collision/lifecycle ring capacity, power of two
	EventQueueSize = 256
	EventQueueMask = EventQueueSize - 1
)

// DefaultSeed feeds FastRand when a spec carries no seed of its own
const DefaultSeed = 0x5157F00D
