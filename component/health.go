package component

// Health tracks damage state
// cooldown is the remaining invulnerability window, runtime-only
type Health struct {
	Current  float64
	Max      float64
	Cooldown float64
}
