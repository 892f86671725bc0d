package component

// Audio attaches a sound source to an entity
// Spatial sources attenuate with distance from the active camera up to
// MaxDistance, beyond which they are silent
type Audio struct {
	Source      string
	Volume      float64
	Pitch       float64
	Playing     bool
	Loop        bool
	Spatial     bool
	MaxDistance float64

	// Runtime edge detection for the audio system
	WasPlaying bool
}
