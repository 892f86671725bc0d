package component

// Camera views the world through an offset and zoom
// FollowTarget addresses another entity by spec name; smoothing 0 = frozen,
// 1 = instant snap
type Camera struct {
	OffsetX, OffsetY float64
	Zoom             float64
	FollowTarget     string
	FollowSmoothing  float64
	ViewportWidth    float64
	ViewportHeight   float64
	ShakeIntensity   float64
	ShakeDuration    float64
	Active           bool

	// Runtime shake state
	ShakeRemaining float64
}
