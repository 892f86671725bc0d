package spec

// CurrentVersion is the spec format this build reads and writes
const CurrentVersion = "1.0"

// Per-field defaults for omitted values, versioned with the format.
// Changing a default for an existing field requires a version bump;
// documents written under the old version keep the old behavior.
const (
	DefaultRotation        = 0.0
	DefaultScale           = 1.0
	DefaultZIndex          = 0
	DefaultAnchor          = 0.5
	DefaultVisible         = true
	DefaultLoop            = true
	DefaultPlaying         = true
	DefaultZoom            = 1.0
	DefaultFollowSmoothing = 0.1
	DefaultVolume          = 1.0
	DefaultPitch           = 1.0
	DefaultMaxDistance     = 500.0
	DefaultFrameDuration   = 0.1
	DefaultDetectRadius    = 200.0
	DefaultAISpeed         = 100.0
	DefaultPatrolRange     = 100.0
	DefaultEmitRate        = 10.0
	DefaultMaxParticles    = 100
	DefaultLifetimeMin     = 0.5
	DefaultLifetimeMax     = 1.5
	DefaultSizeMin         = 2.0
	DefaultSizeMax         = 4.0
	DefaultSpeedMin        = 20.0
	DefaultSpeedMax        = 60.0
	DefaultAngleMin        = 0.0
	DefaultAngleMax        = 360.0
	DefaultEmitting        = true
	DefaultCameraActive    = true
)

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
