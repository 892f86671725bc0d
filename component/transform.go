package component

// Transform holds world-space placement
// Rotation is in degrees, scale is non-uniform
type Transform struct {
	X, Y     float64
	Rotation float64
	ScaleX   float64
	ScaleY   float64
}
