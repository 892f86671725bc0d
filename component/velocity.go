package component

// Velocity is linear velocity in px/s, y-down axis
type Velocity struct {
	VX, VY float64
}
