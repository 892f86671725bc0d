package component

// Shape selects the collider geometry
type Shape string

const (
	ShapeBox    Shape = "box"
	ShapeCircle Shape = "circle"
)

// Collider requests a rigid body for the entity
// IsSensor shapes report overlap but exert no physical response
type Collider struct {
	Shape    Shape
	Width    float64
	Height   float64
	Radius   float64
	IsSensor bool
	Layer    int
}
