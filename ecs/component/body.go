package component

// Body describes a dynamic capsule stepped by the physics backend. HalfHeight
// is measured from the body origin to its feet.
type Body struct {
	Radius     float64
	HalfHeight float64
	// Gravity is the downward acceleration in m/s^2.
	Gravity float64
}

var BodyComponent = NewComponent[Body]()
