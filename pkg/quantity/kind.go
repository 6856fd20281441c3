package quantity

import (
	"fmt"

	"github.com/dmitrymomot/physkit/pkg/dimension"
)

// Kind names a physical quantity with a fixed dimension, e.g. length or force.
type Kind struct {
	Name      string
	Dimension dimension.Dimension
}

var (
	KindLength             = Kind{"length", dimension.Length}
	KindTime               = Kind{"time", dimension.Time}
	KindMass               = Kind{"mass", dimension.Mass}
	KindAngle              = Kind{"angle", dimension.Angle}
	KindLinearVelocity     = Kind{"linear velocity", dimension.Velocity}
	KindLinearAcceleration = Kind{"linear acceleration", dimension.Acceleration}
	KindForce              = Kind{"force", dimension.Force}
	KindEnergy             = Kind{"energy", dimension.Energy}
)

// Validate fails with ErrInvalidDimension unless dim is the kind's dimension.
func (k Kind) Validate(dim dimension.Dimension) error {
	if dim != k.Dimension {
		return fmt.Errorf("%w: %s must be %q, got %q", ErrInvalidDimension, k.Name, k.Dimension, dim)
	}
	return nil
}

// Measure constructs a measurement of this kind, validating the unit.
func (k Kind) Measure(value float64, u Unit) (Measurement, error) {
	if err := k.Validate(u.dim); err != nil {
		return Measurement{}, err
	}
	return New(value, u), nil
}
