package vector

import "github.com/dmitrymomot/physkit/pkg/quantity"

// NewOfKind builds a vector whose components must all have the dimension of k.
func NewOfKind[T Element[T]](k quantity.Kind, components ...T) (Vector[T], error) {
	v, err := New(components...)
	if err != nil {
		return Vector[T]{}, err
	}
	if err := v.Validate(k); err != nil {
		return Vector[T]{}, err
	}
	return v, nil
}

// NewPosition builds a position vector (length components).
func NewPosition[T Element[T]](components ...T) (Vector[T], error) {
	return NewOfKind(quantity.KindLength, components...)
}

// NewLinearVelocity builds a velocity vector (m s^-1 components).
func NewLinearVelocity[T Element[T]](components ...T) (Vector[T], error) {
	return NewOfKind(quantity.KindLinearVelocity, components...)
}

// NewLinearAcceleration builds an acceleration vector (m s^-2 components).
func NewLinearAcceleration[T Element[T]](components ...T) (Vector[T], error) {
	return NewOfKind(quantity.KindLinearAcceleration, components...)
}

// NewForce builds a force vector (kg m s^-2 components).
func NewForce[T Element[T]](components ...T) (Vector[T], error) {
	return NewOfKind(quantity.KindForce, components...)
}
