package math3d

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates a projection parameter outside its valid range.
// Constructors wrap it with the name and value of the offending argument.
var ErrOutOfRange = errors.New("math3d: argument out of range")

func outOfRange[T Float](name string, v T, want string) error {
	return fmt.Errorf("%w: %s = %v, want %s", ErrOutOfRange, name, v, want)
}

// checkPlanes validates near/far distances shared by every perspective
// constructor. A positive-infinite far plane is accepted.
func checkPlanes[T Float](near, far T) error {
	switch {
	case !(near > 0):
		return outOfRange("nearPlaneDistance", near, "> 0")
	case !(far > 0):
		return outOfRange("farPlaneDistance", far, "> 0")
	case near >= far:
		return outOfRange("nearPlaneDistance", near, fmt.Sprintf("< farPlaneDistance (%v)", far))
	}
	return nil
}

func must[T Float](m Mat4[T], err error) Mat4[T] {
	if err != nil {
		panic(err)
	}
	return m
}
