package kernel

import (
	"errors"
	"fmt"
	"math"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrDimensionsAreNotConstructed is returned when validating zero-value Dimensions.
var ErrDimensionsAreNotConstructed = errs.NewValueIsRequiredError("dimensions must be created via NewDimensions")

// Dimensions holds the physical size of a parcel: weight and the three edges
// of its bounding box. All values are non-negative decimals.
type Dimensions struct {
	weight float64
	length float64
	width  float64
	height float64
	guard  guard.ConstructorGuard
}

// NewDimensions validates every measure and joins all failures into one error.
//
// Example:
//
//	dims, err := kernel.NewDimensions(10, 10, 5, 4)
//	dims.Volume() // 200
func NewDimensions(weight, length, width, height float64) (Dimensions, error) {
	if err := errors.Join(
		validateMeasure("weight", weight),
		validateMeasure("length", length),
		validateMeasure("width", width),
		validateMeasure("height", height),
	); err != nil {
		return Dimensions{}, err
	}

	return Dimensions{
		weight: weight,
		length: length,
		width:  width,
		height: height,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (d Dimensions) Weight() float64 {
	return d.weight
}

func (d Dimensions) Length() float64 {
	return d.length
}

func (d Dimensions) Width() float64 {
	return d.width
}

func (d Dimensions) Height() float64 {
	return d.height
}

// Volume is length × width × height.
func (d Dimensions) Volume() float64 {
	return d.length * d.width * d.height
}

// Validate rejects the zero value.
func (d Dimensions) Validate() error {
	return d.guard.Validate(ErrDimensionsAreNotConstructed)
}

func validateMeasure(name string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	return nil
}
