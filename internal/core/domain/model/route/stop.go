package route

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrStopIsNotConstructed = errors.New("Stop must be created via NewStop constructor")

// Stop is an intermediate city a route passes through. Position is the
// 1-based ordinal of the stop on its route.
type Stop struct {
	position int
	city     kernel.City
	guard    guard.ConstructorGuard
}

func NewStop(position int, city kernel.City) (Stop, error) {
	if position < 1 {
		return Stop{}, errs.NewValueIsOutOfRangeError("position", position, 1, "stop count")
	}
	if err := city.Validate(); err != nil {
		return Stop{}, err
	}

	return Stop{
		position: position,
		city:     city,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (s Stop) Position() int {
	return s.position
}

func (s Stop) City() kernel.City {
	return s.city
}

func (s Stop) Validate() error {
	return s.guard.Validate(ErrStopIsNotConstructed)
}
