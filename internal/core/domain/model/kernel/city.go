package kernel

import (
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrCityIsNotConstructed is returned when validating a zero-value City.
var ErrCityIsNotConstructed = errs.NewValueIsRequiredError("city must be created via NewCity")

// City is the name of a delivery city, a route stop or a route destination.
//
// Two cities are equal when their names match ignoring letter case and
// surrounding or repeated whitespace, so "New  York " and "new york" name the
// same place. Name keeps the spelling the city was created with.
//
// Example:
//
//	boston, err := kernel.NewCity("Boston")
//	if err != nil {
//	    return err
//	}
//	other, _ := kernel.NewCity(" boston")
//	boston.IsEqual(other) // true
type City struct {
	name       string
	normalized string
	guard      guard.ConstructorGuard
}

// NewCity trims name and rejects it when nothing is left.
func NewCity(name string) (City, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return City{}, errs.NewValueIsRequiredError("city")
	}

	return City{
		name:       trimmed,
		normalized: normalizeCity(trimmed),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Name returns the trimmed city name.
func (c City) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c City) String() string {
	return c.name
}

// IsEqual compares normalized names. Zero-value cities never match.
func (c City) IsEqual(other City) bool {
	if c.Validate() != nil || other.Validate() != nil {
		return false
	}
	return c.normalized == other.normalized
}

// Validate rejects the zero value.
func (c City) Validate() error {
	return c.guard.Validate(ErrCityIsNotConstructed)
}

func normalizeCity(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
