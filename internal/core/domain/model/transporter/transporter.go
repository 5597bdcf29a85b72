package transporter

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrTransporterIsNotConstructed = errors.New("Transporter must be created via NewTransporter constructor")

// Transporter is the carrier profile of a route-owning user. MaxWeight and
// MaxVolume hold the capacity still available for new orders; every
// successful route assignment decrements them.
type Transporter struct {
	userID      kernel.UUID
	name        string
	vehicleType string
	maxWeight   float64
	maxVolume   float64
	available   bool
	createdAt   time.Time

	guard guard.ConstructorGuard
}

// NewTransporter creates an available transporter with its declared capacity.
func NewTransporter(userID kernel.UUID, name, vehicleType string, maxWeight, maxVolume float64) (*Transporter, error) {
	return RestoreTransporter(userID, name, vehicleType, maxWeight, maxVolume, true, time.Now().UTC())
}

// RestoreTransporter rebuilds a transporter from persisted state.
func RestoreTransporter(
	userID kernel.UUID,
	name, vehicleType string,
	maxWeight, maxVolume float64,
	available bool,
	createdAt time.Time,
) (*Transporter, error) {
	t := &Transporter{
		available: available,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setUserID(userID),
		t.setName(name),
		t.setVehicleType(vehicleType),
		t.setCapacity("maxWeight", maxWeight, &t.maxWeight),
		t.setCapacity("maxVolume", maxVolume, &t.maxVolume),
	); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Transporter) Validate() error {
	if t == nil {
		return ErrTransporterIsNotConstructed
	}
	return t.guard.Validate(ErrTransporterIsNotConstructed)
}

// UserID is the transporter's identity; routes reference it as their transporter.
func (t *Transporter) UserID() kernel.UUID {
	return t.userID
}

func (t *Transporter) Name() string {
	return t.name
}

func (t *Transporter) VehicleType() string {
	return t.vehicleType
}

// MaxWeight returns the remaining weight capacity.
func (t *Transporter) MaxWeight() float64 {
	return t.maxWeight
}

// MaxVolume returns the remaining volume capacity.
func (t *Transporter) MaxVolume() float64 {
	return t.maxVolume
}

func (t *Transporter) Available() bool {
	return t.available
}

func (t *Transporter) CreatedAt() time.Time {
	return t.createdAt
}

// CanCarry reports whether both measures fit into the remaining capacity.
// A nil transporter has no capacity at all.
func (t *Transporter) CanCarry(weight, volume float64) bool {
	if t == nil {
		return weight <= 0 && volume <= 0
	}
	return weight <= t.maxWeight && volume <= t.maxVolume
}

func (t *Transporter) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	t.userID = id
	return nil
}

func (t *Transporter) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	t.name = name
	return nil
}

func (t *Transporter) setVehicleType(vehicleType string) error {
	vehicleType = strings.TrimSpace(vehicleType)
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	t.vehicleType = vehicleType
	return nil
}

func (t *Transporter) setCapacity(name string, value float64, dst *float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%v is not a finite number", value))
	}
	if value < 0 {
		return errs.NewValueIsOutOfRangeError(name, value, 0, "unbounded")
	}
	*dst = value
	return nil
}
