package order

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrStatusChangeIsNotConstructed = errors.New("StatusChange must be created via NewStatusChange constructor")

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	orderID   kernel.UUID
	status    Status
	comment   string
	changedAt time.Time

	guard guard.ConstructorGuard
}

// NewStatusChange records that orderID entered status at changedAt. The
// comment is optional free text explaining the change.
func NewStatusChange(orderID kernel.UUID, status Status, comment string, changedAt time.Time) (StatusChange, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return StatusChange{}, err
	}
	if changedAt.IsZero() {
		return StatusChange{}, errs.NewValueIsRequiredError("changedAt")
	}

	return StatusChange{
		orderID:   orderID,
		status:    status,
		comment:   comment,
		changedAt: changedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c StatusChange) OrderID() kernel.UUID {
	return c.orderID
}

func (c StatusChange) Status() Status {
	return c.status
}

// Comment is empty when none was given.
func (c StatusChange) Comment() string {
	return c.comment
}

func (c StatusChange) ChangedAt() time.Time {
	return c.changedAt
}

func (c StatusChange) Validate() error {
	return c.guard.Validate(ErrStatusChangeIsNotConstructed)
}
