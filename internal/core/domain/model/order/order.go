package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsNotAssignable is returned when attaching a route to an order
	// that already left the Pending status.
	ErrOrderIsNotAssignable = errs.NewConflictError("ORDER_NOT_ASSIGNABLE", "only pending orders can be attached to a route")
)

// Order represents a customer's delivery order. It is the aggregate root that
// owns the parcel description, the delivery target and the order lifecycle.
//
// Order follows these invariants:
//   - Must have valid order and owner identifiers
//   - Dimensions are non-negative and define the parcel volume
//   - Product type, delivery city and destination address are required
//   - At most one route is attached at a time, and only while Pending
//   - Delivery time is set exactly when the order becomes Completed
//
// Status changes are driven by the route the order travels on; see the
// services package for the cascade rules.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID

	dimensions         kernel.Dimensions
	productType        string
	deliveryCity       kernel.City
	destinationAddress string

	// routeID is nil until the order is attached to a route
	routeID *kernel.UUID

	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Pending order with no route.
//
// Parameters:
//   - id: Unique identifier for the order
//   - userID: Identifier of the customer placing the order
//   - dimensions: Parcel weight and bounding box
//   - productType: Free-form product category, required
//   - deliveryCity: City the parcel must be delivered to
//   - destinationAddress: Street address inside the delivery city, required
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: All validation failures joined together
//
// Example:
//
//	dims, _ := kernel.NewDimensions(10, 10, 5, 4)
//	city, _ := kernel.NewCity("Boston")
//	o, err := order.NewOrder(kernel.NewUUID(), userID, dims, "books", city, "1 Main St")
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	dimensions kernel.Dimensions,
	productType string,
	deliveryCity kernel.City,
	destinationAddress string,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setDimensions(dimensions),
		o.setProductType(productType),
		o.setDeliveryCity(deliveryCity),
		o.setDestinationAddress(destinationAddress),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. It applies the same
// validation as NewOrder plus status consistency checks:
//   - an InTransit order must have a route
//   - a Completed order must have a delivery time, other statuses must not
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	dimensions kernel.Dimensions,
	productType string,
	deliveryCity kernel.City,
	destinationAddress string,
	routeID *kernel.UUID,
	status Status,
	createdAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setDimensions(dimensions),
		o.setProductType(productType),
		o.setDeliveryCity(deliveryCity),
		o.setDestinationAddress(destinationAddress),
		o.setRouteID(routeID),
		o.setStatus(status, routeID != nil, deliveredAt != nil),
	); err != nil {
		return nil, err
	}

	if deliveredAt != nil {
		at := deliveredAt.UTC()
		o.deliveredAt = &at
	}

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the owning customer's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) Dimensions() kernel.Dimensions {
	return o.dimensions
}

// Weight is a shortcut for Dimensions().Weight().
func (o *Order) Weight() float64 {
	return o.dimensions.Weight()
}

// Volume is a shortcut for Dimensions().Volume().
func (o *Order) Volume() float64 {
	return o.dimensions.Volume()
}

func (o *Order) ProductType() string {
	return o.productType
}

func (o *Order) DeliveryCity() kernel.City {
	return o.deliveryCity
}

func (o *Order) DestinationAddress() string {
	return o.destinationAddress
}

// RouteID returns the attached route, or nil.
func (o *Order) RouteID() *kernel.UUID {
	return o.routeID
}

// IsOnRoute reports whether the order is attached to routeID.
func (o *Order) IsOnRoute(routeID kernel.UUID) bool {
	return o.routeID != nil && o.routeID.IsEqual(routeID)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the completion time, or nil while not Completed.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// AttachRoute assigns the order to a route.
//
// This method enforces the following business rules:
//   - The route ID must be valid
//   - The order must be Pending (ErrOrderIsNotAssignable otherwise)
//
// Capacity is not checked here; the caller reserves it on the transporter
// before attaching.
func (o *Order) AttachRoute(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return ErrOrderIsNotAssignable
	}

	o.routeID = &routeID
	return nil
}

// StartTransit moves a Pending order to InTransit when its route departs.
func (o *Order) StartTransit() error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as delivered at the given time.
//
// Returns:
//   - nil on success, with DeliveredAt() set to at
//   - error if the order is already Completed or Canceled
func (o *Order) Complete(at time.Time) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	delivered := at.UTC()
	o.status = newStatus
	o.deliveredAt = &delivered
	return nil
}

// ForceComplete closes the order when its route completes. Unlike Complete it
// also accepts Canceled orders; only an already Completed order is rejected,
// and its delivery time is kept.
func (o *Order) ForceComplete(at time.Time) error {
	newStatus, err := o.status.ForceComplete()
	if err != nil {
		return err
	}

	delivered := at.UTC()
	o.status = newStatus
	o.deliveredAt = &delivered
	return nil
}

// Cancel marks a Pending or InTransit order as Canceled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setDimensions(dimensions kernel.Dimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	o.dimensions = dimensions
	return nil
}

func (o *Order) setProductType(productType string) error {
	productType = strings.TrimSpace(productType)
	if productType == "" {
		return errs.NewValueIsRequiredError("productType")
	}
	o.productType = productType
	return nil
}

func (o *Order) setDeliveryCity(city kernel.City) error {
	if err := city.Validate(); err != nil {
		return err
	}
	o.deliveryCity = city
	return nil
}

func (o *Order) setDestinationAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("destinationAddress")
	}
	o.destinationAddress = address
	return nil
}

func (o *Order) setRouteID(routeID *kernel.UUID) error {
	if routeID == nil {
		return nil
	}
	if err := routeID.Validate(); err != nil {
		return err
	}
	id := *routeID
	o.routeID = &id
	return nil
}

func (o *Order) setStatus(status Status, hasRoute, hasDeliveredAt bool) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == InTransit && !hasRoute {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s order must have a route", status),
		)
	}
	if (status == Completed) != hasDeliveredAt {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt is invalid",
			fmt.Errorf("delivery time must be set only for completed orders, status is %s", status),
		)
	}
	o.status = status
	return nil
}
