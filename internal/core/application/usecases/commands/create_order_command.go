package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer's request to ship a parcel.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), userID, 10, 10, 5, 4, "books", "Boston", "1 Main St")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	userID             kernel.UUID
	dimensions         kernel.Dimensions
	productType        string
	deliveryCity       kernel.City
	destinationAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates raw request values and builds the command.
// Every failing field is reported in the joined error.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	weight, length, width, height float64,
	productType string,
	deliveryCity string,
	destinationAddress string,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		productType:        productType,
		destinationAddress: destinationAddress,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setUserID(userID),
		command.setDimensions(weight, length, width, height),
		command.setDeliveryCity(deliveryCity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

func (c CreateOrderCommand) Dimensions() kernel.Dimensions {
	return c.dimensions
}

func (c CreateOrderCommand) ProductType() string {
	return c.productType
}

func (c CreateOrderCommand) DeliveryCity() kernel.City {
	return c.deliveryCity
}

func (c CreateOrderCommand) DestinationAddress() string {
	return c.destinationAddress
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userID", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setDimensions(weight, length, width, height float64) error {
	dimensions, err := kernel.NewDimensions(weight, length, width, height)
	if err != nil {
		return err
	}

	c.dimensions = dimensions
	return nil
}

func (c *CreateOrderCommand) setDeliveryCity(name string) error {
	city, err := kernel.NewCity(name)
	if err != nil {
		return err
	}

	c.deliveryCity = city
	return nil
}
