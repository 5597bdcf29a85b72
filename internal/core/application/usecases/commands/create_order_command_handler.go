package commands

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/order"
)

const orderCreatedComment = "order created"

// CreateOrderCommandHandler persists a new Pending order together with the
// first row of its status history.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and can be assigned to a route
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order inside one transaction. Domain validation runs
// before a transaction is opened.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.UserID(),
		cmd.Dimensions(),
		cmd.ProductType(),
		cmd.DeliveryCity(),
		cmd.DestinationAddress(),
	)
	if err != nil {
		return err
	}

	created, err := order.NewStatusChange(newOrder.ID(), newOrder.Status(), orderCreatedComment, time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.OrderStatusHistoryRepository().Append(ctx, created); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
