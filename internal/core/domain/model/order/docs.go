// Package order provides the Order aggregate of the logistics domain: a
// customer's parcel, where it must be delivered and how far its delivery has
// progressed.
//
// The package includes:
//   - Order: The aggregate root holding dimensions, delivery target and route attachment
//   - Status: The lifecycle state machine (pending, in_transit, completed, canceled)
//   - StatusChange: One entry of the append-only order status history
//
// Key business rules:
//   - Orders are created Pending and may be attached to a route only while Pending
//   - The attached route drives every later status change
//   - Completed and Canceled are terminal
//   - Completing an order records its delivery time
package order
