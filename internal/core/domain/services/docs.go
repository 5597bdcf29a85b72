// Package services provides domain services that span the Order, Route and
// Transporter aggregates of the logistics system.
//
// The package includes:
//   - RouteCompatibility: decides whether an order can be carried on a route
//   - StatusCascade: propagates route status changes and stop arrivals to orders
//
// Both services are stateless and never touch storage; application handlers
// load the aggregates, call the service and persist what changed.
package services
