// Package route provides the Route aggregate: a transporter's journey from an
// origin through numbered stops to a destination.
//
// Key business rules:
//   - Status follows pending -> in_transit -> completed, with pending|in_transit -> canceled
//   - Completed and canceled routes are terminal
//   - Advancing past the last stop completes the route
//   - A route serves a delivery city when the city is its destination or one of its stops
package route
