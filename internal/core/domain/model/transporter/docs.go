// Package transporter provides the Transporter aggregate: the vehicle and the
// remaining weight and volume capacity of a user who drives routes.
//
// Capacity is never negative. It only shrinks, when an order is assigned to
// one of the transporter's routes; nothing restores it.
package transporter
