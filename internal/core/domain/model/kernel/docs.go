// Package kernel provides the value objects shared by the logistics domain
// model: identifiers, city names and parcel dimensions.
//
// The package includes:
//   - UUID: identifier for orders, routes and users
//   - City: delivery/stop city compared case and whitespace insensitively
//   - Dimensions: parcel weight and bounding box with the derived volume
//
// Values are immutable and must be created through their constructors; each
// embeds a guard.ConstructorGuard so zero values fail Validate.
package kernel
