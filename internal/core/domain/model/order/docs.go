// Package order provides the Order entity for the banana export system.
//
// An order is a single shipment request: one recipient, a delivery date, and a
// banana quantity expressed in 25 kg boxes. The price is always derived from
// the quantity by the order domain service; it is never accepted from callers.
//
// Key business rules (enforced by services.OrderService.Validate):
//   - The delivery date must be at least one week in the future
//   - The quantity must be between 25 and 10,000 kg, in multiples of 25
//   - The price equals quantity multiplied by the fixed per-kilogram rate
package order
