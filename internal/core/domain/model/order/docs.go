// Package order provides domain entities and business logic for freight order
// management. It implements the Order aggregate root with lifecycle management
// and the role-gated status transition policy.
//
// The package includes:
//   - Order: The aggregate root carrying route, cargo, customer, and tracking data
//   - Status: A state machine that enforces valid order status transitions
//   - Role: The shipper/carrier distinction that gates transitions
//   - AvailableTransitions / RequestTransition: the pure policy engine
//
// Key business rules:
//   - Orders are created by shippers in pending status with a positive weight,
//     at least one line item, and complete customer contact details
//   - The status follows the workflow pending -> accepted -> picked_up ->
//     in_transit -> delivered, advanced one step at a time by carriers
//   - Shippers may cancel any non-terminal order, with a mandatory reason
//   - Delivered and cancelled orders are immutable
//
// Orders are immutable values: every transition produces a new Order, so the
// policy engine is pure and safe under concurrent in-flight requests.
package order
