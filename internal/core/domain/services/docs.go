// Package services provides the domain services of the banana export system.
//
// The package includes:
//   - RecipientService: validates and persists export recipients
//   - OrderService: validates, prices, and persists banana orders
//
// Services are the only writers to the stores. Validation is explicit and
// deliberately asymmetric, preserving the established behavior of the system:
// recipient updates and order create/update persist without re-validating;
// callers invoke OrderService.Validate as a separate prerequisite step.
package services
