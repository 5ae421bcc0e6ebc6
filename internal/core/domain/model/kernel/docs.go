// Package kernel provides the value objects shared across the order model.
//
// The package includes:
//   - ID: the database-assigned surrogate key of orders and items
//   - DeliveryType: the free-text delivery option and the cost it implies
//
// Both are plain comparable values and safe for concurrent use.
package kernel
