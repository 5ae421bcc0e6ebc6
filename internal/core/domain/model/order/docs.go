// Package order provides the Order aggregate: a customer order made of
// scalar details and an exclusively owned, ordered collection of items.
//
// The package includes:
//   - Order: the aggregate root holding identity, details and items
//   - Item: a line of an order with a name, quantity and unit price
//   - Details: the free-text attributes of an order
//
// Key business rules:
//   - Delivery cost follows the delivery type and is never stored
//   - Total is the sum of price × quantity over items plus delivery cost
//   - An empty status never overwrites the current one
//   - On overwrite an item keeps its id only if the order already owns it,
//     items left out of the new collection are orphans
package order
