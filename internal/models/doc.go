// Package models defines the core domain records for the register.
//
// # Models
//
//   - Product: a purchasable catalog entry
//   - CartLine: one (product, quantity) pairing in the current sale
//   - Settings: the last applied discount and tax percentages
//
// # Design Principles
//
//  1. **Plain data**: models carry no behavior; collection logic lives in
//     the catalog and cart packages, money math in pricing.
//  2. **Snapshot persistence**: each collection is persisted whole under its
//     own storage key, so the JSON tags here are the on-disk field names.
//  3. **Avoid circular references**: cart lines reference products by ID
//     string, never by pointer. A dangling reference is tolerated (the line
//     is skipped during totals and rendering), never treated as an error.
package models
