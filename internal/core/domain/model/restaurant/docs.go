// Package restaurant contains the Restaurant aggregate: the venue profile,
// its opening hours, and the menu it owns. Menu items are created, updated
// and removed only through the aggregate root, which enforces
// case-insensitive name uniqueness within one restaurant.
package restaurant
