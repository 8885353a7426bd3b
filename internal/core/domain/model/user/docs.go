// Package user contains the User aggregate. A user always has credentials
// and a name; customer and delivery-person profiles are optional children
// attached at most once each. The delivery-person child carries the
// availability windows, the current location, and the optimistic-lock
// version used by concurrent delivery assignment.
package user
