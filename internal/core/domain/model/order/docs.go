// Package order contains the Order aggregate: the root entity owning order
// items, the optional delivery, and the optional payment, together with the
// status state machine that governs the order lifecycle.
//
// All mutation goes through methods on Order; child entities are never
// modified from outside the aggregate. Every operation validates its
// preconditions and returns a typed error value on failure instead of
// mutating partially.
package order
