// Package kernel contains the shared value objects of the domain model:
// identifiers, geographic locations, postal addresses, and email addresses.
// All types are immutable and self-validating; the zero value of every type
// is invalid and construction must go through the provided factory
// functions.
package kernel
