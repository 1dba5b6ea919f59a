// Package kernel contains the shared value objects of the domain model:
// UUID identifiers and Money amounts. Both are immutable, validate on
// construction, and are safe for concurrent use.
package kernel
