// Package schedule contains the Schedule aggregate: the exactly-once
// binding of a staff member to an order for fulfillment.
package schedule
