// Package services contains stateless domain services implementing business
// logic that spans multiple aggregates. The menu pricing validator checks a
// menu's declared price against the products it bundles; the products are
// resolved by the application layer so the service stays free of I/O.
package services
