// Package table contains the OrderTable and TableGroup aggregates.
//
// An OrderTable tracks a physical table's occupancy (empty flag) and guest
// count. A TableGroup combines at least two empty, ungrouped tables for
// shared billing; membership is exclusive and fixed at formation. Both
// aggregates gate their mutations on the state of the orders bound to the
// tables involved: a table with an order that has not reached Completion can
// neither change its empty flag nor be released from its group. The orders
// are always passed in freshly loaded rather than cached on the table, so
// the checks cannot act on stale state.
package table
