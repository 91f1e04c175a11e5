// Package order contains the Order aggregate and its lifecycle state machine.
//
// An Order is placed at a table and owns its line items (menu references with
// quantities). Its status moves through Cooking -> Meal -> Completion, and
// Completion is terminal: the state machine's single hard gate is that no
// transition leaves a completed order. Whether an order is still active
// (status before Completion) is the query the table and table group
// aggregates use to decide if a table may be emptied or ungrouped.
package order
