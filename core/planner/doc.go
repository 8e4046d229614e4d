// Package planner turns scored work items and a calendar snapshot into
// concrete block proposals.
//
// It builds a per-day availability picture (capacity report plus free
// slots) for every day of the planning horizon, ranks items by priority,
// and runs a greedy first-fit pass: highest-ranked item first, earliest
// fitting day and slot, longest lane block template that fits. Placed
// blocks shrink their slot so the remainder stays available to later
// items; a per-day block counter bounds fragmentation. Items that fit
// nowhere in the horizon come back as infeasibility records carrying a
// fixed remediation menu.
//
// Key components:
//   - Proposer: orchestrates scoring, capacity, lane budgets and the
//     greedy loop.
//   - PlanResult: proposals, infeasibility records, per-day capacity
//     reports and the ranked scores of the pass.
//   - Summarize: per-pass statistics over scores and utilization.
//
// The pass is pure and deterministic: identical inputs, including item
// order, always produce identical outputs. Equal-score items keep their
// input order, which the upstream intake supplies in insertion order;
// that tie-break is a documented contract, not an accident of the sort.
package planner
