// Package wealthwise provides the computation core of a personal/couple
// finance tracker for the Brazilian market. It is local-first: all state is
// in-memory and persisted as a single JSON snapshot the user owns.
//
// The core functionalities include:
//   - Ledger Management: accounts and an immutable transaction history,
//     composed from typed user intents (expense, income, transfer,
//     installment purchases) and kept sorted most recent first.
//   - Investment Tracking: positions in FIIs, stocks, crypto and
//     rate-indexed fixed income, with weighted-average cost basis on
//     contribution, proportional basis reduction on redemption, and
//     CDI-based income projections.
//   - Derived State: dashboard aggregates (net worth, period income and
//     expense), budget evaluation, recurring-bill detection and goal
//     sizing are all pure functions over the ledger.
//   - Data Persistence: an all-or-nothing JSON snapshot of the full state.
//
// This package is the foundational logic for the `ww` command-line tool and
// the advisor package; neither adds financial semantics of its own.
package wealthwise
