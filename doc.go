// Package invest provides the functions and types behind the inv command
// line: capital budgeting of a series of cash flows, and the lookup of a
// stock's latest closing price.
//
// The core functionalities include:
//   - Evaluation: Net Present Value and Internal Rate of Return of a series of
//     periodic cash flows, and the accept/reject recommendation derived from
//     them, and the discounted cash flow schedule with its payback year.
//   - Input handling: a Form holding the raw text of one session, rebuilt
//     deterministically when the number of years changes, and parsed into a
//     Request or a precise InputError.
//   - Market Data: the Provider contract implemented by the yahoo and eodhd
//     packages, and the Quote they return.
//
// Evaluation functions are pure: they hold no state and perform no I/O.
package invest
