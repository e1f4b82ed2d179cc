// Package busan multiplexes a fixed set of tasks by completion order.
//
// It combines:
//   - errgroup for task execution and concurrency limits
//   - a buffered settlement channel for ordered outcome streaming
//
// Core behavior:
//   - hand New a slice of tasks; all of them start immediately
//   - consume settlements one at a time via Next(ctx)
//   - drain everything at once with All(ctx)
//   - range over settlements with Outcomes(ctx)
//
// Semantics:
//   - Next(ctx) returns (out, true, nil) for one settled task
//   - Next(ctx) returns (zero, false, nil) once every task has been
//     delivered, and keeps doing so forever
//   - Next(ctx) returns (zero, false, ctx.Err()) if the caller context
//     ends; the undelivered settlements stay available
//   - a task error settles as a failure Outcome, never as an error from
//     Next; the error value is passed through untouched
//   - delivery order is settlement order, which has no relation to the
//     order tasks were given in
//
// Policy options:
//   - WithMaxConcurrency(n): bound how many tasks run at once
//   - WithPanicToError(true): convert task panic to a failure (default)
//   - WithPanicToError(false): rethrow panic
//
// busan never cancels a task. Tasks run to completion whether or not
// anyone keeps calling Next; a caller wanting a timeout should make the
// timeout one of the tasks.
package busan
