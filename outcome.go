package busan

// Outcome reports one task's settlement, tagged and positioned.
//
// OK is the discriminant, not Err: a success whose Value is the zero
// value and a failure whose Err is nil are still distinguishable.
type Outcome[T any] struct {
	// Index is the task's 0-based position in the slice given to New.
	Index int

	// Value is the settled value. Meaningful only when OK is true.
	Value T

	// Err is the failure reason, exactly as the task returned it.
	// Meaningful only when OK is false.
	Err error

	// OK is true when the task settled successfully.
	OK bool
}
