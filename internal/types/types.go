// Package types holds the data structures shared by the runner, the
// journal, and the report writers. Keeping them here avoids import cycles:
// storage and report both import types without depending on each other.
package types

// Step outcomes. A step is one constructor call or one operation on a record.
const (
	StatusOK      = "ok"      // the step succeeded
	StatusRefused = "refused" // an operation's precondition did not hold
	StatusInvalid = "invalid" // a constructor rejected its input
)

// Entry is one line of a run transcript.
//
// validate:"..." tags are checked by the journal before an entry is stored,
// so a malformed entry never reaches the database.
type Entry struct {
	ID       int64  `json:"id"`
	RunID    string `json:"run_id"   validate:"required,uuid"`
	Exercise string `json:"exercise" validate:"required"`
	Action   string `json:"action"   validate:"required"`
	Status   string `json:"status"   validate:"required,oneof=ok refused invalid"`
	Detail   string `json:"detail"`
}
