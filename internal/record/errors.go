package record

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Two error tiers live in this package:
//
//	*ValidationError — a constructor rejected its input. No record exists.
//	refusal          — an operation's precondition did not hold. The record
//	                   is untouched and can keep being used.
//
// Every refusal matches ErrRefused, so a caller can tell the tiers apart with
// errors.Is(err, record.ErrRefused) without listing each sentinel.
// ─────────────────────────────────────────────────────────────────────────────

// ErrRefused is matched by every operation-time refusal.
var ErrRefused = errors.New("operation refused")

// Operation-time refusals.
var (
	ErrNonPositiveAmount   = refusal("amount must be positive")
	ErrInsufficientBalance = refusal("insufficient balance")
	ErrBelowZero           = refusal("count must not go below 0")
	ErrWrongPassword       = refusal("wrong password")
	ErrSamePassword        = refusal("new password must differ from the old password")
	ErrPasswordTooShort    = refusal("password must be at least 5 characters")
	ErrInsufficientStock   = refusal("insufficient stock")
	ErrPasswordTooLong     = refusal("password must be at most 72 bytes")
	ErrOverflow            = refusal("amount would overflow the stored total")
)

// fits reports whether amount can be added to total without wrapping past
// math.MaxInt64. Both values are non-negative wherever it is called.
func fits(total, amount int64) bool {
	return amount <= math.MaxInt64-total
}

type refusal string

func (r refusal) Error() string { return string(r) }

func (r refusal) Is(target error) bool { return target == ErrRefused }

// ValidationError is returned by constructors when one or more invariants
// do not hold. Reasons lists one sentence per violated invariant, e.g.
// "balance must be non-negative".
type ValidationError struct {
	Record  string
	Reasons []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(e.Reasons, ", "))
}
