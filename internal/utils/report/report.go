// Package report turns step results into transcript statuses and writes a
// finished transcript out, either as JSON or as aligned status lines.
//
// Every exercise step ends in one of three shapes:
//
//	{ "status": "ok",      "detail": "balance 700" }
//	{ "status": "refused", "detail": "insufficient balance" }
//	{ "status": "invalid", "detail": "invalid bank account: balance must be non-negative" }
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aanand-mishra/oops-exercises/internal/record"
	"github.com/aanand-mishra/oops-exercises/internal/types"
)

// Outcome classifies the error returned by a step.
//
//	nil                      → ok
//	a refusal (ErrRefused)   → refused, with the refusal's message
//	anything else            → invalid, with the error message
//
// Every expected operation failure is a refusal, so "anything else" means a
// record could not be built (or an internal failure such as the system
// random source breaking during hashing).
func Outcome(err error) (status, detail string) {
	switch {
	case err == nil:
		return types.StatusOK, ""
	case errors.Is(err, record.ErrRefused):
		return types.StatusRefused, err.Error()
	default:
		return types.StatusInvalid, err.Error()
	}
}

// FormatJSON renders data as a single line of JSON, suitable for a
// transcript detail column.
func FormatJSON(data any) (string, error) {
	out, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Summarize counts a transcript's entries by status.
func Summarize(entries []types.Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status {
		case types.StatusOK:
			s.OK++
		case types.StatusRefused:
			s.Refused++
		case types.StatusInvalid:
			s.Invalid++
		}
	}
	return s
}

// Summary counts a transcript's entries by status.
type Summary struct {
	OK      int `json:"ok"`
	Refused int `json:"refused"`
	Invalid int `json:"invalid"`
}

// WriteJSON writes data as indented JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteText writes one aligned line per entry:
//
//	bank account   deposit 200     ok       balance 700
//	bank account   withdraw 1000   refused  insufficient balance
func WriteText(w io.Writer, entries []types.Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, e := range entries {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Exercise, e.Action, e.Status, e.Detail); err != nil {
			return err
		}
	}
	return tw.Flush()
}
