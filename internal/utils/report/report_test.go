package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/aanand-mishra/oops-exercises/internal/record"
	"github.com/aanand-mishra/oops-exercises/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	_, invalid := record.NewCounter(-1)
	require.Error(t, invalid)

	tests := []struct {
		name       string
		err        error
		wantStatus string
		wantDetail string
	}{
		{"success", nil, types.StatusOK, ""},
		{"refusal", record.ErrInsufficientBalance, types.StatusRefused, "insufficient balance"},
		{"validation", invalid, types.StatusInvalid, "invalid counter: count must be non-negative"},
		{"other", errors.New("boom"), types.StatusInvalid, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := Outcome(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantDetail, detail)
		})
	}
}

var sample = []types.Entry{
	{ID: 1, Exercise: "bank account", Action: "deposit 200", Status: types.StatusOK, Detail: "balance 700"},
	{ID: 2, Exercise: "bank account", Action: "withdraw 1000", Status: types.StatusRefused, Detail: "insufficient balance"},
	{ID: 3, Exercise: "counter", Action: "open", Status: types.StatusInvalid, Detail: "invalid counter"},
	{ID: 4, Exercise: "counter", Action: "increment", Status: types.StatusOK},
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, Summary{OK: 2, Refused: 1, Invalid: 1}, Summarize(sample))
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, sample))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(sample))

	// Columns are aligned: the action column starts at the same offset everywhere.
	col := strings.Index(lines[0], "deposit 200")
	assert.Equal(t, col, strings.Index(lines[1], "withdraw 1000"))
	assert.Equal(t, col, strings.Index(lines[2], "open"))
	assert.Contains(t, lines[1], "refused")
	assert.Contains(t, lines[1], "insufficient balance")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample[:2]))

	var got []types.Entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, sample[:2], got)
	assert.Contains(t, buf.String(), `"run_id"`)
}

func TestFormatJSON(t *testing.T) {
	out, err := FormatJSON(Summary{OK: 1, Refused: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":1,"refused":2,"invalid":0}`, out)
	assert.NotContains(t, out, "\n")

	_, err = FormatJSON(make(chan int))
	assert.Error(t, err)
}

func TestOutcomeKeepsTiersApart(t *testing.T) {
	u, err := record.NewUser("joshi", "12345")
	require.NoError(t, err)

	status, detail := Outcome(u.ChangePassword("12345", strings.Repeat("a", 80)))
	assert.Equal(t, types.StatusRefused, status)
	assert.Equal(t, record.ErrPasswordTooLong.Error(), detail)

	status, _ = Outcome(record.ErrOverflow)
	assert.Equal(t, types.StatusRefused, status)

	_, err = record.NewUser("joshi", strings.Repeat("é", 72))
	status, detail = Outcome(err)
	assert.Equal(t, types.StatusInvalid, status)
	assert.Equal(t, "invalid user: password must be at most 72 bytes", detail)
}
