package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"ledger-agent/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLogLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestQueryLogger_Events(t *testing.T) {
	var buf bytes.Buffer
	logger := NewQueryLogger(slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx := WithTraceID(context.Background(), "trace-123")

	logger.LogQueryStarted(ctx, "answer", "本月支出")
	logger.LogIntentResolved(ctx, models.RangeLast7Days, "expense")
	logger.LogQueryCompleted(ctx, "answer", &models.SummaryResult{
		TransactionCount: 4,
		Window:           models.TimeWindow{Start: "2024-03-01", End: "2024-03-07"},
	}, 15)
	logger.LogQueryFailed(ctx, "answer", StepRecordFetch, errors.New("boom"), 9)

	entries := decodeLogLines(t, &buf)
	require.Len(t, entries, 4)

	assert.Equal(t, "query_started", entries[0]["event_type"])
	assert.Equal(t, float64(4), entries[0]["question_length"])
	assert.Equal(t, "trace-123", entries[0]["trace_id"])
	assert.NotContains(t, buf.String(), "本月支出")

	assert.Equal(t, "last_7_days", entries[1]["date_range"])
	assert.Equal(t, "2024-03-01..2024-03-07", entries[2]["window"])
	assert.Equal(t, float64(4), entries[2]["transaction_count"])

	assert.Equal(t, "WARN", entries[3]["level"])
	assert.Equal(t, "record_fetch", entries[3]["step"])
	assert.Equal(t, "boom", entries[3]["error"])
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	assert.Equal(t, "abc", TraceIDFromContext(WithTraceID(context.Background(), "abc")))
}
