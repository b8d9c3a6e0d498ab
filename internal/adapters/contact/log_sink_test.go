package contact

import (
	"context"
	"testing"
	"time"

	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logEntry struct {
	msg    string
	fields port.Fields
}

type captureLogger struct {
	base    port.Fields
	entries *[]logEntry
}

func (c *captureLogger) Info(msg string, fields port.Fields) {
	merged := port.Fields{}
	for k, v := range c.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	*c.entries = append(*c.entries, logEntry{msg: msg, fields: merged})
}
func (c *captureLogger) Warn(msg string, fields port.Fields)             {}
func (c *captureLogger) Error(msg string, err error, fields port.Fields) {}
func (c *captureLogger) Debug(msg string, fields port.Fields)            {}
func (c *captureLogger) WithFields(fields port.Fields) port.LoggerPort {
	return &captureLogger{base: fields, entries: c.entries}
}

func TestLogSink_Deliver(t *testing.T) {
	entries := &[]logEntry{}
	sink := NewLogSink(&captureLogger{entries: entries})
	propertyID := uuid.New()
	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")

	err := sink.Deliver(ctx, domain.ContactSubmission{
		PropertyID:  propertyID,
		Name:        "Ann",
		Email:       "a@b.com",
		Message:     "Hi",
		SubmittedAt: time.Now(),
	})

	require.NoError(t, err)
	require.Len(t, *entries, 1)
	entry := (*entries)[0]
	assert.Equal(t, "Sending message from Ann (a@b.com): Hi", entry.msg)
	assert.Equal(t, "contact_sink", entry.fields["component"])
	assert.Equal(t, propertyID.String(), entry.fields["property_id"])
	assert.Equal(t, "trace-1", entry.fields["trace_id"])
}

func TestLogSink_CanceledContext(t *testing.T) {
	entries := &[]logEntry{}
	sink := NewLogSink(&captureLogger{entries: entries})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sink.Deliver(ctx, domain.ContactSubmission{Name: "Ann"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, *entries)
}
