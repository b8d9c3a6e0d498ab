package contact

import (
	"context"
	"fmt"
	"property-showcase/internal/contextkeys"
	"property-showcase/internal/core/domain"
	"property-showcase/internal/core/port"
)

var _ port.ContactSinkPort = (*LogSink)(nil)

// LogSink "отправляет" сообщение агенту, записывая его в лог. Сетевых вызовов нет.
type LogSink struct {
	logger port.LoggerPort
}

func NewLogSink(logger port.LoggerPort) *LogSink {
	return &LogSink{logger: logger.WithFields(port.Fields{"component": "contact_sink"})}
}

func (s *LogSink) Deliver(ctx context.Context, submission domain.ContactSubmission) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fields := port.Fields{
		"property_id":  submission.PropertyID.String(),
		"name":         submission.Name,
		"email":        submission.Email,
		"message":      submission.Message,
		"submitted_at": submission.SubmittedAt,
	}
	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		fields["trace_id"] = traceID
	}

	s.logger.Info(fmt.Sprintf("Sending message from %s (%s): %s", submission.Name, submission.Email, submission.Message), fields)
	return nil
}
