package port

import (
	"context"
	"property-showcase/internal/core/domain"
)

// ContactSinkPort принимает отправленные сообщения агенту.
// Реализация только логирует сообщение локально.
type ContactSinkPort interface {
	Deliver(ctx context.Context, submission domain.ContactSubmission) error
}
