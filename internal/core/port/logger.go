package port

import "maps"

// Fields - поля записи лога: session_id, use_case, trace_id и т.п.
type Fields map[string]interface{}

// Merge возвращает новый набор полей; при совпадении ключей побеждает extra.
// Исходные наборы не меняются.
func (f Fields) Merge(extra Fields) Fields {
	merged := make(Fields, len(f)+len(extra))
	maps.Copy(merged, f)
	maps.Copy(merged, extra)
	return merged
}

// LoggerPort - логгер, которым пользуются use case'ы, адаптеры и middleware.
// Логгер запроса (с trace_id) передается через contextkeys.
type LoggerPort interface {
	Debug(msg string, fields Fields)
	Info(msg string, fields Fields)
	Warn(msg string, fields Fields)
	Error(msg string, err error, fields Fields)

	// WithFields не меняет текущий логгер
	WithFields(fields Fields) LoggerPort
}
