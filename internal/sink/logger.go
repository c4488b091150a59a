package sink

import "log/slog"

// Logger delivers messages into a structured logger at error level.
type Logger struct {
	logger *slog.Logger
}

// NewLogger constructs a logger-backed sink.
func NewLogger(logger *slog.Logger) (*Logger, error) {
	if logger == nil {
		return nil, ErrMissingBackend
	}
	return &Logger{logger: logger}, nil
}

// WriteError emits the message as an error record.
func (l *Logger) WriteError(message string) error {
	if message == "" {
		return ErrMissingMessage
	}
	l.logger.Error("error reported", slog.String("message", message))
	return nil
}
