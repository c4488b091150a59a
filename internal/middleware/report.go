package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/paylink/internal/sink"
)

// ErrorReport logs each request and hands failed requests to reporter as a
// single-line message. Without a reporter the error is logged directly. A
// failure of the reporter itself is logged, never hidden, but does not
// change the response.
func ErrorReport(reporter sink.ErrorSink, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		attrs := []any{
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		requestID := RequestIDFrom(c)
		if requestID != "" {
			attrs = append(attrs, slog.String("request_id", requestID))
		}

		if err == nil {
			logger.Info("request completed", attrs...)
			return nil
		}

		if reporter == nil {
			attrs = append(attrs, slog.Any("error", err))
			logger.Error("request completed", attrs...)
			return err
		}

		// The reporter carries the error text; the access line only records
		// the outcome so each failure is printed once.
		logger.Info("request completed", attrs...)
		message := fmt.Sprintf("%s %s %s -> %d: %v", time.Now().UTC().Format(time.RFC3339), c.Method(), c.Path(), status, err)
		if requestID != "" {
			message += " [" + requestID + "]"
		}
		if rerr := reporter.WriteError(message); rerr != nil {
			logger.Warn("error report delivery failed", slog.Any("error", rerr), slog.Any("cause", err))
		}
		return err
	}
}
