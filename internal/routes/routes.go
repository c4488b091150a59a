package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/congo-pay/paylink/internal/clock"
	"github.com/congo-pay/paylink/internal/config"
	"github.com/congo-pay/paylink/internal/digest"
	"github.com/congo-pay/paylink/internal/metrics"
	"github.com/congo-pay/paylink/internal/middleware"
	"github.com/congo-pay/paylink/internal/payments"
	"github.com/congo-pay/paylink/internal/sink"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg     config.Config
	Cache   *redis.Client
	Logger  *slog.Logger
	Metrics *metrics.Metrics

	// Clock drives the Friday gate on the error log file; nil means wall clock.
	Clock clock.Clock
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	if !isDev(d.Cfg.Env) && d.Cache == nil {
		return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.Env)
	}
	if d.Metrics == nil {
		d.Metrics = metrics.New("paylink")
	}

	reporter, err := BuildReporter(d)
	if err != nil {
		return fmt.Errorf("build error reporter: %w", err)
	}
	paymentSvc, err := BuildPaymentService(d.Cfg, d.Metrics)
	if err != nil {
		return fmt.Errorf("build payment service: %w", err)
	}

	// Middlewares. recover sits inside ErrorReport so recovered panics are
	// reported like any other handler error.
	app.Use(middleware.RequestID())
	app.Use(middleware.ErrorReport(reporter, d.Logger))
	app.Use(recover.New())
	app.Use(middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))

	RegisterHealthRoutes(app, d)
	RegisterMetricsRoute(app, d.Metrics)

	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": middleware.RequestIDFrom(c),
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
	RegisterPaymentRoutes(api, payments.NewHandler(paymentSvc))

	return nil
}

// BuildPaymentService registers the three link providers with the digest
// algorithms named in the configuration.
func BuildPaymentService(cfg config.Config, m *metrics.Metrics) (*payments.Service, error) {
	basicHash, err := digest.Lookup(cfg.BasicDigest)
	if err != nil {
		return nil, err
	}
	pricedHash, err := digest.Lookup(cfg.PricedDigest)
	if err != nil {
		return nil, err
	}
	signedHash, err := digest.Lookup(cfg.SignedDigest)
	if err != nil {
		return nil, err
	}

	basic, err := payments.NewBasic(basicHash)
	if err != nil {
		return nil, err
	}
	priced, err := payments.NewPriced(cfg.UnitPrice, pricedHash)
	if err != nil {
		return nil, err
	}
	signed, err := payments.NewSigned(cfg.UnitPrice, cfg.SecretKey, signedHash)
	if err != nil {
		return nil, err
	}

	return payments.NewService(map[string]payments.System{
		payments.ProviderBasic:  basic,
		payments.ProviderPriced: priced,
		payments.ProviderSigned: signed,
	}, m)
}

// BuildReporter composes the error sink used by the HTTP layer: the
// structured logger (stdout without one) always, the log file on Fridays only, and the shared
// Redis list when a cache is configured. Each branch is counted separately.
func BuildReporter(d Deps) (sink.ErrorSink, error) {
	primary, err := primarySink(d)
	if err != nil {
		return nil, err
	}
	file, err := sink.NewCounting("file", sink.NewFile(d.Cfg.ErrorLogFile), d.Metrics)
	if err != nil {
		return nil, err
	}
	fridayFile, err := sink.NewFridayGate(file, d.Clock)
	if err != nil {
		return nil, err
	}

	sinks := []sink.ErrorSink{primary, fridayFile}
	if d.Cache != nil {
		shared, err := sink.NewRedis(d.Cache, "")
		if err != nil {
			return nil, err
		}
		counted, err := sink.NewCounting("redis", shared, d.Metrics)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, counted)
	}
	fan, err := sink.NewFanOut(sinks...)
	if err != nil {
		return nil, err
	}
	return fan, nil
}

// primarySink reports through the application logger, or straight to
// stdout when no logger is wired.
func primarySink(d Deps) (sink.ErrorSink, error) {
	if d.Logger == nil {
		return sink.NewCounting("console", sink.NewConsole(nil), d.Metrics)
	}
	logged, err := sink.NewLogger(d.Logger)
	if err != nil {
		return nil, err
	}
	return sink.NewCounting("logger", logged, d.Metrics)
}

func isDev(env string) bool {
	switch strings.ToLower(env) {
	case "dev", "development", "local", "test":
		return true
	default:
		return false
	}
}
