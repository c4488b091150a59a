package payments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/congo-pay/paylink/internal/metrics"
	"github.com/congo-pay/paylink/internal/order"
)

// Provider names under which the link systems are registered with Service
// and requested through the HTTP API.
const (
	ProviderBasic  = "basic"
	ProviderPriced = "priced"
	ProviderSigned = "signed"
)

// ErrUnknownProvider indicates no provider is registered under the requested name.
var ErrUnknownProvider = errors.New("unknown payment provider")

// Service resolves providers by name and generates links for callers.
type Service struct {
	systems map[string]System
	metrics *metrics.Metrics
}

// NewService registers the named providers. Metrics are optional.
func NewService(systems map[string]System, m *metrics.Metrics) (*Service, error) {
	if len(systems) == 0 {
		return nil, fmt.Errorf("at least one payment provider is required")
	}
	owned := make(map[string]System, len(systems))
	for name, sys := range systems {
		if sys == nil {
			return nil, fmt.Errorf("payment provider %q is nil", name)
		}
		owned[name] = sys
	}
	return &Service{systems: owned, metrics: m}, nil
}

// LinkInput captures the data needed to build a payment link.
type LinkInput struct {
	Provider string
	OrderID  int
	Amount   int
}

// LinkResult is the generated link together with the order it describes.
type LinkResult struct {
	Provider string
	Link     string
	OrderID  int
	Amount   int
}

// Providers lists the registered provider names in lexical order.
func (s *Service) Providers() []string {
	names := make([]string, 0, len(s.systems))
	for name := range s.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Link validates the order and asks the named provider for its link.
func (s *Service) Link(ctx context.Context, input LinkInput) (LinkResult, error) {
	if err := ctx.Err(); err != nil {
		return LinkResult{}, err
	}
	sys, ok := s.systems[input.Provider]
	if !ok {
		return LinkResult{}, fmt.Errorf("%w: %q", ErrUnknownProvider, input.Provider)
	}

	o, err := order.New(input.OrderID, input.Amount)
	if err != nil {
		s.countFailure(input.Provider)
		return LinkResult{}, err
	}

	link, err := sys.PayingLink(o)
	if err != nil {
		s.countFailure(input.Provider)
		return LinkResult{}, err
	}

	if s.metrics != nil {
		s.metrics.LinksGenerated.WithLabelValues(input.Provider).Inc()
	}

	return LinkResult{
		Provider: input.Provider,
		Link:     link,
		OrderID:  o.ID(),
		Amount:   o.Amount(),
	}, nil
}

func (s *Service) countFailure(provider string) {
	if s.metrics != nil {
		s.metrics.LinkFailures.WithLabelValues(provider).Inc()
	}
}
