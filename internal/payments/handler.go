package payments

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/congo-pay/paylink/internal/digest"
	"github.com/congo-pay/paylink/internal/order"
)

// Handler exposes payment link endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a payment handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type linkRequest struct {
	Provider string `json:"provider"`
	OrderID  int    `json:"order_id"`
	Amount   int    `json:"amount"`
}

// CreateLink generates a payment link for the posted order.
func (h *Handler) CreateLink(c *fiber.Ctx) error {
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	res, err := h.service.Link(c.UserContext(), LinkInput{
		Provider: req.Provider,
		OrderID:  req.OrderID,
		Amount:   req.Amount,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUnknownProvider):
			return fiber.NewError(http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidID), errors.Is(err, order.ErrInvalidAmount):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, digest.ErrInvalidInput):
			return fiber.NewError(http.StatusUnprocessableEntity, err.Error())
		default:
			return fiber.NewError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"provider": res.Provider,
		"link":     res.Link,
		"order_id": res.OrderID,
		"amount":   res.Amount,
	})
}

// ListProviders returns the registered provider names.
func (h *Handler) ListProviders(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"providers": h.service.Providers()})
}
