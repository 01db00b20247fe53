package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/christian-constantin/commandit/internal/core/domain"
	"github.com/christian-constantin/commandit/internal/core/ports"
)

const defaultDispatchTimeout = 15 * time.Second

// OrderService handles order submission and status administration.
type OrderService struct {
	repo            ports.OrderRepository
	mailer          ports.Mailer
	companyName     string
	emailDomain     string
	operationsBox   []string
	dispatchTimeout time.Duration
	log             zerolog.Logger
}

// NewOrderService builds an OrderService. operationsBox is the list of
// mailboxes every submitted order is dispatched to.
func NewOrderService(
	repo ports.OrderRepository,
	mailer ports.Mailer,
	companyName string,
	emailDomain string,
	operationsBox []string,
	dispatchTimeout time.Duration,
	log zerolog.Logger,
) *OrderService {
	if dispatchTimeout <= 0 {
		dispatchTimeout = defaultDispatchTimeout
	}
	return &OrderService{
		repo:            repo,
		mailer:          mailer,
		companyName:     companyName,
		emailDomain:     emailDomain,
		operationsBox:   operationsBox,
		dispatchTimeout: dispatchTimeout,
		log:             log,
	}
}

// Submit validates the order, persists it as pending, and dispatches the
// rendered notification to the operations mailbox. Dispatch is synchronous
// and never retried; resubmitting an identical payload creates a second,
// independent order and dispatch.
func (s *OrderService) Submit(ctx context.Context, input ports.SubmitOrderInput) (*ports.SubmitOrderResult, error) {
	if input.Type == "" || len(input.Items) == 0 || input.Requester == "" {
		return nil, fmt.Errorf("%w: type, items and requester are required", domain.ErrValidation)
	}
	if !domain.EmailInDomain(input.Requester, s.emailDomain) {
		return nil, fmt.Errorf("%w: requester email is not part of the organisation", domain.ErrForbidden)
	}

	// The client is expected to strip zero-quantity lines, but the service
	// does not assume it.
	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, it := range input.Items {
		if it.Quantity <= 0 {
			continue
		}
		if it.Name == "" {
			return nil, fmt.Errorf("%w: every item needs a name", domain.ErrValidation)
		}
		items = append(items, domain.OrderItem{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			Description: it.Description,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order has no items with a positive quantity", domain.ErrValidation)
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Requester: input.Requester,
		Date:      time.Now().UTC(),
		Status:    domain.StatusPending,
		Items:     items,
		Notes:     input.Notes,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error().Err(err).Str("requester", order.Requester).Msg("failed to persist order")
		return nil, err
	}

	html, err := renderOrderMail(order, s.companyName)
	if err != nil {
		return nil, fmt.Errorf("render order mail: %w", err)
	}

	dispatchCtx, cancel := context.WithTimeout(ctx, s.dispatchTimeout)
	defer cancel()

	msg := ports.MailMessage{
		To:      s.operationsBox,
		Subject: fmt.Sprintf("[Commande %s] - %s", order.Type, order.Requester),
		HTML:    html,
	}
	if err := s.mailer.Send(dispatchCtx, msg); err != nil {
		s.log.Error().Err(err).
			Str("order_id", order.ID).
			Str("requester", order.Requester).
			Msg("order mail dispatch failed")
		return nil, fmt.Errorf("%w: the operations team was not notified", domain.ErrDispatchFailed)
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("type", order.Type).
		Str("requester", order.Requester).
		Int("items", len(order.Items)).
		Msg("order submitted")

	return &ports.SubmitOrderResult{
		OrderID: order.ID,
		Message: "Commande envoyée avec succès",
	}, nil
}

// List returns every order, newest first (repository ordering).
func (s *OrderService) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus applies a status transition after checking the state machine.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidTransition, order.Status, status)
	}

	updated, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", id).
		Str("from", string(order.Status)).
		Str("to", string(status)).
		Msg("order status updated")

	return updated, nil
}
