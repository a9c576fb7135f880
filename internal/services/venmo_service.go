package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/honeynil/minivenmo/internal/infrastructure/card"
	"github.com/honeynil/minivenmo/internal/infrastructure/observability"
	"github.com/honeynil/minivenmo/internal/models"
	pkgerrors "github.com/honeynil/minivenmo/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "minivenmo"

type VenmoService interface {
	CreateUser(ctx context.Context, username string, balance float64, cardNumber string) (*models.User, error)
	Pay(ctx context.Context, actor, target *models.User, amount float64, note string) (*models.Payment, error)
	AddFriend(ctx context.Context, actor, friend *models.User) error
	RenderFeed(ctx context.Context, feed []models.Activity) []string
	WriteFeed(ctx context.Context, w io.Writer, feed []models.Activity) error
	Run(ctx context.Context, w io.Writer) error
}

type venmoService struct {
	processor models.CardProcessor
	metrics   *observability.Metrics
}

func NewVenmoService(processor models.CardProcessor, metrics *observability.Metrics) *venmoService {
	if metrics == nil {
		metrics = observability.NewMetrics(nil)
	}
	return &venmoService{
		processor: processor,
		metrics:   metrics,
	}
}

func (s *venmoService) CreateUser(ctx context.Context, username string, balance float64, cardNumber string) (*models.User, error) {
	_, span := otel.Tracer(tracerName).Start(ctx, "CreateUser")
	defer span.End()

	user, err := models.NewUser(username, s.processor)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid username")
		s.metrics.UsersCreated.WithLabelValues("failed").Inc()
		slog.Warn("invalid username", "username", username)
		return nil, err
	}

	user.AddToBalance(balance)

	if err := user.AddCreditCard(cardNumber); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "credit card rejected")
		s.metrics.UsersCreated.WithLabelValues("failed").Inc()
		slog.Warn("credit card rejected", "username", username, "card", card.Mask(cardNumber), "error", err)
		return nil, err
	}

	s.metrics.UsersCreated.WithLabelValues("success").Inc()
	slog.Info("user created", "username", username, "balance", balance)
	return user, nil
}

func (s *venmoService) Pay(ctx context.Context, actor, target *models.User, amount float64, note string) (*models.Payment, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "Pay")
	defer span.End()

	if actor == nil || target == nil {
		span.RecordError(pkgerrors.ErrNilPaymentUser)
		span.SetStatus(codes.Error, "nil user")
		return nil, pkgerrors.ErrNilPaymentUser
	}

	route := string(models.SourceBalance)
	if !(amount <= actor.Balance()) {
		route = string(models.SourceCard)
	}
	span.SetAttributes(
		attribute.String("actor", actor.Username()),
		attribute.String("target", target.Username()),
		attribute.Float64("amount", amount),
		attribute.String("route", route),
	)

	payment, err := actor.Pay(ctx, target, amount, note)
	if status := chargeStatus(payment, err); status != "" {
		s.metrics.CardCharges.WithLabelValues(status).Inc()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "payment failed")
		s.metrics.RecordPayment(route, "failed", amount)
		slog.Error("payment failed",
			"actor", actor.Username(),
			"target", target.Username(),
			"amount", amount,
			"route", route,
			"error", err)
		return nil, err
	}

	s.metrics.RecordPayment(route, "success", amount)
	slog.Info("payment completed",
		"payment_id", payment.ID,
		"actor", actor.Username(),
		"target", target.Username(),
		"amount", amount,
		"route", route)
	return payment, nil
}

// chargeStatus classifies the card charge made by a Pay call, or returns ""
// when no charge reached the processor.
func chargeStatus(payment *models.Payment, err error) string {
	switch {
	case errors.Is(err, pkgerrors.ErrCardDeclined):
		return "declined"
	case errors.Is(err, pkgerrors.ErrProcessorUnavailable):
		return "unavailable"
	case err == nil && payment.Source == models.SourceCard:
		return "success"
	default:
		return ""
	}
}

func (s *venmoService) AddFriend(ctx context.Context, actor, friend *models.User) error {
	_, span := otel.Tracer(tracerName).Start(ctx, "AddFriend")
	defer span.End()

	if actor == nil || friend == nil {
		span.RecordError(pkgerrors.ErrNilUser)
		span.SetStatus(codes.Error, "nil user")
		return pkgerrors.ErrNilUser
	}

	if !actor.AddFriend(friend) {
		slog.Debug("already friends", "actor", actor.Username(), "friend", friend.Username())
		return nil
	}

	s.metrics.FriendsAdded.Inc()
	slog.Info("friend added", "actor", actor.Username(), "friend", friend.Username())
	return nil
}

func (s *venmoService) RenderFeed(ctx context.Context, feed []models.Activity) []string {
	_, span := otel.Tracer(tracerName).Start(ctx, "RenderFeed")
	defer span.End()

	lines := make([]string, 0, len(feed))
	for _, activity := range feed {
		lines = append(lines, activity.Render())
	}
	span.SetAttributes(attribute.Int("count", len(lines)))
	return lines
}

func (s *venmoService) WriteFeed(ctx context.Context, w io.Writer, feed []models.Activity) error {
	for _, line := range s.RenderFeed(ctx, feed) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write feed: %w", err)
		}
	}
	return nil
}

// Run plays the demo script: two users pay each other, Bobby's feed is
// written to w, then Bobby adds Carol as a friend. Payment errors are
// written to w; any other error aborts the run.
func (s *venmoService) Run(ctx context.Context, w io.Writer) error {
	bobby, err := s.CreateUser(ctx, "Bobby", 5.00, "4111111111111111")
	if err != nil {
		return err
	}
	carol, err := s.CreateUser(ctx, "Carol", 10.00, "4242424242424242")
	if err != nil {
		return err
	}

	if err := s.runPayments(ctx, bobby, carol); err != nil {
		if !errors.Is(err, pkgerrors.ErrPayment) {
			return err
		}
		if _, werr := fmt.Fprintln(w, err); werr != nil {
			return fmt.Errorf("failed to write error: %w", werr)
		}
	}

	if err := s.WriteFeed(ctx, w, bobby.RetrieveFeed()); err != nil {
		return err
	}

	return s.AddFriend(ctx, bobby, carol)
}

func (s *venmoService) runPayments(ctx context.Context, bobby, carol *models.User) error {
	if _, err := s.Pay(ctx, bobby, carol, 5.00, "Coffee"); err != nil {
		return err
	}
	if _, err := s.Pay(ctx, carol, bobby, 15.00, "Lunch"); err != nil {
		return err
	}
	return nil
}
