package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	// Платежи по маршруту (balance/card) и результату
	Payments *prometheus.CounterVec
	// Суммы успешных платежей
	PaymentAmount *prometheus.HistogramVec
	CardCharges   *prometheus.CounterVec
	UsersCreated  *prometheus.CounterVec
	FriendsAdded  prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Payments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minivenmo_payments_total",
				Help: "Total number of payment attempts",
			},
			[]string{"route", "status"},
		),
		PaymentAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "minivenmo_payment_amount",
				Help:    "Amount of successful payments",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
			[]string{"route"},
		),
		CardCharges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minivenmo_card_charges_total",
				Help: "Total number of card charges sent to the processor",
			},
			[]string{"status"},
		),
		UsersCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "minivenmo_users_created_total",
				Help: "Total number of user creation attempts",
			},
			[]string{"status"},
		),
		FriendsAdded: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "minivenmo_friends_added_total",
				Help: "Total number of friendships recorded",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.Payments, m.PaymentAmount, m.CardCharges, m.UsersCreated, m.FriendsAdded)
	}
	return m
}

func (m *Metrics) RecordPayment(route, status string, amount float64) {
	m.Payments.WithLabelValues(route, status).Inc()
	if status == "success" {
		m.PaymentAmount.WithLabelValues(route).Observe(amount)
	}
}
