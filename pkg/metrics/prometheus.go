package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsCollector struct {
	registry              *prometheus.Registry
	transactionsProcessed prometheus.Counter
	transactionsFailed    prometheus.Counter
	transactionDuration   prometheus.Histogram
	accountBalance        *prometheus.GaugeVec
	mu                    sync.RWMutex
	logger                *slog.Logger
}

func NewMetricsCollector(logger *slog.Logger) *MetricsCollector {
	if logger == nil {
		logger = slog.Default()
	}

	registry := prometheus.NewRegistry()

	collector := &MetricsCollector{
		registry: registry,
		transactionsProcessed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_processed_total",
			Help: "Total number of successfully committed transactions",
		}),
		transactionsFailed: promauto.With(registry).NewCounter(prometheus.CounterOpts{
			Name: "ledger_transactions_failed_total",
			Help: "Total number of rejected or failed transactions",
		}),
		transactionDuration: promauto.With(registry).NewHistogram(prometheus.HistogramOpts{
			Name:    "ledger_transaction_processing_duration_seconds",
			Help:    "Time taken to process a transaction",
			Buckets: prometheus.DefBuckets,
		}),
		accountBalance: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "ledger_account_balance",
			Help: "Current account balance",
		}, []string{"account_number"}),
		logger: logger,
	}

	return collector
}

func (m *MetricsCollector) RecordTransaction(duration time.Duration, success bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if success {
		m.transactionsProcessed.Inc()
	} else {
		m.transactionsFailed.Inc()
	}

	m.transactionDuration.Observe(duration.Seconds())
}

func (m *MetricsCollector) UpdateAccountBalance(accountNumber string, balance float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accountBalance.WithLabelValues(accountNumber).Set(balance)
}

func (m *MetricsCollector) GetHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *MetricsCollector) StartMetricsServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.GetHandler())

	server := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	go func() {
		m.logger.Info("Starting metrics server", slog.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			m.logger.Error("Metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return server
}

func (m *MetricsCollector) Shutdown(ctx context.Context) error {
	m.logger.Info("Metrics collector shutdown complete")
	return nil
}
