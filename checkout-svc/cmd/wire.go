package cmd

import (
	"io"
	"net/http"

	"overcooked-checkout/checkout-svc/internal/hours"
	"overcooked-checkout/checkout-svc/internal/pricing"
	"overcooked-checkout/checkout-svc/internal/service"
	"overcooked-checkout/checkout-svc/internal/storage"
	"overcooked-checkout/config"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type closers []io.Closer

func (c closers) Close() {
	for _, closer := range c {
		closer.Close()
	}
}

// buildDependencies wires the session collaborators from cfg. Redis and Kafka
// are skipped when their addresses are empty.
func buildDependencies(cfg *config.Config, log *logrus.Entry) (service.Dependencies, closers, error) {
	loc, err := cfg.Location()
	if err != nil {
		return service.Dependencies{}, nil, err
	}
	mode := hours.PresenceOnly
	if cfg.HoursStrictWindow {
		mode = hours.WithinWindow
	}

	deps := service.Dependencies{
		Source: storage.NewCartClient(cfg.CartAPIURL, cfg.CartAPIToken, &http.Client{Timeout: cfg.RequestTimeout}),
		Promos: pricing.NewFlatPromo(decimal.NewFromFloat(cfg.PromoFlatDiscount)),
		Hours:  hours.NewEvaluator(mode, loc),
		QR:     service.PickupQRGenerator{BaseURL: cfg.PickupBaseURL},
		Logger: log,
	}

	var open closers
	if cfg.RedisAddr != "" {
		client := config.MustInitRedis(cfg.RedisAddr, log)
		deps.Cache = storage.NewRedisHoursCache(client, cfg.HoursCacheTTL)
		open = append(open, client)
	}
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.EventsTopic)
		deps.Publisher = storage.NewKafkaPublisher(writer)
		open = append(open, writer)
	}
	return deps, open, nil
}
