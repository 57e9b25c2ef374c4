package main

import (
	"flag"
	"net/http"

	"overcooked-checkout/api-gateway/internal/gateway"
	"overcooked-checkout/config"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

func main() {
	cfgFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(config.New(config.ServiceGateway), *cfgFile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	log := config.NewLogger(cfg.LogLevel, config.ServiceGateway)

	gw := gateway.NewGateway(gateway.Config{
		CartSvcURL:     cfg.CartSvcURL,
		CheckoutSvcURL: cfg.CheckoutSvcURL,
	}, &http.Client{Timeout: cfg.RequestTimeout}, log)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	log.WithField("addr", cfg.HTTPAddr).Info("API Gateway starting")
	if err := http.ListenAndServe(cfg.HTTPAddr, handler); err != nil {
		log.WithError(err).Fatal("API Gateway stopped")
	}
}
