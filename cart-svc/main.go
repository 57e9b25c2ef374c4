package main

import (
	"flag"

	httpapi "overcooked-checkout/cart-svc/internal/api/http"
	"overcooked-checkout/cart-svc/internal/service"
	"overcooked-checkout/cart-svc/internal/storage"
	"overcooked-checkout/config"

	"github.com/sirupsen/logrus"
)

func main() {
	cfgFile := flag.String("config", "", "config file")
	flag.Parse()

	cfg, err := config.Load(config.New(config.ServiceCart), *cfgFile)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load config")
	}
	log := config.NewLogger(cfg.LogLevel, config.ServiceCart)

	db := config.MustInitPostgres(cfg.DBConfig, log)
	defer db.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.WithError(err).Fatal("Failed to ensure schema")
	}

	handler := httpapi.NewHandler(service.NewCartService(repo), log)
	if err := httpapi.StartServer(cfg.HTTPAddr, httpapi.NewRouter(handler), log); err != nil {
		log.WithError(err).Fatal("Cart Service stopped")
	}
}
