package cmd

import (
	"fmt"
	"os"

	"overcooked-checkout/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	v       = config.New(config.ServiceCheckout)
)

var rootCmd = &cobra.Command{
	Use:   "checkout-svc",
	Short: "Checkout screen backend for Overcooked",
	Long:  `checkout-svc prices a customer's cart, tracks local edits, promo codes and delivery choice, and turns the result into an order request.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	rootCmd.PersistentFlags().String("cart_api_url", "", "base URL of the cart API")
	rootCmd.PersistentFlags().String("log_level", "", "log level")
	v.BindPFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(serveCmd, previewCmd)
}

func loadConfig() (*config.Config, error) {
	return config.Load(v, cfgFile)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
