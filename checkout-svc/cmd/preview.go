package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"overcooked-checkout/checkout-svc/internal/domain"
	"overcooked-checkout/checkout-svc/internal/money"
	"overcooked-checkout/checkout-svc/internal/service"
	"overcooked-checkout/config"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Fetch the cart once and print the checkout summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := config.NewLogger(cfg.LogLevel, config.ServiceCheckout)
		log.Logger.SetOutput(cmd.ErrOrStderr())

		deps, open, err := buildDependencies(cfg, log)
		if err != nil {
			return err
		}
		defer open.Close()
		deps.Publisher = nil

		promo, _ := cmd.Flags().GetString("promo")
		pickup, _ := cmd.Flags().GetBool("pickup")

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
		defer cancel()

		session := service.NewCheckoutSession(deps)
		if err := session.Load(ctx); err != nil {
			return err
		}
		if promo != "" {
			session.SetPendingPromo(promo)
			if err := session.ApplyPromo(ctx); err != nil {
				return err
			}
		}
		if pickup {
			if err := session.SetDeliveryMethod(domain.DeliveryMethodPickup); err != nil {
				return err
			}
		}

		PrintSummary(cmd.OutOrStdout(), session.View())
		return nil
	},
}

func init() {
	previewCmd.Flags().String("promo", "", "promo code to apply")
	previewCmd.Flags().Bool("pickup", false, "preview as a pickup order")
}

// PrintSummary writes the checkout screen as plain text.
func PrintSummary(w io.Writer, view service.View) {
	if view.Restaurant == nil {
		fmt.Fprintf(w, "Checkout %s\n", view.Status)
		return
	}

	fmt.Fprintln(w, view.Restaurant.Name)
	fmt.Fprintln(w, view.Address)
	switch {
	case view.Hours.IsOpen:
		fmt.Fprintf(w, "Open today: %s\n", view.Hours.Label)
	case view.Hours.Label != "":
		fmt.Fprintf(w, "Closed · today: %s\n", view.Hours.Label)
	default:
		fmt.Fprintln(w, "Closed")
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))

	if view.EmptyCart {
		fmt.Fprintln(w, "Your cart is empty")
	}
	for _, line := range view.Pricing.Lines {
		fmt.Fprintf(w, "%-28s %11s\n", fmt.Sprintf("%d × %s", line.Item.Quantity, line.Item.Name), money.Format(line.LineTotal))
	}
	fmt.Fprintln(w, strings.Repeat("-", 40))

	row := func(label, amount string) {
		fmt.Fprintf(w, "%-28s %11s\n", label, amount)
	}
	row("Subtotal", money.Format(view.Pricing.Subtotal))
	if view.Pricing.HasDiscount {
		label := "Discount"
		if view.Promo.Applied() {
			label += " (" + view.Promo.AppliedCode + ")"
		}
		row(label, money.Format(view.Pricing.Discount.Neg()))
	}
	row("Tax", money.Format(view.Pricing.Tax))
	row("Platform fee", money.Format(view.Pricing.PlatformFee))
	if view.Pricing.HasDiscount {
		row("Was", money.Format(view.Pricing.OriginalTotal))
	}
	row("Total", money.Format(view.Pricing.Total))
	fmt.Fprintln(w)
	if view.PaymentMethod != nil {
		fmt.Fprintf(w, "Pay with %s\n", view.PaymentMethod.Label)
	}
	fmt.Fprintln(w, view.Summary)
	fmt.Fprintln(w, view.PlaceOrderLabel)
}
