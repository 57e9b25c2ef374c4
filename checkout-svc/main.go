package main

import "overcooked-checkout/checkout-svc/cmd"

func main() {
	cmd.Execute()
}
