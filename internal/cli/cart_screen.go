package cli

import (
	"fmt"
	"strconv"

	"github.com/faveomobile/helpdesk-client/internal/core/domain"
)

// catalog is the fixed demo product list the shop screen sells from.
var catalog = []domain.CartLine{
	{ProductName: "Aurora Phone", Description: "6.5\" OLED, 256 GB", Price: 65000, Color: "black"},
	{ProductName: "Pixelbook Air", Description: "13\" ultraslim laptop", Price: 45000, Color: "silver"},
	{ProductName: "Nimbus Tablet", Description: "11\" tablet with pen", Price: 29000, Color: "grey"},
	{ProductName: "Echo Buds", Description: "noise-cancelling earbuds", Price: 12000, Color: "white"},
	{ProductName: "Trail Watch", Description: "GPS sports watch", Price: 23000, Color: "green"},
	{ProductName: "Booming Speaker", Description: "portable speaker", Price: 11000, Color: "red"},
}

// shopScreen lists the catalog with indices for the buy command.
func (a *App) shopScreen() {
	for i, p := range catalog {
		fmt.Fprintf(a.out, "%2d. %-18s ₹%.0f  %s\n", i+1, p.ProductName, p.Price, p.Description)
	}
	fmt.Fprintln(a.out, "Type buy <n> to add a product to the cart.")
}

// buyScreen adds a catalog item by index. The cart itself rejects
// duplicates, so pressing buy twice on the same product reports an error
// instead of silently double-adding.
func (a *App) buyScreen(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: buy <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(catalog) {
		fmt.Fprintf(a.out, "Pick a number between 1 and %d.\n", len(catalog))
		return
	}

	if err := a.cart.Add(catalog[n-1]); err != nil {
		fmt.Fprintln(a.out, userMessage(err))
		return
	}
	fmt.Fprintf(a.out, "Added %s. Cart has %d item(s).\n", catalog[n-1].ProductName, a.cart.Count())
}

// dropScreen removes a line by product name.
func (a *App) dropScreen(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: drop <product name>")
		return
	}
	name := args[0]
	for _, extra := range args[1:] {
		name += " " + extra
	}
	a.cart.Remove(name)
	fmt.Fprintf(a.out, "Removed %s. Cart has %d item(s).\n", name, a.cart.Count())
}

// cartScreen renders the cart contents and the derived total.
func (a *App) cartScreen() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "Your cart is empty.")
		return
	}
	for _, l := range lines {
		fmt.Fprintf(a.out, "%-18s ₹%.0f\n", l.ProductName, l.Price)
	}
	fmt.Fprintf(a.out, "Total: ₹%.0f\n", a.cart.Total())
}
