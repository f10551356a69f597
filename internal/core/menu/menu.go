// Package menu contains the fixed drink catalog and the pure price
// function. Everything here is data plus lookups; no side effects.
package menu

import "fmt"

// Drink labels. These are the exact tokens the customer dialogue accepts.
const (
	DrinkAmericano  = "Americano"
	DrinkLatte      = "Latte"
	DrinkCappuccino = "Cappuccino"
	DrinkRaf        = "Raf"
	DrinkFlatWhite  = "Flat White"
)

// Size labels.
const (
	SizeSmall  = "Small 250 ml"
	SizeMedium = "Medium 350 ml"
	SizeLarge  = "Large 450 ml"
)

var drinks = []string{DrinkAmericano, DrinkLatte, DrinkCappuccino, DrinkRaf, DrinkFlatWhite}

var allSizes = []string{SizeSmall, SizeMedium, SizeLarge}

var milks = []string{"Coconut", "Almond", "Hazelnut", "Oat"}

var syrups = []string{"Vanilla", "Nut", "Caramel"}

// Base price per drink and size, in tenge.
var basePrice = map[string]map[string]int64{
	DrinkAmericano:  {SizeSmall: 990, SizeMedium: 1090, SizeLarge: 1190},
	DrinkLatte:      {SizeSmall: 1090, SizeMedium: 1190, SizeLarge: 1290},
	DrinkCappuccino: {SizeSmall: 1090, SizeMedium: 1190, SizeLarge: 1290},
	DrinkRaf:        {SizeSmall: 1290, SizeMedium: 1490, SizeLarge: 1590},
	DrinkFlatWhite:  {SizeSmall: 1090},
}

// Plant milk surcharge depends on the cup size.
var milkSurcharge = map[string]int64{
	SizeSmall:  350,
	SizeMedium: 450,
	SizeLarge:  550,
}

// Syrup surcharge is flat regardless of size.
const syrupSurcharge = 160

// Drinks returns the drink labels in menu order.
func Drinks() []string {
	out := make([]string, len(drinks))
	copy(out, drinks)
	return out
}

// SizesFor returns the sizes available for a drink, in ascending cup
// order. Flat White comes in a single size; unknown drinks get nothing.
func SizesFor(drink string) []string {
	prices, ok := basePrice[drink]
	if !ok {
		return nil
	}
	var out []string
	for _, size := range allSizes {
		if _, ok := prices[size]; ok {
			out = append(out, size)
		}
	}
	return out
}

// Milks returns the plant milk labels.
func Milks() []string {
	out := make([]string, len(milks))
	copy(out, milks)
	return out
}

// Syrups returns the syrup labels.
func Syrups() []string {
	out := make([]string, len(syrups))
	copy(out, syrups)
	return out
}

// IsDrink reports whether the token is a catalog drink.
func IsDrink(token string) bool {
	_, ok := basePrice[token]
	return ok
}

// IsMilk reports whether the token is a catalog milk type.
func IsMilk(token string) bool {
	return contains(milks, token)
}

// IsSyrup reports whether the token is a catalog syrup type.
func IsSyrup(token string) bool {
	return contains(syrups, token)
}

// Price computes the total for a (drink, size, add-ons) combination.
// It is deterministic: base price by drink and size, plus a
// size-dependent milk surcharge and a flat syrup surcharge.
// Combinations outside the catalog are rejected.
func Price(drink, size string, withMilk, withSyrup bool) (int64, error) {
	prices, ok := basePrice[drink]
	if !ok {
		return 0, fmt.Errorf("unknown drink %q", drink)
	}
	total, ok := prices[size]
	if !ok {
		return 0, fmt.Errorf("size %q not available for %s", size, drink)
	}
	if withMilk {
		total += milkSurcharge[size]
	}
	if withSyrup {
		total += syrupSurcharge
	}
	return total, nil
}

func contains(list []string, token string) bool {
	for _, item := range list {
		if item == token {
			return true
		}
	}
	return false
}
