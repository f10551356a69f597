package models

import "time"

// CoffeeShop represents a pickup location. Code is the stable identity
// used to scope barista sessions; Name is what customers pick from.
type CoffeeShop struct {
	ID        int64
	Code      string
	Name      string
	Address   string
	Active    bool
	CreatedAt time.Time
}
