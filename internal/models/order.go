// Package models contains domain types for Kwonka entities.
// SQL persistence lives in internal/adapters/sqlite/*.go
package models

import "time"

// Order represents a single coffee order.
// OrderNumber is the opaque sequential identity used everywhere outside
// the database; the numeric row id never leaves the repository layer.
type Order struct {
	ID          int64
	OrderNumber string
	CustomerID  int64
	ShopCode    string
	Drink       string
	Size        string
	MilkType    string // empty when no milk add-on
	SyrupType   string // empty when no syrup add-on
	TotalPrice  int64  // tenge
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Order status constants
const (
	OrderStatusPending       = "PENDING"
	OrderStatusInPreparation = "IN_PREPARATION"
	OrderStatusReady         = "READY"
	OrderStatusCompleted     = "COMPLETED"
	OrderStatusCancelled     = "CANCELLED"
)
