package model

import "time"

// StaffStockBatch is one issued lot of carried stock. Confirmed room actions
// deplete batches oldest first.
type StaffStockBatch struct {
	ID        uint64    `db:"id" json:"id"`
	BatchRef  string    `db:"batch_ref" json:"batch_ref"`
	StaffID   uint64    `db:"staff_id" json:"staff_id"`
	ProductID uint64    `db:"product_id" json:"product_id"`
	Quantity  int       `db:"quantity" json:"quantity"`
	Used      int       `db:"used" json:"used"`
	IssuedAt  time.Time `db:"issued_at" json:"issued_at"`
}

// StaffStockEntry is the aggregated remaining quantity of one product across
// the staff member's active batches.
type StaffStockEntry struct {
	ProductID   uint64 `db:"product_id" json:"product_id"`
	ProductName string `db:"product_name" json:"product_name"`
	Unit        string `db:"unit" json:"unit"`
	Remaining   int    `db:"remaining" json:"quantity"`
	BatchRef    string `db:"batch_ref" json:"stock_batch_ref"`
}

type RoomStock struct {
	RoomID        uint64 `db:"room_id"`
	ProductID     uint64 `db:"product_id"`
	Quantity      int    `db:"quantity"`
	ExtraQuantity int    `db:"extra_quantity"`
}

type IssueStockRequest struct {
	StaffID uint64                  `json:"staff_id" validate:"required"`
	Items   []IssueStockItemRequest `json:"items" validate:"required,min=1,dive"`
}

type IssueStockItemRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type IssueStockResponse struct {
	BatchRef string    `json:"batch_ref"`
	IssuedAt time.Time `json:"issued_at"`
}

type Product struct {
	ID     uint64 `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Unit   string `db:"unit" json:"unit"`
	Active bool   `db:"active" json:"active"`
}
