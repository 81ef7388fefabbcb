package model

import "github.com/hotelops/minibar/constant"

type Setup struct {
	ID        uint64 `db:"id" json:"setup_id"`
	Name      string `db:"name" json:"setup_name"`
	InCabinet bool   `db:"in_cabinet" json:"is_in_cabinet"`
	Active    bool   `db:"active" json:"-"`
}

type SetupProductRow struct {
	SetupID       uint64 `db:"setup_id"`
	ProductID     uint64 `db:"product_id"`
	ProductName   string `db:"product_name"`
	Unit          string `db:"unit"`
	SetupQuantity int    `db:"setup_quantity"`
}

// SetupProductState is a setup line merged with the room's live stock.
type SetupProductState struct {
	ProductID     uint64                 `json:"product_id"`
	ProductName   string                 `json:"product_name"`
	Unit          string                 `json:"unit"`
	SetupQuantity int                    `json:"setup_quantity"`
	Current       int                    `json:"current_quantity"`
	ExtraQuantity int                    `json:"extra_quantity"`
	Status        constant.ProductStatus `json:"status"`
	Missing       int                    `json:"missing_quantity"`
}

// SetupState is one setup section of a room. In-cabinet setups repeat once
// per cabinet of the room type.
type SetupState struct {
	SetupID       uint64              `json:"setup_id"`
	SetupName     string              `json:"setup_name"`
	InCabinet     bool                `json:"is_in_cabinet"`
	CabinetNumber int                 `json:"cabinet_number,omitempty"`
	Products      []SetupProductState `json:"products"`
}

type SetupAndStockResponse struct {
	Room       RoomInfo          `json:"room"`
	Setups     []SetupState      `json:"setups"`
	StaffStock map[uint64]int    `json:"staff_stock"`
	BatchRefs  map[uint64]string `json:"stock_batch_refs"`
}

type CreateSetupRequest struct {
	Name      string                    `json:"name" validate:"required"`
	InCabinet bool                      `json:"in_cabinet"`
	Products  []CreateSetupProductInput `json:"products" validate:"required,min=1,dive"`
}

type CreateSetupProductInput struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

type AssignSetupRequest struct {
	RoomTypeID uint64 `json:"room_type_id" validate:"required"`
	SetupID    uint64 `json:"setup_id" validate:"required"`
}
