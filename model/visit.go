package model

import (
	"time"

	"github.com/hotelops/minibar/constant"
)

type RoomVisit struct {
	ID          uint64                `db:"id" json:"id"`
	RoomID      uint64                `db:"room_id" json:"room_id"`
	StaffID     uint64                `db:"staff_id" json:"staff_id"`
	VisitDate   time.Time             `db:"visit_date" json:"visit_date"`
	StartedAt   time.Time             `db:"started_at" json:"started_at"`
	CompletedAt *time.Time            `db:"completed_at" json:"completed_at,omitempty"`
	Outcome     constant.VisitOutcome `db:"outcome" json:"outcome"`
	DNDAttempts int                   `db:"dnd_attempts" json:"dnd_attempts"`
}

// MinibarAction is the audit record of one confirmed product mutation.
type MinibarAction struct {
	ID         uint64              `db:"id" json:"id"`
	VisitID    uint64              `db:"visit_id" json:"visit_id"`
	RoomID     uint64              `db:"room_id" json:"room_id"`
	SetupID    uint64              `db:"setup_id" json:"setup_id"`
	ProductID  uint64              `db:"product_id" json:"product_id"`
	StaffID    uint64              `db:"staff_id" json:"staff_id"`
	ActionType constant.ActionType `db:"action_type" json:"action_type"`
	Amount     int                 `db:"amount" json:"amount"`
	CreatedAt  time.Time           `db:"created_at" json:"created_at"`
}

type ReplaceRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	SetupID   uint64 `json:"setup_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required"`
	BatchRef  string `json:"stock_batch_ref"`
}

type ExtraRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	SetupID   uint64 `json:"setup_id" validate:"required"`
	Amount    int    `json:"amount" validate:"required"`
	BatchRef  string `json:"stock_batch_ref"`
}

type ResetExtraRequest struct {
	ProductID uint64 `json:"product_id" validate:"required"`
	SetupID   uint64 `json:"setup_id" validate:"required"`
}

type MutationResponse struct {
	Message       string `json:"message"`
	NewQuantity   int    `json:"new_quantity"`
	AddedToday    int    `json:"added_today,omitempty"`
	ExtraQuantity int    `json:"extra_quantity"`
}

type VisitStartResponse struct {
	VisitID   uint64    `json:"visit_id"`
	StartedAt time.Time `json:"started_at"`
}

type VisitCompleteRequest struct {
	Outcome constant.VisitOutcome `json:"outcome" validate:"required"`
	TaskRef string                `json:"task_ref"`
}

type VisitCompleteResponse struct {
	Message string                `json:"message"`
	Outcome constant.VisitOutcome `json:"outcome"`
}

type DNDRequest struct {
	TaskRef string `json:"task_ref"`
	Notes   string `json:"notes"`
}

type DNDResponse struct {
	Message      string `json:"message"`
	AttemptCount int    `json:"attempt_count"`
	Escalated    bool   `json:"escalated"`
}

type DailyAdditionsResponse struct {
	RoomID    uint64         `json:"room_id"`
	Date      string         `json:"date"`
	Additions map[uint64]int `json:"additions"`
}
