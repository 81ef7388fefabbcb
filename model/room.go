package model

import "time"

type Hotel struct {
	ID     uint64 `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Active bool   `db:"active" json:"active"`
}

type Floor struct {
	ID      uint64 `db:"id" json:"id"`
	HotelID uint64 `db:"hotel_id" json:"hotel_id"`
	FloorNo int    `db:"floor_no" json:"floor_no"`
	Name    string `db:"name" json:"name"`
	Active  bool   `db:"active" json:"active"`
}

type Room struct {
	ID         uint64 `db:"id" json:"id"`
	FloorID    uint64 `db:"floor_id" json:"floor_id"`
	RoomNo     string `db:"room_no" json:"room_no"`
	RoomTypeID uint64 `db:"room_type_id" json:"room_type_id"`
	Active     bool   `db:"active" json:"active"`
}

type RoomType struct {
	ID           uint64 `db:"id" json:"id"`
	Name         string `db:"name" json:"name"`
	CabinetCount int    `db:"cabinet_count" json:"cabinet_count"`
	Active       bool   `db:"active" json:"active"`
}

// RoomInfo is the room header returned with setup-and-stock responses.
type RoomInfo struct {
	ID           uint64 `db:"id" json:"id"`
	RoomNo       string `db:"room_no" json:"number"`
	RoomType     string `db:"room_type" json:"type"`
	RoomTypeID   uint64 `db:"room_type_id" json:"type_id"`
	CabinetCount int    `db:"cabinet_count" json:"cabinet_count"`
}

type CreateFloorRequest struct {
	HotelID uint64 `json:"hotel_id" validate:"required"`
	FloorNo int    `json:"floor_no" validate:"required"`
	Name    string `json:"name"`
}

type CreateRoomRequest struct {
	FloorID    uint64 `json:"floor_id" validate:"required"`
	RoomNo     string `json:"room_no" validate:"required"`
	RoomTypeID uint64 `json:"room_type_id" validate:"required"`
}

type UpdateRoomRequest struct {
	RoomNo     string `json:"room_no"`
	RoomTypeID uint64 `json:"room_type_id"`
	Active     *bool  `json:"active"`
}

type RoomListItem struct {
	ID        uint64     `db:"id" json:"id"`
	RoomNo    string     `db:"room_no" json:"room_no"`
	FloorNo   int        `db:"floor_no" json:"floor_no"`
	RoomType  string     `db:"room_type" json:"room_type"`
	Active    bool       `db:"active" json:"active"`
	LastVisit *time.Time `db:"last_visit" json:"last_visit,omitempty"`
}
