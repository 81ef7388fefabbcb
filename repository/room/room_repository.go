package room

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/model"
	"github.com/jmoiron/sqlx"
)

type RoomRepository interface {
	GetRoomInfo(ctx context.Context, roomID uint64) (*model.RoomInfo, error)
	ListByFloor(ctx context.Context, floorID uint64) ([]model.RoomListItem, error)
	CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (uint64, error)
	UpdateRoom(ctx context.Context, roomID uint64, req *model.UpdateRoomRequest) error
	DeleteRoom(ctx context.Context, roomID uint64) error
	ListFloors(ctx context.Context, hotelID uint64) ([]model.Floor, error)
	CreateFloor(ctx context.Context, req *model.CreateFloorRequest) (uint64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewRoomRepository(conn *sqlx.DB) RoomRepository {
	return &SQL{conn: conn}
}

const getRoomInfoQuery = `SELECT r.id, r.room_no, r.room_type_id, rt.name AS room_type, rt.cabinet_count
FROM room r
JOIN room_type rt ON rt.id = r.room_type_id
WHERE r.id = ? AND r.active = 1`

func (s *SQL) GetRoomInfo(ctx context.Context, roomID uint64) (*model.RoomInfo, error) {
	var info model.RoomInfo
	if err := s.conn.QueryRowxContext(ctx, getRoomInfoQuery, roomID).StructScan(&info); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &info, nil
}

const listByFloorQuery = `SELECT r.id, r.room_no, f.floor_no, rt.name AS room_type, r.active,
(SELECT MAX(v.started_at) FROM room_visit v WHERE v.room_id = r.id) AS last_visit
FROM room r
JOIN floor f ON f.id = r.floor_id
JOIN room_type rt ON rt.id = r.room_type_id
WHERE r.floor_id = ?
ORDER BY r.room_no`

func (s *SQL) ListByFloor(ctx context.Context, floorID uint64) ([]model.RoomListItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listByFloorQuery, floorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.RoomListItem, 0)
	for rows.Next() {
		var it model.RoomListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO room (floor_id, room_no, room_type_id, active) VALUES (?, ?, ?, 1)", req.FloorID, req.RoomNo, req.RoomTypeID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) UpdateRoom(ctx context.Context, roomID uint64, req *model.UpdateRoomRequest) error {
	query := "UPDATE room SET id = id"
	args := make([]any, 0, 4)

	if req.RoomNo != "" {
		query += ", room_no = ?"
		args = append(args, req.RoomNo)
	}
	if req.RoomTypeID != 0 {
		query += ", room_type_id = ?"
		args = append(args, req.RoomTypeID)
	}
	if req.Active != nil {
		query += ", active = ?"
		args = append(args, *req.Active)
	}
	query += " WHERE id = ?"
	args = append(args, roomID)

	res, err := s.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *SQL) DeleteRoom(ctx context.Context, roomID uint64) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE room SET active = 0 WHERE id = ?", roomID)
	return err
}

func (s *SQL) ListFloors(ctx context.Context, hotelID uint64) ([]model.Floor, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, hotel_id, floor_no, name, active FROM floor WHERE hotel_id = ? AND active = 1 ORDER BY floor_no", hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	floors := make([]model.Floor, 0)
	for rows.Next() {
		var f model.Floor
		if err := rows.StructScan(&f); err != nil {
			return nil, err
		}
		floors = append(floors, f)
	}
	return floors, rows.Err()
}

func (s *SQL) CreateFloor(ctx context.Context, req *model.CreateFloorRequest) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, "INSERT INTO floor (hotel_id, floor_no, name, active) VALUES (?, ?, ?, 1)", req.HotelID, req.FloorNo, req.Name)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
