package minibar

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/jmoiron/sqlx"
)

type MinibarRepository interface {
	GetRoomStock(ctx context.Context, roomID uint64) ([]model.RoomStock, error)
	GetRoomProductTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64) (*model.RoomStock, error)
	AddQuantityTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, amount int) error
	AddExtraTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, amount int) error
	ResetExtraTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64) error
	InsertActionTx(ctx context.Context, tx *sqlx.Tx, action *model.MinibarAction) (uint64, error)
	CountVisitActions(ctx context.Context, visitID uint64) (int64, error)
	CountVisitActionsTx(ctx context.Context, tx *sqlx.Tx, visitID uint64) (int64, error)
	GetDailyAdditionTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, date string) (int, error)
	UpsertDailyAdditionTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, date string, amount, capTotal int) error
	GetDailyAdditions(ctx context.Context, roomID uint64, date string) (map[uint64]int, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewMinibarRepository(conn *sqlx.DB) MinibarRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetRoomStock(ctx context.Context, roomID uint64) ([]model.RoomStock, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT room_id, product_id, quantity, extra_quantity FROM room_stock WHERE room_id = ?", roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stocks := make([]model.RoomStock, 0)
	for rows.Next() {
		var s model.RoomStock
		if err := rows.StructScan(&s); err != nil {
			return nil, err
		}
		stocks = append(stocks, s)
	}
	return stocks, rows.Err()
}

func (r *SQL) GetRoomProductTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64) (*model.RoomStock, error) {
	var s model.RoomStock
	err := tx.QueryRowxContext(ctx, "SELECT room_id, product_id, quantity, extra_quantity FROM room_stock WHERE room_id = ? AND product_id = ? FOR UPDATE", roomID, productID).StructScan(&s)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQL) AddQuantityTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, amount int) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO room_stock (room_id, product_id, quantity, extra_quantity) VALUES (?, ?, ?, 0) ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)", roomID, productID, amount)
	return err
}

func (r *SQL) AddExtraTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, amount int) error {
	_, err := tx.ExecContext(ctx, "INSERT INTO room_stock (room_id, product_id, quantity, extra_quantity) VALUES (?, ?, 0, ?) ON DUPLICATE KEY UPDATE extra_quantity = extra_quantity + VALUES(extra_quantity)", roomID, productID, amount)
	return err
}

func (r *SQL) ResetExtraTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64) error {
	_, err := tx.ExecContext(ctx, "UPDATE room_stock SET extra_quantity = 0 WHERE room_id = ? AND product_id = ?", roomID, productID)
	return err
}

func (r *SQL) InsertActionTx(ctx context.Context, tx *sqlx.Tx, action *model.MinibarAction) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO minibar_action (visit_id, room_id, setup_id, product_id, staff_id, action_type, amount, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, NOW())",
		action.VisitID, action.RoomID, action.SetupID, action.ProductID, action.StaffID, string(action.ActionType), action.Amount)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const countVisitActionsQuery = "SELECT COUNT(*) FROM minibar_action WHERE visit_id = ? AND action_type IN (?, ?)"

// CountVisitActions counts confirmed product mutations in a visit. Resets are
// excluded: clearing extra stock is not a consumption record.
func (r *SQL) CountVisitActions(ctx context.Context, visitID uint64) (int64, error) {
	var count int64
	err := r.conn.GetContext(ctx, &count, countVisitActionsQuery, visitID, string(constant.ActionReplace), string(constant.ActionExtraAdd))
	return count, err
}

func (r *SQL) CountVisitActionsTx(ctx context.Context, tx *sqlx.Tx, visitID uint64) (int64, error) {
	var count int64
	err := tx.GetContext(ctx, &count, countVisitActionsQuery, visitID, string(constant.ActionReplace), string(constant.ActionExtraAdd))
	return count, err
}

func (r *SQL) GetDailyAdditionTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, date string) (int, error) {
	var added int
	err := tx.GetContext(ctx, &added, "SELECT added FROM daily_addition WHERE room_id = ? AND product_id = ? AND addition_date = ? FOR UPDATE", roomID, productID, date)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return added, nil
}

// UpsertDailyAdditionTx records an addition only while the counter stays at or
// below capTotal. A concurrent transaction may have raised the counter after
// the caller read it, so the guard lives in the statement itself: the update
// leaves the row unchanged when the cap would be exceeded and the affected
// count comes back zero.
func (r *SQL) UpsertDailyAdditionTx(ctx context.Context, tx *sqlx.Tx, roomID, productID uint64, date string, amount, capTotal int) error {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO daily_addition (room_id, product_id, addition_date, added) VALUES (?, ?, ?, ?) ON DUPLICATE KEY UPDATE added = IF(added + VALUES(added) <= ?, added + VALUES(added), added)",
		roomID, productID, date, amount, capTotal)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrExceedsSetupCapacity)
	}
	return nil
}

func (r *SQL) GetDailyAdditions(ctx context.Context, roomID uint64, date string) (map[uint64]int, error) {
	rows, err := r.conn.QueryxContext(ctx, "SELECT product_id, COALESCE(SUM(added),0) AS added FROM daily_addition WHERE room_id = ? AND addition_date = ? GROUP BY product_id", roomID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	additions := make(map[uint64]int)
	for rows.Next() {
		var productID uint64
		var added int
		if err := rows.Scan(&productID, &added); err != nil {
			return nil, err
		}
		additions[productID] = added
	}
	return additions, rows.Err()
}
