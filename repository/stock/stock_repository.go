package stock

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/jmoiron/sqlx"
)

type StockRepository interface {
	GetStaffStock(ctx context.Context, staffID uint64) ([]model.StaffStockEntry, error)
	GetRemainingTx(ctx context.Context, tx *sqlx.Tx, staffID, productID uint64) (int, error)
	DeductTx(ctx context.Context, tx *sqlx.Tx, staffID, productID uint64, amount int) error
	IssueBatchTx(ctx context.Context, tx *sqlx.Tx, batchRef string, staffID uint64, items []model.IssueStockItemRequest) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewStockRepository(conn *sqlx.DB) StockRepository {
	return &SQL{conn: conn}
}

const getStaffStockQuery = `SELECT b.product_id, p.name AS product_name, p.unit,
COALESCE(SUM(b.quantity - b.used),0) AS remaining, MIN(b.batch_ref) AS batch_ref
FROM staff_stock_batch b
JOIN product p ON p.id = b.product_id
WHERE b.staff_id = ? AND b.quantity > b.used
GROUP BY b.product_id, p.name, p.unit
ORDER BY p.name`

func (r *SQL) GetStaffStock(ctx context.Context, staffID uint64) ([]model.StaffStockEntry, error) {
	rows, err := r.conn.QueryxContext(ctx, getStaffStockQuery, staffID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.StaffStockEntry, 0)
	for rows.Next() {
		var e model.StaffStockEntry
		if err := rows.StructScan(&e); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQL) GetRemainingTx(ctx context.Context, tx *sqlx.Tx, staffID, productID uint64) (int, error) {
	var remaining sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity - used),0) FROM staff_stock_batch WHERE staff_id = ? AND product_id = ?"
	if err := tx.GetContext(ctx, &remaining, q, staffID, productID); err != nil {
		return 0, err
	}
	if !remaining.Valid {
		return 0, nil
	}
	return int(remaining.Int64), nil
}

type batchRow struct {
	ID       uint64 `db:"id"`
	Quantity int    `db:"quantity"`
	Used     int    `db:"used"`
}

// DeductTx consumes amount from the staff member's batches oldest first. The
// rows are locked so concurrent visits cannot drain the same batch twice.
// MySQL cannot run updates while a result set is open on the connection, so
// the locked batches are read fully before any update.
func (r *SQL) DeductTx(ctx context.Context, tx *sqlx.Tx, staffID, productID uint64, amount int) error {
	var batches []batchRow
	q := "SELECT id, quantity, used FROM staff_stock_batch WHERE staff_id = ? AND product_id = ? AND quantity > used ORDER BY issued_at, id FOR UPDATE"
	if err := tx.SelectContext(ctx, &batches, q, staffID, productID); err != nil {
		return err
	}

	needed := amount
	for _, b := range batches {
		avail := b.Quantity - b.Used
		if avail <= 0 {
			continue
		}
		take := avail
		if take > needed {
			take = needed
		}
		if _, err := tx.ExecContext(ctx, "UPDATE staff_stock_batch SET used = used + ? WHERE id = ?", take, b.ID); err != nil {
			return err
		}
		needed -= take
		if needed <= 0 {
			break
		}
	}

	if needed > 0 {
		return errors.SetCustomError(constant.ErrInsufficientStaffStock)
	}

	return nil
}

func (r *SQL) IssueBatchTx(ctx context.Context, tx *sqlx.Tx, batchRef string, staffID uint64, items []model.IssueStockItemRequest) error {
	q := "INSERT INTO staff_stock_batch (batch_ref, staff_id, product_id, quantity, used, issued_at) VALUES (?, ?, ?, ?, 0, NOW())"
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, q, batchRef, staffID, it.ProductID, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}
