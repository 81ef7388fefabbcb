package setup

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/model"
	"github.com/jmoiron/sqlx"
)

type SetupRepository interface {
	ListForRoomType(ctx context.Context, roomTypeID uint64) ([]model.Setup, error)
	GetProducts(ctx context.Context, setupIDs []uint64) ([]model.SetupProductRow, error)
	GetSetupQuantityTx(ctx context.Context, tx *sqlx.Tx, setupID, productID uint64) (int, error)
	CreateSetupTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateSetupRequest) (uint64, error)
	AssignToRoomType(ctx context.Context, roomTypeID, setupID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewSetupRepository(conn *sqlx.DB) SetupRepository {
	return &SQL{conn: conn}
}

const listForRoomTypeQuery = `SELECT s.id, s.name, s.in_cabinet, s.active
FROM setup s
JOIN room_type_setup rts ON rts.setup_id = s.id
WHERE rts.room_type_id = ? AND s.active = 1
ORDER BY s.in_cabinet DESC, s.name`

func (s *SQL) ListForRoomType(ctx context.Context, roomTypeID uint64) ([]model.Setup, error) {
	rows, err := s.conn.QueryxContext(ctx, listForRoomTypeQuery, roomTypeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	setups := make([]model.Setup, 0)
	for rows.Next() {
		var st model.Setup
		if err := rows.StructScan(&st); err != nil {
			return nil, err
		}
		setups = append(setups, st)
	}
	return setups, rows.Err()
}

const getProductsQuery = `SELECT sp.setup_id, sp.product_id, p.name AS product_name, p.unit, sp.quantity AS setup_quantity
FROM setup_product sp
JOIN product p ON p.id = sp.product_id
WHERE sp.setup_id IN (?) AND p.active = 1
ORDER BY sp.setup_id, p.name`

func (s *SQL) GetProducts(ctx context.Context, setupIDs []uint64) ([]model.SetupProductRow, error) {
	if len(setupIDs) == 0 {
		return []model.SetupProductRow{}, nil
	}

	query, args, err := sqlx.In(getProductsQuery, setupIDs)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.SetupProductRow, 0)
	for rows.Next() {
		var p model.SetupProductRow
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQL) GetSetupQuantityTx(ctx context.Context, tx *sqlx.Tx, setupID, productID uint64) (int, error) {
	var quantity int
	err := tx.GetContext(ctx, &quantity, "SELECT quantity FROM setup_product WHERE setup_id = ? AND product_id = ?", setupID, productID)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, err
	}
	return quantity, nil
}

// CreateSetupTx inserts the setup header and its product lines in the caller's
// transaction, so a failed line insert never leaves an active half-built setup.
func (s *SQL) CreateSetupTx(ctx context.Context, tx *sqlx.Tx, req *model.CreateSetupRequest) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO setup (name, in_cabinet, active) VALUES (?, ?, 1)", req.Name, req.InCabinet)
	if err != nil {
		return 0, err
	}
	setupID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, p := range req.Products {
		if _, err := tx.ExecContext(ctx, "INSERT INTO setup_product (setup_id, product_id, quantity) VALUES (?, ?, ?)", setupID, p.ProductID, p.Quantity); err != nil {
			return 0, err
		}
	}
	return uint64(setupID), nil
}

func (s *SQL) AssignToRoomType(ctx context.Context, roomTypeID, setupID uint64) error {
	_, err := s.conn.ExecContext(ctx, "INSERT IGNORE INTO room_type_setup (room_type_id, setup_id) VALUES (?, ?)", roomTypeID, setupID)
	return err
}
