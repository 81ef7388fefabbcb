package visit

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/jmoiron/sqlx"
)

type VisitRepository interface {
	GetByRoomAndDate(ctx context.Context, roomID, staffID uint64, date string) (*model.RoomVisit, error)
	GetByRoomAndDateTx(ctx context.Context, tx *sqlx.Tx, roomID, staffID uint64, date string) (*model.RoomVisit, error)
	Create(ctx context.Context, roomID, staffID uint64, date string) (*model.RoomVisit, error)
	Reopen(ctx context.Context, visitID uint64) error
	CompleteTx(ctx context.Context, tx *sqlx.Tx, visitID uint64, outcome constant.VisitOutcome) error
	IncrementDNDTx(ctx context.Context, tx *sqlx.Tx, visitID uint64) (int, error)
	RecordEscalation(ctx context.Context, taskRef string, roomID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewVisitRepository(conn *sqlx.DB) VisitRepository {
	return &SQL{conn: conn}
}

const getVisitQuery = "SELECT id, room_id, staff_id, visit_date, started_at, completed_at, outcome, dnd_attempts FROM room_visit WHERE room_id = ? AND staff_id = ? AND visit_date = ?"

func (r *SQL) GetByRoomAndDate(ctx context.Context, roomID, staffID uint64, date string) (*model.RoomVisit, error) {
	var v model.RoomVisit
	if err := r.conn.QueryRowxContext(ctx, getVisitQuery, roomID, staffID, date).StructScan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *SQL) GetByRoomAndDateTx(ctx context.Context, tx *sqlx.Tx, roomID, staffID uint64, date string) (*model.RoomVisit, error) {
	var v model.RoomVisit
	if err := tx.QueryRowxContext(ctx, getVisitQuery+" FOR UPDATE", roomID, staffID, date).StructScan(&v); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &v, nil
}

func (r *SQL) Create(ctx context.Context, roomID, staffID uint64, date string) (*model.RoomVisit, error) {
	// INSERT IGNORE keeps visit-start idempotent under concurrent calls for
	// the same room/staff/day. The winner's started_at is reread either way.
	_, err := r.conn.ExecContext(ctx,
		"INSERT IGNORE INTO room_visit (room_id, staff_id, visit_date, started_at, outcome, dnd_attempts) VALUES (?, ?, ?, NOW(), ?, 0)",
		roomID, staffID, date, string(constant.VisitOutcomePending))
	if err != nil {
		return nil, err
	}
	return r.GetByRoomAndDate(ctx, roomID, staffID, date)
}

func (r *SQL) Reopen(ctx context.Context, visitID uint64) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE room_visit SET completed_at = NULL, outcome = ? WHERE id = ?", string(constant.VisitOutcomePending), visitID)
	return err
}

func (r *SQL) CompleteTx(ctx context.Context, tx *sqlx.Tx, visitID uint64, outcome constant.VisitOutcome) error {
	res, err := tx.ExecContext(ctx, "UPDATE room_visit SET outcome = ?, completed_at = NOW() WHERE id = ? AND completed_at IS NULL", string(outcome), visitID)
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

func (r *SQL) IncrementDNDTx(ctx context.Context, tx *sqlx.Tx, visitID uint64) (int, error) {
	if _, err := tx.ExecContext(ctx, "UPDATE room_visit SET dnd_attempts = dnd_attempts + 1 WHERE id = ?", visitID); err != nil {
		return 0, err
	}
	var attempts int
	if err := tx.GetContext(ctx, &attempts, "SELECT dnd_attempts FROM room_visit WHERE id = ?", visitID); err != nil {
		return 0, err
	}
	return attempts, nil
}

// RecordEscalation is idempotent so redelivered queue messages do not fail.
func (r *SQL) RecordEscalation(ctx context.Context, taskRef string, roomID uint64) error {
	query := "INSERT INTO dnd_escalation (task_ref, room_id, escalated_at) VALUES (?, ?, NOW()) ON DUPLICATE KEY UPDATE escalated_at = escalated_at"
	_, err := r.conn.ExecContext(ctx, query, taskRef, roomID)
	return err
}
