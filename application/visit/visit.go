package visit

import (
	"context"
	"database/sql"
	"time"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	minibarrepo "github.com/hotelops/minibar/repository/minibar"
	roomrepo "github.com/hotelops/minibar/repository/room"
	txrepo "github.com/hotelops/minibar/repository/tx"
	visitrepo "github.com/hotelops/minibar/repository/visit"
	"github.com/hotelops/minibar/thirdparty/rabbitmq"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/hotelops/minibar/utils/logger"
	"go.uber.org/zap"
)

// VisitApp drives the room visit lifecycle: started, then closed exactly once
// as products-added, no-consumption or do-not-disturb.
type VisitApp interface {
	Start(ctx context.Context, staffID, roomID uint64) (*model.VisitStartResponse, error)
	Complete(ctx context.Context, staffID, roomID uint64, req *model.VisitCompleteRequest) (*model.VisitCompleteResponse, error)
	MarkDoNotDisturb(ctx context.Context, staffID, roomID uint64, req *model.DNDRequest) (*model.DNDResponse, error)
	MarkTaskStale(ctx context.Context, taskRef string, roomID uint64) error
}

type visitAppImpl struct {
	txRepo      txrepo.TxRepository
	visitRepo   visitrepo.VisitRepository
	minibarRepo minibarrepo.MinibarRepository
	roomRepo    roomrepo.RoomRepository
	publisher   *rabbitmq.Publisher
}

func NewVisitApp(txRepo txrepo.TxRepository, visitRepo visitrepo.VisitRepository, minibarRepo minibarrepo.MinibarRepository, roomRepo roomrepo.RoomRepository, publisher *rabbitmq.Publisher) VisitApp {
	return &visitAppImpl{
		txRepo:      txRepo,
		visitRepo:   visitRepo,
		minibarRepo: minibarRepo,
		roomRepo:    roomRepo,
		publisher:   publisher,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func (s *visitAppImpl) Start(ctx context.Context, staffID, roomID uint64) (*model.VisitStartResponse, error) {
	room, err := s.roomRepo.GetRoomInfo(ctx, roomID)
	if err != nil {
		logger.Error("[VisitStart] get room failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if room == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	visit, err := s.visitRepo.GetByRoomAndDate(ctx, roomID, staffID, today())
	if err != nil {
		logger.Error("[VisitStart] get visit failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if visit == nil {
		visit, err = s.visitRepo.Create(ctx, roomID, staffID, today())
		if err != nil {
			logger.Error("[VisitStart] create visit failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	} else if visit.CompletedAt != nil {
		// Re-selecting a closed room the same day reopens today's visit row.
		// started_at is kept, so repeated starts stay idempotent.
		if err := s.visitRepo.Reopen(ctx, visit.ID); err != nil {
			logger.Error("[VisitStart] reopen visit failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	return &model.VisitStartResponse{
		VisitID:   visit.ID,
		StartedAt: visit.StartedAt,
	}, nil
}

func (s *visitAppImpl) Complete(ctx context.Context, staffID, roomID uint64, req *model.VisitCompleteRequest) (*model.VisitCompleteResponse, error) {
	if req.Outcome != constant.VisitOutcomeProductsAdded && req.Outcome != constant.VisitOutcomeNoConsumption {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[VisitComplete] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	visit, err := s.visitRepo.GetByRoomAndDateTx(ctx, tx, roomID, staffID, today())
	if err != nil {
		logger.Error("[VisitComplete] get visit failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if visit == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if visit.CompletedAt != nil {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}

	actionCount, err := s.minibarRepo.CountVisitActionsTx(ctx, tx, visit.ID)
	if err != nil {
		logger.Error("[VisitComplete] count actions failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// A room cannot close as untouched when product mutations were confirmed,
	// and cannot close as products-added when none were.
	if req.Outcome == constant.VisitOutcomeNoConsumption && actionCount > 0 {
		return nil, errors.SetCustomError(constant.ErrConsumptionRecorded)
	}
	if req.Outcome == constant.VisitOutcomeProductsAdded && actionCount == 0 {
		return nil, errors.SetCustomError(constant.ErrNoProductActions)
	}

	if err := s.visitRepo.CompleteTx(ctx, tx, visit.ID, req.Outcome); err != nil {
		logger.Error("[VisitComplete] complete failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[VisitComplete] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.VisitCompleteResponse{
		Message: "visit completed",
		Outcome: req.Outcome,
	}, nil
}

func (s *visitAppImpl) MarkDoNotDisturb(ctx context.Context, staffID, roomID uint64, req *model.DNDRequest) (*model.DNDResponse, error) {
	visit, err := s.visitRepo.GetByRoomAndDate(ctx, roomID, staffID, today())
	if err != nil {
		logger.Error("[MarkDND] get visit failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if visit == nil {
		visit, err = s.visitRepo.Create(ctx, roomID, staffID, today())
		if err != nil {
			logger.Error("[MarkDND] create visit failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if visit.CompletedAt != nil {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[MarkDND] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	attempts, err := s.visitRepo.IncrementDNDTx(ctx, tx, visit.ID)
	if err != nil {
		logger.Error("[MarkDND] increment attempts failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.visitRepo.CompleteTx(ctx, tx, visit.ID, constant.VisitOutcomeDoNotDisturb); err != nil {
		// The completed check above ran outside this transaction, so another
		// request can close the visit in between. The guarded update then
		// touches no row and the visit counts as already completed.
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
		}
		logger.Error("[MarkDND] complete failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[MarkDND] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	escalated := attempts >= constant.DNDMaxAttempts
	if escalated && s.publisher != nil {
		msg := rabbitmq.StaleTaskMessage{
			RoomID:   roomID,
			TaskRef:  req.TaskRef,
			Attempts: attempts,
			StaleAt:  time.Now(),
		}
		if err := s.publisher.PublishStaleTask(msg); err != nil {
			logger.Error("[MarkDND] publish stale task", zap.String("error", err.Error()))
		}
	}

	return &model.DNDResponse{
		Message:      "room marked do-not-disturb",
		AttemptCount: attempts,
		Escalated:    escalated,
	}, nil
}

// MarkTaskStale is called from the internal endpoint when a delayed escalation
// message fires for a room that stayed in do-not-disturb.
func (s *visitAppImpl) MarkTaskStale(ctx context.Context, taskRef string, roomID uint64) error {
	if err := s.visitRepo.RecordEscalation(ctx, taskRef, roomID); err != nil {
		logger.Error("[MarkTaskStale] record escalation failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
