package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	minibarrepo "github.com/hotelops/minibar/repository/minibar"
	redisrepo "github.com/hotelops/minibar/repository/redis"
	setuprepo "github.com/hotelops/minibar/repository/setup"
	stockrepo "github.com/hotelops/minibar/repository/stock"
	txrepo "github.com/hotelops/minibar/repository/tx"
	visitrepo "github.com/hotelops/minibar/repository/visit"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/hotelops/minibar/utils/logger"
	"go.uber.org/zap"
)

// ReconcileApp validates and applies per-product minibar mutations. Replace
// restocks consumed items up to the setup quantity and counts against the
// daily addition cap; extra stock lives above the setup target and has no cap.
type ReconcileApp interface {
	Replace(ctx context.Context, staffID, roomID uint64, req *model.ReplaceRequest) (*model.MutationResponse, error)
	AddExtra(ctx context.Context, staffID, roomID uint64, req *model.ExtraRequest) (*model.MutationResponse, error)
	ResetExtra(ctx context.Context, staffID, roomID uint64, req *model.ResetExtraRequest) (*model.MutationResponse, error)
}

type reconcileAppImpl struct {
	txRepo      txrepo.TxRepository
	stockRepo   stockrepo.StockRepository
	minibarRepo minibarrepo.MinibarRepository
	setupRepo   setuprepo.SetupRepository
	visitRepo   visitrepo.VisitRepository
	redisRepo   redisrepo.Repository
}

func NewReconcileApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository, minibarRepo minibarrepo.MinibarRepository, setupRepo setuprepo.SetupRepository, visitRepo visitrepo.VisitRepository, redisRepo redisrepo.Repository) ReconcileApp {
	return &reconcileAppImpl{
		txRepo:      txRepo,
		stockRepo:   stockRepo,
		minibarRepo: minibarRepo,
		setupRepo:   setupRepo,
		visitRepo:   visitRepo,
		redisRepo:   redisRepo,
	}
}

func today() string {
	return time.Now().Format("2006-01-02")
}

func roomStateCacheKey(roomID uint64) string {
	return fmt.Sprintf("roomstate:%d", roomID)
}

// openVisit returns today's visit for the room, creating it if the staff
// member never sent an explicit visit-start.
func (s *reconcileAppImpl) openVisit(ctx context.Context, staffID, roomID uint64) (*model.RoomVisit, error) {
	visit, err := s.visitRepo.GetByRoomAndDate(ctx, roomID, staffID, today())
	if err != nil {
		logger.Error("[openVisit] get visit failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if visit == nil {
		visit, err = s.visitRepo.Create(ctx, roomID, staffID, today())
		if err != nil {
			logger.Error("[openVisit] create visit failed", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}
	if visit.CompletedAt != nil {
		return nil, errors.SetCustomError(constant.ErrVisitAlreadyCompleted)
	}
	return visit, nil
}

func (s *reconcileAppImpl) Replace(ctx context.Context, staffID, roomID uint64, req *model.ReplaceRequest) (*model.MutationResponse, error) {
	if req.Amount < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	visit, err := s.openVisit(ctx, staffID, roomID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Replace] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	setupQty, err := s.setupRepo.GetSetupQuantityTx(ctx, tx, req.SetupID, req.ProductID)
	if err != nil {
		logger.Error("[Replace] get setup quantity failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if setupQty == 0 {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if req.Amount > setupQty {
		return nil, errors.SetCustomError(constant.ErrExceedsSetupCapacity)
	}

	// Cumulative daily cap: once added_today reaches the setup quantity no
	// further replace is accepted for this room/product until tomorrow. The
	// counter row is locked here so the check holds until commit; the guarded
	// upsert below re-enforces the cap for the first addition of the day,
	// where no row exists yet to lock.
	added, err := s.minibarRepo.GetDailyAdditionTx(ctx, tx, roomID, req.ProductID, today())
	if err != nil {
		logger.Error("[Replace] get daily addition failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if added+req.Amount > setupQty {
		return nil, errors.SetCustomError(constant.ErrExceedsSetupCapacity)
	}

	remaining, err := s.stockRepo.GetRemainingTx(ctx, tx, staffID, req.ProductID)
	if err != nil {
		logger.Error("[Replace] get remaining stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if remaining < req.Amount {
		return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
	}

	current, err := s.minibarRepo.GetRoomProductTx(ctx, tx, roomID, req.ProductID)
	if err != nil {
		logger.Error("[Replace] get room product failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.stockRepo.DeductTx(ctx, tx, staffID, req.ProductID, req.Amount); err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrInsufficientStaffStock).Error() {
			return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
		}
		logger.Error("[Replace] deduct stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.minibarRepo.AddQuantityTx(ctx, tx, roomID, req.ProductID, req.Amount); err != nil {
		logger.Error("[Replace] add quantity failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.minibarRepo.UpsertDailyAdditionTx(ctx, tx, roomID, req.ProductID, today(), req.Amount, setupQty); err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrExceedsSetupCapacity).Error() {
			return nil, errors.SetCustomError(constant.ErrExceedsSetupCapacity)
		}
		logger.Error("[Replace] upsert daily addition failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.minibarRepo.InsertActionTx(ctx, tx, &model.MinibarAction{
		VisitID:    visit.ID,
		RoomID:     roomID,
		SetupID:    req.SetupID,
		ProductID:  req.ProductID,
		StaffID:    staffID,
		ActionType: constant.ActionReplace,
		Amount:     req.Amount,
	}); err != nil {
		logger.Error("[Replace] insert action failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Replace] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, roomStateCacheKey(roomID)); err != nil {
		logger.Warn("[Replace] cache invalidation failed", zap.String("error", err.Error()))
	}

	newQuantity := req.Amount
	extra := 0
	if current != nil {
		newQuantity = current.Quantity + req.Amount
		extra = current.ExtraQuantity
	}
	return &model.MutationResponse{
		Message:       "product restocked",
		NewQuantity:   newQuantity,
		AddedToday:    added + req.Amount,
		ExtraQuantity: extra,
	}, nil
}

func (s *reconcileAppImpl) AddExtra(ctx context.Context, staffID, roomID uint64, req *model.ExtraRequest) (*model.MutationResponse, error) {
	if req.Amount < 1 {
		return nil, errors.SetCustomError(constant.ErrInvalidAmount)
	}

	visit, err := s.openVisit(ctx, staffID, roomID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[AddExtra] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	remaining, err := s.stockRepo.GetRemainingTx(ctx, tx, staffID, req.ProductID)
	if err != nil {
		logger.Error("[AddExtra] get remaining stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if remaining < req.Amount {
		return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
	}

	current, err := s.minibarRepo.GetRoomProductTx(ctx, tx, roomID, req.ProductID)
	if err != nil {
		logger.Error("[AddExtra] get room product failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.stockRepo.DeductTx(ctx, tx, staffID, req.ProductID, req.Amount); err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrInsufficientStaffStock).Error() {
			return nil, errors.SetCustomError(constant.ErrInsufficientStaffStock)
		}
		logger.Error("[AddExtra] deduct stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.minibarRepo.AddExtraTx(ctx, tx, roomID, req.ProductID, req.Amount); err != nil {
		logger.Error("[AddExtra] add extra failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.minibarRepo.InsertActionTx(ctx, tx, &model.MinibarAction{
		VisitID:    visit.ID,
		RoomID:     roomID,
		SetupID:    req.SetupID,
		ProductID:  req.ProductID,
		StaffID:    staffID,
		ActionType: constant.ActionExtraAdd,
		Amount:     req.Amount,
	}); err != nil {
		logger.Error("[AddExtra] insert action failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[AddExtra] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, roomStateCacheKey(roomID)); err != nil {
		logger.Warn("[AddExtra] cache invalidation failed", zap.String("error", err.Error()))
	}

	quantity := 0
	extra := req.Amount
	if current != nil {
		quantity = current.Quantity
		extra = current.ExtraQuantity + req.Amount
	}
	return &model.MutationResponse{
		Message:       "extra stock added",
		NewQuantity:   quantity,
		ExtraQuantity: extra,
	}, nil
}

func (s *reconcileAppImpl) ResetExtra(ctx context.Context, staffID, roomID uint64, req *model.ResetExtraRequest) (*model.MutationResponse, error) {
	visit, err := s.openVisit(ctx, staffID, roomID)
	if err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[ResetExtra] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.minibarRepo.GetRoomProductTx(ctx, tx, roomID, req.ProductID)
	if err != nil {
		logger.Error("[ResetExtra] get room product failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Resetting with no extra present is a server-side no-op, not an error;
	// the audit row still records the attempt.
	cleared := 0
	quantity := 0
	if current != nil {
		cleared = current.ExtraQuantity
		quantity = current.Quantity
	}

	if err := s.minibarRepo.ResetExtraTx(ctx, tx, roomID, req.ProductID); err != nil {
		logger.Error("[ResetExtra] reset extra failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if _, err := s.minibarRepo.InsertActionTx(ctx, tx, &model.MinibarAction{
		VisitID:    visit.ID,
		RoomID:     roomID,
		SetupID:    req.SetupID,
		ProductID:  req.ProductID,
		StaffID:    staffID,
		ActionType: constant.ActionExtraReset,
		Amount:     cleared,
	}); err != nil {
		logger.Error("[ResetExtra] insert action failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[ResetExtra] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	if err := s.redisRepo.Delete(ctx, roomStateCacheKey(roomID)); err != nil {
		logger.Warn("[ResetExtra] cache invalidation failed", zap.String("error", err.Error()))
	}

	return &model.MutationResponse{
		Message:       "extra stock cleared",
		NewQuantity:   quantity,
		ExtraQuantity: 0,
	}, nil
}
