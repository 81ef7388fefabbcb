package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	stockrepo "github.com/hotelops/minibar/repository/stock"
	txrepo "github.com/hotelops/minibar/repository/tx"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/hotelops/minibar/utils/logger"
	"go.uber.org/zap"
)

// StockApp manages carried staff inventory: issuing batches to floor staff
// and reading back what a staff member still holds.
type StockApp interface {
	Issue(ctx context.Context, req *model.IssueStockRequest) (*model.IssueStockResponse, error)
	MyStock(ctx context.Context, staffID uint64) ([]model.StaffStockEntry, error)
}

type stockAppImpl struct {
	txRepo    txrepo.TxRepository
	stockRepo stockrepo.StockRepository
}

func NewStockApp(txRepo txrepo.TxRepository, stockRepo stockrepo.StockRepository) StockApp {
	return &stockAppImpl{txRepo: txRepo, stockRepo: stockRepo}
}

func (s *stockAppImpl) Issue(ctx context.Context, req *model.IssueStockRequest) (*model.IssueStockResponse, error) {
	if len(req.Items) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidAmount)
		}
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[IssueStock] begin tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	batchRef := uuid.NewString()
	if err := s.stockRepo.IssueBatchTx(ctx, tx, batchRef, req.StaffID, req.Items); err != nil {
		logger.Error("[IssueStock] issue batch failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[IssueStock] commit tx failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return &model.IssueStockResponse{
		BatchRef: batchRef,
		IssuedAt: time.Now(),
	}, nil
}

func (s *stockAppImpl) MyStock(ctx context.Context, staffID uint64) ([]model.StaffStockEntry, error) {
	entries, err := s.stockRepo.GetStaffStock(ctx, staffID)
	if err != nil {
		logger.Error("[MyStock] get staff stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entries, nil
}
