package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appreconcile "github.com/hotelops/minibar/application/reconcile"
	"github.com/hotelops/minibar/constant"
	minibarmocks "github.com/hotelops/minibar/mocks/repository/minibar"
	redismocks "github.com/hotelops/minibar/mocks/repository/redis"
	setupmocks "github.com/hotelops/minibar/mocks/repository/setup"
	stockmocks "github.com/hotelops/minibar/mocks/repository/stock"
	txmocks "github.com/hotelops/minibar/mocks/repository/tx"
	visitmocks "github.com/hotelops/minibar/mocks/repository/visit"
	"github.com/hotelops/minibar/model"
	cerr "github.com/hotelops/minibar/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func openVisitRow() *model.RoomVisit {
	return &model.RoomVisit{
		ID:        10,
		RoomID:    101,
		StaffID:   1,
		StartedAt: time.Now(),
		Outcome:   constant.VisitOutcomePending,
	}
}

func completedVisitRow() *model.RoomVisit {
	now := time.Now()
	v := openVisitRow()
	v.CompletedAt = &now
	v.Outcome = constant.VisitOutcomeProductsAdded
	return v
}

func TestReconcileApp_Replace(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		stockRepo   *stockmocks.StockRepository
		minibarRepo *minibarmocks.MinibarRepository
		setupRepo   *setupmocks.SetupRepository
		visitRepo   *visitmocks.VisitRepository
		redisRepo   *redismocks.RedisRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
		req     *model.ReplaceRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.MutationResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: restock up to setup quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
				f.minibarRepo.On("GetDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything).Return(0, nil).Once()
				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(7)).Return(5, nil).Once()
				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(7)).Return(&model.RoomStock{RoomID: 101, ProductID: 7, Quantity: 0}, nil).Once()
				f.stockRepo.On("DeductTx", mock.Anything, tx, uint64(1), uint64(7), 2).Return(nil).Once()
				f.minibarRepo.On("AddQuantityTx", mock.Anything, tx, uint64(101), uint64(7), 2).Return(nil).Once()
				f.minibarRepo.On("UpsertDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything, 2, 2).Return(nil).Once()
				f.minibarRepo.On("InsertActionTx", mock.Anything, tx, mock.MatchedBy(func(a *model.MinibarAction) bool {
					return a.VisitID == 10 && a.ActionType == constant.ActionReplace && a.Amount == 2
				})).Return(uint64(1), nil).Once()

				f.redisRepo.On("Delete", mock.Anything, "roomstate:101").Return(nil).Once()
			},
			want: &model.MutationResponse{
				Message:     "product restocked",
				NewQuantity: 2,
				AddedToday:  2,
			},
			wantErr: false,
		},
		{
			name: "error: amount below one",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 0},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidAmount,
		},
		{
			name: "error: single amount above setup quantity",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 3},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrExceedsSetupCapacity,
		},
		{
			name: "error: daily cap already met",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
				f.minibarRepo.On("GetDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything).Return(2, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrExceedsSetupCapacity,
		},
		{
			name: "error: concurrent visit fills the daily cap before the counter row exists",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
				// No counter row yet, so nothing was locked and another
				// transaction raced this one to the cap.
				f.minibarRepo.On("GetDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything).Return(0, nil).Once()
				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(7)).Return(5, nil).Once()
				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(7)).Return(&model.RoomStock{RoomID: 101, ProductID: 7, Quantity: 0}, nil).Once()
				f.stockRepo.On("DeductTx", mock.Anything, tx, uint64(1), uint64(7), 2).Return(nil).Once()
				f.minibarRepo.On("AddQuantityTx", mock.Anything, tx, uint64(101), uint64(7), 2).Return(nil).Once()
				f.minibarRepo.On("UpsertDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything, 2, 2).
					Return(cerr.SetCustomError(constant.ErrExceedsSetupCapacity)).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrExceedsSetupCapacity,
		},
		{
			name: "error: insufficient carried stock",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
				f.minibarRepo.On("GetDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything).Return(0, nil).Once()
				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(7)).Return(1, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientStaffStock,
		},
		{
			name: "error: concurrent actor exhausted stock during deduct",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(7)).Return(2, nil).Once()
				f.minibarRepo.On("GetDailyAdditionTx", mock.Anything, tx, uint64(101), uint64(7), mock.Anything).Return(0, nil).Once()
				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(7)).Return(2, nil).Once()
				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(7)).Return(nil, nil).Once()

				insufficientErr := cerr.SetCustomError(constant.ErrInsufficientStaffStock)
				f.stockRepo.On("DeductTx", mock.Anything, tx, uint64(1), uint64(7), 2).Return(insufficientErr).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientStaffStock,
		},
		{
			name: "error: product not in setup",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 99, SetupID: 3, Amount: 1},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.setupRepo.On("GetSetupQuantityTx", mock.Anything, tx, uint64(3), uint64(99)).Return(0, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: visit already completed",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 1},
			},
			mockCall: func(f fields) {
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(completedVisitRow(), nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrVisitAlreadyCompleted,
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ReplaceRequest{ProductID: 7, SetupID: 3, Amount: 1},
			},
			mockCall: func(f fields) {
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreconcile.NewReconcileApp(tt.fields.txRepo, tt.fields.stockRepo, tt.fields.minibarRepo, tt.fields.setupRepo, tt.fields.visitRepo, tt.fields.redisRepo)

			got, err := app.Replace(tt.args.ctx, tt.args.staffID, tt.args.roomID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Replace() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.NewQuantity != tt.want.NewQuantity {
				t.Fatalf("Replace() NewQuantity = %v, want %v", got.NewQuantity, tt.want.NewQuantity)
			}
			if got.AddedToday != tt.want.AddedToday {
				t.Fatalf("Replace() AddedToday = %v, want %v", got.AddedToday, tt.want.AddedToday)
			}
		})
	}
}

func TestReconcileApp_AddExtra(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		stockRepo   *stockmocks.StockRepository
		minibarRepo *minibarmocks.MinibarRepository
		setupRepo   *setupmocks.SetupRepository
		visitRepo   *visitmocks.VisitRepository
		redisRepo   *redismocks.RedisRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
		req     *model.ExtraRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.MutationResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: extra beyond setup target, no daily cap check",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ExtraRequest{ProductID: 7, SetupID: 3, Amount: 4},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(7)).Return(5, nil).Once()
				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(7)).Return(&model.RoomStock{Quantity: 2, ExtraQuantity: 1}, nil).Once()
				f.stockRepo.On("DeductTx", mock.Anything, tx, uint64(1), uint64(7), 4).Return(nil).Once()
				f.minibarRepo.On("AddExtraTx", mock.Anything, tx, uint64(101), uint64(7), 4).Return(nil).Once()
				f.minibarRepo.On("InsertActionTx", mock.Anything, tx, mock.MatchedBy(func(a *model.MinibarAction) bool {
					return a.ActionType == constant.ActionExtraAdd && a.Amount == 4
				})).Return(uint64(2), nil).Once()

				f.redisRepo.On("Delete", mock.Anything, "roomstate:101").Return(nil).Once()
			},
			want: &model.MutationResponse{
				Message:       "extra stock added",
				NewQuantity:   2,
				ExtraQuantity: 5,
			},
			wantErr: false,
		},
		{
			name: "error: insufficient carried stock",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ExtraRequest{ProductID: 8, SetupID: 3, Amount: 2},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.stockRepo.On("GetRemainingTx", mock.Anything, tx, uint64(1), uint64(8)).Return(1, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInsufficientStaffStock,
		},
		{
			name: "error: amount below one",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ExtraRequest{ProductID: 8, SetupID: 3, Amount: -1},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidAmount,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreconcile.NewReconcileApp(tt.fields.txRepo, tt.fields.stockRepo, tt.fields.minibarRepo, tt.fields.setupRepo, tt.fields.visitRepo, tt.fields.redisRepo)

			got, err := app.AddExtra(tt.args.ctx, tt.args.staffID, tt.args.roomID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddExtra() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.ExtraQuantity != tt.want.ExtraQuantity {
				t.Fatalf("AddExtra() ExtraQuantity = %v, want %v", got.ExtraQuantity, tt.want.ExtraQuantity)
			}
		})
	}
}

func TestReconcileApp_ResetExtra(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		stockRepo   *stockmocks.StockRepository
		minibarRepo *minibarmocks.MinibarRepository
		setupRepo   *setupmocks.SetupRepository
		visitRepo   *visitmocks.VisitRepository
		redisRepo   *redismocks.RedisRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
		req     *model.ResetExtraRequest
	}
	tests := []struct {
		name       string
		fields     fields
		args       args
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		wantExtras int
	}{
		{
			name: "success: clears tracked extra and audits the cleared amount",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ResetExtraRequest{ProductID: 7, SetupID: 3},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(7)).Return(&model.RoomStock{Quantity: 2, ExtraQuantity: 3}, nil).Once()
				f.minibarRepo.On("ResetExtraTx", mock.Anything, tx, uint64(101), uint64(7)).Return(nil).Once()
				f.minibarRepo.On("InsertActionTx", mock.Anything, tx, mock.MatchedBy(func(a *model.MinibarAction) bool {
					return a.ActionType == constant.ActionExtraReset && a.Amount == 3
				})).Return(uint64(3), nil).Once()

				f.redisRepo.On("Delete", mock.Anything, "roomstate:101").Return(nil).Once()
			},
			wantErr:    false,
			wantExtras: 0,
		},
		{
			name: "success: no-op reset with zero extra still audits",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				stockRepo:   stockmocks.NewStockRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				setupRepo:   setupmocks.NewSetupRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.ResetExtraRequest{ProductID: 9, SetupID: 3},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.minibarRepo.On("GetRoomProductTx", mock.Anything, tx, uint64(101), uint64(9)).Return(&model.RoomStock{Quantity: 1, ExtraQuantity: 0}, nil).Once()
				f.minibarRepo.On("ResetExtraTx", mock.Anything, tx, uint64(101), uint64(9)).Return(nil).Once()
				f.minibarRepo.On("InsertActionTx", mock.Anything, tx, mock.MatchedBy(func(a *model.MinibarAction) bool {
					return a.ActionType == constant.ActionExtraReset && a.Amount == 0
				})).Return(uint64(4), nil).Once()

				f.redisRepo.On("Delete", mock.Anything, "roomstate:101").Return(nil).Once()
			},
			wantErr:    false,
			wantExtras: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appreconcile.NewReconcileApp(tt.fields.txRepo, tt.fields.stockRepo, tt.fields.minibarRepo, tt.fields.setupRepo, tt.fields.visitRepo, tt.fields.redisRepo)

			got, err := app.ResetExtra(tt.args.ctx, tt.args.staffID, tt.args.roomID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ResetExtra() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.ExtraQuantity != tt.wantExtras {
				t.Fatalf("ResetExtra() ExtraQuantity = %v, want %v", got.ExtraQuantity, tt.wantExtras)
			}
		})
	}
}
