package visit_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	appvisit "github.com/hotelops/minibar/application/visit"
	"github.com/hotelops/minibar/constant"
	minibarmocks "github.com/hotelops/minibar/mocks/repository/minibar"
	roommocks "github.com/hotelops/minibar/mocks/repository/room"
	txmocks "github.com/hotelops/minibar/mocks/repository/tx"
	visitmocks "github.com/hotelops/minibar/mocks/repository/visit"
	"github.com/hotelops/minibar/model"
	cerr "github.com/hotelops/minibar/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

var visitStart = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func openVisitRow() *model.RoomVisit {
	return &model.RoomVisit{
		ID:        10,
		RoomID:    101,
		StaffID:   1,
		StartedAt: visitStart,
		Outcome:   constant.VisitOutcomePending,
	}
}

func completedVisitRow(outcome constant.VisitOutcome) *model.RoomVisit {
	now := visitStart.Add(5 * time.Minute)
	v := openVisitRow()
	v.CompletedAt = &now
	v.Outcome = outcome
	return v
}

func TestVisitApp_Start(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		visitRepo   *visitmocks.VisitRepository
		minibarRepo *minibarmocks.MinibarRepository
		roomRepo    *roommocks.RoomRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.VisitStartResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: first start of the day creates the visit",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{ctx: context.Background(), staffID: 1, roomID: 101},
			mockCall: func(f fields) {
				f.roomRepo.On("GetRoomInfo", mock.Anything, uint64(101)).Return(&model.RoomInfo{ID: 101}, nil).Once()
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(nil, nil).Once()
				f.visitRepo.On("Create", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
			},
			want: &model.VisitStartResponse{VisitID: 10, StartedAt: visitStart},
		},
		{
			name: "success: repeated start returns the existing visit unchanged",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{ctx: context.Background(), staffID: 1, roomID: 101},
			mockCall: func(f fields) {
				f.roomRepo.On("GetRoomInfo", mock.Anything, uint64(101)).Return(&model.RoomInfo{ID: 101}, nil).Once()
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
			},
			want: &model.VisitStartResponse{VisitID: 10, StartedAt: visitStart},
		},
		{
			name: "success: starting a completed visit reopens it, keeping started_at",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{ctx: context.Background(), staffID: 1, roomID: 101},
			mockCall: func(f fields) {
				f.roomRepo.On("GetRoomInfo", mock.Anything, uint64(101)).Return(&model.RoomInfo{ID: 101}, nil).Once()
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(completedVisitRow(constant.VisitOutcomeNoConsumption), nil).Once()
				f.visitRepo.On("Reopen", mock.Anything, uint64(10)).Return(nil).Once()
			},
			want: &model.VisitStartResponse{VisitID: 10, StartedAt: visitStart},
		},
		{
			name: "error: unknown room",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{ctx: context.Background(), staffID: 1, roomID: 999},
			mockCall: func(f fields) {
				f.roomRepo.On("GetRoomInfo", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appvisit.NewVisitApp(tt.fields.txRepo, tt.fields.visitRepo, tt.fields.minibarRepo, tt.fields.roomRepo, nil)

			got, err := app.Start(tt.args.ctx, tt.args.staffID, tt.args.roomID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Start() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.VisitID != tt.want.VisitID {
				t.Fatalf("Start() VisitID = %v, want %v", got.VisitID, tt.want.VisitID)
			}
			if !got.StartedAt.Equal(tt.want.StartedAt) {
				t.Fatalf("Start() StartedAt = %v, want %v", got.StartedAt, tt.want.StartedAt)
			}
		})
	}
}

func TestVisitApp_Complete(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		visitRepo   *visitmocks.VisitRepository
		minibarRepo *minibarmocks.MinibarRepository
		roomRepo    *roommocks.RoomRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
		req     *model.VisitCompleteRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: products added with confirmed actions",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeProductsAdded},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.visitRepo.On("GetByRoomAndDateTx", mock.Anything, tx, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.minibarRepo.On("CountVisitActionsTx", mock.Anything, tx, uint64(10)).Return(int64(2), nil).Once()
				f.visitRepo.On("CompleteTx", mock.Anything, tx, uint64(10), constant.VisitOutcomeProductsAdded).Return(nil).Once()
			},
		},
		{
			name: "success: no consumption with untouched room",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeNoConsumption},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.visitRepo.On("GetByRoomAndDateTx", mock.Anything, tx, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.minibarRepo.On("CountVisitActionsTx", mock.Anything, tx, uint64(10)).Return(int64(0), nil).Once()
				f.visitRepo.On("CompleteTx", mock.Anything, tx, uint64(10), constant.VisitOutcomeNoConsumption).Return(nil).Once()
			},
		},
		{
			name: "error: no consumption rejected after confirmed actions",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeNoConsumption},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.visitRepo.On("GetByRoomAndDateTx", mock.Anything, tx, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.minibarRepo.On("CountVisitActionsTx", mock.Anything, tx, uint64(10)).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConsumptionRecorded,
		},
		{
			name: "error: products added rejected without any actions",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeProductsAdded},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.visitRepo.On("GetByRoomAndDateTx", mock.Anything, tx, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.minibarRepo.On("CountVisitActionsTx", mock.Anything, tx, uint64(10)).Return(int64(0), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNoProductActions,
		},
		{
			name: "error: completing twice",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeNoConsumption},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.visitRepo.On("GetByRoomAndDateTx", mock.Anything, tx, uint64(101), uint64(1), mock.Anything).Return(completedVisitRow(constant.VisitOutcomeProductsAdded), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVisitAlreadyCompleted,
		},
		{
			name: "error: do-not-disturb is not a valid completion outcome",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.VisitCompleteRequest{Outcome: constant.VisitOutcomeDoNotDisturb},
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appvisit.NewVisitApp(tt.fields.txRepo, tt.fields.visitRepo, tt.fields.minibarRepo, tt.fields.roomRepo, nil)

			got, err := app.Complete(tt.args.ctx, tt.args.staffID, tt.args.roomID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Complete() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.Outcome != tt.args.req.Outcome {
				t.Fatalf("Complete() Outcome = %v, want %v", got.Outcome, tt.args.req.Outcome)
			}
		})
	}
}

func TestVisitApp_MarkDoNotDisturb(t *testing.T) {
	type fields struct {
		txRepo      *txmocks.TxRepository
		visitRepo   *visitmocks.VisitRepository
		minibarRepo *minibarmocks.MinibarRepository
		roomRepo    *roommocks.RoomRepository
	}
	type args struct {
		ctx     context.Context
		staffID uint64
		roomID  uint64
		req     *model.DNDRequest
	}
	tests := []struct {
		name          string
		fields        fields
		args          args
		mockCall      func(f fields)
		wantAttempts  int
		wantEscalated bool
		wantErr       bool
		errCode       constant.ErrorType
	}{
		{
			name: "success: first attempt does not escalate",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.DNDRequest{TaskRef: "task-77"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(nil, nil).Once()
				f.visitRepo.On("Create", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.visitRepo.On("IncrementDNDTx", mock.Anything, tx, uint64(10)).Return(1, nil).Once()
				f.visitRepo.On("CompleteTx", mock.Anything, tx, uint64(10), constant.VisitOutcomeDoNotDisturb).Return(nil).Once()
			},
			wantAttempts:  1,
			wantEscalated: false,
		},
		{
			name: "success: third attempt escalates",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.DNDRequest{TaskRef: "task-77"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.visitRepo.On("IncrementDNDTx", mock.Anything, tx, uint64(10)).Return(3, nil).Once()
				f.visitRepo.On("CompleteTx", mock.Anything, tx, uint64(10), constant.VisitOutcomeDoNotDisturb).Return(nil).Once()
			},
			wantAttempts:  3,
			wantEscalated: true,
		},
		{
			name: "error: room already closed today",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.DNDRequest{TaskRef: "task-77"},
			},
			mockCall: func(f fields) {
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(completedVisitRow(constant.VisitOutcomeProductsAdded), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrVisitAlreadyCompleted,
		},
		{
			name: "error: visit closed by a concurrent request after the open check",
			fields: fields{
				txRepo:      txmocks.NewTxRepository(t),
				visitRepo:   visitmocks.NewVisitRepository(t),
				minibarRepo: minibarmocks.NewMinibarRepository(t),
				roomRepo:    roommocks.NewRoomRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				staffID: 1,
				roomID:  101,
				req:     &model.DNDRequest{TaskRef: "task-77"},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.visitRepo.On("GetByRoomAndDate", mock.Anything, uint64(101), uint64(1), mock.Anything).Return(openVisitRow(), nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
				f.visitRepo.On("IncrementDNDTx", mock.Anything, tx, uint64(10)).Return(1, nil).Once()
				f.visitRepo.On("CompleteTx", mock.Anything, tx, uint64(10), constant.VisitOutcomeDoNotDisturb).Return(sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrVisitAlreadyCompleted,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appvisit.NewVisitApp(tt.fields.txRepo, tt.fields.visitRepo, tt.fields.minibarRepo, tt.fields.roomRepo, nil)

			got, err := app.MarkDoNotDisturb(tt.args.ctx, tt.args.staffID, tt.args.roomID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("MarkDoNotDisturb() error = %v, wantErr %v", err, tt.wantErr)
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
			if got.AttemptCount != tt.wantAttempts {
				t.Fatalf("MarkDoNotDisturb() AttemptCount = %v, want %v", got.AttemptCount, tt.wantAttempts)
			}
			if got.Escalated != tt.wantEscalated {
				t.Fatalf("MarkDoNotDisturb() Escalated = %v, want %v", got.Escalated, tt.wantEscalated)
			}
		})
	}
}

func TestVisitApp_MarkTaskStale(t *testing.T) {
	visitRepo := visitmocks.NewVisitRepository(t)
	visitRepo.On("RecordEscalation", mock.Anything, "task-77", uint64(101)).Return(nil).Once()

	app := appvisit.NewVisitApp(txmocks.NewTxRepository(t), visitRepo, minibarmocks.NewMinibarRepository(t), roommocks.NewRoomRepository(t), nil)
	if err := app.MarkTaskStale(context.Background(), "task-77", uint64(101)); err != nil {
		t.Fatalf("MarkTaskStale() error = %v", err)
	}
}
