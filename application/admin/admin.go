package admin

import (
	"context"
	"database/sql"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	roomrepo "github.com/hotelops/minibar/repository/room"
	setuprepo "github.com/hotelops/minibar/repository/setup"
	txrepo "github.com/hotelops/minibar/repository/tx"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/hotelops/minibar/utils/logger"
	"go.uber.org/zap"
)

// AdminApp covers the back-office CRUD: floors, rooms, setup templates and
// their room-type bindings.
type AdminApp interface {
	CreateFloor(ctx context.Context, req *model.CreateFloorRequest) (uint64, error)
	ListFloors(ctx context.Context, hotelID uint64) ([]model.Floor, error)
	CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (uint64, error)
	UpdateRoom(ctx context.Context, roomID uint64, req *model.UpdateRoomRequest) error
	DeleteRoom(ctx context.Context, roomID uint64) error
	ListRooms(ctx context.Context, floorID uint64) ([]model.RoomListItem, error)
	CreateSetup(ctx context.Context, req *model.CreateSetupRequest) (uint64, error)
	AssignSetup(ctx context.Context, req *model.AssignSetupRequest) error
}

type adminAppImpl struct {
	txRepo    txrepo.TxRepository
	roomRepo  roomrepo.RoomRepository
	setupRepo setuprepo.SetupRepository
}

func NewAdminApp(txRepo txrepo.TxRepository, roomRepo roomrepo.RoomRepository, setupRepo setuprepo.SetupRepository) AdminApp {
	return &adminAppImpl{txRepo: txRepo, roomRepo: roomRepo, setupRepo: setupRepo}
}

func (s *adminAppImpl) CreateFloor(ctx context.Context, req *model.CreateFloorRequest) (uint64, error) {
	id, err := s.roomRepo.CreateFloor(ctx, req)
	if err != nil {
		logger.Error("[CreateFloor] create failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *adminAppImpl) ListFloors(ctx context.Context, hotelID uint64) ([]model.Floor, error) {
	floors, err := s.roomRepo.ListFloors(ctx, hotelID)
	if err != nil {
		logger.Error("[ListFloors] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return floors, nil
}

func (s *adminAppImpl) CreateRoom(ctx context.Context, req *model.CreateRoomRequest) (uint64, error) {
	id, err := s.roomRepo.CreateRoom(ctx, req)
	if err != nil {
		logger.Error("[CreateRoom] create failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return id, nil
}

func (s *adminAppImpl) UpdateRoom(ctx context.Context, roomID uint64, req *model.UpdateRoomRequest) error {
	if err := s.roomRepo.UpdateRoom(ctx, roomID, req); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateRoom] update failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) DeleteRoom(ctx context.Context, roomID uint64) error {
	if err := s.roomRepo.DeleteRoom(ctx, roomID); err != nil {
		logger.Error("[DeleteRoom] delete failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *adminAppImpl) ListRooms(ctx context.Context, floorID uint64) ([]model.RoomListItem, error) {
	rooms, err := s.roomRepo.ListByFloor(ctx, floorID)
	if err != nil {
		logger.Error("[ListRooms] list failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return rooms, nil
}

func (s *adminAppImpl) CreateSetup(ctx context.Context, req *model.CreateSetupRequest) (uint64, error) {
	if len(req.Products) == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateSetup] begin tx failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	id, err := s.setupRepo.CreateSetupTx(ctx, tx, req)
	if err != nil {
		logger.Error("[CreateSetup] create failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateSetup] commit tx failed", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return id, nil
}

func (s *adminAppImpl) AssignSetup(ctx context.Context, req *model.AssignSetupRequest) error {
	if err := s.setupRepo.AssignToRoomType(ctx, req.RoomTypeID, req.SetupID); err != nil {
		logger.Error("[AssignSetup] assign failed", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
