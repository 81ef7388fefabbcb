package roomstate

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	minibarrepo "github.com/hotelops/minibar/repository/minibar"
	redisrepo "github.com/hotelops/minibar/repository/redis"
	roomrepo "github.com/hotelops/minibar/repository/room"
	setuprepo "github.com/hotelops/minibar/repository/setup"
	stockrepo "github.com/hotelops/minibar/repository/stock"
	"github.com/hotelops/minibar/utils/errors"
	"github.com/hotelops/minibar/utils/logger"
	"go.uber.org/zap"
)

const roomStateCacheTTL = 30 * time.Second

// RoomStateApp assembles the read side of the room workflow: the room's
// setups merged with live stock, and today's addition totals.
type RoomStateApp interface {
	SetupAndStock(ctx context.Context, staffID, roomID uint64) (*model.SetupAndStockResponse, error)
	DailyAdditions(ctx context.Context, roomID uint64) (*model.DailyAdditionsResponse, error)
}

type roomStateAppImpl struct {
	roomRepo    roomrepo.RoomRepository
	setupRepo   setuprepo.SetupRepository
	minibarRepo minibarrepo.MinibarRepository
	stockRepo   stockrepo.StockRepository
	redisRepo   redisrepo.Repository
}

func NewRoomStateApp(roomRepo roomrepo.RoomRepository, setupRepo setuprepo.SetupRepository, minibarRepo minibarrepo.MinibarRepository, stockRepo stockrepo.StockRepository, redisRepo redisrepo.Repository) RoomStateApp {
	return &roomStateAppImpl{
		roomRepo:    roomRepo,
		setupRepo:   setupRepo,
		minibarRepo: minibarRepo,
		stockRepo:   stockRepo,
		redisRepo:   redisRepo,
	}
}

// cachedRoomState is the room-only portion of the response. Staff stock is
// per caller and never cached.
type cachedRoomState struct {
	Room   model.RoomInfo     `json:"room"`
	Setups []model.SetupState `json:"setups"`
}

func roomStateCacheKey(roomID uint64) string {
	return fmt.Sprintf("roomstate:%d", roomID)
}

func (s *roomStateAppImpl) SetupAndStock(ctx context.Context, staffID, roomID uint64) (*model.SetupAndStockResponse, error) {
	state, err := s.roomState(ctx, roomID)
	if err != nil {
		return nil, err
	}

	entries, err := s.stockRepo.GetStaffStock(ctx, staffID)
	if err != nil {
		logger.Error("[SetupAndStock] get staff stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	staffStock := make(map[uint64]int, len(entries))
	batchRefs := make(map[uint64]string, len(entries))
	for _, e := range entries {
		staffStock[e.ProductID] = e.Remaining
		batchRefs[e.ProductID] = e.BatchRef
	}

	return &model.SetupAndStockResponse{
		Room:       state.Room,
		Setups:     state.Setups,
		StaffStock: staffStock,
		BatchRefs:  batchRefs,
	}, nil
}

func (s *roomStateAppImpl) roomState(ctx context.Context, roomID uint64) (*cachedRoomState, error) {
	if cached, err := s.redisRepo.Get(ctx, roomStateCacheKey(roomID)); err == nil && cached != "" {
		var state cachedRoomState
		if err := json.Unmarshal([]byte(cached), &state); err == nil {
			return &state, nil
		}
	}

	room, err := s.roomRepo.GetRoomInfo(ctx, roomID)
	if err != nil {
		logger.Error("[roomState] get room failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if room == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if room.RoomTypeID == 0 {
		return nil, errors.SetCustomError(constant.ErrRoomTypeMissing)
	}

	setups, err := s.setupRepo.ListForRoomType(ctx, room.RoomTypeID)
	if err != nil {
		logger.Error("[roomState] list setups failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(setups) == 0 {
		return nil, errors.SetCustomError(constant.ErrSetupMissing)
	}

	setupIDs := make([]uint64, 0, len(setups))
	for _, st := range setups {
		setupIDs = append(setupIDs, st.ID)
	}

	products, err := s.setupRepo.GetProducts(ctx, setupIDs)
	if err != nil {
		logger.Error("[roomState] get setup products failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	roomStock, err := s.minibarRepo.GetRoomStock(ctx, roomID)
	if err != nil {
		logger.Error("[roomState] get room stock failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	stockByProduct := make(map[uint64]model.RoomStock, len(roomStock))
	for _, rs := range roomStock {
		stockByProduct[rs.ProductID] = rs
	}

	productsBySetup := make(map[uint64][]model.SetupProductState)
	for _, p := range products {
		rs := stockByProduct[p.ProductID]
		state := model.SetupProductState{
			ProductID:     p.ProductID,
			ProductName:   p.ProductName,
			Unit:          p.Unit,
			SetupQuantity: p.SetupQuantity,
			Current:       rs.Quantity,
			ExtraQuantity: rs.ExtraQuantity,
		}
		total := rs.Quantity + rs.ExtraQuantity
		switch {
		case total < p.SetupQuantity:
			state.Status = constant.ProductStatusMissing
			state.Missing = p.SetupQuantity - total
		case rs.ExtraQuantity > 0:
			state.Status = constant.ProductStatusHasExtra
		default:
			state.Status = constant.ProductStatusFull
		}
		productsBySetup[p.SetupID] = append(productsBySetup[p.SetupID], state)
	}

	// In-cabinet setups render once per cabinet of the room type; out-of-
	// cabinet setups appear a single time after them.
	inCabinet := make([]model.SetupState, 0)
	outOfCabinet := make([]model.SetupState, 0)
	for _, st := range setups {
		lines := productsBySetup[st.ID]
		if lines == nil {
			lines = []model.SetupProductState{}
		}
		if st.InCabinet {
			cabinets := room.CabinetCount
			if cabinets < 1 {
				cabinets = 1
			}
			for n := 1; n <= cabinets; n++ {
				inCabinet = append(inCabinet, model.SetupState{
					SetupID:       st.ID,
					SetupName:     fmt.Sprintf("%s - Cabinet %d", st.Name, n),
					InCabinet:     true,
					CabinetNumber: n,
					Products:      lines,
				})
			}
		} else {
			outOfCabinet = append(outOfCabinet, model.SetupState{
				SetupID:   st.ID,
				SetupName: st.Name,
				InCabinet: false,
				Products:  lines,
			})
		}
	}

	state := &cachedRoomState{
		Room:   *room,
		Setups: append(inCabinet, outOfCabinet...),
	}

	if payload, err := json.Marshal(state); err == nil {
		if err := s.redisRepo.SetWithTTL(ctx, roomStateCacheKey(roomID), string(payload), roomStateCacheTTL); err != nil {
			logger.Warn("[roomState] cache write failed", zap.String("error", err.Error()))
		}
	}

	return state, nil
}

func (s *roomStateAppImpl) DailyAdditions(ctx context.Context, roomID uint64) (*model.DailyAdditionsResponse, error) {
	date := time.Now().Format("2006-01-02")
	additions, err := s.minibarRepo.GetDailyAdditions(ctx, roomID, date)
	if err != nil {
		logger.Error("[DailyAdditions] get additions failed", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.DailyAdditionsResponse{
		RoomID:    roomID,
		Date:      date,
		Additions: additions,
	}, nil
}
