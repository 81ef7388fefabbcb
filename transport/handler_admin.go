package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/hotelops/minibar/utils/errors"
	validatorx "github.com/hotelops/minibar/utils/validator"
)

// CreateFloor handler
// @Summary Create floor
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.CreateFloorRequest true "Create Floor Request"
// @Success 200 {object} map[string]uint64
// @Router /api/floors [post]
func (s *RestHandler) CreateFloor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateFloorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AdminApp.CreateFloor(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"floor_id": id})
}

// ListFloors handler
// @Summary List floors
// @Tags Admin
// @Produce json
// @Param hotel_id query int true "Hotel ID"
// @Success 200 {array} model.Floor
// @Router /api/floors [get]
func (s *RestHandler) ListFloors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	hotelID, err := strconv.ParseUint(r.URL.Query().Get("hotel_id"), 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.ListFloors(ctx, hotelID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListRooms handler
// @Summary List rooms on a floor
// @Tags Admin
// @Produce json
// @Param floor_id path int true "Floor ID"
// @Success 200 {array} model.RoomListItem
// @Router /api/floors/{floor_id}/rooms [get]
func (s *RestHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	floorID, err := pathUint(r, "floor_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AdminApp.ListRooms(ctx, floorID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateRoom handler
// @Summary Create room
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.CreateRoomRequest true "Create Room Request"
// @Success 200 {object} map[string]uint64
// @Router /api/rooms [post]
func (s *RestHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AdminApp.CreateRoom(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"room_id": id})
}

// UpdateRoom handler
// @Summary Update room
// @Tags Admin
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.CustomError
// @Router /api/rooms/{room_id} [put]
func (s *RestHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.UpdateRoom(ctx, roomID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "room updated"})
}

// DeleteRoom handler
// @Summary Deactivate room
// @Tags Admin
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {object} map[string]string
// @Router /api/rooms/{room_id} [delete]
func (s *RestHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.DeleteRoom(ctx, roomID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "room deactivated"})
}

// CreateSetup handler
// @Summary Create setup
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.CreateSetupRequest true "Create Setup Request"
// @Success 200 {object} map[string]uint64
// @Router /api/setups [post]
func (s *RestHandler) CreateSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.CreateSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	id, err := s.AdminApp.CreateSetup(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]uint64{"setup_id": id})
}

// AssignSetup handler
// @Summary Assign setup to room type
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body model.AssignSetupRequest true "Assign Setup Request"
// @Success 200 {object} map[string]string
// @Router /api/setups/assign [post]
func (s *RestHandler) AssignSetup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AssignSetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AdminApp.AssignSetup(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "setup assigned"})
}
