package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	utilsContext "github.com/hotelops/minibar/utils/context"
	"github.com/hotelops/minibar/utils/errors"
	validatorx "github.com/hotelops/minibar/utils/validator"
)

func pathUint(r *http.Request, key string) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)[key], 10, 64)
}

// SetupAndStock handler
// @Summary Room setup and stock
// @Description Expected setups per cabinet, current room stock and the caller's carried stock
// @Tags Minibar
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {object} model.SetupAndStockResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/rooms/{room_id}/setup-and-stock [get]
func (s *RestHandler) SetupAndStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	staffID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.RoomStateApp.SetupAndStock(ctx, staffID, roomID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DailyAdditions handler
// @Summary Daily additions
// @Description Quantities already added to the room today, per product
// @Tags Minibar
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {object} model.DailyAdditionsResponse
// @Router /api/rooms/{room_id}/daily-additions [get]
func (s *RestHandler) DailyAdditions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.RoomStateApp.DailyAdditions(ctx, roomID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Replace handler
// @Summary Replace consumed products
// @Description Move product from the caller's carried stock into the room, bounded by the setup quantity
// @Tags Minibar
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.ReplaceRequest true "Replace Request"
// @Success 200 {object} model.MutationResponse
// @Failure 409 {object} errors.CustomError
// @Router /api/rooms/{room_id}/replace [post]
func (s *RestHandler) Replace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	staffID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ReplaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReconcileApp.Replace(ctx, staffID, roomID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddExtra handler
// @Summary Add extra products
// @Description Place products beyond the setup quantity, billed separately
// @Tags Minibar
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.ExtraRequest true "Extra Request"
// @Success 200 {object} model.MutationResponse
// @Router /api/rooms/{room_id}/extra [post]
func (s *RestHandler) AddExtra(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	staffID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ExtraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReconcileApp.AddExtra(ctx, staffID, roomID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ResetExtra handler
// @Summary Clear extra products
// @Description Zero out the extra quantity tracked for a product in the room
// @Tags Minibar
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.ResetExtraRequest true "Reset Extra Request"
// @Success 200 {object} model.MutationResponse
// @Router /api/rooms/{room_id}/extra/reset [post]
func (s *RestHandler) ResetExtra(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomID, err := pathUint(r, "room_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	staffID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ResetExtraRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.ReconcileApp.ResetExtra(ctx, staffID, roomID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
