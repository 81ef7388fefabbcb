package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	utilsContext "github.com/hotelops/minibar/utils/context"
	"github.com/hotelops/minibar/utils/errors"
	validatorx "github.com/hotelops/minibar/utils/validator"
)

// VisitStart handler
// @Summary Start room visit
// @Description Open (or reopen) today's visit record for the room
// @Tags Visit
// @Produce json
// @Param room_id path int true "Room ID"
// @Success 200 {object} model.VisitStartResponse
// @Failure 404 {object} errors.CustomError
// @Router /api/rooms/{room_id}/visit/start [post]
func (s *RestHandler) VisitStart(w http.ResponseWriter, r *http.Request) {
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

	res, err := s.VisitApp.Start(ctx, staffID, roomID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// VisitComplete handler
// @Summary Complete room visit
// @Description Close today's visit as products-added or no-consumption
// @Tags Visit
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.VisitCompleteRequest true "Complete Request"
// @Success 200 {object} model.VisitCompleteResponse
// @Failure 409 {object} errors.CustomError
// @Router /api/rooms/{room_id}/visit/complete [post]
func (s *RestHandler) VisitComplete(w http.ResponseWriter, r *http.Request) {
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

	var req model.VisitCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VisitApp.Complete(ctx, staffID, roomID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DoNotDisturb handler
// @Summary Mark room do-not-disturb
// @Description Close today's visit as do-not-disturb and count the attempt
// @Tags Visit
// @Accept json
// @Produce json
// @Param room_id path int true "Room ID"
// @Param request body model.DNDRequest true "DND Request"
// @Success 200 {object} model.DNDResponse
// @Router /api/rooms/{room_id}/do-not-disturb [post]
func (s *RestHandler) DoNotDisturb(w http.ResponseWriter, r *http.Request) {
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

	var req model.DNDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.VisitApp.MarkDoNotDisturb(ctx, staffID, roomID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// MarkTaskStale handler. Internal only, called by the queue consumer when a
// delayed do-not-disturb escalation fires.
func (s *RestHandler) MarkTaskStale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	taskRef := mux.Vars(r)["task_ref"]
	if taskRef == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var body struct {
		RoomID uint64 `json:"room_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.VisitApp.MarkTaskStale(ctx, taskRef, body.RoomID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "task marked stale"})
}
