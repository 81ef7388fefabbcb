package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	adminapp "github.com/hotelops/minibar/application/admin"
	reconcileapp "github.com/hotelops/minibar/application/reconcile"
	roomstateapp "github.com/hotelops/minibar/application/roomstate"
	stockapp "github.com/hotelops/minibar/application/stock"
	userapp "github.com/hotelops/minibar/application/user"
	visitapp "github.com/hotelops/minibar/application/visit"
	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	"github.com/hotelops/minibar/utils/errors"
	validatorx "github.com/hotelops/minibar/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp      userapp.UserApp
	ReconcileApp reconcileapp.ReconcileApp
	VisitApp     visitapp.VisitApp
	RoomStateApp roomstateapp.RoomStateApp
	StockApp     stockapp.StockApp
	AdminApp     adminapp.AdminApp
}

func NewTransport(rh *RestHandler, internalAPIKey string) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	mux.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// Room state
	mux.HandleFunc("/api/rooms/{room_id}/setup-and-stock", rh.SetupAndStock).Methods(http.MethodGet)
	mux.HandleFunc("/api/rooms/{room_id}/daily-additions", rh.DailyAdditions).Methods(http.MethodGet)

	// Minibar mutations
	mux.HandleFunc("/api/rooms/{room_id}/replace", rh.Replace).Methods(http.MethodPost)
	mux.HandleFunc("/api/rooms/{room_id}/extra", rh.AddExtra).Methods(http.MethodPost)
	mux.HandleFunc("/api/rooms/{room_id}/extra/reset", rh.ResetExtra).Methods(http.MethodPost)

	// Visit lifecycle
	mux.HandleFunc("/api/rooms/{room_id}/visit/start", rh.VisitStart).Methods(http.MethodPost)
	mux.HandleFunc("/api/rooms/{room_id}/visit/complete", rh.VisitComplete).Methods(http.MethodPost)
	mux.HandleFunc("/api/rooms/{room_id}/do-not-disturb", rh.DoNotDisturb).Methods(http.MethodPost)

	// Staff stock
	mux.HandleFunc("/api/staff-stock", rh.MyStock).Methods(http.MethodGet)
	mux.HandleFunc("/api/staff-stock/issue",
		requireRole(constant.RoleAdmin, constant.RoleWarehouseManager)(rh.IssueStock)).Methods(http.MethodPost)

	// Management
	mux.HandleFunc("/api/floors", requireRole(constant.RoleAdmin)(rh.CreateFloor)).Methods(http.MethodPost)
	mux.HandleFunc("/api/floors", rh.ListFloors).Methods(http.MethodGet)
	mux.HandleFunc("/api/floors/{floor_id}/rooms", rh.ListRooms).Methods(http.MethodGet)
	mux.HandleFunc("/api/rooms", requireRole(constant.RoleAdmin)(rh.CreateRoom)).Methods(http.MethodPost)
	mux.HandleFunc("/api/rooms/{room_id}", requireRole(constant.RoleAdmin)(rh.UpdateRoom)).Methods(http.MethodPut)
	mux.HandleFunc("/api/rooms/{room_id}", requireRole(constant.RoleAdmin)(rh.DeleteRoom)).Methods(http.MethodDelete)
	mux.HandleFunc("/api/setups", requireRole(constant.RoleAdmin)(rh.CreateSetup)).Methods(http.MethodPost)
	mux.HandleFunc("/api/setups/assign", requireRole(constant.RoleAdmin)(rh.AssignSetup)).Methods(http.MethodPost)

	// Internal routes (API key, used by the queue consumer)
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/tasks/{task_ref}/stale", rh.MarkTaskStale).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return mux
}

// Register handler
// @Summary Register user
// @Description Register a new staff account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email or phone and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
