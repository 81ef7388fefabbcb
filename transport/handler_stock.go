package transport

import (
	"encoding/json"
	"net/http"

	"github.com/hotelops/minibar/constant"
	"github.com/hotelops/minibar/model"
	utilsContext "github.com/hotelops/minibar/utils/context"
	"github.com/hotelops/minibar/utils/errors"
	validatorx "github.com/hotelops/minibar/utils/validator"
)

// MyStock handler
// @Summary Carried stock
// @Description List the caller's carried stock, aggregated per product
// @Tags Stock
// @Produce json
// @Success 200 {array} model.StaffStockEntry
// @Router /api/staff-stock [get]
func (s *RestHandler) MyStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	staffID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.StockApp.MyStock(ctx, staffID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// IssueStock handler
// @Summary Issue stock to staff
// @Description Hand a batch of products from the warehouse to a staff member
// @Tags Stock
// @Accept json
// @Produce json
// @Param request body model.IssueStockRequest true "Issue Request"
// @Success 200 {object} model.IssueStockResponse
// @Failure 400 {object} errors.CustomError
// @Router /api/staff-stock/issue [post]
func (s *RestHandler) IssueStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.IssueStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.StockApp.Issue(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
