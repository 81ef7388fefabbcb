package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrInvalidAmount
	ErrExceedsSetupCapacity
	ErrInsufficientStaffStock
	ErrVisitAlreadyCompleted
	ErrConsumptionRecorded
	ErrNoProductActions
	ErrRoomTypeMissing
	ErrSetupMissing
	ErrMutationFailed
	ErrRefreshRequired
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                "success",
	ErrInternal:               "error internal",
	ErrNotFound:               "data not found",
	ErrInvalidRequest:         "invalid request",
	ErrUnauthorize:            "unauthorize request",
	ErrCredentialExists:       "email or phone already exists",
	ErrInvalidPassword:        "password invalid",
	ErrInvalidAmount:          "amount must be at least 1",
	ErrExceedsSetupCapacity:   "amount exceeds the setup quantity for this product today",
	ErrInsufficientStaffStock: "not enough stock in your carried inventory",
	ErrVisitAlreadyCompleted:  "room visit is already completed",
	ErrConsumptionRecorded:    "room already has a consumption record for this visit",
	ErrNoProductActions:       "no product actions were recorded for this visit",
	ErrRoomTypeMissing:        "room has no room type assigned",
	ErrSetupMissing:           "no setup defined for this room type",
	ErrMutationFailed:         "mutation failed, refresh room data and try again",
	ErrRefreshRequired:        "room data is stale, refresh before retrying",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                http.StatusOK,
	ErrInternal:               http.StatusInternalServerError,
	ErrNotFound:               http.StatusBadRequest,
	ErrInvalidRequest:         http.StatusBadRequest,
	ErrUnauthorize:            http.StatusUnauthorized,
	ErrCredentialExists:       http.StatusBadRequest,
	ErrInvalidPassword:        http.StatusBadRequest,
	ErrInvalidAmount:          http.StatusBadRequest,
	ErrExceedsSetupCapacity:   http.StatusConflict,
	ErrInsufficientStaffStock: http.StatusConflict,
	ErrVisitAlreadyCompleted:  http.StatusConflict,
	ErrConsumptionRecorded:    http.StatusConflict,
	ErrNoProductActions:       http.StatusConflict,
	ErrRoomTypeMissing:        http.StatusBadRequest,
	ErrSetupMissing:           http.StatusBadRequest,
	ErrMutationFailed:         http.StatusBadGateway,
	ErrRefreshRequired:        http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                "0000",
	ErrInternal:               "0001",
	ErrNotFound:               "0002",
	ErrInvalidRequest:         "0003",
	ErrUnauthorize:            "0004",
	ErrCredentialExists:       "0005",
	ErrInvalidPassword:        "0006",
	ErrInvalidAmount:          "0007",
	ErrExceedsSetupCapacity:   "0008",
	ErrInsufficientStaffStock: "0009",
	ErrVisitAlreadyCompleted:  "0010",
	ErrConsumptionRecorded:    "0011",
	ErrNoProductActions:       "0012",
	ErrRoomTypeMissing:        "0013",
	ErrSetupMissing:           "0014",
	ErrMutationFailed:         "0015",
	ErrRefreshRequired:        "0016",
}
