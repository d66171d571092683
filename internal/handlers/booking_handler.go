package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/service-marketplace/internal/httperr"
	"github.com/BruksfildServices01/service-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/service-marketplace/internal/middleware"
	ucBooking "github.com/BruksfildServices01/service-marketplace/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createBooking *ucBooking.CreateBooking
	createRequest *ucBooking.CreateRequest
	updateRequest *ucBooking.UpdateRequest
	getRequest    *ucBooking.GetRequest
	history       *ucBooking.History
}

func NewBookingHandler(
	createBooking *ucBooking.CreateBooking,
	createRequest *ucBooking.CreateRequest,
	updateRequest *ucBooking.UpdateRequest,
	getRequest *ucBooking.GetRequest,
	history *ucBooking.History,
) *BookingHandler {
	return &BookingHandler{
		createBooking: createBooking,
		createRequest: createRequest,
		updateRequest: updateRequest,
		getRequest:    getRequest,
		history:       history,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	UserID        uint   `json:"user_id"`
	ServicesID    uint   `json:"services_id" binding:"required"`
	StartDayDate  string `json:"start_day_date" binding:"required"`
	StartTimeDate string `json:"start_time_date" binding:"required"`
}

type CreateRequestRequest struct {
	BookingID uint   `json:"booking_id" binding:"required"`
	Status    string `json:"status" binding:"max=30"`
	Comment   string `json:"comment"`
}

// UpdateRequestRequest leaves status checks to the use case, which looks the
// request up first so an unknown id is a 404 whatever the status.
type UpdateRequestRequest struct {
	RequestID uint   `json:"requestId" binding:"required"`
	Status    string `json:"status"`
	Comment   string `json:"comment"`
}

// ======================================================
// BOOKINGS
// ======================================================

// CreateBooking books for user_id, or for the token's user when it is omitted.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	userID := req.UserID
	if userID == 0 {
		caller, _ := middleware.Subject(c)
		userID = caller.UserID
	}

	b, err := h.createBooking.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ServiceID: req.ServicesID,
		UserID:    userID,
		Date:      req.StartDayDate,
		Time:      req.StartTimeDate,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) UserBookings(c *gin.Context) {
	userID, ok := requiredQueryID(c, "user_id", "User ID")
	if !ok {
		return
	}
	items, err := h.history.UserBookings(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *BookingHandler) CompanyBookings(c *gin.Context) {
	companyID, ok := requiredQueryID(c, "company_id", "Company ID")
	if !ok {
		return
	}
	items, err := h.history.CompanyBookings(c.Request.Context(), companyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

// ======================================================
// REQUESTS
// ======================================================

func (h *BookingHandler) CreateRequest(c *gin.Context) {
	var req CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	r, err := h.createRequest.Execute(c.Request.Context(), ucBooking.CreateRequestInput{
		BookingID: req.BookingID,
		Status:    req.Status,
		Comment:   req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, r)
}

func (h *BookingHandler) GetRequest(c *gin.Context) {
	requestID, ok := pathID(c, "request_id")
	if !ok {
		return
	}
	r, err := h.getRequest.Execute(c.Request.Context(), requestID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, r)
}

func (h *BookingHandler) UpdateRequest(c *gin.Context) {
	var req UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	if _, err := h.updateRequest.Execute(c.Request.Context(), req.RequestID, req.Status, req.Comment); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Msg(c, http.StatusOK, "Request updated successfully")
}

func (h *BookingHandler) UserRequests(c *gin.Context) {
	userID, ok := requiredQueryID(c, "user_id", "User ID")
	if !ok {
		return
	}
	items, err := h.history.UserRequests(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}

func (h *BookingHandler) CompanyRequests(c *gin.Context) {
	companyID, ok := requiredQueryID(c, "company_id", "Company ID")
	if !ok {
		return
	}
	items, err := h.history.CompanyRequests(c.Request.Context(), companyID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, items)
}
