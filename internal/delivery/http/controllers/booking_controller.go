package controllers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"mentormatch/internal/delivery/http/helpers"
	"mentormatch/internal/domain"
)

// emailRegexp matches a simple email format (local@domain with at least one dot in domain).
var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type BookingController struct {
	Logger      *slog.Logger
	Service     domain.BookingService
	UserService domain.UserRepository
}

func NewBookingController(logger *slog.Logger, svc domain.BookingService, userRepo domain.UserRepository) *BookingController {
	return &BookingController{
		Logger:      logger,
		Service:     svc,
		UserService: userRepo,
	}
}

// MenteeRequest identifies the counterparty requesting a booking.
type MenteeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateBookingRequest is the request body for POST /bookings.
type CreateBookingRequest struct {
	MentorEmail string        `json:"mentorEmail"`
	Mentee      MenteeRequest `json:"mentee"`
	EventTypeID int           `json:"eventTypeId"`
	Start       time.Time     `json:"start"`
	End         time.Time     `json:"end"`
	TimeZone    string        `json:"timeZone"`
	Title       string        `json:"title,omitempty"`
	Description string        `json:"description,omitempty"`
	Status      string        `json:"status,omitempty"`
}

// Validate implements Validator.
func (b CreateBookingRequest) Validate() []string {
	var errs []string
	if b.MentorEmail == "" {
		errs = append(errs, "mentorEmail is required")
	} else if !emailRegexp.MatchString(b.MentorEmail) {
		errs = append(errs, "invalid mentorEmail format")
	}
	if b.Mentee.Email == "" {
		errs = append(errs, "mentee.email is required")
	} else if !emailRegexp.MatchString(b.Mentee.Email) {
		errs = append(errs, "invalid mentee.email format")
	}
	if b.Start.IsZero() {
		errs = append(errs, "start is required")
	}
	if b.End.IsZero() {
		errs = append(errs, "end is required")
	}
	if !b.Start.IsZero() && !b.End.IsZero() && !b.Start.Before(b.End) {
		errs = append(errs, "start must be before end")
	}
	if b.Status != "" && !domain.ValidBookingStatus(domain.BookingStatus(b.Status)) {
		errs = append(errs, "status must be one of pending, accepted, rejected, cancelled")
	}
	return errs
}

// BookingResponse is the payload wrapping a single booking.
type BookingResponse struct {
	Booking *domain.Booking `json:"booking"`
	Message string          `json:"message"`
}

// BookingSuccessResponse is the success envelope for booking endpoints.
type BookingSuccessResponse struct {
	Data  BookingResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// Create godoc
// @Summary Create a booking against a mentor's free time
// @Description Creates a booking for the mentor identified by mentorEmail. The requested [start, end) must lie inside one of the mentor's current free ranges; otherwise the request fails with slot_unavailable and nothing is stored. Status defaults to pending.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param booking body CreateBookingRequest true "Booking data"
// @Success 201 {object} controllers.BookingSuccessResponse "data contains the created booking"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_range"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (mentor unknown)"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [post]
func (c *BookingController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	mentor, err := c.UserService.GetByEmail(r.Context(), strings.ToLower(req.MentorEmail))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, domain.ErrUserNotFound) {
			writeServiceError(w, r, c.Logger, domain.ErrUserNotFound)
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}

	booking := &domain.Booking{
		UserID:         mentor.ID,
		MenteeEmail:    strings.ToLower(req.Mentee.Email),
		MenteeName:     req.Mentee.Name,
		MenteeTimeZone: req.TimeZone,
		EventTypeID:    req.EventTypeID,
		Title:          req.Title,
		Description:    req.Description,
		Start:          req.Start.UTC(),
		End:            req.End.UTC(),
		Status:         domain.BookingStatus(req.Status),
	}
	if err := c.Service.Create(r.Context(), booking); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, BookingResponse{
		Booking: booking,
		Message: "Booking created successfully",
	})
}

// UpdateBookingRequest is the request body for PATCH /bookings/{bookingID}.
// All fields are optional; omitted fields are left untouched.
type UpdateBookingRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// Validate implements Validator.
func (b UpdateBookingRequest) Validate() []string {
	var errs []string
	if b.Status != nil && !domain.ValidBookingStatus(domain.BookingStatus(*b.Status)) {
		errs = append(errs, "status must be one of pending, accepted, rejected, cancelled")
	}
	if b.Title == nil && b.Description == nil && b.Start == nil && b.End == nil && b.Status == nil {
		errs = append(errs, "at least one field must be provided")
	}
	return errs
}

// Update godoc
// @Summary Update a booking
// @Description Partially updates a booking. Changing start/end re-validates slot availability; illegal status transitions are rejected.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Param booking body UpdateBookingRequest true "Fields to update"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_range"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: slot_unavailable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [patch]
func (c *BookingController) Update(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	var req UpdateBookingRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	patch := domain.BookingPatch{
		Title:       req.Title,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		patch.Status = &status
	}

	booking, err := c.Service.Update(r.Context(), bookingID, patch)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BookingResponse{
		Booking: booking,
		Message: "Booking updated successfully",
	})
}

// Delete godoc
// @Summary Delete a booking
// @Description Removes the booking and frees its interval for subsequent availability queries.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bookingID path string true "Booking ID"
// @Success 200 {object} controllers.BookingSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings/{bookingID} [delete]
func (c *BookingController) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID := r.PathValue("bookingID")
	if bookingID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing bookingID")
		return
	}
	if err := c.Service.Delete(r.Context(), bookingID); err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BookingResponse{
		Message: "Booking deleted successfully",
	})
}

// BookingListResponse is the payload for GET /bookings.
type BookingListResponse struct {
	Bookings []*domain.Booking      `json:"bookings"`
	Meta     helpers.PaginationMeta `json:"meta"`
	Message  string                 `json:"message"`
}

// BookingListSuccessResponse is the success envelope for GET /bookings (200).
type BookingListSuccessResponse struct {
	Data  BookingListResponse `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// List godoc
// @Summary List bookings
// @Description Lists bookings, optionally filtered by mentor email and status, paginated with skip/take.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param user_email query string false "Mentor email"
// @Param status query string false "Booking status filter"
// @Param skip query int false "Zero-based result offset (default 0)"
// @Param take query int false "Maximum results (default 20, max 100)"
// @Success 200 {object} controllers.BookingListSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_range"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /bookings [get]
func (c *BookingController) List(w http.ResponseWriter, r *http.Request) {
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidRange, err.Error())
		return
	}
	filter := domain.BookingFilter{
		UserEmail: strings.ToLower(strings.TrimSpace(r.URL.Query().Get("user_email"))),
		Status:    domain.BookingStatus(r.URL.Query().Get("status")),
	}

	bookings, total, err := c.Service.List(r.Context(), filter, page)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BookingListResponse{
		Bookings: bookings,
		Meta:     helpers.NewPaginationMeta(page, total),
		Message:  "Bookings fetched successfully",
	})
}
