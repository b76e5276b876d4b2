package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"mentormatch/internal/delivery/http/helpers"
	"mentormatch/internal/domain"
)

// defaultUserWindow is the lookahead applied when a single-user availability
// request omits from/to.
const defaultUserWindow = 7 * 24 * time.Hour

type AvailabilityController struct {
	Logger  *slog.Logger
	Service domain.AvailabilityService
}

func NewAvailabilityController(logger *slog.Logger, svc domain.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{
		Logger:  logger,
		Service: svc,
	}
}

// MentorsResponse is the payload for GET /availability/mentors.
type MentorsResponse struct {
	Mentors []*domain.MentorAvailability `json:"mentors"`
	Meta    helpers.PaginationMeta       `json:"meta"`
	Message string                       `json:"message"`
}

// MentorsSuccessResponse is the success envelope for GET /availability/mentors (200).
type MentorsSuccessResponse struct {
	Data  MentorsResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// GetMentors godoc
// @Summary List mentors with free time in a window
// @Description Resolves availability for every candidate mentor inside [from, to) and returns those with at least one free range, ordered by email. Identity mode (emails) restricts candidates to an explicit list; verified_only restricts window mode to verified mentors. skip/take paginate the post-filter result.
// @Tags availability
// @Produce json
// @Param from query string true "Window start (RFC3339)"
// @Param to query string true "Window end (RFC3339, exclusive)"
// @Param emails query string false "Comma-separated candidate emails (identity mode)"
// @Param verified_only query bool false "Restrict to verified mentors (window mode only)"
// @Param skip query int false "Zero-based result offset (default 0)"
// @Param take query int false "Maximum results (default 20, max 100)"
// @Param schedule query string false "Restrict to schedules with this exact name"
// @Success 200 {object} controllers.MentorsSuccessResponse "data contains mentors and pagination meta"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_range"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /availability/mentors [get]
func (c *AvailabilityController) GetMentors(w http.ResponseWriter, r *http.Request) {
	window, err := parseWindow(r.URL.Query().Get("from"), r.URL.Query().Get("to"), true)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	page, err := helpers.ParsePagination(r)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeInvalidRange, err.Error())
		return
	}

	query := domain.AvailabilityQuery{
		Window:       window,
		Page:         page,
		ScheduleName: r.URL.Query().Get("schedule"),
		Candidates: domain.CandidateFilter{
			VerifiedOnly: r.URL.Query().Get("verified_only") == "true",
		},
	}
	if raw, present := r.URL.Query()["emails"]; present {
		emails := splitEmails(raw)
		if len(emails) == 0 {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "emails must contain at least one address")
			return
		}
		query.Candidates.Emails = emails
	}

	mentors, total, err := c.Service.ResolveMentors(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MentorsResponse{
		Mentors: mentors,
		Meta:    helpers.NewPaginationMeta(page, total),
		Message: "Get Mentors by Availability Successful",
	})
}

// UserAvailabilityResponse is the payload for GET /availability/mentor.
type UserAvailabilityResponse struct {
	Availability *domain.MentorAvailability `json:"availability"`
	Message      string                     `json:"message"`
}

// UserAvailabilitySuccessResponse is the success envelope for GET /availability/mentor (200).
type UserAvailabilitySuccessResponse struct {
	Data  UserAvailabilityResponse `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

// GetUserAvailability godoc
// @Summary Resolve one mentor's availability by email
// @Description Returns the mentor's free ranges, busy intervals, and out-of-office periods inside [from, to). When from/to are omitted the window defaults to the next 7 days.
// @Tags availability
// @Produce json
// @Param email query string true "Mentor email"
// @Param from query string false "Window start (RFC3339, default now)"
// @Param to query string false "Window end (RFC3339, default from+7d)"
// @Success 200 {object} controllers.UserAvailabilitySuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or invalid_range"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /availability/mentor [get]
func (c *AvailabilityController) GetUserAvailability(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "email is required")
		return
	}
	window, err := parseWindow(r.URL.Query().Get("from"), r.URL.Query().Get("to"), false)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}

	result, err := c.Service.ResolveUser(r.Context(), email, window)
	if err != nil {
		writeServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, UserAvailabilityResponse{
		Availability: result,
		Message:      "Mentor availability fetched successfully",
	})
}

// parseWindow parses from/to as RFC3339. When required is false, a missing
// from defaults to now and a missing to defaults to from plus seven days; the
// service always receives a fully bounded window.
func parseWindow(fromRaw, toRaw string, required bool) (domain.Interval, error) {
	var window domain.Interval
	switch {
	case fromRaw != "":
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			return window, fmt.Errorf("from must be RFC3339: %v", err)
		}
		window.Start = from.UTC()
	case required:
		return window, fmt.Errorf("from is required")
	default:
		window.Start = time.Now().UTC()
	}
	switch {
	case toRaw != "":
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			return window, fmt.Errorf("to must be RFC3339: %v", err)
		}
		window.End = to.UTC()
	case required:
		return window, fmt.Errorf("to is required")
	default:
		window.End = window.Start.Add(defaultUserWindow)
	}
	return window, nil
}

func splitEmails(raw []string) []string {
	var out []string
	for _, chunk := range raw {
		for _, email := range strings.Split(chunk, ",") {
			email = strings.TrimSpace(email)
			if email != "" {
				out = append(out, email)
			}
		}
	}
	return out
}
