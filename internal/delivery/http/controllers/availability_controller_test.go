package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentormatch/internal/delivery/http/helpers"
	"mentormatch/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAvailabilityService implements domain.AvailabilityService for handler tests.
type fakeAvailabilityService struct {
	mentors    []*domain.MentorAvailability
	total      int
	mentorsErr error
	lastQuery  domain.AvailabilityQuery
	user       *domain.MentorAvailability
	userErr    error
	lastEmail  string
	lastWindow domain.Interval
}

func (f *fakeAvailabilityService) ResolveMentors(ctx context.Context, q domain.AvailabilityQuery) ([]*domain.MentorAvailability, int, error) {
	f.lastQuery = q
	if f.mentorsErr != nil {
		return nil, 0, f.mentorsErr
	}
	return f.mentors, f.total, nil
}

func (f *fakeAvailabilityService) ResolveUser(ctx context.Context, email string, window domain.Interval) (*domain.MentorAvailability, error) {
	f.lastEmail = email
	f.lastWindow = window
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func testControllerLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestAvailabilityController_GetMentors(t *testing.T) {
	mentor := &domain.MentorAvailability{
		User:     &domain.User{ID: "u1", Email: "mentor@example.com", Name: "Mentor"},
		TimeZone: "UTC",
		FreeRanges: []domain.Interval{
			{Start: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 2, 17, 0, 0, 0, time.UTC)},
		},
	}

	tests := []struct {
		name         string
		url          string
		fake         *fakeAvailabilityService
		wantStatus   int
		wantBodyCode string
		checkQuery   func(t *testing.T, q domain.AvailabilityQuery)
	}{
		{
			name:       "success window mode",
			url:        "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z",
			fake:       &fakeAvailabilityService{mentors: []*domain.MentorAvailability{mentor}, total: 1},
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q domain.AvailabilityQuery) {
				assert.Empty(t, q.Candidates.Emails)
				assert.False(t, q.Candidates.VerifiedOnly)
				assert.Equal(t, helpers.DefaultTake, q.Page.Take)
			},
		},
		{
			name:       "identity mode with comma separated emails",
			url:        "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&emails=a@x.com,b@x.com",
			fake:       &fakeAvailabilityService{},
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q domain.AvailabilityQuery) {
				assert.Equal(t, []string{"a@x.com", "b@x.com"}, q.Candidates.Emails)
			},
		},
		{
			name:       "verified only and schedule filter",
			url:        "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&verified_only=true&schedule=Working%20Hours",
			fake:       &fakeAvailabilityService{},
			wantStatus: http.StatusOK,
			checkQuery: func(t *testing.T, q domain.AvailabilityQuery) {
				assert.True(t, q.Candidates.VerifiedOnly)
				assert.Equal(t, "Working Hours", q.ScheduleName)
			},
		},
		{
			name:         "missing from",
			url:          "/availability/mentors?to=2025-06-09T00:00:00Z",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "malformed to",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=tomorrow",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "emails present but empty",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&emails=",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "negative skip",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&skip=-1",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeInvalidRange,
		},
		{
			name:         "zero take",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&take=0",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeInvalidRange,
		},
		{
			name:         "take above max",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&take=101",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeInvalidRange,
		},
		{
			name:         "inverted window rejected by service",
			url:          "/availability/mentors?from=2025-06-09T00:00:00Z&to=2025-06-02T00:00:00Z",
			fake:         &fakeAvailabilityService{mentorsErr: domain.ErrInvalidRange},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeInvalidRange,
		},
		{
			name:         "service error",
			url:          "/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z",
			fake:         &fakeAvailabilityService{mentorsErr: assert.AnError},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAvailabilityController(testControllerLogger(), tt.fake)

			req := httptest.NewRequest(http.MethodGet, "http://test"+tt.url, nil)
			rr := httptest.NewRecorder()

			ctrl.GetMentors(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantBodyCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
			if tt.checkQuery != nil {
				tt.checkQuery(t, tt.fake.lastQuery)
			}
		})
	}
}

func TestAvailabilityController_GetMentors_ResponseBody(t *testing.T) {
	mentor := &domain.MentorAvailability{
		User:     &domain.User{ID: "u1", Email: "mentor@example.com", Name: "Mentor"},
		TimeZone: "America/New_York",
		FreeRanges: []domain.Interval{
			{Start: time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC), End: time.Date(2025, 6, 2, 21, 0, 0, 0, time.UTC)},
		},
	}
	fake := &fakeAvailabilityService{mentors: []*domain.MentorAvailability{mentor}, total: 5}
	ctrl := NewAvailabilityController(testControllerLogger(), fake)

	req := httptest.NewRequest(http.MethodGet, "http://test/availability/mentors?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z&skip=2&take=1", nil)
	rr := httptest.NewRecorder()

	ctrl.GetMentors(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var envelope MentorsSuccessResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	require.Nil(t, envelope.Error)
	assert.Equal(t, "Get Mentors by Availability Successful", envelope.Data.Message)
	assert.Equal(t, 2, envelope.Data.Meta.Skip)
	assert.Equal(t, 1, envelope.Data.Meta.Take)
	assert.Equal(t, 5, envelope.Data.Meta.Total)
	require.Len(t, envelope.Data.Mentors, 1)
	assert.Equal(t, "mentor@example.com", envelope.Data.Mentors[0].User.Email)
	assert.Equal(t, "America/New_York", envelope.Data.Mentors[0].TimeZone)
}

func TestAvailabilityController_GetUserAvailability(t *testing.T) {
	availability := &domain.MentorAvailability{
		User:     &domain.User{ID: "u1", Email: "mentor@example.com"},
		TimeZone: "UTC",
	}

	tests := []struct {
		name         string
		url          string
		fake         *fakeAvailabilityService
		wantStatus   int
		wantBodyCode string
	}{
		{
			name:       "success with explicit window",
			url:        "/availability/mentor?email=mentor@example.com&from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z",
			fake:       &fakeAvailabilityService{user: availability},
			wantStatus: http.StatusOK,
		},
		{
			name:       "success with defaulted window",
			url:        "/availability/mentor?email=mentor@example.com",
			fake:       &fakeAvailabilityService{user: availability},
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing email",
			url:          "/availability/mentor?from=2025-06-02T00:00:00Z&to=2025-06-09T00:00:00Z",
			fake:         &fakeAvailabilityService{},
			wantStatus:   http.StatusBadRequest,
			wantBodyCode: helpers.ErrCodeBadRequest,
		},
		{
			name:         "unknown mentor",
			url:          "/availability/mentor?email=nobody@example.com",
			fake:         &fakeAvailabilityService{userErr: domain.ErrUserNotFound},
			wantStatus:   http.StatusNotFound,
			wantBodyCode: helpers.ErrCodeNotFound,
		},
		{
			name:         "service error",
			url:          "/availability/mentor?email=mentor@example.com",
			fake:         &fakeAvailabilityService{userErr: assert.AnError},
			wantStatus:   http.StatusInternalServerError,
			wantBodyCode: helpers.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAvailabilityController(testControllerLogger(), tt.fake)

			req := httptest.NewRequest(http.MethodGet, "http://test"+tt.url, nil)
			rr := httptest.NewRecorder()

			ctrl.GetUserAvailability(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			var envelope helpers.APIResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
			if tt.wantBodyCode != "" {
				require.NotNil(t, envelope.Error)
				assert.Equal(t, tt.wantBodyCode, envelope.Error.Code)
				return
			}
			require.Nil(t, envelope.Error)
		})
	}
}

func TestAvailabilityController_GetUserAvailability_DefaultWindow(t *testing.T) {
	fake := &fakeAvailabilityService{user: &domain.MentorAvailability{}}
	ctrl := NewAvailabilityController(testControllerLogger(), fake)

	before := time.Now().UTC()
	req := httptest.NewRequest(http.MethodGet, "http://test/availability/mentor?email=mentor@example.com", nil)
	rr := httptest.NewRecorder()
	ctrl.GetUserAvailability(rr, req)
	after := time.Now().UTC()

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "mentor@example.com", fake.lastEmail)
	assert.False(t, fake.lastWindow.Start.Before(before))
	assert.False(t, fake.lastWindow.Start.After(after))
	assert.Equal(t, fake.lastWindow.Start.Add(defaultUserWindow), fake.lastWindow.End)
}
