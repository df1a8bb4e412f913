package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cinehall/booking-api/api"
	"github.com/cinehall/booking-api/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BookingsTestSuite struct {
	suite.Suite
	app *application
}

func (s *BookingsTestSuite) SetupTest() {
	s.app = newTestApplication(s.T())
}

func TestBookingsSuite(t *testing.T) {
	suite.Run(t, new(BookingsTestSuite))
}

func (s *BookingsTestSuite) createBooking(body any, token string) (*httptest.ResponseRecorder, string) {
	w, r := executeRequest(s.T(), http.MethodPost, "/bookings", body)

	if token != "" {
		r = resumeTestSession(s.T(), s.app, r, token)
	} else {
		r, token = setupTestSession(s.T(), s.app, r)
	}

	s.app.CreateBooking(w, r)

	return w, token
}

func (s *BookingsTestSuite) holdAs(token string, seatIDs ...domain.SeatID) string {
	s.T().Helper()

	if token == "" {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		_, token = setupTestSession(s.T(), s.app, r)
	}

	for _, id := range seatIDs {
		_, err := s.app.ledger.Hold(context.Background(), id, token)
		s.Require().NoError(err)
	}

	return token
}

func (s *BookingsTestSuite) TestCreateBooking() {
	tests := []struct {
		name           string
		setup          func() string // returns session token, "" for a fresh one
		body           any
		wantStatus     int
		wantErrMessage string
	}{
		{
			name: "books a held group",
			setup: func() string {
				return s.holdAs("", "1-1", "1-2", "4-1")
			},
			body: api.CreateBookingRequest{
				SeatIds: []string{"1-1", "1-2", "4-1"},
				Name:    "Alice Smith",
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:           "rejects a missing name",
			body:           api.CreateBookingRequest{SeatIds: []string{"1-1"}},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "rejects a name with digits or symbols",
			body: api.CreateBookingRequest{
				SeatIds: []string{"1-1"},
				Name:    "R2-D2!",
			},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "must contain only letters, spaces, hyphens, apostrophes, and dots",
		},
		{
			name:           "rejects an empty seat selection",
			body:           api.CreateBookingRequest{SeatIds: []string{}, Name: "Alice Smith"},
			wantStatus:     http.StatusUnprocessableEntity,
			wantErrMessage: "is required",
		},
		{
			name: "rejects unknown seats",
			body: api.CreateBookingRequest{
				SeatIds: []string{"9-9"},
				Name:    "Alice Smith",
			},
			wantStatus:     http.StatusNotFound,
			wantErrMessage: "The requested resource not found",
		},
		{
			name: "rejects seats the caller never held",
			body: api.CreateBookingRequest{
				SeatIds: []string{"1-1"},
				Name:    "Alice Smith",
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "reservation expired or invalid",
		},
		{
			name: "rejects seats held by another user",
			setup: func() string {
				s.holdAs("", "1-1")
				return "" // commit from a different, fresh session
			},
			body: api.CreateBookingRequest{
				SeatIds: []string{"1-1"},
				Name:    "Alice Smith",
			},
			wantStatus:     http.StatusConflict,
			wantErrMessage: "reservation expired or invalid",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			var token string
			if tt.setup != nil {
				token = tt.setup()
			}

			w, _ := s.createBooking(tt.body, token)

			s.Equal(tt.wantStatus, w.Code)
			checkErrorResponse(s.T(), w, tt.wantStatus, tt.wantErrMessage)
		})
	}
}

func (s *BookingsTestSuite) TestCreateBookingResponse() {
	token := s.holdAs("", "1-1", "1-2", "4-1")

	w, _ := s.createBooking(api.CreateBookingRequest{
		SeatIds: []string{"1-1", "1-2", "4-1"},
		Name:    "Alice Smith",
	}, token)

	s.Require().Equal(http.StatusCreated, w.Code)

	var resp api.BookingResponse
	s.Require().NoError(json.NewDecoder(w.Body).Decode(&resp))

	s.NotEmpty(resp.Reference)
	s.Equal("Alice Smith", resp.Name)
	s.Len(resp.Seats, 3)
	s.True(resp.TotalPrice.Equal(decimal.NewFromInt(42)), "got total %s", resp.TotalPrice) // 12 + 12 + 18

	// The whole group is booked afterwards.
	for _, seat := range s.app.ledger.ListSeats(context.Background()) {
		switch seat.ID {
		case "1-1", "1-2", "4-1":
			s.Equal(domain.SeatBooked, seat.State)
		default:
			s.Equal(domain.SeatAvailable, seat.State)
		}
	}
}

func (s *BookingsTestSuite) TestCreateBookingRejectsMalformedJSON() {
	r := httptest.NewRequest(http.MethodPost, "/bookings", bytes.NewReader([]byte(`{"seatIds": [`)))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	r, _ = setupTestSession(s.T(), s.app, r)

	s.app.CreateBooking(w, r)

	s.Equal(http.StatusBadRequest, w.Code)
}
