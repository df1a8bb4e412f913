package app

import (
	"errors"
	"net/http"

	"github.com/cinehall/booking-api/api"
	"github.com/cinehall/booking-api/internal/domain"
)

func (app *application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	userID := app.currentUserID(r)

	seatIDs := make([]domain.SeatID, len(input.SeatIds))
	for i, id := range input.SeatIds {
		seatIDs[i] = domain.SeatID(id)
	}

	booking, err := app.ledger.CommitBooking(r.Context(), userID, seatIDs, input.Name)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptySelection):
			app.badRequestResponse(w, r, err)
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrReservationInvalid):
			logger.Warn("booking rejected", "seat_ids", input.SeatIds)
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("booking committed",
		"reference", booking.Reference,
		"seats", len(booking.Seats),
	)

	resp := toBookingResponse(booking)

	err = app.writeJSON(w, http.StatusCreated, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	seats := make([]api.BookedSeat, len(booking.Seats))

	for i, v := range booking.Seats {
		seats[i] = api.BookedSeat{
			Id:       string(v.ID),
			Row:      v.Row,
			Column:   v.Col,
			Category: api.SeatCategory(v.Category),
			Price:    v.Price,
		}
	}

	return api.BookingResponse{
		Reference:  booking.Reference,
		Name:       booking.PatronName,
		Seats:      seats,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
}
