package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/cinehall/booking-api/api"
	"github.com/cinehall/booking-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

func (app *application) HoldSeat(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	seatID := domain.SeatID(chi.URLParam(r, "seatID"))
	if _, _, err := domain.ParseSeatID(seatID); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("seat id must look like \"<row>-<col>\""))
		return
	}

	userID := app.currentUserID(r)

	seat, err := app.ledger.Hold(r.Context(), seatID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, domain.ErrSeatUnavailable):
			logger.Warn("hold rejected", "seat_id", seatID, "reason", err.Error())
			app.editConflictResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	resp := api.HoldResponse{
		SeatId:        string(seat.ID),
		HoldExpiresAt: seat.HoldExpiresAt,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) ReleaseSeat(w http.ResponseWriter, r *http.Request) {
	seatID := domain.SeatID(chi.URLParam(r, "seatID"))
	if _, _, err := domain.ParseSeatID(seatID); err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("seat id must look like \"<row>-<col>\""))
		return
	}

	userID := app.currentUserID(r)

	err := app.ledger.Release(r.Context(), seatID, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSeatNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
