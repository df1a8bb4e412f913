package app

import (
	"net/http"

	"github.com/cinehall/booking-api/api"
	"github.com/cinehall/booking-api/internal/domain"
)

func (app *application) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seats := app.ledger.ListSeats(r.Context())
	viewerID := app.currentUserID(r)

	resp := api.SeatMapResponse{
		Rows:     app.config.venue.rows,
		Columns:  app.config.venue.cols,
		SeatRows: toSeatRows(seats, viewerID),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// toSeatRows groups the snapshot into rows for rendering. The ledger returns
// seats in row-major order, so a single pass suffices. Holder identities and
// patron names never leave the server; callers only learn which holds are
// their own.
func toSeatRows(seats []domain.Seat, viewerID string) []api.SeatRow {
	var seatRows []api.SeatRow
	currentRow := api.SeatRow{Row: seats[0].Row}

	for _, v := range seats {
		if v.Row != currentRow.Row {
			seatRows = append(seatRows, currentRow)
			currentRow = api.SeatRow{Row: v.Row}
		}

		currentRow.Seats = append(currentRow.Seats, api.Seat{
			Id:       string(v.ID),
			Row:      v.Row,
			Column:   v.Col,
			Category: api.SeatCategory(v.Category),
			Price:    v.Price,
			Status:   api.SeatStatus(v.State),
			HeldByMe: v.State == domain.SeatHeld && v.HolderID == viewerID,
		})
	}

	seatRows = append(seatRows, currentRow)

	return seatRows
}
