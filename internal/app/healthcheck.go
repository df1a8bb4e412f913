package app

import (
	"net/http"

	"github.com/cinehall/booking-api/api"
)

func (app *application) GetRoot(w http.ResponseWriter, r *http.Request) {
	resp := api.RootResponse{
		Message: "Cinema Booking API",
		Status:  "running",
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}

func (app *application) GetHealth(w http.ResponseWriter, r *http.Request) {
	status := "UP"
	systemInfo := api.SystemInfo{
		Version:     version,
		Environment: app.config.env,
	}

	resp := api.HealthcheckResponse{
		Status:     status,
		SystemInfo: systemInfo,
	}

	app.writeJSON(w, http.StatusOK, resp, nil)
}
