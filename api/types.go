// Package api defines the JSON request and response types exposed by the
// booking service.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type SeatStatus string

const (
	Available SeatStatus = "available"
	Held      SeatStatus = "held"
	Booked    SeatStatus = "booked"
)

type SeatCategory string

const (
	Standard SeatCategory = "standard"
	VIP      SeatCategory = "vip"
)

// Seat exposes only what any caller may see about a seat. Who holds a seat,
// or under which name it was booked, is never revealed; HeldByMe flags the
// caller's own holds.
type Seat struct {
	Id       string          `json:"id"`
	Row      int             `json:"row"`
	Column   int             `json:"column"`
	Category SeatCategory    `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Status   SeatStatus      `json:"status"`
	HeldByMe bool            `json:"heldByMe"`
}

type SeatRow struct {
	Row   int    `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	Rows     int       `json:"rows"`
	Columns  int       `json:"columns"`
	SeatRows []SeatRow `json:"seatRows"`
}

type HoldResponse struct {
	SeatId        string    `json:"seatId"`
	HoldExpiresAt time.Time `json:"holdExpiresAt"`
}

type CreateBookingRequest struct {
	SeatIds []string `json:"seatIds" validate:"required,dive,required"`
	Name    string   `json:"name" validate:"required,min=2,max=70,patron_name"`
}

type BookedSeat struct {
	Id       string          `json:"id"`
	Row      int             `json:"row"`
	Column   int             `json:"column"`
	Category SeatCategory    `json:"category"`
	Price    decimal.Decimal `json:"price"`
}

type BookingResponse struct {
	Reference  string          `json:"reference"`
	Name       string          `json:"name"`
	Seats      []BookedSeat    `json:"seats"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
	CreatedAt  time.Time       `json:"createdAt"`
}

type RootResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	RequestId        string            `json:"requestId"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors"`
}
