package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"hotelbook/internal/app"
	"hotelbook/internal/domain"
)

type Handlers struct {
	Hotels   *app.HotelService
	Users    *app.UserService
	Rooms    *app.RoomService
	Bookings *app.BookingService

	validate *validator.Validate
}

func NewHandlers(h *app.HotelService, u *app.UserService, r *app.RoomService, b *app.BookingService) *Handlers {
	return &Handlers{Hotels: h, Users: u, Rooms: r, Bookings: b, validate: validator.New()}
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/", h.index)
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.mux.Route("/hotels", func(r chi.Router) {
		r.Post("/", h.createHotel)
		r.Get("/", h.listHotels)
		r.Get("/{id}", h.getHotel)
		r.Put("/{id}", h.updateHotel)
		r.Delete("/{id}", h.deleteHotel)
	})

	s.mux.Route("/users", func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	s.mux.Route("/rooms", func(r chi.Router) {
		r.Post("/", h.createRoom)
		r.Get("/", h.listRooms)
		r.Get("/hotel/{hotelID}", h.listRoomsByHotel)
		r.Get("/hotel/{hotelID}/available", h.listAvailableRooms)
		r.Get("/{id}", h.getRoom)
		r.Put("/{id}", h.updateRoom)
		r.Patch("/{id}/availability", h.setRoomAvailability)
		r.Delete("/{id}", h.deleteRoom)
	})

	s.mux.Route("/bookings", func(r chi.Router) {
		r.Post("/", h.createBooking)
		r.Get("/", h.listBookings)
		r.Get("/user/{userID}", h.listBookingsByUser)
		r.Get("/{id}", h.getBooking)
		r.Patch("/{id}/status", h.setBookingStatus)
		r.Patch("/{id}/cancel", h.cancelBooking)
		r.Delete("/{id}", h.deleteBooking)
	})
}

func (h *Handlers) index(w http.ResponseWriter, r *http.Request) {
	writeData(w, http.StatusOK, map[string]any{
		"name":    "hotelbook",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"hotels":   "/hotels",
			"users":    "/users",
			"rooms":    "/rooms",
			"bookings": "/bookings",
		},
	}, "")
}

// ---- response envelope ----

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeData(w http.ResponseWriter, status int, data any, msg string) {
	writeJSON(w, status, envelope{Success: true, Data: data, Message: msg})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// fail maps domain errors to status codes; anything unrecognized is a 500
// with a generic message and a logged cause.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyCancelled):
		writeError(w, http.StatusNotFound, "booking not found or already cancelled")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrRoomUnavailable):
		writeError(w, http.StatusBadRequest, "room is not available")
	case errors.Is(err, domain.ErrInvalidDateFormat):
		writeError(w, http.StatusBadRequest, "invalid date format")
	case errors.Is(err, domain.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, "check-out date must be after check-in date")
	case errors.Is(err, domain.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, "invalid status value")
	case errors.Is(err, domain.ErrInvalidTransition):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// ---- request helpers ----

func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	return id, err == nil && id > 0
}

// decode unmarshals the body into dst and runs struct validation.
// Reports its own 400s; callers just bail out on false.
func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "missing or invalid required fields")
		return false
	}
	return true
}
