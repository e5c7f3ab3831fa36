package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/model"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/queue"
	"github.com/BrianKhong-BK/vercel-fsaAPI/internal/repository"
)

// BookingStore is the slice of the store the booking endpoints need.
// *repository.BookingRepo implements it.  Create and Update must be atomic
// with respect to concurrent writes for the same screening seat.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.Booking, []model.BookedMovie, error)
	Update(ctx context.Context, id uint64, b *model.Booking) error
	Delete(ctx context.Context, id uint64) error
	ListBookedSeats(ctx context.Context, movieName, date, timeSlot string) ([]model.BookedSeat, error)
}

// EventPublisher delivers booking lifecycle events to the broker.  A nil
// publisher disables events; publish failures never fail the request.
type EventPublisher interface {
	BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// BookingHandler serves the booking CRUD endpoints and the taken-seat
// listing.  All mutations are durable before the response is written.
type BookingHandler struct {
	Bookings BookingStore
	Events   EventPublisher
}

func NewBookingHandler(bookings BookingStore, events EventPublisher) *BookingHandler {
	return &BookingHandler{Bookings: bookings, Events: events}
}

type bookingReq struct {
	Email     string `json:"email"`
	Seat      string `json:"seat"`
	MovieName string `json:"movieName"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	UserID    uint64 `json:"userId"`
}

func (r *bookingReq) validate() string {
	switch {
	case r.Seat == "":
		return "seat is required"
	case r.MovieName == "":
		return "movieName is required"
	case r.Date == "":
		return "date is required"
	case r.Time == "":
		return "time is required"
	}
	return ""
}

// CreateBooking handles POST /bookings.  The seat-conflict check and the
// insert are one atomic store operation: when two requests race for the same
// seat exactly one wins and the other receives 409.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := model.Booking{
		Email:     req.Email,
		Seat:      req.Seat,
		MovieName: req.MovieName,
		Date:      req.Date,
		Time:      req.Time,
		UserID:    req.UserID,
	}
	if err := h.Bookings.Create(ctx, &b); err != nil {
		if err == repository.ErrSeatTaken {
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked"})
		}
		c.Logger().Errorf("create booking: %v", err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}

	if h.Events != nil {
		// Fire-and-forget: the booking is already durable.
		if err := h.Events.BookingCreated(c.Request().Context(), queue.NewBookingCreatedEvent(b)); err != nil {
			c.Logger().Warnf("publish booking.created: %v", err)
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// GetBooking handles GET /bookings/:bookingId.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No booking found"})
		}
		c.Logger().Errorf("get booking %d: %v", id, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, b)
}

// GetUserBookings handles GET /bookings/user/:userId.  Bookings come back
// ordered by date together with the distinct movies they reference.
func (h *BookingHandler) GetUserBookings(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	bookings, movies, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		c.Logger().Errorf("list bookings for user %d: %v", userID, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"bookings": bookings, "movies": movies})
}

// UpdateBooking handles PUT /bookings/:bookingId.  Reassigning the booking
// to a taken seat fails with the same conflict semantics as create.
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := model.Booking{
		Email:     req.Email,
		Seat:      req.Seat,
		MovieName: req.MovieName,
		Date:      req.Date,
		Time:      req.Time,
		UserID:    req.UserID,
	}
	if err := h.Bookings.Update(ctx, id, &b); err != nil {
		switch {
		case err == sql.ErrNoRows:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No booking found"})
		case err == repository.ErrSeatTaken:
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already booked"})
		}
		c.Logger().Errorf("update booking %d: %v", id, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, b)
}

// DeleteBooking handles DELETE /bookings/:bookingId.
func (h *BookingHandler) DeleteBooking(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Bookings.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "No booking found"})
		}
		c.Logger().Errorf("delete booking %d: %v", id, err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Booking deleted successfully"})
}

// GetBookedSeats handles POST /bookseats and lists the seats already taken
// for one screening; clients derive availability from the complement.
func (h *BookingHandler) GetBookedSeats(c echo.Context) error {
	var req struct {
		MovieName string `json:"movieName"`
		Date      string `json:"date"`
		Time      string `json:"time"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.MovieName == "" || req.Date == "" || req.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "movieName, date and time are required"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	seats, err := h.Bookings.ListBookedSeats(ctx, req.MovieName, req.Date, req.Time)
	if err != nil {
		c.Logger().Errorf("list booked seats: %v", err)
		return c.JSON(storeErrStatus(err), echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, seats)
}
