package domain_test

import (
	"errors"
	"testing"

	"hotelbook/internal/domain"
)

func TestTransition_Table(t *testing.T) {
	cases := []struct {
		name   string
		from   domain.BookingStatus
		to     domain.BookingStatus
		effect domain.RoomEffect
		err    error
	}{
		{"confirmed to cancelled releases", domain.StatusConfirmed, domain.StatusCancelled, domain.RoomRelease, nil},
		{"confirmed to completed releases", domain.StatusConfirmed, domain.StatusCompleted, domain.RoomRelease, nil},
		{"completed to cancelled keeps", domain.StatusCompleted, domain.StatusCancelled, domain.RoomKeep, nil},
		{"cancelled to confirmed acquires", domain.StatusCancelled, domain.StatusConfirmed, domain.RoomAcquire, nil},
		{"completed to confirmed acquires", domain.StatusCompleted, domain.StatusConfirmed, domain.RoomAcquire, nil},
		{"cancelled to completed rejected", domain.StatusCancelled, domain.StatusCompleted, domain.RoomKeep, domain.ErrInvalidTransition},
		{"same status rejected", domain.StatusConfirmed, domain.StatusConfirmed, domain.RoomKeep, domain.ErrInvalidTransition},
		{"unknown status rejected", domain.StatusConfirmed, domain.BookingStatus("paused"), domain.RoomKeep, domain.ErrInvalidStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effect, err := tc.from.Transition(tc.to)
			if !errors.Is(err, tc.err) && err != tc.err {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
			if effect != tc.effect {
				t.Fatalf("effect = %v, want %v", effect, tc.effect)
			}
		})
	}
}

func TestNights(t *testing.T) {
	nb := domain.NewBooking{CheckInDate: "2025-06-01", CheckOutDate: "2025-06-04"}
	n, err := nb.Nights()
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if n != 3 {
		t.Fatalf("nights = %d, want 3", n)
	}
}

func TestNights_Invalid(t *testing.T) {
	cases := []struct {
		name, in, out string
		err           error
	}{
		{"checkout equals checkin", "2025-06-01", "2025-06-01", domain.ErrInvalidDateRange},
		{"checkout before checkin", "2025-06-04", "2025-06-01", domain.ErrInvalidDateRange},
		{"garbage checkin", "tomorrow", "2025-06-04", domain.ErrInvalidDateFormat},
		{"garbage checkout", "2025-06-01", "soon", domain.ErrInvalidDateFormat},
		{"us-style checkin", "06/01/2025", "2025-06-04", domain.ErrInvalidDateFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nb := domain.NewBooking{CheckInDate: tc.in, CheckOutDate: tc.out}
			if _, err := nb.Nights(); !errors.Is(err, tc.err) {
				t.Fatalf("err = %v, want %v", err, tc.err)
			}
		})
	}
}
