package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"hotelbook/internal/app"
	"hotelbook/internal/domain"
)

// ---- fakes ----

type fakeUsers struct{ m map[int64]domain.User }

func (f *fakeUsers) Create(ctx context.Context, u domain.NewUser) (domain.User, error) {
	return domain.User{}, errors.New("not used")
}
func (f *fakeUsers) GetAll(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (f *fakeUsers) GetByID(ctx context.Context, id int64) (domain.User, error) {
	u, ok := f.m[id]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return u, nil
}
func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	for _, u := range f.m {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}
func (f *fakeUsers) Update(ctx context.Context, id int64, p domain.UserPatch) error { return nil }
func (f *fakeUsers) Delete(ctx context.Context, id int64) error                     { return nil }

type fakeRooms struct{ m map[int64]domain.Room }

func (f *fakeRooms) Create(ctx context.Context, r domain.NewRoom) (domain.Room, error) {
	return domain.Room{}, errors.New("not used")
}
func (f *fakeRooms) GetAll(ctx context.Context) ([]domain.Room, error) { return nil, nil }
func (f *fakeRooms) GetByID(ctx context.Context, id int64) (domain.Room, error) {
	r, ok := f.m[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}
func (f *fakeRooms) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return nil, nil
}
func (f *fakeRooms) ListAvailableByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	return nil, nil
}
func (f *fakeRooms) Update(ctx context.Context, id int64, p domain.RoomPatch) error { return nil }
func (f *fakeRooms) SetAvailability(ctx context.Context, id int64, available bool) error {
	r, ok := f.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.IsAvailable = available
	f.m[id] = r
	return nil
}
func (f *fakeRooms) Delete(ctx context.Context, id int64) error { return nil }

// fakeBookings mirrors the storage contract: availability flips happen
// together with the booking write, and the conditional hold loses when the
// room is already held.
type fakeBookings struct {
	m     map[int64]domain.Booking
	next  int64
	rooms *fakeRooms
}

func (f *fakeBookings) hold(roomID int64) error {
	r, ok := f.rooms.m[roomID]
	if !ok || !r.IsAvailable {
		return domain.ErrRoomUnavailable
	}
	r.IsAvailable = false
	f.rooms.m[roomID] = r
	return nil
}

func (f *fakeBookings) release(roomID int64) {
	if r, ok := f.rooms.m[roomID]; ok {
		r.IsAvailable = true
		f.rooms.m[roomID] = r
	}
}

func (f *fakeBookings) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if err := f.hold(b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	f.next++
	b.ID = f.next
	f.m[b.ID] = b
	return b, nil
}
func (f *fakeBookings) GetAll(ctx context.Context) ([]domain.Booking, error) { return nil, nil }
func (f *fakeBookings) GetByID(ctx context.Context, id int64) (domain.Booking, error) {
	b, ok := f.m[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}
func (f *fakeBookings) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) ListByRoom(ctx context.Context, roomID int64) ([]domain.Booking, error) {
	return nil, nil
}
func (f *fakeBookings) Transition(ctx context.Context, id int64, to domain.BookingStatus) (domain.Booking, error) {
	b, ok := f.m[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	effect, err := b.Status.Transition(to)
	if err != nil {
		return domain.Booking{}, err
	}
	switch effect {
	case domain.RoomRelease:
		f.release(b.RoomID)
	case domain.RoomAcquire:
		if err := f.hold(b.RoomID); err != nil {
			return domain.Booking{}, err
		}
	}
	b.Status = to
	f.m[id] = b
	return b, nil
}
func (f *fakeBookings) Delete(ctx context.Context, id int64) error {
	b, ok := f.m[id]
	if !ok {
		return domain.ErrNotFound
	}
	if b.Status == domain.StatusConfirmed {
		f.release(b.RoomID)
	}
	delete(f.m, id)
	return nil
}

type fakeCache struct{ store map[string][]byte }

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}
func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, _ := json.Marshal(v)
	c.store[key] = b
	return nil
}
func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func newFixture() (*app.BookingService, *fakeRooms, *fakeBookings) {
	users := &fakeUsers{m: map[int64]domain.User{
		1: {ID: 1, FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"},
	}}
	rooms := &fakeRooms{m: map[int64]domain.Room{
		10: {ID: 10, HotelID: 5, RoomNumber: "101", RoomType: "Deluxe", PricePerNight: 200, IsAvailable: true},
	}}
	bookings := &fakeBookings{m: map[int64]domain.Booking{}, rooms: rooms}
	return app.NewBookingService(bookings, rooms, users, &fakeCache{}), rooms, bookings
}

// ---- tests ----

func TestCreateBooking_PricesAndHoldsRoom(t *testing.T) {
	svc, rooms, _ := newFixture()

	b, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10,
		CheckInDate: "2025-06-01", CheckOutDate: "2025-06-04",
	})
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if b.TotalPrice != 600 {
		t.Fatalf("total = %v, want 600", b.TotalPrice)
	}
	if b.Status != domain.StatusConfirmed {
		t.Fatalf("status = %s, want confirmed", b.Status)
	}
	if rooms.m[10].IsAvailable {
		t.Fatal("room should be held after booking")
	}
}

func TestCreateBooking_UnknownUserAndRoom(t *testing.T) {
	svc, _, _ := newFixture()

	_, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 99, RoomID: 10, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-02",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	_, err = svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 99, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-02",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreateBooking_BadDatesWriteNothing(t *testing.T) {
	svc, rooms, bookings := newFixture()

	_, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-06-04", CheckOutDate: "2025-06-01",
	})
	if !errors.Is(err, domain.ErrInvalidDateRange) {
		t.Fatalf("err = %v, want ErrInvalidDateRange", err)
	}
	if len(bookings.m) != 0 {
		t.Fatal("no booking row should exist")
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("room must stay available")
	}

	// unparseable dates surface as a format error, not a range error
	_, err = svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "06/01/2025", CheckOutDate: "2025-06-04",
	})
	if !errors.Is(err, domain.ErrInvalidDateFormat) {
		t.Fatalf("err = %v, want ErrInvalidDateFormat", err)
	}
}

func TestCreateBooking_HeldRoomRejected(t *testing.T) {
	svc, rooms, _ := newFixture()
	r := rooms.m[10]
	r.IsAvailable = false
	rooms.m[10] = r

	_, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-02",
	})
	if !errors.Is(err, domain.ErrRoomUnavailable) {
		t.Fatalf("err = %v, want ErrRoomUnavailable", err)
	}
}

func TestCancelBooking_ReleasesRoomOnce(t *testing.T) {
	svc, rooms, _ := newFixture()
	b, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	cancelled, err := svc.Cancel(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != domain.StatusCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("room should be released after cancel")
	}

	if _, err := svc.Cancel(context.Background(), b.ID); !errors.Is(err, domain.ErrAlreadyCancelled) {
		t.Fatalf("second cancel err = %v, want ErrAlreadyCancelled", err)
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("second cancel must not touch the room")
	}
}

func TestDeleteBooking_RoomEffectDependsOnStatus(t *testing.T) {
	svc, rooms, _ := newFixture()
	b, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// deleting an active booking frees its room
	if err := svc.Delete(context.Background(), b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("room should be released after deleting an active booking")
	}

	// a cancelled booking already freed the room; deleting it is a no-op there
	b2, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-07-01", CheckOutDate: "2025-07-02",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Cancel(context.Background(), b2.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := svc.Delete(context.Background(), b2.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("room availability should be untouched")
	}
}

func TestSetStatus_DrivesTheMachine(t *testing.T) {
	svc, rooms, _ := newFixture()
	b, err := svc.Create(context.Background(), domain.NewBooking{
		UserID: 1, RoomID: 10, CheckInDate: "2025-06-01", CheckOutDate: "2025-06-03",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done, err := svc.SetStatus(context.Background(), b.ID, domain.StatusCompleted)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != domain.StatusCompleted {
		t.Fatalf("status = %s, want completed", done.Status)
	}
	if !rooms.m[10].IsAvailable {
		t.Fatal("completing a stay must release the room")
	}

	// reopening takes the room back
	if _, err := svc.SetStatus(context.Background(), b.ID, domain.StatusConfirmed); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if rooms.m[10].IsAvailable {
		t.Fatal("reopening must hold the room again")
	}

	if _, err := svc.SetStatus(context.Background(), b.ID, "paused"); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("err = %v, want ErrInvalidStatus", err)
	}
}
