package app

import "fmt"

// Cache keys. Only reads with a single obvious invalidation point are
// cached: the hotel entity and the available-rooms list per hotel.
func hotelKey(id int64) string { return fmt.Sprintf("hotel:%d", id) }

func availableRoomsKey(hotelID int64) string {
	return fmt.Sprintf("rooms:hotel:%d:available", hotelID)
}
