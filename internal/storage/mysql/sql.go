package mysql

const insertHotelSQL = `
INSERT INTO hotels (name, address, city, country, rating)
VALUES (?, ?, ?, ?, ?)
`

const getHotelSQL = `
SELECT id, name, address, city, country, rating, created_at, updated_at
FROM hotels WHERE id = ?
`

const listHotelsSQL = `
SELECT id, name, address, city, country, rating, created_at, updated_at
FROM hotels ORDER BY id
`

const deleteHotelSQL = `DELETE FROM hotels WHERE id = ?`

const insertUserSQL = `
INSERT INTO users (first_name, last_name, email, phone)
VALUES (?, ?, ?, ?)
`

const getUserSQL = `
SELECT id, first_name, last_name, email, phone, created_at, updated_at
FROM users WHERE id = ?
`

const getUserByEmailSQL = `
SELECT id, first_name, last_name, email, phone, created_at, updated_at
FROM users WHERE email = ?
`

const listUsersSQL = `
SELECT id, first_name, last_name, email, phone, created_at, updated_at
FROM users ORDER BY id
`

const deleteUserSQL = `DELETE FROM users WHERE id = ?`

const insertRoomSQL = `
INSERT INTO rooms (hotel_id, room_number, room_type, price_per_night, is_available)
VALUES (?, ?, ?, ?, ?)
`

const roomColumns = `id, hotel_id, room_number, room_type, price_per_night, is_available, created_at, updated_at`

const getRoomSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE id = ?`

const listRoomsSQL = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

const listRoomsByHotelSQL = `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = ? ORDER BY id`

const listAvailableRoomsByHotelSQL = `
SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = ? AND is_available = 1 ORDER BY id
`

const setRoomAvailabilitySQL = `
UPDATE rooms SET is_available = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

// holdRoomSQL flips a room unavailable only if it still is available.
// Zero affected rows means the room is gone or already held.
const holdRoomSQL = `
UPDATE rooms SET is_available = 0, updated_at = CURRENT_TIMESTAMP
WHERE id = ? AND is_available = 1
`

const releaseRoomSQL = `
UPDATE rooms SET is_available = 1, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

const deleteRoomSQL = `DELETE FROM rooms WHERE id = ?`

const insertBookingSQL = `
INSERT INTO bookings (user_id, room_id, check_in_date, check_out_date, total_price, status)
VALUES (?, ?, ?, ?, ?, ?)
`

const bookingColumns = `id, user_id, room_id, check_in_date, check_out_date, total_price, status, created_at, updated_at`

const getBookingSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ?`

const getBookingForUpdateSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = ? FOR UPDATE`

const listBookingsSQL = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id`

const listBookingsByUserSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = ? ORDER BY id`

const listBookingsByRoomSQL = `SELECT ` + bookingColumns + ` FROM bookings WHERE room_id = ? ORDER BY id`

const setBookingStatusSQL = `
UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

const deleteBookingSQL = `DELETE FROM bookings WHERE id = ?`
