package mysql

// ---------------------------------------------------------------------------
// users
// ---------------------------------------------------------------------------

const insertUserSQL = `
INSERT INTO users (full_name, email, phone_number, password_hash, date_of_birth, gender, enabled)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const selectUserCols = `
SELECT user_id, full_name, email, phone_number, password_hash, date_of_birth, gender, enabled
FROM users
`

const userByIDSQL = selectUserCols + `WHERE user_id = ?`
const userByEmailSQL = selectUserCols + `WHERE email = ?`
const userByPhoneSQL = selectUserCols + `WHERE phone_number = ?`

const enableUserSQL = `UPDATE users SET enabled = 1 WHERE user_id = ?`
const setPasswordSQL = `UPDATE users SET password_hash = ? WHERE user_id = ?`

// ---------------------------------------------------------------------------
// otps
// ---------------------------------------------------------------------------

// One row per user; INSERT ... ON DUPLICATE KEY replaces the previous code.
const replaceOtpSQL = `
INSERT INTO otps (user_id, code, expires_at)
VALUES (?, ?, ?)
ON DUPLICATE KEY UPDATE
  code       = VALUES(code),
  expires_at = VALUES(expires_at)
`

const otpByUserSQL = `SELECT otp_id, user_id, code, expires_at FROM otps WHERE user_id = ?`
const deleteOtpSQL = `DELETE FROM otps WHERE user_id = ?`

// ---------------------------------------------------------------------------
// hotels / rooms
// ---------------------------------------------------------------------------

// List page: one row per hotel with the main image pre-joined.
const listHotelsSQL = `
SELECT h.hotel_id, h.hotel_name, h.city, h.country, h.price_per_night, i.image_url
FROM hotels h
LEFT JOIN hotel_images i ON i.hotel_id = h.hotel_id AND i.is_main = 1
WHERE (? = '' OR h.city = ?)
ORDER BY h.hotel_id
LIMIT ?
`

const hotelByIDSQL = `
SELECT hotel_id, owner_id, hotel_name, address, city, country, description,
       price_per_night, created_at, updated_at
FROM hotels
WHERE hotel_id = ?
`

const imagesByHotelSQL = `
SELECT image_id, hotel_id, image_url, is_main
FROM hotel_images
WHERE hotel_id = ?
ORDER BY is_main DESC, image_id
`

const roomsByHotelSQL = `
SELECT room_id, hotel_id, room_type, price, capacity
FROM rooms
WHERE hotel_id = ?
ORDER BY room_id
`

const roomByIDSQL = `
SELECT room_id, hotel_id, room_type, price, capacity
FROM rooms
WHERE room_id = ?
`

// ---------------------------------------------------------------------------
// bookings
// ---------------------------------------------------------------------------

const insertBookingSQL = `
INSERT INTO bookings
  (user_id, room_id, check_in, check_out, total_price, status, adults_count, children_count, infants_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// Display fields come from rooms/hotels via joins; bookings keep only FK ids.
const selectBookingCols = `
SELECT b.booking_id, b.user_id, b.room_id, b.check_in, b.check_out, b.total_price,
       b.status, b.adults_count, b.children_count, b.infants_count,
       b.created_at, b.updated_at, r.room_type, h.hotel_name
FROM bookings b
JOIN rooms r  ON r.room_id  = b.room_id
JOIN hotels h ON h.hotel_id = r.hotel_id
`

const bookingByIDSQL = selectBookingCols + `WHERE b.booking_id = ?`

const bookingsByUserSQL = selectBookingCols + `
WHERE b.user_id = ?
ORDER BY b.created_at DESC, b.booking_id DESC`

const upcomingBookingsSQL = selectBookingCols + `
WHERE b.user_id = ? AND b.check_out > ?
ORDER BY b.check_in, b.booking_id`

const confirmedBookingsSQL = selectBookingCols + `
WHERE b.user_id = ? AND b.status = 'CONFIRMED'
ORDER BY b.check_in DESC, b.booking_id DESC`

const updateBookingStatusSQL = `
UPDATE bookings SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE booking_id = ?
`

// ---------------------------------------------------------------------------
// reviews
// ---------------------------------------------------------------------------

const insertReviewSQL = `
INSERT INTO reviews (user_id, room_id, rating, comment)
VALUES (?, ?, ?, ?)
`

const selectReviewCols = `
SELECT rv.review_id, rv.user_id, rv.room_id, rv.rating, rv.comment, rv.created_at, u.full_name
FROM reviews rv
JOIN users u ON u.user_id = rv.user_id
`

const reviewByIDSQL = selectReviewCols + `WHERE rv.review_id = ?`

const reviewsByRoomSQL = selectReviewCols + `
WHERE rv.room_id = ?
ORDER BY rv.created_at DESC, rv.review_id DESC`

const reviewsByUserSQL = selectReviewCols + `WHERE rv.user_id = ?`

const updateReviewSQL = `UPDATE reviews SET rating = ?, comment = ? WHERE review_id = ?`

const reviewExistsSQL = `SELECT EXISTS(SELECT 1 FROM reviews WHERE user_id = ? AND room_id = ?)`

// ---------------------------------------------------------------------------
// seed-only inserts (cmd/seeder, integration tests)
// ---------------------------------------------------------------------------

const insertHotelSQL = `
INSERT INTO hotels (owner_id, hotel_name, address, city, country, description, price_per_night)
VALUES (?, ?, ?, ?, ?, ?, ?)
`

const insertHotelImageSQL = `
INSERT INTO hotel_images (hotel_id, image_url, is_main)
VALUES (?, ?, ?)
`

const insertRoomSQL = `
INSERT INTO rooms (hotel_id, room_type, price, capacity)
VALUES (?, ?, ?, ?)
`
