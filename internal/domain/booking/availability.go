package booking

import (
	"stayledger/internal/domain/room"

	"github.com/google/uuid"
)

// AvailableRooms filters rooms down to those free over stay: the room must be
// lettable (not withdrawn) and no Confirmed booking on it may overlap the
// requested range. Pure query over the supplied snapshot; availability is
// always derived from the booking set, never read from a stored flag.
func AvailableRooms(rooms []*room.Room, confirmed []*Booking, stay StayRange) []*room.Room {
	byRoom := make(map[uuid.UUID][]*Booking, len(confirmed))
	for _, b := range confirmed {
		if b.IsConfirmed() {
			byRoom[b.RoomID()] = append(byRoom[b.RoomID()], b)
		}
	}

	available := make([]*room.Room, 0, len(rooms))
	for _, r := range rooms {
		if !r.Lettable() {
			continue
		}
		if rangeIsFree(byRoom[r.ID()], stay) {
			available = append(available, r)
		}
	}
	return available
}

// RoomIsFree reports whether stay collides with none of the room's Confirmed
// bookings. Bookings for other rooms or in a terminal status are ignored.
func RoomIsFree(roomID uuid.UUID, confirmed []*Booking, stay StayRange) bool {
	for _, b := range confirmed {
		if b.RoomID() != roomID || !b.IsConfirmed() {
			continue
		}
		if b.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}

func rangeIsFree(bookings []*Booking, stay StayRange) bool {
	for _, b := range bookings {
		if b.Stay().Overlaps(stay) {
			return false
		}
	}
	return true
}
