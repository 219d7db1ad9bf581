package response

import (
	"stayledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID               uuid.UUID `json:"id"`
	Number           string    `json:"number"`
	RoomType         string    `json:"roomType"`
	NightlyRateCents int64     `json:"nightlyRateCents"`
	Capacity         int       `json:"capacity"`
	Description      string    `json:"description,omitempty"`
	Lettable         bool      `json:"lettable"`
}

func FromRoomView(v queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:               v.ID,
		Number:           v.Number,
		RoomType:         v.RoomType,
		NightlyRateCents: v.NightlyRateCents,
		Capacity:         v.Capacity,
		Description:      v.Description,
		Lettable:         v.Lettable,
	}
}

func FromRoomViews(vs []queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(vs))
	for i, v := range vs {
		out[i] = FromRoomView(v)
	}
	return out
}
