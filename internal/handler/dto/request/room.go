package request

type CreateRoomRequest struct {
	Number           string `json:"number" binding:"required"`
	RoomType         string `json:"room_type" binding:"required"`
	NightlyRateCents int64  `json:"nightly_rate_cents" binding:"required"`
	Capacity         int    `json:"capacity" binding:"required"`
	Description      string `json:"description"`
}

type AvailabilityQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}
