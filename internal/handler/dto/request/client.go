package request

type RegisterClientRequest struct {
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	PassportNumber string `json:"passport_number" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
}
