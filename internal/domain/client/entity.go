package client

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("client name must not be empty")
	ErrEmptyPassport = errors.New("passport number must not be empty")
	ErrInvalidEmail  = errors.New("invalid email address")
)

// Client is immutable once registered; the allocation engine only reads its
// identity to attach to a booking.
type Client struct {
	id             uuid.UUID
	firstName      string
	lastName       string
	passportNumber string
	phone          string
	email          string
	createdAt      time.Time
}

func NewClient(firstName, lastName, passportNumber, phone, email string) (*Client, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	passportNumber = strings.TrimSpace(passportNumber)

	if firstName == "" || lastName == "" {
		return nil, ErrEmptyName
	}
	if passportNumber == "" {
		return nil, ErrEmptyPassport
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, ErrInvalidEmail
		}
	}

	return &Client{
		id:             uuid.New(),
		firstName:      firstName,
		lastName:       lastName,
		passportNumber: passportNumber,
		phone:          phone,
		email:          email,
	}, nil
}

func ReconstructClient(
	id uuid.UUID,
	firstName, lastName, passportNumber, phone, email string,
	createdAt time.Time,
) *Client {
	return &Client{
		id:             id,
		firstName:      firstName,
		lastName:       lastName,
		passportNumber: passportNumber,
		phone:          phone,
		email:          email,
		createdAt:      createdAt,
	}
}

func (c *Client) FullName() string {
	return c.firstName + " " + c.lastName
}

func (c *Client) ID() uuid.UUID          { return c.id }
func (c *Client) FirstName() string      { return c.firstName }
func (c *Client) LastName() string       { return c.lastName }
func (c *Client) PassportNumber() string { return c.passportNumber }
func (c *Client) Phone() string          { return c.phone }
func (c *Client) Email() string          { return c.email }
func (c *Client) CreatedAt() time.Time   { return c.createdAt }
