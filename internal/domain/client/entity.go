package client

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNameRequired  = errors.New("client name is required")
	ErrOwnerRequired = errors.New("client owner id is required")
	ErrInvalidType   = errors.New("invalid client type")
	ErrInvalidStatus = errors.New("invalid client status")
)

type Type string

const (
	TypeRegular Type = "regular"
	TypeWalkIn  Type = "walk_in"
)

func (t Type) IsValid() bool {
	return t == TypeRegular || t == TypeWalkIn
}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Client is a person on a professional's roster. Appointment history is not
// owned here; it is derived by querying appointments that reference the id.
type Client struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	clientType Type
	name       string
	email      string
	phone      string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewClient(ownerID uuid.UUID, clientType Type, name, email, phone string) (*Client, error) {
	if ownerID == uuid.Nil {
		return nil, ErrOwnerRequired
	}
	if !clientType.IsValid() {
		return nil, ErrInvalidType
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	return &Client{
		id:         uuid.New(),
		ownerID:    ownerID,
		clientType: clientType,
		name:       trimmed,
		email:      strings.TrimSpace(email),
		phone:      strings.TrimSpace(phone),
		status:     StatusActive,
	}, nil
}

func Reconstruct(
	id, ownerID uuid.UUID,
	clientType Type,
	name, email, phone string,
	status Status,
	createdAt, updatedAt time.Time,
) *Client {
	return &Client{
		id:         id,
		ownerID:    ownerID,
		clientType: clientType,
		name:       name,
		email:      email,
		phone:      phone,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (c *Client) Rename(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	c.name = trimmed
	return nil
}

func (c *Client) UpdateContact(email, phone string) {
	c.email = strings.TrimSpace(email)
	c.phone = strings.TrimSpace(phone)
}

func (c *Client) ChangeStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	c.status = status
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Client) Type() Type           { return c.clientType }
func (c *Client) Name() string         { return c.name }
func (c *Client) Email() string        { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) Status() Status       { return c.status }
func (c *Client) IsActive() bool       { return c.status == StatusActive }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
