package appointment

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrClientRefMissing   = errors.New("appointment requires a registered client or a walk-in client")
	ErrClientRefAmbiguous = errors.New("appointment cannot reference both a registered client and a walk-in client")
	ErrWalkInNameRequired = errors.New("walk-in client name is required")
	ErrClientIDRequired   = errors.New("registered client id is required")
)

// WalkIn is an inline, non-persisted client description embedded in an appointment.
type WalkIn struct {
	name  string
	phone string
}

func NewWalkIn(name, phone string) (WalkIn, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return WalkIn{}, ErrWalkInNameRequired
	}
	return WalkIn{name: trimmed, phone: strings.TrimSpace(phone)}, nil
}

func (w WalkIn) Name() string  { return w.name }
func (w WalkIn) Phone() string { return w.phone }

// ClientRef is a tagged union: exactly one of registered client id or walk-in
// description holds. The zero value is invalid; construct through
// NewRegisteredRef, NewWalkInRef, or ResolveClientRef.
type ClientRef struct {
	kind         ClientKind
	registeredID uuid.UUID
	walkIn       WalkIn
}

func NewRegisteredRef(clientID uuid.UUID) (ClientRef, error) {
	if clientID == uuid.Nil {
		return ClientRef{}, ErrClientIDRequired
	}
	return ClientRef{kind: ClientKindRegistered, registeredID: clientID}, nil
}

func NewWalkInRef(name, phone string) (ClientRef, error) {
	walkIn, err := NewWalkIn(name, phone)
	if err != nil {
		return ClientRef{}, err
	}
	return ClientRef{kind: ClientKindWalkIn, walkIn: walkIn}, nil
}

// WalkInSpec is the raw caller-supplied walk-in description, pre-validation.
type WalkInSpec struct {
	Name  string
	Phone string
}

// ResolveClientRef enforces the exactly-one-of invariant on caller input:
// both present or both absent fail, regardless of field contents.
func ResolveClientRef(registeredClientID *uuid.UUID, walkIn *WalkInSpec) (ClientRef, error) {
	switch {
	case registeredClientID != nil && walkIn != nil:
		return ClientRef{}, ErrClientRefAmbiguous
	case registeredClientID != nil:
		return NewRegisteredRef(*registeredClientID)
	case walkIn != nil:
		return NewWalkInRef(walkIn.Name, walkIn.Phone)
	default:
		return ClientRef{}, ErrClientRefMissing
	}
}

func (r ClientRef) Kind() ClientKind {
	return r.kind
}

func (r ClientRef) IsZero() bool {
	return r.kind == ""
}

// RegisteredClientID returns the referenced client id when the ref is registered.
func (r ClientRef) RegisteredClientID() (uuid.UUID, bool) {
	if r.kind != ClientKindRegistered {
		return uuid.Nil, false
	}
	return r.registeredID, true
}

// WalkIn returns the inline client description when the ref is walk-in.
func (r ClientRef) WalkIn() (WalkIn, bool) {
	if r.kind != ClientKindWalkIn {
		return WalkIn{}, false
	}
	return r.walkIn, true
}
