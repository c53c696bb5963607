package queries

import (
	"context"
	"sort"
	"time"

	"bookline/internal/domain/appointment"
	"bookline/internal/infra"
	"bookline/internal/pkg/clock"
	"bookline/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrUnauthorizedOwner   = errs.New("appointment belongs to another owner")
)

// Placeholder labels for dangling references: a missing client or service
// degrades the display, never the read.
const (
	ClientNotFoundLabel     = "(client not found)"
	ServiceUnavailableLabel = "(service unavailable)"
)

const DefaultListLimit = 200

// AppointmentView is the full read model for a single appointment.
type AppointmentView struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	AccessCode         string     `json:"access_code"`
	ClientKind         string     `json:"client_kind"`
	RegisteredClientID *uuid.UUID `json:"registered_client_id,omitempty"`
	ClientName         string     `json:"client_name"`
	ClientPhone        *string    `json:"client_phone,omitempty"`
	ServiceID          uuid.UUID  `json:"service_id"`
	ServiceName        string     `json:"service_name"`
	RegisteredAt       time.Time  `json:"registered_at"`
	ScheduledAt        time.Time  `json:"scheduled_at"`
	Notes              *string    `json:"notes,omitempty"`
	Status             string     `json:"status"`
	PriceMode          string     `json:"price_mode"`
	CustomPriceCents   *int64     `json:"custom_price_cents,omitempty"`
	FinalPriceCents    int64      `json:"final_price_cents"`
	Paid               bool       `json:"paid"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type AppointmentListItem struct {
	ID              uuid.UUID `json:"id"`
	AccessCode      string    `json:"access_code"`
	ClientName      string    `json:"client_name"`
	ServiceName     string    `json:"service_name"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Status          string    `json:"status"`
	FinalPriceCents int64     `json:"final_price_cents"`
	Paid            bool      `json:"paid"`
}

// ListFilter narrows an owner's listing. Window and Status filters run over
// the already-loaded in-memory collection.
type ListFilter struct {
	Window *appointment.Window
	Status *appointment.Status
	Limit  int
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID, limit int32) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentView, error)
	// GetByIDSystem skips the owner check; for internal read-after-write only.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error)
	ListToday(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error)
	ListThisWeek(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error)
	ListThisMonth(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	clock     clock.Clock
	loc       *time.Location
}

func NewAppointmentQueries(readStore AppointmentReadStore, clk clock.Clock, loc *time.Location) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
		clock:     clk,
		loc:       loc,
	}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if view.OwnerID != ownerID {
		return nil, ErrUnauthorizedOwner
	}
	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID, filter ListFilter) ([]*AppointmentListItem, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	items, err := q.readStore.FindByOwner(ctx, ownerID, int32(limit))
	if err != nil {
		return nil, err
	}

	items = FilterByWindow(items, filter.Window)
	items = FilterByStatus(items, filter.Status)
	SortBySchedule(items)
	return items, nil
}

func (q *appointmentQueriesImpl) ListToday(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error) {
	w := appointment.DayWindow(q.clock.Now(), q.loc)
	return q.ListByOwner(ctx, ownerID, ListFilter{Window: &w, Status: status})
}

func (q *appointmentQueriesImpl) ListThisWeek(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error) {
	w := appointment.WeekWindow(q.clock.Now(), q.loc)
	return q.ListByOwner(ctx, ownerID, ListFilter{Window: &w, Status: status})
}

func (q *appointmentQueriesImpl) ListThisMonth(ctx context.Context, ownerID uuid.UUID, status *appointment.Status) ([]*AppointmentListItem, error) {
	w := appointment.MonthWindow(q.clock.Now(), q.loc)
	return q.ListByOwner(ctx, ownerID, ListFilter{Window: &w, Status: status})
}

// FilterByWindow keeps items whose scheduled time falls inside w, inclusive.
// A nil window keeps everything.
func FilterByWindow(items []*AppointmentListItem, w *appointment.Window) []*AppointmentListItem {
	if w == nil {
		return items
	}
	filtered := make([]*AppointmentListItem, 0, len(items))
	for _, item := range items {
		if w.Contains(item.ScheduledAt) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// FilterByStatus keeps exact status matches; composable with window filters.
func FilterByStatus(items []*AppointmentListItem, status *appointment.Status) []*AppointmentListItem {
	if status == nil {
		return items
	}
	filtered := make([]*AppointmentListItem, 0, len(items))
	for _, item := range items {
		if item.Status == status.String() {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// SortBySchedule orders ascending by scheduled time.
func SortBySchedule(items []*AppointmentListItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScheduledAt.Before(items[j].ScheduledAt)
	})
}
