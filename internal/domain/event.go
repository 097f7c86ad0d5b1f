package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Category is the kind of event. Only the listed labels are valid; anything
// else is rejected at the serialization boundary and never persisted.
type Category string

const (
	CategoryConference Category = "CONFERENCE"
	CategorySeminar    Category = "SEMINAR"
	CategoryCongress   Category = "CONGRESS"
	CategoryCourse     Category = "COURSE"
)

var categories = map[Category]struct{}{
	CategoryConference: {},
	CategorySeminar:    {},
	CategoryCongress:   {},
	CategoryCourse:     {},
}

// ParseCategory maps a wire label to a Category, or fails on unknown labels.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := categories[c]; !ok {
		return "", fmt.Errorf("invalid categoria %q", s)
	}
	return c, nil
}

// UnmarshalJSON rejects any label outside the canonical set.
func (c *Category) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Modality is how an event is held. Same strictness as Category.
type Modality string

const (
	ModalityInPerson Modality = "IN_PERSON"
	ModalityVirtual  Modality = "VIRTUAL"
)

var modalities = map[Modality]struct{}{
	ModalityInPerson: {},
	ModalityVirtual:  {},
}

// ParseModality maps a wire label to a Modality, or fails on unknown labels.
func ParseModality(s string) (Modality, error) {
	m := Modality(s)
	if _, ok := modalities[m]; !ok {
		return "", fmt.Errorf("invalid forma %q", s)
	}
	return m, nil
}

// UnmarshalJSON rejects any label outside the canonical set.
func (m *Modality) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseModality(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Event is a user-owned scheduled activity. The Spanish json tags are the
// external wire contract and must not change. OwnerEmail is set from the
// authenticated caller on create and is immutable afterwards.
// swagger:model Event
type Event struct {
	ID         int64     `json:"id"`
	Name       string    `json:"nombre"`
	Category   Category  `json:"categoria"`
	Venue      string    `json:"lugar"`
	Address    string    `json:"direccion"`
	StartTime  time.Time `json:"fechaInicio"`
	EndTime    time.Time `json:"fechaFin"`
	Modality   Modality  `json:"forma"`
	OwnerEmail string    `json:"usuario_email"`
}

// NewEvent returns a new Event with the given fields. ID is set by the
// repository on create.
func NewEvent(name string, category Category, venue, address string, startTime, endTime time.Time, modality Modality, ownerEmail string) *Event {
	return &Event{
		Name:       name,
		Category:   category,
		Venue:      venue,
		Address:    address,
		StartTime:  startTime,
		EndTime:    endTime,
		Modality:   modality,
		OwnerEmail: ownerEmail,
	}
}

// EventPatch carries a merge patch: nil fields are left unchanged. There is
// deliberately no owner field.
type EventPatch struct {
	Name      *string
	Category  *Category
	Venue     *string
	Address   *string
	StartTime *time.Time
	EndTime   *time.Time
	Modality  *Modality
}

// IsEmpty reports whether the patch changes nothing.
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil && p.Category == nil && p.Venue == nil &&
		p.Address == nil && p.StartTime == nil && p.EndTime == nil && p.Modality == nil
}

// EventRepository defines the interface for event storage.
// GetByID, Update, and Delete return ErrNotFound for unknown ids.
// ListByOwner orders by start time descending, id ascending on ties.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]*Event, error)
	Update(ctx context.Context, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id int64) error
}

// EventService defines the owner-scoped event operations. Every method takes
// the authenticated caller's email; Get, Update, and Delete return
// ErrForbidden when the event belongs to someone else.
type EventService interface {
	ListOwned(ctx context.Context, ownerEmail string) ([]*Event, error)
	Create(ctx context.Context, event *Event) error
	Get(ctx context.Context, ownerEmail string, id int64) (*Event, error)
	Update(ctx context.Context, ownerEmail string, id int64, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, ownerEmail string, id int64) error
}
