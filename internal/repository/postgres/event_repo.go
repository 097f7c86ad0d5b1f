package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventregistry/internal/domain"
)

const eventColumns = "id, nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(&e.ID, &e.Name, &e.Category, &e.Venue, &e.Address, &e.StartTime, &e.EndTime, &e.Modality, &e.OwnerEmail)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Name, string(e.Category), e.Venue, e.Address, e.StartTime, e.EndTime, string(e.Modality), e.OwnerEmail,
	).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE usuario_email = $1
		ORDER BY fecha_inicio DESC, id ASC
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// Update applies a merge patch: only non-nil patch fields are written. The
// owner column is never part of the SET clause.
func (r *eventRepository) Update(ctx context.Context, id int64, patch domain.EventPatch) (*domain.Event, error) {
	if patch.IsEmpty() {
		// Nothing to write; just fetch the current row
		return r.GetByID(ctx, id)
	}
	setClauses := []string{}
	args := []interface{}{}
	n := 1
	add := func(column string, value interface{}) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if patch.Name != nil {
		add("nombre", *patch.Name)
	}
	if patch.Category != nil {
		add("categoria", string(*patch.Category))
	}
	if patch.Venue != nil {
		add("lugar", *patch.Venue)
	}
	if patch.Address != nil {
		add("direccion", *patch.Address)
	}
	if patch.StartTime != nil {
		add("fecha_inicio", *patch.StartTime)
	}
	if patch.EndTime != nil {
		add("fecha_fin", *patch.EndTime)
	}
	if patch.Modality != nil {
		add("forma", string(*patch.Modality))
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
