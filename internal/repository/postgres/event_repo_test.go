package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventregistry/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "nombre", "categoria", "lugar", "direccion", "fecha_inicio", "fecha_fin", "forma", "usuario_email"}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(8 * time.Hour)

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  int64
		wantErr bool
	}{
		{
			name:  "success",
			event: domain.NewEvent("GopherCon", domain.CategoryConference, "Centro Norte", "Calle 1", start, end, domain.ModalityInPerson, "a@x.com"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email\)`).
					WithArgs("GopherCon", "CONFERENCE", "Centro Norte", "Calle 1", start, end, "IN_PERSON", "a@x.com").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
			},
			wantID:  42,
			wantErr: false,
		},
		{
			name:  "db error",
			event: domain.NewEvent("X", domain.CategorySeminar, "V", "D", start, end, domain.ModalityVirtual, "a@x.com"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name       string
		id         int64
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.Event
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(eventCols).
						AddRow(int64(1), "Curso Go", "COURSE", "Aula 3", "Av. Sur 10", start, end, "VIRTUAL", "a@x.com"))
			},
			want: &domain.Event{
				ID: 1, Name: "Curso Go", Category: domain.CategoryCourse, Venue: "Aula 3",
				Address: "Av. Sur 10", StartTime: start, EndTime: end,
				Modality: domain.ModalityVirtual, OwnerEmail: "a@x.com",
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email`).
					WithArgs(int64(99)).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListByOwner(t *testing.T) {
	ctx := context.Background()
	t1 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	// The regexp pins the sort clause: most recent fecha_inicio first.
	const listQuery = `SELECT id, nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email\s+FROM events\s+WHERE usuario_email = \$1\s+ORDER BY fecha_inicio DESC, id ASC`

	t.Run("success ordered most recent first", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		rows := sqlmock.NewRows(eventCols).
			AddRow(int64(3), "C", "COURSE", "V3", "D3", t3, t3, "VIRTUAL", "a@x.com").
			AddRow(int64(2), "B", "SEMINAR", "V2", "D2", t2, t2, "VIRTUAL", "a@x.com").
			AddRow(int64(1), "A", "CONFERENCE", "V1", "D1", t1, t1, "IN_PERSON", "a@x.com")
		mock.ExpectQuery(listQuery).
			WithArgs("a@x.com").
			WillReturnRows(rows)

		repo := NewEventRepository(db)
		got, err := repo.ListByOwner(ctx, "a@x.com")
		require.NoError(t, err)
		require.Len(t, got, 3)
		require.Equal(t, int64(3), got[0].ID)
		require.Equal(t, int64(2), got[1].ID)
		require.Equal(t, int64(1), got[2].ID)
		require.True(t, got[0].StartTime.After(got[1].StartTime))
		require.True(t, got[1].StartTime.After(got[2].StartTime))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(listQuery).
			WithArgs("nobody@x.com").
			WillReturnRows(sqlmock.NewRows(eventCols))

		repo := NewEventRepository(db)
		got, err := repo.ListByOwner(ctx, "nobody@x.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	venue := "Sala B"

	t.Run("patch single field", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET lugar = \$1`).
			WithArgs("Sala B", int64(1)).
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow(int64(1), "Curso Go", "COURSE", "Sala B", "Av. Sur 10", start, end, "VIRTUAL", "a@x.com"))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, 1, domain.EventPatch{Venue: &venue})
		require.NoError(t, err)
		require.Equal(t, "Sala B", got.Venue)
		require.Equal(t, "Curso Go", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty patch fetches current row", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, nombre, categoria, lugar, direccion, fecha_inicio, fecha_fin, forma, usuario_email`).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(eventCols).
				AddRow(int64(1), "Curso Go", "COURSE", "Aula 3", "Av. Sur 10", start, end, "VIRTUAL", "a@x.com"))

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, 1, domain.EventPatch{})
		require.NoError(t, err)
		require.Equal(t, "Aula 3", got.Venue)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE events SET lugar = \$1`).
			WithArgs("Sala B", int64(9)).
			WillReturnError(sql.ErrNoRows)

		repo := NewEventRepository(db)
		got, err := repo.Update(ctx, 9, domain.EventPatch{Venue: &venue})
		require.Nil(t, got)
		require.True(t, errors.Is(err, domain.ErrNotFound))
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         int64
		mock       func(mock sqlmock.Sqlmock)
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(99)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name: "db error",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs(int64(1)).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
