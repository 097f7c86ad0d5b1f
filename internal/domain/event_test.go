package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "conference", input: `"CONFERENCE"`, want: CategoryConference},
		{name: "course", input: `"COURSE"`, want: CategoryCourse},
		{name: "unknown label", input: `"WORKSHOP"`, wantErr: true},
		{name: "lowercase rejected", input: `"conference"`, wantErr: true},
		{name: "original spanish label rejected", input: `"CONFERENCIA"`, wantErr: true},
		{name: "not a string", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Category
			err := json.Unmarshal([]byte(tt.input), &c)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestModality_UnmarshalJSON(t *testing.T) {
	var m Modality
	require.NoError(t, json.Unmarshal([]byte(`"VIRTUAL"`), &m))
	assert.Equal(t, ModalityVirtual, m)

	require.Error(t, json.Unmarshal([]byte(`"HYBRID"`), &m))
	require.Error(t, json.Unmarshal([]byte(`"PRESENCIAL"`), &m))
}

func TestEvent_WireFieldNames(t *testing.T) {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	e := NewEvent("GopherCon", CategoryConference, "Centro de Convenciones", "Av. Principal 123", start, start.Add(8*time.Hour), ModalityInPerson, "a@x.com")
	e.ID = 7

	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	for _, field := range []string{"id", "nombre", "categoria", "lugar", "direccion", "fechaInicio", "fechaFin", "forma", "usuario_email"} {
		assert.Contains(t, m, field)
	}
	assert.Equal(t, "CONFERENCE", m["categoria"])
	assert.Equal(t, "IN_PERSON", m["forma"])
}

func TestEventPatch_IsEmpty(t *testing.T) {
	assert.True(t, EventPatch{}.IsEmpty())

	venue := "Sala B"
	assert.False(t, EventPatch{Venue: &venue}.IsEmpty())
}
