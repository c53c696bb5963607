//go:build unit

package appointment_test

import (
	"testing"

	"bookline/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveClientRef(t *testing.T) {
	clientID := uuid.New()

	t.Run("registered client only", func(t *testing.T) {
		ref, err := appointment.ResolveClientRef(&clientID, nil)
		require.NoError(t, err)

		assert.Equal(t, appointment.ClientKindRegistered, ref.Kind())
		got, ok := ref.RegisteredClientID()
		require.True(t, ok)
		assert.Equal(t, clientID, got)

		_, ok = ref.WalkIn()
		assert.False(t, ok)
	})

	t.Run("walk-in only", func(t *testing.T) {
		ref, err := appointment.ResolveClientRef(nil, &appointment.WalkInSpec{Name: "Drop In", Phone: "555-0101"})
		require.NoError(t, err)

		assert.Equal(t, appointment.ClientKindWalkIn, ref.Kind())
		walkIn, ok := ref.WalkIn()
		require.True(t, ok)
		assert.Equal(t, "Drop In", walkIn.Name())
		assert.Equal(t, "555-0101", walkIn.Phone())
	})

	t.Run("both sides set is ambiguous", func(t *testing.T) {
		_, err := appointment.ResolveClientRef(&clientID, &appointment.WalkInSpec{Name: "Drop In"})
		assert.ErrorIs(t, err, appointment.ErrClientRefAmbiguous)
	})

	t.Run("neither side set is missing", func(t *testing.T) {
		_, err := appointment.ResolveClientRef(nil, nil)
		assert.ErrorIs(t, err, appointment.ErrClientRefMissing)
	})
}

func TestNewRegisteredRef(t *testing.T) {
	t.Run("nil uuid is rejected", func(t *testing.T) {
		_, err := appointment.NewRegisteredRef(uuid.Nil)
		assert.ErrorIs(t, err, appointment.ErrClientIDRequired)
	})
}

func TestNewWalkInRef(t *testing.T) {
	t.Run("name is trimmed", func(t *testing.T) {
		ref, err := appointment.NewWalkInRef("  Drop In  ", " 555-0101 ")
		require.NoError(t, err)

		walkIn, _ := ref.WalkIn()
		assert.Equal(t, "Drop In", walkIn.Name())
		assert.Equal(t, "555-0101", walkIn.Phone())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := appointment.NewWalkInRef("   ", "555-0101")
		assert.ErrorIs(t, err, appointment.ErrWalkInNameRequired)
	})

	t.Run("phone is optional", func(t *testing.T) {
		ref, err := appointment.NewWalkInRef("Drop In", "")
		require.NoError(t, err)

		walkIn, _ := ref.WalkIn()
		assert.Empty(t, walkIn.Phone())
	})
}
