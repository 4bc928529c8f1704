package tests

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hothifafawaz/restoflow/pkg/domain/model"
	"github.com/hothifafawaz/restoflow/pkg/domain/service"
)

func setupTables(t *testing.T) (service.TableService, *mockTableRepository, *mockEventDispatcher) {
	repo := newMockTables(1, 2, 3)
	dispatcher := &mockEventDispatcher{}
	svc := service.NewTableService(repo, dispatcher)
	return svc, repo, dispatcher
}

func TestReserve(t *testing.T) {
	svc, repo, dispatcher := setupTables(t)

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, svc.Reserve(2))
		assert.Equal(t, model.TableReserved, repo.store[2].Status)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(model.ReservationPlaced)
		assert.True(t, ok)
	})

	t.Run("Reserving again is a no-op", func(t *testing.T) {
		dispatcher.Reset()
		require.NoError(t, svc.Reserve(2))
		assert.Empty(t, dispatcher.events)
	})

	t.Run("Fail on table with an open order", func(t *testing.T) {
		repo.store[1].Status = model.TableOccupied
		repo.store[1].CurrentOrderID = uuid.New()

		err := svc.Reserve(1)
		assert.ErrorIs(t, err, service.ErrTableHasOpenOrder)
	})

	t.Run("Fail on unknown table", func(t *testing.T) {
		err := svc.Reserve(42)
		assert.ErrorIs(t, err, model.ErrTableNotFound)
	})
}

func TestClearReservation(t *testing.T) {
	svc, repo, dispatcher := setupTables(t)
	require.NoError(t, svc.Reserve(3))
	dispatcher.Reset()

	require.NoError(t, svc.ClearReservation(3))
	assert.Equal(t, model.TableEmpty, repo.store[3].Status)

	require.Len(t, dispatcher.events, 1)
	_, ok := dispatcher.events[0].(model.ReservationCleared)
	assert.True(t, ok)

	t.Run("Clearing an unreserved table is a no-op", func(t *testing.T) {
		dispatcher.Reset()
		require.NoError(t, svc.ClearReservation(1))
		assert.Empty(t, dispatcher.events)
	})
}

func TestListTables(t *testing.T) {
	svc, _, _ := setupTables(t)

	tables, err := svc.ListTables()
	require.NoError(t, err)
	assert.Len(t, tables, 3)
}
