package repository_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saddleworks-backend/internal/models"
	"saddleworks-backend/internal/repository"
)

func TestMemoryInsert_AssignsSequentialIDs(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()

	for want := 1; want <= 3; want++ {
		order, err := repo.Insert(&models.Order{CustomerName: "Alice"})
		require.NoError(t, err)
		assert.Equal(t, want, order.ID)
	}
}

func TestMemoryInsert_ContinuesAfterSeed(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(repository.DemoOrders()...)

	order, err := repo.Insert(&models.Order{CustomerName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, 2, order.ID)
}

func TestMemoryFindByID(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(repository.DemoOrders()...)

	order, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Johnson", order.CustomerName)

	_, err = repo.FindByID(42)
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestMemoryFindByID_ReturnsCopy(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(repository.DemoOrders()...)

	order, err := repo.FindByID(1)
	require.NoError(t, err)
	order.Status = "scribbled over"
	order.Notes[0].Text = "scribbled over"

	fresh, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, fresh.Status)
	assert.Equal(t, "Initial measurements received and analyzed", fresh.Notes[0].Text)
}

func TestMemoryUpdate(t *testing.T) {
	repo := repository.NewMemoryOrderRepository(repository.DemoOrders()...)

	order, err := repo.FindByID(1)
	require.NoError(t, err)
	order.Status = models.StatusCompleted
	order.Progress = 100
	require.NoError(t, repo.Update(order))

	stored, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, stored.Status)
	assert.Equal(t, 100, stored.Progress)
}

func TestMemoryUpdate_UnknownID(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()

	err := repo.Update(&models.Order{ID: 7})
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

func TestMemoryListAll_CreationOrder(t *testing.T) {
	repo := repository.NewMemoryOrderRepository()

	for _, name := range []string{"first", "second", "third"} {
		_, err := repo.Insert(&models.Order{CustomerName: name})
		require.NoError(t, err)
	}

	orders, err := repo.ListAll()
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "first", orders[0].CustomerName)
	assert.Equal(t, "third", orders[2].CustomerName)
}
