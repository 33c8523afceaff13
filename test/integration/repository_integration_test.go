package integration

import (
	"context"
	"testing"

	"tokoonline/internal/model"
	"tokoonline/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewUserRepository(testDB.Pool, logger)
	ctx := context.Background()

	t.Run("Create and fetch by email", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		id, err := repo.Create(ctx, &model.User{
			Name:         "Budi",
			Email:        "budi@example.com",
			PasswordHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefakef",
			Role:         "pelanggan",
			CreatedAt:    "2024-01-01 10:00:00",
		})
		require.NoError(t, err)
		assert.Positive(t, id)

		user, err := repo.GetByEmail(ctx, "budi@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, id, user.ID)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("GetByEmail returns nil for unknown email", func(t *testing.T) {
		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("GetAll omits password hashes", func(t *testing.T) {
		users, err := repo.GetAll(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, users)
		for _, u := range users {
			assert.Empty(t, u.PasswordHash)
		}
	})

	t.Run("Update and delete without existence check", func(t *testing.T) {
		// Neither call fails for an id that does not exist.
		require.NoError(t, repo.Update(ctx, 9999, "Siti", "siti@example.com", "admin"))
		require.NoError(t, repo.Delete(ctx, 9999))
	})
}

func TestProductRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewProductRepository(testDB.Pool, logger)
	ctx := context.Background()

	t.Run("Create and fetch", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		id, err := repo.Create(ctx, &model.Product{
			Name:        "Kopi Arabika",
			Description: "Biji kopi arabika 250g",
			Price:       85000,
			Stock:       40,
			CreatedAt:   "2024-01-01 08:00:00",
		})
		require.NoError(t, err)

		product, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Kopi Arabika", product.Name)
		assert.Equal(t, 85000.0, product.Price)
		assert.Equal(t, 40, product.Stock)
	})

	t.Run("GetByID returns nil for unknown id", func(t *testing.T) {
		product, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Update overwrites fields", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		ids := SeedProducts(t, testDB.Pool)

		id := ids["Kopi Arabika"]
		require.NoError(t, repo.Update(ctx, id, "Kopi Arabika", "Biji kopi arabika 250g", 90000, 35))

		product, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, 90000.0, product.Price)
		assert.Equal(t, 35, product.Stock)
	})
}

func TestOrderItemRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	repo := repository.NewOrderItemRepository(testDB.Pool, logger)
	ctx := context.Background()

	t.Run("Create, list with product join, update, delete", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)
		productIDs := SeedProducts(t, testDB.Pool)
		orderID := SeedOrder(t, testDB.Pool, 1)

		id, err := repo.Create(ctx, &model.OrderItem{
			OrderID:   orderID,
			ProductID: productIDs["Kopi Arabika"],
			Quantity:  2,
			LineTotal: 170000,
			CreatedAt: "2024-01-02 09:30:00",
		})
		require.NoError(t, err)

		items, err := repo.ListByOrder(ctx, orderID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Kopi Arabika", items[0].ProductName)
		assert.Equal(t, 85000.0, items[0].ProductPrice)
		assert.Equal(t, 170000.0, items[0].LineTotal)

		require.NoError(t, repo.UpdateQuantity(ctx, id, 3, 255000))

		item, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, 255000.0, item.LineTotal)

		require.NoError(t, repo.Delete(ctx, id))

		item, err = repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, item)
	})

	t.Run("ListAll on empty table returns no rows", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		items, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}
