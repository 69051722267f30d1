package orderControllers

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Aleee071/novashop-app/apperr"
	cartControllers "github.com/Aleee071/novashop-app/controllers/cart"
	"github.com/Aleee071/novashop-app/models"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Owner{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, name, ownerID string, price float64, stock int) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Stock: stock, OwnerID: ownerID}
	require.NoError(t, db.Create(&product).Error)
	return product
}

// fillCart seeds two products from different owners into user-1's cart.
func fillCart(t *testing.T, db *gorm.DB) (models.Product, models.Product) {
	t.Helper()
	first := seedProduct(t, db, "laptop", "owner-a", 1000, 10)
	second := seedProduct(t, db, "sleeve", "owner-b", 50, 10)
	_, err := cartControllers.AddItem(db, "user-1", first.ID, 1)
	require.NoError(t, err)
	_, err = cartControllers.AddItem(db, "user-1", second.ID, 2)
	require.NoError(t, err)
	return first, second
}

func TestCreateOrderSnapshotsCartAndResetsIt(t *testing.T) {
	db := setupDB(t)
	first, second := fillCart(t, db)

	order, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "123 Main St", order.ShippingAddress)
	assert.InDelta(t, 1100.00, order.TotalPrice, 0.001)
	require.Len(t, order.Items, 2)

	ownersByProduct := map[string]string{}
	for _, item := range order.Items {
		ownersByProduct[item.ProductID] = item.OwnerID
	}
	assert.Equal(t, "owner-a", ownersByProduct[first.ID])
	assert.Equal(t, "owner-b", ownersByProduct[second.ID])

	// The source cart survives but is empty, and stock stays decremented.
	cart, err := cartControllers.GetCart(db, "user-1")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)

	var product models.Product
	require.NoError(t, db.First(&product, "id = ?", first.ID).Error)
	assert.Equal(t, 9, product.Stock)
}

func TestCreateOrderCopiesTotalVerbatim(t *testing.T) {
	db := setupDB(t)
	product := seedProduct(t, db, "tablet", "owner-a", 300, 5)
	_, err := cartControllers.AddItem(db, "user-1", product.ID, 2)
	require.NoError(t, err)

	// A price change after the last cart write must not leak into checkout.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", product.ID).
		Update("price", 999).Error)

	order, err := CreateOrder(db, "user-1", "42 Harbor Rd")
	require.NoError(t, err)
	assert.InDelta(t, 600.00, order.TotalPrice, 0.001)
}

func TestCreateOrderValidation(t *testing.T) {
	db := setupDB(t)

	_, err := CreateOrder(db, "user-1", "   ")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidInput, appErr.Code)

	_, err = CreateOrder(db, "user-1", "123 Main St")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeCartNotFound, appErr.Code)

	require.NoError(t, cartControllers.EnsureCart(db, "user-1"))
	_, err = CreateOrder(db, "user-1", "123 Main St")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidInput, appErr.Code)
}

func TestCreateOrderAbortsWhenProductVanished(t *testing.T) {
	db := setupDB(t)
	first, _ := fillCart(t, db)

	require.NoError(t, db.Delete(&models.Product{}, "id = ?", first.ID).Error)

	_, err := CreateOrder(db, "user-1", "123 Main St")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeProductNotFound, appErr.Code)

	// No partial order, and the cart was left untouched by the rollback.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)

	cart, err := cartControllers.GetCart(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, cart.Items, 2)
}

func TestGetOrderByID(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	order, err := GetOrderByID(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, order.ID)

	var appErr *apperr.Error
	_, err = GetOrderByID(db, "garbage")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidInput, appErr.Code)

	_, err = GetOrderByID(db, "6f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeOrderNotFound, appErr.Code)
}

func TestGetOrdersByUser(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	_, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	orders, err := GetOrdersByUser(db, "user-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	var appErr *apperr.Error
	_, err = GetOrdersByUser(db, "user-2")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}

func TestGetOrdersByOwnerReturnsWholeOrders(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	_, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	// owner-a owns one of the two line items but sees the whole order,
	// sibling line included.
	orders, err := GetOrdersByOwner(db, "owner-a")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)

	var appErr *apperr.Error
	_, err = GetOrdersByOwner(db, "owner-z")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}

func TestUpdateOrderStatusHappyPath(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	order, err := UpdateOrderStatus(db, created.ID, "owner-a", "Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, order.Status)

	order, err = UpdateOrderStatus(db, created.ID, "owner-b", "Delivered")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
}

func TestUpdateOrderStatusCannotSkipShipped(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	var appErr *apperr.Error
	_, err = UpdateOrderStatus(db, created.ID, "owner-a", "Delivered")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidStatusTransition, appErr.Code)
}

func TestUpdateOrderStatusDeliveredIsTerminal(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	_, err = UpdateOrderStatus(db, created.ID, "owner-a", "Shipped")
	require.NoError(t, err)
	_, err = UpdateOrderStatus(db, created.ID, "owner-a", "Delivered")
	require.NoError(t, err)

	var appErr *apperr.Error
	for _, status := range []string{"Pending", "Shipped", "Delivered"} {
		_, err = UpdateOrderStatus(db, created.ID, "owner-a", status)
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.CodeInvalidStatusTransition, appErr.Code)
	}
}

func TestUpdateOrderStatusForeignOwnerSeesNotFound(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	var appErr *apperr.Error
	_, err = UpdateOrderStatus(db, created.ID, "owner-z", "Shipped")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeOrderNotFound, appErr.Code)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	var appErr *apperr.Error
	_, err = UpdateOrderStatus(db, created.ID, "owner-a", "Cancelled")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeInvalidInput, appErr.Code)
}

func TestDeleteOrderDetachesHistory(t *testing.T) {
	db := setupDB(t)
	fillCart(t, db)
	created, err := CreateOrder(db, "user-1", "123 Main St")
	require.NoError(t, err)

	deleted, err := DeleteOrder(db, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	var itemCount int64
	require.NoError(t, db.Model(&models.OrderItem{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)

	var appErr *apperr.Error
	_, err = GetOrdersByUser(db, "user-1")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperr.CodeNotFound, appErr.Code)
}
