package repositories_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"shop/internal/apperrors"
	"shop/internal/database"
	"shop/internal/models"
	"shop/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (*models.Brand, []models.Product) {
	t.Helper()
	brand := &models.Brand{BrandName: "Logi", BrandDescription: "Peripherals"}
	require.NoError(t, db.Create(brand).Error)

	products := []models.Product{
		{ProductName: "Wireless Mouse", ProductPrice: decimal.RequireFromString("25.50"), QuantityStock: 10, BrandID: brand.BrandID},
		{ProductName: "Keyboard", ProductPrice: decimal.RequireFromString("75.00"), QuantityStock: 2, BrandID: brand.BrandID},
		{ProductName: "Gaming Mouse", ProductPrice: decimal.RequireFromString("120.00"), QuantityStock: 0, BrandID: brand.BrandID},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return brand, products
}

func seedUser(t *testing.T, db *gorm.DB, account, phone string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		UserName: "Test User", UserGender: models.GenderOther, UserPhone: phone,
		UserAccount: account, UserPassword: "hash", UserRole: role, UserAddress: "1 Main St",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestBrandRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewGORMBrandRepository(newTestDB(t))

	brand := &models.Brand{BrandName: "Acme"}
	require.NoError(t, repo.Create(ctx, brand))
	assert.NotZero(t, brand.BrandID)
	assert.Regexp(t, regexp.MustCompile(`^TH\d{8}$`), brand.BrandCode)

	byCode, err := repo.FindByCode(ctx, brand.BrandCode)
	require.NoError(t, err)
	assert.Equal(t, brand.BrandID, byCode.BrandID)

	brand.BrandName = "Acme Corp"
	require.NoError(t, repo.Update(ctx, brand))
	found, err := repo.FindByID(ctx, brand.BrandID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", found.BrandName)

	require.NoError(t, repo.Delete(ctx, brand.BrandID))
	_, err = repo.FindByID(ctx, brand.BrandID)
	var nf *apperrors.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, fmt.Sprintf("Brand not found with id: %d", brand.BrandID), err.Error())

	assert.ErrorAs(t, repo.Delete(ctx, 999), &nf)
}

func TestBrandRepository_FindAllEmpty(t *testing.T) {
	brands, err := repositories.NewGORMBrandRepository(newTestDB(t)).FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, brands)
	assert.Empty(t, brands)
}

func TestProductRepository_FindFilters(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	brand, _ := seedCatalog(t, db)
	repo := repositories.NewGORMProductRepository(db)

	all, total, err := repo.Find(ctx, repositories.ProductFilter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, all, 3)
	require.NotNil(t, all[0].Brand)
	assert.Equal(t, brand.BrandName, all[0].Brand.BrandName)

	mice, total, err := repo.Find(ctx, repositories.ProductFilter{Name: "MOUSE"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, mice, 2)

	minPrice := decimal.RequireFromString("50")
	maxPrice := decimal.RequireFromString("100")
	priced, _, err := repo.Find(ctx, repositories.ProductFilter{MinPrice: &minPrice, MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, priced, 1)
	assert.Equal(t, "Keyboard", priced[0].ProductName)

	page, total, err := repo.Find(ctx, repositories.ProductFilter{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, page, 1)

	none, _, err := repo.Find(ctx, repositories.ProductFilter{BrandID: brand.BrandID + 1})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProductRepository_DeleteCascadesImages(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	images := repositories.NewGORMImageRepository(db)
	repo := repositories.NewGORMProductRepository(db)

	target := products[0].ProductID
	require.NoError(t, images.Create(ctx, &models.Image{ImageName: "front", ImageURL: "https://x.io/a.png", ProductID: target}))
	require.NoError(t, images.Create(ctx, &models.Image{ImageName: "back", ImageURL: "https://x.io/b.png", ProductID: target}))
	require.NoError(t, images.Create(ctx, &models.Image{ImageName: "other", ImageURL: "https://x.io/c.png", ProductID: products[1].ProductID}))

	loaded, err := repo.FindByID(ctx, target)
	require.NoError(t, err)
	assert.Len(t, loaded.Images, 2)

	require.NoError(t, repo.Delete(ctx, target))

	left, err := images.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "other", left[0].ImageName)

	var nf *apperrors.NotFoundError
	assert.ErrorAs(t, repo.Delete(ctx, target), &nf)
}

func TestImageRepository_DeleteByProduct(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	repo := repositories.NewGORMImageRepository(db)

	for _, name := range []string{"a", "b"} {
		require.NoError(t, repo.Create(ctx, &models.Image{ImageName: name, ImageURL: "https://x.io/" + name + ".jpg", ProductID: products[2].ProductID}))
	}
	deleted, err := repo.DeleteByProduct(ctx, products[2].ProductID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	remaining, err := repo.FindByProduct(ctx, products[2].ProductID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestUserRepository_Existence(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := repositories.NewGORMUserRepository(db)
	user := seedUser(t, db, "staff01", "0901234567", models.RoleStaff)
	assert.Regexp(t, regexp.MustCompile(`^NV\d{8}$`), user.UserCode)

	exists, err := repo.ExistsByAccount(ctx, "staff01")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByPhone(ctx, "0999999999")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.FindByAccount(ctx, "ghost")
	assert.EqualError(t, err, "User not found with account: ghost")
}

func TestOrderRepository_CreateReservesStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	user := seedUser(t, db, "buyer", "0911111111", models.RoleCustomer)
	repo := repositories.NewGORMOrderRepository(db)

	order := &models.Order{
		UserID:      user.UserID,
		OrderDate:   models.Today(),
		OrderStatus: models.OrderStatusNew,
		Items: []models.OrderItem{
			{ProductID: products[0].ProductID, ItemQuantity: 3, ItemPrice: products[0].ProductPrice},
			{ProductID: products[1].ProductID, ItemQuantity: 2, ItemPrice: products[1].ProductPrice},
		},
	}
	order.OrderAmount = order.Total()
	require.NoError(t, repo.Create(ctx, order))
	assert.Regexp(t, regexp.MustCompile(`^DH\d{8}$`), order.OrderCode)

	loaded, err := repo.FindByID(ctx, order.OrderID)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 2)
	assert.Equal(t, "Wireless Mouse", loaded.Items[0].Product.ProductName)
	assert.Equal(t, "buyer", loaded.User.UserAccount)
	assert.True(t, loaded.OrderAmount.Equal(decimal.RequireFromString("226.5")))

	assert.Equal(t, 7, stockOf(t, db, products[0].ProductID))
	assert.Equal(t, 0, stockOf(t, db, products[1].ProductID))
}

func TestOrderRepository_CreateRollsBackOnShortStock(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	user := seedUser(t, db, "buyer", "0911111111", models.RoleCustomer)
	repo := repositories.NewGORMOrderRepository(db)

	order := &models.Order{
		UserID: user.UserID, OrderDate: models.Today(), OrderStatus: models.OrderStatusNew,
		Items: []models.OrderItem{
			{ProductID: products[0].ProductID, ItemQuantity: 1, ItemPrice: products[0].ProductPrice},
			{ProductID: products[2].ProductID, ItemQuantity: 1, ItemPrice: products[2].ProductPrice},
		},
	}
	err := repo.Create(ctx, order)
	var bad *apperrors.BadRequestError
	require.ErrorAs(t, err, &bad)

	assert.Equal(t, 10, stockOf(t, db, products[0].ProductID))
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOrderRepository_CancelRestocks(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	user := seedUser(t, db, "buyer", "0911111111", models.RoleCustomer)
	repo := repositories.NewGORMOrderRepository(db)

	order := &models.Order{
		UserID: user.UserID, OrderDate: models.Today(), OrderStatus: models.OrderStatusProcessing,
		Items: []models.OrderItem{{ProductID: products[0].ProductID, ItemQuantity: 4, ItemPrice: products[0].ProductPrice}},
	}
	require.NoError(t, repo.Create(ctx, order))
	require.Equal(t, 6, stockOf(t, db, products[0].ProductID))

	require.NoError(t, repo.Cancel(ctx, order))
	assert.Equal(t, models.OrderStatusCancelled, order.OrderStatus)
	assert.Equal(t, 10, stockOf(t, db, products[0].ProductID))

	var bad *apperrors.BadRequestError
	assert.ErrorAs(t, repo.Cancel(ctx, order), &bad)
	assert.Equal(t, 10, stockOf(t, db, products[0].ProductID), "second cancel must roll back its restock")
}

func TestOrderRepository_UpdateStatusRequiresExpectedStatus(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	user := seedUser(t, db, "buyer", "0911111111", models.RoleCustomer)
	repo := repositories.NewGORMOrderRepository(db)

	order := &models.Order{
		UserID: user.UserID, OrderDate: models.Today(), OrderStatus: models.OrderStatusNew,
		Items: []models.OrderItem{{ProductID: products[0].ProductID, ItemQuantity: 3, ItemPrice: products[0].ProductPrice}},
	}
	require.NoError(t, repo.Create(ctx, order))

	stale, err := repo.FindByID(ctx, order.OrderID)
	require.NoError(t, err)
	require.NoError(t, repo.Cancel(ctx, order))
	require.Equal(t, 10, stockOf(t, db, products[0].ProductID))

	stale.OrderStatus = models.OrderStatusShipping
	err = repo.UpdateStatus(ctx, stale, models.OrderStatusNew)
	var bad *apperrors.BadRequestError
	require.ErrorAs(t, err, &bad)

	reloaded, err := repo.FindByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusCancelled, reloaded.OrderStatus)

	next := &models.Order{
		UserID: user.UserID, OrderDate: models.Today(), OrderStatus: models.OrderStatusNew,
		Items: []models.OrderItem{{ProductID: products[0].ProductID, ItemQuantity: 1, ItemPrice: products[0].ProductPrice}},
	}
	require.NoError(t, repo.Create(ctx, next))
	next.OrderStatus = models.OrderStatusProcessing
	require.NoError(t, repo.UpdateStatus(ctx, next, models.OrderStatusNew))
}

func TestOrderRepository_Statistics(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	_, products := seedCatalog(t, db)
	user := seedUser(t, db, "buyer", "0911111111", models.RoleCustomer)
	repo := repositories.NewGORMOrderRepository(db)

	revenue, err := repo.Revenue(ctx, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.True(t, revenue.IsZero())

	for _, status := range []models.OrderStatus{models.OrderStatusDelivered, models.OrderStatusDelivered, models.OrderStatusNew} {
		order := &models.Order{
			UserID: user.UserID, OrderDate: models.Today(), OrderStatus: status,
			OrderAmount: decimal.RequireFromString("25.5"),
			Items:       []models.OrderItem{{ProductID: products[0].ProductID, ItemQuantity: 1, ItemPrice: decimal.RequireFromString("25.5")}},
		}
		require.NoError(t, repo.Create(ctx, order))
	}

	counts, err := repo.CountByStatus(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, counts[models.OrderStatusDelivered])
	assert.EqualValues(t, 1, counts[models.OrderStatusNew])

	revenue, err = repo.Revenue(ctx, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, "51", revenue.String())

	byStatus, err := repo.FindByStatus(ctx, models.OrderStatusNew)
	require.NoError(t, err)
	assert.Len(t, byStatus, 1)

	byUser, err := repo.FindByUser(ctx, user.UserID)
	require.NoError(t, err)
	assert.Len(t, byUser, 3)
}

func TestPaginate(t *testing.T) {
	offset, limit := repositories.Paginate(0, 0)
	assert.Equal(t, 0, offset)
	assert.Equal(t, repositories.DefaultPageSize, limit)

	offset, limit = repositories.Paginate(3, 20)
	assert.Equal(t, 40, offset)
	assert.Equal(t, 20, limit)

	_, limit = repositories.Paginate(1, 1000)
	assert.Equal(t, repositories.MaxPageSize, limit)
}

func stockOf(t *testing.T, db *gorm.DB, productID uint) int {
	t.Helper()
	var product models.Product
	require.NoError(t, db.First(&product, "product_id = ?", productID).Error)
	return product.QuantityStock
}
