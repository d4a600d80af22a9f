package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"

	"github.com/shopspring/decimal"
)

type catalogFixture struct {
	cup        models.IceCreamType
	cone       models.IceCreamType
	vanilla    models.IceCreamFlavour
	chocolate  models.IceCreamFlavour
	sprinkles  models.IceCreamMixin
	gummyBears models.IceCreamMixin
}

func setupTestDB(t *testing.T) {
	t.Helper()
	// 纯 Go sqlite 驱动下每个连接各有一份匿名内存库，必须用命名共享缓存
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	// 保持至少一个常驻连接，否则内存库会在空闲时被释放
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		t.Fatalf("init db: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("migrate: %v", err)
	}
}

func seedCatalog(t *testing.T) catalogFixture {
	t.Helper()
	fixture := catalogFixture{
		cup:        models.IceCreamType{Name: "Cup", Slug: "cup", MaxScoops: 7},
		cone:       models.IceCreamType{Name: "Cone", Slug: "cone", MaxScoops: 3},
		vanilla:    models.IceCreamFlavour{Name: "Vanilla", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(1.50))},
		chocolate:  models.IceCreamFlavour{Name: "Chocolate", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(1.50))},
		sprinkles:  models.IceCreamMixin{Name: "Sprinkles", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50))},
		gummyBears: models.IceCreamMixin{Name: "Gummy Bears", Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50))},
	}
	for _, record := range []interface{}{
		&fixture.cup, &fixture.cone,
		&fixture.vanilla, &fixture.chocolate,
		&fixture.sprinkles, &fixture.gummyBears,
	} {
		if err := models.DB.Create(record).Error; err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
	return fixture
}

func newCartService() *CartService {
	return NewCartService(
		repository.NewCartRepository(models.DB),
		repository.NewIceCreamTypeRepository(models.DB),
		repository.NewIceCreamFlavourRepository(models.DB),
		repository.NewIceCreamMixinRepository(models.DB),
	)
}

func TestCatalogSeedVisibleAfterMigration(t *testing.T) {
	setupTestDB(t)
	seedCatalog(t)

	var flavours int64
	if err := models.DB.Model(&models.IceCreamFlavour{}).Count(&flavours).Error; err != nil {
		t.Fatalf("count flavours: %v", err)
	}
	if flavours != 2 {
		t.Fatalf("want 2 flavours, got %d", flavours)
	}
}

func TestAddItemDuplicatesAreNotMerged(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	input := AddItemInput{
		UserID:            1,
		TypeSlug:          "cup",
		FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
	}
	for i := 0; i < 2; i++ {
		if _, err := svc.AddItem(input); err != nil {
			t.Fatalf("add item %d: %v", i, err)
		}
	}

	detail, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if len(detail.Items) != 2 {
		t.Fatalf("expected 2 separate cart items, got %d", len(detail.Items))
	}
}

func TestAddItemRejectsInvalidInput(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	cases := []struct {
		name  string
		input AddItemInput
		want  error
	}{
		{
			name:  "no flavours",
			input: AddItemInput{UserID: 1, TypeSlug: "cup"},
			want:  ErrCartItemInvalid,
		},
		{
			name: "zero scoops",
			input: AddItemInput{
				UserID:            1,
				TypeSlug:          "cup",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 0}},
			},
			want: ErrCartItemInvalid,
		},
		{
			name: "unknown type",
			input: AddItemInput{
				UserID:            1,
				TypeSlug:          "bucket",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
			},
			want: ErrTypeNotFound,
		},
		{
			name: "too many scoops for cone",
			input: AddItemInput{
				UserID:            1,
				TypeSlug:          "cone",
				FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 4}},
			},
			want: ErrTooManyScoops,
		},
	}
	for _, tc := range cases {
		if _, err := svc.AddItem(tc.input); err != tc.want {
			t.Fatalf("%s: want %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRemoveItemMissingIsNoop(t *testing.T) {
	setupTestDB(t)
	seedCatalog(t)
	svc := newCartService()

	if err := svc.RemoveItem(1, 12345); err != nil {
		t.Fatalf("expected silent success for missing item, got %v", err)
	}
}

func TestRemoveItemOnlyTouchesOwnCart(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	item, err := svc.AddItem(AddItemInput{
		UserID:            1,
		TypeSlug:          "cup",
		FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := svc.RemoveItem(2, item.ID); err != nil {
		t.Fatalf("remove by other user: %v", err)
	}
	detail, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if len(detail.Items) != 1 {
		t.Fatalf("item should survive removal by another user, got %d items", len(detail.Items))
	}
}

func TestComputeTotalSumsFlavoursAndMixins(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	// 2球香草 + 1球巧克力 + 两种配料 = 1.50*3 + 0.50*2 = 5.50
	if _, err := svc.AddItem(AddItemInput{
		UserID:   1,
		TypeSlug: "cup",
		FlavourSelections: models.FlavourSelections{
			{FlavourID: fixture.vanilla.ID, Scoops: 2},
			{FlavourID: fixture.chocolate.ID, Scoops: 1},
		},
		MixinIDs: []uint{fixture.sprinkles.ID, fixture.gummyBears.ID},
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	total, err := svc.ComputeTotal(1)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	if got := total.Decimal.StringFixed(2); got != "5.50" {
		t.Fatalf("want total 5.50, got %s", got)
	}
}

func TestComputeTotalIgnoresUnknownCatalogIDs(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	if _, err := svc.AddItem(AddItemInput{
		UserID:   1,
		TypeSlug: "cup",
		FlavourSelections: models.FlavourSelections{
			{FlavourID: fixture.vanilla.ID, Scoops: 1},
			{FlavourID: 9999, Scoops: 2},
		},
		MixinIDs: []uint{fixture.sprinkles.ID, 8888},
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	total, err := svc.ComputeTotal(1)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	// 未知口味/配料按 0 计入：1.50 + 0.50
	if got := total.Decimal.StringFixed(2); got != "2.00" {
		t.Fatalf("want total 2.00, got %s", got)
	}
}

func TestComputeTotalEmptyCartIsZero(t *testing.T) {
	setupTestDB(t)
	seedCatalog(t)
	svc := newCartService()

	total, err := svc.ComputeTotal(1)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	if !total.Decimal.IsZero() {
		t.Fatalf("want zero total, got %s", total.Decimal.String())
	}
}

func TestClearCart(t *testing.T) {
	setupTestDB(t)
	fixture := seedCatalog(t)
	svc := newCartService()

	if _, err := svc.AddItem(AddItemInput{
		UserID:            1,
		TypeSlug:          "cup",
		FlavourSelections: models.FlavourSelections{{FlavourID: fixture.vanilla.ID, Scoops: 1}},
	}); err != nil {
		t.Fatalf("add item: %v", err)
	}

	if err := svc.Clear(1); err != nil {
		t.Fatalf("clear cart: %v", err)
	}
	detail, err := svc.ListByUser(1)
	if err != nil {
		t.Fatalf("list cart: %v", err)
	}
	if len(detail.Items) != 0 {
		t.Fatalf("cart should be empty, got %d items", len(detail.Items))
	}
}
