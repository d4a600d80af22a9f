package service

import (
	"errors"
	"testing"

	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"

	"github.com/shopspring/decimal"
)

func newCatalogService() *CatalogService {
	return NewCatalogService(
		repository.NewIceCreamTypeRepository(models.DB),
		repository.NewIceCreamFlavourRepository(models.DB),
		repository.NewIceCreamMixinRepository(models.DB),
	)
}

func TestCreateTypeValidation(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	if _, err := svc.CreateType(TypeInput{Name: "", Slug: "cup", MaxScoops: 7}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.CreateType(TypeInput{Name: "Cup", Slug: "cup", MaxScoops: 0}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for zero max scoops, got %v", err)
	}

	created, err := svc.CreateType(TypeInput{Name: "Cup", Slug: "cup", MaxScoops: 7})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("created type should have an id")
	}

	if _, err := svc.CreateType(TypeInput{Name: "Another Cup", Slug: "cup", MaxScoops: 5}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists, got %v", err)
	}
}

func TestUpdateTypePartialFields(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	created, err := svc.CreateType(TypeInput{Name: "Cup", Slug: "cup", MaxScoops: 7})
	if err != nil {
		t.Fatalf("create type: %v", err)
	}

	updated, err := svc.UpdateType(created.ID, TypeInput{MaxScoops: 9})
	if err != nil {
		t.Fatalf("update type: %v", err)
	}
	if updated.Name != "Cup" || updated.Slug != "cup" || updated.MaxScoops != 9 {
		t.Fatalf("partial update mismatch: %+v", updated)
	}

	if _, err := svc.UpdateType(9999, TypeInput{Name: "Ghost"}); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("want ErrTypeNotFound, got %v", err)
	}
}

func TestGetTypeBySlug(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	if _, err := svc.CreateType(TypeInput{Name: "Cone", Slug: "cone", MaxScoops: 3}); err != nil {
		t.Fatalf("create type: %v", err)
	}

	got, err := svc.GetTypeBySlug(" cone ")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.Name != "Cone" {
		t.Fatalf("want Cone, got %s", got.Name)
	}

	if _, err := svc.GetTypeBySlug("bucket"); !errors.Is(err, ErrTypeNotFound) {
		t.Fatalf("want ErrTypeNotFound, got %v", err)
	}
}

func TestCreateFlavourValidation(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	if _, err := svc.CreateFlavour(PricedItemInput{Name: "", Price: decimal.NewFromFloat(1.50)}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.CreateFlavour(PricedItemInput{Name: "Vanilla", Price: decimal.Zero}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("want ErrInvalidPrice for zero price, got %v", err)
	}
	if _, err := svc.CreateFlavour(PricedItemInput{Name: "Vanilla", Price: decimal.NewFromFloat(-1)}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("want ErrInvalidPrice for negative price, got %v", err)
	}

	created, err := svc.CreateFlavour(PricedItemInput{Name: "Vanilla", Price: decimal.NewFromFloat(1.50)})
	if err != nil {
		t.Fatalf("create flavour: %v", err)
	}
	if created.Price.Decimal.StringFixed(2) != "1.50" {
		t.Fatalf("price mismatch: %s", created.Price.Decimal.StringFixed(2))
	}

	if _, err := svc.CreateFlavour(PricedItemInput{Name: "Vanilla", Price: decimal.NewFromFloat(2)}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("want ErrNameExists, got %v", err)
	}
}

func TestUpdateFlavourPriceOnly(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	created, err := svc.CreateFlavour(PricedItemInput{Name: "Mint", Price: decimal.NewFromFloat(1.50)})
	if err != nil {
		t.Fatalf("create flavour: %v", err)
	}

	updated, err := svc.UpdateFlavour(created.ID, PricedItemInput{Price: decimal.NewFromFloat(1.75)})
	if err != nil {
		t.Fatalf("update flavour: %v", err)
	}
	if updated.Name != "Mint" || updated.Price.Decimal.StringFixed(2) != "1.75" {
		t.Fatalf("update mismatch: %+v", updated)
	}

	if _, err := svc.UpdateFlavour(9999, PricedItemInput{Name: "Ghost"}); !errors.Is(err, ErrFlavourNotFound) {
		t.Fatalf("want ErrFlavourNotFound, got %v", err)
	}
}

func TestDeleteFlavour(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	created, err := svc.CreateFlavour(PricedItemInput{Name: "Pistachio", Price: decimal.NewFromFloat(1.50)})
	if err != nil {
		t.Fatalf("create flavour: %v", err)
	}

	if err := svc.DeleteFlavour(created.ID); err != nil {
		t.Fatalf("delete flavour: %v", err)
	}
	if err := svc.DeleteFlavour(created.ID); !errors.Is(err, ErrFlavourNotFound) {
		t.Fatalf("want ErrFlavourNotFound on second delete, got %v", err)
	}

	flavours, err := svc.ListFlavours()
	if err != nil {
		t.Fatalf("list flavours: %v", err)
	}
	if len(flavours) != 0 {
		t.Fatalf("flavour list should be empty, got %d", len(flavours))
	}
}

func TestMixinCRUD(t *testing.T) {
	setupTestDB(t)
	svc := newCatalogService()

	created, err := svc.CreateMixin(PricedItemInput{Name: "Sprinkles", Price: decimal.NewFromFloat(0.50)})
	if err != nil {
		t.Fatalf("create mixin: %v", err)
	}
	if _, err := svc.CreateMixin(PricedItemInput{Name: "Sprinkles", Price: decimal.NewFromFloat(0.75)}); !errors.Is(err, ErrNameExists) {
		t.Fatalf("want ErrNameExists, got %v", err)
	}

	updated, err := svc.UpdateMixin(created.ID, PricedItemInput{Name: "Rainbow Sprinkles"})
	if err != nil {
		t.Fatalf("update mixin: %v", err)
	}
	if updated.Name != "Rainbow Sprinkles" || updated.Price.Decimal.StringFixed(2) != "0.50" {
		t.Fatalf("update mismatch: %+v", updated)
	}

	if err := svc.DeleteMixin(created.ID); err != nil {
		t.Fatalf("delete mixin: %v", err)
	}
	if err := svc.DeleteMixin(created.ID); !errors.Is(err, ErrMixinNotFound) {
		t.Fatalf("want ErrMixinNotFound on second delete, got %v", err)
	}
}
