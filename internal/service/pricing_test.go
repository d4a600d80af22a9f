package service

import (
	"testing"

	"github.com/creamery-next/internal/models"

	"github.com/shopspring/decimal"
)

func TestPriceLineItemNoFlavoursIsZero(t *testing.T) {
	mixins := map[uint]models.IceCreamMixin{
		1: {ID: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50))},
	}

	// 无口味时整项金额为 0，即使带了配料
	got := priceLineItem(nil, []uint{1}, map[uint]models.IceCreamFlavour{}, mixins)
	if !got.IsZero() {
		t.Fatalf("want zero for flavourless item, got %s", got.String())
	}
}

func TestPriceLineItemMultipliesScoops(t *testing.T) {
	flavours := map[uint]models.IceCreamFlavour{
		1: {ID: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(1.50))},
	}
	mixins := map[uint]models.IceCreamMixin{
		2: {ID: 2, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(0.50))},
	}

	got := priceLineItem(
		models.FlavourSelections{{FlavourID: 1, Scoops: 3}},
		[]uint{2},
		flavours, mixins,
	)
	if got.StringFixed(2) != "5.00" {
		t.Fatalf("want 5.00, got %s", got.StringFixed(2))
	}
}

func TestPriceLineItemSkipsUnknownIDs(t *testing.T) {
	flavours := map[uint]models.IceCreamFlavour{
		1: {ID: 1, Price: models.NewMoneyFromDecimal(decimal.NewFromFloat(1.50))},
	}

	got := priceLineItem(
		models.FlavourSelections{
			{FlavourID: 1, Scoops: 1},
			{FlavourID: 42, Scoops: 5},
		},
		[]uint{99},
		flavours, map[uint]models.IceCreamMixin{},
	)
	if got.StringFixed(2) != "1.50" {
		t.Fatalf("want 1.50, got %s", got.StringFixed(2))
	}
}
