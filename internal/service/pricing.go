package service

import (
	"github.com/creamery-next/internal/models"

	"github.com/shopspring/decimal"
)

// priceLineItem 按目录快照计算单个配置的金额。
// 无口味的配置金额为 0（配料不单独计价）；快照中不存在的口味/配料按 0 计入，
// 不中断整体计算。
func priceLineItem(selections models.FlavourSelections, mixinIDs []uint, flavours map[uint]models.IceCreamFlavour, mixins map[uint]models.IceCreamMixin) decimal.Decimal {
	if len(selections) == 0 {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, sel := range selections {
		if sel.Scoops <= 0 {
			continue
		}
		flavour, ok := flavours[sel.FlavourID]
		if !ok {
			continue
		}
		total = total.Add(flavour.Price.MulInt(sel.Scoops))
	}
	for _, id := range mixinIDs {
		mixin, ok := mixins[id]
		if !ok {
			continue
		}
		total = total.Add(mixin.Price.Decimal)
	}
	return total.Round(2)
}

func flavourMap(flavours []models.IceCreamFlavour) map[uint]models.IceCreamFlavour {
	m := make(map[uint]models.IceCreamFlavour, len(flavours))
	for _, f := range flavours {
		m[f.ID] = f
	}
	return m
}

func mixinMap(mixins []models.IceCreamMixin) map[uint]models.IceCreamMixin {
	m := make(map[uint]models.IceCreamMixin, len(mixins))
	for _, mx := range mixins {
		m[mx.ID] = mx
	}
	return m
}
