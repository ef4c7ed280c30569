package pricing

import (
	"testing"
	"time"

	"inspect_billing/internal/domain/entities"
)

func testItems() []entities.PricingItem {
	return []entities.PricingItem{
		{Kind: entities.ItemKindService, ServiceRef: "svc-a", Label: "Home Inspection", Price: 300, OriginalPrice: 300},
		{Kind: entities.ItemKindAddon, ServiceRef: "svc-a", AddonName: "Radon Test", Label: "Radon Test", Price: 50, OriginalPrice: 50},
	}
}

func percentCode(value float64) *entities.DiscountCode {
	return &entities.DiscountCode{
		ID:                "dc-1",
		Type:              entities.DiscountTypePercent,
		Value:             value,
		AppliesToServices: []string{"svc-a"},
		Active:            true,
	}
}

func TestMatchDiscount(t *testing.T) {
	now := time.Now().UTC()

	t.Run("nil code discounts nothing", func(t *testing.T) {
		if got := MatchDiscount(testItems(), nil, now); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("inactive code discounts nothing", func(t *testing.T) {
		code := percentCode(10)
		code.Active = false
		if got := MatchDiscount(testItems(), code, now); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("expired code discounts nothing", func(t *testing.T) {
		code := percentCode(10)
		expired := now.Add(-time.Hour)
		code.ExpirationDate = &expired
		if got := MatchDiscount(testItems(), code, now); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("exhausted code discounts nothing", func(t *testing.T) {
		code := percentCode(10)
		code.MaxUses = 3
		code.TimesUsed = 3
		if got := MatchDiscount(testItems(), code, now); len(got) != 0 {
			t.Fatalf("expected empty map, got %v", got)
		}
	})

	t.Run("percent on matched service only", func(t *testing.T) {
		got := MatchDiscount(testItems(), percentCode(10), now)
		if len(got) != 1 || got[0] != 30 {
			t.Fatalf("expected {0:30}, got %v", got)
		}
	})

	t.Run("addon matches by case-insensitive name", func(t *testing.T) {
		code := &entities.DiscountCode{
			Type:            entities.DiscountTypeAmount,
			Value:           5,
			AppliesToAddOns: []entities.AddonKey{{ServiceRef: "svc-a", AddonName: "RADON test"}},
			Active:          true,
		}
		got := MatchDiscount(testItems(), code, now)
		if len(got) != 1 || got[1] != 5 {
			t.Fatalf("expected {1:5}, got %v", got)
		}
	})

	t.Run("additional items never qualify", func(t *testing.T) {
		items := append(testItems(), entities.PricingItem{
			Kind: entities.ItemKindAdditional, Label: "Travel Fee", Price: 40, OriginalPrice: 40,
		})
		got := MatchDiscount(items, percentCode(10), now)
		if _, ok := got[2]; ok {
			t.Fatalf("additional item should not qualify: %v", got)
		}
	})

	t.Run("flat discount capped at original price", func(t *testing.T) {
		code := &entities.DiscountCode{
			Type:              entities.DiscountTypeAmount,
			Value:             500,
			AppliesToServices: []string{"svc-a"},
			Active:            true,
		}
		got := MatchDiscount(testItems(), code, now)
		if got[0] != 300 {
			t.Fatalf("expected discount capped at 300, got %v", got[0])
		}
	})

	t.Run("discount reads original price not current price", func(t *testing.T) {
		items := testItems()
		items[0].Price = 270 // already discounted in place
		got := MatchDiscount(items, percentCode(10), now)
		if got[0] != 30 {
			t.Fatalf("expected 30 (10%% of original 300), got %v", got[0])
		}
	})
}

func TestApplyDiscount(t *testing.T) {
	now := time.Now().UTC()

	t.Run("spec scenario service 300 addon 50", func(t *testing.T) {
		items := testItems()
		priced := ApplyDiscount(items, MatchDiscount(items, percentCode(10), now))
		if priced[0].Price != 270 {
			t.Fatalf("expected service price 270, got %v", priced[0].Price)
		}
		if priced[1].Price != 50 {
			t.Fatalf("expected addon price 50, got %v", priced[1].Price)
		}
		if items[0].Price != 300 {
			t.Fatalf("input mutated: %v", items[0].Price)
		}
	})

	t.Run("idempotent re-application", func(t *testing.T) {
		items := testItems()
		code := percentCode(10)
		once := ApplyDiscount(items, MatchDiscount(items, code, now))
		twice := ApplyDiscount(once, MatchDiscount(once, code, now))
		for i := range twice {
			if twice[i].Price != once[i].Price {
				t.Fatalf("discount compounded at %d: %v vs %v", i, twice[i].Price, once[i].Price)
			}
		}
	})

	t.Run("unmatched items reset to original price", func(t *testing.T) {
		items := testItems()
		items[1].Price = 10 // stale discounted value
		priced := ApplyDiscount(items, MatchDiscount(items, nil, now))
		if priced[1].Price != 50 {
			t.Fatalf("expected stale price reset to 50, got %v", priced[1].Price)
		}
	})
}
