package cart

import (
	"testing"

	"github.com/angelmondragon/storefront/internal/catalog"
	"github.com/angelmondragon/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

func product(id int, name string) catalog.Product {
	return catalog.Product{ID: id, Name: name, Price: decimal.NewFromInt(int64(id) * 10)}
}

func TestAddTwiceGrowsOneLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	p := product(1, "Mug")

	store.Add(p)
	if store.ItemCount() != 1 {
		t.Fatalf("count after first add = %d, want 1", store.ItemCount())
	}

	store.Add(p)
	if store.Len() != 1 {
		t.Fatalf("adding the same product twice must not create a second line, lines=%d", store.Len())
	}
	if got := store.Items()[0].Quantity; got != 2 {
		t.Fatalf("quantity = %d, want 2", got)
	}
	if store.ItemCount() != 2 {
		t.Fatalf("count after second add = %d, want 2", store.ItemCount())
	}
}

func TestAddPrependsNewLines(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(product(1, "Mug"))
	store.Add(product(2, "Lamp"))

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].Product.ID != 2 || items[1].Product.ID != 1 {
		t.Fatalf("newest line should be first: %+v", items)
	}
}

func TestDecreaseAtOneRemovesLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(product(1, "Mug"))

	store.ChangeQuantity(1, enums.QuantityDecrease)
	if store.Len() != 0 {
		t.Fatalf("decrement at quantity 1 must remove the line, lines=%d", store.Len())
	}
	if store.ItemCount() != 0 {
		t.Fatalf("count = %d, want 0", store.ItemCount())
	}
}

func TestDecreaseAboveOneKeepsLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	p := product(1, "Mug")
	store.Add(p)
	store.Add(p)
	store.Add(p)

	store.ChangeQuantity(1, enums.QuantityDecrease)
	items := store.Items()
	if len(items) != 1 || items[0].Quantity != 2 {
		t.Fatalf("expected one line at quantity 2, got %+v", items)
	}
	if store.ItemCount() != 2 {
		t.Fatalf("count = %d, want 2", store.ItemCount())
	}
}

func TestIncreaseIsUnconditional(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(product(1, "Mug"))
	store.ChangeQuantity(1, enums.QuantityIncrease)
	store.ChangeQuantity(1, enums.QuantityIncrease)

	if got := store.Items()[0].Quantity; got != 3 {
		t.Fatalf("quantity = %d, want 3", got)
	}
}

func TestChangeQuantityUnknownProductIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Add(product(1, "Mug"))

	store.ChangeQuantity(42, enums.QuantityIncrease)
	if store.ItemCount() != 1 {
		t.Fatalf("count changed for unknown product: %d", store.ItemCount())
	}
}

func TestRemoveOnEmptyCartIsNoop(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Remove(1)

	if store.Len() != 0 || store.ItemCount() != 0 {
		t.Fatalf("empty cart changed: lines=%d count=%d", store.Len(), store.ItemCount())
	}
}

func TestRemoveDropsWholeLine(t *testing.T) {
	t.Parallel()

	store := NewStore()
	p := product(1, "Mug")
	store.Add(p)
	store.Add(p)
	store.Add(product(2, "Lamp"))

	store.Remove(1)
	items := store.Items()
	if len(items) != 1 || items[0].Product.ID != 2 {
		t.Fatalf("expected only product 2 left, got %+v", items)
	}
	if store.ItemCount() != 1 {
		t.Fatalf("count = %d, want 1", store.ItemCount())
	}
}

func TestItemCountIsSumOfQuantities(t *testing.T) {
	t.Parallel()

	store := NewStore()
	// quantities 2, 1, 3
	a, b, c := product(1, "Mug"), product(2, "Lamp"), product(3, "Shirt")
	store.Add(a)
	store.Add(a)
	store.Add(b)
	store.Add(c)
	store.Add(c)
	store.Add(c)

	if store.ItemCount() != 6 {
		t.Fatalf("count = %d, want 6", store.ItemCount())
	}
}

func TestStoresHaveDistinctIDs(t *testing.T) {
	t.Parallel()

	if NewStore().ID() == NewStore().ID() {
		t.Fatal("expected unique cart session ids")
	}
}
