package cart_test

import (
	"context"
	"testing"

	"github.com/hoangson03112/VietXanh/internal/cart"

	"github.com/stretchr/testify/assert"
)

// countingStorage tracks writes so tests can assert one Save per mutation.
type countingStorage struct {
	cart.Storage
	sets    int
	deletes int
}

func (c *countingStorage) Set(ctx context.Context, key string, value []byte) error {
	c.sets++
	return c.Storage.Set(ctx, key, value)
}

func (c *countingStorage) Delete(ctx context.Context, key string) error {
	c.deletes++
	return c.Storage.Delete(ctx, key)
}

func newTestStore(t *testing.T) (*cart.Store, *countingStorage, *cart.LocalBus) {
	t.Helper()
	storage := &countingStorage{Storage: cart.NewMemoryStorage()}
	bus := cart.NewLocalBus()
	return cart.NewStore(storage, bus), storage, bus
}

func TestStore_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("empty_when_nothing_stored", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		items, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []cart.LineItem{}, items)
	})

	t.Run("malformed_value_is_treated_as_empty", func(t *testing.T) {
		storage := cart.NewMemoryStorage()
		assert.NoError(t, storage.Set(ctx, "cart", []byte("{not json")))

		store := cart.NewStore(storage, cart.NewLocalBus())
		items, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, []cart.LineItem{}, items)

		// the corrupted value is not evicted, only a later save heals it
		raw, err := storage.Get(ctx, "cart")
		assert.NoError(t, err)
		assert.Equal(t, []byte("{not json"), raw)
	})

	t.Run("malformed_value_healed_by_next_save", func(t *testing.T) {
		storage := cart.NewMemoryStorage()
		assert.NoError(t, storage.Set(ctx, "cart", []byte("{not json")))

		store := cart.NewStore(storage, cart.NewLocalBus())
		_, err := store.Add(ctx, "p1", cart.Snapshot{Name: "Ống hút gạo", Price: 35000}, 1)
		assert.NoError(t, err)

		items, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
	})
}

func TestStore_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("appends_new_item_with_snapshot", func(t *testing.T) {
		store, storage, _ := newTestStore(t)

		items, err := store.Add(ctx, "p1", cart.Snapshot{
			Name:  "Túi cuộn rút",
			Price: 20000,
			Image: "/product1.png",
		}, 2)
		assert.NoError(t, err)
		assert.Equal(t, []cart.LineItem{{
			ProductID: "p1",
			Name:      "Túi cuộn rút",
			Price:     20000,
			Image:     "/product1.png",
			Quantity:  2,
		}}, items)
		assert.Equal(t, 1, storage.sets)

		loaded, err := store.Load(ctx)
		assert.NoError(t, err)
		assert.Equal(t, items, loaded)
		assert.Equal(t, float64(40000), cart.Total(loaded))
	})

	t.Run("same_product_merges_quantity_and_keeps_first_snapshot", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		_, err := store.Add(ctx, "p1", cart.Snapshot{Name: "Túi cuộn rút", Price: 20000, Image: "/a.png"}, 2)
		assert.NoError(t, err)

		// second add carries a different snapshot; it must be ignored
		items, err := store.Add(ctx, "p1", cart.Snapshot{Name: "renamed", Price: 99999, Image: "/b.png"}, 3)
		assert.NoError(t, err)

		assert.Len(t, items, 1)
		assert.Equal(t, 5, items[0].Quantity)
		assert.Equal(t, "Túi cuộn rút", items[0].Name)
		assert.Equal(t, float64(20000), items[0].Price)
		assert.Equal(t, "/a.png", items[0].Image)
	})

	t.Run("preserves_insertion_order", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		_, _ = store.Add(ctx, "p1", cart.Snapshot{Name: "Túi rác sinh học"}, 1)
		_, _ = store.Add(ctx, "p2", cart.Snapshot{Name: "Ống hút gạo"}, 1)
		items, _ := store.Add(ctx, "p1", cart.Snapshot{}, 1)

		assert.Equal(t, "p1", items[0].ProductID)
		assert.Equal(t, "p2", items[1].ProductID)
	})
}

func TestStore_UpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("applies_delta", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		_, _ = store.Add(ctx, "p1", cart.Snapshot{Price: 20000}, 2)

		items, err := store.UpdateQuantity(ctx, "p1", 3)
		assert.NoError(t, err)
		assert.Equal(t, 5, items[0].Quantity)
	})

	t.Run("clamps_at_one_never_removes", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		_, _ = store.Add(ctx, "p1", cart.Snapshot{Name: "Túi cuộn rút", Price: 20000, Image: "/product1.png"}, 2)

		items, err := store.UpdateQuantity(ctx, "p1", -5)
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
		assert.Equal(t, float64(20000), cart.Total(items))
	})

	t.Run("unknown_product_is_noop_without_save", func(t *testing.T) {
		store, storage, _ := newTestStore(t)
		before, _ := store.Add(ctx, "p1", cart.Snapshot{}, 1)
		setsBefore := storage.sets

		after, err := store.UpdateQuantity(ctx, "missing", 4)
		assert.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, setsBefore, storage.sets)
	})
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("removes_matching_item", func(t *testing.T) {
		store, _, _ := newTestStore(t)
		_, _ = store.Add(ctx, "p1", cart.Snapshot{}, 1)
		_, _ = store.Add(ctx, "p2", cart.Snapshot{}, 1)

		items, err := store.Remove(ctx, "p1")
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, "p2", items[0].ProductID)
	})

	t.Run("missing_product_is_noop_without_notification", func(t *testing.T) {
		store, storage, _ := newTestStore(t)
		before, _ := store.Add(ctx, "p1", cart.Snapshot{}, 1)
		setsBefore := storage.sets

		notified := 0
		unsubscribe := store.Subscribe(func() { notified++ })
		defer unsubscribe()

		after, err := store.Remove(ctx, "missing")
		assert.NoError(t, err)
		assert.Equal(t, before, after)
		assert.Equal(t, setsBefore, storage.sets)
		assert.Equal(t, 0, notified)
	})
}

func TestStore_Clear(t *testing.T) {
	ctx := context.Background()
	store, storage, _ := newTestStore(t)

	_, _ = store.Add(ctx, "p1", cart.Snapshot{Price: 20000}, 2)

	assert.NoError(t, store.Clear(ctx))
	assert.Equal(t, 1, storage.deletes)

	// the key is gone, not persisted as an empty list
	_, err := storage.Get(ctx, "cart")
	assert.ErrorIs(t, err, cart.ErrKeyNotFound)

	items, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []cart.LineItem{}, items)
}

func TestTotal(t *testing.T) {
	assert.Equal(t, float64(0), cart.Total(nil))
	assert.Equal(t, float64(0), cart.Total([]cart.LineItem{}))

	items := []cart.LineItem{
		{ProductID: "p1", Price: 20000, Quantity: 2},
		{ProductID: "p2", Price: 35000, Quantity: 1},
	}
	assert.Equal(t, float64(75000), cart.Total(items))
}

func TestStore_Notifications(t *testing.T) {
	ctx := context.Background()

	t.Run("save_and_clear_notify_once_each", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		notified := 0
		unsubscribe := store.Subscribe(func() { notified++ })
		defer unsubscribe()

		_, _ = store.Add(ctx, "p1", cart.Snapshot{}, 1)
		assert.Equal(t, 1, notified)

		_, _ = store.UpdateQuantity(ctx, "p1", 1)
		assert.Equal(t, 2, notified)

		_, _ = store.Remove(ctx, "p1")
		assert.Equal(t, 3, notified)

		_ = store.Clear(ctx)
		assert.Equal(t, 4, notified)
	})

	t.Run("subscription_is_scoped_to_the_store_key", func(t *testing.T) {
		storage := cart.NewMemoryStorage()
		bus := cart.NewLocalBus()
		root := cart.NewStore(storage, bus)

		a := root.ForSession("session-a")
		b := root.ForSession("session-b")

		notified := 0
		unsubscribe := a.Subscribe(func() { notified++ })
		defer unsubscribe()

		_, _ = b.Add(ctx, "p1", cart.Snapshot{}, 1)
		assert.Equal(t, 0, notified)

		_, _ = a.Add(ctx, "p1", cart.Snapshot{}, 1)
		assert.Equal(t, 1, notified)
	})

	t.Run("unsubscribe_stops_delivery", func(t *testing.T) {
		store, _, _ := newTestStore(t)

		notified := 0
		unsubscribe := store.Subscribe(func() { notified++ })

		_, _ = store.Add(ctx, "p1", cart.Snapshot{}, 1)
		unsubscribe()
		_, _ = store.Add(ctx, "p2", cart.Snapshot{}, 1)

		assert.Equal(t, 1, notified)
	})
}

// Two writers over the same key: both read, both mutate, the later save fully
// replaces the earlier one. Accepted weak consistency for a single-user cart.
func TestStore_LastWriterWins(t *testing.T) {
	ctx := context.Background()
	storage := cart.NewMemoryStorage()
	bus := cart.NewLocalBus()

	writerA := cart.NewStore(storage, bus)
	writerB := cart.NewStore(storage, bus)

	_, _ = writerA.Add(ctx, "p1", cart.Snapshot{Name: "Túi cuộn rút", Price: 20000}, 1)

	stateA, _ := writerA.Load(ctx)
	stateB, _ := writerB.Load(ctx)

	stateA[0].Quantity = 10
	stateB[0].Quantity = 3

	assert.NoError(t, writerA.Save(ctx, stateA))
	assert.NoError(t, writerB.Save(ctx, stateB))

	final, err := writerA.Load(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 3, final[0].Quantity)
}

func TestStore_SessionKeys(t *testing.T) {
	storage := cart.NewMemoryStorage()
	root := cart.NewStore(storage, cart.NewLocalBus())

	assert.Equal(t, "cart", root.Key())
	assert.Equal(t, "cart:abc", root.ForSession("abc").Key())
}
