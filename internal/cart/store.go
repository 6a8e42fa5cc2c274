package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// DefaultKey is the well-known storage key the storefront persists its cart
// under. Session-scoped carts derive their own keys via ForSession.
const DefaultKey = "cart"

// Store is the sole owner of cart state. Every mutation loads the current
// state, applies the change, and writes the full value back (no partial
// writes); the later of two concurrent Saves wins with no merge.
type Store struct {
	storage Storage
	bus     Bus
	key     string
	logger  *zap.Logger
}

type Option func(*Store)

func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger.Named("cart.store") }
}

func NewStore(storage Storage, bus Bus, opts ...Option) *Store {
	s := &Store{
		storage: storage,
		bus:     bus,
		key:     DefaultKey,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ForSession returns a view of the same storage and bus scoped to one
// session's cart key.
func (s *Store) ForSession(sessionID string) *Store {
	return &Store{
		storage: s.storage,
		bus:     s.bus,
		key:     DefaultKey + ":" + sessionID,
		logger:  s.logger,
	}
}

func (s *Store) Key() string {
	return s.key
}

// Load reconstructs the cart from storage. A missing value is an empty cart. A
// value that does not parse is logged and treated as empty; the corrupted
// value stays in place and is only healed when a later Save overwrites it.
func (s *Store) Load(ctx context.Context) ([]LineItem, error) {
	raw, err := s.storage.Get(ctx, s.key)
	if errors.Is(err, ErrKeyNotFound) {
		return []LineItem{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart %q: %w", s.key, err)
	}

	var items []LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		s.logger.Warn("stored cart is malformed, treating as empty",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return []LineItem{}, nil
	}
	if items == nil {
		items = []LineItem{}
	}
	return items, nil
}

// Save serializes the full state, overwrites the stored value, and notifies
// every observer of the key. Save and Clear are the only operations that
// notify.
func (s *Store) Save(ctx context.Context, items []LineItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart %q: %w", s.key, err)
	}
	if err := s.storage.Set(ctx, s.key, raw); err != nil {
		return fmt.Errorf("save cart %q: %w", s.key, err)
	}

	s.bus.Publish(s.key)
	return nil
}

// Add merges quantity into an existing line item for the product, or appends a
// new item carrying the snapshot. An existing item keeps the snapshot fields
// from its first Add; later adds only raise the quantity.
func (s *Store) Add(ctx context.Context, productID string, snap Snapshot, quantity int) ([]LineItem, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, LineItem{
			ProductID: productID,
			Name:      snap.Name,
			Price:     snap.Price,
			Image:     snap.Image,
			Quantity:  quantity,
		})
	}

	if err := s.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity adjusts an existing item's quantity by delta, clamped at 1.
// Decrementing at the floor is a no-op, it never removes the item. An unknown
// product id leaves the state untouched and skips the write.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, delta int) ([]LineItem, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += delta
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			found = true
			break
		}
	}
	if !found {
		return items, nil
	}

	if err := s.Save(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove drops the line item for the product. Removal is always explicit;
// absence is a no-op with no write and no notification.
func (s *Store) Remove(ctx context.Context, productID string) ([]LineItem, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return items, nil
	}

	if err := s.Save(ctx, kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Clear deletes the persisted value entirely rather than writing an empty
// list, then notifies observers.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.storage.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("clear cart %q: %w", s.key, err)
	}

	s.bus.Publish(s.key)
	return nil
}

// Subscribe registers fn for change notifications on this store's key and
// returns the unsubscribe func.
func (s *Store) Subscribe(fn func()) func() {
	return s.bus.Subscribe(func(key string) {
		if key == s.key {
			fn()
		}
	})
}
