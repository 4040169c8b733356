package cart

import (
	"encoding/json"
	"fmt"

	"restaurant-bot/models"
)

const (
	KeyCart               = "cart"
	KeySelectedRestaurant = "selectedRestaurant"
)

// Session is the cart plus the restaurant it was built against. Every mutation
// is written through to the KV so a later run rehydrates the same state.
type Session struct {
	kv         KV
	Cart       Cart
	Restaurant *models.Restaurant
}

// Open rehydrates a session from kv; missing keys yield an empty session
func Open(kv KV) (*Session, error) {
	s := &Session{kv: kv}

	raw, ok, err := kv.Get(KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if ok {
		if err := json.Unmarshal(raw, &s.Cart.Lines); err != nil {
			return nil, fmt.Errorf("failed to decode cart: %w", err)
		}
	}

	raw, ok, err = kv.Get(KeySelectedRestaurant)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected restaurant: %w", err)
	}
	if ok && string(raw) != "null" {
		var r models.Restaurant
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("failed to decode selected restaurant: %w", err)
		}
		s.Restaurant = &r
	}
	return s, nil
}

// Select records the restaurant whose menu is being browsed
func (s *Session) Select(r models.Restaurant) error {
	s.Restaurant = &r
	return s.Save()
}

func (s *Session) Add(catalog Catalog, id string) error {
	if !s.Cart.Add(catalog, id) {
		return nil
	}
	return s.Save()
}

func (s *Session) Remove(id string) error {
	if !s.Cart.Remove(id) {
		return nil
	}
	return s.Save()
}

// Save writes both keys
func (s *Session) Save() error {
	lines := s.Cart.Lines
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.kv.Set(KeyCart, data); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	data, err = json.Marshal(s.Restaurant)
	if err != nil {
		return fmt.Errorf("failed to encode selected restaurant: %w", err)
	}
	if err := s.kv.Set(KeySelectedRestaurant, data); err != nil {
		return fmt.Errorf("failed to save selected restaurant: %w", err)
	}
	return nil
}

// Clear empties the cart and forgets the restaurant, removing both keys
func (s *Session) Clear() error {
	s.Cart = Cart{}
	s.Restaurant = nil
	if err := s.kv.Delete(KeyCart); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	if err := s.kv.Delete(KeySelectedRestaurant); err != nil {
		return fmt.Errorf("failed to clear selected restaurant: %w", err)
	}
	return nil
}
