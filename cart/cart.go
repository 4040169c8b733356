// Package cart holds the client-side order basket and its persistence.
package cart

import (
	"restaurant-bot/models"
	"restaurant-bot/pricing"
)

// Line is one aggregated entry per menu item
type Line struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

func (l Line) UnitPrice() int64 { return l.Price }
func (l Line) Count() int       { return l.Quantity }

// Catalog resolves menu items from whatever subset of the menu is loaded
type Catalog interface {
	Lookup(id string) (models.MenuItem, bool)
}

// Menu is a Catalog backed by a loaded menu listing
type Menu []models.MenuItem

func (m Menu) Lookup(id string) (models.MenuItem, bool) {
	for _, item := range m {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

// Cart keeps lines in insertion order with at most one line per menu item
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add increments the line for id, creating it from the catalog snapshot when
// absent. Unknown ids are ignored; the return value reports whether the cart changed.
func (c *Cart) Add(catalog Catalog, id string) bool {
	if i := c.index(id); i >= 0 {
		c.Lines[i].Quantity++
		return true
	}
	item, ok := catalog.Lookup(id)
	if !ok {
		return false
	}
	c.Lines = append(c.Lines, Line{
		MenuItemID: item.ID,
		Name:       item.Name,
		Price:      item.Price,
		Quantity:   1,
	})
	return true
}

// Remove decrements the line for id and drops it once the quantity reaches zero
func (c *Cart) Remove(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	if c.Lines[i].Quantity > 1 {
		c.Lines[i].Quantity--
		return true
	}
	c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	return true
}

func (c *Cart) QuantityOf(id string) int {
	if i := c.index(id); i >= 0 {
		return c.Lines[i].Quantity
	}
	return 0
}

func (c *Cart) Empty() bool { return len(c.Lines) == 0 }

// ItemCount is the number of units across all lines
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// Quote is the client-side preview; the server recomputes it on submission
func (c *Cart) Quote(deliveryType models.DeliveryType) pricing.Quote {
	return pricing.Calculate(c.Lines, deliveryType)
}

// OrderItems snapshots the lines for an order submission
func (c *Cart) OrderItems() []models.OrderItem {
	out := make([]models.OrderItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		out = append(out, models.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Price:      l.Price,
			Quantity:   l.Quantity,
		})
	}
	return out
}

func (c *Cart) index(id string) int {
	for i, l := range c.Lines {
		if l.MenuItemID == id {
			return i
		}
	}
	return -1
}
