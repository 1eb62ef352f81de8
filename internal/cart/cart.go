// Package cart holds the client-side, pre-checkout aggregation of dish
// selections. Each line caches a copy of the dish's display fields as they
// were when the dish was added; catalog edits afterwards do not touch it,
// mirroring the denormalized line items a checkout produces.
package cart

import (
	"encoding/json"

	"github.com/falvarado7/grubdash/internal/domain"
)

type Item struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Price       int    `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Cart is a single-writer, single-reader structure scoped to one client
// session. Every mutation is persisted to the slot fire-and-forget; load is
// best-effort and a corrupt or unreadable slot reads as an empty cart.
type Cart struct {
	slot  Slot
	items []Item
}

func New(slot Slot) *Cart {
	c := &Cart{slot: slot, items: []Item{}}
	if slot == nil {
		return c
	}
	raw, err := slot.Load()
	if err != nil || len(raw) == 0 {
		return c
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return c
	}
	c.items = items
	return c
}

func (c *Cart) persist() {
	if c.slot == nil {
		return
	}
	raw, err := json.Marshal(c.items)
	if err != nil {
		return
	}
	_ = c.slot.Save(raw)
}

// Add merges qty into an existing line for the same dish id or appends a
// new line carrying the dish's current display fields.
func (c *Cart) Add(dish domain.Dish, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.items {
		if c.items[i].ID == dish.ID {
			c.items[i].Quantity += qty
			c.persist()
			return
		}
	}
	c.items = append(c.items, Item{
		ID:          dish.ID,
		Name:        dish.Name,
		Description: dish.Description,
		ImageURL:    dish.ImageURL,
		Price:       dish.Price,
		Quantity:    qty,
	})
	c.persist()
}

// UpdateQuantity sets a line's quantity, flooring at zero; a zero quantity
// removes the line.
func (c *Cart) UpdateQuantity(dishID, qty int) {
	if qty < 0 {
		qty = 0
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID == dishID {
			item.Quantity = qty
		}
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

func (c *Cart) Remove(dishID int) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != dishID {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.persist()
}

func (c *Cart) Clear() {
	c.items = c.items[:0]
	c.persist()
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Total() int {
	total := 0
	for _, item := range c.items {
		total += item.Price * item.Quantity
	}
	return total
}

// Checkout builds the order-creation payload from the cart's cached dish
// copies. The caller clears the cart once the order is accepted.
func (c *Cart) Checkout(deliverTo, mobileNumber string) domain.Order {
	order := domain.Order{
		DeliverTo:    deliverTo,
		MobileNumber: mobileNumber,
		Dishes:       []domain.OrderDish{},
	}
	for _, item := range c.items {
		order.Dishes = append(order.Dishes, domain.OrderDish{
			Name:        item.Name,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}
	return order
}
