// Package normalize reconciles the two field-naming conventions that exist
// for the same entities: the client's lowercase/camelCase names and the
// persistence layer's capitalized names (Name, Image_Url, DeliverTo, ...).
// Each adapter prefers the client field when present, falls back to the
// alternate name, then to a type-appropriate default, and produces one
// canonical domain value so internal logic never sees the dual shape.
//
// There is one adapter per external shape. OrderInput captures a submitted
// payload verbatim (an omitted status stays blank so the update path can
// reject it), while Order canonicalizes an order read back from the API and
// fills display defaults (pending status, quantity 1).
package normalize

import (
	"encoding/json"

	"github.com/falvarado7/grubdash/internal/domain"
)

func pickRaw(raw map[string]json.RawMessage, keys ...string) (json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok && string(v) != "null" {
			return v, true
		}
	}
	return nil, false
}

func pickString(raw map[string]json.RawMessage, fallback string, keys ...string) string {
	v, ok := pickRaw(raw, keys...)
	if !ok {
		return fallback
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return fallback
	}
	return s
}

func pickInt(raw map[string]json.RawMessage, fallback int, keys ...string) int {
	v, ok := pickRaw(raw, keys...)
	if !ok {
		return fallback
	}
	// Tolerate both 3 and 3.0: payloads round-trip numbers through JS.
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return fallback
	}
	return int(f)
}

// Dish maps a decoded payload in either convention to the canonical dish.
func Dish(raw map[string]json.RawMessage) domain.Dish {
	return domain.Dish{
		ID:          pickInt(raw, 0, "id", "Id", "ID"),
		Name:        pickString(raw, "", "name", "Name"),
		Description: pickString(raw, "", "description", "Description"),
		ImageURL:    pickString(raw, "", "image_url", "Image_Url", "imageUrl", "ImageUrl"),
		Price:       pickInt(raw, 0, "price", "Price"),
	}
}

// DishJSON decodes b and normalizes it in one step.
func DishJSON(b []byte) (domain.Dish, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.Dish{}, err
	}
	return Dish(raw), nil
}

func orderDish(raw map[string]json.RawMessage, quantityDefault int) domain.OrderDish {
	d := Dish(raw)
	return domain.OrderDish{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Price:       d.Price,
		Quantity:    pickInt(raw, quantityDefault, "quantity", "Quantity"),
	}
}

func order(raw map[string]json.RawMessage, statusDefault string, quantityDefault int) domain.Order {
	o := domain.Order{
		ID:           pickInt(raw, 0, "id", "Id", "ID"),
		DeliverTo:    pickString(raw, "", "deliverTo", "DeliverTo"),
		MobileNumber: pickString(raw, "", "mobileNumber", "MobileNumber"),
		Status:       pickString(raw, statusDefault, "status", "Status"),
		Dishes:       []domain.OrderDish{},
	}

	if v, ok := pickRaw(raw, "dishes", "Dishes"); ok {
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(v, &items); err == nil {
			for _, item := range items {
				o.Dishes = append(o.Dishes, orderDish(item, quantityDefault))
			}
		}
	}
	return o
}

// OrderInput maps a submitted order payload to the canonical shape without
// inventing values: an omitted status stays blank (creation defaults it
// later, updates reject it) and an omitted quantity stays zero (the
// lifecycle normalization clamps it to 1).
func OrderInput(raw map[string]json.RawMessage) domain.Order {
	return order(raw, "", 0)
}

// OrderInputJSON decodes b and maps it in one step.
func OrderInputJSON(b []byte) (domain.Order, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.Order{}, err
	}
	return OrderInput(raw), nil
}

// Order canonicalizes an order produced elsewhere (an API response body),
// defaulting a missing status to pending and a missing quantity to 1.
func Order(raw map[string]json.RawMessage) domain.Order {
	return order(raw, domain.StatusPending, 1)
}

// OrderJSON decodes b and canonicalizes it in one step.
func OrderJSON(b []byte) (domain.Order, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return domain.Order{}, err
	}
	return Order(raw), nil
}
