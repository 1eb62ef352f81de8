// Package validation holds the pure structural checks run before any dish
// or order write. Checks run in a fixed order and only the first failure's
// message is ever returned.
package validation

import (
	"fmt"
	"strings"

	"github.com/falvarado7/grubdash/internal/domain"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Dish checks a fully-assembled dish candidate. It returns nil or a
// *domain.ValidationError with the first failing rule's message.
func Dish(d *domain.Dish) error {
	if blank(d.Name) {
		return domain.NewValidationError("Dish must include a name.")
	}
	if blank(d.Description) {
		return domain.NewValidationError("Dish must include a description.")
	}
	if blank(d.ImageURL) {
		return domain.NewValidationError("Dish must include a image_url.")
	}
	if d.Price <= 0 {
		return domain.NewValidationError("Dish must have a price that is an integer greater than 0.")
	}
	return nil
}

// Order checks a fully-assembled order candidate. Status is only checked on
// updates: creation defaults a blank status to pending before this runs.
// The quantity check reports the 0-based index of the offending line item;
// the create/update paths clamp quantities to 1 first, so it only fires when
// the validator is called on an unnormalized order.
func Order(o *domain.Order, isUpdate bool) error {
	if blank(o.DeliverTo) {
		return domain.NewValidationError("Order must include a deliverTo.")
	}
	if blank(o.MobileNumber) {
		return domain.NewValidationError("Order must include a mobileNumber.")
	}
	if len(o.Dishes) == 0 {
		return domain.NewValidationError("Order must include at least one dish.")
	}
	for i := range o.Dishes {
		if o.Dishes[i].Quantity <= 0 {
			return domain.NewValidationError(
				fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0.", i))
		}
	}

	if isUpdate {
		if blank(o.Status) {
			return domain.NewValidationError("Order must have a status.")
		}
		if !domain.ValidStatus(o.Status) {
			return domain.NewValidationError(
				"Order must have a status of pending, preparing, out-for-delivery, delivered.")
		}
	}
	return nil
}
