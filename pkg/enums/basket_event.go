package enums

// BasketEventType names the notifications a basket emits to its observers.
type BasketEventType string

const (
	BasketEventItemAdded             BasketEventType = "item_added"
	BasketEventQuantityChanged       BasketEventType = "quantity_changed"
	BasketEventItemRemoved           BasketEventType = "item_removed"
	BasketEventDeliveryMethodChanged BasketEventType = "delivery_method_changed"
)

// String implements fmt.Stringer.
func (b BasketEventType) String() string {
	return string(b)
}
