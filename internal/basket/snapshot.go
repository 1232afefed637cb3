package basket

import "github.com/pradom/storefront/pkg/enums"

// Snapshot is the serializable form of a basket, used by session stores.
type Snapshot struct {
	Items          []LineItem           `json:"items"`
	DeliveryMethod enums.DeliveryMethod `json:"delivery_method"`
}

// Snapshot copies the basket state. Observers are not part of it.
func (b *Basket) Snapshot() Snapshot {
	return Snapshot{
		Items:          b.Items(),
		DeliveryMethod: b.DeliveryMethod(),
	}
}

// Restore rebuilds a basket from a snapshot. Lines with a non-positive quantity are dropped
// and repeated keys are folded into the first occurrence.
func Restore(s Snapshot) *Basket {
	b := New()
	if s.DeliveryMethod.IsValid() {
		b.deliveryMethod = s.DeliveryMethod
	}
	for _, item := range s.Items {
		if item.Quantity <= 0 {
			continue
		}
		if idx := b.indexOf(item.Key()); idx >= 0 {
			b.items[idx].Quantity = addQuantity(b.items[idx].Quantity, item.Quantity)
			continue
		}
		b.items = append(b.items, item)
	}
	return b
}
