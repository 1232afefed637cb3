// Package basket implements the shopping basket: line items keyed by product and option,
// quantity adjustment, and the derived subtotal, fee and total.
package basket

import (
	"math"

	"github.com/pradom/storefront/internal/catalog"
	"github.com/pradom/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

var deliveryFee = decimal.NewFromInt(7)

// FeeFor returns the fixed surcharge for a delivery method. Unknown methods carry no fee.
func FeeFor(method enums.DeliveryMethod) decimal.Decimal {
	if method == enums.DeliveryMethodDelivery {
		return deliveryFee
	}
	return decimal.Zero
}

// Key identifies a line item. No two line items in a basket share a Key.
type Key struct {
	ProductID string
	Weight    string
}

// LineItem is one basket entry. Price is the option price captured when the entry was created.
type LineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Weight    string          `json:"weight"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

func (l LineItem) Key() Key {
	return Key{ProductID: l.ProductID, Weight: l.Weight}
}

// LineTotal is Price multiplied by Quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Basket is a single shopper's basket. It is not safe for concurrent use; callers
// serialize access per session.
type Basket struct {
	items          []LineItem
	deliveryMethod enums.DeliveryMethod
	observers      []Observer
}

// New returns an empty basket set up for delivery.
func New() *Basket {
	return &Basket{deliveryMethod: enums.DeliveryMethodDelivery}
}

// Subscribe registers o to receive every event emitted after this call.
func (b *Basket) Subscribe(o Observer) {
	if o == nil {
		return
	}
	b.observers = append(b.observers, o)
}

// AddItem adds one unit of option. An existing line for the same product and option keeps
// its original price and gains one unit; otherwise a new line is appended.
func (b *Basket) AddItem(product catalog.Product, option catalog.ProductOption) LineItem {
	key := Key{ProductID: product.ID, Weight: option.Weight}
	if idx := b.indexOf(key); idx >= 0 {
		before := b.items[idx].Quantity
		b.items[idx].Quantity = addQuantity(before, 1)
		item := b.items[idx]
		b.emit(Event{Type: enums.BasketEventItemAdded, Item: item, Delta: item.Quantity - before})
		return item
	}

	item := LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		Weight:    option.Weight,
		Price:     option.Price,
		Quantity:  1,
		Image:     product.Image,
	}
	b.items = append(b.items, item)
	b.emit(Event{Type: enums.BasketEventItemAdded, Item: item, Delta: 1})
	return item
}

// UpdateQuantity shifts the quantity of the matching line by delta, clamping at zero and
// saturating at math.MaxInt. A line that reaches zero is removed. Unknown keys are ignored.
func (b *Basket) UpdateQuantity(productID, weight string, delta int) {
	idx := b.indexOf(Key{ProductID: productID, Weight: weight})
	if idx < 0 || delta == 0 {
		return
	}

	before := b.items[idx]
	qty := max(0, addQuantity(before.Quantity, delta))
	if qty == 0 {
		b.items = append(b.items[:idx], b.items[idx+1:]...)
		b.emit(Event{Type: enums.BasketEventItemRemoved, Item: before, Delta: -before.Quantity})
		return
	}

	if qty == before.Quantity {
		return
	}
	b.items[idx].Quantity = qty
	b.emit(Event{Type: enums.BasketEventQuantityChanged, Item: b.items[idx], Delta: qty - before.Quantity})
}

// RemoveItem drops the matching line if present.
func (b *Basket) RemoveItem(productID, weight string) {
	idx := b.indexOf(Key{ProductID: productID, Weight: weight})
	if idx < 0 {
		return
	}
	removed := b.items[idx]
	b.items = append(b.items[:idx], b.items[idx+1:]...)
	b.emit(Event{Type: enums.BasketEventItemRemoved, Item: removed, Delta: -removed.Quantity})
}

// SetDeliveryMethod switches between delivery and pickup. Invalid methods are ignored.
func (b *Basket) SetDeliveryMethod(method enums.DeliveryMethod) {
	if !method.IsValid() || method == b.DeliveryMethod() {
		return
	}
	b.deliveryMethod = method
	b.emit(Event{Type: enums.BasketEventDeliveryMethodChanged, DeliveryMethod: method})
}

// DeliveryMethod returns the current method, delivery by default.
func (b *Basket) DeliveryMethod() enums.DeliveryMethod {
	if !b.deliveryMethod.IsValid() {
		return enums.DeliveryMethodDelivery
	}
	return b.deliveryMethod
}

// Items returns a copy of the line items in insertion order.
func (b *Basket) Items() []LineItem {
	return append([]LineItem(nil), b.items...)
}

// Item returns the line for productID and weight.
func (b *Basket) Item(productID, weight string) (LineItem, bool) {
	idx := b.indexOf(Key{ProductID: productID, Weight: weight})
	if idx < 0 {
		return LineItem{}, false
	}
	return b.items[idx], true
}

// Subtotal sums price times quantity over every line.
func (b *Basket) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range b.items {
		sum = sum.Add(item.LineTotal())
	}
	return sum
}

// Total is Subtotal plus the fee for method.
func (b *Basket) Total(method enums.DeliveryMethod) decimal.Decimal {
	return b.Subtotal().Add(FeeFor(method))
}

// DeliveryFee is the fee for the current delivery method.
func (b *Basket) DeliveryFee() decimal.Decimal {
	return FeeFor(b.DeliveryMethod())
}

// GrandTotal is the total for the current delivery method.
func (b *Basket) GrandTotal() decimal.Decimal {
	return b.Total(b.DeliveryMethod())
}

// ItemCount sums the quantities of every line, saturating at math.MaxInt.
func (b *Basket) ItemCount() int {
	count := 0
	for _, item := range b.items {
		count = addQuantity(count, item.Quantity)
	}
	return count
}

// LineCount is the number of distinct lines.
func (b *Basket) LineCount() int {
	return len(b.items)
}

// IsEmpty reports whether the basket has no lines.
func (b *Basket) IsEmpty() bool {
	return len(b.items) == 0
}

func (b *Basket) indexOf(key Key) int {
	for i, item := range b.items {
		if item.ProductID == key.ProductID && item.Weight == key.Weight {
			return i
		}
	}
	return -1
}

func (b *Basket) emit(ev Event) {
	for _, o := range b.observers {
		o.BasketEvent(ev)
	}
}

// addQuantity returns q+delta, pinned to math.MaxInt or math.MinInt instead of wrapping.
func addQuantity(q, delta int) int {
	switch {
	case delta > 0 && q > math.MaxInt-delta:
		return math.MaxInt
	case delta < 0 && q < math.MinInt-delta:
		return math.MinInt
	}
	return q + delta
}
