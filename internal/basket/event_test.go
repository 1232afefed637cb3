package basket

import (
	"testing"

	"github.com/pradom/storefront/pkg/enums"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	events []Event
}

func (r *recorder) BasketEvent(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []enums.BasketEventType {
	out := make([]enums.BasketEventType, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func TestObserversReceiveEvents(t *testing.T) {
	rec := &recorder{}
	b := New()
	b.Subscribe(rec)

	b.AddItem(mamaGold, opt(mamaGold, "2kg"))
	b.AddItem(mamaGold, opt(mamaGold, "2kg"))
	b.UpdateQuantity("mama-gold-rice", "2kg", 3)
	b.UpdateQuantity("mama-gold-rice", "2kg", -10)
	b.AddItem(cola, opt(cola, "Can"))
	b.RemoveItem("coca-cola", "Can")
	b.SetDeliveryMethod(enums.DeliveryMethodPickup)

	assert.Equal(t, []enums.BasketEventType{
		enums.BasketEventItemAdded,
		enums.BasketEventItemAdded,
		enums.BasketEventQuantityChanged,
		enums.BasketEventItemRemoved,
		enums.BasketEventItemAdded,
		enums.BasketEventItemRemoved,
		enums.BasketEventDeliveryMethodChanged,
	}, rec.types())

	require.Len(t, rec.events, 7)
	assert.Equal(t, 2, rec.events[1].Item.Quantity)
	assert.Equal(t, 3, rec.events[2].Delta)
	assert.Equal(t, 5, rec.events[2].Item.Quantity)
	assert.Equal(t, -5, rec.events[3].Delta)
	assert.Equal(t, enums.DeliveryMethodPickup, rec.events[6].DeliveryMethod)
}

func TestNoopsEmitNothing(t *testing.T) {
	rec := &recorder{}
	b := New()
	b.Subscribe(rec)

	b.UpdateQuantity("ghost", "1kg", 1)
	b.RemoveItem("ghost", "1kg")
	b.SetDeliveryMethod(enums.DeliveryMethodDelivery)
	b.AddItem(cola, opt(cola, "Can"))
	b.UpdateQuantity("coca-cola", "Can", 0)

	assert.Equal(t, []enums.BasketEventType{enums.BasketEventItemAdded}, rec.types())
}

func TestObserverFunc(t *testing.T) {
	var added int
	b := New()
	b.Subscribe(ObserverFunc(func(ev Event) {
		if ev.Type == enums.BasketEventItemAdded {
			added++
		}
	}))
	b.Subscribe(nil)

	b.AddItem(cola, opt(cola, "Can"))
	b.AddItem(cola, opt(cola, "Bottle"))
	assert.Equal(t, 2, added)
}
