package basket

import "github.com/pradom/storefront/pkg/enums"

// Event describes a basket change. Item is the line after the change, or the line as it
// was just before removal. Delta is the signed change in units.
type Event struct {
	Type           enums.BasketEventType
	Item           LineItem
	Delta          int
	DeliveryMethod enums.DeliveryMethod
}

// Observer receives basket events synchronously, after the change is applied.
type Observer interface {
	BasketEvent(Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Event)

func (f ObserverFunc) BasketEvent(ev Event) {
	f(ev)
}
