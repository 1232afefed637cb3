package storefront

import (
	"github.com/pradom/storefront/internal/basket"
	"github.com/pradom/storefront/pkg/enums"
)

// BasketRecorder receives basket activity for metrics. *metrics.BasketMetrics satisfies it.
type BasketRecorder interface {
	IncItemAdded(productID string)
	IncItemRemoved(productID string)
	IncQuantityChanged(delta int)
}

// RecorderObserver forwards basket events to a BasketRecorder.
func RecorderObserver(rec BasketRecorder) basket.Observer {
	return basket.ObserverFunc(func(ev basket.Event) {
		switch ev.Type {
		case enums.BasketEventItemAdded:
			rec.IncItemAdded(ev.Item.ProductID)
		case enums.BasketEventItemRemoved:
			rec.IncItemRemoved(ev.Item.ProductID)
		case enums.BasketEventQuantityChanged:
			rec.IncQuantityChanged(ev.Delta)
		}
	})
}

// eventBuffer holds basket events until the session that produced them has been saved.
type eventBuffer struct {
	events []basket.Event
}

func (e *eventBuffer) BasketEvent(ev basket.Event) {
	e.events = append(e.events, ev)
}

func (e *eventBuffer) flush(observers []basket.Observer) {
	for _, ev := range e.events {
		for _, o := range observers {
			o.BasketEvent(ev)
		}
	}
	e.events = nil
}
