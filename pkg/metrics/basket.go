package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// BasketMetrics counts basket activity across every session.
type BasketMetrics struct {
	added    *prometheus.CounterVec
	removed  *prometheus.CounterVec
	quantity *prometheus.CounterVec
}

// NewBasketMetrics registers the basket metrics on the provided registerer.
func NewBasketMetrics(reg prometheus.Registerer) *BasketMetrics {
	if reg == nil {
		return &BasketMetrics{}
	}
	added := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_items_added_total",
		Help: "Units added to baskets via add-to-basket.",
	}, []string{"product_id"})
	removed := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_items_removed_total",
		Help: "Basket lines removed, explicitly or by reaching zero quantity.",
	}, []string{"product_id"})
	quantity := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "basket_quantity_changes_total",
		Help: "Quantity adjustments on existing basket lines.",
	}, []string{"direction"})
	reg.MustRegister(added, removed, quantity)
	return &BasketMetrics{
		added:    added,
		removed:  removed,
		quantity: quantity,
	}
}

// IncItemAdded counts one unit added for productID.
func (b *BasketMetrics) IncItemAdded(productID string) {
	if b == nil || b.added == nil {
		return
	}
	b.added.WithLabelValues(normalizeLabel(productID)).Inc()
}

// IncItemRemoved counts one removed line for productID.
func (b *BasketMetrics) IncItemRemoved(productID string) {
	if b == nil || b.removed == nil {
		return
	}
	b.removed.WithLabelValues(normalizeLabel(productID)).Inc()
}

// IncQuantityChanged counts a quantity adjustment by the sign of delta.
func (b *BasketMetrics) IncQuantityChanged(delta int) {
	if b == nil || b.quantity == nil || delta == 0 {
		return
	}
	direction := "increment"
	if delta < 0 {
		direction = "decrement"
	}
	b.quantity.WithLabelValues(direction).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
