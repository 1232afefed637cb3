package storefront

import (
	"github.com/pradom/storefront/internal/basket"
	"github.com/pradom/storefront/internal/catalog"
	"github.com/pradom/storefront/pkg/enums"
	"github.com/shopspring/decimal"
)

// State is the stored form of one shopper session.
type State struct {
	Basket     basket.Snapshot `json:"basket"`
	Category   string          `json:"category"`
	Query      string          `json:"query"`
	BasketOpen bool            `json:"basket_open"`
	MenuOpen   bool            `json:"menu_open"`
}

// NewState returns the state of a session nobody has touched yet.
func NewState() State {
	return State{
		Basket:   basket.New().Snapshot(),
		Category: catalog.AllCategories,
	}
}

func (s State) clone() State {
	out := s
	out.Basket.Items = append([]basket.LineItem(nil), s.Basket.Items...)
	return out
}

// Session is the live, mutable form of a State. Adding an item opens the basket drawer.
type Session struct {
	id         string
	basket     *basket.Basket
	category   string
	query      string
	basketOpen bool
	menuOpen   bool
}

func restoreSession(id string, st State, observers ...basket.Observer) *Session {
	s := &Session{
		id:         id,
		basket:     basket.Restore(st.Basket),
		category:   st.Category,
		query:      st.Query,
		basketOpen: st.BasketOpen,
		menuOpen:   st.MenuOpen,
	}
	if s.category == "" {
		s.category = catalog.AllCategories
	}
	s.basket.Subscribe(basket.ObserverFunc(s.onBasketEvent))
	for _, o := range observers {
		s.basket.Subscribe(o)
	}
	return s
}

func (s *Session) onBasketEvent(ev basket.Event) {
	if ev.Type == enums.BasketEventItemAdded {
		s.basketOpen = true
	}
}

func (s *Session) state() State {
	return State{
		Basket:     s.basket.Snapshot(),
		Category:   s.category,
		Query:      s.query,
		BasketOpen: s.basketOpen,
		MenuOpen:   s.menuOpen,
	}
}

// BasketView is a basket with every derived amount computed for the current delivery method.
type BasketView struct {
	Items          []basket.LineItem
	DeliveryMethod enums.DeliveryMethod
	Currency       enums.Currency
	Subtotal       decimal.Decimal
	DeliveryFee    decimal.Decimal
	Total          decimal.Decimal
	ItemCount      int
	LineCount      int
}

// View is what a presentation layer reads after every event.
type View struct {
	SessionID  string
	Basket     BasketView
	Category   string
	Query      string
	BasketOpen bool
	MenuOpen   bool
}

func (s *Session) view() *View {
	b := s.basket
	return &View{
		SessionID: s.id,
		Basket: BasketView{
			Items:          b.Items(),
			DeliveryMethod: b.DeliveryMethod(),
			Currency:       enums.CurrencyGBP,
			Subtotal:       b.Subtotal(),
			DeliveryFee:    b.DeliveryFee(),
			Total:          b.GrandTotal(),
			ItemCount:      b.ItemCount(),
			LineCount:      b.LineCount(),
		},
		Category:   s.category,
		Query:      s.query,
		BasketOpen: s.basketOpen,
		MenuOpen:   s.menuOpen,
	}
}
