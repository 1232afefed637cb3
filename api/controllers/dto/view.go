package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pradom/storefront/internal/storefront"
)

// Money renders a GBP amount with two decimals, as shown on the storefront.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

type LineItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Weight    string `json:"weight"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
	Image     string `json:"image,omitempty"`
}

type Basket struct {
	Items          []LineItem `json:"items"`
	DeliveryMethod string     `json:"delivery_method"`
	Currency       string     `json:"currency"`
	Subtotal       string     `json:"subtotal"`
	DeliveryFee    string     `json:"delivery_fee"`
	Total          string     `json:"total"`
	ItemCount      int        `json:"item_count"`
	LineCount      int        `json:"line_count"`
}

type Session struct {
	SessionID  string `json:"session_id"`
	Category   string `json:"category"`
	Query      string `json:"query"`
	BasketOpen bool   `json:"basket_open"`
	MenuOpen   bool   `json:"menu_open"`
	Basket     Basket `json:"basket"`
}

func NewBasket(view storefront.BasketView) Basket {
	items := make([]LineItem, 0, len(view.Items))
	for _, item := range view.Items {
		items = append(items, LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Weight:    item.Weight,
			Price:     Money(item.Price),
			Quantity:  item.Quantity,
			LineTotal: Money(item.LineTotal()),
			Image:     item.Image,
		})
	}
	return Basket{
		Items:          items,
		DeliveryMethod: string(view.DeliveryMethod),
		Currency:       string(view.Currency),
		Subtotal:       Money(view.Subtotal),
		DeliveryFee:    Money(view.DeliveryFee),
		Total:          Money(view.Total),
		ItemCount:      view.ItemCount,
		LineCount:      view.LineCount,
	}
}

func NewSession(view *storefront.View) Session {
	return Session{
		SessionID:  view.SessionID,
		Category:   view.Category,
		Query:      view.Query,
		BasketOpen: view.BasketOpen,
		MenuOpen:   view.MenuOpen,
		Basket:     NewBasket(view.Basket),
	}
}
