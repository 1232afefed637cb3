package basket

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Weight    string `json:"weight" validate:"max=64"`
}

type updateQuantityRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
	Weight    string `json:"weight" validate:"required,max=64"`
	Delta     int    `json:"delta"`
}

type deliveryMethodRequest struct {
	Method string `json:"method" validate:"required,delivery_method"`
}
