package dto

type SMMOrderRequestDTO struct {
	Service  string `json:"service" example:"101"`
	Link     string `json:"link" example:"https://example.com/profile"`
	Quantity int    `json:"quantity" example:"1000"`
}

type SMMOrderResponseDTO struct {
	OrderID         int64   `json:"order_id" example:"7"`
	ProviderOrderID string  `json:"provider_order_id" example:"987654"`
	Price           float64 `json:"price" example:"120"`
}

type SMMServiceDTO struct {
	Service  string  `json:"service" example:"101"`
	Name     string  `json:"name" example:"Followers"`
	Category string  `json:"category" example:"social"`
	Min      int     `json:"min" example:"100"`
	Max      int     `json:"max" example:"10000"`
	Rate     float64 `json:"rate" example:"100"`
}
