package dto

import "time"

type SMSOrderRequestDTO struct {
	Service  string `json:"service" example:"tg"`
	Country  string `json:"country" example:"0"`
	Operator string `json:"operator" example:"any"`
}

type SMSOrderResponseDTO struct {
	OrderID   int64   `json:"order_id" example:"5"`
	Phone     string  `json:"phone" example:"+79001234567"`
	Price     float64 `json:"price" example:"90"`
	ExpiresIn int64   `json:"expires_in" example:"1500"`
}

type SMSStatusResponseDTO struct {
	OrderID   int64     `json:"order_id" example:"5"`
	Phone     string    `json:"phone" example:"+79001234567"`
	Status    string    `json:"status" example:"WAITING"`
	Code      *string   `json:"code,omitempty" example:"1234"`
	ExpiresAt time.Time `json:"expires_at"`
}

type AllowedServiceDTO struct {
	Key  string `json:"key" example:"tg"`
	Name string `json:"name" example:"Telegram"`
}
