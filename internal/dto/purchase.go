package dto

import "time"

type PurchaseRequestDTO struct {
	ProductID int64 `json:"product_id" example:"1"`
}

type PurchaseResponseDTO struct {
	OrderID int64   `json:"order_id" example:"10"`
	Product string  `json:"product" example:"VPN account 1 month"`
	Price   float64 `json:"price" example:"300"`
	Details string  `json:"details" example:"LOGIN:user123\nLINK:https://example.com"`
}

type OrderResponseDTO struct {
	ID        int64     `json:"id" example:"10"`
	Type      string    `json:"type" example:"PRODUCT"`
	Name      string    `json:"name" example:"VPN account 1 month"`
	Price     float64   `json:"price" example:"300"`
	Details   string    `json:"details"`
	Status    string    `json:"status" example:"COMPLETED"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductResponseDTO struct {
	ID          int64   `json:"id" example:"1"`
	Category    string  `json:"category" example:"vpn"`
	Name        string  `json:"name" example:"VPN account 1 month"`
	Price       float64 `json:"price" example:"300"`
	Stock       int     `json:"stock" example:"5"`
	Description string  `json:"description"`
}
