package dto

type BalanceResponseDTO struct {
	Balance float64 `json:"balance" example:"500.5"`
}

type TopUpRequestDTO struct {
	TransactionID string `json:"transaction_id" example:"tx-20240101-0001"`
}

type TopUpResponseDTO struct {
	Reference string  `json:"reference" example:"ref-0001"`
	Amount    float64 `json:"amount" example:"500"`
}
