package dto

type MonthlyAnalyticsItem struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

type CategoryAnalyticsItem struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
