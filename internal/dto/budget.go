package dto

type CreateBudgetRequest struct {
	UserID      string  `json:"user_id"`
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
	Month       string  `json:"month"`
}

type BudgetResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Category    string  `json:"category"`
	LimitAmount float64 `json:"limit_amount"`
	Month       string  `json:"month"`
	Spent       float64 `json:"spent"`
	Percentage  float64 `json:"percentage"`
}
