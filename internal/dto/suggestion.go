package dto

type SuggestCategoryRequest struct {
	UserID string  `json:"user_id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

type SuggestCategoryResponse struct {
	SuggestedCategory string `json:"suggested_category"`
}

type RecordCorrectionRequest struct {
	UserID        string `json:"user_id"`
	ExpenseTitle  string `json:"expense_title"`
	AISuggested   string `json:"ai_suggested"`
	UserCorrected string `json:"user_corrected"`
}
