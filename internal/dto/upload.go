package dto

type ImportResult struct {
	ExpensesAdded int               `json:"expenses_added"`
	Errors        []string          `json:"errors"`
	Data          []ExpenseResponse `json:"data"`
}
