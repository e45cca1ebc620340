package model

// AppConfig is the singleton settings document (config/app_settings).
type AppConfig struct {
	TotalBudget float64 `json:"total_budget" firestore:"total_budget"`
}

// UpdateBudgetPayload uses a pointer so an explicit zero budget is accepted.
type UpdateBudgetPayload struct {
	TotalBudget *float64 `json:"total_budget" binding:"required,gte=0"`
}
