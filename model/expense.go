package model

import "time"

// Expense categories shown in the day detail form.
var ExpenseCategories = []string{"Makan", "Tiket", "Bensin", "Hotel", "Belanja", "Lainnya"}

// CreateExpensePayload is the data the app sends when recording a cost.
type CreateExpensePayload struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"min=0"`
	Category string  `json:"category" binding:"required,oneof=Makan Tiket Bensin Hotel Belanja Lainnya"`
	PaidBy   string  `json:"paid_by" binding:"required"`
}

// Expense is one spending record as stored in Firestore.
type Expense struct {
	ID         string    `json:"id" firestore:"-"`
	Title      string    `json:"title" firestore:"title"`
	Amount     float64   `json:"amount" firestore:"amount"`
	Category   string    `json:"category" firestore:"category"`
	PaidBy     string    `json:"paid_by" firestore:"paid_by"`
	Date       time.Time `json:"date" firestore:"date"`
	DateString string    `json:"dateString" firestore:"dateString"`
}
