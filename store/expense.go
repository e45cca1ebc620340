package store

import (
	"context"

	"cloud.google.com/go/firestore"

	"api-holiday-a99/aggregate"
	"api-holiday-a99/model"
)

const expenseCollection = "expenses"

// ExpenseStore is the CRUD accessor for the expenses collection.
type ExpenseStore struct {
	Client *firestore.Client
}

func (s *ExpenseStore) Add(ctx context.Context, e model.Expense) (string, error) {
	ref, _, err := s.Client.Collection(expenseCollection).Add(ctx, e)
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *ExpenseStore) Delete(ctx context.Context, id string) error {
	_, err := s.Client.Collection(expenseCollection).Doc(id).Delete(ctx)
	return err
}

// ListByDate returns one day's spending, newest first.
func (s *ExpenseStore) ListByDate(ctx context.Context, dateString string) ([]model.Expense, error) {
	iter := s.Client.Collection(expenseCollection).
		Where("dateString", "==", dateString).
		Documents(ctx)
	items, err := decodeAll(iter, expenseID)
	if err != nil {
		return nil, err
	}
	aggregate.SortExpensesNewestFirst(items)
	return items, nil
}

// ListAll is the full unfiltered scan used for budget totals and the report.
func (s *ExpenseStore) ListAll(ctx context.Context) ([]model.Expense, error) {
	iter := s.Client.Collection(expenseCollection).Documents(ctx)
	return decodeAll(iter, expenseID)
}

// SubscribeByDate opens a live listener for one day's spending, newest first.
func (s *ExpenseStore) SubscribeByDate(ctx context.Context, dateString string) (<-chan []model.Expense, func()) {
	q := s.Client.Collection(expenseCollection).Where("dateString", "==", dateString)
	return watch(ctx, "expense", q, expenseID, aggregate.SortExpensesNewestFirst)
}

func expenseID(e *model.Expense, id string) { e.ID = id }
