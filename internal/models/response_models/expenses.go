package response_models

import (
	"tripboard/internal/models/db_models"
	"tripboard/pkg/utils"
)

type ExpenseResponse struct {
	Slug        string            `json:"slug"`
	TotalAmount float64           `json:"total_amount"`
	Payments    []PaymentResponse `json:"payments"`
	Splits      []SplitResponse   `json:"splits"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   *string           `json:"updated_at"`
}

type PaymentResponse struct {
	Slug          string  `json:"slug"`
	ParticipantID uint    `json:"participant_id"`
	AmountPaid    float64 `json:"amount_paid"`
	CreatedAt     string  `json:"created_at"`
}

type SplitResponse struct {
	Slug          string  `json:"slug"`
	ParticipantID uint    `json:"participant_id"`
	AmountOwed    float64 `json:"amount_owed"`
	CreatedAt     string  `json:"created_at"`
}

func BuildExpenseResponse(expense *db_models.Expense) *ExpenseResponse {
	payments := make([]PaymentResponse, 0, len(expense.Payments))
	for _, p := range expense.Payments {
		payments = append(payments, PaymentResponse{
			Slug:          p.Slug,
			ParticipantID: p.ParticipantID,
			AmountPaid:    p.AmountPaid,
			CreatedAt:     utils.FormatTimestamp(p.CreatedAt),
		})
	}
	splits := make([]SplitResponse, 0, len(expense.Splits))
	for _, s := range expense.Splits {
		splits = append(splits, SplitResponse{
			Slug:          s.Slug,
			ParticipantID: s.ParticipantID,
			AmountOwed:    s.AmountOwed,
			CreatedAt:     utils.FormatTimestamp(s.CreatedAt),
		})
	}
	return &ExpenseResponse{
		Slug:        expense.Slug,
		TotalAmount: expense.TotalAmount,
		Payments:    payments,
		Splits:      splits,
		CreatedAt:   utils.FormatTimestamp(expense.CreatedAt),
		UpdatedAt:   utils.FormatTimestampPtr(expense.UpdatedAt),
	}
}
