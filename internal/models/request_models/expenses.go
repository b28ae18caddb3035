package request_models

type ExpenseForm struct {
	Title       string  `form:"title" binding:"required"`
	TotalAmount float64 `form:"total_amount" binding:"required"`
}

type PaymentForm struct {
	AmountPaid float64 `form:"amount_paid" binding:"required"`
}

type SplitForm struct {
	AmountOwed float64 `form:"amount_owed" binding:"required"`
}
