package models

// PaymentRecord mirrors a document in the "payments" collection, written
// by the payment collaborator when an order is created and updated as the
// gateway reports status. Timestamps are ISO-8601 strings as stored.
type PaymentRecord struct {
	OrderID   string  `json:"orderId" firestore:"orderId"`
	PaymentID string  `json:"paymentId" firestore:"paymentId"`
	UserID    string  `json:"userId" firestore:"userId"`
	Amount    float64 `json:"amount" firestore:"amount"`
	Currency  string  `json:"currency" firestore:"currency"`
	Status    string  `json:"status" firestore:"status"`
	CreatedAt string  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt string  `json:"updatedAt" firestore:"updatedAt"`
}
