package models

import (
	"fmt"
	"strings"
	"time"
)

// Order is a single purchase record as returned by the orders API.
// Orders are read-only on the client side and replaced wholesale on
// each fetch; the API's ordering is preserved as-is.
type Order struct {
	OrderID       string  `json:"orderId"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
	CreatedAt     string  `json:"createdAt"`
}

// OrdersResult is the response envelope of the orders endpoint.
// Either Data or Error is set; an empty Data with no Error is a
// legitimate empty result.
type OrdersResult struct {
	Data  []Order `json:"data"`
	Error string  `json:"error,omitempty"`
}

// PaymentResponse is the payment system's per-order settlement status.
type PaymentResponse struct {
	Order  string `json:"order"`
	Status string `json:"status"` // PAID, PENDING, FAILED
}

// Visual categories for status badges.
const (
	CategorySuccess = "success"
	CategoryPending = "pending"
	CategoryFailed  = "failed"
	CategoryNeutral = "neutral"
)

// VisualCategory classifies an order or payment status label into one of
// the four badge categories. Matching is case-insensitive and unknown
// labels fall back to neutral. SHIPPED intentionally has no category of
// its own, it only gets a distinct icon (see IconFor).
func VisualCategory(status string) string {
	switch strings.ToUpper(status) {
	case "COMPLETED", "DELIVERED", "PAID":
		return CategorySuccess
	case "PENDING", "PROCESSING":
		return CategoryPending
	case "CANCELLED", "FAILED":
		return CategoryFailed
	default:
		return CategoryNeutral
	}
}

// IconFor maps a status label to its glyph.
func IconFor(status string) string {
	switch strings.ToUpper(status) {
	case "COMPLETED", "DELIVERED":
		return "✓"
	case "PENDING", "PROCESSING":
		return "🕒"
	case "SHIPPED":
		return "🚚"
	case "CANCELLED", "FAILED":
		return "✖"
	default:
		return "📦"
	}
}

// FormatMoney renders an amount with the shop currency and two decimals.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("€%.2f", amount)
}

const displayTimeLayout = "02 Jan 2006, 15:04"

// FormatOrderDate renders a created-at timestamp for display. The layout
// is fixed (English month abbreviations) regardless of the user's locale.
// An unparseable value is shown verbatim rather than dropped.
func FormatOrderDate(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format(displayTimeLayout)
}

// ShortOrderID truncates an order identifier for list rows: "#" plus the
// first 8 characters and an ellipsis. Short identifiers are kept whole.
func ShortOrderID(id string) string {
	if len(id) <= 8 {
		return "#" + id
	}
	return "#" + id[:8] + "..."
}
