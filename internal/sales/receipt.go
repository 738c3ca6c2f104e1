package sales

import (
	"fmt"
	"strings"
)

const (
	receiptWidth = 40
	receiptTitle = "  SUPERMARKET RECEIPT"
)

// Receipt renders the sale as a fixed-width text block. It is a pure
// function of the sale's current state and may be called at any point,
// including before completion (the payment line then shows N/A).
func (s *Sale) Receipt() string {
	heavy := strings.Repeat("=", receiptWidth)
	light := strings.Repeat("-", receiptWidth)

	payment := s.PaymentMethod
	if payment == "" {
		payment = "N/A"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n%s\n", heavy)
	fmt.Fprintf(&b, "%s\n", receiptTitle)
	fmt.Fprintf(&b, "%s\n", heavy)
	fmt.Fprintf(&b, "Sale ID: %s\n", s.ID)
	fmt.Fprintf(&b, "Date: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "%s\n", light)

	for _, item := range s.Items {
		fmt.Fprintf(&b, "%s x%d = $%s\n", item.Name, item.Quantity, item.Subtotal.StringFixed(2))
	}

	fmt.Fprintf(&b, "%s\n", light)
	if s.DiscountApplied.IsPositive() {
		fmt.Fprintf(&b, "Discount: -$%s\n", s.DiscountApplied.StringFixed(2))
	}
	fmt.Fprintf(&b, "Total: $%s\n", s.Total.StringFixed(2))
	fmt.Fprintf(&b, "Payment: %s\n", payment)
	fmt.Fprintf(&b, "%s\n", heavy)
	fmt.Fprintf(&b, "Thank you for shopping with us!\n")
	fmt.Fprintf(&b, "%s\n", heavy)

	return b.String()
}
