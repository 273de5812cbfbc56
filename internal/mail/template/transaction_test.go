package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mystay/email-service/internal/model"
)

func TestIsRefundTitle(t *testing.T) {
	tests := []struct {
		title string
		want  bool
	}{
		{"Booking Refund Issued", true},
		{"REFUND for March", true},
		{"Payment Reversal", true},
		{"Deposit reimbursement", true},
		{"Booking Payment Received", false},
		{"Rent Payment", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsRefundTitle(tt.title), "title %q", tt.title)
	}
}

func TestRenderTransaction_RefundCopy(t *testing.T) {
	doc, err := RenderTransaction(model.TransactionNotification{
		RecipientName: "Jane Doe",
		PaymentTitle:  "Booking Refund Issued",
		Amount:        "KES 1200",
	})
	assert.NoError(t, err)

	assert.Contains(t, doc.HTML, "Refund Processed")
	assert.Contains(t, doc.HTML, "Refund Amount")
	assert.NotContains(t, doc.HTML, "Amount Paid")
	assert.Contains(t, doc.Text, "Refund Amount: KES 1200")
}

func TestRenderTransaction_PaymentCopy(t *testing.T) {
	doc, err := RenderTransaction(model.TransactionNotification{
		RecipientName: "Jane Doe",
		PaymentTitle:  "Booking Payment Received",
		Amount:        "KES 5000",
	})
	assert.NoError(t, err)

	assert.Contains(t, doc.HTML, "Payment Received")
	assert.Contains(t, doc.HTML, "Amount Paid")
	assert.NotContains(t, doc.HTML, "Refund Amount")
	assert.Contains(t, doc.Text, "Amount Paid: KES 5000")
}

func TestRenderTransaction_GreetingFallback(t *testing.T) {
	doc, err := RenderTransaction(model.TransactionNotification{
		PaymentTitle: "Rent Payment",
		Amount:       "KES 5000",
	})
	assert.NoError(t, err)

	assert.Contains(t, doc.HTML, "Hi there,")
	assert.Contains(t, doc.Text, "Hi there,")
}

func TestRenderTransaction_OmitsReceiptRowWhenAbsent(t *testing.T) {
	doc, err := RenderTransaction(model.TransactionNotification{
		RecipientName: "Jane",
		PaymentTitle:  "Rent Payment",
		Amount:        "KES 5000",
	})
	assert.NoError(t, err)

	assert.NotContains(t, doc.HTML, "M-Pesa Receipt")
	assert.NotContains(t, doc.Text, "M-Pesa Receipt")
}

func TestRenderTransaction_OptionalRows(t *testing.T) {
	doc, err := RenderTransaction(model.TransactionNotification{
		RecipientName: "Jane",
		PaymentTitle:  "Rent Payment",
		MpesaReceipt:  "QAB12CD34E",
		Amount:        "KES 5000",
		BookingID:     "bk-42",
		ExtraMessage:  "Your booking is confirmed.",
	})
	assert.NoError(t, err)

	assert.Contains(t, doc.HTML, "QAB12CD34E")
	assert.Contains(t, doc.HTML, "bk-42")
	assert.Contains(t, doc.HTML, "Your booking is confirmed.")
	assert.Contains(t, doc.Text, "M-Pesa Receipt: QAB12CD34E")
	assert.Contains(t, doc.Text, "Booking ID: bk-42")
	assert.Contains(t, doc.Text, "Note: Your booking is confirmed.")
}

func TestRenderTransaction_EscapesHTMLOnly(t *testing.T) {
	payload := `<script>alert("x")</script>`

	doc, err := RenderTransaction(model.TransactionNotification{
		RecipientName: payload,
		PaymentTitle:  "Rent Payment",
		Amount:        "KES 5000",
		ExtraMessage:  payload,
	})
	assert.NoError(t, err)

	assert.NotContains(t, doc.HTML, "<script>")
	assert.Contains(t, doc.HTML, "&lt;script&gt;")
	assert.Contains(t, doc.Text, payload)
}
