package template

import (
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/mystay/email-service/internal/model"
)

// refundMarkers classify a payment title as refund-flavored. The match is
// case-insensitive and positional-independent, and must be derived the same
// way anywhere the title is inspected.
var refundMarkers = []string{"refund", "reversal", "reimbursement"}

// IsRefundTitle reports whether a payment title selects the refund copy.
func IsRefundTitle(title string) bool {
	t := strings.ToLower(title)
	for _, m := range refundMarkers {
		if strings.Contains(t, m) {
			return true
		}
	}
	return false
}

// transactionCopy is the variant-specific wording consumed by the shared
// transaction layout.
type transactionCopy struct {
	banner      string
	amountLabel string
	lead        string
	closing     string
}

func transactionCopyFor(n model.TransactionNotification) transactionCopy {
	if IsRefundTitle(n.PaymentTitle) {
		return transactionCopy{
			banner:      "Refund Processed",
			amountLabel: "Refund Amount",
			lead:        fmt.Sprintf("Your refund for %s has been processed.", n.PaymentTitle),
			closing:     "The amount should reflect in your account shortly.",
		}
	}

	return transactionCopy{
		banner:      "Payment Received",
		amountLabel: "Amount Paid",
		lead:        fmt.Sprintf("We have received your payment for %s.", n.PaymentTitle),
		closing:     "Thank you for choosing MyStay.",
	}
}

type transactionData struct {
	Name         string
	Banner       string
	Lead         string
	AmountLabel  string
	Amount       string
	Receipt      string
	BookingID    string
	ExtraMessage string
	Closing      string
}

const transactionHTMLLayout = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:0;background-color:#f5f5f5;font-family:Arial,Helvetica,sans-serif;">
<table width="100%" cellpadding="0" cellspacing="0" style="max-width:600px;margin:0 auto;background-color:#ffffff;">
  <tr>
    <td style="padding:24px;text-align:center;background-color:#1a6b54;">
      <img src="cid:mystay-icon" alt="MyStay" width="48" height="48">
      <h1 style="color:#ffffff;font-size:22px;margin:12px 0 0;">{{.Banner}}</h1>
    </td>
  </tr>
  <tr>
    <td style="padding:16px;text-align:center;">
      <img src="cid:checkmark-icon" alt="" width="40" height="40">
    </td>
  </tr>
  <tr>
    <td style="padding:0 32px;">
      <p style="font-size:16px;color:#333333;">Hi {{.Name}},</p>
      <p style="font-size:15px;color:#333333;">{{.Lead}}</p>
    </td>
  </tr>
  <tr>
    <td style="padding:16px 32px;">
      <table width="100%" cellpadding="8" cellspacing="0" style="background-color:#f7faf9;border-radius:6px;">
        <tr>
          <td style="font-size:14px;color:#666666;">{{.AmountLabel}}</td>
          <td style="font-size:14px;color:#1a6b54;text-align:right;font-weight:bold;">{{.Amount}}</td>
        </tr>
{{- if .Receipt}}
        <tr>
          <td style="font-size:14px;color:#666666;{{if .BookingID}}border-bottom:1px solid #e5e5e5;{{end}}">M-Pesa Receipt</td>
          <td style="font-size:14px;color:#333333;text-align:right;{{if .BookingID}}border-bottom:1px solid #e5e5e5;{{end}}">{{.Receipt}}</td>
        </tr>
{{- end}}
{{- if .BookingID}}
        <tr>
          <td style="font-size:14px;color:#666666;">Booking ID</td>
          <td style="font-size:14px;color:#333333;text-align:right;">{{.BookingID}}</td>
        </tr>
{{- end}}
      </table>
    </td>
  </tr>
{{- if .ExtraMessage}}
  <tr>
    <td style="padding:0 32px 16px;">
      <p style="font-size:14px;color:#333333;background-color:#fff8e6;border-left:4px solid #e6b800;padding:12px;border-radius:4px;">{{.ExtraMessage}}</p>
    </td>
  </tr>
{{- end}}
  <tr>
    <td style="padding:0 32px 24px;">
      <p style="font-size:15px;color:#333333;">{{.Closing}}</p>
      <p style="font-size:13px;color:#999999;">The MyStay Team</p>
    </td>
  </tr>
</table>
</body>
</html>
`

const transactionTextLayout = `Hi {{.Name}},

{{.Lead}}

{{.AmountLabel}}: {{.Amount}}
{{- if .Receipt}}
M-Pesa Receipt: {{.Receipt}}
{{- end}}
{{- if .BookingID}}
Booking ID: {{.BookingID}}
{{- end}}
{{- if .ExtraMessage}}

Note: {{.ExtraMessage}}
{{- end}}

{{.Closing}}

The MyStay Team
`

var (
	transactionHTML = htmltemplate.Must(htmltemplate.New("transaction").Parse(transactionHTMLLayout))
	transactionText = texttemplate.Must(texttemplate.New("transaction").Parse(transactionTextLayout))
)

// RenderTransaction renders the payment/refund email for the given input.
func RenderTransaction(n model.TransactionNotification) (Document, error) {
	c := transactionCopyFor(n)

	data := transactionData{
		Name:         greetingName(n.RecipientName),
		Banner:       c.banner,
		Lead:         c.lead,
		AmountLabel:  c.amountLabel,
		Amount:       n.Amount,
		Receipt:      n.MpesaReceipt,
		BookingID:    n.BookingID,
		ExtraMessage: n.ExtraMessage,
		Closing:      c.closing,
	}

	html, err := execHTML(transactionHTML, data)
	if err != nil {
		return Document{}, err
	}

	text, err := execText(transactionText, data)
	if err != nil {
		return Document{}, err
	}

	return Document{HTML: html, Text: text}, nil
}
