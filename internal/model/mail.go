package model

import "fmt"

// Role identifies which profile table holds a recipient's display name.
type Role string

const (
	RoleGuest   Role = "guest"
	RoleHost    Role = "host"
	RoleUnknown Role = "unknown"
)

// Profile is the primary profile-store row for a recipient.
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// ResolvedRecipient is the outcome of a recipient lookup. An empty Email
// means the lookup failed, regardless of DisplayName.
type ResolvedRecipient struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// HostEmailType enumerates the host notification variants.
type HostEmailType string

const (
	HostEmailSubmitted            HostEmailType = "submitted"
	HostEmailPublished            HostEmailType = "published"
	HostEmailRejected             HostEmailType = "rejected"
	HostEmailVerified             HostEmailType = "verified"
	HostEmailVerificationRejected HostEmailType = "verification_rejected"
)

// ParseHostEmailType validates a raw email_type value against the closed set.
func ParseHostEmailType(s string) (HostEmailType, error) {
	switch t := HostEmailType(s); t {
	case HostEmailSubmitted, HostEmailPublished, HostEmailRejected,
		HostEmailVerified, HostEmailVerificationRejected:
		return t, nil
	}

	return "", fmt.Errorf(
		"email_type must be one of: submitted, published, rejected, verified, verification_rejected",
	)
}

// TransactionNotification carries the fields rendered into a payment or
// refund email. Amount is an already-formatted display string.
type TransactionNotification struct {
	RecipientName string
	PaymentTitle  string
	MpesaReceipt  string
	Amount        string
	BookingID     string
	ExtraMessage  string
}

// HostNotification carries the fields rendered into a host-listing email.
type HostNotification struct {
	HostName                    string
	ListingName                 string
	EmailType                   HostEmailType
	RejectionReason             string
	VerificationRejectionReason string
}

// InlineAsset is an image embedded into the HTML body and referenced by
// content id rather than URL.
type InlineAsset struct {
	CID         string
	ContentType string
	Data        []byte
}

// Envelope is a fully composed message ready for the SMTP dispatcher.
// Built once per request, consumed exactly once, never persisted.
type Envelope struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	Text        string
	HTML        string
	Inline      []InlineAsset
}

// SendResult is returned synchronously to the caller of a send operation.
type SendResult struct {
	Success     bool   `json:"success"`
	To          string `json:"to"`
	MessageID   string `json:"message_id,omitempty"`
	ErrorKind   string `json:"error_kind,omitempty"`
	ErrorDetail string `json:"error_detail,omitempty"`
}
