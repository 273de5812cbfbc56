// Package mail composes notification emails and hands them to the SMTP
// dispatcher. Composition is deterministic: given the same request and the
// same resolver response, the same envelope is produced.
package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mystay/email-service/internal/mail/assets"
	"github.com/mystay/email-service/internal/mail/template"
	"github.com/mystay/email-service/internal/model"
	"github.com/mystay/email-service/pkg/mailer"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/mail/mock.go -package=mocks

// ErrRecipientNotFound reports that a recipient identifier was supplied but
// no email address could be resolved for it.
var ErrRecipientNotFound = errors.New("recipient not found")

// ValidationError reports a missing or invalid request field. Nothing is
// looked up, rendered, or sent when one is returned.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// TransactionRequest is the internal command for a payment/refund email.
type TransactionRequest struct {
	MpesaReceipt  string
	PaymentTitle  string
	Amount        string
	BookingID     string
	Email         string
	RecipientID   string
	RecipientName string
	ExtraMessage  string
}

// HostRequest is the internal command for a host-listing email.
type HostRequest struct {
	HostID                      string
	HostEmail                   string
	HostName                    string
	ListingName                 string
	EmailType                   string
	RejectionReason             string
	VerificationRejectionReason string
}

type recipientResolver interface {
	Resolve(ctx context.Context, strategy retry.Strategy, id string) model.ResolvedRecipient
}

type dispatcher interface {
	Send(msg mailer.Message) (string, error)
}

// Service is the message composer: it validates requests, resolves the
// effective recipient, renders the right template variant, and performs
// exactly one dispatch per request.
type Service struct {
	resolver    recipientResolver
	mailer      dispatcher
	fromName    string
	fromAddress string
}

func NewService(r recipientResolver, d dispatcher, fromName, fromAddress string) *Service {
	return &Service{
		resolver:    r,
		mailer:      d,
		fromName:    fromName,
		fromAddress: fromAddress,
	}
}

// SendTransaction composes and dispatches a payment/refund notification.
func (s *Service) SendTransaction(ctx context.Context, strategy retry.Strategy, req TransactionRequest) (model.SendResult, error) {
	if strings.TrimSpace(req.PaymentTitle) == "" {
		return model.SendResult{}, validationf("payment_title is required")
	}
	if strings.TrimSpace(req.Amount) == "" {
		return model.SendResult{}, validationf("amount is required")
	}

	to, name, err := s.recipient(ctx, strategy, req.Email, req.RecipientID, req.RecipientName, "email", "recipient_id")
	if err != nil {
		return model.SendResult{}, err
	}

	doc, err := template.RenderTransaction(model.TransactionNotification{
		RecipientName: name,
		PaymentTitle:  req.PaymentTitle,
		MpesaReceipt:  req.MpesaReceipt,
		Amount:        req.Amount,
		BookingID:     req.BookingID,
		ExtraMessage:  req.ExtraMessage,
	})
	if err != nil {
		return model.SendResult{}, fmt.Errorf("render transaction email: %w", err)
	}

	env := model.Envelope{
		FromName:    s.fromName,
		FromAddress: s.fromAddress,
		To:          to,
		Subject:     req.PaymentTitle,
		Text:        doc.Text,
		HTML:        doc.HTML,
		Inline:      assets.Inline(),
	}

	return s.dispatch(env)
}

// SendHost composes and dispatches a host-listing notification.
func (s *Service) SendHost(ctx context.Context, strategy retry.Strategy, req HostRequest) (model.SendResult, error) {
	emailType, err := model.ParseHostEmailType(req.EmailType)
	if err != nil {
		return model.SendResult{}, &ValidationError{Reason: err.Error()}
	}

	variant, _ := template.HostVariantFor(emailType)

	if variant.RequiresListing && strings.TrimSpace(req.ListingName) == "" {
		return model.SendResult{}, validationf("listing_name is required for email_type %q", emailType)
	}
	if variant.RequiresRejectionReason && strings.TrimSpace(req.RejectionReason) == "" {
		return model.SendResult{}, validationf("rejection_reason is required for email_type %q", emailType)
	}
	if variant.RequiresVerificationReason && strings.TrimSpace(req.VerificationRejectionReason) == "" {
		return model.SendResult{}, validationf("verification_rejection_reason is required for email_type %q", emailType)
	}

	to, name, err := s.recipient(ctx, strategy, req.HostEmail, req.HostID, req.HostName, "host_email", "host_id")
	if err != nil {
		return model.SendResult{}, err
	}

	doc, err := template.RenderHostNotification(model.HostNotification{
		HostName:                    name,
		ListingName:                 req.ListingName,
		EmailType:                   emailType,
		RejectionReason:             req.RejectionReason,
		VerificationRejectionReason: req.VerificationRejectionReason,
	})
	if err != nil {
		return model.SendResult{}, fmt.Errorf("render host email: %w", err)
	}

	env := model.Envelope{
		FromName:    s.fromName,
		FromAddress: s.fromAddress,
		To:          to,
		Subject:     template.HostSubject(emailType, req.ListingName),
		Text:        doc.Text,
		HTML:        doc.HTML,
		Inline:      assets.Inline(),
	}

	return s.dispatch(env)
}

// recipient applies the resolution precedence: a directly supplied address
// wins over a lookup, and a caller-supplied name wins over a resolved one.
func (s *Service) recipient(ctx context.Context, strategy retry.Strategy, email, id, name, emailField, idField string) (string, string, error) {
	if email != "" {
		return email, name, nil
	}

	if id == "" {
		return "", "", validationf("either %s or %s is required", emailField, idField)
	}

	rec := s.resolver.Resolve(ctx, strategy, id)
	if rec.Email == "" {
		return "", "", ErrRecipientNotFound
	}

	if name == "" {
		name = rec.DisplayName
	}

	return rec.Email, name, nil
}

// dispatch performs the single send attempt and maps the outcome into a
// SendResult.
func (s *Service) dispatch(env model.Envelope) (model.SendResult, error) {
	msg := mailer.Message{
		FromName:    env.FromName,
		FromAddress: env.FromAddress,
		To:          env.To,
		Subject:     env.Subject,
		Text:        env.Text,
		HTML:        env.HTML,
	}
	for _, a := range env.Inline {
		msg.Inline = append(msg.Inline, mailer.Part{
			CID:         a.CID,
			ContentType: a.ContentType,
			Data:        a.Data,
		})
	}

	id, err := s.mailer.Send(msg)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("to", env.To).Str("subject", env.Subject).Msg("failed to send email")

		return model.SendResult{
			Success:     false,
			To:          env.To,
			ErrorKind:   "transport_error",
			ErrorDetail: err.Error(),
		}, fmt.Errorf("send email: %w", err)
	}

	return model.SendResult{Success: true, To: env.To, MessageID: id}, nil
}
