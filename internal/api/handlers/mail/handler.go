package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/mystay/email-service/internal/api/respond"
	"github.com/mystay/email-service/internal/config"
	"github.com/mystay/email-service/internal/model"
	mailsvc "github.com/mystay/email-service/internal/service/mail"
)

// mailService defines the composer operations the Handler depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/mail/mock.go -package=mocks
type mailService interface {
	SendTransaction(ctx context.Context, strategy retry.Strategy, req mailsvc.TransactionRequest) (model.SendResult, error)
	SendHost(ctx context.Context, strategy retry.Strategy, req mailsvc.HostRequest) (model.SendResult, error)
}

// Handler handles HTTP requests for sending notification emails.
type Handler struct {
	service   mailService
	validator *validator.Validate
	cfg       *config.Config
}

// NewHandler creates a new Handler instance.
func NewHandler(s mailService, v *validator.Validate, cfg *config.Config) *Handler {
	return &Handler{service: s, validator: v, cfg: cfg}
}

// TransactionRequest represents the JSON body of a payment/refund send.
// Amount may arrive as a string or a number; it is displayed verbatim and
// never parsed numerically. A zero amount is still a present amount, so the
// field carries no required tag; absence surfaces as a validation error from
// the composer once the display string comes up empty.
type TransactionRequest struct {
	MpesaReceipt  string      `json:"mpesa_receipt"`
	PaymentTitle  string      `json:"payment_title" validate:"required"`
	Amount        interface{} `json:"amount"`
	BookingID     string      `json:"booking_id"`
	Email         string      `json:"email"`
	RecipientID   string      `json:"recipient_id"`
	RecipientName string      `json:"recipient_name"`
	ExtraMessage  string      `json:"extra_message"`
}

// HostRequest represents the JSON body of a host-listing send.
type HostRequest struct {
	HostID                      string `json:"host_id"`
	HostEmail                   string `json:"host_email"`
	HostName                    string `json:"host_name"`
	ListingName                 string `json:"listing_name"`
	EmailType                   string `json:"email_type" validate:"required"`
	RejectionReason             string `json:"rejection_reason"`
	VerificationRejectionReason string `json:"verification_rejection_reason"`
}

// SendTransaction handles HTTP POST requests for payment/refund emails.
func (h *Handler) SendTransaction(c *ginext.Context) {
	var req TransactionRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.SendTransaction(c.Request.Context(), h.cfg.Retry, mailsvc.TransactionRequest{
		MpesaReceipt:  req.MpesaReceipt,
		PaymentTitle:  req.PaymentTitle,
		Amount:        displayAmount(req.Amount),
		BookingID:     req.BookingID,
		Email:         req.Email,
		RecipientID:   req.RecipientID,
		RecipientName: req.RecipientName,
		ExtraMessage:  req.ExtraMessage,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c.Writer, result)
}

// SendHost handles HTTP POST requests for host-listing emails.
func (h *Handler) SendHost(c *ginext.Context) {
	var req HostRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.service.SendHost(c.Request.Context(), h.cfg.Retry, mailsvc.HostRequest{
		HostID:                      req.HostID,
		HostEmail:                   req.HostEmail,
		HostName:                    req.HostName,
		ListingName:                 req.ListingName,
		EmailType:                   req.EmailType,
		RejectionReason:             req.RejectionReason,
		VerificationRejectionReason: req.VerificationRejectionReason,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	respond.OK(c.Writer, result)
}

// fail maps composer errors onto HTTP statuses.
func (h *Handler) fail(c *ginext.Context, err error) {
	var vErr *mailsvc.ValidationError
	if errors.As(err, &vErr) {
		zlog.Logger.Warn().Err(err).Msg("request rejected")
		respond.Fail(c.Writer, http.StatusBadRequest, vErr)
		return
	}

	if errors.Is(err, mailsvc.ErrRecipientNotFound) {
		zlog.Logger.Warn().Err(err).Msg("recipient not found")
		respond.Fail(c.Writer, http.StatusNotFound, mailsvc.ErrRecipientNotFound)
		return
	}

	zlog.Logger.Error().Err(err).Msg("failed to send email")
	respond.Fail(c.Writer, http.StatusInternalServerError, err)
}

// displayAmount renders the amount field as-is for display. Strings pass
// through untouched; anything else is formatted with its default notation.
func displayAmount(v interface{}) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	default:
		return fmt.Sprintf("%v", a)
	}
}
