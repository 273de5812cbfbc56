// Package mailer provides the SMTP client used to dispatch composed emails.
package mailer

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	mail "gopkg.in/mail.v2"
)

// Part is an inline image delivered with the message and referenced from
// the HTML body by content id.
type Part struct {
	CID         string
	ContentType string
	Data        []byte
}

// Message is a complete outgoing email.
type Message struct {
	FromName    string
	FromAddress string
	To          string
	Subject     string
	Text        string
	HTML        string
	Inline      []Part
}

// Client sends messages through an SMTP relay. Port 465 uses an implicit
// TLS connection; any other port connects plain and upgrades via STARTTLS.
type Client struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

func NewClient(host string, port int, username, password string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  timeout,
	}
}

func (c *Client) dialer() *mail.Dialer {
	d := mail.NewDialer(c.host, c.port, c.username, c.password)
	d.Timeout = c.timeout
	d.SSL = c.port == 465
	return d
}

// Verify dials and authenticates against the relay without sending
// anything. It is a diagnostic step only.
func (c *Client) Verify() error {
	closer, err := c.dialer().Dial()
	if err != nil {
		return fmt.Errorf("dial smtp relay: %w", err)
	}

	return closer.Close()
}

// Send performs exactly one delivery attempt and returns the generated
// Message-ID on success. A failed connectivity check beforehand is logged
// and does not stop the attempt.
func (c *Client) Send(msg Message) (string, error) {
	if err := c.Verify(); err != nil {
		zlog.Logger.Warn().Err(err).Str("host", c.host).Msg("smtp connectivity check failed")
	}

	m, messageID := c.message(msg)

	if err := c.dialer().DialAndSend(m); err != nil {
		return "", fmt.Errorf("send mail: %w", err)
	}

	return messageID, nil
}

// message builds the wire message and its Message-ID.
func (c *Client) message(msg Message) (*mail.Message, string) {
	m := mail.NewMessage()
	m.SetAddressHeader("From", msg.FromAddress, msg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	messageID := fmt.Sprintf("<%s@%s>", uuid.New().String(), c.host)
	m.SetHeader("Message-ID", messageID)

	m.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		m.AddAlternative("text/html", msg.HTML)
	}

	for _, p := range msg.Inline {
		p := p
		m.Embed(
			p.CID,
			mail.SetHeader(map[string][]string{"Content-Type": {p.ContentType}}),
			mail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(p.Data)
				return err
			}),
		)
	}

	return m, messageID
}
