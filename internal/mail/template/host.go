package template

import (
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/mystay/email-service/internal/model"
)

// HostVariant is the copy bundle for one host notification type. All variant
// differences flow through this table; the layouts themselves do not branch
// on the email type.
type HostVariant struct {
	Banner string
	Icon   string

	// subject is the fixed subject line; subjectWithListing appends the
	// listing name when one is referenced.
	subject            string
	subjectWithListing bool

	RequiresListing            bool
	RequiresRejectionReason    bool
	RequiresVerificationReason bool
}

var hostVariants = map[model.HostEmailType]HostVariant{
	model.HostEmailSubmitted: {
		Banner:             "Listing Submitted",
		Icon:               "🕒",
		subject:            "Listing Submitted",
		subjectWithListing: true,
		RequiresListing:    true,
	},
	model.HostEmailPublished: {
		Banner:             "Listing Published",
		Icon:               "🎉",
		subject:            "Listing Published",
		subjectWithListing: true,
		RequiresListing:    true,
	},
	model.HostEmailRejected: {
		Banner:                  "Listing Not Approved",
		Icon:                    "⚠️",
		subject:                 "Listing Not Approved",
		subjectWithListing:      true,
		RequiresListing:         true,
		RequiresRejectionReason: true,
	},
	model.HostEmailVerified: {
		Banner:  "Host Verified",
		Icon:    "✅",
		subject: "You Are Now a Verified Host",
	},
	model.HostEmailVerificationRejected: {
		Banner:                     "Verification Not Approved",
		Icon:                       "⚠️",
		subject:                    "Host Verification Update",
		RequiresVerificationReason: true,
	},
}

// HostVariantFor returns the copy bundle for an email type.
func HostVariantFor(t model.HostEmailType) (HostVariant, bool) {
	v, ok := hostVariants[t]
	return v, ok
}

// HostSubject derives the subject line for an email type, referencing the
// listing name where the variant calls for it.
func HostSubject(t model.HostEmailType, listingName string) string {
	v, ok := hostVariants[t]
	if !ok {
		return ""
	}
	if v.subjectWithListing && listingName != "" {
		return v.subject + ": " + listingName
	}
	return v.subject
}

func hostLead(n model.HostNotification) string {
	switch n.EmailType {
	case model.HostEmailSubmitted:
		return fmt.Sprintf("Your listing \"%s\" has been submitted and is now pending review. We will email you once our team has checked it.", n.ListingName)
	case model.HostEmailPublished:
		return fmt.Sprintf("Great news! Your listing \"%s\" has been approved and is now live on MyStay.", n.ListingName)
	case model.HostEmailRejected:
		return fmt.Sprintf("Unfortunately your listing \"%s\" was not approved.", n.ListingName)
	case model.HostEmailVerified:
		return "Congratulations! Your host account has been verified. You can now publish listings and accept bookings on MyStay."
	case model.HostEmailVerificationRejected:
		return "Unfortunately your host verification was not approved."
	}
	return ""
}

// hostReason returns the reason text shown for the two rejection variants.
func hostReason(n model.HostNotification) string {
	switch n.EmailType {
	case model.HostEmailRejected:
		return n.RejectionReason
	case model.HostEmailVerificationRejected:
		return n.VerificationRejectionReason
	}
	return ""
}

// hostNote returns the next-steps note for the two rejection variants.
func hostNote(t model.HostEmailType) string {
	switch t {
	case model.HostEmailRejected:
		return "You can edit your listing and submit it again for review at any time from your host dashboard."
	case model.HostEmailVerificationRejected:
		return "You can update your verification details and try again from your host dashboard."
	}
	return ""
}

type hostData struct {
	Name   string
	Banner string
	Icon   string
	Lead   string
	Reason string
	Note   string
}

const hostHTMLLayout = `<!DOCTYPE html>
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
      <div style="font-size:32px;margin-top:8px;">{{.Icon}}</div>
    </td>
  </tr>
  <tr>
    <td style="padding:0 32px;">
      <p style="font-size:16px;color:#333333;">Hi {{.Name}},</p>
      <p style="font-size:15px;color:#333333;">{{.Lead}}</p>
    </td>
  </tr>
{{- if .Reason}}
  <tr>
    <td style="padding:0 32px 8px;">
      <p style="font-size:14px;color:#333333;background-color:#fdf0ef;border-left:4px solid #c0392b;padding:12px;border-radius:4px;"><strong>Reason:</strong> {{.Reason}}</p>
    </td>
  </tr>
{{- end}}
{{- if .Note}}
  <tr>
    <td style="padding:0 32px 8px;">
      <p style="font-size:14px;color:#333333;background-color:#f7faf9;padding:12px;border-radius:4px;">{{.Note}}</p>
    </td>
  </tr>
{{- end}}
  <tr>
    <td style="padding:8px 32px 24px;">
      <p style="font-size:13px;color:#999999;">The MyStay Team</p>
    </td>
  </tr>
</table>
</body>
</html>
`

const hostTextLayout = `Hi {{.Name}},

{{.Lead}}
{{- if .Reason}}

Reason: {{.Reason}}
{{- end}}
{{- if .Note}}

{{.Note}}
{{- end}}

The MyStay Team
`

var (
	hostHTML = htmltemplate.Must(htmltemplate.New("host").Parse(hostHTMLLayout))
	hostText = texttemplate.Must(texttemplate.New("host").Parse(hostTextLayout))
)

// RenderHostNotification renders the listing/verification email for the
// given input. The email type must be one of the known variants.
func RenderHostNotification(n model.HostNotification) (Document, error) {
	v, ok := hostVariants[n.EmailType]
	if !ok {
		return Document{}, fmt.Errorf("unknown email type %q", n.EmailType)
	}

	data := hostData{
		Name:   greetingName(n.HostName),
		Banner: v.Banner,
		Icon:   v.Icon,
		Lead:   hostLead(n),
		Reason: hostReason(n),
		Note:   hostNote(n.EmailType),
	}

	html, err := execHTML(hostHTML, data)
	if err != nil {
		return Document{}, err
	}

	text, err := execText(hostText, data)
	if err != nil {
		return Document{}, err
	}

	return Document{HTML: html, Text: text}, nil
}
