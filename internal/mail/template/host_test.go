package template

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mystay/email-service/internal/model"
)

func TestHostSubject(t *testing.T) {
	tests := []struct {
		emailType model.HostEmailType
		listing   string
		want      string
	}{
		{model.HostEmailSubmitted, "Sea View Cottage", "Listing Submitted: Sea View Cottage"},
		{model.HostEmailPublished, "Sea View Cottage", "Listing Published: Sea View Cottage"},
		{model.HostEmailRejected, "Sea View Cottage", "Listing Not Approved: Sea View Cottage"},
		{model.HostEmailVerified, "", "You Are Now a Verified Host"},
		{model.HostEmailVerificationRejected, "", "Host Verification Update"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HostSubject(tt.emailType, tt.listing), "type %s", tt.emailType)
	}
}

func TestHostVariantFor_RequiredFields(t *testing.T) {
	for _, et := range []model.HostEmailType{
		model.HostEmailSubmitted, model.HostEmailPublished, model.HostEmailRejected,
	} {
		v, ok := HostVariantFor(et)
		assert.True(t, ok)
		assert.True(t, v.RequiresListing, "type %s", et)
	}

	rejected, _ := HostVariantFor(model.HostEmailRejected)
	assert.True(t, rejected.RequiresRejectionReason)

	verified, _ := HostVariantFor(model.HostEmailVerified)
	assert.False(t, verified.RequiresListing)

	vr, _ := HostVariantFor(model.HostEmailVerificationRejected)
	assert.False(t, vr.RequiresListing)
	assert.True(t, vr.RequiresVerificationReason)

	_, ok := HostVariantFor(model.HostEmailType("bogus"))
	assert.False(t, ok)
}

func TestRenderHostNotification_Variants(t *testing.T) {
	tests := []struct {
		name        string
		input       model.HostNotification
		wantBanner  string
		wantInBody  []string
		wantNote    bool
		wantReason  bool
	}{
		{
			name: "submitted",
			input: model.HostNotification{
				HostName:    "John",
				ListingName: "Sea View Cottage",
				EmailType:   model.HostEmailSubmitted,
			},
			wantBanner: "Listing Submitted",
			wantInBody: []string{"Sea View Cottage", "pending review"},
		},
		{
			name: "published",
			input: model.HostNotification{
				HostName:    "John",
				ListingName: "Sea View Cottage",
				EmailType:   model.HostEmailPublished,
			},
			wantBanner: "Listing Published",
			wantInBody: []string{"Sea View Cottage", "now live"},
		},
		{
			name: "rejected",
			input: model.HostNotification{
				HostName:        "John",
				ListingName:     "Sea View Cottage",
				EmailType:       model.HostEmailRejected,
				RejectionReason: "Photos are too blurry",
			},
			wantBanner: "Listing Not Approved",
			wantInBody: []string{"Sea View Cottage"},
			wantReason: true,
			wantNote:   true,
		},
		{
			name: "verified without listing",
			input: model.HostNotification{
				HostName:  "John",
				EmailType: model.HostEmailVerified,
			},
			wantBanner: "Host Verified",
			wantInBody: []string{"has been verified"},
		},
		{
			name: "verification rejected",
			input: model.HostNotification{
				HostName:                    "John",
				EmailType:                   model.HostEmailVerificationRejected,
				VerificationRejectionReason: "ID document expired",
			},
			wantBanner: "Verification Not Approved",
			wantInBody: []string{"verification was not approved"},
			wantReason: true,
			wantNote:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := RenderHostNotification(tt.input)
			assert.NoError(t, err)

			assert.Contains(t, doc.HTML, tt.wantBanner)
			for _, s := range tt.wantInBody {
				assert.Contains(t, doc.HTML, s)
				assert.Contains(t, doc.Text, s)
			}

			if tt.wantReason {
				assert.Contains(t, doc.HTML, "Reason:")
				assert.Contains(t, doc.Text, "Reason:")
			} else {
				assert.NotContains(t, doc.HTML, "Reason:")
			}

			if tt.wantNote {
				assert.Contains(t, doc.HTML, "host dashboard")
			} else {
				assert.NotContains(t, doc.HTML, "host dashboard")
			}
		})
	}
}

func TestRenderHostNotification_UnknownType(t *testing.T) {
	_, err := RenderHostNotification(model.HostNotification{EmailType: "bogus"})
	assert.Error(t, err)
}

func TestRenderHostNotification_Escaping(t *testing.T) {
	doc, err := RenderHostNotification(model.HostNotification{
		HostName:    "John",
		ListingName: `<b>Sea View</b>`,
		EmailType:   model.HostEmailSubmitted,
	})
	assert.NoError(t, err)

	assert.NotContains(t, doc.HTML, "<b>Sea View</b>")
	assert.Contains(t, doc.HTML, "&lt;b&gt;Sea View&lt;/b&gt;")
	assert.Contains(t, doc.Text, "<b>Sea View</b>")
}
