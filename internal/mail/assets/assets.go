// Package assets bundles the images embedded inline in every outgoing email.
// The HTML templates reference them by content id (cid:mystay-icon,
// cid:checkmark-icon).
package assets

import (
	_ "embed"

	"github.com/mystay/email-service/internal/model"
)

const (
	MystayIconCID    = "mystay-icon"
	CheckmarkIconCID = "checkmark-icon"
)

//go:embed mystay-icon.png
var mystayIcon []byte

//go:embed checkmark-icon.png
var checkmarkIcon []byte

// Inline returns the full set of inline assets attached to every envelope.
func Inline() []model.InlineAsset {
	return []model.InlineAsset{
		{CID: MystayIconCID, ContentType: "image/png", Data: mystayIcon},
		{CID: CheckmarkIconCID, ContentType: "image/png", Data: checkmarkIcon},
	}
}
