// Package server builds the HTTP server that fronts the mail API.
package server

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// New wraps the configured router in an http.Server bound to addr.
// The caller owns the server lifecycle, including shutdown.
func New(addr string, router *ginext.Engine) *http.Server {
	return &http.Server{
		Addr:    addr,
		Handler: router,
	}
}
