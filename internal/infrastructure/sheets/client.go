// Package sheets implements the Google Sheets backends for verification
// codes, password reset tokens and orders. Every entity is one tab of a
// single spreadsheet with append-only rows; consuming a secret flips its
// status column in place.
package sheets

import (
	"context"

	"github.com/matchday-api/internal/config"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	sheetsapi "google.golang.org/api/sheets/v4"
	"google.golang.org/api/option"
)

// NewService builds a Sheets API client authenticated as the configured
// service account.
func NewService(ctx context.Context, cfg *config.Config) (*sheetsapi.Service, error) {
	conf := &jwt.Config{
		Email:      cfg.GoogleServiceAccountEmail,
		PrivateKey: []byte(cfg.GoogleServiceAccountKey),
		Scopes:     []string{sheetsapi.SpreadsheetsScope},
		TokenURL:   google.JWTTokenURL,
	}
	return sheetsapi.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
}
