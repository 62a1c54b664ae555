package services

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"wanderplan/internal/config"
)

// GoogleIdentity is the profile and refresh token returned by a code exchange.
type GoogleIdentity struct {
	Subject string
	Email   string
	// VerifiedEmail is Google's claim that the account owns Email.
	VerifiedEmail bool
	Name          string
	Picture       string
	RefreshToken  string
}

// GoogleProvider wraps the Google OAuth and Drive calls the services need.
type GoogleProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*GoogleIdentity, error)
	UploadFile(ctx context.Context, refreshToken string, file DriveFile) (*DriveUpload, error)
}

type DriveFile struct {
	Name     string
	MimeType string
	Content  io.Reader
}

type DriveUpload struct {
	FileID string
	Link   string
}

type googleProvider struct {
	oauth *oauth2.Config
}

// NewGoogleProvider returns nil when Google credentials are not configured.
func NewGoogleProvider(cfg config.Config) GoogleProvider {
	if !cfg.GoogleEnabled() {
		return nil
	}
	return &googleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     google.Endpoint,
			Scopes: []string{
				oauth2api.UserinfoEmailScope,
				oauth2api.UserinfoProfileScope,
				drive.DriveFileScope,
			},
		},
	}
}

func (g *googleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

func (g *googleProvider) Exchange(ctx context.Context, code string) (*GoogleIdentity, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(g.oauth.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("oauth2 service: %w", err)
	}
	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}

	return &GoogleIdentity{
		Subject:       info.Id,
		Email:         info.Email,
		VerifiedEmail: info.VerifiedEmail != nil && *info.VerifiedEmail,
		Name:          info.Name,
		Picture:       info.Picture,
		RefreshToken:  token.RefreshToken,
	}, nil
}

func (g *googleProvider) UploadFile(ctx context.Context, refreshToken string, file DriveFile) (*DriveUpload, error) {
	source := g.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	svc, err := drive.NewService(ctx, option.WithTokenSource(source))
	if err != nil {
		return nil, fmt.Errorf("drive service: %w", err)
	}

	created, err := svc.Files.Create(&drive.File{Name: file.Name, MimeType: file.MimeType}).
		Media(file.Content).
		Fields("id", "webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("drive upload: %w", err)
	}
	return &DriveUpload{FileID: created.Id, Link: created.WebViewLink}, nil
}
