package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// googleService implements Service against the Google Calendar API.
type googleService struct {
	svc *gcal.Service
}

// NewGoogleService builds a Service from a stored OAuth client secret
// and a previously saved token. Token refresh is handled by the oauth2
// token source; an absent token means the user must run the
// authorization flow first.
func NewGoogleService(ctx context.Context, credentialsPath, tokenPath string) (Service, error) {
	oauthCfg, err := loadOAuthConfig(credentialsPath)
	if err != nil {
		return nil, err
	}

	token, err := loadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotAuthorized, err)
	}

	svc, err := gcal.NewService(ctx, option.WithTokenSource(oauthCfg.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("creating calendar service: %w", err)
	}
	return &googleService{svc: svc}, nil
}

// Authorize runs the installed-app OAuth flow: promptFn receives the
// consent URL and must return the code the user pasted back. The
// exchanged token is saved to tokenPath.
func Authorize(ctx context.Context, credentialsPath, tokenPath string, promptFn func(authURL string) (string, error)) error {
	oauthCfg, err := loadOAuthConfig(credentialsPath)
	if err != nil {
		return err
	}

	authURL := oauthCfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	code, err := promptFn(authURL)
	if err != nil {
		return err
	}

	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}
	return saveToken(tokenPath, token)
}

func loadOAuthConfig(credentialsPath string) (*oauth2.Config, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("reading client secret %s: %w", credentialsPath, err)
	}
	cfg, err := google.ConfigFromJSON(data, gcal.CalendarScope, gcal.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("parsing client secret: %w", err)
	}
	return cfg, nil
}

func loadToken(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var token oauth2.Token
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, fmt.Errorf("decoding token: %w", err)
	}
	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing token: %w", err)
	}
	return nil
}

func (g *googleService) ListCalendars(ctx context.Context) ([]Calendar, error) {
	list, err := g.svc.CalendarList.List().Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing calendars: %w", err)
	}

	calendars := make([]Calendar, 0, len(list.Items))
	for _, item := range list.Items {
		calendars = append(calendars, Calendar{ID: item.Id, Summary: item.Summary})
	}
	return calendars, nil
}

func (g *googleService) CreateEvent(ctx context.Context, req EventRequest) (string, error) {
	event := &gcal.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start: &gcal.EventDateTime{
			DateTime: req.Start.Format("2006-01-02T15:04:05-07:00"),
		},
		End: &gcal.EventDateTime{
			DateTime: req.End.Format("2006-01-02T15:04:05-07:00"),
		},
		ColorId: req.ColorID,
	}

	created, err := g.svc.Events.Insert(req.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("inserting event: %w", err)
	}
	return created.Id, nil
}
