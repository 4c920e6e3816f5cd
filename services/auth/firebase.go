package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"legato/utils"

	fbauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
)

const signInEndpoint = "https://identitytoolkit.googleapis.com/v1/accounts:signInWithPassword"

// FirebaseProvider implements IdentityProvider on Firebase Authentication.
// Account management goes through the Admin SDK; credential verification
// uses the Identity Toolkit REST API, since the Admin SDK cannot check
// passwords.
type FirebaseProvider struct {
	client *fbauth.Client
	apiKey string
	http   *http.Client
	events *sessionBroadcaster
}

// NewFirebaseProvider wraps a Firebase Auth client. apiKey is the web API
// key used for the password sign-in endpoint.
func NewFirebaseProvider(client *fbauth.Client, apiKey string) *FirebaseProvider {
	return &FirebaseProvider{
		client: client,
		apiKey: apiKey,
		http:   &http.Client{Timeout: 10 * time.Second},
		events: newSessionBroadcaster(),
	}
}

func (p *FirebaseProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	params := (&fbauth.UserToCreate{}).Email(email).Password(password)
	user, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if fbauth.IsEmailAlreadyExists(err) {
			return "", ErrDuplicateAccount
		}
		// The SDK reports the 6-character password policy as an invalid
		// argument without a dedicated predicate.
		if strings.Contains(err.Error(), "password") {
			return "", ErrWeakCredential
		}
		return "", fmt.Errorf("firebase create user: %w", err)
	}
	return user.UID, nil
}

func (p *FirebaseProvider) SetDisplayName(ctx context.Context, uid, name string) error {
	params := (&fbauth.UserToUpdate{}).DisplayName(name)
	if _, err := p.client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("firebase update user %s: %w", uid, err)
	}
	return nil
}

func (p *FirebaseProvider) Authenticate(ctx context.Context, email, password string) (*Credential, error) {
	payload, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s?key=%s", signInEndpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("firebase sign-in request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
			switch {
			case strings.HasPrefix(body.Error.Message, "EMAIL_NOT_FOUND"),
				strings.HasPrefix(body.Error.Message, "INVALID_PASSWORD"),
				strings.HasPrefix(body.Error.Message, "INVALID_LOGIN_CREDENTIALS"),
				strings.HasPrefix(body.Error.Message, "USER_DISABLED"):
				return nil, ErrInvalidCredential
			}
		}
		return nil, fmt.Errorf("firebase sign-in failed with status %d", resp.StatusCode)
	}

	var body struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("firebase sign-in response: %w", err)
	}

	p.events.publish(SessionEvent{UID: body.LocalID})
	return &Credential{UID: body.LocalID, Email: body.Email}, nil
}

func (p *FirebaseProvider) EndSession(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		utils.GetLogger().Error("Failed to revoke refresh tokens", zap.String("uid", uid), zap.Error(err))
		return err
	}
	p.events.publish(SessionEvent{})
	return nil
}

func (p *FirebaseProvider) Subscribe() (<-chan SessionEvent, func()) {
	return p.events.subscribe()
}
