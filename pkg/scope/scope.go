package scope

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"vigil-srv/internal/model"
)

// Payload is the verified content of an access token.
type Payload struct {
	UserID    string
	Username  string
	Role      string
	Subject   string
	Issuer    string
	Id        string
	IssuedAt  int64
	ExpiresAt int64
}

// Manager verifies access tokens and issues new ones.
type Manager interface {
	Verify(token string) (Payload, error)
	CreateToken(payload Payload) (string, error)
}

// NewScope creates a new scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	userID := payload.UserID
	if userID == "" {
		userID = payload.Subject
	}

	return model.Scope{
		UserID:   userID,
		Username: payload.Username,
		Role:     payload.Role,
	}
}

// CreateScopeHeader encodes a scope as a Base64 JSON header value.
func CreateScopeHeader(scope model.Scope) (string, error) {
	jsonData, err := json.Marshal(scope)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(jsonData), nil
}

// ParseScopeHeader decodes a Base64 JSON header value into a scope.
func ParseScopeHeader(scopeHeader string) (model.Scope, error) {
	jsonData, err := base64.StdEncoding.DecodeString(scopeHeader)
	if err != nil {
		return model.Scope{}, err
	}

	var scope model.Scope
	if err := json.Unmarshal(jsonData, &scope); err != nil {
		return model.Scope{}, err
	}

	return scope, nil
}

type contextKey int

const (
	scopeContextKey contextKey = iota
	payloadContextKey
)

// SetScopeToContext attaches a scope to the context.
func SetScopeToContext(ctx context.Context, s model.Scope) context.Context {
	return context.WithValue(ctx, scopeContextKey, s)
}

// GetScopeFromContext returns the scope attached to the context,
// or a zero scope if none was set.
func GetScopeFromContext(ctx context.Context) model.Scope {
	s, _ := ctx.Value(scopeContextKey).(model.Scope)
	return s
}

// SetPayloadToContext attaches a verified token payload to the context.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey, p)
}

// GetPayloadFromContext returns the token payload attached to the context,
// or a zero payload if none was set.
func GetPayloadFromContext(ctx context.Context) Payload {
	p, _ := ctx.Value(payloadContextKey).(Payload)
	return p
}
