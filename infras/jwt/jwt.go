package jwt

//go:generate go run go.uber.org/mock/mockgen -source=./jwt.go -destination=./mocks/jwt_mock.go -package=mocks

import (
	"context"
	"deportur/config"
	"deportur/shared/constant"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims is what the console needs from an identity provider token.
type Claims struct {
	Subject   string    `json:"sub"`
	Email     string    `json:"email,omitempty"`
	Name      string    `json:"name,omitempty"`
	Roles     []string  `json:"roles"`
	TokenID   string    `json:"token_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c *Claims) HasRole(role string) bool {
	return slices.Contains(c.Roles, role)
}

// Role returns the strongest known role held by the operator, or empty.
func (c *Claims) Role() string {
	switch {
	case c.HasRole(constant.RoleAdmin):
		return constant.RoleAdmin
	case c.HasRole(constant.RoleWorker):
		return constant.RoleWorker
	default:
		return constant.Empty
	}
}

// JWT validates bearer tokens issued by the identity provider.
type JWT interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
	parser *jwt.Parser
	keys   jwt.Keyfunc
}

const (
	minSecretLength = 32
	jwksPath        = ".well-known/jwks.json"
)

var (
	ErrNoKeySource = errors.New("token validation needs AUTH_ISSUER (JWKS) or AUTH_SECRET")
	ErrWeakSecret  = fmt.Errorf("AUTH_SECRET must be at least %d bytes", minSecretLength)
)

// New validates tokens with the issuer's JWKS when AUTH_ISSUER is set, otherwise with the
// HS256 shared secret. It stops the process when neither is usable.
func New(cfg *config.Config) JWT {
	service, err := NewFromConfig(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up token validation")
	}

	return service
}

func NewFromConfig(ctx context.Context, cfg *config.Config) (JWT, error) {
	switch {
	case cfg.Auth.Issuer != constant.Empty:
		url := JWKSURL(cfg)

		keys, err := keyfunc.NewDefaultCtx(ctx, []string{url})
		if err != nil {
			return nil, fmt.Errorf("failed to load JWKS from %s: %w", url, err)
		}

		log.Info().Str("jwks", url).Msg("Validating tokens with the issuer JWKS")

		return NewWithKeyfunc(cfg, keys.Keyfunc, jwt.SigningMethodRS256.Alg()), nil
	case cfg.Auth.Secret != constant.Empty:
		if len(cfg.Auth.Secret) < minSecretLength {
			return nil, ErrWeakSecret
		}

		secret := []byte(cfg.Auth.Secret)

		log.Warn().Msg("Validating tokens with the HS256 shared secret, meant for local setups")

		return NewWithKeyfunc(cfg, func(_ *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.SigningMethodHS256.Alg()), nil
	default:
		return nil, ErrNoKeySource
	}
}

// JWKSURL is AUTH_JWKS_URL, or the well-known document under the issuer.
func JWKSURL(cfg *config.Config) string {
	if cfg.Auth.JWKSURL != constant.Empty {
		return cfg.Auth.JWKSURL
	}

	return strings.TrimSuffix(cfg.Auth.Issuer, "/") + "/" + jwksPath
}

// NewWithKeyfunc accepts tokens signed with one of methods and verified by keys. Issuer and
// audience are checked when configured.
func NewWithKeyfunc(cfg *config.Config, keys jwt.Keyfunc, methods ...string) JWT {
	options := []jwt.ParserOption{
		jwt.WithValidMethods(methods),
		jwt.WithExpirationRequired(),
	}

	if cfg.Auth.Issuer != constant.Empty {
		options = append(options, jwt.WithIssuer(cfg.Auth.Issuer))
	}

	if cfg.Auth.Audience != constant.Empty {
		options = append(options, jwt.WithAudience(cfg.Auth.Audience))
	}

	return &Service{
		config: cfg,
		parser: jwt.NewParser(options...),
		keys:   keys,
	}
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	mapClaims := jwt.MapClaims{}

	token, err := s.parser.ParseWithClaims(tokenString, mapClaims, s.keys)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	subject, err := mapClaims.GetSubject()
	if err != nil || subject == "" {
		return nil, ErrInvalidClaim
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return nil, ErrInvalidClaim
	}

	claims := &Claims{
		Subject:   subject,
		Email:     stringClaim(mapClaims, "email"),
		Name:      stringClaim(mapClaims, "name"),
		TokenID:   stringClaim(mapClaims, "jti"),
		Roles:     rolesClaim(mapClaims[s.config.Auth.RolesClaim]),
		ExpiresAt: expiresAt.Time,
	}

	return claims, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)

	return value
}

// rolesClaim accepts a list of role names or a single comma separated string.
func rolesClaim(raw any) []string {
	roles := []string{}

	switch value := raw.(type) {
	case []any:
		for _, item := range value {
			if role, ok := item.(string); ok && role != "" {
				roles = append(roles, strings.ToUpper(role))
			}
		}
	case []string:
		for _, role := range value {
			if role != "" {
				roles = append(roles, strings.ToUpper(role))
			}
		}
	case string:
		for _, role := range strings.Split(value, ",") {
			if role = strings.TrimSpace(role); role != "" {
				roles = append(roles, strings.ToUpper(role))
			}
		}
	}

	return roles
}

// ExtractTokenFromHeader extracts JWT token from Authorization header
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || !strings.EqualFold(authHeader[:len(prefix)], prefix) {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	token := strings.TrimSpace(authHeader[len(prefix):])
	if token == "" {
		return "", fmt.Errorf("authorization header carries no token")
	}

	return token, nil
}
