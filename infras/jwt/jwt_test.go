package jwt_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"deportur/config"
	"deportur/infras/jwt"
	"deportur/shared/constant"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	goJWT "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "0123456789abcdef0123456789abcdef"
	testIssuer   = "https://deportur.auth0.com/"
	testAudience = "https://api.deportur.com"
	rolesClaim   = "https://deportur.com/roles"
)

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth.Secret = testSecret
	cfg.Auth.Issuer = testIssuer
	cfg.Auth.Audience = testAudience
	cfg.Auth.RolesClaim = rolesClaim

	return cfg
}

func sign(t *testing.T, method goJWT.SigningMethod, secret string, claims goJWT.MapClaims) string {
	t.Helper()

	token, err := goJWT.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func validClaims() goJWT.MapClaims {
	return goJWT.MapClaims{
		"sub":      "auth0|42",
		"email":    "ana@example.com",
		"name":     "Ana López",
		"jti":      "token-1",
		"iss":      testIssuer,
		"aud":      testAudience,
		"exp":      time.Now().Add(time.Hour).Unix(),
		rolesClaim: []string{"admin", "TRABAJADOR"},
	}
}

func hmacKey(_ *goJWT.Token) (any, error) {
	return []byte(testSecret), nil
}

func TestValidateToken(t *testing.T) {
	service := jwt.NewWithKeyfunc(newConfig(), hmacKey, goJWT.SigningMethodHS256.Alg())

	expired := validClaims()
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongIssuer := validClaims()
	wrongIssuer["iss"] = "https://evil.example.com/"

	wrongAudience := validClaims()
	wrongAudience["aud"] = "other"

	noSubject := validClaims()
	delete(noSubject, "sub")

	noExpiry := validClaims()
	delete(noExpiry, "exp")

	stringRoles := validClaims()
	stringRoles[rolesClaim] = "trabajador"

	tests := []struct {
		name          string
		token         string
		expectedErr   error
		expectedRoles []string
		expectedRole  string
	}{
		{
			name:          "valid token",
			token:         sign(t, goJWT.SigningMethodHS256, testSecret, validClaims()),
			expectedRoles: []string{constant.RoleAdmin, constant.RoleWorker},
			expectedRole:  constant.RoleAdmin,
		},
		{
			name:          "roles as string",
			token:         sign(t, goJWT.SigningMethodHS256, testSecret, stringRoles),
			expectedRoles: []string{constant.RoleWorker},
			expectedRole:  constant.RoleWorker,
		},
		{
			name:        "expired token",
			token:       sign(t, goJWT.SigningMethodHS256, testSecret, expired),
			expectedErr: jwt.ErrExpiredToken,
		},
		{
			name:        "wrong secret",
			token:       sign(t, goJWT.SigningMethodHS256, "other", validClaims()),
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "wrong algorithm",
			token:       sign(t, goJWT.SigningMethodHS512, testSecret, validClaims()),
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "wrong issuer",
			token:       sign(t, goJWT.SigningMethodHS256, testSecret, wrongIssuer),
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "wrong audience",
			token:       sign(t, goJWT.SigningMethodHS256, testSecret, wrongAudience),
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "missing expiry",
			token:       sign(t, goJWT.SigningMethodHS256, testSecret, noExpiry),
			expectedErr: jwt.ErrInvalidToken,
		},
		{
			name:        "missing subject",
			token:       sign(t, goJWT.SigningMethodHS256, testSecret, noSubject),
			expectedErr: jwt.ErrInvalidClaim,
		},
		{
			name:        "garbage",
			token:       "not-a-token",
			expectedErr: jwt.ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, claims)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "auth0|42", claims.Subject)
			assert.Equal(t, "ana@example.com", claims.Email)
			assert.Equal(t, "Ana López", claims.Name)
			assert.Equal(t, "token-1", claims.TokenID)
			assert.Equal(t, tt.expectedRoles, claims.Roles)
			assert.Equal(t, tt.expectedRole, claims.Role())
		})
	}
}

func TestNewFromConfig_KeySource(t *testing.T) {
	tests := []struct {
		name        string
		secret      string
		expectedErr error
	}{
		{name: "nothing configured", expectedErr: jwt.ErrNoKeySource},
		{name: "short secret", secret: "s3cr3t", expectedErr: jwt.ErrWeakSecret},
		{name: "secret", secret: testSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Auth.Secret = tt.secret
			cfg.Auth.RolesClaim = rolesClaim

			service, err := jwt.NewFromConfig(context.Background(), cfg)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, service)

				return
			}

			require.NoError(t, err)

			claims := validClaims()
			delete(claims, "iss")
			delete(claims, "aud")

			_, err = service.ValidateToken(sign(t, goJWT.SigningMethodHS256, testSecret, claims))
			assert.NoError(t, err)
		})
	}
}

func TestNewFromConfig_EmptySecretTokenRejected(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.RolesClaim = rolesClaim

	_, err := jwt.NewFromConfig(context.Background(), cfg)
	require.ErrorIs(t, err, jwt.ErrNoKeySource)

	// A token signed with an empty key never matches a configured secret.
	service := jwt.NewWithKeyfunc(newConfig(), hmacKey, goJWT.SigningMethodHS256.Alg())

	_, err = service.ValidateToken(sign(t, goJWT.SigningMethodHS256, "", validClaims()))
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func jwksServer(t *testing.T, key *rsa.PrivateKey) *httptest.Server {
	t.Helper()

	document := map[string]any{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": "deportur-1",
			"use": "sig",
			"alg": "RS256",
			"n":   base64.RawURLEncoding.EncodeToString(key.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.E)).Bytes()),
		}},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/.well-known/jwks.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(document)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return server
}

func signRS256(t *testing.T, key *rsa.PrivateKey, claims goJWT.MapClaims) string {
	t.Helper()

	token := goJWT.NewWithClaims(goJWT.SigningMethodRS256, claims)
	token.Header["kid"] = "deportur-1"

	signed, err := token.SignedString(key)
	require.NoError(t, err)

	return signed
}

func TestNewFromConfig_JWKS(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	server := jwksServer(t, key)
	issuer := server.URL + "/"

	cfg := &config.Config{}
	cfg.Auth.Issuer = issuer
	cfg.Auth.Audience = testAudience
	cfg.Auth.RolesClaim = rolesClaim
	cfg.Auth.Secret = testSecret

	assert.Equal(t, server.URL+"/.well-known/jwks.json", jwt.JWKSURL(cfg))

	service, err := jwt.NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)

	claims := validClaims()
	claims["iss"] = issuer

	t.Run("provider token", func(t *testing.T) {
		result, err := service.ValidateToken(signRS256(t, key, claims))

		require.NoError(t, err)
		assert.Equal(t, "auth0|42", result.Subject)
		assert.Equal(t, constant.RoleAdmin, result.Role())
	})

	t.Run("shared secret is not accepted once an issuer is set", func(t *testing.T) {
		_, err := service.ValidateToken(sign(t, goJWT.SigningMethodHS256, testSecret, claims))
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("other key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		_, err = service.ValidateToken(signRS256(t, other, claims))
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("wrong audience", func(t *testing.T) {
		wrong := validClaims()
		wrong["iss"] = issuer
		wrong["aud"] = "other"

		_, err := service.ValidateToken(signRS256(t, key, wrong))
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := jwt.ExtractTokenFromHeader("Bearer abc.def")
	require.NoError(t, err)
	assert.Equal(t, "abc.def", token)

	_, err = jwt.ExtractTokenFromHeader("")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Basic abc")
	assert.Error(t, err)

	_, err = jwt.ExtractTokenFromHeader("Bearer   ")
	assert.Error(t, err)
}
