package middleware

import (
	"context"
	"deportur/config"
	otelMocks "deportur/infras/otel/mocks"
	cacheMocks "deportur/shared/cache/mocks"
	"deportur/shared/constant"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func limiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name              string
		count             int64
		err               error
		expectedCode      int
		expectedRemaining string
	}{
		{name: "first request", count: 1, expectedCode: http.StatusOK, expectedRemaining: "1"},
		{name: "last allowed request", count: 2, expectedCode: http.StatusOK, expectedRemaining: "0"},
		{name: "over the limit", count: 3, expectedCode: http.StatusTooManyRequests, expectedRemaining: "0"},
		{name: "cache down fails open", err: errors.New("connection refused"), expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			redisCache := cacheMocks.NewMockRedisCache(ctrl)
			redisCache.EXPECT().Increment(gomock.Any(), gomock.Any(), 60).Return(tt.count, tt.err)

			app := NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(true), redisCache, nil)

			req := httptest.NewRequest(http.MethodGet, "/v1/customers", nil)
			req.Header.Set(constant.RequestHeaderForwardedFor, "10.0.0.1, 10.0.0.2")

			recorder := httptest.NewRecorder()
			app.RateLimit()(okHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedCode, recorder.Code)
			assert.Equal(t, tt.expectedRemaining, recorder.Header().Get(constant.RequestHeaderRateLimitRemaining))
		})
	}
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	app := NewAppMiddleware(otelMocks.NewOtel(), limiterConfig(false), redisCache, nil)

	recorder := httptest.NewRecorder()
	app.RateLimit()(okHandler).ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	assert.Equal(t, "192.0.2.1:1234", clientIP(req))

	req.Header.Set(constant.RequestHeaderRealIP, " 10.1.1.1 ")
	assert.Equal(t, "10.1.1.1", clientIP(req))

	req.Header.Set(constant.RequestHeaderForwardedFor, "10.2.2.2, 10.3.3.3")
	assert.Equal(t, "10.2.2.2", clientIP(req))
}

func TestRequestID(t *testing.T) {
	app := NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil, nil)

	var seen string

	handler := app.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background())
	req.Header.Set(constant.RequestHeaderRequestID, "req-42")

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", recorder.Header().Get(constant.RequestHeaderRequestID))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "req-42", seen)
	assert.Equal(t, seen, recorder.Header().Get(constant.RequestHeaderRequestID))
}
