package router

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shandysiswandi/gonotes/internal/pkg/config"
	"github.com/shandysiswandi/gonotes/internal/pkg/goerror"
	"github.com/shandysiswandi/gonotes/internal/pkg/instrument"
	"github.com/shandysiswandi/gonotes/internal/pkg/jwt"
	"github.com/shandysiswandi/gonotes/internal/pkg/uid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeJWT struct {
	claims jwt.Claims
	err    error
}

func (f fakeJWT) Generate(int64, string) (string, error) { return "token", nil }

func (f fakeJWT) Verify(string) (jwt.Claims, error) { return f.claims, f.err }

func newTestRouter(t *testing.T, verifier jwt.JWT) *Router {
	t.Helper()

	cfg, err := config.NewViperFromBytes("yaml", []byte("app:\n  maintenance:\n    endpoints: []\n"))
	require.NoError(t, err)

	return NewRouter(Config{
		Config:     cfg,
		UUID:       uid.NewUUID(),
		JWT:        verifier,
		Instrument: instrument.NewNoop(),
	})
}

func do(r *Router, method, path, token string, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func TestRouter_RootAndHealth(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{})

	rec := do(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])

	rec = do(r, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicEndpointSkipsAuth(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{err: errors.New("should not be called")})
	r.POST("/otp/send-otp", func(*Request) (any, error) {
		return map[string]any{"success": true}, nil
	})

	rec := do(r, http.MethodPost, "/otp/send-otp", "", "{}")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestRouter_ProtectedEndpointRequiresToken(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{claims: jwt.Claims{UserID: 7}})
	r.GET("/notes", func(*Request) (any, error) {
		return map[string]any{"success": true}, nil
	})

	rec := do(r, http.MethodGet, "/notes", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication required", body["message"])
}

func TestRouter_ProtectedEndpointRejectsBadToken(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{err: jwt.ErrInvalidToken})
	r.GET("/notes", func(*Request) (any, error) {
		return map[string]any{"success": true}, nil
	})

	rec := do(r, http.MethodGet, "/notes", "bad-token", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", decodeBody(t, rec)["message"])
}

func TestRouter_ProtectedEndpointInjectsClaims(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{claims: jwt.Claims{UserID: 7, UserEmail: "jane@example.com"}})
	r.GET("/notes", func(req *Request) (any, error) {
		claims := jwt.GetAuth(req.Context())
		if claims == nil {
			return nil, goerror.NewBusiness("Authentication required", goerror.CodeUnauthorized)
		}
		return map[string]any{"success": true, "user_id": claims.UserID}, nil
	})

	rec := do(r, http.MethodGet, "/notes", "good-token", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["user_id"])
}

func TestRouter_ErrorCodec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "BusinessNotFound",
			err:         goerror.NewBusiness("Note not found", goerror.CodeNotFound),
			wantCode:    http.StatusNotFound,
			wantMessage: "Note not found",
		},
		{
			name:        "TooManyRequests",
			err:         goerror.NewBusiness("Too many attempts, request a new code", goerror.CodeTooManyRequest),
			wantCode:    http.StatusTooManyRequests,
			wantMessage: "Too many attempts, request a new code",
		},
		{
			name:        "InvalidFormat",
			err:         goerror.NewInvalidFormat(),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
		{
			name:        "RawErrorDoesNotLeak",
			err:         errors.New("pq: connection refused"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "ServerErrorDoesNotLeakCause",
			err:         goerror.NewServer(errors.New("dial tcp: timeout")),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestRouter(t, fakeJWT{})
			r.POST("/otp/send-otp", func(*Request) (any, error) {
				return nil, tt.err
			})

			rec := do(r, http.MethodPost, "/otp/send-otp", "", "{}")
			assert.Equal(t, tt.wantCode, rec.Code)

			body := decodeBody(t, rec)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tt.wantMessage, body["message"])
			assert.NotContains(t, rec.Body.String(), "pq:")
			assert.NotContains(t, rec.Body.String(), "dial tcp")
		})
	}
}

func TestRouter_UnknownEndpoint(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, fakeJWT{})

	rec := do(r, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
