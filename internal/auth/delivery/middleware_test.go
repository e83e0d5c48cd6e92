package delivery

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifeops-backend/internal/apperr"
	authdomain "lifeops-backend/internal/auth/domain"
	"lifeops-backend/internal/backing"

	"github.com/gin-gonic/gin"
)

type stubAuth struct{}

func (stubAuth) ValidateToken(_ context.Context, token string) (*authdomain.Session, error) {
	if token != "good" {
		return nil, apperr.ErrSignedOut
	}
	return &authdomain.Session{UserID: "42", Email: "me@example.com", AccessToken: token, ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (stubAuth) ActiveSessions() []authdomain.Session { return nil }

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuthMiddleware(stubAuth{}))
	r.GET("/probe", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID":   c.GetString("userID"),
			"signedIn": c.GetBool("signedIn"),
			"token":    backing.AccessToken(c.Request.Context()),
		})
	})
	r.GET("/me", NewAuthHandler().Me)
	r.GET("/private", RequireSession(), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func get(t *testing.T, r http.Handler, path, auth string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMiddlewareAttachesSession(t *testing.T) {
	w := get(t, newRouter(), "/probe", "Bearer good")
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["userID"] != "42" || body["signedIn"] != true || body["token"] != "good" {
		t.Fatalf("body=%v", body)
	}
}

func TestMiddlewareLeavesBadTokensSignedOut(t *testing.T) {
	r := newRouter()
	for _, auth := range []string{"", "Bearer bad", "Basic abc", "Bearer"} {
		w := get(t, r, "/probe", auth)
		if w.Code != http.StatusOK {
			t.Fatalf("%q: code=%d", auth, w.Code)
		}
		var body map[string]any
		json.Unmarshal(w.Body.Bytes(), &body)
		if body["signedIn"] != false || body["token"] != "" {
			t.Fatalf("%q: body=%v", auth, body)
		}
	}
}

func TestRequireSession(t *testing.T) {
	r := newRouter()
	if w := get(t, r, "/private", ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("signed out code=%d, want 401", w.Code)
	}
	if w := get(t, r, "/private", "Bearer good"); w.Code != http.StatusNoContent {
		t.Fatalf("signed in code=%d, want 204", w.Code)
	}
}

func TestMe(t *testing.T) {
	w := get(t, newRouter(), "/me", "Bearer good")
	var body struct {
		Data struct {
			SignedIn bool   `json:"signedIn"`
			Email    string `json:"email"`
		} `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &body)
	if !body.Data.SignedIn || body.Data.Email != "me@example.com" {
		t.Fatalf("body=%s", w.Body.String())
	}
}
