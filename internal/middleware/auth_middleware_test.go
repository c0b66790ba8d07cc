package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"insureAdvisor/domain"
	"insureAdvisor/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

type fakeUserFinder struct {
	user   domain.User
	err    error
	called bool
}

func (f *fakeUserFinder) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	f.called = true
	return f.user, f.err
}

func signToken(t *testing.T, email string, expiresAt time.Time) string {
	t.Helper()

	claims := utils.JWTClaims{
		Email:    email,
		UserType: domain.UserTypeCustomer,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func runAuth(t *testing.T, authHeader string, finder *fakeUserFinder) (*httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reachedNext := false
	handler := AuthMiddleware(finder)(func(c echo.Context) error {
		reachedNext = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec, reachedNext
}

func TestAuthMiddleware(t *testing.T) {
	utils.InitJWT("test-secret")

	t.Run("missing header", func(t *testing.T) {
		finder := &fakeUserFinder{}
		rec, next := runAuth(t, "", finder)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if next || finder.called {
			t.Error("request must stop before any lookup")
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		finder := &fakeUserFinder{}
		rec, next := runAuth(t, "Token abc", finder)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if next || finder.called {
			t.Error("request must stop before any lookup")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		finder := &fakeUserFinder{}
		token := signToken(t, "gone@test.local", time.Now().Add(-time.Hour))
		rec, next := runAuth(t, "Bearer "+token, finder)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if next || finder.called {
			t.Error("expired token must stop before any lookup")
		}
	})

	t.Run("blank subject", func(t *testing.T) {
		finder := &fakeUserFinder{}
		token := signToken(t, "", time.Now().Add(time.Hour))
		rec, next := runAuth(t, "Bearer "+token, finder)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
		if next || finder.called {
			t.Error("blank subject must stop before any lookup")
		}
	})

	t.Run("unknown subject", func(t *testing.T) {
		finder := &fakeUserFinder{err: domain.ErrUserNotFound}
		token := signToken(t, "ghost@test.local", time.Now().Add(time.Hour))
		rec, next := runAuth(t, "Bearer "+token, finder)

		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
		if next {
			t.Error("unknown subject must not reach the handler")
		}
	})

	t.Run("lookup failure", func(t *testing.T) {
		// a storage fault is not an unknown account
		finder := &fakeUserFinder{err: errors.New("connection refused")}
		token := signToken(t, "ok@test.local", time.Now().Add(time.Hour))
		rec, next := runAuth(t, "Bearer "+token, finder)

		if rec.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", rec.Code)
		}
		if next {
			t.Error("lookup failure must not reach the handler")
		}
	})

	t.Run("valid token", func(t *testing.T) {
		finder := &fakeUserFinder{user: domain.User{
			ID:       3,
			Email:    "ok@test.local",
			UserType: domain.UserTypeCustomer,
		}}
		token := signToken(t, "ok@test.local", time.Now().Add(time.Hour))
		rec, next := runAuth(t, "Bearer "+token, finder)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", rec.Code)
		}
		if !next {
			t.Error("valid token should reach the handler")
		}
	})
}

func TestCompanyOnly(t *testing.T) {
	e := echo.New()

	run := func(userType interface{}) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if userType != nil {
			c.Set("user_type", userType)
		}

		handler := CompanyOnly()(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		if err := handler(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		return rec.Code
	}

	if code := run(domain.UserTypeCompany); code != http.StatusOK {
		t.Errorf("company account: status = %d, want 200", code)
	}
	if code := run(domain.UserTypeCustomer); code != http.StatusForbidden {
		t.Errorf("customer account: status = %d, want 403", code)
	}
	if code := run(nil); code != http.StatusForbidden {
		t.Errorf("no user type: status = %d, want 403", code)
	}
}
