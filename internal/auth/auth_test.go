package auth

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/seatmap/seatmap-editor/backend-go/internal/api"
	"github.com/seatmap/seatmap-editor/backend-go/internal/store"
)

const secret = "test-secret"

var userCols = []string{"id", "email", "password", "display_name", "created_at"}

func newService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewService(store.New(db), secret), mock
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) (api.Envelope, map[string]any) {
	t.Helper()
	var env api.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	data, _ := env.Data.(map[string]any)
	return env, data
}

func TestRegister(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(sqlmock.AnyArg(), "ann@example.com", sqlmock.AnyArg(), "Ann").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow("user_1", "ann@example.com", "hash", "Ann", time.Now()))

	rec := post(NewHandler(svc).Register, `{"email":"ann@example.com","password":"password1","displayName":"Ann"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	env, data := envelope(t, rec)
	assert.True(t, env.Success)
	userID, err := svc.ValidateToken(data["token"].(string))
	require.NoError(t, err)
	assert.Equal(t, "user_1", userID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService(t)

	rec := post(NewHandler(svc).Register, `{"email":"ann@example.com","password":"short","displayName":"Ann"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env, _ := envelope(t, rec)
	assert.Equal(t, api.CodeValidation, env.Error.Code)
}

func TestRegisterEmailTaken(t *testing.T) {
	svc, mock := newService(t)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).WillReturnError(&pgconn.PgError{Code: "23505"})

	rec := post(NewHandler(svc).Register, `{"email":"ann@example.com","password":"password1","displayName":"Ann"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		svc, mock := newService(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WithArgs("ann@example.com").
			WillReturnRows(sqlmock.NewRows(userCols).AddRow("user_1", "ann@example.com", string(hash), "Ann", time.Now()))

		rec := post(NewHandler(svc).Login, `{"email":"ann@example.com","password":"password1"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
		_, data := envelope(t, rec)
		assert.NotEmpty(t, data["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mock := newService(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow("user_1", "ann@example.com", string(hash), "Ann", time.Now()))

		rec := post(NewHandler(svc).Login, `{"email":"ann@example.com","password":"nope-nope"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		svc, mock := newService(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).WillReturnError(sql.ErrNoRows)

		rec := post(NewHandler(svc).Login, `{"email":"who@example.com","password":"password1"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	svc, _ := newService(t)
	token, err := svc.issueToken("user_9")
	require.NoError(t, err)

	var seen string
	h := svc.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusNoContent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/maps", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
	assert.Equal(t, "user_9", seen)
}

func TestValidateTokenRejectsOtherSecret(t *testing.T) {
	svc, _ := newService(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user_1", "exp": time.Now().Add(time.Hour).Unix()})
	signed, err := token.SignedString([]byte("other"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	svc, _ := newService(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "user_1", "exp": time.Now().Add(-time.Hour).Unix()})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = svc.ValidateToken(signed)
	assert.Error(t, err)
}
