package delivery

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	authdomain "medagenda-backend/internal/auth/domain"
	"medagenda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// fakeUserRepo is an in-memory credential store.
type fakeUserRepo struct {
	users map[string]*authdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*authdomain.User)}
}

func (f *fakeUserRepo) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*authdomain.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByName(name string) (*authdomain.User, error) {
	for _, u := range f.users {
		if u.Name == name {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll() ([]authdomain.PublicUser, error) {
	var out []authdomain.PublicUser
	for _, u := range f.users {
		out = append(out, *u.Public())
	}
	return out, nil
}

func (f *fakeUserRepo) Update(user *authdomain.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.users, id)
	return nil
}

func newGateRouter(t *testing.T, repo *fakeUserRepo) (*gin.Engine, *usecase.TokenService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := usecase.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", LoginRequired(tokens, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": UserID(c)})
	})
	return r, tokens
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRequired_MissingHeader(t *testing.T) {
	r, _ := newGateRouter(t, newFakeUserRepo())

	w := doRequest(r, "")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Login required"]}`, w.Body.String())
}

func TestLoginRequired_RejectsNonBearerScheme(t *testing.T) {
	repo := newFakeUserRepo()
	r, tokens := newGateRouter(t, repo)

	repo.users["u1"] = &authdomain.User{ID: "u1", Name: "ana", Email: "ana@x.com"}
	tok, err := tokens.Issue("u1")
	require.NoError(t, err)

	w := doRequest(r, "Basic "+tok)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Token inválido"]}`, w.Body.String())
}

func TestLoginRequired_MalformedHeader(t *testing.T) {
	r, _ := newGateRouter(t, newFakeUserRepo())

	w := doRequest(r, "Bearer too many parts")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Token inválido"]}`, w.Body.String())
}

func TestLoginRequired_InvalidToken(t *testing.T) {
	r, _ := newGateRouter(t, newFakeUserRepo())

	w := doRequest(r, "Bearer not.a.jwt")

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Token inválido"]}`, w.Body.String())
}

func TestLoginRequired_StaleCredentialLooksLikeInvalidToken(t *testing.T) {
	repo := newFakeUserRepo()
	r, tokens := newGateRouter(t, repo)

	// Token for a user that was deleted after issuance
	tok, err := tokens.Issue("deleted-user")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Token inválido"]}`, w.Body.String())

	// Same status and body as a plain bad token
	bad := doRequest(r, "Bearer not.a.jwt")
	require.Equal(t, bad.Code, w.Code)
	require.Equal(t, bad.Body.String(), w.Body.String())
}

func TestLoginRequired_AttachesUserID(t *testing.T) {
	repo := newFakeUserRepo()
	r, tokens := newGateRouter(t, repo)

	repo.users["u1"] = &authdomain.User{ID: "u1", Name: "ana", Email: "ana@x.com"}
	tok, err := tokens.Issue("u1")
	require.NoError(t, err)

	w := doRequest(r, "Bearer "+tok)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"userId":"u1"}`, w.Body.String())
}
