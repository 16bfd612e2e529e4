package delivery

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"medagenda-backend/internal/auth/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *fakeUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := newFakeUserRepo()
	tokens, err := usecase.NewTokenService("test-secret", 72*time.Hour)
	require.NoError(t, err)

	handler := NewAuthHandler(usecase.NewAuthUsecase(repo, tokens))
	loginRequired := LoginRequired(tokens, repo)

	r := gin.New()
	r.POST("/users", handler.Register)
	r.GET("/users", handler.ListUsers)
	r.GET("/users/logged", loginRequired, handler.LoggedUser)
	r.GET("/users/:id", handler.GetUser)
	r.PUT("/users", loginRequired, handler.UpdateName)
	r.DELETE("/users/:id", loginRequired, handler.DeleteUser)
	r.POST("/tokens", handler.Login)
	return r, repo
}

func postJSON(r *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getWithAuth(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupLoginLoggedUserFlow(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/users", `{"name":"ana","email":"ana@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Usuário criado com sucesso"}`, w.Body.String())

	w = postJSON(r, "/tokens", `{"email":"ana@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tokenResp))
	require.NotEmpty(t, tokenResp.Token)

	w = getWithAuth(r, "/users/logged", tokenResp.Token)
	require.Equal(t, http.StatusOK, w.Code)

	var logged map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	require.Equal(t, "ana", logged["name"])
	require.Equal(t, "ana@x.com", logged["email"])
	require.NotEmpty(t, logged["id"])
	require.NotContains(t, logged, "password")
}

func TestRegister_ValidationEnvelope(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/users", `{"name":"a","email":"bad","password":"1"}`, nil)

	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"errors":[
		"Campo NOME precisa ter entre 2 e 15 caracteres",
		"Email inválido",
		"Campo SENHA precisa ter entre 6 e 20 caracteres"
	]}`, w.Body.String())
}

func TestLogin_SameResponseForWrongPasswordAndUnknownEmail(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := postJSON(r, "/users", `{"name":"ana","email":"ana@x.com","password":"secret1"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	wrongPassword := postJSON(r, "/tokens", `{"email":"ana@x.com","password":"secret2"}`, nil)
	unknownEmail := postJSON(r, "/tokens", `{"email":"ghost@x.com","password":"secret1"}`, nil)

	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	require.Equal(t, wrongPassword.Code, unknownEmail.Code)
	require.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	require.JSONEq(t, `{"error":["Email ou senha incorreto"]}`, wrongPassword.Body.String())
}

func TestListUsers_EmptyAndPopulated(t *testing.T) {
	r, _ := newAuthRouter(t)

	w := getWithAuth(r, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"message":"Nenhum usuário encontrado"}`, w.Body.String())

	postJSON(r, "/users", `{"name":"ana","email":"ana@x.com","password":"secret1"}`, nil)

	w = getWithAuth(r, "/users", "")
	require.Equal(t, http.StatusOK, w.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	require.Len(t, users, 1)
	require.Equal(t, "ana", users[0]["name"])
	require.NotContains(t, users[0], "password")
}

func TestDeleteUser_RequiresLogin(t *testing.T) {
	r, repo := newAuthRouter(t)

	postJSON(r, "/users", `{"name":"ana","email":"ana@x.com","password":"secret1"}`, nil)
	ana, err := repo.FindByName("ana")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/users/"+ana.ID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":["Login required"]}`, w.Body.String())
}
