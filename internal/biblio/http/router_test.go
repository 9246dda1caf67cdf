package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	httpapi "github.com/atelierlivre/biblio/internal/biblio/http"
	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/atelierlivre/biblio/internal/biblio/store/drivers/sqlite"
	"github.com/atelierlivre/biblio/pkg/cryptox"
	"github.com/atelierlivre/biblio/pkg/jwtx"
	"github.com/atelierlivre/biblio/pkg/slogx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "biblio-http-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

type testAPI struct {
	router     *httpapi.Router
	adminToken string
	userToken  string
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "biblio-test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec([]byte("router-test-secret"))
	require.NoError(t, err)

	auth := &service.AuthService{Store: st, Codec: codec, TokenTTL: time.Hour}

	router := httpapi.NewRouter(codec, "test", st, slogx.New(slogx.Config{
		Service: "biblio",
		Level:   "error",
		Format:  "text",
	}))
	router.AuthService = auth
	router.BookService = &service.BookService{Store: st}
	router.AuthorService = &service.AuthorService{Store: st}
	router.ApplyRoutes()

	ctx := t.Context()
	admin, err := auth.Register(ctx, "admin", "admin-password", []string{domain.RoleAdmin})
	require.NoError(t, err)
	user, err := auth.Register(ctx, "lecteur", "user-password", nil)
	require.NoError(t, err)

	return &testAPI{router: router, adminToken: admin.Token, userToken: user.Token}
}

// Each request gets a unique client IP so per-IP rate limits never interfere
// across test cases.
var reqCounter atomic.Int64

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("X-Forwarded-For", fmt.Sprintf("10.1.%d.%d", reqCounter.Add(1)%250, reqCounter.Load()/250%250))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	api := setupAPI(t)

	t.Run("success", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"uuid": "lecteur", "password": "user-password",
		})
		require.Equal(t, http.StatusOK, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Connexion réussie", body["message"])
		assert.NotEmpty(t, body["token"])
		assert.EqualValues(t, 3600, body["expiresIn"])
	})

	t.Run("missing fields", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/login", "", map[string]string{"uuid": "lecteur"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "UUID et mot de passe sont requis", decodeBody(t, rec)["error"])
	})

	t.Run("unknown user", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"uuid": "inconnu", "password": "whatever",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Utilisateur non trouvé", decodeBody(t, rec)["error"])
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/login", "", map[string]string{
			"uuid": "lecteur", "password": "mauvais",
		})
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Mot de passe incorrect", decodeBody(t, rec)["error"])
	})
}

func TestAuthenticationGate(t *testing.T) {
	api := setupAPI(t)

	t.Run("no token", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books", "", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Authentication required", decodeBody(t, rec)["error"])
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books", "not.a.jwt", nil)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["error"], "Token JWT invalide:")
	})

	t.Run("valid token passes", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books", api.userToken, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRegisterEndpoint(t *testing.T) {
	api := setupAPI(t)

	t.Run("requires admin", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/register", api.userToken, map[string]any{
			"uuid": "nouveau", "password": "pw",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Accès refusé", decodeBody(t, rec)["error"])
	})

	t.Run("admin creates user", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/register", api.adminToken, map[string]any{
			"uuid": "nouveau", "password": "pw",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Utilisateur créé avec succès", body["message"])
		assert.NotEmpty(t, body["token"])
	})

	t.Run("duplicate uuid", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/register", api.adminToken, map[string]any{
			"uuid": "nouveau", "password": "pw",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Cet UUID existe déjà", decodeBody(t, rec)["error"])
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/register", "", map[string]any{
			"uuid": "x", "password": "y",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBooksEndpoints(t *testing.T) {
	api := setupAPI(t)

	t.Run("mutations require admin", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/books", api.userToken, map[string]any{
			"title": "Nana", "author": "Émile Zola",
		})
		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Accès refusé", decodeBody(t, rec)["error"])
	})

	var bookID float64

	t.Run("admin creates", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/books", api.adminToken, map[string]any{
			"title": "Nana", "author": "Émile Zola", "publishedYear": 1880,
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		body := decodeBody(t, rec)
		assert.Equal(t, "Nana", body["title"])
		assert.Equal(t, "Émile Zola", body["author"])
		assert.EqualValues(t, 1880, body["publishedYear"])
		bookID = body["id"].(float64)
	})

	t.Run("duplicate conflict", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/books", api.adminToken, map[string]any{
			"title": "Nana", "author": "Émile Zola",
		})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Ce livre existe déjà pour cet auteur", decodeBody(t, rec)["error"])
	})

	t.Run("any user lists and gets", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books", api.userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
		require.Len(t, list, 1)

		rec = api.do(t, http.MethodGet, fmt.Sprintf("/api/books/%d", int64(bookID)), api.userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Nana", decodeBody(t, rec)["title"])
	})

	t.Run("update", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, fmt.Sprintf("/api/books/%d", int64(bookID)), api.adminToken, map[string]any{
			"title": "Nana", "author": "Zola",
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Zola", decodeBody(t, rec)["author"])
	})

	t.Run("get unknown", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books/9999", api.userToken, nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Livre non trouvé", decodeBody(t, rec)["error"])
	})

	t.Run("bad id", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/books/abc", api.userToken, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := api.do(t, http.MethodDelete, fmt.Sprintf("/api/books/%d", int64(bookID)), api.adminToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = api.do(t, http.MethodDelete, fmt.Sprintf("/api/books/%d", int64(bookID)), api.adminToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthorsEndpoints(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(t, http.MethodPost, "/api/authors", api.adminToken, map[string]any{"name": "Marcel Proust"})
	require.Equal(t, http.StatusCreated, rec.Code)
	authorID := int64(decodeBody(t, rec)["id"].(float64))

	t.Run("duplicate name", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/authors", api.adminToken, map[string]any{"name": "Marcel Proust"})
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Cet auteur existe déjà", decodeBody(t, rec)["error"])
	})

	t.Run("delete refused while books remain", func(t *testing.T) {
		rec := api.do(t, http.MethodPost, "/api/books", api.adminToken, map[string]any{
			"title": "Du côté de chez Swann", "author": "Marcel Proust",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = api.do(t, http.MethodDelete, fmt.Sprintf("/api/authors/%d", authorID), api.adminToken, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Cet auteur a encore des livres", decodeBody(t, rec)["error"])
	})

	t.Run("rename", func(t *testing.T) {
		rec := api.do(t, http.MethodPut, fmt.Sprintf("/api/authors/%d", authorID), api.adminToken, map[string]any{"name": "M. Proust"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "M. Proust", decodeBody(t, rec)["name"])
	})

	t.Run("list for plain user", func(t *testing.T) {
		rec := api.do(t, http.MethodGet, "/api/authors", api.userToken, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []map[string]any
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
		assert.Len(t, list, 1)
	})
}

func TestMeEndpoint(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(t, http.MethodGet, "/api/me", api.adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "admin", body["uuid"])
	assert.ElementsMatch(t, []any{"ROLE_USER", "ROLE_ADMIN"}, body["roles"])
}

func TestHealthEndpoints(t *testing.T) {
	api := setupAPI(t)

	rec := api.do(t, http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])

	rec = api.do(t, http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["checks"].(map[string]any)["database"])
}
