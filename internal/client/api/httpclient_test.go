package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"shopkeep/internal/client/credential"
	"shopkeep/internal/client/models"
	"shopkeep/internal/logging"
)

// memStore is an in-memory credential.Store for tests.
type memStore struct {
	token string
}

func (m *memStore) Get(ctx context.Context) (string, error) {
	if m.token == "" {
		return "", credential.ErrNotFound
	}
	return m.token, nil
}

func (m *memStore) Set(ctx context.Context, token string) error {
	m.token = token
	return nil
}

func (m *memStore) Clear(ctx context.Context) error {
	m.token = ""
	return nil
}

func newTestClient(t *testing.T, handler http.Handler, store credential.Store) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	if store == nil {
		store = &memStore{}
	}
	log := logging.NewWithWriter("test", "error", io.Discard)
	return NewHTTPClient(srv.URL, 5*time.Second, store, log)
}

func TestLogin_Success(t *testing.T) {
	var gotBody map[string]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(models.AuthResult{
			Token: "tok-1",
			User:  models.User{ID: "u1", Name: "Ana", Email: "ana@test.dev"},
		})
	}), nil)

	res, err := c.Login(context.Background(), "ana@test.dev", "secret123")
	require.NoError(t, err)
	require.Equal(t, "tok-1", res.Token)
	require.Equal(t, "Ana", res.User.Name)

	// backend wire field names
	require.Equal(t, "ana@test.dev", gotBody["correo"])
	require.Equal(t, "secret123", gotBody["password"])
}

func TestLogin_WrongCredentials(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"Invalid"}`))
	}), nil)

	_, err := c.Login(context.Background(), "ana@test.dev", "bad")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, "Invalid", ServerMessage(err))
}

func TestRegister_ValidationErrors(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/usuarios", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors":[{"msg":"email already registered","param":"correo"}]}`))
	}), nil)

	_, err := c.Register(context.Background(), "Ana", "ana@test.dev", "secret123")

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	require.Equal(t, "email already registered", valErr.First())
	require.Equal(t, "correo", valErr.Fields[0].Field)
}

func TestProducts_FetchesWithLimit(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/productos", r.URL.Path)
		require.Equal(t, "50", r.URL.Query().Get("limite"))

		json.NewEncoder(w).Encode(map[string]any{
			"total": 2,
			"productos": []models.Product{
				{ID: "p1", Name: "Latte"},
				{ID: "p2", Name: "Mocha"},
			},
		})
	}), nil)

	got, err := c.Products(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Latte", got[0].Name)
}

func TestProductByID_NotFound(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"msg":"product does not exist"}`))
	}), nil)

	_, err := c.ProductByID(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateProduct_SendsWireFields(t *testing.T) {
	var gotBody map[string]string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/productos", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(models.Product{
			ID:       "p1",
			Name:     "Latte",
			Category: models.Category{ID: "c1", Name: "Coffee"},
		})
	}), nil)

	got, err := c.CreateProduct(context.Background(), "Latte", "c1")
	require.NoError(t, err)
	require.Equal(t, "p1", got.ID)
	require.Equal(t, "Latte", gotBody["nombre"])
	require.Equal(t, "c1", gotBody["categoria"])
}

func TestUpdateProduct_PutsToProductPath(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/productos/p1", r.URL.Path)
		json.NewEncoder(w).Encode(models.Product{ID: "p1", Name: "Flat White"})
	}), nil)

	got, err := c.UpdateProduct(context.Background(), "p1", "Flat White", "c1")
	require.NoError(t, err)
	require.Equal(t, "Flat White", got.Name)
}

func TestCategories(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/categorias", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"total":      1,
			"categorias": []models.Category{{ID: "c1", Name: "Coffee"}},
		})
	}), nil)

	got, err := c.Categories(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Coffee", got[0].Name)
}

func TestUploadProductImage(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "photo.jpg")
	require.NoError(t, os.WriteFile(imgPath, []byte("jpeg-bytes"), 0o600))

	var gotFile []byte
	var gotName, gotMIME string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/uploads/productos/p1", r.URL.Path)

		file, header, err := r.FormFile("archivo")
		require.NoError(t, err)
		defer file.Close()

		gotFile, err = io.ReadAll(file)
		require.NoError(t, err)
		gotName = header.Filename
		gotMIME = header.Header.Get("Content-Type")

		w.WriteHeader(http.StatusOK)
	}), nil)

	asset := models.ImageAsset{
		URI:      "file://" + imgPath,
		FileName: "photo.jpg",
		MIMEType: "image/jpeg",
	}
	require.NoError(t, c.UploadProductImage(context.Background(), "p1", asset))
	require.Equal(t, []byte("jpeg-bytes"), gotFile)
	require.Equal(t, "photo.jpg", gotName)
	require.Equal(t, "image/jpeg", gotMIME)
}

func TestUploadProductImage_MissingFile(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}), nil)

	err := c.UploadProductImage(context.Background(), "p1", models.ImageAsset{URI: "file:///does/not/exist.jpg"})
	require.Error(t, err)
}

func TestTransportFailure_MapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from now on

	log := logging.NewWithWriter("test", "error", io.Discard)
	c := NewHTTPClient(srv.URL, time.Second, &memStore{}, log)

	_, err := c.Products(context.Background(), 50)
	require.ErrorIs(t, err, ErrUnavailable)
}
