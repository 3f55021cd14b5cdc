package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"shopkeep/internal/client/credential"
	"shopkeep/internal/client/models"
	"shopkeep/internal/logging"
)

// HTTPClient talks JSON to the storefront backend under a fixed base URL.
// The token interceptor lives in the transport, so every method gets the
// stored credential attached without asking for it.
//
// There is deliberately no retry or backoff here: failures surface
// immediately to the caller.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	log     logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, creds credential.Store, log logging.Logger) *HTTPClient {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc: &http.Client{
			Transport: &tokenTransport{next: transport, creds: creds},
			Timeout:   timeout,
		},
		log: log.With("component", "api"),
	}
}

// do sends one JSON request and decodes the response into out (when out is
// non-nil). Non-2xx responses are translated via decodeError.
func (c *HTTPClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		err := decodeError(resp)
		c.log.Debug(ctx, "request failed", "method", method, "path", path, "error", err)
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"correo"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"nombre"`
	Email    string `json:"correo"`
	Password string `json:"password"`
}

type productRequest struct {
	Name       string `json:"nombre"`
	CategoryID string `json:"categoria"`
}

type productsResponse struct {
	Total    int              `json:"total"`
	Products []models.Product `json:"productos"`
}

type categoriesResponse struct {
	Total      int               `json:"total"`
	Categories []models.Category `json:"categorias"`
}

func (c *HTTPClient) ValidateSession(ctx context.Context) (*models.AuthResult, error) {
	var res models.AuthResult
	if err := c.do(ctx, http.MethodGet, "/auth", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	req := loginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.AuthResult, error) {
	var res models.AuthResult
	req := registerRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/usuarios", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Products(ctx context.Context, limit int) ([]models.Product, error) {
	var res productsResponse
	path := "/productos?limite=" + strconv.Itoa(limit)
	if err := c.do(ctx, http.MethodGet, path, nil, &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *HTTPClient) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	var res models.Product
	if err := c.do(ctx, http.MethodGet, "/productos/"+url.PathEscape(id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, name, categoryID string) (*models.Product, error) {
	var res models.Product
	req := productRequest{Name: name, CategoryID: categoryID}
	if err := c.do(ctx, http.MethodPost, "/productos", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id, name, categoryID string) (*models.Product, error) {
	var res models.Product
	req := productRequest{Name: name, CategoryID: categoryID}
	if err := c.do(ctx, http.MethodPut, "/productos/"+url.PathEscape(id), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var res categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/categorias", nil, &res); err != nil {
		return nil, err
	}
	return res.Categories, nil
}

// UploadProductImage reads the local file referenced by asset and PUTs it as
// a multipart body to the upload endpoint for the given product. A local
// "file://" scheme prefix on the URI is stripped before reading.
func (c *HTTPClient) UploadProductImage(ctx context.Context, productID string, asset models.ImageAsset) error {
	localPath := strings.TrimPrefix(asset.URI, "file://")

	data, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read image %s: %w", localPath, err)
	}

	fileName := asset.FileName
	if fileName == "" {
		fileName = filepath.Base(localPath)
	}
	mimeType := asset.MIMEType
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="archivo"; filename=%q`, fileName))
	hdr.Set("Content-Type", mimeType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("create multipart: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("write multipart: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("finish multipart: %w", err)
	}

	uploadURL := c.baseURL + "/uploads/productos/" + url.PathEscape(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	return nil
}
