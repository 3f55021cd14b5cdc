// Package api implements the HTTP client for the storefront backend.
// All requests go to a single configured base endpoint; the session token,
// when present in the credential store, is attached to every outgoing
// request by the transport-level interceptor.
package api

import (
	"context"

	"shopkeep/internal/client/models"
)

// Client is the remote API surface the rest of the client depends on.
//
// Contract:
//   - ValidateSession: GET the current session; returns a possibly refreshed
//     token together with the user profile.
//   - Login / Register: exchange credentials for a token + profile.
//   - Products: fetch up to limit products.
//   - ProductByID: fetch a single product; ErrNotFound when it does not exist.
//   - CreateProduct / UpdateProduct: mutate the remote collection and return
//     the resulting record.
//   - Categories: fetch the category id+label pairs.
//   - UploadProductImage: attach a local image to a product.
//
// All methods honor context cancellation/timeouts.
type Client interface {
	ValidateSession(ctx context.Context) (*models.AuthResult, error)
	Login(ctx context.Context, email, password string) (*models.AuthResult, error)
	Register(ctx context.Context, name, email, password string) (*models.AuthResult, error)
	Products(ctx context.Context, limit int) ([]models.Product, error)
	ProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, name, categoryID string) (*models.Product, error)
	UpdateProduct(ctx context.Context, id, name, categoryID string) (*models.Product, error)
	Categories(ctx context.Context) ([]models.Category, error)
	UploadProductImage(ctx context.Context, productID string, asset models.ImageAsset) error
}
