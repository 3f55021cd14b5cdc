package models

// Category is an opaque id+label pair supplied by the backend.
type Category struct {
	ID   string `json:"_id"`
	Name string `json:"nombre"`
}

// Product is a storefront item. ID is assigned by the backend and is empty
// before the first successful create call. ImageRef is an optional locator
// for the product picture.
type Product struct {
	ID       string   `json:"_id"`
	Name     string   `json:"nombre"`
	Category Category `json:"categoria"`
	ImageRef string   `json:"img,omitempty"`
}

// ImageAsset describes a locally picked image to be uploaded for a product.
// URI may carry a local-file scheme prefix ("file://"), which the uploader
// strips before reading the file.
type ImageAsset struct {
	URI      string
	FileName string
	MIMEType string
}
