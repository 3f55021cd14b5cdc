package cli

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"shopkeep/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	if err := a.products.LoadAll(ctx); err != nil {
		printlnFn("Failed to load products:", err.Error())
		return err
	}

	items := a.products.Products()
	if len(items) == 0 {
		printlnFn("No products")
		return nil
	}

	for _, p := range items {
		line := fmt.Sprintf("%s  %s (%s)", p.ID, p.Name, p.Category.Name)
		if p.ImageRef != "" {
			line += "  [img]"
		}
		printlnFn(line)
	}
	return nil
}

func (a *App) Show(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}

	p, err := a.products.LoadByID(ctx, id)
	if err != nil {
		printlnFn("Failed to load product:", err.Error())
		return err
	}

	printlnFn("Id:      ", p.ID)
	printlnFn("Name:    ", p.Name)
	printlnFn("Category:", p.Category.Name)
	if p.ImageRef != "" {
		printlnFn("Image:   ", p.ImageRef)
	}
	return nil
}

func (a *App) Add(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter product name", a.out)
	if err != nil {
		return err
	}
	categoryID, err := GetSimpleText(a.reader, "Enter category id (see 'categories')", a.out)
	if err != nil {
		return err
	}

	created, err := a.products.Create(ctx, categoryID, name)
	if err != nil {
		printlnFn("Failed to create product:", err.Error())
		return err
	}

	printlnFn("Created product", created.ID)
	return nil
}

func (a *App) Update(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}
	name, err := GetSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}
	categoryID, err := GetSimpleText(a.reader, "Enter category id", a.out)
	if err != nil {
		return err
	}

	if err := a.products.Update(ctx, categoryID, name, id); err != nil {
		printlnFn("Failed to update product:", err.Error())
		return err
	}

	printlnFn("Updated product", id)
	return nil
}

func (a *App) Upload(ctx context.Context) error {
	id, err := GetSimpleText(a.reader, "Enter product id", a.out)
	if err != nil {
		return err
	}
	path, err := GetSimpleText(a.reader, "Enter image path", a.out)
	if err != nil {
		return err
	}

	asset := models.ImageAsset{
		URI:      path,
		FileName: filepath.Base(path),
		MIMEType: mime.TypeByExtension(filepath.Ext(path)),
	}

	if err := a.products.UploadImage(ctx, asset, id); err != nil {
		printlnFn("Failed to upload image:", err.Error())
		return err
	}

	printlnFn("Image uploaded for product", id)
	return nil
}

func (a *App) Categories(ctx context.Context) error {
	cats, err := a.products.LoadCategories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", err.Error())
		return err
	}

	for _, c := range cats {
		printlnFn(c.ID, " ", c.Name)
	}
	return nil
}
