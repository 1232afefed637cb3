package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pradom/storefront/api/controllers/dto"
	"github.com/pradom/storefront/api/responses"
	"github.com/pradom/storefront/api/validators"
	catalogsvc "github.com/pradom/storefront/internal/catalog"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
)

const (
	maxCategoryLength = 64
	maxQueryLength    = 128
)

// Reader is the read surface of the product catalog.
type Reader interface {
	Categories() []string
	Filter(category, query string) []catalogsvc.Product
	Product(id string) (catalogsvc.Product, bool)
}

// Categories lists the filter choices in display order, "All" first.
func Categories(cat Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories := append([]string{catalogsvc.AllCategories}, cat.Categories()...)
		responses.WriteSuccess(w, map[string]any{"categories": categories})
	}
}

// ProductList filters the catalog by the category and q query parameters.
func ProductList(cat Reader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category, err := validators.ParseQueryString(r, "category", maxCategoryLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		query, err := validators.ParseQueryString(r, "q", maxQueryLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		category = validators.CatalogKey(category)
		if category == "" {
			category = catalogsvc.AllCategories
		}

		products := dto.NewProducts(cat.Filter(category, query))
		responses.WriteSuccess(w, map[string]any{
			"category": category,
			"query":    query,
			"count":    len(products),
			"products": products,
		})
	}
}

func ProductDetail(cat Reader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID := chi.URLParam(r, "productId")
		product, ok := cat.Product(productID)
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
					WithDetails(map[string]any{"product_id": productID}))
			return
		}
		responses.WriteSuccess(w, dto.NewProduct(product))
	}
}
