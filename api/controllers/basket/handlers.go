package basket

import (
	"net/http"

	"github.com/pradom/storefront/api/controllers/dto"
	"github.com/pradom/storefront/api/middleware"
	"github.com/pradom/storefront/api/responses"
	"github.com/pradom/storefront/api/validators"
	"github.com/pradom/storefront/internal/storefront"
	"github.com/pradom/storefront/pkg/enums"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
)

const maxKeyLength = 64

// BasketFetch returns the session's basket with its derived totals.
func BasketFetch(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.View(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewBasket(view.Basket))
	}
}

// BasketAddItem adds one unit of a product option. Without a weight the product's first
// option is used.
func BasketAddItem(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, weight := validators.CatalogKey(payload.ProductID), validators.CatalogKey(payload.Weight)
		ctx := logg.WithBasketLine(r.Context(), productID, weight)
		view, err := svc.AddItem(ctx, middleware.SessionIDFromContext(ctx), productID, weight)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}

func BasketUpdateQuantity(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, weight := validators.CatalogKey(payload.ProductID), validators.CatalogKey(payload.Weight)
		ctx := logg.WithBasketLine(r.Context(), productID, weight)
		view, err := svc.UpdateQuantity(ctx, middleware.SessionIDFromContext(ctx), productID, weight, payload.Delta)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}

// BasketRemoveItem drops the line identified by the product_id and weight query parameters.
func BasketRemoveItem(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		productID, err := validators.RequireQueryString(r, "product_id", maxKeyLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		weight, err := validators.RequireQueryString(r, "weight", maxKeyLength)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := logg.WithBasketLine(r.Context(), productID, weight)
		view, err := svc.RemoveItem(ctx, middleware.SessionIDFromContext(ctx), productID, weight)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}

func BasketSetDeliveryMethod(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload deliveryMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		method, err := enums.ParseDeliveryMethod(payload.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid delivery method"))
			return
		}

		view, err := svc.SetDeliveryMethod(r.Context(), middleware.SessionIDFromContext(r.Context()), method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}
