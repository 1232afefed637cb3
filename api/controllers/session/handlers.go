package session

import (
	"context"
	"net/http"

	"github.com/pradom/storefront/api/controllers/dto"
	"github.com/pradom/storefront/api/middleware"
	"github.com/pradom/storefront/api/responses"
	"github.com/pradom/storefront/api/validators"
	"github.com/pradom/storefront/internal/storefront"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
)

func SessionFetch(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := svc.View(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}

// SessionProducts lists the products visible under the session's category and search text.
func SessionProducts(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := svc.Products(r.Context(), middleware.SessionIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		out := dto.NewProducts(products)
		responses.WriteSuccess(w, map[string]any{"count": len(out), "products": out})
	}
}

// SessionSetFilters updates the category and/or search text. Omitted fields keep their value.
func SessionSetFilters(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload filtersRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Category == nil && payload.Query == nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "category or query required"))
			return
		}

		ctx := r.Context()
		sessionID := middleware.SessionIDFromContext(ctx)

		var (
			view *storefront.View
			err  error
		)
		if payload.Category != nil {
			if view, err = svc.SetCategory(ctx, sessionID, *payload.Category); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}
		if payload.Query != nil {
			if view, err = svc.SetSearchQuery(ctx, sessionID, *payload.Query); err != nil {
				responses.WriteError(ctx, logg, w, err)
				return
			}
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}

func SessionSetBasketOpen(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return toggle(logg, svc.SetBasketOpen)
}

func SessionSetMenuOpen(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return toggle(logg, svc.SetMenuOpen)
}

// SessionReset forgets the session: basket, filters and drawers start over.
func SessionReset(svc storefront.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Reset(r.Context(), middleware.SessionIDFromContext(r.Context())); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

type toggleFunc func(ctx context.Context, sessionID string, open bool) (*storefront.View, error)

func toggle(logg *logger.Logger, apply toggleFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload toggleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		view, err := apply(r.Context(), middleware.SessionIDFromContext(r.Context()), *payload.Open)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, dto.NewSession(view))
	}
}
