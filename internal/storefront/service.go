// Package storefront owns shopper sessions: each session's basket plus the browsing state
// around it (category, search text, basket drawer and navigation menu).
package storefront

import (
	"context"
	"fmt"
	"strings"

	"github.com/pradom/storefront/internal/basket"
	"github.com/pradom/storefront/internal/catalog"
	"github.com/pradom/storefront/pkg/enums"
	pkgerrors "github.com/pradom/storefront/pkg/errors"
	"github.com/pradom/storefront/pkg/logger"
)

// Service applies shopper events to sessions. Events on one session are serialized; each
// returns the session view after the event.
type Service interface {
	View(ctx context.Context, sessionID string) (*View, error)
	Products(ctx context.Context, sessionID string) ([]catalog.Product, error)
	AddItem(ctx context.Context, sessionID, productID, weight string) (*View, error)
	UpdateQuantity(ctx context.Context, sessionID, productID, weight string, delta int) (*View, error)
	RemoveItem(ctx context.Context, sessionID, productID, weight string) (*View, error)
	SetDeliveryMethod(ctx context.Context, sessionID string, method enums.DeliveryMethod) (*View, error)
	SetCategory(ctx context.Context, sessionID, category string) (*View, error)
	SetSearchQuery(ctx context.Context, sessionID, query string) (*View, error)
	SetBasketOpen(ctx context.Context, sessionID string, open bool) (*View, error)
	SetMenuOpen(ctx context.Context, sessionID string, open bool) (*View, error)
	Reset(ctx context.Context, sessionID string) error
}

// ServiceParams wires a Service. Observers receive the basket events of every session once
// the change has been saved.
type ServiceParams struct {
	Catalog   *catalog.Catalog
	Store     Store
	Observers []basket.Observer
	Logger    *logger.Logger
}

type service struct {
	catalog   *catalog.Catalog
	store     Store
	observers []basket.Observer
	logg      *logger.Logger
	locks     *sessionLocks
}

func NewService(params ServiceParams) (Service, error) {
	if params.Catalog == nil {
		return nil, fmt.Errorf("catalog required")
	}
	if params.Store == nil {
		return nil, fmt.Errorf("session store required")
	}
	return &service{
		catalog:   params.Catalog,
		store:     params.Store,
		observers: params.Observers,
		logg:      params.Logger,
		locks:     newSessionLocks(),
	}, nil
}

func (s *service) View(ctx context.Context, sessionID string) (*View, error) {
	var view *View
	err := s.read(ctx, sessionID, func(sess *Session) {
		view = sess.view()
	})
	return view, err
}

func (s *service) Products(ctx context.Context, sessionID string) ([]catalog.Product, error) {
	var products []catalog.Product
	err := s.read(ctx, sessionID, func(sess *Session) {
		products = s.catalog.Filter(sess.category, sess.query)
	})
	return products, err
}

func (s *service) AddItem(ctx context.Context, sessionID, productID, weight string) (*View, error) {
	product, ok := s.catalog.Product(productID)
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}

	var (
		option catalog.ProductOption
		found  bool
	)
	if weight == "" {
		option, found = product.DefaultOption()
	} else {
		option, found = product.Option(weight)
	}
	if !found {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product option not found").
			WithDetails(map[string]any{"product_id": productID, "weight": weight})
	}

	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.basket.AddItem(product, option)
	})
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID, weight string, delta int) (*View, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.basket.UpdateQuantity(productID, weight, delta)
	})
}

func (s *service) RemoveItem(ctx context.Context, sessionID, productID, weight string) (*View, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.basket.RemoveItem(productID, weight)
	})
}

func (s *service) SetDeliveryMethod(ctx context.Context, sessionID string, method enums.DeliveryMethod) (*View, error) {
	if !method.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid delivery method").
			WithDetails(map[string]any{"method": string(method)})
	}
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.basket.SetDeliveryMethod(method)
	})
}

func (s *service) SetCategory(ctx context.Context, sessionID, category string) (*View, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		category = catalog.AllCategories
	}
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.category = category
		sess.menuOpen = false
	})
}

func (s *service) SetSearchQuery(ctx context.Context, sessionID, query string) (*View, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.query = query
	})
}

func (s *service) SetBasketOpen(ctx context.Context, sessionID string, open bool) (*View, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.basketOpen = open
	})
}

func (s *service) SetMenuOpen(ctx context.Context, sessionID string, open bool) (*View, error) {
	return s.mutate(ctx, sessionID, func(sess *Session) {
		sess.menuOpen = open
	})
}

func (s *service) Reset(ctx context.Context, sessionID string) error {
	if err := requireSessionID(sessionID); err != nil {
		return err
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if err := s.store.Delete(ctx, sessionID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unavailable")
	}
	return nil
}

func (s *service) read(ctx context.Context, sessionID string, fn func(*Session)) error {
	if err := requireSessionID(sessionID); err != nil {
		return err
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	sess, _, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	fn(sess)
	return nil
}

func (s *service) mutate(ctx context.Context, sessionID string, fn func(*Session)) (*View, error) {
	if err := requireSessionID(sessionID); err != nil {
		return nil, err
	}
	unlock := s.locks.lock(sessionID)
	defer unlock()

	sess, pending, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	fn(sess)

	if err := s.store.Save(ctx, sessionID, sess.state()); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unavailable")
	}
	// observers only hear about events that were persisted
	pending.flush(s.observers)
	return sess.view(), nil
}

func (s *service) load(ctx context.Context, sessionID string) (*Session, *eventBuffer, error) {
	state, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unavailable")
	}
	if !found {
		state = NewState()
		if s.logg != nil {
			s.logg.Debug(s.logg.WithShopperID(ctx, sessionID), "session.new")
		}
	}
	pending := &eventBuffer{}
	return restoreSession(sessionID, state, pending), pending, nil
}

func requireSessionID(sessionID string) error {
	if strings.TrimSpace(sessionID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "session id required")
	}
	return nil
}
