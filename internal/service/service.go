package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/navigation"
	"github.com/samandr77/microservices/checkout/internal/poller"
	"github.com/samandr77/microservices/checkout/internal/reconciler"
	"github.com/samandr77/microservices/checkout/internal/surface"
	"github.com/samandr77/microservices/checkout/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks -typed

type Repository interface {
	CartItems(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error)
	AddCartItem(ctx context.Context, item entity.CartItem) (entity.CartItem, error)
	RemoveCartItem(ctx context.Context, userID, itemID uuid.UUID) error
	SaveOrder(ctx context.Context, order entity.PlacedOrder) error
	PlacedOrder(ctx context.Context, orderID string) (entity.PlacedOrder, error)
	PruneOrders(ctx context.Context, before time.Time) (int64, error)
	Outcome(ctx context.Context, orderID, stage string) (entity.Outcome, error)
	ReopenPayment(ctx context.Context, orderID string) error
	PruneOutcomes(ctx context.Context, before time.Time) (int64, error)
}

type Storefront interface {
	CreateOrder(ctx context.Context, req entity.OrderRequest) (entity.Order, error)
	CreatePaymentSession(ctx context.Context, method entity.PaymentMethod, orderID string) (entity.PaymentSession, error)
	PaymentStatus(ctx context.Context, identifier string) (entity.StatusReport, error)
}

type Reconciler interface {
	OrderPlaced(ctx context.Context, t reconciler.Target, message string) error
	PaymentCompleted(ctx context.Context, t reconciler.Target, report entity.StatusReport) error
	PaymentFailed(ctx context.Context, t reconciler.Target, report *entity.StatusReport) error
	PaymentTimedOut(ctx context.Context, t reconciler.Target, attempts int)
}

type FlashStore interface {
	Consume(ctx context.Context, userID uuid.UUID, orderID string) (navigation.Flash, error)
}

type Board interface {
	Snapshot(orderID string) (surface.View, bool)
	MarkClosedByUser(orderID string) error
}

// Config selects the payment surface per gateway and the poll budget per surface.
type Config struct {
	Surfaces         map[entity.PaymentMethod]entity.SurfaceKind
	Polls            map[entity.SurfaceKind]poller.Config
	SessionTTL       time.Duration
	OutcomeRetention time.Duration
	FinishedRunTTL   time.Duration
}

type Service struct {
	repo       Repository
	store      Storefront
	rec        Reconciler
	flash      FlashStore
	board      Board
	presenters map[entity.SurfaceKind]surface.Presenter
	poller     *poller.Poller
	clock      clockwork.Clock
	cfg        Config

	mu   sync.Mutex
	runs map[string]*run
	wg   sync.WaitGroup
}

func New(
	repo Repository,
	store Storefront,
	rec Reconciler,
	flash FlashStore,
	board Board,
	presenters map[entity.SurfaceKind]surface.Presenter,
	clock clockwork.Clock,
	cfg Config,
) *Service {
	return &Service{
		repo:       repo,
		store:      store,
		rec:        rec,
		flash:      flash,
		board:      board,
		presenters: presenters,
		poller:     poller.New(store, clock),
		clock:      clock,
		cfg:        cfg,
		runs:       make(map[string]*run),
	}
}

type CheckoutResult struct {
	Order   entity.Order
	Session *entity.PaymentSession
	// SessionErr is set when the order was placed but no payment session could be created.
	// The payment can be retried later with RetryPayment.
	SessionErr error
}

// Checkout places an order from the user's cart and starts the payment of online methods.
func (s *Service) Checkout(ctx context.Context, req entity.CheckoutRequest) (CheckoutResult, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	err = req.Validate()
	if err != nil {
		return CheckoutResult{}, err
	}

	items, err := s.repo.CartItems(ctx, user.ID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("get cart of user %s: %w", user.ID, err)
	}

	if len(items) == 0 {
		return CheckoutResult{}, entity.ErrEmptyCart
	}

	order, err := s.store.CreateOrder(ctx, entity.OrderRequest{
		ShippingAddress: req.Shipping.String(),
		Notes:           req.Notes,
		Method:          req.Method,
		Items:           items,
	})
	if err != nil {
		return CheckoutResult{}, err
	}

	ctx = logger.WithOrderID(ctx, order.ID)
	slog.InfoContext(ctx, "order created", "number", order.Number, "method", req.Method.String())

	// Without the record the order can not be paid again later, but it is placed already.
	err = s.repo.SaveOrder(ctx, entity.PlacedOrder{
		ID:        order.ID,
		Number:    order.Number,
		UserID:    user.ID,
		Method:    req.Method,
		CreatedAt: s.clock.Now(),
	})
	if err != nil {
		slog.ErrorContext(ctx, "save placed order", "error", err)
	}

	result := CheckoutResult{Order: order}
	target := reconciler.Target{User: user, Order: order.Ref()}

	if req.Method.IsSynchronous() {
		err = s.rec.OrderPlaced(ctx, target, "")
		if err != nil {
			slog.ErrorContext(ctx, "reconcile placed order", "error", err)
		}

		return result, nil
	}

	session, err := s.startPayment(ctx, user, order.Ref(), req.Method, false)
	if err != nil {
		if !errors.Is(err, entity.ErrSessionCreationFailed) {
			slog.ErrorContext(ctx, "start payment", "error", err)
		}

		result.SessionErr = err

		err = s.rec.OrderPlaced(ctx, target, reconciler.MessageNoPaymentLink)
		if err != nil {
			slog.ErrorContext(ctx, "reconcile placed order", "error", err)
		}

		return result, nil
	}

	result.Session = &session

	return result, nil
}

// RetryPayment creates a fresh payment session for an order the user placed through checkout.
// A running payment of the order is stopped first. Paid orders are refused.
func (s *Service) RetryPayment(
	ctx context.Context,
	order entity.OrderRef,
	method entity.PaymentMethod,
) (entity.PaymentSession, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.PaymentSession{}, err
	}

	ctx = logger.WithOrderID(ctx, order.ID)

	placed, err := s.repo.PlacedOrder(ctx, order.ID)
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return entity.PaymentSession{}, fmt.Errorf("get order %s: %w", order.ID, err)
	}

	if err != nil || placed.UserID != user.ID {
		return entity.PaymentSession{}, fmt.Errorf("order %s: %w", order.ID, entity.ErrNotFound)
	}

	if order.Number == "" {
		order.Number = placed.Number
	}

	if method == "" {
		method = placed.Method

		if prev, ok := s.activeRun(order.ID); ok {
			method = prev.method
		}
	}

	if prev, ok := s.lookupRun(order.ID); ok {
		if prev.paid() {
			return entity.PaymentSession{}, fmt.Errorf("%w: order %s is already paid", entity.ErrInvalidArgument, order.ID)
		}

		// A failed outcome must be recorded before the ledger is reopened.
		_, err = prev.redeliver(ctx)
		if err != nil {
			return entity.PaymentSession{}, fmt.Errorf("reconcile previous payment of order %s: %w", order.ID, err)
		}
	}

	if method.IsSynchronous() {
		return entity.PaymentSession{}, fmt.Errorf("%w: method %s needs no payment session", entity.ErrInvalidArgument, method)
	}

	err = method.Validate()
	if err != nil {
		return entity.PaymentSession{}, err
	}

	outcome, err := s.repo.Outcome(ctx, order.ID, entity.OutcomePaid.Stage())
	if err != nil && !errors.Is(err, entity.ErrNotFound) {
		return entity.PaymentSession{}, fmt.Errorf("get payment outcome of order %s: %w", order.ID, err)
	}

	switch outcome {
	case entity.OutcomePaid:
		return entity.PaymentSession{}, fmt.Errorf("%w: order %s is already paid", entity.ErrInvalidArgument, order.ID)
	case entity.OutcomeFailed:
		err = s.repo.ReopenPayment(ctx, order.ID)
		if err != nil {
			return entity.PaymentSession{}, fmt.Errorf("reopen payment of order %s: %w", order.ID, err)
		}
	}

	slog.InfoContext(ctx, "payment retry requested", "method", method.String())

	return s.startPayment(ctx, user, order, method, true)
}

// startPayment creates a session, shows it and starts polling its status in the background.
func (s *Service) startPayment(
	ctx context.Context,
	user entity.User,
	order entity.OrderRef,
	method entity.PaymentMethod,
	replace bool,
) (entity.PaymentSession, error) {
	kind := s.surfaceKind(method)

	presenter, ok := s.presenters[kind]
	if !ok {
		return entity.PaymentSession{}, fmt.Errorf("%w: no presenter for surface %s", entity.ErrInvalidArgument, kind)
	}

	if replace {
		if s.stopRun(order.ID) {
			return entity.PaymentSession{}, fmt.Errorf("%w: order %s is already paid", entity.ErrInvalidArgument, order.ID)
		}
	} else if _, ok := s.activeRun(order.ID); ok {
		return entity.PaymentSession{}, fmt.Errorf("order %s: %w", order.ID, entity.ErrAlreadyPolling)
	}

	session, err := s.store.CreatePaymentSession(ctx, method, order.ID)
	if err != nil {
		return entity.PaymentSession{}, err
	}

	session.OrderID = order.ID
	session.Method = method
	session.CreatedAt = s.clock.Now()
	session.ExpiresAt = session.CreatedAt.Add(s.cfg.SessionTTL)

	handle, err := presenter.Open(ctx, session)
	if err != nil {
		// The user can still pay through the session; keep polling.
		if errors.Is(err, entity.ErrSurfaceBlocked) {
			slog.WarnContext(ctx, "payment surface blocked", "surface", kind)
		} else {
			slog.ErrorContext(ctx, "open payment surface", "surface", kind, "error", err)
		}

		handle = surface.Noop
	}

	// The poll outlives the request but keeps its values.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	r := &run{
		order:     order,
		userID:    user.ID,
		method:    method,
		kind:      kind,
		cfg:       s.pollConfig(kind),
		cancel:    cancel,
		handle:    handle,
		done:      make(chan struct{}),
		startedAt: s.clock.Now(),
		status:    entity.PaymentStatusPending,
	}

	s.mu.Lock()
	if prev, ok := s.runs[order.ID]; ok && !prev.finished() {
		s.mu.Unlock()
		r.stop()

		return entity.PaymentSession{}, fmt.Errorf("order %s: %w", order.ID, entity.ErrAlreadyPolling)
	}

	s.runs[order.ID] = r
	s.wg.Add(1)
	s.mu.Unlock()

	go s.poll(runCtx, r, user)

	return session, nil
}

func (s *Service) poll(ctx context.Context, r *run, user entity.User) {
	defer s.wg.Done()
	defer close(r.done)

	// Reconciliation must not be cut short by the run's own cancellation.
	rctx := context.WithoutCancel(ctx)
	target := reconciler.Target{User: user, Order: r.order, Stop: r.stop}

	state := s.poller.Run(ctx, r.order, r.cfg, poller.Handlers{
		OnUpdate: func(status entity.PaymentStatus, _ entity.StatusReport, attempts int) {
			r.update(status, attempts)
		},
		OnComplete: func(report entity.StatusReport) {
			deliver := func(ctx context.Context) error {
				return s.rec.PaymentCompleted(ctx, target, report)
			}

			err := deliver(rctx)
			if err != nil {
				slog.ErrorContext(rctx, "reconcile completed payment", "error", err)
				r.setPending(deliver)
			}
		},
		OnError: func(perr *poller.PollError) {
			if perr.Kind == poller.KindTimeout {
				s.rec.PaymentTimedOut(rctx, target, perr.Attempts)
				return
			}

			deliver := func(ctx context.Context) error {
				return s.rec.PaymentFailed(ctx, target, perr.Report)
			}

			err := deliver(rctx)
			if err != nil {
				slog.ErrorContext(rctx, "reconcile failed payment", "error", err)
				r.setPending(deliver)
			}
		},
	})

	r.finish(state, s.clock.Now())
}

// CancelRun stops the payment run of the order, e.g. when the user navigates away.
// No callbacks of the run fire after it returns.
func (s *Service) CancelRun(ctx context.Context, orderID string) error {
	r, err := s.userRun(ctx, orderID)
	if err != nil {
		return err
	}

	r.stop()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Snapshot struct {
	Order       entity.OrderRef
	Method      entity.PaymentMethod
	Surface     entity.SurfaceKind
	Status      entity.PaymentStatus
	Attempts    int
	MaxAttempts int
	State       string
	StartedAt   time.Time
	View        *surface.View
}

// Snapshot reports the payment progress of the order as the frontend renders it.
func (s *Service) Snapshot(ctx context.Context, orderID string) (Snapshot, error) {
	r, err := s.userRun(ctx, orderID)
	if err != nil {
		return Snapshot{}, err
	}

	snap := r.snapshot()

	if v, ok := s.board.Snapshot(orderID); ok {
		snap.View = &v
	}

	return snap, nil
}

// SurfaceClosed records that the user closed the payment window themselves.
func (s *Service) SurfaceClosed(ctx context.Context, orderID string) error {
	_, err := s.userRun(ctx, orderID)
	if err != nil {
		return err
	}

	return s.board.MarkClosedByUser(orderID)
}

// Flash returns the one-shot message left for the order detail view.
func (s *Service) Flash(ctx context.Context, orderID string) (navigation.Flash, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return navigation.Flash{}, err
	}

	return s.flash.Consume(ctx, user.ID, orderID)
}

func (s *Service) Cart(ctx context.Context) ([]entity.CartItem, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.CartItems(ctx, user.ID)
}

func (s *Service) AddToCart(ctx context.Context, productID int64, quantity int) (entity.CartItem, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.CartItem{}, err
	}

	item := entity.CartItem{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    user.ID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.clock.Now(),
	}

	err = item.Validate()
	if err != nil {
		return entity.CartItem{}, err
	}

	return s.repo.AddCartItem(ctx, item)
}

func (s *Service) RemoveFromCart(ctx context.Context, itemID uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	return s.repo.RemoveCartItem(ctx, user.ID, itemID)
}

// Prune forgets old reconciled outcomes, placed orders and finished runs.
// Runs still waiting for a reconciliation are kept.
func (s *Service) Prune(ctx context.Context) error {
	now := s.clock.Now()
	before := now.Add(-s.cfg.OutcomeRetention)

	n, err := s.repo.PruneOutcomes(ctx, before)
	if err != nil {
		return fmt.Errorf("prune outcomes: %w", err)
	}

	orders, err := s.repo.PruneOrders(ctx, before)
	if err != nil {
		return fmt.Errorf("prune orders: %w", err)
	}

	s.mu.Lock()
	removed := 0

	for id, r := range s.runs {
		if r.finishedBefore(now.Add(-s.cfg.FinishedRunTTL)) {
			// A timed out run leaves its surface open.
			r.handle.Close()
			delete(s.runs, id)
			removed++
		}
	}
	s.mu.Unlock()

	slog.DebugContext(ctx, "pruned", "outcomes", n, "orders", orders, "runs", removed)

	return nil
}

// ReconcilePending delivers again the outcomes whose reconciliation failed.
func (s *Service) ReconcilePending(ctx context.Context) error {
	s.mu.Lock()
	runs := make([]*run, 0, len(s.runs))
	for _, r := range s.runs {
		runs = append(runs, r)
	}
	s.mu.Unlock()

	var errs []error

	delivered := 0

	for _, r := range runs {
		ok, err := r.redeliver(logger.WithOrderID(ctx, r.order.ID))
		if err != nil {
			errs = append(errs, fmt.Errorf("order %s: %w", r.order.ID, err))
			continue
		}

		if ok {
			delivered++
		}
	}

	if delivered > 0 {
		slog.InfoContext(ctx, "pending outcomes reconciled", "count", delivered)
	}

	return errors.Join(errs...)
}

// Shutdown stops all payment runs and waits for them.
func (s *Service) Shutdown() {
	s.mu.Lock()
	for _, r := range s.runs {
		r.stop()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Service) surfaceKind(method entity.PaymentMethod) entity.SurfaceKind {
	if kind, ok := s.cfg.Surfaces[method]; ok {
		return kind
	}

	return entity.SurfaceRedirect
}

func (s *Service) pollConfig(kind entity.SurfaceKind) poller.Config {
	return s.cfg.Polls[kind]
}

func (s *Service) activeRun(orderID string) (*run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[orderID]
	if !ok || r.finished() {
		return nil, false
	}

	return r, true
}

func (s *Service) lookupRun(orderID string) (*run, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runs[orderID]

	return r, ok
}

// stopRun cancels the run of the order and waits until it has returned.
// It reports whether the run had seen the payment complete.
func (s *Service) stopRun(orderID string) bool {
	r, ok := s.lookupRun(orderID)
	if !ok {
		return false
	}

	r.stop()
	<-r.done

	return r.paid()
}

func (s *Service) userRun(ctx context.Context, orderID string) (*run, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	r, ok := s.runs[orderID]
	s.mu.Unlock()

	if !ok || r.userID != user.ID {
		return nil, fmt.Errorf("payment of order %s: %w", orderID, entity.ErrNotFound)
	}

	return r, nil
}
