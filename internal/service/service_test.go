package service_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/checkout/internal/entity"
	"github.com/samandr77/microservices/checkout/internal/mocks"
	"github.com/samandr77/microservices/checkout/internal/navigation"
	"github.com/samandr77/microservices/checkout/internal/poller"
	"github.com/samandr77/microservices/checkout/internal/reconciler"
	"github.com/samandr77/microservices/checkout/internal/service"
	"github.com/samandr77/microservices/checkout/internal/surface"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock interface {
	clockwork.Clock
	Advance(d time.Duration)
	BlockUntil(n int)
}

type countingHandle struct {
	closed atomic.Int32
}

func (h *countingHandle) Close() {
	h.closed.Add(1)
}

type tester struct {
	s          *service.Service
	repo       *mocks.MockRepository
	store      *mocks.MockStorefront
	rec        *mocks.MockReconciler
	flash      *mocks.MockFlashStore
	board      *mocks.MockBoard
	redirect   *mocks.MockPresenter
	qr         *mocks.MockPresenter
	clock      fakeClock
	user       entity.User
	ctx        context.Context
	cfg        service.Config
	cartItems  []entity.CartItem
	orderReply entity.Order
}

func newTester(t *testing.T) *tester {
	t.Helper()

	ctrl := gomock.NewController(t)
	c := &tester{
		repo:     mocks.NewMockRepository(ctrl),
		store:    mocks.NewMockStorefront(ctrl),
		rec:      mocks.NewMockReconciler(ctrl),
		flash:    mocks.NewMockFlashStore(ctrl),
		board:    mocks.NewMockBoard(ctrl),
		redirect: mocks.NewMockPresenter(ctrl),
		qr:       mocks.NewMockPresenter(ctrl),
		clock:    clockwork.NewFakeClockAt(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)),
		user: entity.User{
			ID:        uuid.Must(uuid.NewV4()),
			FirstName: "Minh",
			Email:     "minh@example.com",
			Role:      entity.RoleCustomer,
		},
		cfg: service.Config{
			Surfaces: map[entity.PaymentMethod]entity.SurfaceKind{
				entity.PaymentMethodVNPay: entity.SurfaceRedirect,
				entity.PaymentMethodMomo:  entity.SurfaceQR,
			},
			Polls: map[entity.SurfaceKind]poller.Config{
				entity.SurfaceRedirect: {MaxAttempts: 3, Interval: 2 * time.Second},
				entity.SurfaceQR:       {MaxAttempts: 3, Interval: 5 * time.Second},
			},
			SessionTTL:       30 * time.Minute,
			OutcomeRetention: 720 * time.Hour,
			FinishedRunTTL:   time.Hour,
		},
		orderReply: entity.Order{
			ID:          "1001",
			Number:      "ORD-1001",
			TotalAmount: decimal.RequireFromString("2500000"),
		},
	}

	c.ctx = entity.CtxWithUser(context.Background(), c.user)
	c.cartItems = []entity.CartItem{{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    c.user.ID,
		ProductID: 7,
		Quantity:  1,
	}}

	c.s = c.newService(c.board)

	t.Cleanup(c.s.Shutdown)

	return c
}

func (c *tester) newService(board service.Board) *service.Service {
	return service.New(c.repo, c.store, c.rec, c.flash, board, map[entity.SurfaceKind]surface.Presenter{
		entity.SurfaceRedirect: c.redirect,
		entity.SurfaceQR:       c.qr,
	}, c.clock, c.cfg)
}

func (c *tester) expectOrder(method entity.PaymentMethod) {
	c.repo.EXPECT().CartItems(gomock.Any(), c.user.ID).Return(c.cartItems, nil)
	c.store.EXPECT().CreateOrder(gomock.Any(), entity.OrderRequest{
		ShippingAddress: "Minh, 0901234567, 12 Hang Bac, Hanoi",
		Notes:           "leave at the door",
		Method:          method,
		Items:           c.cartItems,
	}).Return(c.orderReply, nil)
	c.repo.EXPECT().SaveOrder(gomock.Any(), entity.PlacedOrder{
		ID:        "1001",
		Number:    "ORD-1001",
		UserID:    c.user.ID,
		Method:    method,
		CreatedAt: c.clock.Now(),
	}).Return(nil)
}

func (c *tester) expectPlaced(order entity.OrderRef, method entity.PaymentMethod) {
	c.repo.EXPECT().PlacedOrder(gomock.Any(), order.ID).Return(entity.PlacedOrder{
		ID:     order.ID,
		Number: order.Number,
		UserID: c.user.ID,
		Method: method,
	}, nil)
}

func checkoutRequest(method entity.PaymentMethod) entity.CheckoutRequest {
	return entity.CheckoutRequest{
		Shipping: entity.ShippingAddress{
			FullName: "Minh",
			Phone:    "0901234567",
			Address:  "12 Hang Bac",
			City:     "Hanoi",
		},
		Notes:  "leave at the door",
		Method: method,
	}
}

func status(s entity.PaymentStatus) entity.StatusReport {
	return entity.StatusReport{Identifier: "ORD-1001", Status: s, PaymentStatus: s}
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for background payment run")
	}
}

func TestService_Checkout_Synchronous(t *testing.T) {
	t.Parallel()

	for _, method := range []entity.PaymentMethod{entity.PaymentMethodCOD, entity.PaymentMethodBankTransfer} {
		c := newTester(t)

		c.expectOrder(method)
		c.rec.EXPECT().OrderPlaced(gomock.Any(), reconciler.Target{User: c.user, Order: c.orderReply.Ref()}, "").Return(nil)

		res, err := c.s.Checkout(c.ctx, checkoutRequest(method))
		require.NoError(t, err)
		require.Equal(t, c.orderReply, res.Order)
		require.Nil(t, res.Session)
		require.NoError(t, res.SessionErr)
	}
}

func TestService_Checkout_Validation(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	_, err := c.s.Checkout(context.Background(), checkoutRequest(entity.PaymentMethodCOD))
	require.ErrorIs(t, err, entity.ErrUnauthenticated)

	req := checkoutRequest(entity.PaymentMethodCOD)
	req.Shipping.Address = "  "

	_, err = c.s.Checkout(c.ctx, req)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = c.s.Checkout(c.ctx, checkoutRequest("paypal"))
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	c.repo.EXPECT().CartItems(gomock.Any(), c.user.ID).Return(nil, nil)

	_, err = c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodCOD))
	require.ErrorIs(t, err, entity.ErrEmptyCart)
}

func TestService_Checkout_OrderCreationFailed(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.repo.EXPECT().CartItems(gomock.Any(), c.user.ID).Return(c.cartItems, nil)
	c.store.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).
		Return(entity.Order{}, entity.ErrOrderCreationFailed)

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.ErrorIs(t, err, entity.ErrOrderCreationFailed)
}

func TestService_Checkout_RedirectCompleted(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	h := &countingHandle{}
	done := make(chan struct{})

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodVNPay, "1001").
		Return(entity.PaymentSession{OrderID: "1001", RedirectURL: "https://sandbox.vnpayment.vn/pay/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entity.PaymentSession) (surface.Handle, error) {
			require.Equal(t, c.clock.Now(), s.CreatedAt)
			require.Equal(t, c.clock.Now().Add(30*time.Minute), s.ExpiresAt)
			require.Equal(t, entity.PaymentMethodVNPay, s.Method)

			return h, nil
		})

	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusCompleted), nil)

	c.rec.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, tg reconciler.Target, report entity.StatusReport) error {
			require.NoError(t, ctx.Err())
			require.Equal(t, c.user, tg.User)
			require.Equal(t, "1001", tg.Order.ID)
			require.Equal(t, entity.PaymentStatusCompleted, report.Status)

			tg.Stop()
			close(done)

			return nil
		})

	res, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)
	require.NotNil(t, res.Session)
	require.Equal(t, "https://sandbox.vnpayment.vn/pay/1001", res.Session.RedirectURL)

	c.clock.BlockUntil(1)
	c.clock.Advance(2 * time.Second)

	waitFor(t, done)
	c.s.Shutdown()

	require.GreaterOrEqual(t, h.closed.Load(), int32(1))

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false)

	snap, err := c.s.Snapshot(c.ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "completed", snap.State)
	require.Equal(t, entity.PaymentStatusCompleted, snap.Status)
	require.Equal(t, 2, snap.Attempts)
	require.Nil(t, snap.View)
}

func TestService_Checkout_SessionCreationFailed(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.expectOrder(entity.PaymentMethodMomo)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodMomo, "1001").
		Return(entity.PaymentSession{}, entity.ErrSessionCreationFailed)
	c.rec.EXPECT().OrderPlaced(gomock.Any(), gomock.Any(), reconciler.MessageNoPaymentLink).Return(nil)

	res, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodMomo))
	require.NoError(t, err)
	require.Equal(t, "1001", res.Order.ID)
	require.Nil(t, res.Session)
	require.ErrorIs(t, res.SessionErr, entity.ErrSessionCreationFailed)

	_, err = c.s.Snapshot(c.ctx, "1001")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Checkout_BlockedSurfaceStillPolls(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	done := make(chan struct{})

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, entity.ErrSurfaceBlocked)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusFailed), nil)
	c.rec.EXPECT().PaymentFailed(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tg reconciler.Target, report *entity.StatusReport) error {
			require.NotNil(t, report)
			require.Equal(t, entity.PaymentStatusFailed, report.Status)

			tg.Stop()
			close(done)

			return nil
		})

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	waitFor(t, done)
}

func TestService_Checkout_TimeoutIsSilent(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	h := &countingHandle{}
	done := make(chan struct{})

	c.cfg.Polls[entity.SurfaceRedirect] = poller.Config{MaxAttempts: 2, Interval: 2 * time.Second}
	c.s = c.newService(c.board)
	t.Cleanup(c.s.Shutdown)

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(h, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil).Times(2)
	c.rec.EXPECT().PaymentTimedOut(gomock.Any(), gomock.Any(), 2).Do(
		func(context.Context, reconciler.Target, int) {
			close(done)
		})

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	c.clock.BlockUntil(1)
	c.clock.Advance(2 * time.Second)

	waitFor(t, done)

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false).AnyTimes()

	require.Eventually(t, func() bool {
		snap, err := c.s.Snapshot(c.ctx, "1001")
		return err == nil && snap.State == "timeout"
	}, time.Second, 5*time.Millisecond)

	require.Zero(t, h.closed.Load())
}

func TestService_CancelRun(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	h := &countingHandle{}

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(h, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil)

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	c.clock.BlockUntil(1)

	require.NoError(t, c.s.CancelRun(c.ctx, "1001"))
	require.GreaterOrEqual(t, h.closed.Load(), int32(1))

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false)

	snap, err := c.s.Snapshot(c.ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "cancelled", snap.State)

	other := entity.CtxWithUser(context.Background(), entity.User{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, c.s.CancelRun(other, "1001"), entity.ErrNotFound)
}

func TestService_QRExpiryDoesNotStopPoll(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	board := surface.NewBoard()
	done := make(chan struct{})

	c.cfg.SessionTTL = time.Second
	c.s = c.newService(board)
	t.Cleanup(c.s.Shutdown)

	qr := surface.NewQR(board, c.clock)

	c.expectOrder(entity.PaymentMethodMomo)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodMomo, "1001").
		Return(entity.PaymentSession{QRImageURL: "https://img.vietqr.io/image/1001.png", PaymentMessage: "DH1001"}, nil)
	c.qr.EXPECT().Open(gomock.Any(), gomock.Any()).DoAndReturn(qr.Open)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusCompleted), nil)
	c.rec.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tg reconciler.Target, _ entity.StatusReport) error {
			tg.Stop()
			close(done)

			return nil
		})

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodMomo))
	require.NoError(t, err)

	// Countdown and poll are both waiting.
	c.clock.BlockUntil(2)
	c.clock.Advance(time.Second)

	require.Eventually(t, func() bool {
		v, ok := board.Snapshot("1001")
		return ok && v.Expired
	}, time.Second, 5*time.Millisecond)

	snap, err := c.s.Snapshot(c.ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "polling", snap.State)
	require.Equal(t, 1, snap.Attempts)
	require.NotNil(t, snap.View)
	require.True(t, snap.View.Expired)

	c.clock.BlockUntil(1)
	c.clock.Advance(4 * time.Second)

	waitFor(t, done)

	require.Eventually(t, func() bool {
		_, ok := board.Snapshot("1001")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestService_RetryPayment_ReplacesRun(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	first := &countingHandle{}
	second := &countingHandle{}

	c.expectOrder(entity.PaymentMethodMomo)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodMomo, "1001").
		Return(entity.PaymentSession{QRImageURL: "https://img.vietqr.io/image/a.png"}, nil)
	c.qr.EXPECT().Open(gomock.Any(), gomock.Any()).Return(first, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil).AnyTimes()

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodMomo))
	require.NoError(t, err)

	c.clock.BlockUntil(1)

	c.expectPlaced(c.orderReply.Ref(), entity.PaymentMethodMomo)
	c.repo.EXPECT().Outcome(gomock.Any(), "1001", "payment").Return(entity.Outcome(""), entity.ErrNotFound)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodMomo, "1001").
		Return(entity.PaymentSession{QRImageURL: "https://img.vietqr.io/image/b.png"}, nil)
	c.qr.EXPECT().Open(gomock.Any(), gomock.Any()).Return(second, nil)

	session, err := c.s.RetryPayment(c.ctx, entity.OrderRef{ID: "1001"}, "")
	require.NoError(t, err)
	require.Equal(t, "https://img.vietqr.io/image/b.png", session.QRImageURL)
	require.Equal(t, entity.PaymentMethodMomo, session.Method)

	require.GreaterOrEqual(t, first.closed.Load(), int32(1))
	require.Zero(t, second.closed.Load())

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false)

	snap, err := c.s.Snapshot(c.ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, "polling", snap.State)
	require.Equal(t, "ORD-1001", snap.Order.Number)
}

func TestService_RetryPayment_Outcomes(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	order := entity.OrderRef{ID: "2002", Number: "ORD-2002"}

	for i := 0; i < 3; i++ {
		c.expectPlaced(order, entity.PaymentMethodVNPay)
	}

	c.repo.EXPECT().Outcome(gomock.Any(), "2002", "payment").Return(entity.OutcomePaid, nil)

	_, err := c.s.RetryPayment(c.ctx, order, entity.PaymentMethodVNPay)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	_, err = c.s.RetryPayment(c.ctx, order, entity.PaymentMethodCOD)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	c.repo.EXPECT().Outcome(gomock.Any(), "2002", "payment").Return(entity.OutcomeFailed, nil)
	c.repo.EXPECT().ReopenPayment(gomock.Any(), "2002").Return(nil)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), entity.PaymentMethodVNPay, "2002").
		Return(entity.PaymentSession{}, entity.ErrSessionCreationFailed)

	_, err = c.s.RetryPayment(c.ctx, order, entity.PaymentMethodVNPay)
	require.ErrorIs(t, err, entity.ErrSessionCreationFailed)
}

func TestService_SurfaceClosedAndFlash(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(&countingHandle{}, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), gomock.Any()).Return(status(entity.PaymentStatusPending), nil).AnyTimes()

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	c.board.EXPECT().MarkClosedByUser("1001").Return(nil)
	require.NoError(t, c.s.SurfaceClosed(c.ctx, "1001"))

	other := entity.CtxWithUser(context.Background(), entity.User{ID: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, c.s.SurfaceClosed(other, "1001"), entity.ErrNotFound)

	want := navigation.Flash{
		Route: "/orders/1001",
		State: entity.NavigationState{Message: reconciler.MessagePaid, PaymentSuccess: true},
	}

	otherID := uuid.Must(uuid.NewV4())
	c.flash.EXPECT().Consume(gomock.Any(), otherID, "1001").Return(navigation.Flash{}, entity.ErrNotFound)

	_, err = c.s.Flash(entity.CtxWithUser(context.Background(), entity.User{ID: otherID}), "1001")
	require.ErrorIs(t, err, entity.ErrNotFound)

	c.flash.EXPECT().Consume(gomock.Any(), c.user.ID, "1001").Return(want, nil)
	c.flash.EXPECT().Consume(gomock.Any(), c.user.ID, "1001").Return(navigation.Flash{}, entity.ErrNotFound)

	f, err := c.s.Flash(c.ctx, "1001")
	require.NoError(t, err)
	require.Equal(t, want, f)

	_, err = c.s.Flash(c.ctx, "1001")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_RetryPayment_OtherUsersOrder(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	order := entity.OrderRef{ID: "3003", Number: "ORD-3003"}

	c.repo.EXPECT().PlacedOrder(gomock.Any(), "3003").Return(entity.PlacedOrder{
		ID:     "3003",
		UserID: uuid.Must(uuid.NewV4()),
		Method: entity.PaymentMethodVNPay,
	}, nil)

	_, err := c.s.RetryPayment(c.ctx, order, entity.PaymentMethodVNPay)
	require.ErrorIs(t, err, entity.ErrNotFound)

	c.repo.EXPECT().PlacedOrder(gomock.Any(), "4004").Return(entity.PlacedOrder{}, entity.ErrNotFound)

	_, err = c.s.RetryPayment(c.ctx, entity.OrderRef{ID: "4004"}, entity.PaymentMethodVNPay)
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_LedgerErrorKeepsPaidOutcome(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	done := make(chan struct{})

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(&countingHandle{}, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusCompleted), nil)

	failed := c.rec.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tg reconciler.Target, _ entity.StatusReport) error {
			tg.Stop()
			close(done)

			return errors.New("connection refused")
		})

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	waitFor(t, done)

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false).AnyTimes()

	require.Eventually(t, func() bool {
		snap, err := c.s.Snapshot(c.ctx, "1001")
		return err == nil && snap.State == "completed"
	}, time.Second, 5*time.Millisecond)

	// Nothing is in the ledger yet, but the gateway said paid.
	c.expectPlaced(c.orderReply.Ref(), entity.PaymentMethodVNPay)

	_, err = c.s.RetryPayment(c.ctx, entity.OrderRef{ID: "1001"}, entity.PaymentMethodVNPay)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	// Runs waiting for reconciliation survive pruning.
	c.clock.Advance(2 * time.Hour)
	c.repo.EXPECT().PruneOutcomes(gomock.Any(), gomock.Any()).Return(int64(0), nil)
	c.repo.EXPECT().PruneOrders(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	require.NoError(t, c.s.Prune(context.Background()))

	_, err = c.s.Snapshot(c.ctx, "1001")
	require.NoError(t, err)

	c.rec.EXPECT().PaymentCompleted(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tg reconciler.Target, report entity.StatusReport) error {
			require.Equal(t, c.user, tg.User)
			require.Equal(t, "1001", tg.Order.ID)
			require.Equal(t, entity.PaymentStatusCompleted, report.Status)

			return nil
		}).After(failed.Call)

	require.NoError(t, c.s.ReconcilePending(context.Background()))

	// Delivered once; nothing is left to retry.
	require.NoError(t, c.s.ReconcilePending(context.Background()))
}

func TestService_Prune(t *testing.T) {
	t.Parallel()

	c := newTester(t)
	h := &countingHandle{}
	done := make(chan struct{})

	c.cfg.Polls[entity.SurfaceRedirect] = poller.Config{MaxAttempts: 2, Interval: 2 * time.Second}
	c.s = c.newService(c.board)
	t.Cleanup(c.s.Shutdown)

	c.expectOrder(entity.PaymentMethodVNPay)
	c.store.EXPECT().CreatePaymentSession(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(entity.PaymentSession{RedirectURL: "https://pay.example/1001"}, nil)
	c.redirect.EXPECT().Open(gomock.Any(), gomock.Any()).Return(h, nil)
	c.store.EXPECT().PaymentStatus(gomock.Any(), "ORD-1001").Return(status(entity.PaymentStatusPending), nil).Times(2)
	c.rec.EXPECT().PaymentTimedOut(gomock.Any(), gomock.Any(), 2).Do(
		func(context.Context, reconciler.Target, int) {
			close(done)
		})

	_, err := c.s.Checkout(c.ctx, checkoutRequest(entity.PaymentMethodVNPay))
	require.NoError(t, err)

	c.clock.BlockUntil(1)
	c.clock.Advance(2 * time.Second)

	waitFor(t, done)

	c.board.EXPECT().Snapshot("1001").Return(surface.View{}, false).AnyTimes()

	require.Eventually(t, func() bool {
		snap, err := c.s.Snapshot(c.ctx, "1001")
		return err == nil && snap.State == "timeout"
	}, time.Second, 5*time.Millisecond)

	// Too fresh to forget.
	c.repo.EXPECT().PruneOutcomes(gomock.Any(), c.clock.Now().Add(-720*time.Hour)).Return(int64(3), nil)
	c.repo.EXPECT().PruneOrders(gomock.Any(), c.clock.Now().Add(-720*time.Hour)).Return(int64(1), nil)

	require.NoError(t, c.s.Prune(context.Background()))
	require.Zero(t, h.closed.Load())

	c.clock.Advance(2 * time.Hour)

	c.repo.EXPECT().PruneOutcomes(gomock.Any(), c.clock.Now().Add(-720*time.Hour)).Return(int64(0), nil)
	c.repo.EXPECT().PruneOrders(gomock.Any(), c.clock.Now().Add(-720*time.Hour)).Return(int64(0), nil)

	require.NoError(t, c.s.Prune(context.Background()))
	require.Equal(t, int32(1), h.closed.Load())

	_, err = c.s.Snapshot(c.ctx, "1001")
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestService_Cart(t *testing.T) {
	t.Parallel()

	c := newTester(t)

	c.repo.EXPECT().AddCartItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, item entity.CartItem) (entity.CartItem, error) {
			require.Equal(t, c.user.ID, item.UserID)
			require.Equal(t, int64(7), item.ProductID)
			require.Equal(t, c.clock.Now(), item.CreatedAt)

			return item, nil
		})

	_, err := c.s.AddToCart(c.ctx, 7, 1)
	require.NoError(t, err)

	_, err = c.s.AddToCart(c.ctx, 7, 0)
	require.ErrorIs(t, err, entity.ErrInvalidArgument)

	id := uuid.Must(uuid.NewV4())
	c.repo.EXPECT().RemoveCartItem(gomock.Any(), c.user.ID, id).Return(entity.ErrNotFound)

	require.ErrorIs(t, c.s.RemoveFromCart(c.ctx, id), entity.ErrNotFound)

	_, err = c.s.Cart(context.Background())
	require.ErrorIs(t, err, entity.ErrUnauthenticated)
}
