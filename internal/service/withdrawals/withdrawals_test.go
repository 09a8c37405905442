package withdrawals

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/fragpit/commission/internal/model"
	accountMocks "github.com/fragpit/commission/internal/service/accounts/mocks"
	"github.com/fragpit/commission/internal/service/balance"
	mocks "github.com/fragpit/commission/internal/service/withdrawals/mocks"
	"github.com/fragpit/commission/internal/storage/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

const email = "seller@example.com"

var (
	day0 = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	dest = model.Destination{
		BankName:      "BCA",
		AccountNumber: "1234567890",
		AccountName:   "Seller",
	}
)

type fixture struct {
	store    *memory.Storage
	svc      *WithdrawalsService
	balances *balance.BalanceService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	slog.SetDefault(slog.New(slog.DiscardHandler))

	store := memory.New()
	_, err := store.AddUser(model.User{
		Email:        email,
		ReferralCode: "SELLER1",
		Active:       true,
	})
	require.NoError(t, err)

	return &fixture{
		store:    store,
		svc:      NewWithdrawalsService(store, store, nil, time.UTC),
		balances: balance.NewBalanceService(store, store, time.UTC),
	}
}

func (f *fixture) pay(status model.PaymentStatus, amount string, at time.Time) model.Payment {
	return f.store.AddPayment(model.Payment{
		ReferralCode: "SELLER1",
		Status:       status,
		Amount:       decimal.RequireFromString(amount),
		CreatedAt:    at,
	})
}

func (f *fixture) balance(t *testing.T) decimal.Decimal {
	t.Helper()
	sel, err := f.balances.GetUserBalance(context.Background(), email)
	require.NoError(t, err)
	return sel.Total
}

func TestWithdrawals_SinglePayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.pay(model.PaymentSuccess, "100000", day0)

	assert.Equal(t, "100000", f.balance(t).String())

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	assert.Equal(t, "100000", w.Amount.String())
	assert.Equal(t, model.WithdrawalPending, w.Status)
	assert.Equal(t, []int64{p.ID}, w.PaymentIDs())
	assert.True(t, f.balance(t).IsZero())
}

func TestWithdrawals_OutsideWindowExcluded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pay(model.PaymentSuccess, "50000", day0)
	f.pay(model.PaymentSuccess, "30000", day0.AddDate(0, 0, 95))

	assert.Equal(t, "50000", f.balance(t).String())

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	assert.Equal(t, "50000", w.Amount.String())
	assert.Len(t, w.Payments, 1)
}

func TestWithdrawals_AlreadySettled(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pay(model.PaymentSuccess, "100", day0)

	_, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)

	_, err = f.svc.CreateWithdrawal(ctx, email, dest)
	assert.ErrorIs(t, err, model.ErrInsufficientBalance)
}

func TestWithdrawals_CancelReleasesPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p1 := f.pay(model.PaymentSuccess, "10.50", day0)
	p2 := f.pay(model.PaymentSuccess, "4.25", day0.AddDate(0, 1, 0))

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	assert.True(t, f.balance(t).IsZero())

	require.NoError(t, f.svc.CancelUserWithdrawal(ctx, email, w.ID))
	assert.Equal(t, "14.75", f.balance(t).String())

	sel, err := f.balances.GetUserBalance(ctx, email)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{p1.ID, p2.ID}, sel.PaymentIDs())

	history, err := f.svc.GetWithdrawalsByUser(ctx, email)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestWithdrawals_CancelApproved(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pay(model.PaymentSuccess, "100", day0)

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	require.NoError(t, f.store.SetWithdrawalStatus(w.ID, model.WithdrawalApproved))

	err = f.svc.CancelWithdrawal(ctx, w.ID)
	assert.ErrorIs(t, err, model.ErrInvalidState)
	assert.Len(t, f.store.PaymentsOf(w.ID), 1)
}

func TestWithdrawals_CancelForeignOrMissing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.pay(model.PaymentSuccess, "100", day0)

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)

	err = f.svc.CancelUserWithdrawal(ctx, "other@example.com", w.ID)
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = f.svc.CancelWithdrawal(ctx, w.ID+100)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestWithdrawals_Conservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	amounts := []string{"0.10", "0.20", "1999.99", "0.01", "33.33"}
	for i, a := range amounts {
		f.pay(model.PaymentSuccess, a, day0.Add(time.Duration(i)*time.Hour))
	}
	f.pay(model.PaymentFailed, "500", day0.Add(time.Minute))
	f.pay(model.PaymentExpired, "500", day0.Add(2*time.Minute))

	w, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	assert.Equal(t, "2033.63", w.Amount.String())
	assert.True(t, w.Amount.Equal(model.SumAmounts(f.store.PaymentsOf(w.ID))))

	late := f.pay(model.PaymentSuccess, "5", day0.AddDate(0, 2, 0))
	second, err := f.svc.CreateWithdrawal(ctx, email, dest)
	require.NoError(t, err)
	assert.Equal(t, []int64{late.ID}, second.PaymentIDs())

	history, err := f.svc.GetWithdrawalsByUser(ctx, email)
	require.NoError(t, err)
	require.Len(t, history, 2)
	seen := make(map[int64]bool)
	for _, h := range history {
		assert.True(t, h.Amount.Equal(model.SumAmounts(h.Payments)))
		for _, id := range h.PaymentIDs() {
			assert.False(t, seen[id], "payment %d settled twice", id)
			seen[id] = true
		}
	}
}

func TestWithdrawals_ConcurrentCreate(t *testing.T) {
	f := newFixture(t)
	for i := range 20 {
		f.pay(model.PaymentSuccess, "1.01", day0.Add(time.Duration(i)*time.Minute))
	}

	const callers = 8
	results := make([]*model.Withdrawal, callers)
	errs := make([]error, callers)

	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			results[i], errs[i] = f.svc.CreateWithdrawal(context.Background(), email, dest)
			return nil
		})
	}
	require.NoError(t, g.Wait())

	total := decimal.Zero
	created := 0
	for i := range callers {
		if errs[i] != nil {
			assert.True(
				t,
				errors.Is(errs[i], model.ErrConflict) ||
					errors.Is(errs[i], model.ErrInsufficientBalance),
				"unexpected error: %v", errs[i],
			)
			continue
		}
		created++
		total = total.Add(results[i].Amount)
	}
	assert.GreaterOrEqual(t, created, 1)
	assert.Equal(t, "20.2", total.String())
}

func TestWithdrawals_NoReferralCode(t *testing.T) {
	f := newFixture(t)
	_, err := f.store.AddUser(model.User{Email: "plain@example.com"})
	require.NoError(t, err)

	_, err = f.svc.CreateWithdrawal(context.Background(), "plain@example.com", dest)
	assert.ErrorIs(t, err, model.ErrReferralCodeNotFound)
}

func TestWithdrawalsService_CreateWithdrawal(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	errBroker := errors.New("broker down")
	account := &model.PaymentAccount{
		Type:          model.AccountEWallet,
		ProviderName:  "GoPay",
		AccountNumber: "0812",
		AccountName:   "Seller",
	}
	created := &model.Withdrawal{
		ID:        7,
		UserEmail: email,
		Amount:    decimal.RequireFromString("12.5"),
		Status:    model.WithdrawalPending,
		Payments:  []model.Payment{{ID: 3}, {ID: 4}},
	}

	type deps struct {
		repo      *mocks.MockWithdrawalsRepository
		accounts  *accountMocks.MockPaymentAccountsRepository
		publisher *mocks.MockEventPublisher
	}

	tests := []struct {
		name    string
		dest    model.Destination
		prepare func(deps)
		wantErr error
	}{
		{
			name: "explicit destination",
			dest: dest,
			prepare: func(d deps) {
				d.repo.EXPECT().
					CreateWithdrawal(gomock.Any(), email, dest, gomock.Any()).
					Return(created, nil)
				d.publisher.EXPECT().
					Publish(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, e model.WithdrawalEvent) error {
						assert.Equal(t, model.EventWithdrawalCreated, e.Type)
						assert.Equal(t, int64(7), e.WithdrawalID)
						assert.Equal(t, []int64{3, 4}, e.PaymentIDs)
						return nil
					})
			},
		},
		{
			name: "falls back to account on file",
			prepare: func(d deps) {
				d.accounts.EXPECT().GetAccountByEmail(gomock.Any(), email).
					Return(account, nil)
				d.repo.EXPECT().
					CreateWithdrawal(gomock.Any(), email, account.Destination(), gomock.Any()).
					Return(created, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "no destination and no account",
			prepare: func(d deps) {
				d.accounts.EXPECT().GetAccountByEmail(gomock.Any(), email).
					Return(nil, model.ErrAccountNotFound)
			},
			wantErr: model.ErrInvalidDestination,
		},
		{
			name:    "incomplete destination",
			dest:    model.Destination{BankName: "BCA"},
			prepare: func(deps) {},
			wantErr: model.ErrInvalidDestination,
		},
		{
			name: "repository conflict is returned as is",
			dest: dest,
			prepare: func(d deps) {
				d.repo.EXPECT().
					CreateWithdrawal(gomock.Any(), email, dest, gomock.Any()).
					Return(nil, model.ErrConflict)
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "publish failure does not fail the withdrawal",
			dest: dest,
			prepare: func(d deps) {
				d.repo.EXPECT().
					CreateWithdrawal(gomock.Any(), email, dest, gomock.Any()).
					Return(created, nil)
				d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
					Return(errBroker)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			d := deps{
				repo:      mocks.NewMockWithdrawalsRepository(ctrl),
				accounts:  accountMocks.NewMockPaymentAccountsRepository(ctrl),
				publisher: mocks.NewMockEventPublisher(ctrl),
			}
			svc := NewWithdrawalsService(d.repo, d.accounts, d.publisher, time.UTC)

			tt.prepare(d)

			w, err := svc.CreateWithdrawal(context.Background(), email, tt.dest)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, w)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, created, w)
		})
	}
}

func TestWithdrawalsService_CancelPublishes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockWithdrawalsRepository(ctrl)
	publisher := mocks.NewMockEventPublisher(ctrl)
	svc := NewWithdrawalsService(
		repo,
		accountMocks.NewMockPaymentAccountsRepository(ctrl),
		publisher,
		time.UTC,
	)
	ctx := context.Background()

	repo.EXPECT().CancelWithdrawal(ctx, int64(7), email).Return(&model.Withdrawal{
		ID:        7,
		UserEmail: email,
		Payments:  []model.Payment{{ID: 1}},
	}, nil)
	publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e model.WithdrawalEvent) error {
			assert.Equal(t, model.EventWithdrawalCancelled, e.Type)
			assert.Equal(t, []int64{1}, e.PaymentIDs)
			return nil
		})

	require.NoError(t, svc.CancelUserWithdrawal(ctx, email, 7))

	repo.EXPECT().CancelWithdrawal(ctx, int64(8), "").
		Return(nil, model.ErrInvalidState)
	assert.ErrorIs(t, svc.CancelWithdrawal(ctx, 8), model.ErrInvalidState)
}
