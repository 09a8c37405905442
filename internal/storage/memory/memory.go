// Package memory keeps users, payments, withdrawals and payment accounts in
// process memory behind the same repository contracts as the PostgreSQL
// storage. Settlement for one user is exclusive: a second concurrent
// settlement fails with model.ErrConflict, as the database lock does.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/fragpit/commission/internal/model"
	"github.com/google/uuid"
)

var (
	_ model.UsersRepository           = (*Storage)(nil)
	_ model.PaymentsRepository        = (*Storage)(nil)
	_ model.WithdrawalsRepository     = (*Storage)(nil)
	_ model.PaymentAccountsRepository = (*Storage)(nil)
)

type Storage struct {
	mu sync.Mutex

	users       map[string]model.User
	payments    []model.Payment
	withdrawals map[int64]model.Withdrawal
	accounts    map[uuid.UUID]model.PaymentAccount
	settling    map[string]bool

	nextPaymentID    int64
	nextWithdrawalID int64

	now func() time.Time
}

func New() *Storage {
	return &Storage{
		users:       make(map[string]model.User),
		withdrawals: make(map[int64]model.Withdrawal),
		accounts:    make(map[uuid.UUID]model.PaymentAccount),
		settling:    make(map[string]bool),
		now:         time.Now,
	}
}

// AddUser registers a user. Emails are unique regardless of case.
func (s *Storage) AddUser(u model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := model.NormalizeEmail(u.Email)
	if _, ok := s.users[key]; ok {
		return model.User{}, fmt.Errorf("user %s already exists", u.Email)
	}
	if u.ReferralCode != "" {
		for _, existing := range s.users {
			if existing.ReferralCode == u.ReferralCode {
				return model.User{}, fmt.Errorf(
					"referral code %s already assigned",
					u.ReferralCode,
				)
			}
		}
	}
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = s.now()
	}
	s.users[key] = u

	return u, nil
}

// AddPayment ingests a payment the way the payment page would.
func (s *Storage) AddPayment(p model.Payment) model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPaymentID++
	p.ID = s.nextPaymentID
	if p.OrderID == "" {
		p.OrderID = fmt.Sprintf("ORD-%d", p.ID)
	}
	s.payments = append(s.payments, p)

	return p
}

// SetWithdrawalStatus stands in for the back office moving a withdrawal on.
func (s *Storage) SetWithdrawalStatus(id int64, status model.WithdrawalStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.withdrawals[id]
	if !ok {
		return model.ErrWithdrawalNotFound
	}
	w.Status = status
	s.withdrawals[id] = w

	return nil
}

// PaymentsOf returns the payments settled by a withdrawal.
func (s *Storage) PaymentsOf(withdrawalID int64) []model.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Payment
	for _, p := range s.payments {
		if p.WithdrawalID != nil && *p.WithdrawalID == withdrawalID {
			out = append(out, p)
		}
	}
	return out
}

func (s *Storage) GetByEmail(
	_ context.Context,
	email string,
) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return &u, nil
}

func (s *Storage) FirstSuccessfulPayment(
	_ context.Context,
	referralCode string,
) (*model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := model.FirstSuccess(s.byReferral(referralCode))
	if first == nil {
		return nil, nil
	}
	p := *first
	return &p, nil
}

func (s *Storage) GetByReferralCode(
	_ context.Context,
	referralCode string,
) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.byReferral(referralCode), nil
}

func (s *Storage) GetRecentSuccessful(
	_ context.Context,
	referralCode string,
	limit int,
) ([]model.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.Payment
	for _, p := range s.byReferral(referralCode) {
		if p.Status == model.PaymentSuccess {
			out = append(out, p)
		}
	}
	slices.Reverse(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *Storage) CreateWithdrawal(
	_ context.Context,
	email string,
	dest model.Destination,
	sel model.Selector,
) (*model.Withdrawal, error) {
	key := model.NormalizeEmail(email)

	s.mu.Lock()
	u, ok := s.users[key]
	if !ok {
		s.mu.Unlock()
		return nil, model.ErrUserNotFound
	}
	if !u.HasReferralCode() {
		s.mu.Unlock()
		return nil, model.ErrReferralCodeNotFound
	}
	if s.settling[key] {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: settlement in progress", model.ErrConflict)
	}
	s.settling[key] = true
	payments := s.byReferral(u.ReferralCode)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.settling, key)
		s.mu.Unlock()
	}()

	selection := sel(u.ReferralCode, payments)
	if !selection.Total.IsPositive() {
		return nil, model.ErrInsufficientBalance
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := make([]int, 0, len(selection.Eligible))
	for _, p := range selection.Eligible {
		i := s.indexOf(p.ID)
		if i < 0 || s.payments[i].WithdrawalID != nil {
			return nil, fmt.Errorf("%w: payment %d changed", model.ErrConflict, p.ID)
		}
		idx = append(idx, i)
	}

	s.nextWithdrawalID++
	w := model.Withdrawal{
		ID:          s.nextWithdrawalID,
		UserEmail:   u.Email,
		Amount:      selection.Total,
		Destination: dest.Normalize(),
		Status:      model.WithdrawalPending,
		CreatedAt:   s.now(),
	}
	for _, i := range idx {
		id := w.ID
		s.payments[i].WithdrawalID = &id
		w.Payments = append(w.Payments, s.payments[i])
	}
	s.withdrawals[w.ID] = w

	return &w, nil
}

func (s *Storage) CancelWithdrawal(
	_ context.Context,
	id int64,
	ownerEmail string,
) (*model.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.withdrawals[id]
	if !ok {
		return nil, model.ErrWithdrawalNotFound
	}
	if ownerEmail != "" &&
		model.NormalizeEmail(ownerEmail) != model.NormalizeEmail(w.UserEmail) {
		return nil, model.ErrWithdrawalNotFound
	}
	if !w.Cancellable() {
		return nil, fmt.Errorf(
			"%w: withdrawal %d is %s",
			model.ErrInvalidState,
			w.ID,
			w.Status,
		)
	}

	w.Payments = nil
	for i := range s.payments {
		if ref := s.payments[i].WithdrawalID; ref != nil && *ref == id {
			s.payments[i].WithdrawalID = nil
			w.Payments = append(w.Payments, s.payments[i])
		}
	}
	delete(s.withdrawals, id)

	return &w, nil
}

func (s *Storage) GetWithdrawalsByEmail(
	_ context.Context,
	email string,
) ([]model.Withdrawal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := model.NormalizeEmail(email)
	var out []model.Withdrawal
	for _, w := range s.withdrawals {
		if model.NormalizeEmail(w.UserEmail) != key {
			continue
		}
		w.Payments = nil
		for _, p := range s.payments {
			if p.WithdrawalID != nil && *p.WithdrawalID == w.ID {
				w.Payments = append(w.Payments, p)
			}
		}
		out = append(out, w)
	}

	slices.SortFunc(out, func(a, b model.Withdrawal) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})

	return out, nil
}

func (s *Storage) Upsert(
	_ context.Context,
	email string,
	a *model.PaymentAccount,
) (*model.PaymentAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrUserNotFound
	}

	now := s.now()
	saved := *a
	saved.UserID = u.ID
	saved.UpdatedAt = now
	if existing, ok := s.accounts[u.ID]; ok {
		saved.ID = existing.ID
		saved.CreatedAt = existing.CreatedAt
	} else {
		if saved.ID == uuid.Nil {
			saved.ID = uuid.New()
		}
		saved.CreatedAt = now
	}
	s.accounts[u.ID] = saved

	return &saved, nil
}

func (s *Storage) GetAccountByEmail(
	_ context.Context,
	email string,
) (*model.PaymentAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[model.NormalizeEmail(email)]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	a, ok := s.accounts[u.ID]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return &a, nil
}

// byReferral returns copies ordered by creation time, then id.
func (s *Storage) byReferral(referralCode string) []model.Payment {
	var out []model.Payment
	for _, p := range s.payments {
		if p.ReferralCode == referralCode {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b model.Payment) int {
		switch {
		case a.Before(&b):
			return -1
		case b.Before(&a):
			return 1
		}
		return 0
	})
	return out
}

func (s *Storage) indexOf(paymentID int64) int {
	return slices.IndexFunc(s.payments, func(p model.Payment) bool {
		return p.ID == paymentID
	})
}
