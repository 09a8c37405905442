package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RejectReason string

const (
	RejectReferralMismatch RejectReason = "referral_mismatch"
	RejectStatusMismatch   RejectReason = "status_mismatch"
	RejectNoWindow         RejectReason = "no_window"
	RejectOutsideWindow    RejectReason = "outside_window"
	RejectAlreadyWithdrawn RejectReason = "already_withdrawn"
)

type Rejection struct {
	Payment Payment
	Reason  RejectReason
}

// Selection is the eligible set of a referral code at one point in time,
// together with every payment that was looked at and turned down.
type Selection struct {
	ReferralCode string
	Window       *Window
	Eligible     []Payment
	Rejected     []Rejection
	Total        decimal.Decimal
}

func (s *Selection) PaymentIDs() []int64 {
	ids := make([]int64, 0, len(s.Eligible))
	for _, p := range s.Eligible {
		ids = append(ids, p.ID)
	}
	return ids
}

// Selector computes the selection for a referral code from its payments.
// Storage calls it inside the settlement transaction so that the set being
// written is the set that was read.
type Selector func(referralCode string, payments []Payment) Selection

// Classify applies the eligibility predicate to one payment. The empty
// reason means the payment is eligible.
func Classify(referralCode string, w *Window, p *Payment) RejectReason {
	switch {
	case p.ReferralCode != referralCode:
		return RejectReferralMismatch
	case p.Status != PaymentSuccess:
		return RejectStatusMismatch
	case w == nil:
		return RejectNoWindow
	case !w.Contains(p.CreatedAt):
		return RejectOutsideWindow
	case p.Settled():
		return RejectAlreadyWithdrawn
	}
	return ""
}

// Select anchors the window on the first successful payment and filters the
// rest against it.
func Select(
	referralCode string,
	payments []Payment,
	loc *time.Location,
) Selection {
	var own []Payment
	for _, p := range payments {
		if p.ReferralCode == referralCode {
			own = append(own, p)
		}
	}

	return SelectInWindow(
		referralCode,
		WindowFor(FirstSuccess(own), loc),
		payments,
	)
}

func SelectInWindow(referralCode string, w *Window, payments []Payment) Selection {
	sel := Selection{
		ReferralCode: referralCode,
		Window:       w,
		Total:        decimal.Zero,
	}

	for _, p := range payments {
		if reason := Classify(referralCode, w, &p); reason != "" {
			sel.Rejected = append(sel.Rejected, Rejection{Payment: p, Reason: reason})
			continue
		}
		sel.Eligible = append(sel.Eligible, p)
	}
	sel.Total = SumAmounts(sel.Eligible)

	return sel
}

// NewSelector binds Select to a window time zone.
func NewSelector(loc *time.Location) Selector {
	return func(referralCode string, payments []Payment) Selection {
		return Select(referralCode, payments, loc)
	}
}
