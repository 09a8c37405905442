package handlers

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_handlers "github.com/fragpit/commission/internal/api/handlers/mocks"
	"github.com/fragpit/commission/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetAccountHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	tests := []struct {
		name     string
		account  *model.PaymentAccount
		err      error
		wantCode int
	}{
		{
			name: "found",
			account: &model.PaymentAccount{
				ID:            uuid.New(),
				Type:          model.AccountBank,
				ProviderName:  "BCA",
				AccountNumber: "123",
				AccountName:   "Seller",
				UpdatedAt:     testAnchor,
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "none on file",
			err:      model.ErrAccountNotFound,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockAccountsService(ctrl)
			m.EXPECT().GetAccount(gomock.Any(), testEmail).Return(tc.account, tc.err)

			rec := httptest.NewRecorder()
			req := newRequest(t, http.MethodGet, "/api/user/payment-account", testEmail, nil)
			NewGetAccountHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.account != nil {
				assert.Contains(t, rec.Body.String(), tc.account.ID.String())
			}
		})
	}
}

func TestPutAccountHandler(t *testing.T) {
	slog.SetDefault(slog.New(slog.DiscardHandler))

	dest := model.Destination{
		BankName:      "GoPay",
		AccountNumber: "0812",
		AccountName:   "Seller",
	}
	saved := &model.PaymentAccount{
		ID:            uuid.New(),
		Type:          model.AccountEWallet,
		ProviderName:  "GoPay",
		AccountNumber: "0812",
		AccountName:   "Seller",
	}

	tests := []struct {
		name     string
		body     string
		prepare  func(*mock_handlers.MockAccountsService)
		wantCode int
	}{
		{
			name: "saved",
			body: `{"type":"E-WALLET","provider_name":"GoPay","account_number":"0812","account_name":"Seller"}`,
			prepare: func(m *mock_handlers.MockAccountsService) {
				m.EXPECT().SaveAccount(gomock.Any(), testEmail, "E-WALLET", dest).
					Return(saved, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "invalid type",
			body: `{"type":"CASH","provider_name":"GoPay","account_number":"0812","account_name":"Seller"}`,
			prepare: func(m *mock_handlers.MockAccountsService) {
				m.EXPECT().SaveAccount(gomock.Any(), testEmail, "CASH", dest).
					Return(nil, model.ErrInvalidAccountType)
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed json",
			body:     `{"type":`,
			prepare:  func(*mock_handlers.MockAccountsService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "two documents",
			body:     `{"type":"BANK"}{"type":"BANK"}`,
			prepare:  func(*mock_handlers.MockAccountsService) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := mock_handlers.NewMockAccountsService(ctrl)
			tc.prepare(m)

			rec := httptest.NewRecorder()
			req := newRequest(
				t,
				http.MethodPut,
				"/api/user/payment-account",
				testEmail,
				strings.NewReader(tc.body),
			)
			NewPutAccountHandler(m).ServeHTTP(rec, req)

			assert.Equal(t, tc.wantCode, rec.Code)
		})
	}
}
