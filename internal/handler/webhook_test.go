package handler_test

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SergeyBogomolovv/shop-order-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-order-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-order-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-order-service/internal/payment"
	paymentMocks "github.com/SergeyBogomolovv/shop-order-service/internal/payment/mocks"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestWebhookHandler_HandleWebhook(t *testing.T) {
	webhookBody := `{"invoice_id":"inv-1"}`

	testCases := []struct {
		name         string
		provider     string
		signature    string
		mockBehavior func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer)
		wantStatus   int
	}{
		{
			name:      "valid webhook triggers recheck",
			provider:  payment.MomoName,
			signature: "good",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {
				gw.EXPECT().VerifySignature([]byte(webhookBody), "good").Return(true)
				gw.EXPECT().ParseWebhook([]byte(webhookBody)).Return("inv-1", nil)
				paid := testOrder()
				paid.PaymentStatus = entities.PaymentPaid
				svc.EXPECT().
					ConfirmPayment(mock.Anything, payment.MomoName, "inv-1").
					Return(paid, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "bad signature",
			provider:  payment.MomoName,
			signature: "bad",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {
				gw.EXPECT().VerifySignature([]byte(webhookBody), "bad").Return(false)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:         "unknown provider",
			provider:     "cash",
			signature:    "good",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {},
			wantStatus:   http.StatusNotFound,
		},
		{
			name:      "unparseable payload is still acked",
			provider:  payment.MomoName,
			signature: "good",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {
				gw.EXPECT().VerifySignature([]byte(webhookBody), "good").Return(true)
				gw.EXPECT().ParseWebhook([]byte(webhookBody)).Return("", errors.New("missing invoice_id"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "unknown order is still acked",
			provider:  payment.MomoName,
			signature: "good",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {
				gw.EXPECT().VerifySignature([]byte(webhookBody), "good").Return(true)
				gw.EXPECT().ParseWebhook([]byte(webhookBody)).Return("inv-1", nil)
				svc.EXPECT().
					ConfirmPayment(mock.Anything, payment.MomoName, "inv-1").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:      "reconcile failure is still acked",
			provider:  payment.MomoName,
			signature: "good",
			mockBehavior: func(gw *paymentMocks.MockGateway, svc *mocks.MockPaymentConfirmer) {
				gw.EXPECT().VerifySignature([]byte(webhookBody), "good").Return(true)
				gw.EXPECT().ParseWebhook([]byte(webhookBody)).Return("inv-1", nil)
				svc.EXPECT().
					ConfirmPayment(mock.Anything, payment.MomoName, "inv-1").
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gw := paymentMocks.NewMockGateway(t)
			gw.EXPECT().Name().Return(payment.MomoName).Maybe()
			svc := mocks.NewMockPaymentConfirmer(t)
			tc.mockBehavior(gw, svc)

			logger := slog.New(slog.NewTextHandler(io.Discard, nil))
			h := handler.NewWebhookHandler(logger, payment.NewRegistry(gw), svc)

			r := chi.NewRouter()
			h.Init(r)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/"+tc.provider, strings.NewReader(webhookBody))
			req.Header.Set("X-Signature", tc.signature)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
