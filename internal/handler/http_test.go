package handler_test

import (
	"encoding/json"
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
	"github.com/SergeyBogomolovv/shop-order-service/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testOrderID = "11111111-1111-1111-1111-111111111111"

func testOrder() entities.Order {
	return entities.Order{
		ID:                 testOrderID,
		Email:              "buyer@example.com",
		TotalMinor:         2000,
		Status:             entities.OrderPending,
		ShippingStatus:     entities.ShippingPreparation,
		PaymentStatus:      entities.PaymentPending,
		PaymentProvider:    payment.MomoName,
		PaymentProviderRef: "inv-1",
		Items: []entities.OrderItem{
			{ProductID: "p1", Quantity: 2, UnitPriceMinor: 1000, LineTotalMinor: 2000, ProductName: "Vanilla pods", ProductSlug: "vanilla-pods"},
		},
	}
}

func newOrderRouter(t *testing.T) (chi.Router, *mocks.MockOrderService) {
	svc := mocks.NewMockOrderService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, svc)

	r := chi.NewRouter()
	h.Init(r)
	return r, svc
}

func TestHTTPHandler_CreateOrder(t *testing.T) {
	validBody := `{
		"email": "buyer@example.com",
		"provider": "momo",
		"items": [{"product_id": "p1", "quantity": 2}]
	}`

	testCases := []struct {
		name         string
		body         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(in service.CreateOrderInput) bool {
						return in.Email == "buyer@example.com" &&
							in.Provider == "momo" &&
							len(in.Items) == 1 && in.Items[0].Quantity == 2
					})).
					Return(service.CreatedOrder{
						Order:       testOrder(),
						CheckoutURL: "https://pay.example/inv-1",
					}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"checkout_url":"https://pay.example/inv-1"`,
		},
		{
			name:         "invalid json",
			body:         `{`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
		{
			name:         "missing email",
			body:         `{"provider": "momo", "items": [{"product_id": "p1", "quantity": 1}]}`,
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name: "insufficient stock",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(service.CreatedOrder{}, entities.ErrInsufficientStock).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   "insufficient stock",
		},
		{
			name: "unknown provider",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(service.CreatedOrder{}, entities.ErrUnknownProvider).Once()
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "provider unavailable",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(service.CreatedOrder{}, entities.ErrProviderUnavailable).Once()
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `"payment provider unavailable"`,
		},
		{
			name: "internal error",
			body: validBody,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					CreateOrder(mock.Anything, mock.Anything).
					Return(service.CreatedOrder{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}
		})
	}
}

func TestHTTPHandler_GetOrderByID(t *testing.T) {
	testCases := []struct {
		name         string
		orderID      string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:    "success",
			orderID: testOrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, testOrderID).
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + testOrderID + `"`,
		},
		{
			name:         "not a uuid",
			orderID:      "123",
			mockBehavior: func(svc *mocks.MockOrderService) {},
			wantStatus:   http.StatusBadRequest,
		},
		{
			name:    "not found",
			orderID: testOrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, testOrderID).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:    "internal error",
			orderID: testOrderID,
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					GetOrderByID(mock.Anything, testOrderID).
					Return(entities.Order{}, errors.New("db error")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/orders/"+tc.orderID, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			if tc.wantBody != "" {
				assert.Contains(t, string(body), tc.wantBody)
			}

			if tc.wantStatus == http.StatusOK {
				var resp map[string]any
				err := json.Unmarshal(body, &resp)
				require.NoError(t, err)
				assert.Equal(t, testOrderID, resp["id"])
				assert.Equal(t, "PENDING", resp["status"])
			}
		})
	}
}

func TestHTTPHandler_PaymentStatus(t *testing.T) {
	testCases := []struct {
		name         string
		providerRef  string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name:        "paid",
			providerRef: "inv-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				paid := testOrder()
				paid.Status = entities.OrderConfirmed
				paid.PaymentStatus = entities.PaymentPaid
				svc.EXPECT().
					PaymentReturn(mock.Anything, "inv-1").
					Return(paid, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"payment_status":"PAID"`,
		},
		{
			name:        "still pending",
			providerRef: "inv-1",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PaymentReturn(mock.Anything, "inv-1").
					Return(testOrder(), nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"payment_status":"PENDING"`,
		},
		{
			name:        "unknown ref",
			providerRef: "missing",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().
					PaymentReturn(mock.Anything, "missing").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, svc := newOrderRouter(t)
			tc.mockBehavior(svc)

			req := httptest.NewRequest(http.MethodGet, "/payments/"+tc.providerRef+"/status", nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			res := rr.Result()
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			require.NoError(t, err)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, string(body), tc.wantBody)
		})
	}
}
