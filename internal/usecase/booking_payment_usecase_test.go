package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"fotoeventos/internal/domain/entities"
	mock_interfaces "fotoeventos/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestBookingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "o-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewBookingPaymentUseCase(nil, orderRepo, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("order repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(nil, nil, gateway)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "order repository not configured" {
			t.Fatalf("expected order repository not configured error, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_OrderChecks(t *testing.T) {
	t.Run("order repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order not active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusCancelado}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrOrderNotActive) {
			t.Fatalf("expected ErrOrderNotActive, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusAtivo, Total: 100}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(entities.Order{ID: "o-1", Status: entities.OrderStatusAtivo, Total: 100}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "o-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_ChargeAmounts(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
	order := entities.Order{ID: "o-1", EventName: "Casamento Ana e Pedro", Status: entities.OrderStatusAtivo, Total: 100, Deposit: 30}

	t.Run("first payment charges the deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(p, &m); err != nil {
					t.Fatalf("invalid enriched payload: %v", err)
				}
				if m["transaction_amount"] != 30.0 {
					t.Fatalf("expected deposit amount 30, got %v", m["transaction_amount"])
				}
				if m["external_reference"] != "o-1" {
					t.Fatalf("expected external_reference o-1, got %v", m["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
				if p.ID != "mp-1" || p.OrderID != "o-1" || p.Amount != 30 || p.Status != entities.PaymentStatusAprovado {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "o-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 30 {
			t.Fatalf("expected deposit charge, got %.2f", res.Amount)
		}
	})

	t.Run("second payment charges the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.BookingPayment{
			{ID: "mp-1", OrderID: "o-1", Amount: 30, Status: entities.PaymentStatusAprovado},
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(p, &m); err != nil {
					t.Fatalf("invalid enriched payload: %v", err)
				}
				if m["transaction_amount"] != 70.0 {
					t.Fatalf("expected balance amount 70, got %v", m["transaction_amount"])
				}
				return "mp-2", "approved", json.RawMessage(`{"id":"mp-2","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
				return p, nil
			},
		)

		res, err := uc.CreateAndApprove(context.Background(), "o-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Amount != 70 {
			t.Fatalf("expected balance charge, got %.2f", res.Amount)
		}
	})

	t.Run("denied payments do not reduce the balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.BookingPayment{
			{ID: "mp-1", OrderID: "o-1", Amount: 30, Status: entities.PaymentStatusNegado},
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				_ = json.Unmarshal(p, &m)
				if m["transaction_amount"] != 30.0 {
					t.Fatalf("expected deposit retry of 30, got %v", m["transaction_amount"])
				}
				return "mp-2", "approved", json.RawMessage(`{"id":"mp-2","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
				return p, nil
			},
		)

		if _, err := uc.CreateAndApprove(context.Background(), "o-1", payload); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestBookingPaymentUseCase_CreateAndApprove_GatewayErrors(t *testing.T) {
	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
	order := entities.Order{ID: "o-1", Status: entities.OrderStatusAtivo, Total: 100}

	cases := []struct {
		name     string
		gwErr    error
		expected error
	}{
		{name: "bad request", gwErr: errors.New(`mercadopago: {"error":"bad_request","status":400}`), expected: ErrPaymentGatewayBadRequest},
		{name: "unauthorized", gwErr: errors.New(`mercadopago: {"error":"unauthorized","status":401}`), expected: ErrPaymentGatewayUnauthorized},
		{name: "invalid users", gwErr: errors.New(`mercadopago: invalid users involved`), expected: ErrPaymentGatewayInvalidUsers},
		{name: "customer not found", gwErr: errors.New(`mercadopago: customer not found`), expected: ErrPaymentGatewayCustomerNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
			orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

			orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.gwErr)

			_, err := uc.CreateAndApprove(context.Background(), "o-1", payload)
			if !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestBookingPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "1")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
	orderRepo := mock_interfaces.NewMockIOrderRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := NewBookingPaymentUseCase(repo, orderRepo, gateway)

	order := entities.Order{ID: "o-1", Status: entities.OrderStatusAtivo, Total: 100, Deposit: 30}
	orderRepo.EXPECT().GetByID(gomock.Any(), "o-1").Return(order, nil)
	repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.BookingPayment) (entities.BookingPayment, error) {
			if p.ID == "" || p.Amount != 30 || p.Status != entities.PaymentStatusAprovado {
				t.Fatalf("unexpected payment: %+v", p)
			}
			return p, nil
		},
	)

	res, err := uc.CreateAndApprove(context.Background(), "o-1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.MPPayloadRaw == nil {
		t.Fatalf("expected synthesized provider response")
	}
}

func TestBookingPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BookingPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrBookingPaymentNotFound) {
			t.Fatalf("expected ErrBookingPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.BookingPayment{ID: "p-1"}, nil)

		res, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "p-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("ListByOrderID invalid id", func(t *testing.T) {
		uc := NewBookingPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidPaymentOrderID) {
			t.Fatalf("expected ErrInvalidPaymentOrderID, got %v", err)
		}
	})

	t.Run("ListByOrderID success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingPaymentRepository(ctrl)
		uc := NewBookingPaymentUseCase(repo, nil, nil)
		repo.EXPECT().ListByOrderID(gomock.Any(), "o-1").Return([]entities.BookingPayment{{ID: "p-1"}}, nil)

		res, err := uc.ListByOrderID(context.Background(), " o-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "p-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
