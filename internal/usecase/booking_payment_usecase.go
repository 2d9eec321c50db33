package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"fotoeventos/internal/domain/entities"
	"fotoeventos/internal/usecase/interfaces"
)

var (
	ErrBookingPaymentNotFound         = errors.New("booking payment not found")
	ErrInvalidPaymentOrderID          = errors.New("invalid order_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOrderNotActive                 = errors.New("order not active")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IBookingPaymentUseCase encapsulates the "charge the deposit" behavior.
//
// The first payment against an order charges the deposit; once a deposit is
// on record the next payment charges the remaining balance.

type IBookingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BookingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BookingPayment, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.BookingPayment, error)
}

type BookingPaymentUseCase struct {
	repo      interfaces.IBookingPaymentRepository
	orderRepo interfaces.IOrderRepository
	gateway   interfaces.IPaymentGateway
}

var _ IBookingPaymentUseCase = (*BookingPaymentUseCase)(nil)

func NewBookingPaymentUseCase(repo interfaces.IBookingPaymentRepository, orderRepo interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *BookingPaymentUseCase {
	return &BookingPaymentUseCase{repo: repo, orderRepo: orderRepo, gateway: gateway}
}

func (u *BookingPaymentUseCase) CreateAndApprove(ctx context.Context, orderID string, mpPayload json.RawMessage) (entities.BookingPayment, error) {
	log.Printf("[payment][usecase] create-and-approve start raw_order_id=%q payload_len=%d", orderID, len(mpPayload))
	mockMode := isPaymentGatewayMockEnabled()
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Printf("[payment][usecase] invalid order_id (empty)")
		return entities.BookingPayment{}, ErrInvalidPaymentOrderID
	}
	if len(mpPayload) == 0 {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (empty) order_id=%s", orderID)
			return entities.BookingPayment{}, ErrInvalidMPPayload
		}
	}
	if !json.Valid(mpPayload) {
		if mockMode {
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][usecase] invalid payload (not-json) order_id=%s", orderID)
			return entities.BookingPayment{}, ErrInvalidMPPayload
		}
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured order_id=%s", orderID)
		return entities.BookingPayment{}, errors.New("payment gateway not configured")
	}
	if u.orderRepo == nil {
		log.Printf("[payment][usecase] order repository not configured order_id=%s", orderID)
		return entities.BookingPayment{}, errors.New("order repository not configured")
	}

	log.Printf("[payment][usecase] loading order order_id=%s", orderID)
	var err error
	ord, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.BookingPayment{}, err
	}
	if ord.ID == "" {
		log.Printf("[payment][usecase] order not found order_id=%s", orderID)
		return entities.BookingPayment{}, ErrOrderNotFound
	}
	if !mockMode && ord.Status != entities.OrderStatusAtivo {
		log.Printf("[payment][usecase] order not active order_id=%s status=%s", orderID, ord.Status)
		return entities.BookingPayment{}, ErrOrderNotActive
	}

	amount, err := u.nextChargeAmount(ctx, ord)
	if err != nil {
		return entities.BookingPayment{}, err
	}
	log.Printf("[payment][usecase] order loaded order_id=%s status=%s total=%.2f charge=%.2f", orderID, ord.Status, ord.Total, amount)

	// Ensure basic linkage with the order when the caller didn't provide it.
	// Mercado Pago uses external_reference to help reconcile events.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[payment][usecase] missing payment_method_id order_id=%s", orderID)
			return entities.BookingPayment{}, ErrInvalidMPPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Printf("[payment][usecase] missing/invalid payer order_id=%s", orderID)
			return entities.BookingPayment{}, ErrInvalidMPPayload
		}

		log.Printf("[payment][usecase] enriching payload order_id=%s", orderID)
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = orderID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Booking %s (%s)", orderID, ord.EventName)
		}

		// The source of truth for amount is the order in DB.
		reqMap["transaction_amount"] = amount
		if b, err := json.Marshal(reqMap); err == nil {
			mpPayload = b
			log.Printf("[payment][usecase] payload enriched order_id=%s payload_len=%d", orderID, len(mpPayload))
		}
	} else {
		log.Printf("[payment][usecase] payload unmarshal failed order_id=%s err=%v", orderID, err)
	}

	providerPaymentID := ""
	providerStatus := ""
	providerResp := json.RawMessage(nil)

	if mockMode {
		log.Printf("[payment][usecase] mock mode enabled; skipping external payment gateway order_id=%s", orderID)
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		if len(mpPayload) > 0 && json.Valid(mpPayload) {
			_ = json.Unmarshal(mpPayload, &mockResp)
		}
		mockResp["id"] = providerPaymentID
		mockResp["status"] = "approved"
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		if _, ok := mockResp["external_reference"]; !ok {
			mockResp["external_reference"] = orderID
		}
		if _, ok := mockResp["transaction_amount"]; !ok {
			mockResp["transaction_amount"] = amount
		}
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.BookingPayment{}, mErr
		}
		providerResp = b
	} else {
		log.Printf("[payment][usecase] calling payment gateway order_id=%s", orderID)
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, mpPayload)
		if err != nil {
			log.Printf("[payment][usecase] payment gateway failed order_id=%s err=%v", orderID, err)
			if isGatewayCustomerNotFound(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayCustomerNotFound
			}
			if isGatewayInvalidUsers(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayInvalidUsers
			}
			if isGatewayUnauthorized(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayUnauthorized
			}
			if isGatewayBadRequest(err) {
				return entities.BookingPayment{}, ErrPaymentGatewayBadRequest
			}
			return entities.BookingPayment{}, err
		}
	}
	log.Printf("[payment][usecase] payment gateway success order_id=%s provider_payment_id=%s provider_status=%s", orderID, providerPaymentID, providerStatus)

	status := entities.PaymentStatusAprovado

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[payment][usecase] provider response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	now := time.Now().UTC()
	p := entities.BookingPayment{
		ID:           providerPaymentID,
		OrderID:      orderID,
		Amount:       amount,
		Date:         now,
		Status:       status,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] payment repository create failed order_id=%s payment_id=%s err=%v", orderID, p.ID, err)
		return entities.BookingPayment{}, err
	}
	log.Printf("[payment][usecase] create-and-approve success order_id=%s payment_id=%s amount=%.2f status=%s", orderID, created.ID, created.Amount, created.Status)
	return created, nil
}

// nextChargeAmount picks the deposit for the first approved payment and the
// remaining balance afterwards.
func (u *BookingPaymentUseCase) nextChargeAmount(ctx context.Context, ord entities.Order) (float64, error) {
	if ord.Deposit <= 0 {
		return ord.Total, nil
	}

	existing, err := u.repo.ListByOrderID(ctx, ord.ID)
	if err != nil {
		return 0, err
	}
	paid := 0.0
	for _, p := range existing {
		if p.Status == entities.PaymentStatusAprovado {
			paid += p.Amount
		}
	}
	if paid <= 0 {
		return ord.Deposit, nil
	}
	remaining := ord.Total - paid
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// In sandbox, either payer.id or payer.email may be used.
	// Fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			// Sandbox-safe fallback recommended by Mercado Pago examples.
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}

	accessToken := strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if !strings.HasPrefix(accessToken, "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}

	rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"]))
	if rawID == "" || rawID == "<nil>" || rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	log.Printf("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}

func (u *BookingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BookingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BookingPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BookingPayment{}, err
	}
	if p.ID == "" {
		return entities.BookingPayment{}, ErrBookingPaymentNotFound
	}
	return p, nil
}

func (u *BookingPaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.BookingPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidPaymentOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}
