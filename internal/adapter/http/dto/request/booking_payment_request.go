package request

import "encoding/json"

// BookingPaymentCreateRequest is the payload for the deposit charge route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type BookingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
