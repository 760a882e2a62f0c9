package request

import "encoding/json"

// PaymentCreateRequest is the payload for recording a payment.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas. A bare Mercado Pago body without the envelope is accepted too.
type PaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
