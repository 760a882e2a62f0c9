package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownQuotationStatus = errors.New("unknown quotation status")
	ErrUnknownPaymentStatus   = errors.New("unknown payment status")
)

// QuotationStatus is the lifecycle of a quotation.
//
// Transitions: draft -> pending -> {approved, rejected}. Approved and rejected
// are terminal for pricing purposes.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusPending  QuotationStatus = "pending"
	QuotationStatusApproved QuotationStatus = "approved"
	QuotationStatusRejected QuotationStatus = "rejected"
)

// IsTerminal reports whether pricing can no longer change.
func (s QuotationStatus) IsTerminal() bool {
	return s == QuotationStatusApproved || s == QuotationStatusRejected
}

// PaymentStatus is the state of a ledger payment.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// Valid reports whether s is one of the canonical payment statuses.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusFailed, PaymentStatusCancelled:
		return true
	}
	return false
}

// ParseQuotationStatus is the single place where external or legacy status
// strings ("Aprobada", "aprobado", "pendiente", ...) become a QuotationStatus.
func ParseQuotationStatus(raw string) (QuotationStatus, error) {
	switch normalizeToken(raw) {
	case "", "draft", "borrador":
		return QuotationStatusDraft, nil
	case "pending", "pendiente":
		return QuotationStatusPending, nil
	case "approved", "aprobado", "aprobada", "autorizado", "autorizada":
		return QuotationStatusApproved, nil
	case "rejected", "rechazado", "rechazada", "cancelado", "cancelada":
		return QuotationStatusRejected, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQuotationStatus, raw)
}

// ParsePaymentStatus normalizes ledger and processor status strings.
// MercadoPago statuses are accepted so provider responses map directly.
func ParsePaymentStatus(raw string) (PaymentStatus, error) {
	switch normalizeToken(raw) {
	case "paid", "pagado", "pagada", "approved", "aprobado", "succeeded":
		return PaymentStatusPaid, nil
	case "pending", "pendiente", "in_process", "in_mediation", "authorized":
		return PaymentStatusPending, nil
	case "failed", "fallido", "rejected", "rechazado":
		return PaymentStatusFailed, nil
	case "cancelled", "canceled", "cancelado", "refunded", "charged_back":
		return PaymentStatusCancelled, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentStatus, raw)
}

func normalizeToken(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
