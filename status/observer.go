// Package status carries state-change notifications from the billing core to
// passive views.
package status

import (
	"log"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Observer is implemented by every view that mirrors terminal state.
type Observer interface {
	OnScreenChanged(name string)
	OnCustomerSelected(customer *models.Customer)
	OnCartChanged()
	OnTransactionCompleted(receiptID string, amount decimal.Decimal)
	OnMessage(text string, severity Severity)
}

// Hub fans notifications out to the attached observers. A panicking observer
// is logged and skipped; the caller never sees the failure.
type Hub struct {
	observers []Observer
	logger    *log.Logger
}

func NewHub(logger *log.Logger, observers ...Observer) *Hub {
	return &Hub{observers: observers, logger: logger}
}

func (h *Hub) Attach(o Observer) {
	h.observers = append(h.observers, o)
}

func (h *Hub) each(event string, fn func(Observer)) {
	for _, o := range h.observers {
		h.safely(event, o, fn)
	}
}

func (h *Hub) safely(event string, o Observer, fn func(Observer)) {
	defer func() {
		if r := recover(); r != nil && h.logger != nil {
			h.logger.Printf("observer %T failed on %s: %v", o, event, r)
		}
	}()
	fn(o)
}

func (h *Hub) OnScreenChanged(name string) {
	h.each("screen", func(o Observer) { o.OnScreenChanged(name) })
}

func (h *Hub) OnCustomerSelected(customer *models.Customer) {
	h.each("customer", func(o Observer) { o.OnCustomerSelected(customer) })
}

func (h *Hub) OnCartChanged() {
	h.each("cart", func(o Observer) { o.OnCartChanged() })
}

func (h *Hub) OnTransactionCompleted(receiptID string, amount decimal.Decimal) {
	h.each("transaction", func(o Observer) { o.OnTransactionCompleted(receiptID, amount) })
}

func (h *Hub) OnMessage(text string, severity Severity) {
	h.each("message", func(o Observer) { o.OnMessage(text, severity) })
}
