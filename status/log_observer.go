package status

import (
	"log"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
)

// LogObserver records every notification in the process log.
type LogObserver struct {
	logger *log.Logger
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (l *LogObserver) OnScreenChanged(name string) {
	l.logger.Printf("screen=%q", name)
}

func (l *LogObserver) OnCustomerSelected(customer *models.Customer) {
	if customer == nil {
		l.logger.Printf("customer=none")
		return
	}
	l.logger.Printf("customer=%d name=%q", customer.ID, customer.Name)
}

func (l *LogObserver) OnCartChanged() {
	l.logger.Printf("cart changed")
}

func (l *LogObserver) OnTransactionCompleted(receiptID string, amount decimal.Decimal) {
	l.logger.Printf("transaction receipt=%s amount=%s", receiptID, amount.StringFixed(2))
}

func (l *LogObserver) OnMessage(text string, severity Severity) {
	l.logger.Printf("message severity=%s text=%q", severity, text)
}
