package status

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-terminal/models"
	"pos-terminal/utils"
)

const (
	reset   = "\033[0m"
	red     = "\033[31m"
	green   = "\033[32m"
	yellow  = "\033[33m"
	magenta = "\033[35m"
	cyan    = "\033[36m"

	panelRow   = 1
	panelCol   = 80
	panelInner = 33
)

// CartState is the read-only view of the cart the panel renders.
type CartState interface {
	Len() int
	Total() decimal.Decimal
}

// ConsolePanel draws a status box in the top-right corner of an ANSI
// terminal, restoring the cursor afterwards.
type ConsolePanel struct {
	out   io.Writer
	cart  CartState
	clock func() time.Time

	screen      string
	customer    *models.Customer
	message     string
	lastReceipt string
	lastAmount  decimal.Decimal
}

func NewConsolePanel(out io.Writer, cart CartState) *ConsolePanel {
	return &ConsolePanel{
		out:     out,
		cart:    cart,
		clock:   time.Now,
		screen:  "Main Menu",
		message: "System Ready",
	}
}

func (p *ConsolePanel) OnScreenChanged(name string) {
	p.screen = name
	p.render()
}

func (p *ConsolePanel) OnCustomerSelected(customer *models.Customer) {
	if customer == nil {
		p.customer = nil
		p.message = "No customer selected"
	} else {
		c := *customer
		p.customer = &c
		p.message = "Customer selected: " + c.Name
	}
	p.render()
}

func (p *ConsolePanel) OnCartChanged() {
	p.message = utils.FormatCartMessage(p.cart.Len(), p.cart.Total())
	p.render()
}

func (p *ConsolePanel) OnTransactionCompleted(receiptID string, amount decimal.Decimal) {
	p.lastReceipt = receiptID
	p.lastAmount = amount
	p.message = utils.FormatTransactionMessage(receiptID, amount)
	p.render()
}

func (p *ConsolePanel) OnMessage(text string, _ Severity) {
	p.message = text
	p.render()
}

func (p *ConsolePanel) render() {
	var b bytes.Buffer
	row := panelRow

	line := func(color, text string) {
		fmt.Fprintf(&b, "\033[%d;%dH\033[K", row, panelCol)
		fmt.Fprintf(&b, "%s│%s %s%-*s%s%s│%s", cyan, reset, color, panelInner-1, clip(text, panelInner-1), reset, cyan, reset)
		row++
	}
	border := func(left, right string) {
		fmt.Fprintf(&b, "\033[%d;%dH\033[K", row, panelCol)
		fmt.Fprintf(&b, "%s%s%s%s%s", cyan, left, strings.Repeat("─", panelInner), right, reset)
		row++
	}

	b.WriteString("\0337")
	border("┌", "┐")
	line(cyan, "STATUS PANEL")
	line(yellow, "Time: "+p.clock().Format("15:04:05"))
	border("├", "┤")
	line(green, "Screen: "+p.screen)
	border("├", "┤")
	line(cyan, "CUSTOMER:")
	if p.customer != nil {
		line(yellow, fmt.Sprintf("ID: %d", p.customer.ID))
		line(green, "Name: "+p.customer.Name)
		line(magenta, "Phone: "+p.customer.Phone)
	} else {
		line(red, "No customer selected")
	}
	border("├", "┤")
	line(cyan, "CART:")
	if p.cart.Len() == 0 {
		line(red, "Empty")
	} else {
		line(yellow, fmt.Sprintf("Items: %d", p.cart.Len()))
		line(green, "Total: "+utils.Money(p.cart.Total()))
	}
	border("├", "┤")
	line(cyan, "LAST TRANSACTION:")
	if p.lastReceipt != "" {
		line(yellow, "ID: "+p.lastReceipt)
		line(green, "Amount: "+utils.Money(p.lastAmount))
	} else {
		line(red, "No transactions yet")
	}
	border("├", "┤")
	line(green, p.message)
	border("└", "┘")
	b.WriteString("\0338")

	// A write failure only loses one frame of the panel.
	_, _ = p.out.Write(b.Bytes())
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
