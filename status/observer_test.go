package status

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pos-terminal/models"
)

type recorder struct {
	events []string
}

func (r *recorder) OnScreenChanged(name string)              { r.events = append(r.events, "screen:"+name) }
func (r *recorder) OnCustomerSelected(c *models.Customer)    { r.events = append(r.events, "customer:"+c.Name) }
func (r *recorder) OnCartChanged()                           { r.events = append(r.events, "cart") }
func (r *recorder) OnMessage(text string, severity Severity) { r.events = append(r.events, severity.String()+":"+text) }
func (r *recorder) OnTransactionCompleted(id string, _ decimal.Decimal) {
	r.events = append(r.events, "tx:"+id)
}

type panicker struct{ recorder }

func (p *panicker) OnCartChanged() { panic("display gone") }

func TestHub_FansOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	hub := NewHub(nil, a)
	hub.Attach(b)

	hub.OnScreenChanged("Billing")
	hub.OnCustomerSelected(&models.Customer{ID: 1, Name: "Rahul"})
	hub.OnTransactionCompleted("R001", decimal.RequireFromString("50"))
	hub.OnMessage("saved", Success)

	want := []string{"screen:Billing", "customer:Rahul", "tx:R001", "success:saved"}
	assert.Equal(t, want, a.events)
	assert.Equal(t, want, b.events)
}

func TestHub_IsolatesPanics(t *testing.T) {
	var logs bytes.Buffer
	after := &recorder{}
	hub := NewHub(log.New(&logs, "", 0), &panicker{}, after)

	assert.NotPanics(t, hub.OnCartChanged)
	assert.Equal(t, []string{"cart"}, after.events)
	assert.Contains(t, logs.String(), "display gone")
}

type fakeCart struct {
	lines int
	total decimal.Decimal
}

func (c fakeCart) Len() int               { return c.lines }
func (c fakeCart) Total() decimal.Decimal { return c.total }

func TestConsolePanel_Render(t *testing.T) {
	var out bytes.Buffer
	cart := &fakeCart{}
	panel := NewConsolePanel(&out, cart)

	panel.OnScreenChanged("Billing")
	frame := out.String()
	assert.True(t, strings.HasPrefix(frame, "\0337"))
	assert.True(t, strings.HasSuffix(frame, "\0338"))
	assert.Contains(t, frame, "Screen: Billing")
	assert.Contains(t, frame, "No customer selected")
	assert.Contains(t, frame, "Empty")
	assert.Contains(t, frame, "No transactions yet")

	out.Reset()
	cart.lines, cart.total = 2, decimal.RequireFromString("55")
	panel.OnCustomerSelected(&models.Customer{ID: 4, Name: "Sita", Phone: "9876543213"})
	panel.OnCartChanged()
	panel.OnTransactionCompleted("R002", decimal.RequireFromString("55"))
	frame = out.String()
	assert.Contains(t, frame, "Name: Sita")
	assert.Contains(t, frame, "Items: 2")
	assert.Contains(t, frame, "Total: $55.00")
	assert.Contains(t, frame, "Receipt R002: $55.00")
}

func TestConsolePanel_ClipsLongMessages(t *testing.T) {
	var out bytes.Buffer
	panel := NewConsolePanel(&out, fakeCart{})

	panel.OnMessage(strings.Repeat("x", 80), Info)
	assert.Contains(t, out.String(), strings.Repeat("x", panelInner-1))
	assert.NotContains(t, out.String(), strings.Repeat("x", panelInner))
}

func TestLogObserver(t *testing.T) {
	var logs bytes.Buffer
	o := NewLogObserver(log.New(&logs, "", 0))

	o.OnCustomerSelected(nil)
	o.OnTransactionCompleted("R005", decimal.RequireFromString("12.5"))
	o.OnMessage("Cart is full!", Error)

	assert.Equal(t, "customer=none\ntransaction receipt=R005 amount=12.50\nmessage severity=error text=\"Cart is full!\"\n", logs.String())
}
