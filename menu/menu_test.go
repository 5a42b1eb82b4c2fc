package menu

import (
	"bytes"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(input string) (*Engine, *bytes.Buffer) {
	var out bytes.Buffer
	return New("POS TERMINAL", strings.NewReader(input), &out, log.New(io.Discard, "", 0)), &out
}

func TestEngine_Dispatch(t *testing.T) {
	e, out := newEngine("1\n1\n7\n3\n3\n")

	var screens, got []string
	e.OnScreen(func(name string) { screens = append(screens, name) })

	billing := e.Group("Billing")
	billing.Handle("Add to cart", func(c *Context) {
		n, err := c.PromptInt("Quantity: ")
		require.NoError(t, err)
		got = append(got, "add")
		c.Printf("added %d\n", n)
	})
	billing.Handle("View cart", func(c *Context) { got = append(got, "view") })

	e.Handle("Reports", func(c *Context) { got = append(got, "reports") })

	require.NoError(t, e.Run())

	assert.Equal(t, []string{"add"}, got)
	assert.Equal(t, []string{"Main Menu", "Billing", "Main Menu"}, screens)
	assert.Contains(t, out.String(), "--- BILLING ---")
	assert.Contains(t, out.String(), "3. Back to Main Menu")
	assert.Contains(t, out.String(), "3. Exit")
	assert.Contains(t, out.String(), "added 7")
}

func TestEngine_InvalidChoice(t *testing.T) {
	e, out := newEngine("abc\n9\n0\n2\n")
	e.Handle("Only", func(c *Context) { t.Fatal("must not run") })

	require.NoError(t, e.Run())
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid choice! Please try again."))
}

func TestEngine_StopsWhenInputCloses(t *testing.T) {
	e, _ := newEngine("1\n")
	prompted := false
	e.Handle("Ask", func(c *Context) {
		_, err := c.Prompt("Name: ")
		prompted = true
		assert.ErrorIs(t, err, ErrInputClosed)
	})

	assert.NoError(t, e.Run())
	assert.True(t, prompted)
}

func TestEngine_LastLineWithoutNewline(t *testing.T) {
	e, _ := newEngine("1\nRahul")
	var name string
	e.Handle("Ask", func(c *Context) {
		var err error
		name, err = c.Prompt("Name: ")
		require.NoError(t, err)
	})

	require.NoError(t, e.Run())
	assert.Equal(t, "Rahul", name)
}

func TestEngine_RecoversFromPanics(t *testing.T) {
	e, out := newEngine("1\n2\n")
	e.Handle("Boom", func(c *Context) { panic("boom") })

	require.NoError(t, e.Run())
	assert.Contains(t, out.String(), "Unexpected error, action aborted.")
}
