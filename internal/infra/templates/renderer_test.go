package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openlluna/website/internal/entity"
)

var testSite = Site{
	Name:       "Open Lluna",
	URL:        "https://openlluna.com",
	LogoURL:    "https://openlluna.com/logo.png",
	BrandColor: "#28B7D5",
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(testSite)
	require.NoError(t, err)
	r.now = func() time.Time { return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC) }
	return r
}

func TestNotificationContent(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Notification(&entity.Inquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "+1 555 0100",
		Message: "Line one\nLine two",
	})
	require.NoError(t, err)

	assert.Equal(t, "New inquiry from Ada", content.Subject)
	assert.Contains(t, content.HTML, "New Contact Form Submission")
	assert.Contains(t, content.HTML, "<strong>Ada</strong>")
	assert.Contains(t, content.HTML, `href="mailto:ada@example.com"`)
	assert.Contains(t, content.HTML, "Phone:")
	assert.Contains(t, content.HTML, "+1 555 0100")
	assert.Contains(t, content.HTML, "white-space:pre-wrap")
	assert.Contains(t, content.HTML, "Line one\nLine two")
	assert.Contains(t, content.HTML, "Sent from https://openlluna.com")
	assert.Contains(t, content.HTML, `src="https://openlluna.com/logo.png"`)

	assert.Equal(t, "New inquiry\nName: Ada\nEmail: ada@example.com\nPhone: +1 555 0100\n\nMessage:\nLine one\nLine two\n", content.Text)
}

func TestNotificationWithoutPhone(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Notification(&entity.Inquiry{Name: "A", Email: "a@x.io", Message: "Hi"})
	require.NoError(t, err)

	assert.NotContains(t, content.HTML, "Phone:")
	assert.Contains(t, content.Text, "Phone: -\n")
}

func TestNotificationEscapesMarkup(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Notification(&entity.Inquiry{
		Name:    `<b>x</b>`,
		Email:   `"><script>alert(1)</script>`,
		Phone:   `<i>555</i>`,
		Message: `<img src=x onerror=alert(1)> & 'quoted'`,
	})
	require.NoError(t, err)

	assert.NotContains(t, content.HTML, "<b>x</b>")
	assert.NotContains(t, content.HTML, "<script>")
	assert.NotContains(t, content.HTML, "<i>555</i>")
	assert.NotContains(t, content.HTML, "<img src=x")
	assert.NotContains(t, content.HTML, "'quoted'")
	assert.Contains(t, content.HTML, "&lt;b&gt;x&lt;/b&gt;")
	assert.Contains(t, content.HTML, "&amp;")

	// plain text is never markup, so it carries the input verbatim
	assert.Contains(t, content.Text, "Name: <b>x</b>")
	assert.Contains(t, content.Text, "<img src=x onerror=alert(1)> & 'quoted'")
}

func TestAcknowledgementContent(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Acknowledgement(&entity.Inquiry{
		Name:    "Ada",
		Email:   "ada@example.com",
		Phone:   "555-SECRET",
		Message: "private details",
	})
	require.NoError(t, err)

	assert.Equal(t, "We received your message — Open Lluna", content.Subject)
	assert.Contains(t, content.HTML, "Thanks Ada, we’ve received your message")
	assert.Contains(t, content.HTML, "typically within 24–48h")
	assert.Contains(t, content.HTML, `href="https://openlluna.com/services"`)
	assert.Contains(t, content.HTML, "If this wasn’t you, you can ignore this message.")
	assert.Contains(t, content.HTML, "© 2026 Open Lluna · All rights reserved")
	assert.Contains(t, content.HTML, "background:#28B7D5")

	// only the name is echoed back
	assert.NotContains(t, content.HTML, "private details")
	assert.NotContains(t, content.HTML, "555-SECRET")
	assert.NotContains(t, content.Text, "private details")

	assert.Equal(t, "Hi Ada,\n\nThanks for reaching out to Open Lluna. We’ve received your message and will get back to you within 24–48 hours.\n\nIn the meantime, you can reply to this email with any extra details.\nhttps://openlluna.com\n", content.Text)
}

func TestAcknowledgementEscapesName(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Acknowledgement(&entity.Inquiry{Name: "<script>x</script>"})
	require.NoError(t, err)

	assert.NotContains(t, content.HTML, "<script>")
	assert.Contains(t, content.HTML, "Thanks &lt;script&gt;x&lt;/script&gt;")
}

func TestSubjectStaysOnOneLine(t *testing.T) {
	r := newTestRenderer(t)

	content, err := r.Notification(&entity.Inquiry{Name: "Ada\r\nBcc: evil@example.com", Email: "a@x.io", Message: "Hi"})
	require.NoError(t, err)

	assert.Equal(t, "New inquiry from Ada Bcc: evil@example.com", content.Subject)
}
