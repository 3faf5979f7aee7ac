package footer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/folio/internal/content"
	"github.com/llehouerou/folio/internal/ui/testutil"
)

func testPortfolio() *content.Portfolio {
	return &content.Portfolio{
		Owner: content.Owner{Name: "Muhammed Nabeel", Role: "Engineer"},
		Contact: content.Contact{
			Email:    "me@example.com",
			Phone:    "+91 94960-85317",
			Location: "Calicut, India",
			Links:    []content.Link{{Label: "GitHub", URL: "https://github.com/x"}, {Label: "LinkedIn", URL: "https://linkedin.com/in/x"}},
		},
	}
}

func TestView_ContactLinks(t *testing.T) {
	m := New(testPortfolio(), nil)
	m.SetSize(100, 0)

	out := testutil.StripANSI(m.View())
	assert.Contains(t, out, "Muhammed Nabeel")
	assert.Contains(t, out, "mailto:me@example.com")
	assert.Contains(t, out, "tel:+919496085317")
	assert.Contains(t, out, "https://wa.me/+919496085317")
	assert.Contains(t, out, "Calicut, India")
	assert.True(t, testutil.ContainsLine(out, "GitHub"))
	assert.NotContains(t, out, "Content updated", "built-in content has no age")
}

func TestView_NoPhone(t *testing.T) {
	p := testPortfolio()
	p.Contact.Phone = ""
	m := New(p, nil)
	m.SetSize(100, 0)

	out := testutil.StripANSI(m.View())
	assert.NotContains(t, out, "WhatsApp")
	assert.NotContains(t, out, "tel:")
}

func TestUpdated_HumanizedAge(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	p := testPortfolio()
	p.Source = "/home/me/portfolio.toml"
	p.UpdatedAt = now.Add(-3 * 24 * time.Hour)

	m := New(p, func() time.Time { return now })
	m.SetSize(100, 0)

	assert.Equal(t, "3 days ago", m.Updated())
	assert.Contains(t, testutil.StripANSI(m.View()), "Content updated 3 days ago")
}

func TestView_LinesFitWidth(t *testing.T) {
	m := New(testPortfolio(), nil)
	m.SetSize(30, 0)

	for _, line := range testutil.SplitLines(m.View()) {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 30)
	}
}
