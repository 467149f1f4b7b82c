package hiroba

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"dqx_news/internal/domain"
)

var (
	detailHrefExpr   = regexp.MustCompile(`/sc/news/detail/([^/]+)/?`)
	dateExpr         = regexp.MustCompile(`\d{4}[-/]\d{2}[-/]\d{2}(?:\s+\d{2}:\d{2})?`)
	categoryPageExpr = regexp.MustCompile(`/sc/news/category/\d+/(\d+)`)
)

var dateLayouts = []string{
	"2006-01-02 15:04",
	"2006/01/02 15:04",
	"2006-01-02",
	"2006/01/02",
}

func (s *Source) parseListing(doc *goquery.Document, category domain.Category) []domain.Item {
	var items []domain.Item

	doc.Find(`a[href*="/sc/news/detail/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := detailHrefExpr.FindStringSubmatch(href)
		if m == nil {
			return
		}
		id := m[1]

		title := strings.TrimSpace(sel.Text())
		// Skip "read more" style navigation links.
		if title == "" || title == "詳細" || title == "もっと見る" {
			return
		}

		publishedAt, ok := extractDateNear(sel)
		if !ok {
			s.logger.Warn("no publish date near listing link", "id", id, "title", title)
			return
		}

		items = append(items, domain.Item{
			ID:          id,
			Title:       title,
			Category:    category,
			URL:         fmt.Sprintf("%s/sc/news/detail/%s/", s.baseURL, id),
			PublishedAt: publishedAt,
		})
	})

	return items
}

// extractDateNear looks for a date in the link's parent element, then the
// enclosing row, then the next few siblings. Hiroba puts the date in a cell
// or span next to the title link.
func extractDateNear(sel *goquery.Selection) (time.Time, bool) {
	if t, ok := parseDate(dateExpr.FindString(sel.Parent().Text())); ok {
		return t, true
	}
	if t, ok := parseDate(dateExpr.FindString(sel.Parent().Parent().Text())); ok {
		return t, true
	}

	var found time.Time
	var ok bool
	sel.NextAll().EachWithBreak(func(i int, sib *goquery.Selection) bool {
		if i >= 3 {
			return false
		}
		if t, parsed := parseDate(dateExpr.FindString(sib.Text())); parsed {
			found, ok = t, true
			return false
		}
		return true
	})

	return found, ok
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseTotalPages(doc *goquery.Document) int {
	maxPage := 1

	doc.Find(`a[href*="/sc/news/category/"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		m := categoryPageExpr.FindStringSubmatch(href)
		if m == nil {
			return
		}
		if page, err := strconv.Atoi(m[1]); err == nil && page > maxPage {
			maxPage = page
		}
	})

	return maxPage
}

func parseBody(doc *goquery.Document) string {
	selectors := []string{
		`div[class*="newsdetail"]`,
		`div[class*="article"]`,
		`div[class*="content"]`,
		"article",
		"main",
	}

	for _, selector := range selectors {
		if node := doc.Find(selector).First(); node.Length() > 0 {
			return cleanText(node)
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return ""
	}
	body.Find("nav, header, footer, script, style").Remove()
	return cleanText(body)
}

func parseUpdatedAt(doc *goquery.Document) *time.Time {
	if t, ok := parseDate(dateExpr.FindString(doc.Text())); ok {
		return &t
	}
	return nil
}

func cleanText(sel *goquery.Selection) string {
	var lines []string
	for _, line := range strings.Split(sel.Text(), "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return strings.Join(lines, "\n")
}
