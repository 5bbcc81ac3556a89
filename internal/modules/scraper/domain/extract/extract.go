// Package extract 从职位页面的 Open Graph 标签和正文里提取投递草稿
package extract

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"JobTracker/internal/modules/application/domain/entity"

	"github.com/PuerkitoBio/goquery"
)

const descriptionLimit = 300

var (
	locationPhrase = regexp.MustCompile(`(?i)(?:location|based in|located in|office in)\s*[:\-–]?\s*([A-Z][a-zA-Z\s,]+)`)
	cityState      = regexp.MustCompile(`([A-Z][a-z]+(?:,\s*[A-Z]{2}))`)
	hostPrefix     = regexp.MustCompile(`^www\.`)
	hostSuffix     = regexp.MustCompile(`\.(com|org|net|io|co)$`)
)

type Job struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	JobType     string `json:"jobType"`
	Description string `json:"description"`
}

func meta(doc *goquery.Document, attr, name string) string {
	v, _ := doc.Find(`meta[` + attr + `="` + name + `"]`).First().Attr("content")
	return strings.TrimSpace(v)
}

func firstNonEmpty(vs ...string) string {
	for _, v := range vs {
		if v != "" {
			return v
		}
	}
	return ""
}

// Extract pageURL 用于 og:site_name 缺失时从域名推断公司
func Extract(doc *goquery.Document, pageURL *url.URL) Job {
	title := firstNonEmpty(
		meta(doc, "property", "og:title"),
		meta(doc, "name", "twitter:title"),
		strings.TrimSpace(doc.Find("title").First().Text()),
	)
	company := firstNonEmpty(meta(doc, "property", "og:site_name"), CompanyFromHost(pageURL.Hostname()))
	description := truncate(firstNonEmpty(
		meta(doc, "property", "og:description"),
		meta(doc, "name", "description"),
	), descriptionLimit)

	return Job{
		Title:       CleanTitle(title, company),
		Company:     company,
		Location:    Location(description + " " + title),
		JobType:     JobType(title + " " + description),
		Description: description,
	}
}

// CompanyFromHost jobs.acme-corp.com -> Jobs；www.acme-corp.io -> Acme Corp
func CompanyFromHost(host string) string {
	host = hostPrefix.ReplaceAllString(strings.ToLower(host), "")
	host = hostSuffix.ReplaceAllString(host, "")
	label, _, _ := strings.Cut(host, ".")
	words := strings.Fields(strings.ReplaceAll(label, "-", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func Location(text string) string {
	if m := locationPhrase.FindStringSubmatch(text); m != nil {
		return strings.TrimRight(strings.TrimSpace(m[1]), ",")
	}
	if m := cityState.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func JobType(text string) string {
	text = strings.ToLower(text)
	switch {
	case strings.Contains(text, "remote"):
		return string(entity.JobTypeRemote)
	case strings.Contains(text, "hybrid"):
		return string(entity.JobTypeHybrid)
	case strings.Contains(text, "onsite"), strings.Contains(text, "on-site"):
		return string(entity.JobTypeOnsite)
	}
	return ""
}

// CleanTitle 去掉标题里的公司名和两端的分隔符
func CleanTitle(title, company string) string {
	if company != "" {
		title = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(company)).ReplaceAllString(title, "")
	}
	return strings.TrimFunc(title, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune("-–|:", r)
	})
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
