// Package quickadd 解析一行式的投递输入，例如
// "Google SWE Remote 25L" 或 "Stripe - Backend Dev - $150k - Hybrid"
package quickadd

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"JobTracker/internal/modules/application/domain/entity"
)

type Result struct {
	CompanyName   string           `json:"companyName"`
	PositionTitle string           `json:"positionTitle"`
	JobType       *entity.JobType  `json:"jobType,omitempty"`
	Platform      *entity.Platform `json:"platform,omitempty"`
	SalaryMin     *int             `json:"salaryMin,omitempty"`
	SalaryMax     *int             `json:"salaryMax,omitempty"`
	Location      *string          `json:"location,omitempty"`
}

var jobTypeWords = map[string]entity.JobType{
	"remote":         entity.JobTypeRemote,
	"hybrid":         entity.JobTypeHybrid,
	"onsite":         entity.JobTypeOnsite,
	"on-site":        entity.JobTypeOnsite,
	"in-office":      entity.JobTypeOnsite,
	"wfh":            entity.JobTypeRemote,
	"work from home": entity.JobTypeRemote,
}

var platformWords = map[string]entity.Platform{
	"linkedin":  entity.PlatformLinkedIn,
	"indeed":    entity.PlatformIndeed,
	"glassdoor": entity.PlatformGlassdoor,
	"referral":  entity.PlatformReferral,
	"referred":  entity.PlatformReferral,
	"naukri":    entity.PlatformOther,
	"angellist": entity.PlatformAngelList,
}

// 区间连字符先替换成占位符，避免被当成分隔符切开
const rangeMark = "\x1f"

var (
	delimiters   = regexp.MustCompile(`\s*[-–|,]\s*|\s{2,}`)
	numericRange = regexp.MustCompile(`(\d)\s*[-–]\s*(\d)`)
	spacedUnit   = regexp.MustCompile(`(?i)(\d)\s+(lpa|lac|cr|k|l)\b`)
	salaryToken  = regexp.MustCompile(`(?i)^[$₹€£]?(\d+(?:\.\d+)?)\s*(lpa|lac|cr|k|l)?(?:\s*(?:` + rangeMark + `|to)\s*[$₹€£]?(\d+(?:\.\d+)?)\s*(lpa|lac|cr|k|l)?)?$`)
)

// Parse 不做任何写入，只给出草稿字段
func Parse(input string) Result {
	normalized := numericRange.ReplaceAllString(input, "${1}"+rangeMark+"${2}")
	normalized = spacedUnit.ReplaceAllString(normalized, "${1}${2}")

	var parts []string
	for _, p := range delimiters.Split(normalized, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	tokens := parts
	if len(parts) <= 1 {
		tokens = strings.Fields(normalized)
	}

	var res Result
	var rest []string
	for _, tok := range tokens {
		lower := strings.ToLower(tok)
		if jt, ok := jobTypeWords[lower]; ok {
			res.JobType = &jt
			continue
		}
		if p, ok := platformWords[lower]; ok {
			res.Platform = &p
			continue
		}
		if lo, hi, ok := parseSalary(tok); ok {
			res.SalaryMin, res.SalaryMax = &lo, &hi
			continue
		}
		rest = append(rest, strings.ReplaceAll(tok, rangeMark, "-"))
	}

	if len(rest) >= 1 {
		res.CompanyName = rest[0]
	}
	if len(rest) >= 2 {
		res.PositionTitle = rest[1]
	}
	if len(rest) >= 3 {
		loc := strings.Join(rest[2:], " ")
		res.Location = &loc
	}
	return res
}

// parseSalary 支持 $150k、25L、10-15 lpa、1.2cr，换算后不超过 100 的数字不算薪资
func parseSalary(tok string) (int, int, bool) {
	m := salaryToken.FindStringSubmatch(tok)
	if m == nil {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, 0, false
	}
	unit := m[2]
	if unit == "" {
		unit = m[4]
	}
	mul := multiplier(unit)
	lo *= mul
	if lo <= 100 {
		return 0, 0, false
	}

	hi := math.Round(lo * 1.3)
	if m[3] != "" {
		if v, err := strconv.ParseFloat(m[3], 64); err == nil {
			hi = v * mul
		}
	}
	return int(math.Round(lo)), int(math.Round(hi)), true
}

func multiplier(unit string) float64 {
	switch strings.ToLower(unit) {
	case "l", "lac", "lpa":
		return 1e5
	case "k":
		return 1e3
	case "cr":
		return 1e7
	default:
		return 1
	}
}
