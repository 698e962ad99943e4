package voice

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultProcess is used when the utterance names only a bread.
	DefaultProcess = "発酵"
	// UnknownBread is used when no bread name can be recovered.
	UnknownBread = "不明"
)

var startWords = `スタート|開始|セット|はじめ|はじめて|始め|GO|ゴー`

var createPattern = regexp.MustCompile(`^(.+?)(\d+)分(?:` + startWords + `)?$`)

// durationRemnant matches a trailing "<n>分<startWord>" left in free text.
var durationRemnant = regexp.MustCompile(`\s*\d+\s*分.*$`)

// The prefixed forms come first so that 第 is folded away with its digit.
var ordinals = strings.NewReplacer(
	"第1次", "一次",
	"第2次", "二次",
	"第3次", "三次",
	"1次", "一次",
	"2次", "二次",
	"3次", "三次",
)

var processKeywords = []string{
	"一次発酵",
	"二次発酵",
	"三次発酵",
	"最終発酵",
	"ベンチタイム",
	"発酵",
	"こね",
	"ねかし",
	"成形",
	"焼成",
	"予熱",
	"休ませ",
	"オーブン",
	"冷却",
	"寝かせ",
	"醗酵",
}

// Parsed is the result of parsing a single-shot creation command.
type Parsed struct {
	BreadName   string
	ProcessName string
	Minutes     int
}

// Parser extracts timer fields from free-form utterances.
type Parser struct {
	keywords []string
}

// NewParser returns a parser that scans process keywords longest first.
// Extra keywords are added to the built-in list.
func NewParser(extra ...string) *Parser {
	keywords := slices.Clone(processKeywords)

	for _, kw := range extra {
		if kw != "" && !slices.Contains(keywords, kw) {
			keywords = append(keywords, kw)
		}
	}

	slices.SortStableFunc(keywords, func(a, b string) int {
		return utf8.RuneCountInString(b) - utf8.RuneCountInString(a)
	})

	return &Parser{keywords: keywords}
}

// Match applies the creation grammar to u. It returns the free text before
// the duration, recovered with its original spacing when possible, and the
// number of minutes. A number too large to represent yields zero minutes so
// that timer validation rejects it.
func (p *Parser) Match(u Utterance) (free string, minutes int, ok bool) {
	m := createPattern.FindStringSubmatch(u.Compact)
	if m == nil {
		return "", 0, false
	}

	minutes, err := strconv.Atoi(m[2])
	if err != nil {
		minutes = 0
	}

	free = originalText(u.Raw, m[2])
	if free == "" {
		free = m[1]
	}

	return free, minutes, true
}

// originalText strips the trailing duration and start word from the spaced
// utterance.
func originalText(raw, digits string) string {
	re, err := regexp.Compile(
		`(?i)\s*` + regexp.QuoteMeta(digits) + `\s*分\s*(?:` + startWords + `)?\s*$`,
	)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(re.ReplaceAllString(raw, ""))
}

// Split separates free text into a bread name and a process name.
func (p *Parser) Split(free string) (breadName, processName string) {
	free = ordinals.Replace(strings.TrimSpace(free))

	breadName, processName = p.split(free)

	breadName = strings.TrimSuffix(breadName, "の")
	breadName = strings.TrimSpace(breadName)

	if breadName == "" {
		breadName = UnknownBread
	}

	return breadName, processName
}

func (p *Parser) split(free string) (string, string) {
	for _, kw := range p.keywords {
		if idx := strings.Index(free, kw); idx >= 0 {
			return strings.TrimSpace(free[:idx]), kw
		}
	}

	parts := strings.Fields(durationRemnant.ReplaceAllString(free, ""))

	switch len(parts) {
	case 0:
		return UnknownBread, DefaultProcess
	case 1:
		return parts[0], DefaultProcess
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

// Parse applies the creation grammar and splits the result.
func (p *Parser) Parse(u Utterance) (Parsed, bool) {
	free, minutes, ok := p.Match(u)
	if !ok {
		return Parsed{}, false
	}

	bread, process := p.Split(free)

	return Parsed{
		BreadName:   bread,
		ProcessName: process,
		Minutes:     minutes,
	}, true
}
