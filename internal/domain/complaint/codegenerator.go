package complaint

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"sync"
	"time"

	"complaintdesk/internal/shared/biztime"
)

const DefaultCodePrefix = "COMP"

var codePattern = regexp.MustCompile(`^([A-Z]+)-(\d{4})-(\d{4,})$`)

// CodeGenerator issues human-facing complaint codes.
type CodeGenerator interface {
	Generate(ctx context.Context, at time.Time) (string, error)
}

// YearlyCodeGenerator issues <prefix>-<yyyy>-<nnnn> codes with one counter
// per business-calendar year. Observe seeds a counter from codes that
// already exist so generated codes never collide with them.
type YearlyCodeGenerator struct {
	prefix   string
	mu       sync.Mutex
	counters map[int]int
}

func NewYearlyCodeGenerator(prefix string) *YearlyCodeGenerator {
	if prefix == "" {
		prefix = DefaultCodePrefix
	}
	return &YearlyCodeGenerator{
		prefix:   prefix,
		counters: make(map[int]int),
	}
}

func (g *YearlyCodeGenerator) Generate(ctx context.Context, at time.Time) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	year := biztime.YearOf(at)

	g.mu.Lock()
	defer g.mu.Unlock()

	next := g.counters[year] + 1
	if next > 9999 {
		return "", fmt.Errorf("complaint code sequence exhausted for %d", year)
	}
	g.counters[year] = next

	return FormatCode(g.prefix, year, next), nil
}

// Observe raises the counter for the code's year to at least its sequence.
// Codes with another prefix or an unparsable shape are ignored.
func (g *YearlyCodeGenerator) Observe(code string) {
	prefix, year, seq, ok := ParseCode(code)
	if !ok || prefix != g.prefix {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if seq > g.counters[year] {
		g.counters[year] = seq
	}
}

func FormatCode(prefix string, year, seq int) string {
	return fmt.Sprintf("%s-%04d-%04d", prefix, year, seq)
}

// ParseCode splits a code such as COMP-2024-0006.
func ParseCode(code string) (prefix string, year, seq int, ok bool) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", 0, 0, false
	}
	year, _ = strconv.Atoi(m[2])
	seq, err := strconv.Atoi(m[3])
	if err != nil {
		return "", 0, 0, false
	}
	return m[1], year, seq, true
}

// IsCode reports whether s looks like a complaint code rather than an id.
func IsCode(s string) bool {
	_, _, _, ok := ParseCode(s)
	return ok
}
