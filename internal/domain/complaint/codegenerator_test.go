package complaint

import (
	"context"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"complaintdesk/internal/shared/biztime"
)

var codeShape = regexp.MustCompile(`^COMP-\d{4}-\d{4}$`)

func TestYearlyCodeGenerator_ContinuesAfterObservedCodes(t *testing.T) {
	g := NewYearlyCodeGenerator("")
	for _, code := range []string{"COMP-2024-0001", "COMP-2024-0005", "COMP-2024-0003"} {
		g.Observe(code)
	}

	code, err := g.Generate(context.Background(), time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "COMP-2024-0006", code)
}

func TestYearlyCodeGenerator_CounterPerYear(t *testing.T) {
	g := NewYearlyCodeGenerator("COMP")
	g.Observe("COMP-2024-0005")
	ctx := context.Background()

	first, err := g.Generate(ctx, time.Date(2026, time.May, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := g.Generate(ctx, time.Date(2026, time.May, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	old, err := g.Generate(ctx, time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, "COMP-2026-0001", first)
	assert.Equal(t, "COMP-2026-0002", second)
	assert.Equal(t, "COMP-2024-0006", old)
}

func TestYearlyCodeGenerator_YearFollowsBusinessTimezone(t *testing.T) {
	require.NoError(t, biztime.Init("Asia/Kolkata"))
	g := NewYearlyCodeGenerator("COMP")

	code, err := g.Generate(context.Background(), time.Date(2025, time.December, 31, 20, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "COMP-2026-0001", code)
}

func TestYearlyCodeGenerator_IgnoresForeignCodes(t *testing.T) {
	g := NewYearlyCodeGenerator("COMP")
	g.Observe("T-20240101-0042")
	g.Observe("CASE-2024-0042")
	g.Observe("comp-1")

	code, err := g.Generate(context.Background(), time.Date(2024, time.July, 1, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "COMP-2024-0001", code)
}

func TestYearlyCodeGenerator_UniqueUnderConcurrency(t *testing.T) {
	g := NewYearlyCodeGenerator("COMP")
	at := time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC)

	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = make(map[string]struct{})
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := g.Generate(context.Background(), at)
			assert.NoError(t, err)
			mu.Lock()
			codes[code] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, codes, 200)
	for code := range codes {
		assert.Regexp(t, codeShape, code)
	}
}

func TestYearlyCodeGenerator_Exhausted(t *testing.T) {
	g := NewYearlyCodeGenerator("COMP")
	g.Observe("COMP-2026-9999")

	_, err := g.Generate(context.Background(), time.Date(2026, time.July, 1, 12, 0, 0, 0, time.UTC))
	assert.ErrorContains(t, err, "exhausted")
}

func TestYearlyCodeGenerator_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewYearlyCodeGenerator("COMP").Generate(ctx, time.Now())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseCode(t *testing.T) {
	prefix, year, seq, ok := ParseCode("COMP-2024-0006")
	require.True(t, ok)
	assert.Equal(t, "COMP", prefix)
	assert.Equal(t, 2024, year)
	assert.Equal(t, 6, seq)

	assert.True(t, IsCode("COMP-2026-12345"))
	assert.False(t, IsCode("comp-0192f6d2"))
	assert.False(t, IsCode("COMP-24-0001"))
}
