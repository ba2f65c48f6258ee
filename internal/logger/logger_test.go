package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)
}

func TestLogStampsAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "viewer.txt")
	l := New(path)
	l.now = fixedClock

	l.Log("texture loaded")
	l.Logf("mode %d selected", 2)

	want := []string{
		"[2024-03-09 14:05:06] texture loaded",
		"[2024-03-09 14:05:06] mode 2 selected",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := New("")
	l.Log("a")
	lines := l.Lines()
	lines[0] = "changed"
	assert.True(t, strings.HasSuffix(l.Lines()[0], "] a"))
}

func TestHistoryIsBounded(t *testing.T) {
	l := New("")
	for i := 0; i < maxLines+25; i++ {
		l.Logf("line %d", i)
	}
	lines := l.Lines()
	require.Len(t, lines, maxLines)
	assert.True(t, strings.HasSuffix(lines[0], "] line 25"))
	assert.True(t, strings.HasSuffix(lines[maxLines-1], fmt.Sprintf("] line %d", maxLines+24)))
}

func TestConcurrentLog(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "log.txt"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				l.Logf("worker %d line %d", i, j)
			}
		}(i)
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 160)
}
