package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert"
)

func TestEventBytes(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	d, err := EventBytes("storage.seeded", ts, "path", "a.txt")
	assert.NoError(t, err)
	s := string(d)
	assert.True(t, strings.HasPrefix(s, "--- "), s)
	hdr := strings.SplitN(s, "\n", 2)[0]
	parts := strings.Split(hdr, " ")
	assert.Equal(t, 4, len(parts))
	assert.Equal(t, "1700000000123", parts[2])
	assert.Equal(t, "storage.seeded", parts[3])
	assert.True(t, strings.Contains(s, "a.txt"), s)
	assert.True(t, strings.HasSuffix(s, "\n"))

	d, err = EventBytes("empty", ts)
	assert.NoError(t, err)
	assert.Equal(t, "--- 0 1700000000123 empty\n", string(d))

	_, err = EventBytes("odd", ts, "path")
	assert.Error(t, err)
}

func readDailyFile(t *testing.T, dir string) string {
	t.Helper()
	name := time.Now().UTC().Format("2006-01-02") + ".txt"
	d, err := os.ReadFile(filepath.Join(dir, name))
	assert.NoError(t, err)
	return string(d)
}

func TestInitWritesFiles(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	Out = &out
	defer func() {
		Close()
		Out = os.Stdout
		Verbose = false
	}()

	Init(&Config{Dir: dir})
	Logf("hello %s\n", "world")
	Verbosef("not logged\n")
	Event("test.event", "records", 2)
	Errorf("bad thing")
	Close()

	assert.True(t, strings.Contains(out.String(), "hello world"))
	assert.False(t, strings.Contains(out.String(), "not logged"))
	s := readDailyFile(t, filepath.Join(dir, "log"))
	assert.True(t, strings.Contains(s, "hello world"), s)
	s = readDailyFile(t, filepath.Join(dir, "events"))
	assert.True(t, strings.Contains(s, "test.event"), s)
	s = readDailyFile(t, filepath.Join(dir, "errors"))
	assert.True(t, strings.Contains(s, "bad thing"), s)
}

func TestNilWriteDaily(t *testing.T) {
	var w *WriteDaily
	assert.NoError(t, w.WriteString("foo"))
	assert.NoError(t, w.Sync())
	assert.NoError(t, w.Close())

	Out = io.Discard
	defer func() { Out = os.Stdout }()
	// no Init(), must not panic
	Event("no.init", "k", "v")
	Logf("nothing on disk\n")
}
