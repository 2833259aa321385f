//go:build unix

package fetcher_test

import (
	"io"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raysh454/fetchurl/internal/fetcher"
	"github.com/raysh454/fetchurl/internal/webclient"
)

// TestRun_OutFileFIFO writes to a named pipe with a reader attached, the way
// `fetch URL -o /dev/stdout | xxd` does. The write must not wait on anything
// but the reader.
func TestRun_OutFileFIFO(t *testing.T) {
	t.Parallel()
	ts := newDemo(t)

	for _, diagnostics := range []bool{false, true} {
		fifo := filepath.Join(t.TempDir(), "pipe")
		require.NoError(t, syscall.Mkfifo(fifo, 0o600))

		received := make(chan []byte, 1)
		go func() {
			f, err := os.Open(fifo)
			if err != nil {
				received <- nil
				return
			}
			defer f.Close()
			b, _ := io.ReadAll(f)
			received <- b
		}()

		h := newHarness(t, webclient.Config{}, fetcher.WithDiagnostics(diagnostics))
		done := make(chan int, 1)
		go func() { done <- h.run(ts.URL+"/file.bin", fifo) }()

		select {
		case code := <-done:
			assert.Equal(t, fetcher.ExitOK, code, "diagnostics=%v", diagnostics)
		case <-time.After(10 * time.Second):
			t.Fatalf("writing to a FIFO did not finish (diagnostics=%v)", diagnostics)
		}
		select {
		case got := <-received:
			assert.Equal(t, []byte{0x00, 0x01, 0x02}, got, "diagnostics=%v", diagnostics)
		case <-time.After(10 * time.Second):
			t.Fatalf("reader did not see EOF (diagnostics=%v)", diagnostics)
		}
	}
}
