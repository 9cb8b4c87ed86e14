package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/seekerror/logw"
)

// ReadLines scans src line-by-line into a chan, closing it at EOF. Async:
// the scan runs in its own goroutine so the caller can select on the
// returned chan alongside other engine events.
func ReadLines(ctx context.Context, src io.Reader) <-chan string {
	lines := make(chan string, 1)
	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(src)
		for scanner.Scan() {
			logw.Debugf(ctx, "<< %v", scanner.Text())
			lines <- scanner.Text()
		}
	}()
	return lines
}

// WriteLines drains lines into dst, one per line, until the chan closes.
func WriteLines(ctx context.Context, dst io.Writer, lines <-chan string) {
	for line := range lines {
		logw.Debugf(ctx, ">> %v", line)
		_, _ = fmt.Fprintln(dst, line)
	}
}
