package builder

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineSize bounds a single output line. Rendered diagnostics can be large.
// Longer lines are skipped while the stream keeps draining.
const maxLineSize = 8 * 1024 * 1024

// supervise drains stdout and stderr of proc concurrently and hands every line to feed.
// Lines from both streams are interleaved in arrival order. When feed fails the process
// is killed and reaped and the feed error is returned. Otherwise the process is waited
// for and its exit error returned as waitErr.
func supervise(
	ctx context.Context,
	proc ports.Process,
	feed func(string) error,
	logger ports.Logger,
) (waitErr, err error) {
	lines := make(chan string)
	done := make(chan struct{})

	var wg sync.WaitGroup
	for _, r := range []io.Reader{proc.Stdout(), proc.Stderr()} {
		wg.Add(1)
		go func(r io.Reader) {
			defer wg.Done()
			scanLines(r, lines, done, logger)
		}(r)
	}
	go func() {
		wg.Wait()
		close(lines)
	}()

	var feedErr error
	for line := range lines {
		if feedErr = feed(line); feedErr != nil {
			break
		}
	}
	close(done)

	if feedErr != nil {
		_ = proc.Kill()
		_ = proc.Wait()
		return nil, feedErr
	}

	if werr := proc.Wait(); werr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return zerr.Wrap(werr, "toolchain exited with an error"), nil
	}
	return nil, ctx.Err()
}

func scanLines(r io.Reader, out chan<- string, done <-chan struct{}, logger ports.Logger) {
	if r == nil {
		return
	}
	br := bufio.NewReaderSize(r, 64*1024)
	var line []byte
	size := 0
	for {
		chunk, err := br.ReadSlice('\n')
		size += len(chunk)
		if size > maxLineSize {
			line = line[:0]
		} else {
			line = append(line, chunk...)
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		switch {
		case size > maxLineSize:
			if logger != nil {
				logger.Debug(fmt.Sprintf("dropped toolchain output line of %d bytes", size))
			}
		case len(line) > 0:
			select {
			case out <- string(trimEOL(line)):
			case <-done:
				return
			}
		}
		line = line[:0]
		size = 0

		if err != nil {
			return
		}
	}
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}
