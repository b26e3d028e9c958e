package game

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func testTermSize() (int, int, error) {
	return 80, 40, nil
}

// brokenPipe fails every write, like a terminal whose connection dropped.
type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) {
	return 0, errors.New("write: broken pipe")
}

func TestRunReturnsWhenInputCloses(t *testing.T) {
	done := make(chan error, 1)
	go func() {
		r := bufio.NewReader(strings.NewReader(""))
		done <- Run(r, io.Discard, Options{TermSize: testTermSize, Seed: 1})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v, want nil on input EOF", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept looping after the input stream closed")
	}
}

func TestRunReturnsWriteError(t *testing.T) {
	// A pipe with no writes keeps the input open so the loop reaches the
	// draw phase.
	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() {
		done <- Run(bufio.NewReader(pr), brokenPipe{}, Options{TermSize: testTermSize, Seed: 1})
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Fatal("Run returned nil, want the write error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run kept looping after terminal writes started failing")
	}
}
