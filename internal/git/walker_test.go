package git

import (
	"context"
	"fmt"
	"strings"
	"testing"
)

func rangeRunner(hashCount int) *MockRunner {
	hashes := make([]string, hashCount)
	for n := range hashes {
		hashes[n] = fmt.Sprintf("%040d", n)
	}
	return &MockRunner{
		Responses: []MockResponse{
			{ArgsPrefix: []string{"log", "--format=format:%H", "--max-count=5"}, Output: strings.Join(hashes, "\n")},
			{ArgsPrefix: []string{"log", "--format=format:%H", "--max-count=10"}, Output: strings.Join(hashes, "\n")},
			{
				ArgsPrefix: []string{"show", "--format=format:%H%n%an%n%ad%n%s%n%b"},
				Output:     testHash + "\nJane Doe\n2025-03-14 09:26:53 +0100\nTidy up\n",
			},
			{ArgsPrefix: []string{"show", "--name-status"}, Output: ""},
		},
	}
}

func TestWalker_Range_CapsAtMaxCount(t *testing.T) {
	// Scripted output deliberately exceeds the cap.
	runner := rangeRunner(20)
	w := NewWalker(newTestInspector(t, runner))

	hashes, err := w.Range(context.Background(), RangeOptions{MaxCount: 5})
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(hashes) > 5 {
		t.Fatalf("got %d hashes, cap is 5", len(hashes))
	}
}

func TestWalker_Range_DefaultMaxCount(t *testing.T) {
	runner := rangeRunner(3)
	w := NewWalker(newTestInspector(t, runner))

	if _, err := w.Range(context.Background(), RangeOptions{}); err != nil {
		t.Fatalf("Range: %v", err)
	}

	calls := runner.CallsMatching("log", "--format=format:%H", "--max-count=10")
	if len(calls) != 1 {
		t.Fatalf("expected one log call with the default cap, got %v", runner.Calls)
	}
}

func TestWalker_Range_BoundSpecs(t *testing.T) {
	tests := []struct {
		name     string
		opts     RangeOptions
		wantSpec string
	}{
		{"both bounds", RangeOptions{Start: "aaa", End: "bbb"}, "aaa..bbb"},
		{"start only", RangeOptions{Start: "aaa"}, "aaa..HEAD"},
		{"end only", RangeOptions{End: "bbb"}, "HEAD..bbb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := rangeRunner(1)
			w := NewWalker(newTestInspector(t, runner))

			if _, err := w.Range(context.Background(), tt.opts); err != nil {
				t.Fatalf("Range: %v", err)
			}

			calls := runner.CallsMatching("log")
			if len(calls) != 1 {
				t.Fatalf("expected one log call, got %v", runner.Calls)
			}
			args := calls[0]
			if args[len(args)-1] != tt.wantSpec {
				t.Fatalf("range spec = %q, want %q", args[len(args)-1], tt.wantSpec)
			}
		})
	}
}

func TestWalker_Range_EmptyHistory(t *testing.T) {
	runner := &MockRunner{
		Responses: []MockResponse{
			{ArgsPrefix: []string{"log"}, Err: &ExitError{ExitCode: 128, Stderr: "fatal: bad default revision"}},
		},
	}
	w := NewWalker(newTestInspector(t, runner))

	hashes, err := w.Range(context.Background(), RangeOptions{})
	if err != nil {
		t.Fatalf("Range: %v", err)
	}
	if len(hashes) != 0 {
		t.Fatalf("hashes = %v, want empty", hashes)
	}
}

func TestWalker_Walk_SkipsBadCommit(t *testing.T) {
	// Two hashes in range; metadata resolution is scripted to fail, so the
	// walk produces no summaries but also no error.
	runner := &MockRunner{
		Responses: []MockResponse{
			{ArgsPrefix: []string{"log"}, Output: "aaa\nbbb"},
			{ArgsPrefix: []string{"show"}, Err: &ExitError{ExitCode: 128, Stderr: "fatal"}},
		},
	}
	w := NewWalker(newTestInspector(t, runner))

	summaries, err := w.Walk(context.Background(), RangeOptions{})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(summaries) != 0 {
		t.Fatalf("summaries = %d, want 0", len(summaries))
	}
}

func TestWalker_Walk_Summaries(t *testing.T) {
	runner := rangeRunner(2)
	w := NewWalker(newTestInspector(t, runner))

	summaries, err := w.Walk(context.Background(), RangeOptions{MaxCount: 10})
	if err != nil {
		t.Fatalf("Walk: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	for _, s := range summaries {
		if s.Author != "Jane Doe" || s.Message != "Tidy up" {
			t.Fatalf("summary = %#v", s)
		}
	}
}
