package diff

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// --- Generators ---

func genLineText() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9 _.]{0,30}`)
}

type genHunk struct {
	oldStart int
	newStart int
	removed  []string
	added    []string
}

func genSingleHunk() *rapid.Generator[genHunk] {
	return rapid.Custom(func(t *rapid.T) genHunk {
		return genHunk{
			oldStart: rapid.IntRange(1, 500).Draw(t, "oldStart"),
			newStart: rapid.IntRange(1, 500).Draw(t, "newStart"),
			removed:  rapid.SliceOfN(genLineText(), 0, 10).Draw(t, "removed"),
			added:    rapid.SliceOfN(genLineText(), 0, 10).Draw(t, "added"),
		}
	})
}

func (h genHunk) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.oldStart, len(h.removed), h.newStart, len(h.added))
	for _, l := range h.removed {
		b.WriteString("-" + l + "\n")
	}
	for _, l := range h.added {
		b.WriteString("+" + l + "\n")
	}
	return b.String()
}

// --- Property Tests ---

func TestRapidParse_SingleHunkLineAccounting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := genSingleHunk().Draw(t, "hunk")

		frag := Parse(h.render())

		if len(frag.AddedLines) != len(h.added) {
			t.Fatalf("added = %d, want %d", len(frag.AddedLines), len(h.added))
		}
		if len(frag.RemovedLines) != len(h.removed) {
			t.Fatalf("removed = %d, want %d", len(frag.RemovedLines), len(h.removed))
		}

		// Removed lines come before any addition in the rendered hunk, so
		// they all carry the position the cursor had before the hunk body.
		for i, n := range frag.LineNumbers.Removed {
			if n != h.newStart {
				t.Fatalf("removed[%d] numbered %d, want %d", i, n, h.newStart)
			}
		}
		// Added lines are numbered consecutively from newStart.
		for i, n := range frag.LineNumbers.Added {
			if n != h.newStart+i {
				t.Fatalf("added[%d] numbered %d, want %d", i, n, h.newStart+i)
			}
		}
	})
}

func TestRapidParse_TotalOverArbitraryText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOfN(rapid.StringMatching(`[-+@ a-z]{0,20}`), 0, 30).Draw(t, "lines")

		frag := Parse(strings.Join(lines, "\n"))

		if len(frag.AddedLines) != len(frag.LineNumbers.Added) {
			t.Fatalf("added lines and numbers misaligned")
		}
		if len(frag.RemovedLines) != len(frag.LineNumbers.Removed) {
			t.Fatalf("removed lines and numbers misaligned")
		}
	})
}
