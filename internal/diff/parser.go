// Package diff parses zero-context unified diff fragments into
// line-addressable change records.
package diff

import (
	"regexp"
	"strconv"
	"strings"
)

var hunkHeaderRe = regexp.MustCompile(`@@ -(\d+),?(\d+)? \+(\d+),?(\d+)? @@`)

// LineNumbers holds 1-based positions aligned with the added and removed
// line slices of a Fragment. Added positions are in the post-image; removed
// positions are the cursor position before the removal (pre-image), since
// removed lines do not exist in the post-image.
type LineNumbers struct {
	Added   []int `json:"added"`
	Removed []int `json:"removed"`
}

// Fragment is the parsed form of a single file's unified diff.
type Fragment struct {
	AddedLines   []string    `json:"addedLines"`
	RemovedLines []string    `json:"removedLines"`
	LineNumbers  LineNumbers `json:"lineNumbers"`
}

// Empty reports whether the fragment records no changes.
func (f Fragment) Empty() bool {
	return len(f.AddedLines) == 0 && len(f.RemovedLines) == 0
}

// Parse extracts added and removed lines from unified diff text for one
// file. It is total: any input yields a Fragment, never an error. A hunk
// header that does not match the expected shape leaves the line cursor
// unchanged, which may desynchronize numbering for that hunk only.
func Parse(text string) Fragment {
	frag := Fragment{
		AddedLines:   []string{},
		RemovedLines: []string{},
		LineNumbers:  LineNumbers{Added: []int{}, Removed: []int{}},
	}
	if text == "" {
		return frag
	}

	currentLine := 0
	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "@@"):
			if m := hunkHeaderRe.FindStringSubmatch(line); m != nil {
				newStart, _ := strconv.Atoi(m[3])
				currentLine = newStart
			}
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++"):
			frag.AddedLines = append(frag.AddedLines, line[1:])
			frag.LineNumbers.Added = append(frag.LineNumbers.Added, currentLine)
			currentLine++
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---"):
			frag.RemovedLines = append(frag.RemovedLines, line[1:])
			frag.LineNumbers.Removed = append(frag.LineNumbers.Removed, currentLine)
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
			// File header lines carry no position information.
		default:
			currentLine++
		}
	}

	return frag
}
