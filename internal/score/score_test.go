package score

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/wordrush/internal/model"
)

func TestAccuracyZeroCorrect(t *testing.T) {
	for _, incorrect := range []int{0, 1, 50} {
		if got := Accuracy(0, incorrect); got != 0 {
			t.Fatalf("Accuracy(0, %d) = %d, want 0", incorrect, got)
		}
	}
}

func TestAccuracyFloors(t *testing.T) {
	cases := []struct {
		correct, incorrect, want int
	}{
		{1, 0, 100},
		{1, 1, 50},
		{2, 1, 66},
		{1, 2, 33},
		{199, 1, 99},
	}
	for _, tc := range cases {
		if got := Accuracy(tc.correct, tc.incorrect); got != tc.want {
			t.Fatalf("Accuracy(%d, %d) = %d, want %d", tc.correct, tc.incorrect, got, tc.want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	res := model.Result{Lang: "en", Duration: 60, Attempted: 3, Correct: 2, Incorrect: 1, Accuracy: 66}
	if err := RenderSummary(&buf, res); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if lines[0] != "Result (60s, en)" {
		t.Fatalf("unexpected title: %q", lines[0])
	}
	if lines[1] != "Correct Incorrect Accuracy" {
		t.Fatalf("unexpected header: %q", lines[1])
	}
	if lines[2] != "      2         1      66%" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestRenderSummaryNothingAttempted(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, model.Result{}); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	if !strings.Contains(buf.String(), "No words attempted.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable([]string{"Word", "Count"}, [][]string{{"cat", "12"}, {"elephant", "3"}}, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Word     Count" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "cat         12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "elephant     3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}
