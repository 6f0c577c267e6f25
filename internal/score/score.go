// Package score derives accuracy and renders session results.
package score

import (
	"fmt"
	"io"

	"github.com/verte-zerg/wordrush/internal/model"
)

// Accuracy returns the floored percentage of correct words. It is 0 whenever
// correct is 0, including when nothing was attempted.
func Accuracy(correct, incorrect int) int {
	if correct <= 0 {
		return 0
	}
	return correct * 100 / (correct + incorrect)
}

// RenderSummary prints a result table for a finished session.
func RenderSummary(w io.Writer, res model.Result) error {
	if res.Attempted == 0 {
		_, err := fmt.Fprintln(w, "No words attempted.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Result (%ds, %s)\n", res.Duration, res.Lang); err != nil {
		return err
	}
	headers := []string{"Correct", "Incorrect", "Accuracy"}
	rows := [][]string{{
		fmt.Sprintf("%d", res.Correct),
		fmt.Sprintf("%d", res.Incorrect),
		fmt.Sprintf("%d%%", res.Accuracy),
	}}
	rightAlign := map[int]bool{0: true, 1: true, 2: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
