package io

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/phil-mansfield/lagrange/math/interpolate"
)

const tableTitle = " CALCULATION TABLE "

var tableHeader = []string{
	"k", "x[k]", "f(x[k])", "Lk(x)", "f(x[k])*Lk(x)", "Partial sum",
}

// WriteTable writes the trace of an interpolation as a bordered table. Every
// real value is written in fixed-point notation with prec digits after the
// decimal point.
func WriteTable(w io.Writer, res *interpolate.Result, prec int) error {
	rows := make([][]string, len(res.Trace))
	for i, tr := range res.Trace {
		rows[i] = []string{
			fmt.Sprintf("%d", tr.K),
			fmt.Sprintf("%.*f", prec, tr.X),
			fmt.Sprintf("%.*f", prec, tr.Y),
			fmt.Sprintf("%.*f", prec, tr.Basis),
			fmt.Sprintf("%.*f", prec, tr.Term),
			fmt.Sprintf("%.*f", prec, tr.PartialSum),
		}
	}

	widths := make([]int, len(tableHeader))
	for j, h := range tableHeader { widths[j] = utf8.RuneCountInString(h) }
	for _, row := range rows {
		for j, cell := range row {
			if n := utf8.RuneCountInString(cell); n > widths[j] { widths[j] = n }
		}
	}

	sep := separator(widths)
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, banner(utf8.RuneCountInString(sep)))
	writeRow(bw, tableHeader, widths)
	fmt.Fprintln(bw, sep)
	for _, row := range rows { writeRow(bw, row, widths) }
	fmt.Fprintln(bw, sep)
	fmt.Fprintln(bw)

	return bw.Flush()
}

// WriteEstimate writes the final interpolated value.
func WriteEstimate(w io.Writer, q, value float64, prec int) error {
	_, err := fmt.Fprintf(w, ">>> f(%.*f) ≈ %.*f\n", prec, q, prec, value)
	return err
}

func separator(widths []int) string {
	parts := make([]string, len(widths))
	for j, width := range widths { parts[j] = strings.Repeat("-", width+2) }
	return "+" + strings.Join(parts, "+") + "+"
}

func banner(width int) string {
	inner := width - 2
	pad := inner - len(tableTitle)
	if pad < 0 { return "+" + tableTitle + "+" }
	left := pad / 2
	return "+" + strings.Repeat("-", left) + tableTitle +
		strings.Repeat("-", pad-left) + "+"
}

func writeRow(w io.Writer, cells []string, widths []int) {
	fmt.Fprint(w, "|")
	for j, cell := range cells {
		fmt.Fprintf(w, " %*s |", widths[j], cell)
	}
	fmt.Fprintln(w)
}
