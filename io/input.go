package io

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cast"

	"github.com/phil-mansfield/lagrange/math/interpolate"
)

// InvalidInputError reports a value read at a prompt which could not be used.
type InvalidInputError struct {
	// Field names the prompted quantity, e.g. "x[2]".
	Field string
	// Text is the token which was read. Empty at end of input.
	Text string
	Reason string
}

func (err *InvalidInputError) Error() string {
	if err.Text == "" {
		return fmt.Sprintf("Invalid input for %s: %s.", err.Field, err.Reason)
	}
	return fmt.Sprintf(
		"Invalid input '%s' for %s: %s.", err.Text, err.Field, err.Reason,
	)
}

// Prompter writes prompts to an output stream and reads whitespace-separated
// values from an input stream.
type Prompter struct {
	in *bufio.Scanner
	out io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	in := bufio.NewScanner(r)
	in.Split(bufio.ScanWords)
	return &Prompter{ in: in, out: w }
}

func (p *Prompter) next(prompt, field string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt); err != nil {
		return "", err
	}

	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("Could not read %s: %w", field, err)
		}
		return "", &InvalidInputError{
			Field: field, Reason: "unexpected end of input",
		}
	}
	return p.in.Text(), nil
}

// Int prompts for an integer.
func (p *Prompter) Int(prompt, field string) (int, error) {
	tok, err := p.next(prompt, field)
	if err != nil { return 0, err }

	dec, ok := decimal(tok)
	if !ok {
		return 0, &InvalidInputError{
			Field: field, Text: tok, Reason: "not an integer",
		}
	}

	n, err := cast.ToIntE(dec)
	if err != nil {
		return 0, &InvalidInputError{
			Field: field, Text: tok, Reason: "not an integer",
		}
	}
	return n, nil
}

// decimal strips leading zeros from a base-10 integer so that cast does not
// read it as octal. ok is false if tok is not a base-10 integer.
func decimal(tok string) (dec string, ok bool) {
	sign, digits := "", tok
	if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		sign, digits = digits[:1], digits[1:]
	}
	if digits == "" { return "", false }
	for _, c := range digits {
		if c < '0' || c > '9' { return "", false }
	}

	digits = strings.TrimLeft(digits, "0")
	if digits == "" { return "0", true }
	return sign + digits, true
}

// Float prompts for a finite real number.
func (p *Prompter) Float(prompt, field string) (float64, error) {
	tok, err := p.next(prompt, field)
	if err != nil { return 0, err }

	x, err := cast.ToFloat64E(tok)
	if err != nil {
		return 0, &InvalidInputError{
			Field: field, Text: tok, Reason: "not a number",
		}
	} else if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &InvalidInputError{
			Field: field, Text: tok, Reason: "not a finite number",
		}
	}
	return x, nil
}

// Problem is everything needed for a single interpolation.
type Problem struct {
	Points []interpolate.Point
	Query float64
}

// ReadProblem prompts for the number of points, then each x and f(x) pair,
// then the value of x to estimate f(x) at. At most maxPoints points are
// accepted.
func ReadProblem(p *Prompter, maxPoints int) (*Problem, error) {
	n, err := p.Int("Number of points: ", "number of points")
	if err != nil {
		return nil, err
	} else if n <= 0 || n > maxPoints {
		return nil, &InvalidInputError{
			Field: "number of points", Text: fmt.Sprint(n),
			Reason: fmt.Sprintf("must be in range [1, %d]", maxPoints),
		}
	}

	prob := &Problem{ Points: make([]interpolate.Point, n) }
	for i := range prob.Points {
		xField, yField := fmt.Sprintf("x[%d]", i), fmt.Sprintf("f(x)[%d]", i)

		x, err := p.Float(xField + ": ", xField)
		if err != nil { return nil, err }
		y, err := p.Float(yField + ": ", yField)
		if err != nil { return nil, err }

		prob.Points[i] = interpolate.Point{ X: x, Y: y }
	}

	prob.Query, err = p.Float("Value of x to estimate f(x): ", "x to estimate")
	if err != nil { return nil, err }

	return prob, nil
}
