package io

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/lagrange/math/interpolate"
)

func TestReadProblem(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("3\n0 1\n1\t2\n2 5\n\n3.5\n"), out)

	prob, err := ReadProblem(p, 10)
	require.NoError(t, err)

	assert.Equal(t, []interpolate.Point{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 5}}, prob.Points)
	assert.Equal(t, 3.5, prob.Query)
	assert.Equal(t,
		"Number of points: x[0]: f(x)[0]: x[1]: f(x)[1]: x[2]: f(x)[2]: " +
			"Value of x to estimate f(x): ",
		out.String(),
	)
}

func TestReadProblemInvalid(t *testing.T) {
	tests := []struct {
		input, field, text string
	}{
		{"0", "number of points", "0"},
		{"-2", "number of points", "-2"},
		{"4", "number of points", "4"},
		{"two", "number of points", "two"},
		{"2.5", "number of points", "2.5"},
		{"2 0 1 zz 3 1", "x[1]", "zz"},
		{"1 0 abc 1", "f(x)[0]", "abc"},
		{"1 inf 1 0", "x[0]", "inf"},
		{"1 0 1 NaN", "x to estimate", "NaN"},
		{"1 0 1", "x to estimate", ""},
		{"", "number of points", ""},
	}

	for _, test := range tests {
		p := NewPrompter(strings.NewReader(test.input), &bytes.Buffer{})
		_, err := ReadProblem(p, 3)

		var inv *InvalidInputError
		require.True(t, errors.As(err, &inv), "input %q: %v", test.input, err)
		assert.Equal(t, test.field, inv.Field, "input %q", test.input)
		assert.Equal(t, test.text, inv.Text, "input %q", test.input)
	}
}

func TestPrompterIntDecimal(t *testing.T) {
	tests := []struct {
		input string
		n int
	}{
		{"010", 10}, {"08", 8}, {"0009", 9}, {"0", 0}, {"000", 0},
		{"-007", -7}, {"+12", 12}, {"42", 42},
	}

	for _, test := range tests {
		p := NewPrompter(strings.NewReader(test.input), &bytes.Buffer{})
		n, err := p.Int("n: ", "n")
		require.NoError(t, err, "input %q", test.input)
		assert.Equal(t, test.n, n, "input %q", test.input)
	}

	for _, input := range []string{"0x10", "1e2", "-", "+", "1_000", "0b1"} {
		p := NewPrompter(strings.NewReader(input), &bytes.Buffer{})
		_, err := p.Int("n: ", "n")

		var inv *InvalidInputError
		require.True(t, errors.As(err, &inv), "input %q", input)
		assert.Equal(t, input, inv.Text)
	}
}

func TestReadProblemZeroPaddedCount(t *testing.T) {
	p := NewPrompter(strings.NewReader("03 0 1 1 2 2 5 3"), &bytes.Buffer{})
	prob, err := ReadProblem(p, 10)
	require.NoError(t, err)

	assert.Len(t, prob.Points, 3)
	assert.Equal(t, 3.0, prob.Query)

	input := "010"
	for i := 0; i < 10; i++ { input += fmt.Sprintf(" %d %d", i, i*i) }
	input += " 2.5"

	p = NewPrompter(strings.NewReader(input), &bytes.Buffer{})
	prob, err = ReadProblem(p, 100)
	require.NoError(t, err)
	require.Len(t, prob.Points, 10)
	assert.Equal(t, interpolate.Point{X: 9, Y: 81}, prob.Points[9])
	assert.Equal(t, 2.5, prob.Query)
}

func TestInvalidInputErrorMessage(t *testing.T) {
	err := &InvalidInputError{ Field: "x[1]", Text: "zz", Reason: "not a number" }
	assert.Equal(t, "Invalid input 'zz' for x[1]: not a number.", err.Error())

	err = &InvalidInputError{ Field: "x[1]", Reason: "unexpected end of input" }
	assert.Equal(t, "Invalid input for x[1]: unexpected end of input.", err.Error())
}

func TestPrompterReadError(t *testing.T) {
	boom := errors.New("boom")
	p := NewPrompter(iotest.ErrReader(boom), &bytes.Buffer{})

	_, err := p.Float("x: ", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))

	var inv *InvalidInputError
	assert.False(t, errors.As(err, &inv))
}
