package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const (
	ExampleLagrangeFile = `[Lagrange]

# Every parameter is optional. Values are read from standard input, so this
# file only controls how the result is displayed.

# Number of digits printed after the decimal point in the calculation table and
# the final estimate. Must be in the range [0, 17]. Default is 10.
# Precision = 10

# Largest number of points which will be accepted at the prompt. Default is
# 1000.
# MaxPoints = 1000

# If PlotFile is set, the sample points, the interpolating polynomial and the
# estimate are plotted and written to this file.
# PlotFile = lagrange.png

# PlotFormat can be set to one of:
# [ png | pyplot ]
# png renders the image directly. pyplot generates a matplotlib script and runs
# it, so python and matplotlib must be installed. Default is png.
# PlotFormat = png

# Number of points the polynomial is sampled at when plotting. Default is 200.
# PlotSamples = 200

# PlotTitle = Lagrange interpolation`
)

var plotFormats = []string{"png", "pyplot"}

type LagrangeConfig struct {
	// Optional
	Precision int
	MaxPoints int

	PlotFile string
	PlotFormat string
	PlotSamples int
	PlotTitle string
}

type LagrangeWrapper struct {
	Lagrange LagrangeConfig
}

// DefaultLagrangeWrapper returns a wrapper holding every default value. gcfg
// only overwrites the fields which appear in a file.
func DefaultLagrangeWrapper() *LagrangeWrapper {
	con := LagrangeConfig{}
	con.Precision = 10
	con.MaxPoints = 1000
	con.PlotFormat = "png"
	con.PlotSamples = 200
	con.PlotTitle = "Lagrange interpolation"
	return &LagrangeWrapper{con}
}

func (con *LagrangeConfig) ValidPrecision() bool {
	return con.Precision >= 0 && con.Precision <= 17
}
func (con *LagrangeConfig) ValidMaxPoints() bool { return con.MaxPoints >= 1 }
func (con *LagrangeConfig) ValidPlotSamples() bool {
	return con.PlotSamples >= 2
}
func (con *LagrangeConfig) ValidPlotFile() bool { return con.PlotFile != "" }

// CheckInit normalizes the config and returns an error describing the first
// invalid value.
func (con *LagrangeConfig) CheckInit() error {
	if !con.ValidPrecision() {
		return fmt.Errorf(
			"Precision must be in range [0, 17], but is %d.", con.Precision,
		)
	} else if !con.ValidMaxPoints() {
		return fmt.Errorf(
			"MaxPoints must be positive, but is %d.", con.MaxPoints,
		)
	} else if !con.ValidPlotSamples() {
		return fmt.Errorf(
			"PlotSamples must be at least 2, but is %d.", con.PlotSamples,
		)
	}

	tmp := con.PlotFormat
	con.PlotFormat = strings.Trim(strings.ToLower(con.PlotFormat), " ")
	for _, format := range plotFormats {
		if con.PlotFormat == format { return nil }
	}

	return fmt.Errorf(
		"PlotFormat must be one of [%s]. '%s' is not recognized.",
		strings.Join(plotFormats, " | "), tmp,
	)
}

// ReadLagrangeConfig reads the [Lagrange] section of a gcfg file. Missing
// values take their defaults.
func ReadLagrangeConfig(fname string) (*LagrangeConfig, error) {
	wrap := DefaultLagrangeWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return checked(wrap)
}

// ParseLagrangeConfig is identical to ReadLagrangeConfig, but reads the
// config from a string.
func ParseLagrangeConfig(text string) (*LagrangeConfig, error) {
	wrap := DefaultLagrangeWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	return checked(wrap)
}

func checked(wrap *LagrangeWrapper) (*LagrangeConfig, error) {
	con := &wrap.Lagrange
	if err := con.CheckInit(); err != nil { return nil, err }
	return con, nil
}
