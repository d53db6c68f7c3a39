package main

import (
	"flag"
	"fmt"
	goio "io"
	"log"
	"os"

	"github.com/phil-mansfield/lagrange/io"
	"github.com/phil-mansfield/lagrange/math/interpolate"
	"github.com/phil-mansfield/lagrange/render"
)

func main() {
	var (
		configFile string
		exampleConfig bool
	)

	flag.StringVar(
		&configFile, "Config", "",
		"Optional configuration file with a [Lagrange] section.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleLagrangeFile)
		return
	}

	con, err := readConfig(configFile)
	if err != nil { log.Fatal(err.Error()) }

	if err := run(con, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err.Error())
	}
}

func readConfig(fname string) (*io.LagrangeConfig, error) {
	if fname == "" {
		con := &io.DefaultLagrangeWrapper().Lagrange
		return con, con.CheckInit()
	}
	return io.ReadLagrangeConfig(fname)
}

// run prompts for a problem on out, reads it from in, and writes the
// calculation table and estimate to out.
func run(con *io.LagrangeConfig, in goio.Reader, out goio.Writer) error {
	prob, err := io.ReadProblem(io.NewPrompter(in, out), con.MaxPoints)
	if err != nil { return err }

	res, err := interpolate.Evaluate(prob.Points, prob.Query)
	if err != nil { return fmt.Errorf("Cannot interpolate: %w", err) }

	if err := io.WriteTable(out, res, con.Precision); err != nil {
		return err
	}
	err = io.WriteEstimate(out, prob.Query, res.Value, con.Precision)
	if err != nil { return err }

	if !con.ValidPlotFile() { return nil }

	lag, err := interpolate.NewLagrange(prob.Points)
	if err != nil { return err }
	if err := render.Plot(con, lag, prob.Query, res.Value); err != nil {
		return fmt.Errorf("Could not write plot '%s': %w", con.PlotFile, err)
	}
	log.Printf("Wrote plot to %s.", con.PlotFile)

	return nil
}
