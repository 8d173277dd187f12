package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/alu8/report"
	"github.com/ezrec/alu8/runner"
	"github.com/ezrec/alu8/vector"
)

// create opens an output file, with '-' for stdout.
func create(path string) (w io.Writer, closer func()) {
	if path == "-" {
		return os.Stdout, func() {}
	}

	ouf, err := os.Create(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	return ouf, func() {
		err := ouf.Close()
		if err != nil {
			log.Fatalf("%v: %v", path, err)
		}
	}
}

func run() (status int) {
	var verbose bool
	var debug bool
	var color bool
	var quiet bool
	var workers int
	var json_output string
	var csv_output string
	var validate bool

	flag.BoolVar(&verbose, "v", false, "Verbose mode, report passing tests")
	flag.BoolVar(&debug, "d", false, "Dump every failing outcome")
	flag.BoolVar(&color, "c", false, "Colourise the report")
	flag.BoolVar(&quiet, "q", false, "Do not write the text report")
	flag.IntVar(&workers, "j", 1, "Number of concurrent workers")
	flag.StringVar(&json_output, "json", "", "Write JSON results to file ('-' for stdout)")
	flag.StringVar(&csv_output, "csv", "", "Write CSV results to file ('-' for stdout)")
	flag.BoolVar(&validate, "validate", false, "Validate vector fields, do not run")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] VECTORS.json|VECTORS.star...\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		return 1
	}

	vectors := vector.OpenAll(flag.Args()...)

	if validate {
		count, err := vector.Validate(vectors)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		fmt.Printf("Validated %d vectors across %d file(s).\n", count, flag.NArg())
		return 0
	}

	var sinks report.Tee
	var text *report.Text
	if !quiet {
		text = report.NewText(os.Stdout)
		text.Color = color
		text.Verbose = verbose
		text.Debug = debug
		sinks = append(sinks, text)
	}

	var js *report.JSON
	if len(json_output) != 0 {
		w, closer := create(json_output)
		defer closer()
		js = report.NewJSON(w)
		sinks = append(sinks, js)
	}

	var cw *report.CSV
	if len(csv_output) != 0 {
		w, closer := create(csv_output)
		defer closer()
		cw = report.NewCSV(w)
		sinks = append(sinks, cw)
	}

	r := &runner.Runner{
		Verbose: verbose && quiet,
		Workers: workers,
	}

	summary, err := r.Run(vectors, sinks)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if text != nil && text.Err() != nil {
		log.Fatalf("%v: %v", os.Args[0], text.Err())
	}
	if js != nil && js.Err() != nil {
		log.Fatalf("%v: %v", json_output, js.Err())
	}
	if cw != nil && cw.Err() != nil {
		log.Fatalf("%v: %v", csv_output, cw.Err())
	}

	if summary.Failed > 0 {
		status = 1
	}

	return
}

func main() {
	os.Exit(run())
}
