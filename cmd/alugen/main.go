package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/translate"
	"github.com/ezrec/alu8/vector"
)

var f = translate.From

func main() {
	var output string
	var verbose bool

	flag.StringVar(&output, "o", "-", "JSON vector output ('-' for stdout)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] [OPERATION...]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	var ops []alu.Opcode
	for _, name := range flag.Args() {
		op, err := alu.ParseName(name)
		if err != nil {
			log.Fatalf("%v: %v", os.Args[0], err)
		}
		ops = append(ops, op)
	}

	var w io.Writer = os.Stdout
	if output != "-" {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		w = ouf
	}

	count, err := vector.Encode(w, vector.Exhaustive(ops...))
	if err != nil {
		log.Fatalf("%v: %v", output, err)
	}

	if verbose {
		log.Print(f("%v: %d test vectors", output, count))
	}
}
