package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/internal"
	"github.com/ezrec/alu8/translate"
)

const rule = "======================================================================"

var f = translate.From

func list() {
	fmt.Println(rule)
	fmt.Println(f("Available ALU Operations (%d total)", alu.OP_COUNT))
	fmt.Println(rule)

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, class := range []alu.Class{alu.CLASS_ARITHMETIC, alu.CLASS_LOGIC, alu.CLASS_SHIFT, alu.CLASS_SPECIAL} {
		fmt.Fprintf(tw, "\n%v\n", f("%v operations:", class))
		for op := range alu.Opcodes() {
			if op.Class() != class {
				continue
			}
			fmt.Fprintf(tw, "  %v\t[%v]\t%v\t%v\n", op, op.Code(), op.Expression(), op.Description())
		}
	}
	tw.Flush()

	fmt.Println(rule)
}

func show(op alu.Opcode, a, b uint, result uint8, flags alu.Flags, format internal.Format) {
	flag_text := func(set bool) string {
		if set {
			return f("1 (SET)")
		}
		return f("0 (CLEAR)")
	}

	fmt.Println(rule)
	fmt.Println(f("ALU Operation: %v", op))
	fmt.Println(rule)
	fmt.Printf("Opcode:      %v (decimal: %d)\n", op.Code(), int(op))
	fmt.Println(f("Category:    %v", op.Class()))
	fmt.Println(f("Expression:  %v", op.Expression()))
	fmt.Println(f("Description: %v", op.Description()))
	fmt.Println()
	fmt.Println(f("Inputs:"))
	fmt.Printf("  A = %v\n", format.Value(a))
	fmt.Printf("  B = %v\n", format.Value(b))
	fmt.Println()
	fmt.Println(f("Result:"))
	fmt.Printf("  OUT = %v\n", format.Value(uint(result)))
	fmt.Println()
	fmt.Println(f("Flags:"))
	fmt.Println(f("  Carry (C):    %v", flag_text(flags.Carry)))
	fmt.Println(f("  Zero (Z):     %v", flag_text(flags.Zero)))
	fmt.Println(f("  Negative (N): %v", flag_text(flags.Negative)))
	fmt.Println(f("  Overflow (V): %v", flag_text(flags.Overflow)))
	fmt.Println(rule)
}

func main() {
	var hex bool
	var binary bool
	var format_name string
	var listing bool
	var quiet bool
	var verbose bool

	flag.BoolVar(&hex, "x", false, "Interpret operands as hexadecimal")
	flag.BoolVar(&binary, "b", false, "Interpret operands as binary")
	flag.StringVar(&format_name, "f", "decimal", "Output format: decimal, hex, binary or all")
	flag.BoolVar(&listing, "l", false, "List all available operations")
	flag.BoolVar(&quiet, "q", false, "Minimal output (result only)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %v [options] OPERATION A B\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if listing {
		list()
		return
	}

	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(1)
	}

	if hex && binary {
		log.Fatalf("%v: -x and -b are mutually exclusive", os.Args[0])
	}

	base := 0
	switch {
	case hex:
		base = 16
	case binary:
		base = 2
	}

	format, err := internal.ParseFormat(format_name)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	name := flag.Arg(0)
	op, err := alu.ParseName(name)
	if err != nil {
		// Accept a raw 5-bit code as well as a mnemonic.
		op, err = alu.Decode(strings.TrimSpace(name))
	}
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	a, err := internal.ParseOperand(flag.Arg(1), base)
	if err != nil {
		log.Fatalf("%v: A: %v", os.Args[0], err)
	}

	b, err := internal.ParseOperand(flag.Arg(2), base)
	if err != nil {
		log.Fatalf("%v: B: %v", os.Args[0], err)
	}

	result, flags, err := alu.Evaluate(op, a, b)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	if verbose {
		log.Printf("%v %v 0x%02X 0x%02X -> 0x%02X %v", op, op.Code(), a, b, result, flags)
	}

	if quiet {
		fmt.Println(result)
		return
	}

	show(op, a, b, result, flags, format)
}
