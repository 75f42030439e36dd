// show-int24 shows the representations of int24 values, mostly for
// debugging conversions etc.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pfcm/int24"
)

var opsFlag = flag.String("ops", "", "comma separated list of `operations` to show. Available operations are: "+strings.Join(opKeys, ", ")+". Defaults to all operations")

func main() {
	flag.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), help)
		fmt.Fprintln(flag.CommandLine.Output(), "\nOptional arguments:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if n := flag.NArg(); n < 1 || n > 2 {
		fail("Need exactly one or two arguments.")
	}

	show, err := parseOps(*opsFlag)
	if err != nil {
		fail(err.Error())
	}

	a, err := parse(flag.Arg(0))
	if err != nil {
		fail(err.Error())
	}

	w := tabwriter.NewWriter(os.Stdout, 11, 1, 1, ' ', 0)

	showValue(w, a)

	if flag.NArg() == 2 {
		b, err := parse(flag.Arg(1))
		if err != nil {
			fail(err.Error())
		}
		fmt.Fprintln(w)
		showValue(w, b)
		fmt.Fprintln(w)
		for _, k := range opKeys {
			if show[k] {
				ops[k](w, a, b)
			}
		}
	}

	if err := w.Flush(); err != nil {
		fail(err.Error())
	}
}

var opKeys = []string{"add", "sub", "mul", "div", "shl8div", "cmp"}

var ops = map[string]func(w io.Writer, a, b int24.Int24){
	"add":     func(w io.Writer, a, b int24.Int24) { showResult(w, "add", "+", a, b, a.Add(b)) },
	"sub":     func(w io.Writer, a, b int24.Int24) { showResult(w, "sub", "-", a, b, a.Sub(b)) },
	"mul":     func(w io.Writer, a, b int24.Int24) { showResult(w, "mul", "*", a, b, a.Mul(b)) },
	"div":     func(w io.Writer, a, b int24.Int24) { showResult(w, "div", "/", a, b, a.Div(b)) },
	"shl8div": func(w io.Writer, a, b int24.Int24) { showResult(w, "shl8div", "<<8 /", a, b, a.Shl8Div(b)) },
	"cmp": func(w io.Writer, a, b int24.Int24) {
		fmt.Fprintf(w, "cmp\t%v ? %v\t= %d\n", a, b, a.Cmp(b))
	},
}

func parseOps(os string) (map[string]bool, error) {
	all := make(map[string]bool)
	for _, o := range opKeys {
		all[o] = true
	}
	if os == "" {
		return all, nil
	}
	result := make(map[string]bool)
	for _, o := range strings.Split(os, ",") {
		if !all[o] {
			return nil, fmt.Errorf("unknown op %q", o)
		}
		result[o] = true
	}
	return result, nil
}

// parse reads a Go integer literal. Values outside the 24 bit range
// saturate, the same as the arithmetic would.
func parse(s string) (int24.Int24, error) {
	raw, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return int24.Int24{}, err
	}
	return int24.FromInt32(int32(raw)), nil
}

func showValue(w io.Writer, v int24.Int24) {
	fmt.Fprintf(w, "%v\thex\t%#06x\n", v, uint32(v.Int32())&0xffffff)
	fmt.Fprintf(w, "\tle bytes\t% x\n", v.LEBytes())
	fmt.Fprintf(w, "\tint16\t%d\n", v.Int16())
}

func showResult(w io.Writer, name, op string, a, b, out int24.Int24) {
	fmt.Fprintf(w, "%s\t%v %s %v\t= %v\n", name, a, op, b, out)
}

func fail(reason string) {
	fmt.Fprintln(os.Stderr, reason)
	fmt.Fprintln(os.Stderr, help)
	os.Exit(1)
}

const help = `show-int24 shows the representations and arithmetic of 24 bit
saturating integers.
Usage:
	show-int24 [-ops] num [num]

Where num is an integer literal in Go syntax. If a second number is
provided, also shows the results of the operations between them.`
