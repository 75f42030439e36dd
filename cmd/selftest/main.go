// selftest runs the int24 arithmetic self-test suite and writes the
// line oriented report to stdout or, with -port, to a serial device.
// The bytes are exactly what a target board reports over its UART, so
// the same monitor can watch either end.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/tarm/serial"

	"github.com/pfcm/int24/selftest"
)

var (
	portFlag = flag.String("port", "", "serial `device` to write the report to instead of stdout")
	baudFlag = flag.Int("baud", 115200, "baud rate for -port")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("selftest: ")

	w := io.Writer(os.Stdout)
	if *portFlag != "" {
		p, err := serial.OpenPort(&serial.Config{Name: *portFlag, Baud: *baudFlag})
		if err != nil {
			log.Fatalf("Opening %s: %v", *portFlag, err)
		}
		defer p.Close()
		w = p
	}

	if err := selftest.Run(selftest.LineWriter{W: w}); err != nil {
		log.Fatal(err)
	}
}
