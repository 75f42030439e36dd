// conform sweeps operand patterns through every int24 operation,
// comparing the backend built into the binary against the portable
// Wide* mirror. Built normally the two are the same code and the sweep
// is a smoke test; built with "-tags int24_limb" it checks the limb
// backend against the wide one, which is the point:
//
//	go run -tags int24_limb ./cmd/conform
//
// The unary operations are swept over every 24 bit pattern. Binary
// operand pairs come from a 24 bit LFSR, deterministic so a failure
// can be reproduced, spread so the saturation regions all get hit.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pfcm/int24"
)

var (
	pairsFlag   = flag.Int64("pairs", 1<<24, "operand pairs to check per binary operation")
	workersFlag = flag.Int("workers", runtime.GOMAXPROCS(0), "concurrent workers per sweep")
)

type binaryOp struct {
	name string
	got  func(a, b int24.Int24) int24.Int24
	want func(a, b int24.Int24) int24.Int24
}

var binaryOps = []binaryOp{
	{"Add", int24.Int24.Add, int24.Int24.WideAdd},
	{"Sub", int24.Int24.Sub, int24.Int24.WideSub},
	{"Mul", int24.Int24.Mul, int24.Int24.WideMul},
	{"Div", int24.Int24.Div, int24.Int24.WideDiv},
	{"Shl8Div", int24.Int24.Shl8Div, int24.Int24.WideShl8Div},
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("conform: ")

	var done atomic.Int64
	g, ctx := errgroup.WithContext(interruptContext())

	g.Go(func() error {
		return unarySweep(ctx, *workersFlag, &done)
	})
	g.Go(func() error {
		return binarySweep(ctx, *workersFlag, *pairsFlag, &done)
	})

	p := message.NewPrinter(language.English)
	stop := make(chan struct{})
	go func() {
		t := time.NewTicker(time.Second)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				p.Fprintf(os.Stderr, "\rchecked %d values", done.Load())
			}
		}
	}()

	err := g.Wait()
	close(stop)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
	p.Printf("All %d checks passed\n", done.Load())
}

// unarySweep runs every single-operand operation over the full 24 bit
// space, split into one contiguous range per worker.
func unarySweep(ctx context.Context, workers int, done *atomic.Int64) error {
	g, ctx := errgroup.WithContext(ctx)
	const span = 1 << 24
	step := span/workers + 1
	for lo := 0; lo < span; lo += step {
		lo, hi := lo, min(lo+step, span)
		g.Go(func() error {
			for u := lo; u < hi; u++ {
				if u%(1<<16) == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				a := int24.FromLEBytes([3]byte{uint8(u), uint8(u >> 8), uint8(u >> 16)})
				if got, want := a.Neg(), a.WideNeg(); got != want {
					return fmt.Errorf("%v.Neg() = %v, want %v", a, got, want)
				}
				if got, want := a.Abs(), a.WideAbs(); got != want {
					return fmt.Errorf("%v.Abs() = %v, want %v", a, got, want)
				}
				for _, count := range []uint8{1, 7, 8, 16, 23, 24} {
					if got, want := a.Shl(count), a.WideShl(count); got != want {
						return fmt.Errorf("%v.Shl(%d) = %v, want %v", a, count, got, want)
					}
					if got, want := a.Shr(count), a.WideShr(count); got != want {
						return fmt.Errorf("%v.Shr(%d) = %v, want %v", a, count, got, want)
					}
				}
				if got := int24.FromInt32(a.Int32()); got != a {
					return fmt.Errorf("FromInt32(%d) = % x, want % x", a.Int32(), got.LEBytes(), a.LEBytes())
				}
				done.Add(1)
			}
			return nil
		})
	}
	return g.Wait()
}

// binarySweep feeds LFSR operand pairs to every two-operand operation.
func binarySweep(ctx context.Context, workers int, pairs int64, done *atomic.Int64) error {
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := pairs / int64(workers)
		if w == 0 {
			n += pairs % int64(workers)
		}
		// Every worker walks the same LFSR cycle from its own offset.
		gen := newNoise(uint32(w)*0x9e3779 + 1)
		g.Go(func() error {
			for i := int64(0); i < n; i++ {
				if i%(1<<14) == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				a, b := gen.next(), gen.next()
				for _, op := range binaryOps {
					if got, want := op.got(a, b), op.want(a, b); got != want {
						return fmt.Errorf("%v.%s(%v) = %v (% x), want %v (% x)",
							a, op.name, b, got, got.LEBytes(), want, want.LEBytes())
					}
				}
				if got, want := a.Cmp(b), a.WideCmp(b); got != want {
					return fmt.Errorf("%v.Cmp(%v) = %d, want %d", a, b, got, want)
				}
				done.Add(1)
			}
			return nil
		})
	}
	return g.Wait()
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
