// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strconv"

	"go.astrophena.name/optthrow/cli"
	"go.astrophena.name/optthrow/logger"
	"go.astrophena.name/optthrow/opt"
	"go.astrophena.name/optthrow/unwrap"
)

func main() { cli.Main(new(app)) }

type app struct {
	verbose bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.verbose, "v", false, "Log every parsed value.")
}

var errOverflow = errors.New("sum overflows int")

// add returns a+b, or None if the sum overflows int.
func add(a, b int) opt.Option[int] {
	s := a + b
	// Without overflow, s moves away from a in the direction of b's sign.
	return opt.FromOk(s, (s > a) == (b > 0))
}

// parse returns the integer in s, or None if s is not an integer.
func parse(ctx context.Context, s string) opt.Option[int] {
	n, err := strconv.Atoi(s)
	if err != nil {
		logger.Warn(ctx, "not an integer", slog.String("arg", s))
		return opt.None[int]()
	}
	logger.Debug(ctx, "parsed", slog.String("arg", s), slog.Int("value", n))
	return opt.Some(n)
}

func (a *app) Run(ctx context.Context) error {
	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}
	env := cli.GetEnv(ctx)

	if len(env.Args) < 2 {
		return fmt.Errorf("%w: need at least two integers", cli.ErrInvalidArgs)
	}

	total, err := unwrap.Do(func() opt.Option[int] {
		total := add(parse(ctx, env.Args[0]).Must(), parse(ctx, env.Args[1]).Must())
		for _, arg := range env.Args[2:] {
			total = opt.FlatMap(total, func(t int) opt.Option[int] {
				return add(t, parse(ctx, arg).Must())
			})
		}
		return total
	})
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	sum, ok := total.Get()
	if !ok {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, errOverflow)
	}

	fmt.Fprintln(env.Stdout, sum)
	return nil
}
