// This file is part of vtmode.
//
// vtmode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vtmode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vtmode.  If not, see <https://www.gnu.org/licenses/>.

// Command vtmodedemo applies one High-Level Operation to a standard
// stream, prints a line when it is applied and another when it is
// reverted, and reverts it on the way out. It
// exists to exercise the term package end to end, the same role
// cmd/gopher2600's smaller debugging utilities play for their packages.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/srccircumflex/vtmode/errors"
	"github.com/srccircumflex/vtmode/logger"
	"github.com/srccircumflex/vtmode/term"
)

var operations = map[string]func(term.StreamId) (term.Capability, error){
	"ansi_in":     term.AnsiIn,
	"ansi_out":    term.AnsiOut,
	"no_echo":     term.NoEcho,
	"non_block":   term.NonBlock,
	"no_process":  term.NoProcess,
	"no_impl_def": term.NoImplDef,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("vtmodedemo", flag.ContinueOnError)
	op := fs.String("op", "no_echo", "operation to apply: ansi_in, ansi_out, no_echo, non_block, no_process, no_impl_def")
	streamName := fs.String("stream", "stdin", "stream to modify: stdin, stdout, stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	apply, ok := operations[*op]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown -op %q\n", *op)
		return 2
	}

	sel, err := selectorFor(*streamName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	guard := term.DeviceErrorGuard[int]{
		OnInappropriateDevice: func(err error) int {
			fmt.Fprintf(os.Stderr, "%s is not a terminal: %v\n", *streamName, err)
			return 1
		},
		OnOther: func(err error) int {
			fmt.Fprintf(os.Stderr, "vtmodedemo: %v\n", err)
			return 1
		},
	}

	return guard.Run(func() (int, error) {
		defer term.CachePurge()

		stream, err := term.Handle(sel)
		if err != nil {
			return 0, err
		}

		modcap, err := apply(stream)
		if err != nil {
			return 0, err
		}

		logger.Logf("vtmodedemo", "applied %s to %s (origin=%v)", *op, *streamName, modcap.Origin())
		fmt.Printf("applied %s to %s\n", *op, *streamName)

		if err := modcap.Purge(); err != nil {
			return 0, err
		}
		fmt.Printf("reverted %s on %s\n", *op, *streamName)
		return 0, nil
	})
}

func selectorFor(name string) (term.Selector, error) {
	switch name {
	case "stdin":
		return term.Stdin, nil
	case "stdout":
		return term.Stdout, nil
	case "stderr":
		return term.Stderr, nil
	default:
		return 0, errors.Errorf("unknown stream %q", name)
	}
}
