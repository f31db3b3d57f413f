// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Command lz77 prints the LZ77 factorization of a UTF-8 text file.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/nekitakamenev/lz77"
)

var (
	flagOut     = flag.String("o", "", "output file (default stdout)")
	flagReport  = flag.Bool("r", false, "report factor statistics on stderr")
	flagCheck   = flag.Bool("check", false, "validate the factorization and verify the round trip")
	flagVersion = flag.Bool("version", false, "report executable version")
)

const version = "0.1.0"

func quitF(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		panic(err)
	}
	os.Exit(1)
}

func assertNoError(err error) {
	if err != nil {
		quitF("%v\n", err)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: lz77 [flags] file\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *flagVersion {
		fmt.Println("lz77 v" + version)
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	in, err := os.ReadFile(flag.Arg(0))
	assertNoError(err)
	assertNoError(checkInput(in))

	factors := lz77.Factorize(in)

	if *flagCheck {
		assertNoError(lz77.Validate(factors))
		if !bytes.Equal(lz77.Reconstruct(factors), in) {
			quitF("round trip mismatch\n")
		}
	}

	var w io.Writer = os.Stdout
	if *flagOut != "" {
		f, err := os.Create(*flagOut)
		assertNoError(err)
		defer f.Close()
		w = f
	}
	_, err = fmt.Fprintln(w, lz77.Render(factors))
	assertNoError(err)

	if *flagReport {
		fmt.Fprintln(os.Stderr, collect(factors))
	}
}

// checkInput rejects texts the factorizer cannot take.
func checkInput(in []byte) error {
	if !utf8.Valid(in) {
		return fmt.Errorf("input is not valid UTF-8")
	}
	if i := bytes.IndexByte(in, lz77.DefaultSentinel); i >= 0 {
		return fmt.Errorf("input contains a NUL byte at offset %d", i)
	}
	return nil
}

type stats struct {
	factors, literals, copies int
	covered, longest          int
}

func collect(factors []lz77.Factor) stats {
	var s stats
	for _, f := range factors {
		s.factors++
		s.covered += f.Covered()
		switch f.Kind {
		case lz77.Literal:
			s.literals++
		case lz77.Copy:
			s.copies++
			s.longest = max(s.longest, f.Length)
		}
	}
	return s
}

func (s stats) String() string {
	ratio := 0
	if s.covered > 0 {
		ratio = s.factors * 10000 / s.covered
	}
	return fmt.Sprintf("%dB -> %d factors (%d literals, %d copies, longest copy %d) ratio %d.%02d%%",
		s.covered, s.factors, s.literals, s.copies, s.longest, ratio/100, ratio%100)
}
