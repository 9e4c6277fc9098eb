// Command hafnian computes the hafnian or loop hafnian of a symmetric
// matrix read from a file or stdin.
//
// The input is one matrix row per line, entries separated by whitespace or
// commas. Blank lines and lines starting with '#' are skipped. Complex
// entries use Go syntax, e.g. 1+2i.
//
// Usage:
//
//	hafnian [-loop] [-complex] [-workers N] [file]
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	hafnian "github.com/thomascherickal/hafnian"
)

func main() {
	var (
		loop    = flag.Bool("loop", false, "compute the loop hafnian (diagonal enters as self-loops)")
		cplx    = flag.Bool("complex", false, "parse entries as complex numbers")
		workers = flag.Int("workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Usage: %s [-loop] [-complex] [-workers N] [file]\n\nReads a square matrix (one row per line) from file or stdin.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	in := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			fail(err)
		}
		defer f.Close()
		in = f
	}

	var opts []hafnian.Option
	if *workers > 0 {
		opts = append(opts, hafnian.WithWorkers(*workers))
	}

	if *cplx {
		mat, err := readComplexMatrix(in)
		if err != nil {
			fail(err)
		}
		run(mat, *loop, opts, hafnian.HafnianComplex, hafnian.LoopHafnianComplex)

		return
	}

	mat, err := readRealMatrix(in)
	if err != nil {
		fail(err)
	}
	run(mat, *loop, opts, hafnian.Hafnian, hafnian.LoopHafnian)
}

// run dispatches to the plain or loop variant and prints the result.
func run[T any](mat []T, loop bool, opts []hafnian.Option,
	plain, loops func([]T, ...hafnian.Option) (T, error),
) {
	f := plain
	if loop {
		f = loops
	}
	res, err := f(mat, opts...)
	if err != nil {
		fail(err)
	}
	fmt.Printf("%v\n", res)
}

// readRows tokenizes the input into rows of fields, skipping blank and
// comment lines and verifying every row has the same width as the row count.
func readRows(r io.Reader) ([][]string, error) {
	var rows [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ReplaceAll(line, ",", " ")
		rows = append(rows, strings.Fields(line))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	n := len(rows)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d (square matrix)", i+1, len(row), n)
		}
	}

	return rows, nil
}

func readRealMatrix(r io.Reader) ([]float64, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	n := len(rows)
	mat := make([]float64, n*n)
	for i, row := range rows {
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d entry %d: %w", i+1, j+1, err)
			}
			mat[i*n+j] = v
		}
	}

	return mat, nil
}

func readComplexMatrix(r io.Reader) ([]complex128, error) {
	rows, err := readRows(r)
	if err != nil {
		return nil, err
	}

	n := len(rows)
	mat := make([]complex128, n*n)
	for i, row := range rows {
		for j, field := range row {
			v, err := strconv.ParseComplex(field, 128)
			if err != nil {
				return nil, fmt.Errorf("row %d entry %d: %w", i+1, j+1, err)
			}
			mat[i*n+j] = v
		}
	}

	return mat, nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "hafnian:", err)
	os.Exit(1)
}
