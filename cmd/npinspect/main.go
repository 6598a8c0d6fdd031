// Command npinspect prints the header metadata of .npy files.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/nparray-go/nparray/npy"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: npinspect FILE...")
		os.Exit(2)
	}

	exitCode := 0
	for _, path := range os.Args[1:] {
		if err := inspect(path); err != nil {
			fmt.Fprintf(os.Stderr, "npinspect: %s: %v\n", path, err)
			exitCode = 1
		}
	}
	os.Exit(exitCode)
}

func inspect(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hdr, err := npy.ReadHeader(bufio.NewReader(f))
	if err != nil {
		return err
	}

	order := "C"
	if hdr.ColumnMajor {
		order = "Fortran"
	}
	fmt.Printf("%s: dtype=%s shape=%v order=%s elements=%d\n",
		path, hdr.DType, hdr.Shape, order, hdr.NumElements())
	return nil
}
