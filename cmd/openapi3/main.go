// Command openapi3 converts generated OpenAPI documents between JSON and
// YAML without disturbing key order.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "openapi3 CLI\n\nUsage:\n  openapi3 convert -i doc.json -o doc.yaml -to yaml\n  openapi3 convert -i doc.yaml -o doc.json -to json\n\nNotes:\n  - Conversion is lossless and keeps document key order.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var in, out, to string
	fs.StringVar(&in, "i", "", "input document (JSON or YAML; - for stdin)")
	fs.StringVar(&out, "o", "", "output filename (- or empty for stdout)")
	fs.StringVar(&to, "to", "yaml", "output format: yaml or json")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := readInput(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapi3: %v\n", err)
		os.Exit(1)
	}
	converted, err := Convert(data, to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapi3: %v\n", err)
		os.Exit(1)
	}
	if out == "" || out == "-" {
		_, _ = os.Stdout.Write(converted)
		return
	}
	if err := os.WriteFile(out, converted, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "openapi3: %v\n", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
