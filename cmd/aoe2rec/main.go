/*

A simple CLI app to parse a replay file and print its build string and
profile keys as JSON.

*/
package main

import (
	"compress/gzip"
	"fmt"
	"io"
	"log"
	"os"

	"flag"

	"github.com/aoe2rec/aoe2rec/envelope"
	"github.com/aoe2rec/aoe2rec/repparser"
)

const (
	ExitCodeMissingArguments         = 1
	ExitCodeFailedToOpenInput        = 2
	ExitCodeFailedToParseReplay      = 3
	ExitCodeFailedToCreateOutputFile = 4
)

// Flag variables
var (
	isGzip  = flag.Bool("is-gzip", false, "treat the input file as gzip-wrapped")
	verbose = flag.Bool("v", false, "enable verbose (debug) logging")
	quiet   = flag.Bool("q", false, "suppress the stdout JSON echo; -o still writes the file if given")
	outFile = flag.String("o", "", "optional output file for the JSON document")
)

func main() {
	flag.BoolVar(verbose, "verbose", false, "same as -v")
	flag.BoolVar(quiet, "quiet", false, "same as -q")
	flag.StringVar(outFile, "output", "", "same as -o")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(ExitCodeMissingArguments)
	}

	logger := log.Default()
	if !*verbose {
		logger.SetOutput(io.Discard)
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Printf("Failed to open %s: %v\n", args[0], err)
		os.Exit(ExitCodeFailedToOpenInput)
	}
	defer f.Close()

	var r io.Reader = f
	if *isGzip {
		gz, err := gzip.NewReader(f)
		if err != nil {
			fmt.Printf("Failed to open gzip stream: %v\n", err)
			os.Exit(ExitCodeFailedToOpenInput)
		}
		defer gz.Close()
		r = gz
	}

	data, err := envelope.Decode(r)
	if err != nil {
		fmt.Printf("Failed to decode envelope: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	replay, err := repparser.ParseConfig(data, repparser.Config{Commands: true, Logger: logger})
	if err != nil {
		fmt.Printf("Failed to parse replay: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	doc, err := replay.ToJSON()
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		os.Exit(ExitCodeFailedToParseReplay)
	}

	if !*quiet {
		if _, err := os.Stdout.Write(doc); err != nil {
			fmt.Printf("Failed to write output: %v\n", err)
		}
		os.Stdout.WriteString("\n")
	}

	if *outFile != "" {
		foutput, err := os.Create(*outFile)
		if err != nil {
			fmt.Printf("Failed to create output file: %v\n", err)
			os.Exit(ExitCodeFailedToCreateOutputFile)
		}
		defer foutput.Close()

		if _, err := foutput.Write(doc); err != nil {
			fmt.Printf("Failed to write output file: %v\n", err)
		}
	}
}

func printUsage() {
	fmt.Println("Usage:")
	name := os.Args[0]
	fmt.Printf("\t%s [FLAGS] repfile.rec\n", name)
	fmt.Println("\tRun with '-h' to see a list of available flags.")
}
