package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	tc "github.com/thijzert/go-termcolours"
	"github.com/thijzert/go-rcfile"
	"github.com/thijzert/slf2gpx/pkg/batch"
)

var Config = struct {
	Input          string
	Output         string
	Verbose        bool
	ConcurrentJobs int
}{}

func init() {
	flag.StringVar(&Config.Input, "input", "", "Input SLF file, or a directory containing SLF files")
	flag.StringVar(&Config.Input, "i", "", "Shorthand for -input")

	flag.StringVar(&Config.Output, "output", "", "Output GPX file, or output directory (default: next to the input)")
	flag.StringVar(&Config.Output, "o", "", "Shorthand for -output")

	flag.BoolVar(&Config.Verbose, "verbose", false, "Report every converted file")
	flag.BoolVar(&Config.Verbose, "v", false, "Shorthand for -verbose")

	flag.IntVar(&Config.ConcurrentJobs, "j", 1, "Number of concurrent jobs")

	flag.Usage = usage
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s -i INPUT [-o OUTPUT] [-v] [-j JOBS]\n", filepath.Base(os.Args[0]))
	flag.PrintDefaults()
}

func main() {
	// Parse config file first, and override with anything on the commandline
	rcfile.Parse()
	flag.Parse()

	// Sanity checks

	if Config.ConcurrentJobs < 1 {
		Config.ConcurrentJobs = 1
	}

	os.Exit(exitStatus(inputGiven()))
}

// exitStatus runs the conversion described by Config. It returns 2 for usage
// errors and unusable inputs, 1 if any file failed to convert, and 0 otherwise.
func exitStatus(given bool) int {
	if !given {
		usage()
		return 2
	}
	if strings.TrimSpace(Config.Input) == "" {
		// Nothing to do
		return 0
	}

	return run()
}

func inputGiven() bool {
	rv := Config.Input != ""
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "i" || f.Name == "input" {
			rv = true
		}
	})
	return rv
}

func run() int {
	jobs, err := batch.Plan(Config.Input, Config.Output)
	if err != nil {
		log.Printf("%s", tc.Red(err.Error()))
		return 2
	}
	if len(jobs) == 0 {
		if Config.Verbose {
			log.Printf("No SLF files found in %s", Config.Input)
		}
		return 0
	}

	runner := &batch.Runner{
		Jobs:    Config.ConcurrentJobs,
		Verbose: Config.Verbose,
		Output:  os.Stderr,
	}
	res := runner.Run(jobs)

	if Config.Verbose || res.Failed > 0 {
		log.Printf("Converted %d of %d files", res.Converted, len(jobs))
	}
	if res.Failed > 0 {
		for _, f := range res.Failures {
			log.Printf("%s %s", tc.Red("failed:"), f.Job.Input)
		}
		return 1
	}
	return 0
}
