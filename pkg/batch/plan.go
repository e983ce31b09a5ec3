// Package batch turns an input path into conversion jobs, and runs them.
package batch

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/thijzert/slf2gpx/lib/zipmap"
	"github.com/thijzert/slf2gpx/pkg/schema"
	"golang.org/x/text/unicode/norm"
)

// A Job converts one SLF file into one GPX file
type Job struct {
	Input  string
	Output string

	// The name of the track, derived from the input file name
	Name string
}

// Plan resolves an input path and an optional output path to conversion jobs.
//
// If input is a directory, every .slf file directly inside it is converted
// into a .gpx file of the same base name in the output directory, which
// defaults to the input directory. If input is a file, output defaults to
// the same path with a .gpx extension. A blank input yields no jobs.
func Plan(input, output string) ([]Job, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}

	fi, err := os.Stat(input)
	if err != nil {
		if _, _, ok := zipmap.Archive(input); ok {
			zm := zipmap.New()
			defer zm.Close()
			if zm.Exists(input) {
				return []Job{fileJob(input, output)}, nil
			}
		}
		return nil, errors.Wrapf(err, "cannot use input '%s'", input)
	}

	if fi.IsDir() {
		return dirJobs(input, output)
	}
	return []Job{fileJob(input, output)}, nil
}

func dirJobs(input, output string) ([]Job, error) {
	if output == "" {
		output = input
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot list '%s'", input)
	}

	rv := []Job{}
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), schema.SLF) {
			continue
		}
		name := baseName(e.Name())
		rv = append(rv, Job{
			Input:  filepath.Join(input, e.Name()),
			Output: filepath.Join(output, name+schema.GPX.Extension()),
			Name:   name,
		})
	}
	return rv, nil
}

func fileJob(input, output string) Job {
	rv := Job{
		Input:  input,
		Output: output,
		Name:   baseName(input),
	}

	if output == "" {
		if archive, _, ok := zipmap.Archive(input); ok {
			rv.Output = filepath.Join(filepath.Dir(archive), rv.Name+schema.GPX.Extension())
		} else {
			rv.Output = strings.TrimSuffix(input, filepath.Ext(input)) + schema.GPX.Extension()
		}
	} else if fi, err := os.Stat(output); err == nil && fi.IsDir() {
		rv.Output = filepath.Join(output, rv.Name+schema.GPX.Extension())
	}

	return rv
}

func hasExtension(filename string, kind schema.Kind) bool {
	return strings.EqualFold(filepath.Ext(filename), kind.Extension())
}

// baseName strips the directory and the last extension from a path. Some
// file systems hand out decomposed names; the result is always NFC.
func baseName(p string) string {
	b := filepath.Base(filepath.FromSlash(p))
	return norm.NFC.String(strings.TrimSuffix(b, filepath.Ext(b)))
}
