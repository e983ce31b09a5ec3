package batch

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	tc "github.com/thijzert/go-termcolours"
	"github.com/thijzert/slf2gpx/lib/hivemind"
	"github.com/thijzert/slf2gpx/pkg/convert"
	"github.com/thijzert/slf2gpx/pkg/xmldoc"
)

// A Runner executes conversion jobs
type Runner struct {
	// Number of concurrent conversions. Anything below 1 means 1.
	Jobs int

	// Log every successful conversion, not just failures
	Verbose bool

	// Destination for diagnostics. Defaults to standard error.
	Output io.Writer

	Mapper convert.Mapper
}

// A Result summarises a batch run
type Result struct {
	Converted int
	Failed    int
	Failures  []Failure
}

// A Failure records a job that did not produce any output
type Failure struct {
	Job Job
	Err error
}

// Run converts every job. A job that fails is reported and skipped; it never
// stops the other jobs.
func (r *Runner) Run(jobs []Job) Result {
	workers := r.Jobs
	if workers < 1 {
		workers = 1
	}
	mapper := r.Mapper
	if mapper.Author.Name == "" && mapper.Author.Email == nil {
		mapper.Author = convert.DefaultAuthor
	}

	errs := make([]error, len(jobs))
	hive := hivemind.New(workers, r.Output)

	for i, job := range jobs {
		i, job := i, job
		hive.AddJob(hivemind.JobFunc(func(h hivemind.JC) error {
			errs[i] = Convert(job, mapper)
			if errs[i] == nil && r.Verbose {
				h.Printf("%s %s -> %s", tc.Green("converted"), job.Input, job.Output)
			}
			return errs[i]
		}))
	}
	stats := hive.Wait()

	rv := Result{
		Converted: stats.Done,
		Failed:    stats.Failed,
	}
	for i, err := range errs {
		if err != nil {
			rv.Failures = append(rv.Failures, Failure{Job: jobs[i], Err: err})
		}
	}
	return rv
}

// Convert reads one SLF file, maps it and writes the GPX file
func Convert(job Job, m convert.Mapper) error {
	a, err := xmldoc.ReadActivity(job.Input)
	if err != nil {
		return err
	}

	doc := m.ToGPX(a, job.Name)

	if dir := filepath.Dir(job.Output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "cannot create output directory for '%s'", job.Output)
		}
	}

	return xmldoc.Write(doc, job.Output)
}
