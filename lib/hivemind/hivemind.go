// Package hivemind implements a simple worker pool, basically a
// `sync.WaitGroup` on steroids. Jobs added to a hive mind are executed by
// workers until `Wait` is called. Log lines written by jobs are serialised, so
// concurrent jobs never interleave their output.
package hivemind

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Hivemind struct {
	output  io.Writer
	workers []*worker
	inbox   chan Job
	outbox  chan changeEvent
	wg      sync.WaitGroup
	done    chan struct{}
	running bool
	stats   Stats
}

// Stats summarises the jobs a hive mind has processed
type Stats struct {
	Done   int
	Failed int
}

// New creates a hive mind with the given number of workers, writing log lines
// to output. If workers is not positive, there is one worker per CPU. A nil
// output means standard error.
func New(workers int, output io.Writer) *Hivemind {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if output == nil {
		output = os.Stderr
	}
	rv := &Hivemind{
		workers: make([]*worker, workers),
		output:  output,
	}

	return rv
}

func (h *Hivemind) init() {
	h.inbox = make(chan Job)
	h.outbox = make(chan changeEvent)
	h.done = make(chan struct{})
	h.stats = Stats{}

	for i := range h.workers {
		h.workers[i] = &worker{
			ID:     i,
			Inbox:  h.inbox,
			Outbox: h.outbox,
		}
		h.wg.Add(1)
		go func(w *worker) {
			defer h.wg.Done()
			w.Work()
		}(h.workers[i])
	}

	go h.listen()

	h.running = true
}

func (h *Hivemind) listen() {
	defer close(h.done)

	for ev := range h.outbox {
		if (ev.Flags & fLog) != 0 {
			h.writeString(ev.LogLine)
		}
		if (ev.Flags & fDone) != 0 {
			h.stats.Done++
		}
		if (ev.Flags & fFailed) != 0 {
			h.stats.Failed++
		}
	}
}

func (h *Hivemind) writeString(s string) {
	h.uncaringWrite([]byte(s))
}

// Write bytes, retrying if the entire buffer couldn't be written at once, but ignoring all other errors
func (h *Hivemind) uncaringWrite(b []byte) {
	var err error = nil
	var n, i int = 0, 0
	for err == nil && n < len(b) {
		i, err = h.output.Write(b[n:])
		n += i
	}
}

// Add a job to the queue.
// If they weren't active already, spin up the workers
func (h *Hivemind) AddJob(j Job) {
	if !h.running {
		h.init()
	}
	h.inbox <- j
}

// Wait for all jobs to finish, and shut down the hive. The hive may be
// reused afterwards; a new set of workers is started on the next AddJob.
func (h *Hivemind) Wait() Stats {
	if !h.running {
		return Stats{}
	}
	close(h.inbox)
	h.wg.Wait()
	close(h.outbox)
	<-h.done
	h.running = false
	return h.stats
}

// JC for 'Job Control'
type JC interface {
	Println(string)
	Printf(string, ...interface{})
}

type Job interface {
	Run(j JC) error
}

// A JobFunc adapts an ordinary function to the Job interface
type JobFunc func(j JC) error

func (f JobFunc) Run(j JC) error {
	return f(j)
}

type eventFlags int

const (
	fLog eventFlags = 1 << iota
	fDone
	fFailed
)

type changeEvent struct {
	Sender  int
	Flags   eventFlags
	LogLine string
}

type worker struct {
	ID     int
	Inbox  chan Job
	Outbox chan changeEvent
}

func (w *worker) Work() {
	for j := range w.Inbox {
		err := j.Run(w)
		if err != nil {
			w.Printf("Error: %s", err)
			w.Outbox <- changeEvent{Sender: w.ID, Flags: fFailed}
		} else {
			w.Outbox <- changeEvent{Sender: w.ID, Flags: fDone}
		}
	}
}

func (w *worker) Println(ln string) {
	w.Printf("%s", ln)
}

func (w *worker) Printf(format string, argc ...interface{}) {
	ln := fmt.Sprintf(format, argc...)
	for len(ln) > 0 && ln[len(ln)-1] == '\n' {
		ln = ln[0 : len(ln)-1]
	}
	if ln == "" {
		return
	}

	ln = fmt.Sprintf("[%2x] %s  %s", w.ID, time.Now().Format("2006-01-02 15:04:05.000"), ln)
	ln = strings.Replace(ln, "\n", "\n                         ", -1) + "\n"

	w.Outbox <- changeEvent{
		Sender:  w.ID,
		Flags:   fLog,
		LogLine: ln,
	}
}
