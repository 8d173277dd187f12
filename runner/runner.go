package runner

import (
	"iter"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/alu8/alu"
	"github.com/ezrec/alu8/vector"
)

// Sink receives the outcome of every vector, then the summary of the run.
// Calls are serialized by the Runner.
type Sink interface {
	Outcome(outcome Outcome)
	Summary(summary Summary)
}

// Runner checks vectors against the reference model.
type Runner struct {
	Verbose bool // Set to log every outcome.
	Workers int  // Maximum vectors checked concurrently; 0 or 1 is sequential.
}

// Check evaluates a single vector and compares it with the expected values.
func (r *Runner) Check(v vector.Vector) (outcome Outcome) {
	outcome.Vector = v

	result, flags, err := alu.Execute(v.Opcode, uint(v.A), uint(v.B))
	if err != nil {
		outcome.Err = err
		return
	}

	outcome.Result = result
	outcome.Flags = flags
	outcome.Mismatch = compare(v, result, flags)

	return
}

// Run checks every vector from the source, streaming outcomes to the sink.
//
// Outcomes arrive in source order when Workers is 0 or 1; otherwise in
// completion order, with Outcome.Index giving the source order. A source
// error stops the run: the summary covers the vectors yielded before it,
// is still sent to the sink, and the error is returned.
func (r *Runner) Run(vectors iter.Seq2[vector.Vector, error], sink Sink) (summary Summary, err error) {
	var total, passed, failed, errored atomic.Int64
	var mutex sync.Mutex
	by_opcode := map[string]Tally{}

	record := func(outcome Outcome) {
		total.Add(1)
		switch {
		case outcome.Passed():
			passed.Add(1)
		case outcome.Err != nil:
			failed.Add(1)
			errored.Add(1)
		default:
			failed.Add(1)
		}

		mutex.Lock()
		defer mutex.Unlock()

		tally := by_opcode[outcome.Vector.Opcode]
		tally.add(outcome)
		by_opcode[outcome.Vector.Opcode] = tally

		if r.Verbose {
			if outcome.Passed() {
				log.Printf("runner: %d %v: pass", outcome.Index, outcome.Vector.Name)
			} else {
				log.Printf("runner: %d %v: %v", outcome.Index, outcome.Vector.Name, outcome.Error())
			}
		}

		if sink != nil {
			sink.Outcome(outcome)
		}
	}

	start := time.Now()

	var group errgroup.Group
	group.SetLimit(max(r.Workers, 1))

	index := 0
	for v, source_err := range vectors {
		if source_err != nil {
			err = source_err
			break
		}

		n := index
		index++
		group.Go(func() error {
			outcome := r.Check(v)
			outcome.Index = n
			record(outcome)
			return nil
		})
	}

	group.Wait()

	summary = Summary{
		Tally: Tally{
			Total:  int(total.Load()),
			Passed: int(passed.Load()),
			Failed: int(failed.Load()),
			Errors: int(errored.Load()),
		},
		Elapsed:  time.Since(start),
		ByOpcode: by_opcode,
	}

	if r.Verbose {
		log.Printf("runner: %d total, %d passed, %d failed, %d errors in %v",
			summary.Total, summary.Passed, summary.Failed, summary.Errors, summary.Elapsed)
	}

	if sink != nil {
		sink.Summary(summary)
	}

	return
}
