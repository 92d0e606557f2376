package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/convchain/convchain"
	"github.com/katalvlaran/convchain/grid"
	"github.com/katalvlaran/convchain/imageio"
	"github.com/katalvlaran/convchain/samples"
)

// Job is one synthesis run: screenshot Shot of the sample at 1-based
// position Pass in the set.
type Job struct {
	ID     uuid.UUID
	Pass   int
	Shot   int
	Sample samples.Sample
	Seed   int64
}

// Frame is the state of a job after a sweep. Field is the engine's own
// grid and is only valid during the OnFrame call; clone it to keep it.
type Frame struct {
	Job   Job
	Sweep int
	Field *grid.Grid
	Stats convchain.Stats
}

// Result is a finished job.
type Result struct {
	Job     Job
	Path    string // written file, empty when Runner.Out is empty
	Field   *grid.Grid
	Stats   convchain.Stats
	Regions int // 8-connected regions of true cells in Field
	Elapsed time.Duration
}

// Runner configures a batch. The zero value is usable: it reads exemplars
// from the working directory, writes nothing, uses the default seed and
// one worker per CPU.
type Runner struct {
	Resources string // directory holding <name>.png exemplars
	Out       string // output directory; empty disables writing
	Seed      int64
	Workers   int
	Logger    *log.Logger
	Metrics   *Metrics

	// OnFrame, if set, is called after every sweep of every job. It is
	// called from worker goroutines and must be safe for concurrent use.
	OnFrame func(Frame)
}

func (r *Runner) logger() *log.Logger {
	if r.Logger == nil {
		return log.New(io.Discard, "", 0)
	}

	return r.Logger
}

// Jobs expands set into its jobs, in document order. Seeds depend only on
// r.Seed and the job position.
func (r *Runner) Jobs(set *samples.Set) []Job {
	var jobs []Job
	for i, s := range set.Samples {
		for k := 0; k < s.Screenshots; k++ {
			jobs = append(jobs, Job{
				ID:     uuid.New(),
				Pass:   i + 1,
				Shot:   k,
				Sample: s,
				Seed:   convchain.DeriveSeed(r.Seed, uint64(len(jobs))),
			})
		}
	}

	return jobs
}

// Exemplar loads the exemplar image of the named sample.
func (r *Runner) Exemplar(name string) (*grid.Grid, error) {
	return imageio.Load(filepath.Join(r.Resources, imageio.ExemplarName(name)))
}

// Run synthesizes every job of set and returns the successful results in
// job order. Failures of individual samples or jobs do not stop the others;
// they are joined into the returned error.
func (r *Runner) Run(ctx context.Context, set *samples.Set) ([]Result, error) {
	var errs []error
	exemplars := make(map[string]*grid.Grid, len(set.Samples))
	for _, s := range set.Samples {
		ex, err := r.Exemplar(s.Name)
		if err != nil {
			errs = append(errs, fmt.Errorf("batch: sample %s: %w", s.Name, err))
			continue
		}
		exemplars[s.Name] = ex
	}

	var jobs []Job
	for _, j := range r.Jobs(set) {
		if _, ok := exemplars[j.Sample.Name]; ok {
			jobs = append(jobs, j)
		}
	}

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]Result, len(jobs))
	jobErrs := make([]error, len(jobs))
	queue := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i], jobErrs[i] = r.RunJob(ctx, jobs[i], exemplars[jobs[i].Sample.Name])
			}
		}()
	}
feed:
	for i := range jobs {
		select {
		case queue <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(queue)
	wg.Wait()

	var done []Result
	for i, err := range jobErrs {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if results[i].Field != nil {
			done = append(done, results[i])
		}
	}
	if err := ctx.Err(); err != nil {
		errs = append(errs, fmt.Errorf("batch: %w", err))
	}

	return done, errors.Join(errs...)
}

// RunJob synthesizes a single job from exemplar. The context is checked
// before every sweep.
func (r *Runner) RunJob(ctx context.Context, job Job, exemplar *grid.Grid) (Result, error) {
	s := job.Sample
	lg := r.logger()
	lg.Printf("> %s %d [%s]", s.Name, job.Shot, job.ID)
	start := time.Now()

	res, err := r.synthesize(ctx, job, exemplar)
	res.Elapsed = time.Since(start)
	r.Metrics.observe(res, err)
	if err != nil {
		lg.Printf("! %s %d [%s]: %v", s.Name, job.Shot, job.ID, err)
		return res, err
	}
	lg.Printf("< %s %d [%s] flips=%d/%d regions=%d in %v",
		s.Name, job.Shot, job.ID, res.Stats.Flips, res.Stats.Trials, res.Regions, res.Elapsed)

	return res, nil
}

func (r *Runner) synthesize(ctx context.Context, job Job, exemplar *grid.Grid) (Result, error) {
	s := job.Sample
	res := Result{Job: job}
	e, err := convchain.New(exemplar, s.OutputSize, s.ReceptorSize, s.Temperature, convchain.WithSeed(job.Seed))
	if err != nil {
		return res, fmt.Errorf("batch: %s #%d: %w", s.Name, job.Shot, err)
	}

	for i := 0; i < s.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			res.Stats = e.Stats()
			return res, fmt.Errorf("batch: %s #%d: %w", s.Name, job.Shot, err)
		}
		e.Process(1)
		if r.OnFrame != nil {
			r.OnFrame(Frame{Job: job, Sweep: i + 1, Field: e.Field(), Stats: e.Stats()})
		}
	}

	res.Field = e.Field().Clone()
	res.Stats = e.Stats()
	res.Regions = len(res.Field.Components(true, grid.Conn8))
	if r.Out != "" {
		res.Path = filepath.Join(r.Out, imageio.OutputName(job.Pass, s, job.Shot))
		if err := imageio.Save(res.Path, res.Field); err != nil {
			return res, fmt.Errorf("batch: %s #%d: %w", s.Name, job.Shot, err)
		}
	}

	return res, nil
}
