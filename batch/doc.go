// Package batch runs texture synthesis for every sample of a sample set.
//
// Each (sample, screenshot) pair is a Job with its own Engine and its own
// seed, derived from the runner seed and the job position. Jobs share no
// mutable state, so they run on a worker pool without locks, and results
// do not depend on scheduling or on the number of workers.
//
// Sweeps run one at a time: cancellation through the context is honored
// between sweeps, and OnFrame observes the field after each sweep.
package batch
