package schedulers

import "context"

type jobFunc struct {
	name string
	run  func(ctx context.Context) error
}

// NewJobFunc adapts a plain function into a Job.
func NewJobFunc(name string, run func(ctx context.Context) error) Job {
	return jobFunc{name: name, run: run}
}

func (j jobFunc) Name() string { return j.name }

func (j jobFunc) Run(ctx context.Context) error { return j.run(ctx) }
