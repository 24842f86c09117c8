package demo

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/monadlab/monadlab/internal/catalog"
	"github.com/monadlab/monadlab/pkg/maybe"
	"github.com/monadlab/monadlab/pkg/result"
)

// RunReport describes one pipeline execution.
type RunReport struct {
	ID      uuid.UUID
	Slug    string
	Input   string
	Output  string
	Failed  bool
	Elapsed time.Duration
}

// pipelines maps catalog slugs to their executable after-side. Every
// pipeline collapses to a printable string so the CLI stays uniform.
var pipelines = map[string]func(input string) result.Result[string, error]{
	"parse-age": func(input string) result.Result[string, error] {
		return result.Map(ParseAge(input), func(n int) string {
			return "age " + strconv.Itoa(n)
		})
	},
	"greet": func(input string) result.Result[string, error] {
		return result.Success[string, error](Greet(maybe.Just(input)))
	},
	"discount": func(input string) result.Result[string, error] {
		return result.Map(Discount(input), func(n int) string {
			return strconv.Itoa(n) + "% off"
		})
	},
}

// Runner executes catalog demos against user input.
type Runner struct {
	log *zap.Logger
}

func NewRunner(log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{log: log}
}

// Run executes the pipeline registered for slug. A pipeline failure is not
// an error: the report carries the failure message and Failed is set. An
// error is returned only when slug does not name a runnable demo.
func (r *Runner) Run(slug, input string) (RunReport, error) {
	if catalog.Get(slug).IsNone() {
		return RunReport{}, fmt.Errorf("unknown demo %q", slug)
	}
	pipeline, ok := pipelines[slug]
	if !ok {
		return RunReport{}, fmt.Errorf("demo %q has no runnable pipeline", slug)
	}

	start := time.Now()
	res := pipeline(input)

	report := RunReport{
		ID:    uuid.New(),
		Slug:  slug,
		Input: input,
		Output: result.Finally(res,
			func(s string) string { return s },
			func(err error) string { return err.Error() },
		),
		Failed:  res.IsFailure(),
		Elapsed: time.Since(start),
	}

	r.log.Info("demo run finished",
		zap.String("run_id", report.ID.String()),
		zap.String("slug", report.Slug),
		zap.Bool("failed", report.Failed),
		zap.Duration("elapsed", report.Elapsed),
	)

	return report, nil
}
