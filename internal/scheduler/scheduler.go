package scheduler

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"StockScreener/internal/index"
	"StockScreener/internal/model"
	"StockScreener/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Runner produces a report for a query.
type Runner interface {
	Run(ctx context.Context, q model.Query) (*model.Report, error)
}

// Sender delivers formatted messages.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler manages the watchlist report job and chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Runner    Runner
	Notifier  Sender
	Watchlist []model.Query
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, runner Runner, sender Sender, watchlist []model.Query) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Runner:    runner,
		Notifier:  sender,
		Watchlist: watchlist,
		Ctx:       ctx,
	}
}

// Register adds the watchlist report job.
func (s *Scheduler) Register(reportCron string) error {
	if _, err := s.Cron.AddFunc(reportCron, s.reportTask); err != nil {
		return fmt.Errorf("register report task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunReportNow executes the report task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunReportNow() {
	s.reportTask()
}

func (s *Scheduler) reportTask() {
	s.report(s.Ctx)
}

func (s *Scheduler) report(ctx context.Context) {
	log.Printf("[INFO] running watchlist report (%d queries)", len(s.Watchlist))
	failed := 0
	for _, q := range s.Watchlist {
		if ctx.Err() != nil {
			return
		}
		msg, err := s.compare(ctx, q)
		if err != nil {
			failed++
		}
		s.trySend(ctx, msg)
	}
	if failed > 0 {
		log.Printf("[WARN] watchlist report: %d of %d queries failed", failed, len(s.Watchlist))
	}
}

// compare runs one query and returns the message to send for it.
func (s *Scheduler) compare(ctx context.Context, q model.Query) (string, error) {
	r, err := s.Runner.Run(ctx, q)
	if err != nil {
		log.Printf("[ERROR] %s: %v", q, err)
		return notifier.FormatError(q, err), err
	}
	return notifier.FormatReport(r), nil
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, name string, args []string) string {
	switch name {
	case "/report":
		s.report(ctx)
		return ""
	case "/compare":
		q, err := ParseCompareArgs(args)
		if err != nil {
			return "❌ " + err.Error() + "\n\n" + usage
		}
		msg, _ := s.compare(ctx, q)
		return msg
	case "/benchmarks":
		return notifier.FormatBenchmarks()
	default:
		return usage
	}
}

const usage = "Available commands:\n" +
	"• /report - watchlist report\n" +
	"• /compare TICKER [BENCHMARK] [DAYS]\n" +
	"• /benchmarks - supported benchmarks"

// ParseCompareArgs builds a query from "TICKER [BENCHMARK] [DAYS]".
// Benchmark names may contain spaces and digits ("Russell 2000"), so the
// arguments after the ticker are first matched as a whole benchmark name;
// only when that fails is a trailing number taken as DAYS.
func ParseCompareArgs(args []string) (model.Query, error) {
	if len(args) == 0 {
		return model.Query{}, fmt.Errorf("ticker is required")
	}
	q := model.Query{
		Ticker:       strings.ToUpper(args[0]),
		Benchmark:    model.DefaultBenchmark,
		LookbackDays: model.DefaultLookbackDays,
	}
	rest := args[1:]
	if n := len(rest); n > 0 {
		if _, err := index.LookupBenchmark(strings.Join(rest, " ")); err != nil {
			if days, err := strconv.Atoi(rest[n-1]); err == nil {
				q.LookbackDays = days
				rest = rest[:n-1]
			}
		}
	}
	if len(rest) > 0 {
		q.Benchmark = strings.Join(rest, " ")
	}
	if err := q.Validate(); err != nil {
		return model.Query{}, err
	}
	return q, nil
}

func (s *Scheduler) trySend(ctx context.Context, text string) {
	if err := s.Notifier.SendWithRetry(ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
