// Package app wires configuration, logging, metrics and the planning core
// into a runnable one-shot service.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/avelys/blockplan/config"
	"github.com/avelys/blockplan/core/capacity"
	corelogger "github.com/avelys/blockplan/core/logger"
	"github.com/avelys/blockplan/core/planner"
	"github.com/avelys/blockplan/core/scoring"
	"github.com/avelys/blockplan/infra/logger"
	"github.com/avelys/blockplan/metrics"
	"github.com/avelys/blockplan/pkg/export"
)

// Service runs planning passes according to the loaded configuration.
type Service struct {
	cfg      *config.Config
	log      corelogger.Logger
	sink     metrics.PlanSink
	proposer *planner.Proposer
}

// New builds the service from a validated configuration.
func New(cfg *config.Config) (*Service, error) {
	log := logger.New("planner")

	calc := capacity.Calculator{
		Windows:      cfg.Window.WindowSet(),
		Location:     cfg.Window.Location(),
		BeforeBuffer: time.Duration(cfg.Planner.BeforeBufferMinutes) * time.Minute,
		AfterBuffer:  time.Duration(cfg.Planner.AfterBufferMinutes) * time.Minute,
	}
	scorer := scoring.Scorer{Weights: cfg.Scoring.Weights, Thresholds: cfg.Scoring.Thresholds}

	prop := planner.New(scorer, calc, cfg.LaneModels(), log)
	prop.MaxBlocksPerDay = cfg.Planner.MaxBlocksPerDay
	prop.MinSlotMinutes = cfg.Planner.MinSlotMinutes

	return &Service{
		cfg:      cfg,
		log:      log,
		sink:     metrics.NopSink{},
		proposer: prop,
	}, nil
}

// Run executes one planning pass: load the snapshots, plan, record metrics
// and write the result.
func (s *Service) Run(ctx context.Context) error {
	if err := s.setupSinks(ctx); err != nil {
		return err
	}

	items, err := LoadItems(s.cfg.Input.ItemsPath)
	if err != nil {
		return fmt.Errorf("load items: %w", err)
	}
	events, err := LoadEvents(s.cfg.Input.EventsPath)
	if err != nil {
		return fmt.Errorf("load events: %w", err)
	}

	passTime := time.Now()
	res := s.proposer.ProposeBlocks(items, events, s.cfg.Planner.HorizonDays)
	sum := planner.Summarize(res)

	if err := s.sink.RecordPlanResult(metrics.Records(res, passTime)); err != nil {
		s.log.Errorf("record plan result: %v", err)
	}
	if pr, ok := s.sink.(metrics.PassRecorder); ok {
		if err := pr.RecordPassSummary(sum); err != nil {
			s.log.Errorf("record pass summary: %v", err)
		}
	}

	s.log.Infof("pass complete: %d placed, %d infeasible, placement rate %.2f",
		sum.Placed, sum.Infeasible, sum.PlacementRate)

	return s.writeOutput(res)
}

func (s *Service) setupSinks(ctx context.Context) error {
	var sinks []metrics.PlanSink
	if s.cfg.Metrics.PrometheusEnabled {
		sink, err := metrics.NewPromSink(nil)
		if err != nil {
			return fmt.Errorf("prom sink: %w", err)
		}
		sinks = append(sinks, sink)
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusAddr, s.log); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	if s.cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(s.cfg.Metrics, logger.New("influx-sink")))
	}
	switch len(sinks) {
	case 0:
		s.sink = metrics.NopSink{}
	case 1:
		s.sink = sinks[0]
	default:
		s.sink = metrics.NewMultiSink(sinks...)
	}
	return nil
}

func (s *Service) writeOutput(res planner.PlanResult) error {
	var w io.Writer = os.Stdout
	if s.cfg.Output.Path != "" {
		f, err := os.Create(s.cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		defer f.Close()
		w = f
	}
	switch s.cfg.Output.Format {
	case "csv":
		return export.WriteProposalsCSV(w, res.Proposals)
	default:
		return export.WriteResultJSON(w, res)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
