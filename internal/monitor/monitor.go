package monitor

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sysmonitor/internal/config"
	"sysmonitor/internal/stats"
)

// SampleFunc produces one usage sample. Swappable in tests.
type SampleFunc func() (stats.UsageSample, error)

// Monitor runs the sample-and-log loop: one immediate tick at startup, then
// one tick per configured interval until the context is cancelled.
type Monitor struct {
	cfg    *config.Config
	log    *zap.Logger // file, plus console when verbose
	echo   *zap.Logger // file plus console, always
	sample SampleFunc
}

// New creates a Monitor using the live system sampler.
func New(cfg *config.Config, log, echo *zap.Logger) *Monitor {
	return &Monitor{
		cfg:    cfg,
		log:    log,
		echo:   echo,
		sample: stats.Sample,
	}
}

// Run drives the loop until ctx is cancelled and then writes the two final
// log lines. It returns an error only when the initial sample fails, in which
// case no ticker was ever started.
func (m *Monitor) Run(ctx context.Context) error {
	m.echo.Info(fmt.Sprintf("Starting system monitor. Logging to '%s' every %d seconds.",
		m.cfg.LogFile, m.cfg.Interval))

	s, err := m.sample()
	if err != nil {
		return err
	}
	m.log.Info(s.String())

	ticker := time.NewTicker(time.Duration(m.cfg.Interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.tick()
		case <-ctx.Done():
			m.log.Info("Monitoring stopped.")
			m.log.Info("System monitor script finished.")
			return nil
		}
	}
}

// tick performs one sample-and-log cycle. A collection failure produces an
// error line instead of a usage line; it never stops the loop.
func (m *Monitor) tick() {
	s, err := m.sample()
	if err != nil {
		m.log.Error(fmt.Sprintf("Failed to fetch system data: %v", err))
		return
	}
	m.log.Info(s.String())
}
