package metric

import (
	"log/slog"
	"time"

	"calcmd/src-engine/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	commandsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calcmd_commands_total",
		Help: "The number of command lines handed to the engine",
	})
	commandErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "calcmd_command_errors_total",
		Help: "The number of command lines rejected with a typed error",
	})
)

func CountCommand() {
	commandsTotal.Inc()
}

func CountCommandError() {
	commandErrorsTotal.Inc()
}

func calendarCount(as *utils.AppState, tickerInterval *time.Duration) {
	calendarCount := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "calcmd_calendars",
		Help: "The number of calendars in the store",
	})
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(calendarCount) {
				case true:
					slog.Debug("calcmd_calendars metric unregistered")
				case false:
					slog.Warn("calcmd_calendars metric not registered")
				}
				return
			case <-ticker.C:
				count, err := countCalendars(as)
				if err != nil {
					slog.Error("can't count calendars", "error", err)
					continue
				}
				calendarCount.Set(float64(count))
			}
		}
	}()
}

func eventCount(as *utils.AppState, tickerInterval *time.Duration) {
	eventCount := promauto.NewGauge(prometheus.GaugeOpts{
		Name: "calcmd_events",
		Help: "The number of events in the store",
	})
	go func() {
		gracefulShutdownCh := as.CreateGracefulShutdownChan()
		ticker := time.NewTicker(*tickerInterval)
		defer ticker.Stop()
		for {
			select {
			case <-gracefulShutdownCh:
				switch prometheus.Unregister(eventCount) {
				case true:
					slog.Debug("calcmd_events metric unregistered")
				case false:
					slog.Warn("calcmd_events metric not registered")
				}
				return
			case <-ticker.C:
				count, err := countEvents(as)
				if err != nil {
					slog.Error("can't count events", "error", err)
					continue
				}
				eventCount.Set(float64(count))
			}
		}
	}()
}

func Init(as *utils.AppState) {
	tickerInterval := as.Config.GetMetricCollectionInterval()

	calendarCount(as, &tickerInterval)
	eventCount(as, &tickerInterval)
}
