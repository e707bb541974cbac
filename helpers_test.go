package apiversion

import (
	"context"
	"time"
)

type nopLogger struct{}

func (*nopLogger) Debug(event interface{})                 {}
func (*nopLogger) Info(event interface{})                  {}
func (*nopLogger) Warn(event interface{})                  {}
func (*nopLogger) Error(event interface{})                 {}
func (*nopLogger) SetField(name string, value interface{}) {}
func (logger *nopLogger) Copy() Logger {
	return logger
}

var testLogger = &nopLogger{}

func testLogFn(context.Context) Logger { return testLogger }

type nopStat struct{}

func (*nopStat) Gauge(stat string, value float64, tags ...string)        {}
func (*nopStat) Count(stat string, count float64, tags ...string)        {}
func (*nopStat) Histogram(stat string, value float64, tags ...string)    {}
func (*nopStat) Timing(stat string, value time.Duration, tags ...string) {}
func (*nopStat) AddTags(tags ...string)                                  {}
func (*nopStat) GetTags() []string {
	return []string{}
}

var testStat = &nopStat{}

func testStatFn(context.Context) Stat { return testStat }

// countingStat records Count calls by stat name.
type countingStat struct {
	nopStat
	counts map[string]float64
}

func (s *countingStat) Count(stat string, count float64, tags ...string) {
	s.counts[stat] += count
}

// URLParams serves URL parameters from a fixed map.
type URLParams map[string]string

func (p URLParams) Get(_ context.Context, name string) string {
	return p[name]
}
