package xmetrics

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hashicorp/go-metrics"
	"github.com/selectdb/state_observer/pkg/xerror"
)

const (
	inmemInterval = 10 * time.Second
	inmemRetain   = time.Minute
)

func newConfig(serviceName string) *metrics.Config {
	conf := metrics.DefaultConfig(serviceName)
	conf.EnableHostname = false
	conf.EnableRuntimeMetrics = false
	return conf
}

// InitGlobal routes the global metrics to an in-memory sink and returns it.
func InitGlobal(serviceName string) (*metrics.InmemSink, error) {
	sink := metrics.NewInmemSink(inmemInterval, inmemRetain)
	if _, err := metrics.NewGlobal(newConfig(serviceName), sink); err != nil {
		return nil, xerror.Wrap(err, xerror.Normal, "new global metrics failed")
	}

	return sink, nil
}

// Dump writes the counters and gauges of the newest interval, sorted by key.
func Dump(sink *metrics.InmemSink, w io.Writer) {
	data := sink.Data()
	if len(data) == 0 {
		return
	}
	interval := data[len(data)-1]

	interval.RLock()
	defer interval.RUnlock()

	keys := make([]string, 0, len(interval.Counters))
	for k := range interval.Counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "counter %s = %v\n", k, interval.Counters[k].Sum)
	}

	keys = keys[:0]
	for k := range interval.Gauges {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "gauge %s = %v\n", k, interval.Gauges[k].Value)
	}
}

func Attach(observers int) {
	metrics.IncrCounter(SubjectMetrics().Attach().Tag(), 1)
	metrics.SetGauge(SubjectMetrics().Observers().Tag(), float32(observers))
}

func Detach(removed, observers int) {
	metrics.IncrCounter(SubjectMetrics().Detach().Tag(), float32(removed))
	metrics.SetGauge(SubjectMetrics().Observers().Tag(), float32(observers))
}

func Notify(observers int) {
	metrics.IncrCounter(SubjectMetrics().Notify().Tag(), 1)
	metrics.IncrCounter(ObserverMetrics().Update().Tag(), float32(observers))
}

func StateChanged(state int) {
	metrics.SetGauge(SubjectMetrics().State().Tag(), float32(state))
}
