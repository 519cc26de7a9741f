// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func gather(t *testing.T) map[string]*dto.MetricFamily {
	metricFamilies, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	families := make(map[string]*dto.MetricFamily)
	for _, mf := range metricFamilies {
		families[mf.GetName()] = mf
	}
	return families
}

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	count := Counter("deposits")
	countVec := CounterVec("operations", []string{"op"})
	gauge := Gauge("phase")
	hist := HistogramVec("duration", []string{"op"}, BucketOperationMs)

	count.Add(3)
	Counter("deposits").Add(2)

	total := 0
	for i := range 10 {
		op := strconv.Itoa(i % 2)
		countVec.AddWithLabel(int64(i), map[string]string{"op": op})
		hist.ObserveWithLabels(int64(i), map[string]string{"op": op})
		total += i
	}

	gauge.Set(4)
	gauge.Add(-1)

	families := gather(t)

	require.Equal(t, float64(5), families["bank_deposits"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(3), families["bank_phase"].Metric[0].GetGauge().GetValue())

	sumCountVec := families["bank_operations"].Metric[0].GetCounter().GetValue() +
		families["bank_operations"].Metric[1].GetCounter().GetValue()
	require.Equal(t, float64(total), sumCountVec)

	sumHist := families["bank_duration"].Metric[0].GetHistogram().GetSampleSum() +
		families["bank_duration"].Metric[1].GetHistogram().GetSampleSum()
	require.Equal(t, float64(total), sumHist)

	require.NotNil(t, HTTPHandler())
}

func TestLazyLoading(t *testing.T) {
	metrics = defaultNoopMetrics() // make sure it starts in the default state of noopMeter

	for _, a := range []any{
		Gauge("noopGauge"),
		Counter("noopCounter"),
		CounterVec("noopCounter", nil),
		HistogramVec("noopHist", nil, nil),
	} {
		require.IsType(t, &noopMeters{}, a)
	}
	require.Nil(t, HTTPHandler())

	lazyGauge := LazyLoadGauge("lazyGauge")
	lazyCounter := LazyLoadCounter("lazyCounter")
	lazyCounterVec := LazyLoadCounterVec("lazyCounterVec", nil)
	lazyHistogramVec := LazyLoadHistogramVec("lazyHistogramVec", nil, nil)

	// after initialization, newly created metrics become of the prometheus type
	InitializePrometheusMetrics()

	require.IsType(t, &promGaugeMeter{}, lazyGauge())
	require.IsType(t, &promCountMeter{}, lazyCounter())
	require.IsType(t, &promCountVecMeter{}, lazyCounterVec())
	require.IsType(t, &promHistogramVecMeter{}, lazyHistogramVec())
}
