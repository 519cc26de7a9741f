// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"flag"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/metrics"
)

func monitorContext(dataDir string) *cli.Context {
	set := flag.NewFlagSet("monitor", flag.ContinueOnError)
	set.String(dataDirFlag.Name, dataDir, "")
	return cli.NewContext(nil, set, nil)
}

func gauge(t *testing.T, name string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() == name {
			return mf.Metric[0].GetGauge().GetValue()
		}
	}
	t.Fatalf("metric %s not found", name)
	return 0
}

func TestMonitorRefresh(t *testing.T) {
	metrics.InitializePrometheusMetrics()

	r := &runner{t: t, dataDir: t.TempDir()}
	r.mustRun("deploy", "--from", adminHex)
	r.mustRun("mint", "--from", adminHex, "--to", aliceHex, "--amount", "300")

	m := &bankMonitor{}
	assert.Nil(t, m.snapshot())

	ctx := monitorContext(r.dataDir)
	require.NoError(t, m.refresh(ctx))
	assert.Equal(t, float64(0), gauge(t, "bank_monitor_staked_wiz"))
	assert.Equal(t, float64(10000), gauge(t, "bank_monitor_locked_wiz"))

	// the store is released between polls
	r.mustRun("deposit", "--from", aliceHex, "--amount", "100")
	require.NoError(t, m.refresh(ctx))
	assert.Equal(t, float64(100), gauge(t, "bank_monitor_staked_wiz"))
	assert.Equal(t, float64(0), gauge(t, "bank_monitor_phase"))

	r.mustRun("deposit", "--from", aliceHex, "--amount", "200")
	exited, cancel := context.WithCancel(context.Background())
	cancel()
	m.poll(exited, ctx, time.Hour)
	assert.Equal(t, float64(300), gauge(t, "bank_monitor_staked_wiz"))

	view, ok := m.snapshot().(*statusView)
	require.True(t, ok)
	assert.Equal(t, "deposit", view.Phase)
	assert.Equal(t, "300", view.Staked)
	assert.Equal(t, "10000", view.Locked)
	assert.Equal(t, "0", view.Pool)
}

func TestMonitorRefreshNotDeployed(t *testing.T) {
	m := &bankMonitor{}
	err := m.refresh(monitorContext(t.TempDir()))
	assert.ErrorContains(t, err, "run deploy first")
	assert.Nil(t, m.snapshot())
}
