// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"math/big"
	"sync"
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/cmd/bank/httpserver"
	"github.com/wizard-labs/wizard/log"
	"github.com/wizard-labs/wizard/metrics"
	"github.com/wizard-labs/wizard/wizard"
)

var (
	metricsMonitorPhase    = metrics.LazyLoadGauge("monitor_phase")
	metricsMonitorStaked   = metrics.LazyLoadGauge("monitor_staked_wiz")
	metricsMonitorPool     = metrics.LazyLoadGauge("monitor_pool_wiz")
	metricsMonitorLocked   = metrics.LazyLoadGauge("monitor_locked_wiz")
	metricsMonitorPaid     = metrics.LazyLoadGauge("monitor_paid_wiz")
	metricsMonitorRecalled = metrics.LazyLoadGauge("monitor_recalled_wiz")
)

// wholeTokens truncates an amount to whole WIZ for gauges.
func wholeTokens(v *big.Int) int64 {
	return new(big.Int).Quo(v, wizard.Ether).Int64()
}

// statusView is the JSON form of a bank snapshot. Amounts are in WIZ.
type statusView struct {
	Bank     wizard.Address `json:"bank"`
	Phase    string         `json:"phase"`
	Staked   string         `json:"staked"`
	Pool     string         `json:"pool"`
	Locked   string         `json:"locked"`
	Paid     string         `json:"paid"`
	Recalled string         `json:"recalled"`
	Polled   time.Time      `json:"polled"`
}

// bankMonitor keeps the latest snapshot for the status endpoint.
type bankMonitor struct {
	mu   sync.Mutex
	last *statusView
}

func (m *bankMonitor) snapshot() any {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.last == nil {
		return nil
	}
	v := *m.last
	return &v
}

func monitorAction(ctx *cli.Context) error {
	initLogger(ctx)
	exitSignal := handleExitSignal()

	m := &bankMonitor{}
	if ctx.Bool(enableMetricsFlag.Name) {
		metrics.InitializePrometheusMetrics()
		url, closeFunc, err := httpserver.StartMonitorServer(ctx.String(metricsAddrFlag.Name), m.snapshot)
		if err != nil {
			return err
		}
		log.Info("monitor server started", "url", url)
		defer closeFunc()
	}

	m.poll(exitSignal, ctx, ctx.Duration(pollIntervalFlag.Name))
	return nil
}

func (m *bankMonitor) poll(exitSignal context.Context, ctx *cli.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if err := m.refresh(ctx); err != nil {
			log.Warn("failed to read bank", "err", err)
		}
		select {
		case <-exitSignal.Done():
			return
		case <-ticker.C:
		}
	}
}

// refresh opens the database only for the read, so other commands can run in between.
func (m *bankMonitor) refresh(ctx *cli.Context) error {
	s, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close()

	st, err := readStatus(s)
	if err != nil {
		return err
	}
	locked := new(big.Int).Add(st.tranches.R1, st.tranches.R2)
	locked.Add(locked, st.tranches.R3)

	metricsMonitorPhase().Set(int64(st.phase))
	metricsMonitorStaked().Set(wholeTokens(st.staked))
	metricsMonitorPool().Set(wholeTokens(st.tranches.Pool))
	metricsMonitorLocked().Set(wholeTokens(locked))
	metricsMonitorPaid().Set(wholeTokens(st.totals.Paid))
	metricsMonitorRecalled().Set(wholeTokens(st.totals.Recalled))

	view := &statusView{
		Bank:     st.bank,
		Phase:    st.phase.String(),
		Staked:   wizard.FormatEther(st.staked),
		Pool:     wizard.FormatEther(st.tranches.Pool),
		Locked:   wizard.FormatEther(locked),
		Paid:     wizard.FormatEther(st.totals.Paid),
		Recalled: wizard.FormatEther(st.totals.Recalled),
		Polled:   time.Now().UTC(),
	}
	m.mu.Lock()
	m.last = view
	m.mu.Unlock()

	log.Info("bank status", "phase", st.phase, "staked", view.Staked, "pool", view.Pool)
	return nil
}
