// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"time"

	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/log"
)

func envVar(name string) string {
	return "BANK_" + name
}

var (
	dataDirFlag = cli.StringFlag{
		Name:   "data-dir",
		Value:  defaultDataDir(),
		Usage:  "directory for the token and bank database",
		EnvVar: envVar("DATA_DIR"),
	}
	verbosityFlag = cli.IntFlag{
		Name:   "verbosity",
		Value:  log.LegacyLevelInfo,
		Usage:  "log verbosity (0-5)",
		EnvVar: envVar("VERBOSITY"),
	}
	ntpServerFlag = cli.StringFlag{
		Name:   "ntp-server",
		Usage:  "correct the local clock against this NTP server",
		EnvVar: envVar("NTP_SERVER"),
	}
	timeShiftFlag = cli.DurationFlag{
		Name:   "time-shift",
		Hidden: true,
		Usage:  "shift the clock, for trying out later phases",
		EnvVar: envVar("TIME_SHIFT"),
	}
	enableMetricsFlag = cli.BoolFlag{
		Name:   "enable-metrics",
		Usage:  "enables metrics collection",
		EnvVar: envVar("ENABLE_METRICS"),
	}
	metricsAddrFlag = cli.StringFlag{
		Name:   "metrics-addr",
		Value:  "localhost:2112",
		Usage:  "metrics service listening address",
		EnvVar: envVar("METRICS_ADDR"),
	}
	configFlag = cli.StringFlag{
		Name:   "config",
		Usage:  "deployment file (yaml)",
		EnvVar: envVar("CONFIG"),
	}
	fromFlag = cli.StringFlag{
		Name:  "from",
		Usage: "address sending the operation",
	}
	toFlag = cli.StringFlag{
		Name:  "to",
		Usage: "recipient address",
	}
	accountFlag = cli.StringFlag{
		Name:  "account",
		Usage: "address to inspect",
	}
	amountFlag = cli.StringFlag{
		Name:  "amount",
		Usage: "amount in WIZ, decimals allowed",
	}
	pollIntervalFlag = cli.DurationFlag{
		Name:   "poll-interval",
		Value:  time.Minute,
		Usage:  "how often the monitor refreshes bank metrics",
		EnvVar: envVar("POLL_INTERVAL"),
	}

	commonFlags = []cli.Flag{
		dataDirFlag,
		verbosityFlag,
		ntpServerFlag,
		timeShiftFlag,
	}
)

func withCommon(flags ...cli.Flag) []cli.Flag {
	return append(append([]cli.Flag{}, commonFlags...), flags...)
}
