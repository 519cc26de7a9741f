// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// bank operates a Wizard staking bank kept in a local database.
package main

import (
	"fmt"
	"os"

	cli "gopkg.in/urfave/cli.v1"
)

var (
	version       string
	gitCommit     string
	gitTag        string
	copyrightYear string
)

func fullVersion() string {
	versionMeta := "release"
	if gitTag == "" {
		versionMeta = "dev"
	}
	return fmt.Sprintf("%s-%s-%s", version, gitCommit, versionMeta)
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Version = fullVersion()
	app.Name = "bank"
	app.Usage = "Wizard staking bank"
	app.Copyright = fmt.Sprintf("2025-%s The VeChainThor developers", copyrightYear)
	app.Commands = []cli.Command{
		{
			Name:   "deploy",
			Usage:  "deploy the Wizard token and a bank funded by the administrator",
			Flags:  withCommon(configFlag, fromFlag),
			Action: deployAction,
		},
		{
			Name:   "mint",
			Usage:  "mint WIZ, token owner only",
			Flags:  withCommon(fromFlag, toFlag, amountFlag),
			Action: mintAction,
		},
		{
			Name:   "balance",
			Usage:  "show held and staked WIZ of an account",
			Flags:  withCommon(accountFlag),
			Action: balanceAction,
		},
		{
			Name:   "deposit",
			Usage:  "approve and stake WIZ",
			Flags:  withCommon(fromFlag, amountFlag),
			Action: depositAction,
		},
		{
			Name:   "withdraw",
			Usage:  "withdraw the whole stake with its yield",
			Flags:  withCommon(fromFlag),
			Action: withdrawAction,
		},
		{
			Name:   "recall",
			Usage:  "reclaim undistributed reward, administrator only",
			Flags:  withCommon(fromFlag),
			Action: recallAction,
		},
		{
			Name:   "status",
			Usage:  "show phase, tranches and totals",
			Flags:  withCommon(),
			Action: statusAction,
		},
		{
			Name:   "monitor",
			Usage:  "periodically log bank status and export it as metrics",
			Flags:  withCommon(enableMetricsFlag, metricsAddrFlag, pollIntervalFlag),
			Action: monitorAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
