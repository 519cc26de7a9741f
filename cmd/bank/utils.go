// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"context"
	"math/big"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/wizard-labs/wizard/clock"
	"github.com/wizard-labs/wizard/log"
	"github.com/wizard-labs/wizard/wizard"
)

func initLogger(ctx *cli.Context) {
	fd := os.Stderr.Fd()
	useColor := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	log.SetDefault(os.Stderr, ctx.Int(verbosityFlag.Name), useColor)
}

// handleExitSignal returns a context cancelled on SIGINT or SIGTERM.
func handleExitSignal() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		exitSignalCh := make(chan os.Signal, 1)
		signal.Notify(exitSignalCh, os.Interrupt, syscall.SIGTERM)

		sig := <-exitSignalCh
		log.Info("exit for signal", "signal", sig)
		cancel()
	}()
	return ctx
}

func newClock(ctx *cli.Context) (clock.Clock, error) {
	var clk clock.Clock = clock.System{}
	if server := ctx.String(ntpServerFlag.Name); server != "" {
		ntpClock := clock.NewNTP(server)
		if err := ntpClock.Sync(); err != nil {
			return nil, err
		}
		clk = ntpClock
	}
	if shift := ctx.Duration(timeShiftFlag.Name); shift != 0 {
		clk = clock.NewManual(clk.Now().Add(shift))
	}
	return clk, nil
}

func addressFlag(ctx *cli.Context, flag cli.StringFlag) (wizard.Address, error) {
	value := ctx.String(flag.Name)
	if value == "" {
		return wizard.Address{}, errors.Errorf("--%s is required", flag.Name)
	}
	addr, err := wizard.ParseAddress(value)
	if err != nil {
		return wizard.Address{}, errors.Wrapf(err, "--%s", flag.Name)
	}
	return *addr, nil
}

func amountFlagValue(ctx *cli.Context) (*big.Int, error) {
	value := ctx.String(amountFlag.Name)
	if value == "" {
		return nil, errors.Errorf("--%s is required", amountFlag.Name)
	}
	amount, err := wizard.ParseEther(value)
	if err != nil {
		return nil, errors.Wrapf(err, "--%s", amountFlag.Name)
	}
	return amount, nil
}

func defaultDataDir() string {
	if home := homeDir(); home != "" {
		switch runtime.GOOS {
		case "darwin":
			return filepath.Join(home, "Library", "Application Support", "wizard-bank")
		case "windows":
			return filepath.Join(home, "AppData", "Roaming", "wizard-bank")
		default:
			return filepath.Join(home, ".wizard-bank")
		}
	}
	return ""
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}
