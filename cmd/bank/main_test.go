// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizard-labs/wizard/builtin/bank"
)

const (
	adminHex = "0x7567d83b7b8d80addcb281a71d54fc7b3364ffed"
	aliceHex = "0xd3ae78222beadb038203be21ed5ce7c9b1bff602"
)

type runner struct {
	t       *testing.T
	dataDir string
}

func (r *runner) run(cmd string, args ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	argv := append([]string{"bank", cmd, "--data-dir", r.dataDir, "--verbosity", "0"}, args...)
	err := app.Run(argv)
	return out.String(), err
}

func (r *runner) mustRun(cmd string, args ...string) string {
	out, err := r.run(cmd, args...)
	require.NoError(r.t, err, "%s %v", cmd, args)
	return out
}

func TestLifecycle(t *testing.T) {
	r := &runner{t: t, dataDir: t.TempDir()}

	_, err := r.run("status")
	assert.ErrorContains(t, err, "run deploy first")

	out := r.mustRun("deploy", "--from", adminHex)
	assert.Contains(t, out, "reward 10000 WIZ")

	_, err = r.run("deploy", "--from", adminHex)
	assert.ErrorContains(t, err, "already deployed")

	r.mustRun("mint", "--from", adminHex, "--to", aliceHex, "--amount", "100")
	_, err = r.run("mint", "--from", aliceHex, "--to", aliceHex, "--amount", "100")
	assert.ErrorContains(t, err, "only the token owner")

	out = r.mustRun("deposit", "--from", aliceHex, "--amount", "100")
	assert.Contains(t, out, "deposited 100 WIZ")

	out = r.mustRun("balance", "--account", aliceHex)
	assert.Contains(t, out, "balance 0 WIZ, staked 100 WIZ")

	out = r.mustRun("status")
	assert.Contains(t, out, "phase       deposit")
	assert.Contains(t, out, "tranches    2000 / 3000 / 5000 WIZ")
	assert.Contains(t, out, "custody     10100 WIZ")

	_, err = r.run("deposit", "--from", aliceHex, "--amount", "1", "--time-shift", "25h")
	assert.ErrorIs(t, err, bank.ErrDepositWindowClosed)

	_, err = r.run("withdraw", "--from", aliceHex, "--time-shift", "47h")
	assert.ErrorIs(t, err, bank.ErrWithdrawalNotYetAvailable)

	out = r.mustRun("withdraw", "--from", aliceHex, "--time-shift", "49h")
	assert.Contains(t, out, "withdrew 100 WIZ principal and 2000 WIZ yield")

	_, err = r.run("recall", "--from", aliceHex, "--time-shift", "97h")
	assert.ErrorIs(t, err, bank.ErrUnauthorizedCaller)

	out = r.mustRun("recall", "--from", adminHex, "--time-shift", "97h")
	assert.Contains(t, out, "recalled 8000 WIZ")

	out = r.mustRun("balance", "--account", aliceHex)
	assert.Contains(t, out, "balance 2100 WIZ, staked 0 WIZ")

	out = r.mustRun("status", "--time-shift", "97h")
	assert.Contains(t, out, "phase       unlock3\n")
	assert.Contains(t, out, "paid        2000 WIZ")
	assert.Contains(t, out, "recalled    8000 WIZ")
	assert.Contains(t, out, "custody     0 WIZ")
}

func TestFlagValidation(t *testing.T) {
	r := &runner{t: t, dataDir: t.TempDir()}
	r.mustRun("deploy", "--from", adminHex)

	_, err := r.run("deposit", "--amount", "1")
	assert.ErrorContains(t, err, "--from is required")

	_, err = r.run("deposit", "--from", "0x1234", "--amount", "1")
	assert.ErrorContains(t, err, "--from")

	_, err = r.run("deposit", "--from", aliceHex)
	assert.ErrorContains(t, err, "--amount is required")

	_, err = r.run("deposit", "--from", aliceHex, "--amount", "1.2.3")
	assert.ErrorContains(t, err, "--amount")
}
