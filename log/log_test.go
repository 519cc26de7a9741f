// Copyright (c) 2025 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package log

import (
	"bytes"
	"testing"

	ethlog "github.com/ethereum/go-ethereum/log"
	"github.com/stretchr/testify/assert"
)

func captureRoot(t *testing.T, verbosity int) *bytes.Buffer {
	prev := ethlog.Root()
	t.Cleanup(func() { ethlog.SetDefault(prev) })

	var buf bytes.Buffer
	SetDefault(&buf, verbosity, false)
	return &buf
}

func TestWithContextFollowsDefault(t *testing.T) {
	// created before the handler is installed, like package level loggers
	logger := WithContext("pkg", "bank")

	buf := captureRoot(t, LegacyLevelInfo)
	logger.Info("deposit", "amount", 100)

	out := buf.String()
	assert.Contains(t, out, "deposit")
	assert.Contains(t, out, "pkg=bank")
	assert.Contains(t, out, "amount=100")
}

func TestVerbosityFilter(t *testing.T) {
	buf := captureRoot(t, LegacyLevelWarn)

	logger := WithContext("pkg", "test")
	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestWith(t *testing.T) {
	buf := captureRoot(t, LegacyLevelTrace)

	base := WithContext("pkg", "bank")
	child := base.With("op", "withdraw")
	child.Trace("step")
	base.Debug("base")

	out := buf.String()
	assert.Contains(t, out, "op=withdraw")
	assert.Contains(t, out, "pkg=bank")
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("op=withdraw")))
}

func TestRootAndDiscard(t *testing.T) {
	buf := captureRoot(t, LegacyLevelInfo)
	Root().Info("root record")
	Info("package record")
	assert.Contains(t, buf.String(), "root record")
	assert.Contains(t, buf.String(), "package record")

	Discard()
	Error("gone")
	assert.NotContains(t, buf.String(), "gone")
}
