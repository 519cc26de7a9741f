// Copyright (c) 2025 The VeChainThor developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package bank

import (
	"time"

	"github.com/wizard-labs/wizard/builtin/bank/reverts"
	"github.com/wizard-labs/wizard/metrics"
)

var (
	metricOperations        = metrics.LazyLoadCounterVec("operations_count", []string{"op", "result"})
	metricOperationDuration = metrics.LazyLoadHistogramVec("operation_duration_ms", []string{"op"}, metrics.BucketOperationMs)
	metricPhase             = metrics.LazyLoadGauge("phase")
)

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case IsTransferFailed(err):
		return "transfer_failed"
	case reverts.IsRevertErr(err):
		return "revert"
	default:
		return "error"
	}
}

func observe(op string, started time.Time, err error) {
	metricOperations().AddWithLabel(1, map[string]string{"op": op, "result": resultLabel(err)})
	metricOperationDuration().ObserveWithLabels(time.Since(started).Milliseconds(), map[string]string{"op": op})
}
