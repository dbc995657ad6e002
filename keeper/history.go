// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keeper

import (
	"math"
)

// the most recent prices, oldest first
type priceHistory struct {
	samples []float64
	limit   int
}

func newPriceHistory(limit int) *priceHistory {
	if limit < 2 {
		limit = 2
	}
	return &priceHistory{
		samples: make([]float64, 0, limit),
		limit:   limit,
	}
}

// add a sample and return the absolute percentage change from the
// oldest retained sample; zero until two samples are held
func (h *priceHistory) add(price float64) float64 {
	h.samples = append(h.samples, price)
	if len(h.samples) > h.limit {
		h.samples = h.samples[len(h.samples)-h.limit:]
	}
	if len(h.samples) < 2 {
		return 0
	}
	oldest := h.samples[0]
	if 0 == oldest {
		return 0
	}
	return math.Abs((price - oldest) / oldest * 100)
}

func (h *priceHistory) size() int {
	return len(h.samples)
}
