// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceHistory(t *testing.T) {
	h := newPriceHistory(3)

	assert.Equal(t, 0.0, h.add(100), "single sample")
	assert.InDelta(t, 10.0, h.add(110), 0.0001, "rise")
	assert.InDelta(t, 10.0, h.add(90), 0.0001, "fall is absolute")
	assert.Equal(t, 3, h.size(), "full")

	// oldest sample is now 110
	assert.InDelta(t, 0.0, h.add(110), 0.0001, "window moved")
	assert.Equal(t, 3, h.size(), "limit")
}

func TestPriceHistoryMinimumLimit(t *testing.T) {
	h := newPriceHistory(0)

	h.add(50)
	h.add(60)
	assert.InDelta(t, 50.0, h.add(90), 0.0001, "two sample window")
	assert.Equal(t, 2, h.size(), "limit")
}
