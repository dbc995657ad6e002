// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keeper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/tidwall/gjson"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/farmrecord"
)

// largest response body accepted from a source
const maximumBodySize = 1 << 20

type fetcher struct {
	log    *logger.L
	client *http.Client
}

func newFetcher(log *logger.L, timeout time.Duration) *fetcher {
	return &fetcher{
		log: log,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (f *fetcher) get(ctx context.Context, url string) ([]byte, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if nil != err {
		return nil, err
	}
	request.Header.Set("Accept", "application/json")

	response, err := f.client.Do(request)
	if nil != err {
		return nil, err
	}
	defer response.Body.Close()

	if http.StatusOK != response.StatusCode {
		return nil, fmt.Errorf("status: %s", response.Status)
	}
	body, err := io.ReadAll(io.LimitReader(response.Body, maximumBodySize))
	if nil != err {
		return nil, err
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON from: %s", url)
	}
	return body, nil
}

// price - first positive price from the sources in order
func (f *fetcher) price(ctx context.Context, sources []SourceConfiguration) (float64, string, error) {
	for _, source := range sources {
		body, err := f.get(ctx, source.URL)
		if nil != err {
			f.log.Warnf("price source: %s  error: %s", source.Name, err)
			continue
		}
		value := gjson.GetBytes(body, source.Path)
		if !value.Exists() {
			f.log.Warnf("price source: %s  path: %q not found", source.Name, source.Path)
			continue
		}
		price := value.Float()
		if price <= 0 {
			f.log.Warnf("price source: %s  invalid price: %q", source.Name, value.Raw)
			continue
		}
		f.log.Infof("price source: %s  price: %f", source.Name, price)
		return price, source.Name, nil
	}
	return 0, "", fault.NoPriceAvailable
}

// yields - average annual yield per bin type over the sources that
// reported it
func (f *fetcher) yields(ctx context.Context, sources []YieldConfiguration) map[farmrecord.BinType]float64 {
	sums := make(map[farmrecord.BinType]float64)
	counts := make(map[farmrecord.BinType]int)

	for _, source := range sources {
		body, err := f.get(ctx, source.URL)
		if nil != err {
			f.log.Warnf("yield source: %s  error: %s", source.Name, err)
			continue
		}
		paths := map[farmrecord.BinType]string{
			farmrecord.Large:  source.Large,
			farmrecord.Medium: source.Medium,
			farmrecord.Small:  source.Small,
		}
		for binType, path := range paths {
			if "" == path {
				continue
			}
			value := gjson.GetBytes(body, path)
			if !value.Exists() {
				continue
			}
			sums[binType] += value.Float()
			counts[binType] += 1
		}
	}

	averages := make(map[farmrecord.BinType]float64, len(sums))
	for binType, sum := range sums {
		averages[binType] = sum / float64(counts[binType])
	}
	f.log.Infof("bin yields: %v", averages)
	return averages
}
