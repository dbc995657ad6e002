// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keeper

// defaults applied before the configuration file is read
const (
	DefaultSchedule  = "@every 1h"
	DefaultThreshold = 5.0 // percent price movement
	DefaultSpread    = 300 // basis points
	DefaultHistory   = 24  // price samples
	DefaultTimeout   = 10  // seconds per HTTP request
)

// SourceConfiguration - one HTTP JSON price source
//
// path is a gjson path to the price, e.g. "solana.usd"
type SourceConfiguration struct {
	Name string `gluamapper:"name" json:"name"`
	URL  string `gluamapper:"url" json:"url"`
	Path string `gluamapper:"path" json:"path"`
}

// YieldConfiguration - one HTTP JSON source of annual yields per bin
// type, each path selects a fraction such as 0.045
type YieldConfiguration struct {
	Name   string `gluamapper:"name" json:"name"`
	URL    string `gluamapper:"url" json:"url"`
	Large  string `gluamapper:"large" json:"large"`
	Medium string `gluamapper:"medium" json:"medium"`
	Small  string `gluamapper:"small" json:"small"`
}

// Configuration - keeper settings from the daemon configuration file
type Configuration struct {
	Enabled    bool                  `gluamapper:"enabled" json:"enabled"`
	Schedule   string                `gluamapper:"schedule" json:"schedule"`
	PrivateKey string                `gluamapper:"private_key" json:"-"`
	Farms      []string              `gluamapper:"farms" json:"farms"`
	Threshold  float64               `gluamapper:"threshold" json:"threshold"`
	Spread     uint64                `gluamapper:"spread" json:"spread"`
	History    int                   `gluamapper:"history" json:"history"`
	Timeout    int                   `gluamapper:"timeout" json:"timeout"`
	Prices     []SourceConfiguration `gluamapper:"prices" json:"prices"`
	Yields     []YieldConfiguration  `gluamapper:"yields" json:"yields"`
}

// NewConfiguration - configuration with all defaults set
func NewConfiguration() Configuration {
	return Configuration{
		Schedule:  DefaultSchedule,
		Threshold: DefaultThreshold,
		Spread:    DefaultSpread,
		History:   DefaultHistory,
		Timeout:   DefaultTimeout,
	}
}
