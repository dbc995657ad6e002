// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"net/rpc"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/counter"
	"github.com/the-basement/basementd/engine"
	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/certificate"
	"github.com/the-basement/basementd/rpc/handler"
	"github.com/the-basement/basementd/rpc/listeners"
	"github.com/the-basement/basementd/rpc/server"
)

const (
	tlsName = "client_rpc"
)

// globals
type rpcData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	// set once during initialise
	initialised bool
}

// global data
var globalData rpcData

// connections over both listeners
var connectionCountRPC counter.Counter

// Initialise - start the RPC listeners over an engine
//
// registry may be nil to disable the metrics endpoint
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *listeners.HTTPSConfiguration, version string, ops engine.Operations, registry *prometheus.Registry) error {
	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfig, certificateFingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	s := server.Create(log, version, &connectionCountRPC, ops)

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCountRPC,
		s,
		tlsConfig,
		certificateFingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, version, s, registry)
	if nil != err {
		return err
	}

	// all data initialised
	globalData.initialised = true

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}

// ConnectionCount - current RPC connections
func ConnectionCount() uint64 {
	return connectionCountRPC.Uint64()
}

func initialiseHTTPS(configuration *listeners.HTTPSConfiguration, version string, s *rpc.Server, registry *prometheus.Registry) error {
	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Info("disable: http_rpc")
		return nil
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, "http_rpc", configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("http_rpc: SHA3-256 fingerprint: %x", fingerprint)

	var metrics = promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	if nil != registry {
		metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	h := handler.New(
		log,
		s,
		time.Now(),
		version,
		configuration.MaximumConnections,
		&connectionCountRPC,
		metrics,
	)

	httpsListener, err := listeners.NewHTTPS(configuration, log, tlsConfiguration, h)
	if nil != err {
		return err
	}
	return httpsListener.Serve()
}
