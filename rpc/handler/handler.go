// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package handler

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/counter"
)

// Handler - HTTP endpoints of the node
type Handler interface {
	Root(http.ResponseWriter, *http.Request)
	RPC(http.ResponseWriter, *http.Request)
	Details(http.ResponseWriter, *http.Request)
	Metrics(http.ResponseWriter, *http.Request)
	SetAllow(map[string][]*net.IPNet)
}

type handler struct {
	sync.RWMutex
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
	count              *counter.Counter
	metrics            http.Handler
}

// New - create the HTTP handler
//
// metrics may be nil to disable the metrics endpoint
func New(log *logger.L, server *rpc.Server, start time.Time, version string, maximumConnections uint64, count *counter.Counter, metrics http.Handler) Handler {
	return &handler{
		log:                log,
		server:             server,
		start:              start,
		version:            version,
		allow:              make(map[string][]*net.IPNet),
		maximumConnections: maximumConnections,
		count:              count,
		metrics:            metrics,
	}
}

// SetAllow - per endpoint networks allowed to call restricted endpoints
func (h *handler) SetAllow(allow map[string][]*net.IPNet) {
	h.Lock()
	h.allow = allow
	h.Unlock()
}

// type to allow rpc system to interface to http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (n int, err error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (n int, err error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// Root - this matches anything not matched and returns error
func (h *handler) Root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// RPC - performs a call to any normal RPC
func (h *handler) RPC(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	err := h.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// Details - node summary for allowed networks
func (h *handler) Details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("details", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	if !h.enter() {
		sendTooManyRequests(w)
		return
	}
	defer h.count.Decrement()

	type reply struct {
		Version string `json:"version"`
		Uptime  string `json:"uptime"`
		RPCs    uint64 `json:"rpcs"`
	}

	sendReply(w, reply{
		Version: h.version,
		Uptime:  time.Since(h.start).String(),
		RPCs:    h.count.Uint64(),
	})
}

// Metrics - prometheus exposition for allowed networks
func (h *handler) Metrics(w http.ResponseWriter, r *http.Request) {
	if nil == h.metrics {
		sendNotFound(w)
		return
	}
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}
	if !h.allowed("metrics", r) {
		h.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}
	h.metrics.ServeHTTP(w, r)
}

// count one more connection; false if over the limit
func (h *handler) enter() bool {
	if h.count.Increment() > h.maximumConnections {
		h.count.Decrement()
		return false
	}
	return true
}

// check the remote address against the networks for an endpoint
func (h *handler) allowed(endpoint string, r *http.Request) bool {
	host := r.RemoteAddr
	if last := strings.LastIndex(host, ":"); last >= 0 {
		host = host[:last]
	}
	ip := net.ParseIP(strings.Trim(host, "[]"))
	if nil == ip {
		return false
	}

	h.RLock()
	defer h.RUnlock()
	for _, network := range h.allow[endpoint] {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}

// send an JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just incase JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
