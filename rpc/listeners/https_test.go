// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners_test

import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"math/rand"
	"net"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/the-basement/basementd/fault"
	"github.com/the-basement/basementd/rpc/fixtures"
	"github.com/the-basement/basementd/rpc/listeners"
)

type testHandler struct{}

func (h testHandler) RPC(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("RPC"))
}

func (h testHandler) Details(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Details"))
}

func (h testHandler) Metrics(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Metrics"))
}

func (h testHandler) Root(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("Root"))
}

func (h testHandler) SetAllow(_ map[string][]*net.IPNet) {}

var client *http.Client

func init() {
	customTransport := http.DefaultTransport.(*http.Transport).Clone()
	customTransport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // ignore certificate verification

	client = &http.Client{
		Transport: customTransport,
	}
}

func TestHttpsListenerServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	allow := "127.0.0.1/32"
	port := rand.Intn(30000) + 30000
	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 5,
		Listen:             []string{fmt.Sprintf("127.0.0.1:%d", port)},
		Allow: map[string][]string{
			"details": {allow},
			"metrics": {allow},
		},
	}

	tlsConfig, _ := testTLS(t)
	h, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), tlsConfig, testHandler{})
	if err != nil {
		t.Fatalf("NewHTTPS with error: %s", err)
	}
	assert.Nil(t, h.Serve(), "wrong Serve")

	paths := map[string]string{
		"/basement/rpc":     "RPC",
		"/basement/details": "Details",
		"/metrics":          "Metrics",
		"/anything":         "Root",
	}
	for path, expected := range paths {
		resp, err := client.Get(fmt.Sprintf("https://127.0.0.1:%d%s", port, path))
		if err != nil {
			t.Fatalf("client get: %s  error: %s", path, err)
		}
		content, _ := ioutil.ReadAll(resp.Body)
		_ = resp.Body.Close()
		assert.Equal(t, expected, string(content), "wrong route for: %s", path)
	}
}

func TestHttpsListenerDisabled(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	h, err := listeners.NewHTTPS(&listeners.HTTPSConfiguration{}, logger.New(fixtures.LogCategory), &tls.Config{}, testHandler{})
	assert.Nil(t, err, "wrong error")
	assert.Nil(t, h, "listener created")
}

func TestHttpsListenerInvalidConfiguration(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	conf := listeners.HTTPSConfiguration{
		MaximumConnections: 0,
		Listen:             []string{"127.0.0.1:9999"},
	}
	_, err := listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, testHandler{})
	assert.Equal(t, fault.MissingParameters, err, "wrong error")

	conf.MaximumConnections = 1
	conf.Allow = map[string][]string{"metrics": {"not-a-network"}}
	_, err = listeners.NewHTTPS(&conf, logger.New(fixtures.LogCategory), &tls.Config{}, testHandler{})
	assert.NotNil(t, err, "bad allow accepted")
}
