// SPDX-License-Identifier: ISC
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/the-basement/basementd/configuration"
	"github.com/the-basement/basementd/fault"
)

type rpcSection struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections"`
	Listen             []string `gluamapper:"listen"`
}

type testConfiguration struct {
	DataDirectory string            `gluamapper:"data_directory"`
	Chain         string            `gluamapper:"chain"`
	Threshold     float64           `gluamapper:"threshold"`
	Levels        map[string]string `gluamapper:"levels"`
	ClientRPC     rpcSection        `gluamapper:"client_rpc"`
}

const luaConfiguration = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.chain = "testing"
M.threshold = 2.5

M.levels = {
    main = "info",
    engine = "warn",
}

M.client_rpc = {
    maximum_connections = 50,
    listen = {
        "127.0.0.1:2130",
        "[::1]:2130",
    },
}

return M
`

func writeFile(t *testing.T, content string) string {
	dir, err := ioutil.TempDir("", "configuration")
	if !assert.Nil(t, err, "temp dir") {
		t.FailNow()
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	name := filepath.Join(dir, "basementd.conf")
	err = ioutil.WriteFile(name, []byte(content), 0600)
	if !assert.Nil(t, err, "write") {
		t.FailNow()
	}
	return name
}

func TestParseConfigurationFile(t *testing.T) {
	name := writeFile(t, luaConfiguration)

	c := &testConfiguration{
		Chain: "live",
		ClientRPC: rpcSection{
			MaximumConnections: 10,
		},
	}
	err := configuration.ParseConfigurationFile(name, c)
	assert.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(name)+"/", c.DataDirectory, "data directory from arg")
	assert.Equal(t, "testing", c.Chain, "chain")
	assert.Equal(t, 2.5, c.Threshold, "threshold")
	assert.Equal(t, "warn", c.Levels["engine"], "levels")
	assert.Equal(t, uint64(50), c.ClientRPC.MaximumConnections, "connections")
	assert.Equal(t, []string{"127.0.0.1:2130", "[::1]:2130"}, c.ClientRPC.Listen, "listen")
}

func TestParseConfigurationKeepsDefaults(t *testing.T) {
	name := writeFile(t, `return { chain = "local" }`)

	c := &testConfiguration{
		Threshold: 5,
	}
	err := configuration.ParseConfigurationFile(name, c)
	assert.Nil(t, err, "parse")
	assert.Equal(t, "local", c.Chain, "chain")
	assert.Equal(t, 5.0, c.Threshold, "default kept")
}

func TestParseConfigurationErrors(t *testing.T) {
	name := writeFile(t, `return { chain = "local" }`)

	var c testConfiguration
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile(name, c), "not a pointer")

	s := "string"
	assert.Equal(t, fault.InvalidStructPointer, configuration.ParseConfigurationFile(name, &s), "not a struct")

	assert.Equal(t, fault.MissingParameters, configuration.ParseConfigurationFile(writeFile(t, `x = 1`), &c), "no table returned")

	assert.NotNil(t, configuration.ParseConfigurationFile(writeFile(t, `return {`), &c), "syntax error")
	assert.NotNil(t, configuration.ParseConfigurationFile(name+".missing", &c), "missing file")
}
