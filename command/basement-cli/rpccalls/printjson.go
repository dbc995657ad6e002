// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Copyright (c) 2026 The Basement Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"
	"fmt"
	"io"
)

// PrintJSON - indented JSON of message, under title if one is given
func PrintJSON(handle io.Writer, title string, message interface{}) error {
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	if "" != title {
		_, err = fmt.Fprintf(handle, "%s:\n%s\n", title, b)
	} else {
		_, err = fmt.Fprintf(handle, "%s\n", b)
	}
	return err
}

// request and reply trace for verbose clients
func (client *Client) trace(title string, message interface{}) {
	if client.verbose {
		_ = PrintJSON(client.handle, title, message)
	}
}
