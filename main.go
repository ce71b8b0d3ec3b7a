// Copyright 2026 TCPFleet Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/tcpfleet/agent-platform/cmd"

func main() {
	cmd.Execute()
}
