// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cyclratio reads or generates a directed integer-weighted
// graph and reports its minimum or maximum cycle ratio under a chosen
// solver dialect.
package main

import "github.com/alidasdan/optimum-cycle-ratio-algorithms/cmd/cyclratio/cmd"

func main() {
	cmd.Execute()
}
