// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Optsum adds integers given on the command line.

Usage:

	optsum [flags] A B [C...]

Each argument is parsed as a base-10 integer. An argument that does not parse
is treated as an absent value: the whole sum is abandoned, nothing is printed
to standard output and optsum exits with status 1. A sum that does not fit in
an int is an error as well. The -v flag logs every parsed value.

Negative numbers look like flags, so put them after a "--" separator:

	optsum -- -5 3
*/
package main

import (
	_ "embed"

	"go.astrophena.name/optthrow/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
