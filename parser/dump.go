/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"strings"

	"devt.de/krotik/common/stringutil"

	"github.com/AnnaPipko/Lisp-interpreter/ast"
)

/*
Dump renders an indented, one-node-per-line debug view of node and
its children - a development aid, not part of the evaluated language,
mirroring how ecal ships a parser-tree pretty-printer alongside its
own recursive-descent parser.
*/
func Dump(node ast.Node) string {
	var b strings.Builder
	dump(&b, node, 0)
	return b.String()
}

func dump(b *strings.Builder, node ast.Node, depth int) {
	indent := stringutil.GenerateRollingString("  ", depth*2)

	if p, ok := node.(*ast.Pair); ok {
		items, tail := p.Elements()
		fmt.Fprintf(b, "%sPair\n", indent)
		for _, it := range items {
			dump(b, it, depth+1)
		}
		if tail.Kind() != ast.KindEmpty {
			fmt.Fprintf(b, "%s. \n", stringutil.GenerateRollingString("  ", (depth+1)*2))
			dump(b, tail, depth+2)
		}
		return
	}

	fmt.Fprintf(b, "%s%s\n", indent, node.Print())
}
