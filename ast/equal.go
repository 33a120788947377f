/*
 * ECAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package ast

/*
structEqualNode implements the structural recursion equal? performs
once it has decided both sides are Node-valued: it walks the node
shapes directly rather than re-evaluating them, so a quoted symbol
compares by name instead of being looked up in any scope.
*/
func structEqualNode(a, b Node) bool {
	if a.Kind() == KindEmpty && b.Kind() == KindEmpty {
		return true
	}

	switch an := a.(type) {
	case *constNode:
		bn, ok := b.(*constNode)
		return ok && an.v.StructEqual(bn.v)

	case *varNode:
		bn, ok := b.(*varNode)
		return ok && an.name == bn.name

	case *Pair:
		bn, ok := b.(*Pair)
		if !ok {
			return false
		}

		aItems, aTail := an.Elements()
		bItems, bTail := bn.Elements()

		aProper := aTail.Kind() == KindEmpty
		bProper := bTail.Kind() == KindEmpty
		if aProper != bProper {
			return false
		}
		if len(aItems) != len(bItems) {
			return false
		}
		for i := range aItems {
			if !structEqualNode(aItems[i], bItems[i]) {
				return false
			}
		}
		if !aProper {
			return structEqualNode(aTail, bTail)
		}
		return true

	default:
		return a == b
	}
}
