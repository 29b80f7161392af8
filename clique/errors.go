// SPDX-License-Identifier: MIT

package clique

import "errors"

// ErrInvalidParameter indicates a clique request that cannot be satisfied by
// the graph or parameters (negative order, fewer than k+1 nodes).
var ErrInvalidParameter = errors.New("clique: invalid parameter")

// ErrUnknownMode indicates an unrecognised RemovalMode or enumerator name.
var ErrUnknownMode = errors.New("clique: unknown mode")
