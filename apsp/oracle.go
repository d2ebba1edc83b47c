// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/longpath/matrix"
)

// Strategy names accepted by ByName.
const (
	NameFloydWarshall = "floyd-warshall"
	NameSPFA          = "spfa"
	NameJohnson       = "johnson"
)

// Oracle computes shortest distances between every ordered pair of nodes,
// together with a witness that reconstructs the paths.
//
// Implementations must not mutate g and must return ErrNegativeCycle
// (wrapped) when some cycle has negative total weight.
type Oracle interface {
	Name() string
	Solve(g *matrix.Cost) (*Result, error)
}

// Default returns the oracle used when none is configured (FloydWarshall).
func Default() Oracle { return FloydWarshall{} }

// Names lists the canonical strategy names in a stable order.
func Names() []string {
	return []string{NameFloydWarshall, NameSPFA, NameJohnson}
}

// ByName resolves a strategy by name, case-insensitively. "fw" is accepted
// as a short alias for Floyd–Warshall.
func ByName(name string) (Oracle, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFloydWarshall, "fw":
		return FloydWarshall{}, nil
	case NameSPFA:
		return SPFA{}, nil
	case NameJohnson:
		return Johnson{}, nil
	}

	return nil, fmt.Errorf("ByName(%q): %w", name, ErrUnknownOracle)
}
