//go:build !graphdebug

package core

// checkRep is a no-op in release builds; see checkrep_debug.go.
func (g *Graph[N, L]) checkRep() {}
