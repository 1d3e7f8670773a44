// Package resolution implements engine.ResolutionStack: the LIFO driver
// that runs a sequence of engine.Resolver frames, each suspendable on a
// player choice via its ResolutionContext.GetPlayerChoice callback
// (spec.md §4.4). It mirrors the teacher toolkit's own notion of a staged
// pipeline, generalized from a fixed three-stage chain to an arbitrary
// push-driven stack so skills can interject their own resolvers mid-flow
// (a Wuxiekeji resolver pushed in response to a trick card's own resolver,
// for instance).
package resolution

import (
	"context"

	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/engine"
	"github.com/MichaelWei1990/LegendOfThreeKingdoms-sub004/sgserr"
)

type frame struct {
	resolver engine.Resolver
	ctx      *engine.ResolutionContext
}

// Stack is the default engine.ResolutionStack implementation.
type Stack struct {
	frames []frame
}

// New constructs an empty resolution Stack.
func New() *Stack {
	return &Stack{}
}

var _ engine.ResolutionStack = (*Stack)(nil)

// Push places r on top of the stack, to run before anything already
// pushed. A resolver that itself calls Push during Resolve is composing a
// nested resolution (spec.md §4.4 "stack, not a single call").
func (s *Stack) Push(r engine.Resolver, rc *engine.ResolutionContext) {
	s.frames = append(s.frames, frame{resolver: r, ctx: rc})
}

// Run pops and resolves frames until the stack is empty, collecting one
// ResolutionResult per frame in pop order. A resolver may push further
// frames during its own Resolve call; those run before control returns
// here, preserving LIFO order (spec.md §4.4).
func (s *Stack) Run(ctx context.Context) []sgserr.ResolutionResult {
	var results []sgserr.ResolutionResult
	for len(s.frames) > 0 {
		top := s.frames[len(s.frames)-1]
		s.frames = s.frames[:len(s.frames)-1]
		results = append(results, top.resolver.Resolve(ctx, top.ctx))
	}
	return results
}

// Len reports how many frames remain unresolved.
func (s *Stack) Len() int {
	return len(s.frames)
}
