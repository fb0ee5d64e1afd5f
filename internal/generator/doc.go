// Package generator produces sets of unique random codes by rejection
// sampling: candidates are drawn from the alphabet and discarded when they
// collide with an already generated code. A capacity check before sampling
// rejects requests that exceed the number of distinct codes the alphabet can
// represent at the requested length; it is the only termination guarantee,
// there is no retry cap inside the loop.
package generator
