// Package action adapts fallible.Action values into plain func(T) side
// effects accepted by for-each combinators. Quiet discards the failure and
// processing continues with the next element.
//
// A nil action or fallback panics when the adapter is built, never when it is
// called.
package action
