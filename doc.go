// Package lvlayout is your in-memory toolkit for constraint-based layout:
// an incremental Cassowary linear-arithmetic solver plus an element/edge
// layer for positioning rectangular elements on a page.
//
// 🚀 What is lvlayout?
//
//	A modern, pure-Go library that brings together:
//		• cassowary/ — the incremental simplex solver: variables, linear
//		  expressions, prioritized constraints, add/remove/suggest/query
//		• layout/    — named elements with x/y/width/height variables,
//		  edge alignment, relative placement, and solution snapshots
//
// ✨ Why choose lvlayout?
//
//   - Incremental – constraints are added and withdrawn without re-solving
//     the whole system from scratch
//   - Prioritized – Required always holds (or the add is rejected);
//     Strong/Medium/Weak are satisfied best-effort, weighted
//   - Pure Go – no cgo, no hidden deps
//   - Predictable – sentinel errors, errors.Is discipline, epsilon-bounded
//     numerics
//
// Quick ASCII example:
//
//	┌─────────┐ gap ┌─────────┐
//	│ sidebar │◄───►│ content │      sidebar.width = 200 (Required)
//	└─────────┘     └─────────┘      content.left  = sidebar.right + gap
//
// Dive into cassowary/doc.go and layout/doc.go for full API essays, and the
// examples/ directory for runnable scenarios.
//
//	go get github.com/katalvlaran/lvlayout
package lvlayout
