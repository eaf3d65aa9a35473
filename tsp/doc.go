// Package tsp provides reference solvers used to judge the genetic search.
//
//   - Exact: Held–Karp dynamic programming.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory. Limited to MaxExact cities.
//   - TwoOpt: deterministic first-improvement 2-opt on a visiting order.
//     Complexity: O(iter·n²).
//   - LowerBound: 1-tree bound for instances of any size.
//     Complexity: O(n²).
//
// All of them work on any square matrix.Matrix of non-negative, finite distances
// and treat an order as a closed cycle: the edge from the last city back to
// the first is always part of the cost.
package tsp
