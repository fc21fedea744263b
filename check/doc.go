// Package check implements the structural-correctness checker: decomposability
// of And nodes and determinism of Or nodes. The semantic (SAT-based)
// determinism fallback can be skipped with WithStructuralOnly(), trading
// completeness for linear-time checking when the caller already trusts the
// compiler's branch-labeling discipline. Skipping Check entirely is a
// caller-level decision (the CLI's --do-not-check), documented as leaving
// later query results undefined.
package check
