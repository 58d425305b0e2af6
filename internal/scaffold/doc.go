// Package scaffold generates a new agent directory from embedded templates. It
// powers the root agentinit command: it creates the fixed directory skeleton,
// renders the manifest, the three config documents and the decision-patterns
// reference, drops .gitkeep markers into directories meant to stay empty, and
// finally checks the generated documents with the manifest package.
package scaffold
