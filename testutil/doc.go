// Package testutil provides deterministic data generation and trusted
// byte-wise reference semantics for validating the copy kernels.
package testutil
