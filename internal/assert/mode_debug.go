//go:build debug

package assert

const panicOnViolation = true
