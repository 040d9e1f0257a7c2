// Package fractions implements exact arithmetic over fractions with 32-bit
// components, and a calculator for whitespace-delimited infix expressions
// over them.
//
// A Rational is always reduced with its sign in the numerator, and results
// that outgrow 32 bits saturate to NaN or a signed infinity instead of
// wrapping. Expressions are fraction literals like "11", "-27/9", or
// "5_3/8" alternating with the operators + - * /, where * and / bind
// tighter and equal precedence evaluates left to right:
//
//	r, err := fractions.Solve("1_3/5 + 1/2 * 3")
//
// Values are immutable, so the package is safe for concurrent use.
package fractions
