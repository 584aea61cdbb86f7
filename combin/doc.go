// Package combin provides exact and floating-point combinatorics:
// factorials, binomial coefficients and Stirling numbers.
//
// 🚀 Two result families
//
//	The exact functions (Factorial, BinomialCoefficient, StirlingS1,
//	StirlingS2) return int64 and detect overflow instead of wrapping;
//	the float64 functions (FactorialDouble, BinomialCoefficientDouble,
//	LogFactorial, LogBinomial) extend the range through the gamma
//	engine, saturating to +Inf past n = 170 where n! leaves the
//	representable range.
//
// ✨ Contracts
//
//	Exact functions return ErrOverflow when the result does not fit in
//	an int64 and ErrDomain for invalid index pairs; both match with
//	errors.Is. The float64 functions follow the kernel-wide policy
//	instead: domain errors yield NaN, overflow yields +Inf. The cached
//	variants (FactorialDouble, LogFactorial) are immutable after
//	construction; WithCache returns a new instance and never mutates
//	the receiver, so values may be shared freely across goroutines.
package combin
