/*
Package pi computes the fractional digits of π in any base from 2 to 62,
to any requested number of digits.

# Representation

[Digits] is a struct with two parts:

  - Integer part: the number 3 written in the requested base.
    It is "11" in base 2, "10" in base 3 and "3" in every base from 4 to 62.
  - Fractional part: exactly the requested number of digits after the
    radix point, including leading and trailing zeros.

For example, 10 digits in base 10 are "3.1415926535" and
8 digits in base 16 are "3.243F6A88".

# Digit Alphabet

Digits from 0 to 9 are written as '0' to '9'.
In bases up to 36, digits from 10 to 35 are written with the uppercase
letters 'A' to 'Z'.
In bases from 37 to 62, digits from 10 to 35 are written with the uppercase
letters 'A' to 'Z', and digits from 36 to 61 with the lowercase letters
'a' to 'z'.

# Algorithm

The digits are computed from the Bailey–Borwein–Plouffe series

	π = Σ (4/(8k+1) - 2/(8k+4) - 1/(8k+5) - 1/(8k+6)) / 16^k

truncated after enough terms.
Each calculation consists of three steps:

 1. [NewPlan] derives the working precision and the number of terms
    from the digit count and the base.
 2. The terms are summed from the last one down to k = 0 at the
    working precision, so that small terms are accumulated before the
    dominant ones. Then 2 is subtracted, leaving a value with an integer
    part of exactly 1.
 3. The value is converted to a digit string in the requested base.
    The leading "1" becomes the radix point, trailing zeros dropped by the
    conversion are restored, and the integer part of π is prepended.

The summation is sequential and its running time grows with the square of
the digit count. A million digits in base 10 take tens of minutes.

# Rounding

By default, digits beyond the requested count are discarded ([Truncate]).
In this mode, a longer expansion always starts with the digits of a shorter one.
[HalfEven] rounds the last digit to nearest instead, so its last digit may
differ from the same position of a longer expansion.

# Backends

The arithmetic is carried out by a backend selected by name in [Options]:

  - "float": [big.Float] values at the working precision.
    This is the default and is always available.
  - "gmp": fixed-point integers of the GNU Multiple Precision library.
    It is available only when the package is built with the gmp tag
    and libgmp is installed.

See [Backends] for the names available in the current build.

# Errors

Errors are returned in the following cases:

  - The digit count is not positive or does not fit in int32.
  - The base is outside [[MinBase], [MaxBase]].
  - The working precision would exceed [MaxBits].
  - [Options] name an unknown backend or rounding mode.

Once a request is accepted, the calculation itself cannot fail.

# Logging

The package logs planning and summation steps at debug level using
[zap]. By default it logs nothing. Use [SetLogger] to install a logger.

[big.Float]: https://pkg.go.dev/math/big#Float
[zap]: https://pkg.go.dev/go.uber.org/zap
*/
package pi
