/*
Package digit implements digit-level arithmetic over integers: decomposing a
value into its digits in an arbitrary base, reconstructing a value from a
digit sequence, digit aggregates (sum, product, count), digit reversal and
palindrome testing, digit indexing and containment, digit-level concatenation,
and the maximum/minimum digit permutation of a value.

Every operation works on the built-in integer types through a type parameter
and comes in two forms: a decimal shortcut (Digits, Sum, Reverse, ...) and a
general radix form (DigitsRadix, SumRadix, ReverseRadix, ...) taking a base
between 2 and MaxBase. The decimal forms are exactly the radix forms with base
10.

Digit sequences are most-significant digit first and represent the magnitude
of the value; zero is always the single-digit sequence [0]. Sign is never part
of a digit sequence: operations that preserve it (Reverse, Concat) reattach it
to the result, and the permutation operations (MakeMax, MakeMin) discard it.

The bigdigit sub-package provides the same operations over math/big integers,
and the digit128 sub-package over 128-bit integers.
*/
package digit
