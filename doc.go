/* Package fourth: a minimal stack language, fewer words than FORTH

An Evaluator keeps one stack of 32-bit signed integers. Input is a string of
tokens separated by whitespace; each token either pushes a number or operates
on the stack, strictly left to right:

	Symbol   Needs   Function
	<n>      0       push the decimal integer n (an optional sign is allowed)
	+        2       fold the whole stack by addition
	-        2       fold the whole stack by subtraction
	*        2       fold the whole stack by multiplication
	/        2       fold the whole stack by division
	dup      1       push a copy of the top value
	drop     1       discard the top value
	swap     2       exchange the top two values
	over     2       push a copy of the value under the top
	: ;      0       accepted and ignored; reserved for word definitions

Operator names are case insensitive: DUP, Dup and dup are the same word.

The arithmetic operators are where this language departs from FORTH. Rather
than popping two values and pushing one, they reduce the entire stack, bottom
first, to one value:

	1 2 3 +      leaves 6
	10 3 2 -     leaves (10 - 3) - 2 = 5
	2 3 4 *      leaves 24
	100 5 2 /    leaves (100 / 5) / 2 = 10

Division truncates toward zero (-7 2 / leaves -3), and is refused if any value
it would divide by is zero. Arithmetic wraps around on overflow.

When a token fails, whether for want of stack depth, division by zero, or
because it is neither an operator nor a literal that fits in 32 bits, Eval
stops and returns an error. The stack keeps the effect of every token before
the failing one:

	1 2 + 5 0 /  fails with ErrDivisionByZero, leaving [3 5 0]

Custom words cannot be defined yet. An Evaluator can carry a table of them
(see WithWords), but evaluation never consults it.
*/
package fourth
