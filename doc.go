// Package rpn implements a float64 calculator for infix arithmetic.
//
// Evaluation has three stages. Tokenize splits text into numbers, the
// operators + - * / ^, and parentheses, silently dropping anything else, so
// "3 + 4" and "3+4" are the same expression. A Parser converts the tokens to
// postfix order with the shunting-yard algorithm, turning a '-' that starts
// an operand into a negation. An Evaluator then runs the postfix sequence on
// an operand stack.
//
// All binary operators are left-associative, including exponentiation:
// "2^3^2" is "(2^3)^2", which is 64. Negation binds tighter than everything,
// so "-2^2" is 4 while "-(2^2)" is -4. Division by zero yields an infinity
// rather than an error.
//
// ComputeExpression runs all three stages and formats the result, optionally
// rounded. A Calculator does the same with a fixed set of options, such as
// arbitrary-precision evaluation with Prec or validation with Strict.
package rpn
