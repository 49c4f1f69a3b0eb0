/*
Package parser turns the flat text format of an uploaded file into a domain.LinearSystem.

# Format

Each non-blank line is a whitespace-delimited list of floating-point numbers. The token
count of the first line fixes the dimension D. The next D-1 lines complete the
coefficient matrix (row-major, D values each). The right-hand side follows, either as one
row of D values or as a column with one value per line:

	2 0        2 0
	0 2        0 2
	4 4        4
	           4

Blank lines are skipped; line numbers in errors refer to physical lines (1-based).
Under the Strict policy (the default) the right-hand side must hold exactly D values;
Permissive absorbs any trailing values into it.
*/
package parser
