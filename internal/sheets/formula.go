package sheets

import "fmt"

// ColumnLetter converts a zero-based column index to its A1 letter form.
func ColumnLetter(i int) string {
	letters := ""
	for i >= 0 {
		letters = string(rune('A'+i%26)) + letters
		i = i/26 - 1
	}
	return letters
}

// SumFormula sums a column over the written data rows.
func SumFormula(col string, firstRow, lastRow int) string {
	return fmt.Sprintf("=SUM(%s%d:%s%d)", col, firstRow, col, lastRow)
}

// GuardedRatioFormula divides column sums with a zero-denominator guard,
// yielding 0 instead of a division error. The guard is applied to every
// ratio column uniformly.
func GuardedRatioFormula(numCol, denCol string, firstRow, lastRow int) string {
	den := fmt.Sprintf("SUM(%s%d:%s%d)", denCol, firstRow, denCol, lastRow)
	num := fmt.Sprintf("SUM(%s%d:%s%d)", numCol, firstRow, numCol, lastRow)
	return fmt.Sprintf("=IF(%s=0,0,%s/%s)", den, num, den)
}
