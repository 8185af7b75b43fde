package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	assert.Equal(t, "A", ColumnLetter(0))
	assert.Equal(t, "B", ColumnLetter(1))
	assert.Equal(t, "Z", ColumnLetter(25))
	assert.Equal(t, "AA", ColumnLetter(26))
	assert.Equal(t, "AZ", ColumnLetter(51))
	assert.Equal(t, "BA", ColumnLetter(52))
}

func TestSumFormula(t *testing.T) {
	assert.Equal(t, "=SUM(B2:B11)", SumFormula("B", 2, 11))
}

func TestGuardedRatioFormula(t *testing.T) {
	got := GuardedRatioFormula("E", "B", 2, 11)
	assert.Equal(t, "=IF(SUM(B2:B11)=0,0,SUM(E2:E11)/SUM(B2:B11))", got)
}
