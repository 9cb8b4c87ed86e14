package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClearNameAttackTable(t *testing.T) {
	assert.Equal(t, uint32(0), Single.Attack())
	assert.Equal(t, uint32(1), Double.Attack())
	assert.Equal(t, uint32(2), Triple.Attack())
	assert.Equal(t, uint32(4), Quad.Attack())
	assert.Equal(t, uint32(4), AllSpinSingle.Attack())
	assert.Equal(t, uint32(4), AllSpinDouble.Attack())
	assert.Equal(t, uint32(6), AllSpinTriple.Attack())
	assert.Equal(t, uint32(10), PerfectClear.Attack())
}

func TestComboBonusSaturatesAtTableEnd(t *testing.T) {
	assert.Equal(t, uint32(0), comboBonus(0))
	assert.Equal(t, uint32(1), comboBonus(2))
	assert.Equal(t, uint32(4), comboBonus(uint32(len(ComboTable)-1)))
	assert.Equal(t, uint32(4), comboBonus(uint32(len(ComboTable)+50)))
}

func TestClearAttackMatchesSpinAndLineCount(t *testing.T) {
	assert.Equal(t, uint32(0), clearAttack(false, 1))
	assert.Equal(t, uint32(4), clearAttack(false, 4))
	assert.Equal(t, uint32(4), clearAttack(true, 1))
	assert.Equal(t, uint32(6), clearAttack(true, 3))
}

func TestClearAttackPanicsOnImpossibleLineCount(t *testing.T) {
	assert.Panics(t, func() { clearAttack(false, 5) })
	assert.Panics(t, func() { clearAttack(true, 4) })
}
