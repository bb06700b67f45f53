package rlog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadblock/internal/rlog"
)

func TestRecentOrderingAndBound(t *testing.T) {
	l, err := rlog.New(rlog.WithRingCapacity(3))
	assert.NoError(t, err)

	l.Info("a")
	l.Info("b")
	l.Info("c")
	l.Info("d") // evicts "a"

	recent := l.Recent(10)
	assert.Len(t, recent, 3)
	assert.Equal(t, "b", recent[0].Message)
	assert.Equal(t, "c", recent[1].Message)
	assert.Equal(t, "d", recent[2].Message)
}

func TestRecentEmpty(t *testing.T) {
	l := rlog.Nop()
	assert.Empty(t, l.Recent(5))
}

func TestRecentPartialFill(t *testing.T) {
	l, err := rlog.New(rlog.WithRingCapacity(5))
	assert.NoError(t, err)

	l.Warn("only-one")

	recent := l.Recent(5)
	assert.Len(t, recent, 1)
	assert.Equal(t, "WARN", recent[0].Level)
	assert.Equal(t, "only-one", recent[0].Message)
}
