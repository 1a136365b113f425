package intset_test

import (
	"testing"

	"github.com/katalvlaran/vcbr/intset"
	"github.com/stretchr/testify/require"
)

func TestSetAddRemoveContains(t *testing.T) {
	s := intset.New(8)
	require.False(t, s.Contains(3))
	require.True(t, s.Add(3))
	require.False(t, s.Add(3))
	require.True(t, s.Contains(3))
	s.Remove(3)
	require.False(t, s.Contains(3))
}

func TestSetClearIsCheapAndCorrect(t *testing.T) {
	s := intset.New(4)
	s.Add(0)
	s.Add(1)
	s.Clear()
	require.False(t, s.Contains(0))
	require.False(t, s.Contains(1))
	require.True(t, s.Add(0))
}

func TestSetManyClearsStayCorrect(t *testing.T) {
	s := intset.New(2)
	for i := 0; i < 1000; i++ {
		s.Add(0)
		require.True(t, s.Contains(0))
		s.Clear()
		require.False(t, s.Contains(0))
	}
}
