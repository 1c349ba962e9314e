package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test constants.
const (
	testStart5  = 5
	testEnd15   = 15
	testStart3  = 3
	testEnd7    = 7
	testStart7  = 7
	testEnd16   = 16
	testEnd12   = 12
	testStart4  = 4
	testEnd16b  = 16
	testPoint10 = 10
	testPoint15 = 15
)

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	got, err := New(testStart5, testEnd15)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Start)
	assert.Equal(t, 15, got.End)
}

func TestNew_StartAfterEnd(t *testing.T) {
	t.Parallel()

	_, err := New(testEnd15, testStart5)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestNew_NegativeBound(t *testing.T) {
	t.Parallel()

	_, err := New(-1, testEnd15)
	require.ErrorIs(t, err, ErrInvalidInterval)
}

func TestValid_ZeroValueIsInvalid(t *testing.T) {
	t.Parallel()

	var zero Interval[int]
	assert.False(t, zero.Valid())
}

func TestValid_NonEmptyRange(t *testing.T) {
	t.Parallel()

	iv, err := New(testStart5, testEnd15)
	require.NoError(t, err)
	assert.True(t, iv.Valid())
}

func TestContains_HalfOpenBoundary(t *testing.T) {
	t.Parallel()

	iv, err := New(testStart5, testEnd15)
	require.NoError(t, err)

	assert.True(t, iv.Contains(testStart5))
	assert.False(t, iv.Contains(testEnd15))
	assert.True(t, iv.Contains(testPoint10))
}

func TestLess_OrdersByStartOnly(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart7, End: testEnd12}

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
}

func TestEqual_IgnoresEnd(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart5, End: testEnd12}

	assert.True(t, a.Equal(b))
}

func TestString_HalfOpenNotation(t *testing.T) {
	t.Parallel()

	iv := Interval[int]{Start: testStart5, End: testEnd15}
	assert.Equal(t, "[5,15[", iv.String())
}

func TestOverlap_TouchingBoundaryDoesNotOverlap(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testEnd15, End: testPoint15 + testEnd12}

	assert.False(t, Overlap(a, b))
}

func TestOverlap_OverlappingRanges(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart7, End: testEnd16}

	assert.True(t, Overlap(a, b))
}

func TestDifference_LeftResidualOnly(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart3, End: testEnd7}

	left, right := Difference(a, b)
	assert.Equal(t, Interval[int]{Start: testStart5, End: testEnd7}, left)
	assert.False(t, right.Valid())
}

func TestDifference_RightResidualOnly(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart3, End: testEnd7}

	left, right := Difference(a, b)
	assert.False(t, left.Valid())
	assert.Equal(t, Interval[int]{Start: testStart7, End: testEnd15}, right)
}

func TestDifference_BothResiduals(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart7, End: testEnd12}

	left, right := Difference(a, b)
	assert.Equal(t, Interval[int]{Start: testStart5, End: testEnd7}, left)
	assert.Equal(t, Interval[int]{Start: testEnd12, End: testEnd15}, right)
}

func TestDifference_FullyCovered(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart4, End: testEnd16b}

	left, right := Difference(a, b)
	assert.False(t, left.Valid())
	assert.False(t, right.Valid())
}

func TestDifference_Disjoint(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: 100, End: 200}

	left, right := Difference(a, b)
	assert.False(t, left.Valid())
	assert.False(t, right.Valid())
}

func TestIntersect_Overlapping(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart3, End: testEnd7}

	assert.Equal(t, Interval[int]{Start: testStart5, End: testEnd7}, Intersect(a, b))
}

func TestIntersect_Contained(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart4, End: testEnd16b}

	assert.Equal(t, a, Intersect(a, b))
}

func TestIntersect_Disjoint(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: 100, End: 200}

	assert.False(t, Intersect(a, b).Valid())
}

func TestUnion_Overlapping(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart3, End: testEnd7}

	assert.Equal(t, Interval[int]{Start: testStart3, End: testEnd15}, Union(a, b))
}

func TestUnion_Contained(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: testStart4, End: testEnd16b}

	assert.Equal(t, b, Union(a, b))
}

func TestUnion_Disjoint(t *testing.T) {
	t.Parallel()

	a := Interval[int]{Start: testStart5, End: testEnd15}
	b := Interval[int]{Start: 100, End: 200}

	assert.False(t, Union(a, b).Valid())
}
