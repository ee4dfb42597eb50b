package value_test

import (
	"testing"

	"github.com/arborcroft/dpgraph/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArray_FloatAccessor_WrongKind(t *testing.T) {
	arr, err := value.NewArray(value.KindInt, []int{3}, []value.Scalar{
		value.IntScalar(1), value.IntScalar(2), value.IntScalar(3),
	})
	require.NoError(t, err)

	_, err = arr.Float()
	assert.ErrorIs(t, err, value.ErrWrongKind)

	ints, err := arr.Int()
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ints)
}

func TestArray_NumColumnsAndRecords(t *testing.T) {
	arr, err := value.NewArray(value.KindFloat, []int{4, 2}, make([]value.Scalar, 8))
	require.NoError(t, err)
	for i := range arr.Shape() {
		_ = i
	}
	cols, err := arr.NumColumns()
	require.NoError(t, err)
	assert.Equal(t, 2, cols)

	rows, err := arr.NumRecords()
	require.NoError(t, err)
	assert.Equal(t, 4, rows)
}

func TestArray_ShapeMismatchRejected(t *testing.T) {
	_, err := value.NewArray(value.KindFloat, []int{3}, make([]value.Scalar, 2))
	assert.ErrorIs(t, err, value.ErrShapeMismatch)
}

func TestArray_CategoriesDeduplicatesAndSorts(t *testing.T) {
	arr, err := value.NewArray(value.KindStr, []int{5}, []value.Scalar{
		value.StrScalar("b"), value.StrScalar("a"), value.StrScalar("b"),
		value.StrScalar("c"), value.StrScalar("a"),
	})
	require.NoError(t, err)

	jagged, err := arr.Categories()
	require.NoError(t, err)
	cats, ok := jagged.Column(0)
	require.True(t, ok)
	require.Len(t, cats, 3)
	assert.Equal(t, "a", cats[0].S)
	assert.Equal(t, "b", cats[1].S)
	assert.Equal(t, "c", cats[2].S)
}

func TestDataframe_RejectsMismatchedRecordCounts(t *testing.T) {
	df := value.NewDataframe()
	a, err := value.NewArray(value.KindFloat, []int{3}, make([]value.Scalar, 3))
	require.NoError(t, err)
	require.NoError(t, df.Set(value.StrKey("x"), a))

	b, err := value.NewArray(value.KindFloat, []int{4}, make([]value.Scalar, 4))
	require.NoError(t, err)
	err = df.Set(value.StrKey("y"), b)
	assert.ErrorIs(t, err, value.ErrColumnMismatch)
}

func TestCastFloat_ImputesUnparsableCells(t *testing.T) {
	arr, err := value.NewArray(value.KindStr, []int{3}, []value.Scalar{
		value.StrScalar("1.5"), value.StrScalar("not-a-number"), value.StrScalar("2.5"),
	})
	require.NoError(t, err)

	out, err := value.CastFloat(arr, 0, 10)
	require.NoError(t, err)
	floats, err := out.Float()
	require.NoError(t, err)
	require.Len(t, floats, 3)
	assert.Equal(t, 1.5, floats[0])
	assert.GreaterOrEqual(t, floats[1], 0.0)
	assert.LessOrEqual(t, floats[1], 10.0)
	assert.Equal(t, 2.5, floats[2])
}

func TestIndexKey_TotalOrder(t *testing.T) {
	assert.True(t, value.Less(value.BoolKey(false), value.IntKey(0)))
	assert.True(t, value.Less(value.IntKey(1), value.IntKey(2)))
	assert.True(t, value.Less(value.IntKey(5), value.StrKey("a")))
	assert.True(t, value.Equal(value.StrKey("x"), value.StrKey("x")))
}
