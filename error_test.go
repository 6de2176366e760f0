package queen_test

import (
	"testing"

	"github.com/advdv/queen"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorCode(t *testing.T) {
	err1 := queen.NewError(queen.CodeBadRequest, errors.New("foo"))
	require.Equal(t, queen.Code(400), err1.Code())
	require.Equal(t, queen.CodeBadRequest, queen.CodeOf(err1))
	require.Equal(t, "Bad Request: foo", err1.Error())

	require.Equal(t, queen.CodeBadRequest, queen.CodeOf(errors.Wrap(err1, "wrapped")))
	require.Equal(t, queen.CodeUnknown, queen.CodeOf(errors.New("bar")))
	require.Equal(t, "Unknown: rab", queen.NewError(900, errors.New("rab")).Error())
}

func TestSealedIsConflict(t *testing.T) {
	require.True(t, errors.Is(queen.ErrSealed, queen.ErrConflict))
	require.False(t, errors.Is(queen.ErrConflict, queen.ErrSealed))
}
