package serrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"jobboard/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func TestWith_MatchesKind(t *testing.T) {
	err := serrors.With(serrors.ErrNotFound, "job posting %s not found", "abc")

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.NotErrorIs(t, err, serrors.ErrConflict)
	require.Equal(t, "job posting abc not found", err.Error())
}

func TestWrap_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("duplicate key value violates unique constraint")
	err := serrors.Wrap(serrors.ErrConflict, cause, "already applied")

	require.ErrorIs(t, err, serrors.ErrConflict)
	require.ErrorIs(t, err, cause)
	require.Equal(t, "already applied: "+cause.Error(), err.Error())
}

func TestWrap_SurvivesFurtherWrapping(t *testing.T) {
	err := serrors.With(serrors.ErrUnauthorized, "invalid access token")
	outer := fmt.Errorf("middleware: %w", err)

	require.ErrorIs(t, outer, serrors.ErrUnauthorized)
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"bad request", serrors.With(serrors.ErrBadRequest, "missing field"), http.StatusBadRequest},
		{"conflict", serrors.With(serrors.ErrConflict, "duplicate"), http.StatusBadRequest},
		{"not found", serrors.With(serrors.ErrNotFound, "absent"), http.StatusNotFound},
		{"unauthorized", serrors.With(serrors.ErrUnauthorized, "no token"), http.StatusUnauthorized},
		{"token reused", serrors.With(serrors.ErrTokenReused, "replayed"), http.StatusUnauthorized},
		{"internal", serrors.With(serrors.ErrInternal, "boom"), http.StatusInternalServerError},
		{"plain error", errors.New("unclassified"), http.StatusInternalServerError},
		{
			"outer kind wins over wrapped cause",
			serrors.Wrap(serrors.ErrUnauthorized,
				serrors.With(serrors.ErrNotFound, "employer does not exist"),
				"invalid access token"),
			http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, serrors.HTTPStatus(tt.err))
		})
	}
}

func TestError_KindAndMessage(t *testing.T) {
	err := serrors.With(serrors.ErrTokenReused, "refresh token is expired or used")

	require.Equal(t, serrors.ErrTokenReused, err.Kind())
	require.Equal(t, "refresh token is expired or used", err.Message())
}
