package classnames

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	suierrors "github.com/alexisbeaulieu97/suikit/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		expr string
		want string
	}{
		{expr: "ui", want: "ui"},
		{expr: "key:active", want: "active"},
		{expr: "key:active=false", want: ""},
		{expr: "value-key:attached=top", want: "top attached"},
		{expr: "key-or-value-key:pointing", want: "pointing"},
		{expr: "key-or-value-key:pointing=left", want: "left pointing"},
		{expr: "value-key-or-key:padded=very", want: "very padded"},
		{expr: "value-key-or-key:padded=,true", want: "padded"},
		{expr: "multiple:only=mobile tablet", want: "mobile only tablet only"},
		{expr: "text-align:justified", want: "justified"},
		{expr: "vertical-align:bottom", want: "bottom aligned"},
		{expr: "width:4=wide column", want: "four wide column"},
		{expr: "width:equal=column", want: "equal width"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			arg, err := Parse(tc.expr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Name(arg))
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	for _, expr := range []string{"", "   ", "shout:loud", "value-key:=top"} {
		_, err := Parse(expr)
		var validationErr *suierrors.ValidationError
		require.ErrorAs(t, err, &validationErr, expr)
	}
}

func TestParseAll(t *testing.T) {
	t.Parallel()

	args, err := ParseAll([]string{"ui", "key:fluid", "key-or-value-key:pointing=top", "dropdown"})
	require.NoError(t, err)
	assert.Equal(t, "ui fluid top pointing dropdown", Name(args...))

	_, err = ParseAll([]string{"ui", "bogus:x"})
	require.Error(t, err)
}
