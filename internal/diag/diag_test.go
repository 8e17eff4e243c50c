package diag

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostic_StringIncludesPhaseCodeAndLine(t *testing.T) {
	d := New(TyMismatch, 12, "declared int, inferred float")
	assert.Equal(t, "types:12: [TY002] declared int, inferred float", d.String())
}

func TestDiagnostic_StringIncludesFixWhenPresent(t *testing.T) {
	d := New(ParMissingAnnotation, 3, "x has no type").WithFix("add ': int'")
	assert.Contains(t, d.String(), "suggested fix: add ': int'")
}

func TestDiagnostic_PhaseFallsBackToInternalForUnknownCode(t *testing.T) {
	d := New("ZZZ999", 1, "mystery")
	assert.Equal(t, PhaseInternal, d.Phase())
}

func TestBag_AddfAccumulatesInOrder(t *testing.T) {
	var b Bag
	b.Addf(ParDuplicateName, 1, "name %q already defined", "x")
	b.Addf(ParMissingReturn, 5, "missing return")

	a := assert.New(t)
	a.True(b.HasErrors())
	a.Len(b.Items(), 2)
	a.Equal(ParDuplicateName, b.Items()[0].Code)
	a.Contains(b.Items()[0].Message, `"x"`)
}

func TestBag_EmptyHasNoErrors(t *testing.T) {
	var b Bag
	assert.False(t, b.HasErrors())
	assert.Empty(t, b.Items())
}

func TestMarshalDeterministic_SortsObjectKeys(t *testing.T) {
	d := New(TyMismatch, 4, "bad type").Encode()
	out, err := MarshalDeterministic(d)
	assert.NoError(t, err)
	assert.Equal(t, `{"line":4,"message":"bad type","phase":"types","rule_id":"TY002","severity":"error"}`, string(out))
}

func TestEncodeJSONLines_OneObjectPerDiagnostic(t *testing.T) {
	items := []Diagnostic{
		New(ParDuplicateName, 1, "dup"),
		New(TyMismatch, 2, "mismatch"),
	}
	out, err := EncodeJSONLines(items)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"rule_id":"PAR008"`)
	assert.Contains(t, lines[1], `"rule_id":"TY002"`)
}
