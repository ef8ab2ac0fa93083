package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	var d Diagnostics

	assert.False(t, d.HasErrors())
	assert.NoError(t, d.Error())

	d.AddWarning(CodeUnresolvedType, "odd type", "a.rst", "a.f")
	assert.False(t, d.HasErrors())

	d.AddError(CodeParseFailure, "broken", "b.rst", "")
	assert.True(t, d.HasErrors())
	require.Error(t, d.Error())

	all := d.All()
	require.Len(t, all, 2)
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityWarning, all[1].Severity)
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics

	a.AddError(CodeParseFailure, "broken", "", "")
	b.AddWarning(CodeUnresolvedType, "odd", "", "")
	b.AddInfo("written", "done", "out.pyi", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 1)
	assert.Len(t, a.Warnings, 1)
	assert.Len(t, a.Infos, 1)
}

func TestDiagnosticString(t *testing.T) {
	cases := []struct {
		d    Diagnostic
		want string
	}{
		{
			Diagnostic{Code: CodeParseFailure, Message: "broken", File: "b.rst"},
			"b.rst: [parse-failure] broken",
		},
		{
			Diagnostic{Code: CodeStructuralConflict, Message: "dup", File: "a.rst", Symbol: "mylib"},
			"a.rst mylib: [structural-conflict] dup",
		},
		{
			Diagnostic{Message: "plain"},
			"plain",
		},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.d.String())
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
}
