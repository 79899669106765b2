package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFiltersWithNoPatternsMatchEverything(t *testing.T) {
	var filters RegexFilters
	assert.True(t, filters.AsFilter(TestID{Path: []string{"anything", "at all"}}))
}

func TestRegexFiltersMustMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^imoon/"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"imoon", "execute"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"iecho", "execute"}}))
}

func TestRegexFiltersMustNotMatch(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustNotMatch.Set("display data"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"imoon", "execute"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"imoon", "display data"}}))
}

func TestRegexFiltersCombined(t *testing.T) {
	var filters RegexFilters
	require.NoError(t, filters.MustMatch.Set("^imoon/"))
	require.NoError(t, filters.MustNotMatch.Set("kernel info"))

	assert.True(t, filters.AsFilter(TestID{Path: []string{"imoon", "execute"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"imoon", "kernel info"}}))
	assert.False(t, filters.AsFilter(TestID{Path: []string{"iecho", "execute"}}))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var list RegexList
	assert.Error(t, list.Set("(unclosed"))
}
