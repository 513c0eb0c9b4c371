package locid_test

import (
	"testing"

	"github.com/fwojciec/locid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemes(t *testing.T) {
	t.Parallel()

	t.Run("resolves names to URIs in input order", func(t *testing.T) {
		t.Parallel()

		uris, err := locid.ResolveSchemes([]string{"name-authority", "subject-headings"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://id.loc.gov/authorities/names",
			"http://id.loc.gov/authorities/subjects",
		}, uris)
	})

	t.Run("does not deduplicate repeated names", func(t *testing.T) {
		t.Parallel()

		uris, err := locid.ResolveSchemes([]string{"roles", "roles"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"http://id.loc.gov/entities/roles",
			"http://id.loc.gov/entities/roles",
		}, uris)
	})

	t.Run("empty input resolves to empty output", func(t *testing.T) {
		t.Parallel()

		uris, err := locid.ResolveSchemes(nil)
		require.NoError(t, err)
		assert.Empty(t, uris)
	})

	t.Run("unknown name fails with EINVALID", func(t *testing.T) {
		t.Parallel()

		_, err := locid.ResolveSchemes([]string{"foo"})
		require.Error(t, err)
		assert.Equal(t, locid.EINVALID, locid.ErrorCode(err))
		assert.Contains(t, locid.ErrorMessage(err), "foo")
	})

	t.Run("error lists every unknown name", func(t *testing.T) {
		t.Parallel()

		_, err := locid.ResolveSchemes([]string{"foo", "subject-headings", "bar"})
		require.Error(t, err)
		assert.Equal(t, locid.EINVALID, locid.ErrorCode(err))
		assert.Contains(t, locid.ErrorMessage(err), "foo, bar")
	})
}

func TestConceptSchemes(t *testing.T) {
	t.Parallel()

	schemes := locid.ConceptSchemes()
	assert.Greater(t, len(schemes), 100)
	assert.Equal(t, "http://id.loc.gov/resources/instances", schemes["bibframe-instances"])
	assert.Equal(t, "http://id.loc.gov/authorities/genreForms", schemes["genre-form-terms"])

	// mutating the returned map must not affect the registry
	schemes["bibframe-instances"] = "tampered"
	uri, ok := locid.SchemeURI("bibframe-instances")
	assert.True(t, ok)
	assert.Equal(t, "http://id.loc.gov/resources/instances", uri)
}

func TestSchemeURI_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := locid.SchemeURI("nope")
	assert.False(t, ok)
}
