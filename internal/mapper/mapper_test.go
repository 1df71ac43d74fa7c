// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dataset-bridge/internal/ckan"
)

// samplePackageJSON mirrors a typical package_show result with contacts
// stored as stringified JSON.
const samplePackageJSON = `{
  "id": "123",
  "name": "test-dataset",
  "title": "Test Dataset",
  "notes": "Description with <p>tags</p>",
  "license_title": "MIT",
  "metadata_created": "2024-01-01T00:00:00",
  "metadata_modified": "2024-02-01T00:00:00",
  "language": "en",
  "author": "[{\"author_name\": \"Jane Smith\", \"author_email\": \"jane@example.com\"}]",
  "maintainer": "{\"maintainer_name\": \"Bob\"}",
  "tags": [
    {"name": "tag1", "display_name": "Tag1"},
    {"name": "tag2"}
  ],
  "resources": [
    {"name": "Resource 1", "url": "http://res.url", "format": "CSV"}
  ],
  "organization": {
    "title": "Data Office",
    "description": "Municipal <b>data</b> office"
  }
}`

func decodePackage(t *testing.T, raw string) *ckan.Package {
	t.Helper()
	var pkg ckan.Package
	require.NoError(t, json.Unmarshal([]byte(raw), &pkg))
	return &pkg
}

func TestMapPackage(t *testing.T) {
	ds := MapPackage(decodePackage(t, samplePackageJSON), "http://catalog.example.org")

	assert.Equal(t, "https://schema.org/", ds.Context)
	assert.Equal(t, "Dataset", ds.Type)

	require.NotNil(t, ds.Name)
	assert.Equal(t, "Test Dataset", *ds.Name)
	assert.Equal(t, "Description with tags", ds.Description)

	require.NotNil(t, ds.Identifier)
	assert.Equal(t, "123", *ds.Identifier)
	assert.Equal(t, "http://catalog.example.org/dataset/test-dataset", ds.URL)

	// No license_url, so license_title wins.
	require.NotNil(t, ds.License)
	assert.Equal(t, "MIT", *ds.License)

	require.NotNil(t, ds.DatePublished)
	assert.Equal(t, "2024-01-01T00:00:00", *ds.DatePublished)
	require.NotNil(t, ds.DateModified)
	assert.Equal(t, "2024-02-01T00:00:00", *ds.DateModified)
	require.NotNil(t, ds.InLanguage)
	assert.Equal(t, "en", *ds.InLanguage)

	// The second tag has no display_name and contributes nothing.
	assert.Equal(t, []string{"Tag1"}, ds.Keywords)

	require.Len(t, ds.Creator, 1)
	c := ds.Creator[0]
	assert.Equal(t, "Person", c.Type)
	assert.Equal(t, "Jane Smith", c.Name)
	assert.Equal(t, "Jane", c.GivenName)
	assert.Equal(t, "Smith", c.FamilyName)
	assert.Equal(t, "jane@example.com", c.Email)

	// Maintainer field held a single object, not a list.
	require.Len(t, ds.Maintainer, 1)
	m := ds.Maintainer[0]
	assert.Equal(t, "Bob", m.Name)
	assert.Equal(t, "Bob", m.GivenName)
	assert.Empty(t, m.FamilyName)
	assert.Empty(t, m.Email)

	require.Len(t, ds.Distribution, 1)
	d := ds.Distribution[0]
	assert.Equal(t, "DataDownload", d.Type)
	require.NotNil(t, d.Name)
	assert.Equal(t, "Resource 1", *d.Name)
	require.NotNil(t, d.ContentURL)
	assert.Equal(t, "http://res.url", *d.ContentURL)
	require.NotNil(t, d.EncodingFormat)
	assert.Equal(t, "CSV", *d.EncodingFormat)
	assert.Equal(t, "", d.Description)

	require.NotNil(t, ds.Publisher)
	assert.Equal(t, "Organization", ds.Publisher.Type)
	require.NotNil(t, ds.Publisher.Name)
	assert.Equal(t, "Data Office", *ds.Publisher.Name)
	// Publisher description stays raw; only notes and resource
	// descriptions are sanitized.
	require.NotNil(t, ds.Publisher.Description)
	assert.Equal(t, "Municipal <b>data</b> office", *ds.Publisher.Description)
}

func TestMapPackageEmptyRecord(t *testing.T) {
	ds := MapPackage(&ckan.Package{}, "http://catalog.example.org")

	assert.Nil(t, ds.Name)
	assert.Equal(t, "", ds.Description)
	assert.Nil(t, ds.Identifier)
	assert.Equal(t, "http://catalog.example.org/dataset/", ds.URL)
	assert.Nil(t, ds.License)
	assert.Nil(t, ds.Publisher)

	// List fields are empty but present, never null.
	assert.NotNil(t, ds.Keywords)
	assert.Empty(t, ds.Keywords)
	assert.NotNil(t, ds.Creator)
	assert.Empty(t, ds.Creator)
	assert.NotNil(t, ds.Maintainer)
	assert.Empty(t, ds.Maintainer)
	assert.NotNil(t, ds.Distribution)
	assert.Empty(t, ds.Distribution)
}

func TestMapPackageLicensePrefersURL(t *testing.T) {
	pkg := decodePackage(t, `{
		"license_url": "https://opensource.org/licenses/MIT",
		"license_title": "MIT"
	}`)
	ds := MapPackage(pkg, "http://c")
	require.NotNil(t, ds.License)
	assert.Equal(t, "https://opensource.org/licenses/MIT", *ds.License)
}

func TestMapPackageMalformedContacts(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"author is not json", `{"author": "not json"}`},
		{"author is a number field", `{"author": 42}`},
		{"author is a json number string", `{"author": "42"}`},
		{"author entry lacks name", `{"author": "[{\"author_email\": \"x@y.z\"}]"}`},
		{"author name blank", `{"author": "[{\"author_name\": \"   \"}]"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := MapPackage(decodePackage(t, tt.raw), "http://c")
			assert.Empty(t, ds.Creator)
		})
	}
}

func TestMapPackageResourceWithMissingFields(t *testing.T) {
	pkg := decodePackage(t, `{
		"resources": [{"description": "has <i>markup</i>\r\nand lines"}]
	}`)
	ds := MapPackage(pkg, "http://c")

	require.Len(t, ds.Distribution, 1)
	d := ds.Distribution[0]
	assert.Nil(t, d.Name)
	assert.Nil(t, d.ContentURL)
	assert.Nil(t, d.EncodingFormat)
	assert.Equal(t, "has markup and lines", d.Description)

	// Null resource fields must serialize as null, not be dropped.
	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"@type": "DataDownload",
		"name": null,
		"contentUrl": null,
		"encodingFormat": null,
		"description": "has markup and lines"
	}`, string(data))
}

func TestMapPackageKeywordCountMatchesTagsWithDisplayName(t *testing.T) {
	pkg := decodePackage(t, `{
		"tags": [
			{"display_name": "A"},
			{"name": "no-display"},
			{"display_name": "B"},
			{"display_name": "C"}
		]
	}`)
	ds := MapPackage(pkg, "http://c")
	assert.Equal(t, []string{"A", "B", "C"}, ds.Keywords)
}
