// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the Schema.org output shapes and stage configurations
// shared across the pipeline.
package types

// SchemaContext is the JSON-LD @context emitted on every Dataset.
const SchemaContext = "https://schema.org/"

// Dataset is one Schema.org Dataset record in JSON-LD form. Nullable fields
// are pointers so that absent source values marshal as JSON null rather than
// being dropped; list-valued fields are always non-nil so they marshal as [].
type Dataset struct {
	Context       string         `json:"@context" yaml:"@context"`
	Type          string         `json:"@type" yaml:"@type"`
	Name          *string        `json:"name" yaml:"name"`
	Description   string         `json:"description" yaml:"description"`
	Identifier    *string        `json:"identifier" yaml:"identifier"`
	URL           string         `json:"url" yaml:"url"`
	License       *string        `json:"license" yaml:"license"`
	DatePublished *string        `json:"datePublished" yaml:"datePublished"`
	DateModified  *string        `json:"dateModified" yaml:"dateModified"`
	InLanguage    *string        `json:"inLanguage" yaml:"inLanguage"`
	Keywords      []string       `json:"keywords" yaml:"keywords"`
	Creator       []Person       `json:"creator" yaml:"creator"`
	Maintainer    []Person       `json:"maintainer" yaml:"maintainer"`
	Distribution  []Distribution `json:"distribution" yaml:"distribution"`
	Publisher     *Organization  `json:"publisher,omitempty" yaml:"publisher,omitempty"`
}

// Person is a Schema.org Person. Name is set only when the source name string
// was non-empty; FamilyName only when the name had at least two tokens.
type Person struct {
	Type       string `json:"@type" yaml:"@type"`
	Name       string `json:"name,omitempty" yaml:"name,omitempty"`
	GivenName  string `json:"givenName,omitempty" yaml:"givenName,omitempty"`
	FamilyName string `json:"familyName,omitempty" yaml:"familyName,omitempty"`
	Email      string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Distribution is a Schema.org DataDownload, one per source resource.
// Name, ContentURL and EncodingFormat carry the raw source values and are
// null when the resource omitted them; Description is always sanitized
// plain text, possibly empty.
type Distribution struct {
	Type           string  `json:"@type" yaml:"@type"`
	Name           *string `json:"name" yaml:"name"`
	ContentURL     *string `json:"contentUrl" yaml:"contentUrl"`
	EncodingFormat *string `json:"encodingFormat" yaml:"encodingFormat"`
	Description    string  `json:"description" yaml:"description"`
}

// Organization is a Schema.org Organization, attached as publisher when the
// source record carried one.
type Organization struct {
	Type        string  `json:"@type" yaml:"@type"`
	Name        *string `json:"name" yaml:"name"`
	Description *string `json:"description" yaml:"description"`
}
