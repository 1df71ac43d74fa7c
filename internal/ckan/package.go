// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ckan

import "encoding/json"

// Package is one CKAN package (dataset) as returned by package_show. Every
// field is optional on the wire; pointer fields distinguish absent or null
// values from empty ones so the mapper can carry the distinction through to
// the output.
type Package struct {
	ID               *string `json:"id"`
	Name             *string `json:"name"`
	Title            *string `json:"title"`
	Notes            string  `json:"notes"`
	LicenseTitle     *string `json:"license_title"`
	LicenseURL       *string `json:"license_url"`
	MetadataCreated  *string `json:"metadata_created"`
	MetadataModified *string `json:"metadata_modified"`
	Language         *string `json:"language"`

	// Author and Maintainer hold the raw JSON of the field. Some catalogs
	// store a JSON-encoded contact list in these string fields; others put
	// arbitrary junk there. DecodeObjectList sorts it out.
	Author     json.RawMessage `json:"author"`
	Maintainer json.RawMessage `json:"maintainer"`

	Tags         []Tag         `json:"tags"`
	Resources    []Resource    `json:"resources"`
	Organization *Organization `json:"organization"`
}

// Tag is one package tag. DisplayName is nil when the catalog omitted it,
// in which case the tag contributes no keyword.
type Tag struct {
	Name        *string `json:"name"`
	DisplayName *string `json:"display_name"`
}

// Resource is one downloadable file attached to a package.
type Resource struct {
	Name        *string `json:"name"`
	URL         *string `json:"url"`
	Format      *string `json:"format"`
	Description string  `json:"description"`
}

// Organization is the owning organization of a package.
type Organization struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}
