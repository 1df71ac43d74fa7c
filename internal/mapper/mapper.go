// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapper transforms CKAN packages into Schema.org Dataset records.
// The transformation is total: malformed or missing source fields degrade to
// omitted or empty output values, never to an error.
package mapper

import (
	"encoding/json"
	"strings"

	"github.com/pdiddy/dataset-bridge/internal/ckan"
	"github.com/pdiddy/dataset-bridge/internal/textutil"
	"github.com/pdiddy/dataset-bridge/pkg/types"
)

// MapPackage maps one CKAN package to one Schema.org Dataset. siteURL is the
// catalog site root used to build the dataset landing page URL.
func MapPackage(pkg *ckan.Package, siteURL string) types.Dataset {
	ds := types.Dataset{
		Context:       types.SchemaContext,
		Type:          "Dataset",
		Name:          pkg.Title,
		Description:   textutil.Sanitize(pkg.Notes),
		Identifier:    pkg.ID,
		URL:           datasetURL(siteURL, pkg.Name),
		License:       license(pkg),
		DatePublished: pkg.MetadataCreated,
		DateModified:  pkg.MetadataModified,
		InLanguage:    pkg.Language,
		Keywords:      keywords(pkg.Tags),
		Creator:       persons(pkg.Author, "author_name", "author_email"),
		Maintainer:    persons(pkg.Maintainer, "maintainer_name", "maintainer_email"),
		Distribution:  distributions(pkg.Resources),
	}

	if org := pkg.Organization; org != nil {
		ds.Publisher = &types.Organization{
			Type:        "Organization",
			Name:        org.Title,
			Description: org.Description,
		}
	}

	return ds
}

// persons decodes a stringified-JSON contact field and builds one Person per
// entry that carries a usable name. Entries whose name is missing or blank
// are dropped; an email is attached only when present and non-empty.
func persons(raw json.RawMessage, nameKey, emailKey string) []types.Person {
	out := []types.Person{}
	for _, entry := range ckan.DecodeObjectList(raw) {
		parsed := ParsePersonName(entry.Get(nameKey).String())
		if parsed.IsZero() {
			continue
		}
		p := types.Person{
			Type:       "Person",
			Name:       parsed.Name,
			GivenName:  parsed.GivenName,
			FamilyName: parsed.FamilyName,
		}
		if email := entry.Get(emailKey).String(); email != "" {
			p.Email = email
		}
		out = append(out, p)
	}
	return out
}

// keywords collects each tag's display name in source order, skipping tags
// that have none.
func keywords(tags []ckan.Tag) []string {
	out := []string{}
	for _, tag := range tags {
		if tag.DisplayName != nil {
			out = append(out, *tag.DisplayName)
		}
	}
	return out
}

// distributions builds one DataDownload per resource in source order. The
// raw name/url/format values pass through untouched (null when absent); only
// the description is sanitized.
func distributions(resources []ckan.Resource) []types.Distribution {
	out := []types.Distribution{}
	for _, res := range resources {
		out = append(out, types.Distribution{
			Type:           "DataDownload",
			Name:           res.Name,
			ContentURL:     res.URL,
			EncodingFormat: res.Format,
			Description:    textutil.Sanitize(res.Description),
		})
	}
	return out
}

// license prefers the license URL and falls back to the license title.
// Returns nil when the package carries neither.
func license(pkg *ckan.Package) *string {
	if pkg.LicenseURL != nil && *pkg.LicenseURL != "" {
		return pkg.LicenseURL
	}
	return pkg.LicenseTitle
}

// datasetURL builds the landing page URL for a package under the catalog
// site root.
func datasetURL(siteURL string, name *string) string {
	slug := ""
	if name != nil {
		slug = *name
	}
	return strings.TrimRight(siteURL, "/") + "/dataset/" + slug
}
