// Package document implements the document resolution chain over the three
// competing storage shapes of a client record: the current "documents" map,
// the legacy "processed_documents" map and the singular legacy URL field.
// Most recently uploaded wins, which maps to that exact precedence.
package document

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/perivi8/business-guru-admin/internal/entity"
)

const LegacyBusinessDocumentKey = "business_document"

// partnerKeyRe matches every historical spelling of a partner document key:
// partner_0_aadhar, partner_aadhar_0, partner_aadhar0, Partner_PAN_3 and so
// on. The index may sit before or after the type, with or without an
// underscore.
var partnerKeyRe = regexp.MustCompile(`(?i)^partner_?(\d*)_?(aadhar|pan)_?(\d*)$`)

// NormalizeKey collapses the different spellings of a partner document key
// to the canonical partner_{type}_{index} form. Non-partner keys are only
// lowercased.
func NormalizeKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))

	m := partnerKeyRe.FindStringSubmatch(key)
	if m == nil {
		return key
	}

	index := m[1]
	if index == "" {
		index = m[3]
	}

	if index == "" {
		index = "0"
	}

	return fmt.Sprintf("partner_%s_%s", m[2], index)
}

// Resolve produces the display filename, byte size and direct URL (when
// one exists) for a logical document key, preferring the newest shape.
func Resolve(client entity.Client, key string) (entity.ResolvedDocument, error) {
	normalized := NormalizeKey(key)

	if v, ok := lookupDocument(client.Documents, normalized); ok {
		return entity.ResolvedDocument{
			Key:      normalized,
			Filename: filenameFor(v.OriginalFilename, v.URL, normalized),
			Size:     v.Bytes,
			URL:      v.URL,
		}, nil
	}

	if v, ok := lookupProcessed(client.ProcessedDocuments, normalized); ok {
		return entity.ResolvedDocument{
			Key:      normalized,
			Filename: filenameFor(v.FileName, "", normalized),
			Size:     v.FileSize,
		}, nil
	}

	if normalized == LegacyBusinessDocumentKey && client.BusinessDocumentURL != "" {
		return entity.ResolvedDocument{
			Key:      normalized,
			Filename: filenameFor("", client.BusinessDocumentURL, normalized),
			URL:      client.BusinessDocumentURL,
		}, nil
	}

	return entity.ResolvedDocument{}, fmt.Errorf("document %q: %w", normalized, entity.ErrNotFound)
}

func lookupDocument(docs map[string]entity.DocumentValue, normalized string) (entity.DocumentValue, bool) {
	if v, ok := docs[normalized]; ok {
		return v, true
	}

	for k, v := range docs {
		if NormalizeKey(k) == normalized {
			return v, true
		}
	}

	return entity.DocumentValue{}, false
}

func lookupProcessed(docs map[string]entity.ProcessedDocument, normalized string) (entity.ProcessedDocument, bool) {
	if v, ok := docs[normalized]; ok {
		return v, true
	}

	for k, v := range docs {
		if NormalizeKey(k) == normalized {
			return v, true
		}
	}

	return entity.ProcessedDocument{}, false
}

func filenameFor(name, rawURL, key string) string {
	if name != "" {
		return name
	}

	if base := urlBasename(rawURL); base != "" {
		return base
	}

	return key + ".pdf"
}

// urlBasename returns the trailing path segment of a URL with the query
// string stripped, or "" when nothing usable remains.
func urlBasename(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}

	rawURL = strings.TrimRight(rawURL, "/")

	if i := strings.LastIndex(rawURL, "/"); i >= 0 {
		rawURL = rawURL[i+1:]
	}

	if decoded, err := url.PathUnescape(rawURL); err == nil {
		rawURL = decoded
	}

	return rawURL
}

// CacheBust suffixes a direct URL with a timestamp query parameter so a
// preview opened right after an edit never shows a stale document.
func CacheBust(rawURL string, now time.Time) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}

	return fmt.Sprintf("%s%st=%d", rawURL, sep, now.Unix())
}
