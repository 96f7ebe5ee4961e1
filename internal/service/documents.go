package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/perivi8/business-guru-admin/internal/document"
	"github.com/perivi8/business-guru-admin/internal/entity"
)

// DocumentDetails resolves a logical document key on a freshly fetched
// client record. The re-fetch matters: an upload that happened since the
// list was loaded must be visible to the very next resolution.
func (s *Service) DocumentDetails(ctx context.Context, clientID uuid.UUID, key string) (entity.ResolvedDocument, error) {
	client, err := s.clients.Client(ctx, clientID)
	if err != nil {
		return entity.ResolvedDocument{}, fmt.Errorf("get client %s: %w", clientID, err)
	}

	resolved, err := document.Resolve(client, key)
	if err != nil {
		return entity.ResolvedDocument{}, err
	}

	return resolved, nil
}

// DocumentPreview returns a direct, cache-busted URL for in-browser preview.
// Documents that only exist in the processed shape carry no URL and must go
// through DocumentDownload instead.
func (s *Service) DocumentPreview(ctx context.Context, clientID uuid.UUID, key string) (string, error) {
	resolved, err := s.DocumentDetails(ctx, clientID, key)
	if err != nil {
		return "", err
	}

	if !resolved.HasURL() {
		return "", fmt.Errorf("document %q has no direct url: %w", resolved.Key, entity.ErrNotFound)
	}

	return document.CacheBust(resolved.URL, time.Now()), nil
}

// DocumentDownload fetches the document bytes, falling through three
// sources: the resolved direct URL, the backend streaming endpoint, and a
// last-resort URL lookup. Any failure, empty payloads included, triggers
// the next fallback; only the last source's error is surfaced.
func (s *Service) DocumentDownload(ctx context.Context, clientID uuid.UUID, key string) (entity.DownloadedDocument, error) {
	resolved, err := s.DocumentDetails(ctx, clientID, key)
	if err != nil {
		return entity.DownloadedDocument{}, err
	}

	if resolved.HasURL() {
		data, err := s.storage.Download(ctx, resolved.URL)
		if err == nil {
			return entity.DownloadedDocument{Name: resolved.Filename, Data: data}, nil
		}

		slog.WarnContext(ctx, "direct document download failed, falling back to stream",
			"client_id", clientID, "key", resolved.Key, "error", err)
	}

	doc, err := s.storage.StreamDocument(ctx, clientID, resolved.Key)
	if err == nil {
		if doc.Name == "" {
			doc.Name = resolved.Filename
		}

		return doc, nil
	}

	slog.WarnContext(ctx, "document stream failed, falling back to url lookup",
		"client_id", clientID, "key", resolved.Key, "error", err)

	rawURL, err := s.storage.LookupDocumentURL(ctx, clientID, resolved.Key)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("lookup document url %q: %w", resolved.Key, err)
	}

	data, err := s.storage.Download(ctx, rawURL)
	if err != nil {
		return entity.DownloadedDocument{}, fmt.Errorf("download document %q: %w", resolved.Key, err)
	}

	return entity.DownloadedDocument{Name: resolved.Filename, Data: data}, nil
}
