package core

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Rorical/RoriMap/internal/logging"
	"github.com/Rorical/RoriMap/internal/models"
)

const (
	// PayloadFormat is the only accepted value of the payload's format field.
	PayloadFormat = "rorimap/v1"
	// BookmarkletPrefix marks base64 payloads produced by the bookmarklet.
	BookmarkletPrefix = "rorimap:"
)

// ImportPayload is the exported user data.
type ImportPayload struct {
	Format string          `json:"format"`
	Found  []string        `json:"found"`
	Routes map[string]bool `json:"routes,omitempty"`
}

// Importer validates import text and publishes the outcome to the store:
// SetImportError on failure, ApplyImport on success.
type Importer struct {
	store  Dispatcher
	routes models.RouteTable
	logger *logging.Logger
	now    func() time.Time
	newID  func() string
}

func NewImporter(store Dispatcher, routes models.RouteTable, logger *logging.Logger) *Importer {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Importer{
		store:  store,
		routes: routes,
		logger: logger.WithComponent("importer"),
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Confirm is the import dialog's confirm handler.
func (im *Importer) Confirm(text string) bool {
	_, err := im.Import(text, "")
	return err == nil
}

// Import parses text and dispatches the result. source may be empty, in which
// case it is derived from the text.
func (im *Importer) Import(text, source string) (models.ImportBatch, error) {
	payload, detected, err := im.Parse(text)
	if err != nil {
		im.logger.Info("import rejected", "error", err)
		im.store.Dispatch(models.SetImportError{Message: err.Error()})
		return models.ImportBatch{}, err
	}
	if source == "" {
		source = detected
	}

	batch := models.ImportBatch{
		ID:         im.newID(),
		Source:     source,
		Found:      payload.Found,
		Routes:     payload.Routes,
		ImportedAt: im.now(),
	}
	im.store.Dispatch(models.ApplyImport{Batch: batch})
	im.logger.Info("import applied", "batch", batch.ID, "source", source, "found", len(batch.Found), "routes", len(batch.Routes))
	return batch, nil
}

// Parse decodes and validates text without touching the store. It returns the
// payload and the detected source.
func (im *Importer) Parse(text string) (ImportPayload, string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ImportPayload{}, "", invalid(ErrEmptyPayload, "paste exported data first")
	}

	source := models.SourcePaste
	raw := []byte(text)
	switch {
	case strings.HasPrefix(text, BookmarkletPrefix):
		source = models.SourceBookmarklet
		decoded, err := decodeBase64(strings.TrimPrefix(text, BookmarkletPrefix))
		if err != nil {
			return ImportPayload{}, source, invalid(ErrMalformedPayload, "bookmarklet data is not valid base64")
		}
		raw = decoded
	case !strings.HasPrefix(text, "{"):
		decoded, err := decodeBase64(text)
		if err != nil {
			return ImportPayload{}, source, invalid(ErrMalformedPayload, "expected JSON or bookmarklet data")
		}
		raw = decoded
	}

	var payload ImportPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ImportPayload{}, source, invalid(ErrMalformedPayload, "invalid JSON")
	}
	if payload.Format != PayloadFormat {
		return ImportPayload{}, source, invalid(ErrUnsupportedFormat, fmt.Sprintf("%q (want %q)", payload.Format, PayloadFormat))
	}

	found := make([]string, 0, len(payload.Found))
	seen := make(map[string]struct{}, len(payload.Found))
	for i, id := range payload.Found {
		id = strings.TrimSpace(id)
		if id == "" {
			return ImportPayload{}, source, invalid(ErrMalformedPayload, fmt.Sprintf("location %d has an empty id", i+1))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		found = append(found, id)
	}
	payload.Found = found

	for key := range payload.Routes {
		if _, ok := im.routes.Lookup(key); !ok {
			return ImportPayload{}, source, invalid(ErrUnknownRoute, fmt.Sprintf("%q", key))
		}
	}

	if len(payload.Found) == 0 && len(payload.Routes) == 0 {
		return ImportPayload{}, source, invalid(ErrNoData, "")
	}
	return payload, source, nil
}

func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	for _, enc := range []*base64.Encoding{base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding} {
		if b, err := enc.DecodeString(s); err == nil {
			return b, nil
		}
	}
	return nil, fmt.Errorf("invalid base64")
}
