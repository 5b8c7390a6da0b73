// Package server exposes the dictionaries and the VCF export over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/pokutuna/dictionary-vcf/internal/dictionary"
	"github.com/pokutuna/dictionary-vcf/internal/vcf"
)

// maxProfileSize bounds the request body of an export.
const maxProfileSize = 1 << 20

type ExportHandler struct {
	library  *dictionary.Library
	exporter *vcf.Exporter
	logger   *slog.Logger
	now      func() time.Time
}

func NewExportHandler(library *dictionary.Library, exporter *vcf.Exporter, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{
		library:  library,
		exporter: exporter,
		logger:   logger,
		now:      time.Now,
	}
}

// Routes returns the handler for all endpoints.
func (h *ExportHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/dictionaries", h.ListDictionaries)
	mux.HandleFunc("POST /api/export", h.Export)
	return mux
}

type entryResponse struct {
	ID       string `json:"id"`
	Word     string `json:"word"`
	Reading  string `json:"reading"`
	Selected bool   `json:"selected"`
	Edited   bool   `json:"edited"`
}

type dictionaryResponse struct {
	Name          string          `json:"name"`
	DisplayName   string          `json:"displayName"`
	Description   string          `json:"description"`
	Selected      bool            `json:"selected"`
	Indeterminate bool            `json:"indeterminate"`
	Entries       []entryResponse `json:"entries"`
}

type categoryResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Dictionaries []dictionaryResponse `json:"dictionaries"`
}

type listResponse struct {
	Categories []categoryResponse `json:"categories"`
	Stats      dictionary.Stats   `json:"stats"`
}

// ListDictionaries returns every category with its dictionaries in their initial state.
func (h *ExportHandler) ListDictionaries(w http.ResponseWriter, r *http.Request) {
	selection := h.library.Selection()

	categories := make([]categoryResponse, 0, len(h.library.Categories))
	for _, category := range h.library.Categories {
		dictionaries := make([]dictionaryResponse, 0, len(category.Dictionaries))
		for _, ref := range category.Dictionaries {
			d, ok := selection.Dictionary(ref.Name)
			if !ok {
				continue
			}
			dictionaries = append(dictionaries, toDictionaryResponse(d, selection.Indeterminate(d.Name)))
		}
		categories = append(categories, categoryResponse{
			ID:           category.ID,
			Name:         category.Name,
			Description:  category.Description,
			Dictionaries: dictionaries,
		})
	}

	h.writeJSON(w, http.StatusOK, listResponse{
		Categories: categories,
		Stats:      selection.Stats(),
	})
}

// Export applies the profile in the request body to the initial selection and returns
// the VCF document as a download. An empty body exports everything.
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	profile, err := decodeProfile(http.MaxBytesReader(w, r.Body, maxProfileSize))
	if err != nil {
		h.logger.Debug("invalid export request", slog.Any("error", err))
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	selection := profile.Apply(h.library.Selection())
	content := h.exporter.Export(selection)
	if content == "" {
		h.logger.Info("exporting an empty selection")
	}

	filename := vcf.Filename(h.now())
	w.Header().Set("Content-Type", vcf.ContentType+"; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, content); err != nil {
		h.logger.Error("failed to write export", slog.Any("error", err))
	}
}

func decodeProfile(body io.Reader) (*dictionary.Profile, error) {
	var profile dictionary.Profile
	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&profile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode selection profile: %w", err)
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

func toDictionaryResponse(d dictionary.Dictionary, indeterminate bool) dictionaryResponse {
	entries := make([]entryResponse, len(d.Entries))
	for i, e := range d.Entries {
		entries[i] = entryResponse{
			ID:       e.ID,
			Word:     e.Word,
			Reading:  e.Reading,
			Selected: e.Selected,
			Edited:   e.Edited(),
		}
	}
	return dictionaryResponse{
		Name:          d.Name,
		DisplayName:   d.DisplayName,
		Description:   d.Description,
		Selected:      d.Selected,
		Indeterminate: indeterminate,
		Entries:       entries,
	}
}

func (h *ExportHandler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
