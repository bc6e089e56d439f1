package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/podume/resume-extractor/internal/detect"
	"github.com/podume/resume-extractor/internal/extraction"
	"github.com/podume/resume-extractor/internal/pipeline"
	"github.com/podume/resume-extractor/internal/store"
	"github.com/podume/resume-extractor/internal/types"
)

// maxUploadSize bounds resume uploads. Resumes are small documents; anything
// larger is almost certainly not a resume.
const maxUploadSize = 10 << 20 // 10 MB

var validate = validator.New()

// extractTextRequest is the body for POST /extract/text.
type extractTextRequest struct {
	Text string `json:"text" validate:"required,min=10"`
}

// extractResponse wraps an extraction result with its record ID when the
// result was persisted.
type extractResponse struct {
	ID     *uuid.UUID              `json:"id,omitempty"`
	Result *types.ExtractionResult `json:"result"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract accepts a multipart upload under the "file" field and runs
// the full extraction pipeline on it.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "failed to read upload: "+err.Error())
		return
	}

	result, err := pipeline.Run(r.Context(), data, &pipeline.Options{LineTolerance: s.lineTolerance})
	if err != nil {
		writePipelineError(w, err)
		return
	}

	resp := extractResponse{Result: result}
	if s.store != nil {
		detected := detect.Classify(data)
		id, err := s.store.SaveExtraction(r.Context(), header.Filename, detected, result)
		if err != nil {
			// The caller still gets their result; persistence is best-effort.
			log.Printf("warning: failed to persist extraction: %v", err)
		} else {
			resp.ID = &id
		}
	}
	jsonResponse(w, http.StatusOK, resp)
}

// handleExtractText structures pasted text, the fallback path for documents
// the PDF decoder cannot read.
func (s *Server) handleExtractText(w http.ResponseWriter, r *http.Request) {
	var req extractTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(&req); err != nil {
		errorResponse(w, http.StatusBadRequest, "text is required and must be at least 10 characters")
		return
	}

	result, err := pipeline.RunText(req.Text)
	if err != nil {
		writePipelineError(w, err)
		return
	}

	resp := extractResponse{Result: result}
	if s.store != nil {
		id, err := s.store.SaveExtraction(r.Context(), "", types.FileTypeUnknown, result)
		if err != nil {
			log.Printf("warning: failed to persist extraction: %v", err)
		} else {
			resp.ID = &id
		}
	}
	jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetExtraction(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		errorResponse(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "invalid extraction ID")
		return
	}

	record, err := s.store.GetExtraction(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			errorResponse(w, http.StatusNotFound, "extraction not found")
			return
		}
		log.Printf("failed to load extraction %s: %v", id, err)
		errorResponse(w, http.StatusInternalServerError, "failed to load extraction")
		return
	}
	jsonResponse(w, http.StatusOK, record)
}

func (s *Server) handleListExtractions(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		errorResponse(w, http.StatusNotFound, "persistence is not configured")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 100 {
			errorResponse(w, http.StatusBadRequest, "limit must be an integer between 1 and 100")
			return
		}
		limit = parsed
	}

	records, err := s.store.ListRecent(r.Context(), limit)
	if err != nil {
		log.Printf("failed to list extractions: %v", err)
		errorResponse(w, http.StatusInternalServerError, "failed to list extractions")
		return
	}
	if records == nil {
		records = []store.Record{}
	}
	jsonResponse(w, http.StatusOK, map[string]any{"extractions": records})
}

// writePipelineError maps pipeline errors onto HTTP statuses: malformed
// input is the caller's fault (400/422), everything else is ours (500).
func writePipelineError(w http.ResponseWriter, err error) {
	var (
		emptyErr        *detect.EmptyFileError
		tooSmallErr     *detect.TooSmallError
		invalidTypeErr  *detect.InvalidFileTypeError
		decodeErr       *extraction.DecodeFailedError
		insufficientErr *extraction.InsufficientTextError
	)
	switch {
	case errors.As(err, &emptyErr), errors.As(err, &tooSmallErr), errors.As(err, &invalidTypeErr):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &decodeErr), errors.As(err, &insufficientErr):
		errorResponse(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.Printf("extraction failed: %v", err)
		errorResponse(w, http.StatusInternalServerError, "extraction failed")
	}
}

func jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
