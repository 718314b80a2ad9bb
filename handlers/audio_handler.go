package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Adwait10-prog/Rian-Audio-Editor2/services/audio"
	"github.com/Adwait10-prog/Rian-Audio-Editor2/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxUploadMemory caps multipart form memory before spilling to disk.
const maxUploadMemory = 32 << 20 // 32 MiB

// AudioHandler serves the import/waveform/peaks endpoints
type AudioHandler struct {
	processor *audio.Processor
	logger    *zap.Logger
}

// NewAudioHandler creates a new AudioHandler
func NewAudioHandler(processor *audio.Processor, logger *zap.Logger) *AudioHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AudioHandler{
		processor: processor,
		logger:    logger,
	}
}

// HandleImport handles POST /api/import
// Accepts a multipart/form-data upload under the "file" field, saves it
// and returns the analysis result.
func (h *AudioHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "multipart/form-data") {
		_ = utils.WriteBadRequest(w, "Content type must be multipart/form-data")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		h.logger.Warn("failed to parse multipart form", zap.Error(err))
		_ = utils.WriteBadRequest(w, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		_ = utils.WriteBadRequest(w, "file field is required")
		return
	}
	defer file.Close()

	result, err := h.processor.ProcessUpload(file)
	if err != nil {
		h.logger.Warn("import failed",
			zap.String("filename", header.Filename),
			zap.Error(err))
		_ = utils.WriteBadRequest(w, err.Error())
		return
	}

	h.logger.Info("audio imported",
		zap.String("filename", header.Filename),
		zap.String("cache_key", result.CacheKey))

	_ = utils.WriteOK(w, result)
}

// HandleWaveform handles GET /api/waveform/{cacheKey}
func (h *AudioHandler) HandleWaveform(w http.ResponseWriter, r *http.Request) {
	cacheKey := chi.URLParam(r, "cacheKey")

	waveform, err := h.processor.Waveform(cacheKey)
	if err != nil {
		h.respondCacheError(w, cacheKey, err)
		return
	}

	_ = utils.WriteOK(w, waveform)
}

// HandlePeaks handles GET /api/peaks/{cacheKey}
func (h *AudioHandler) HandlePeaks(w http.ResponseWriter, r *http.Request) {
	cacheKey := chi.URLParam(r, "cacheKey")

	peaks, err := h.processor.Peaks(cacheKey)
	if err != nil {
		h.respondCacheError(w, cacheKey, err)
		return
	}

	_ = utils.WriteOK(w, peaks)
}

// respondCacheError maps processor lookup failures onto the envelope.
// Unknown keys are client errors; anything else is a server fault.
func (h *AudioHandler) respondCacheError(w http.ResponseWriter, cacheKey string, err error) {
	if errors.Is(err, audio.ErrNotCached) {
		_ = utils.WriteBadRequest(w, err.Error())
		return
	}

	h.logger.Error("cache lookup failed", zap.String("cache_key", cacheKey), zap.Error(err))
	_ = utils.WriteInternalServerError(w, err.Error())
}
