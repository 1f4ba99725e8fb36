package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/lumenops/vendor-extract-service/common"
	"github.com/lumenops/vendor-extract-service/common/messaging"
	"github.com/lumenops/vendor-extract-service/common/metrics"
	"github.com/lumenops/vendor-extract-service/common/models"
	"github.com/lumenops/vendor-extract-service/common/redis"
	"github.com/lumenops/vendor-extract-service/common/utils"
	"github.com/lumenops/vendor-extract-service/extractor"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type VendorHandler struct {
	extractor *extractor.PagedRecordExtractor
	cache     *redis.ResultCache
	broker    *messaging.NatsBroker
	router    *chi.Mux
}

// NewVendorHandler wires the extraction endpoints. Cache and broker may be
// nil; both are optional collaborators.
func NewVendorHandler(ex *extractor.PagedRecordExtractor, cache *redis.ResultCache, broker *messaging.NatsBroker) *VendorHandler {
	h := &VendorHandler{
		extractor: ex,
		cache:     cache,
		broker:    broker,
	}

	r := chi.NewRouter()
	r.Get("/", h.handleExtractAll)
	r.Post("/", h.handleExtractPage)

	h.router = r
	return h
}

func (h *VendorHandler) Router() *chi.Mux {
	return h.router
}

// handleExtractAll godoc
// @Summary     Extract all active vendors
// @Description Returns up to 1000 active vendor records plus a hasMore flag
// @Tags        vendors
// @Produce     json
// @Success     200 {object} models.VendorListResult
// @Router      /vendors [get]
func (h *VendorHandler) handleExtractAll(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	key := redis.Key(common.VendorRecordType, 0, common.MaxWindowSize)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		metrics.CacheHits.Inc()
		writeRawJSON(w, payload)
		return
	}

	result, err := h.extractor.FetchAll(r.Context())
	metrics.ObserveExtraction("fetch_all", started, result.TotalVendors, err)
	if err != nil {
		log.Error().Err(err).Msg("Vendor extraction failed")
		utils.WriteJSON(w, http.StatusOK, models.NewExtractionFailure(err, "Vendor extraction failed"))
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to encode extraction result")
		return
	}

	h.cache.Set(r.Context(), key, payload)
	h.publishCompletion(messaging.OperationFetchAll, result.TotalVendors, result.HasMore, started, result.ExtractedAt)

	writeRawJSON(w, payload)
}

// handleExtractPage godoc
// @Summary     Extract one page of active vendors
// @Description Returns the requested window of active vendor records plus a hasMore flag
// @Tags        vendors
// @Accept      json
// @Produce     json
// @Param       request body models.PageRequest false "Page selection"
// @Success     200 {object} models.VendorPageResult
// @Failure     400 {object} map[string]string
// @Router      /vendors [post]
func (h *VendorHandler) handleExtractPage(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	var p models.PageRequest
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	start, size := extractor.NormalizePage(p)
	key := redis.Key(common.VendorRecordType, start, start+size)
	if payload, ok := h.cache.Get(r.Context(), key); ok {
		metrics.CacheHits.Inc()
		writeRawJSON(w, payload)
		return
	}

	result, err := h.extractor.FetchPage(r.Context(), p)
	metrics.ObserveExtraction("fetch_page", started, result.ReturnedCount, err)
	if err != nil {
		log.Error().Err(err).Int("start_index", start).Msg("Vendor page extraction failed")
		utils.WriteJSON(w, http.StatusOK, models.NewExtractionFailure(err, "Vendor extraction failed"))
		return
	}

	payload, err := json.Marshal(result)
	if err != nil {
		utils.WriteError(w, http.StatusInternalServerError, "Failed to encode extraction result")
		return
	}

	h.cache.Set(r.Context(), key, payload)
	h.publishCompletion(messaging.OperationFetchPage, result.ReturnedCount, result.HasMore, started, result.ExtractedAt)

	writeRawJSON(w, payload)
}

// publishCompletion emits the completion event, best effort.
func (h *VendorHandler) publishCompletion(op messaging.ExtractionOperation, count int, hasMore bool, started, extractedAt time.Time) {
	event := messaging.ExtractionCompletedEvent{
		ID:           uuid.NewString(),
		Operation:    op,
		TotalRecords: count,
		HasMore:      hasMore,
		DurationMs:   time.Since(started).Milliseconds(),
		ExtractedAt:  extractedAt,
	}

	if err := h.broker.PublishEvent(messaging.ExtractionCompletedTopic, event); err != nil {
		log.Warn().Err(err).Str("operation", string(op)).Msg("Failed to publish extraction event")
	}
}

func writeRawJSON(w http.ResponseWriter, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(payload)
}
