package api

import (
	"net/http"

	"github.com/phrazzld/numconv-api/internal/api/shared"
	"github.com/phrazzld/numconv-api/internal/domain"
	"github.com/phrazzld/numconv-api/internal/service"
)

// ConversionHandler handles the number conversion endpoints
type ConversionHandler struct {
	conversionService service.ConversionService
}

// NewConversionHandler creates a new ConversionHandler
func NewConversionHandler(conversionService service.ConversionService) *ConversionHandler {
	return &ConversionHandler{conversionService: conversionService}
}

// ConvertNumberToWords handles POST {base}/convertNumberToWords requests
func (h *ConversionHandler) ConvertNumberToWords(w http.ResponseWriter, r *http.Request) {
	req, err := decodeConversionRequest(w, r)
	if err != nil {
		RespondWithNormalizedError(w, r, err)
		return
	}

	result, err := h.conversionService.ConvertNumberToWords(r.Context(), req)
	if err != nil {
		RespondWithNormalizedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NumberToWordsResponse{NumberToWordsResult: result})
}

// ConvertNumberToDollars handles POST {base}/convertNumberToDollars requests
func (h *ConversionHandler) ConvertNumberToDollars(w http.ResponseWriter, r *http.Request) {
	req, err := decodeConversionRequest(w, r)
	if err != nil {
		RespondWithNormalizedError(w, r, err)
		return
	}

	result, err := h.conversionService.ConvertNumberToDollars(r.Context(), req)
	if err != nil {
		RespondWithNormalizedError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NumberToDollarsResponse{NumberToDollarsResult: result})
}

// Health answers liveness probes.
func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func decodeConversionRequest(w http.ResponseWriter, r *http.Request) (domain.ConversionRequest, error) {
	var req domain.ConversionRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		return domain.ConversionRequest{}, &MalformedJSONError{Err: err}
	}
	return req, nil
}
