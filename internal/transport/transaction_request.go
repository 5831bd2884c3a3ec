package transport

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/scavengerhunt-backend/internal/service"
	"github.com/goodnatureofminers/scavengerhunt-backend/pkg/safe"
)

// DefaultIcon is shown by wallets next to the request label.
const DefaultIcon = "https://solana.com/src/img/branding/solanaLogoMark.svg"

const (
	resultMetadata         = "metadata"
	resultAccepted         = "accepted"
	resultRejected         = "rejected"
	resultBadRequest       = "bad_request"
	resultFailed           = "failed"
	resultMethodNotAllowed = "method_not_allowed"
)

// Metadata is returned to wallets before they post their account.
type Metadata struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

type transactionRequestBody struct {
	Account string `json:"account"`
}

type transactionResponse struct {
	Transaction string `json:"transaction"`
	Message     string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// TransactionRequestHandler serves one transaction request endpoint: GET returns metadata, POST
// returns a partially signed transaction or an in-band rejection.
type TransactionRequestHandler struct {
	builder         TransactionBuilder
	metadata        Metadata
	requireLocation bool
	metrics         RequestMetrics
	logger          *zap.Logger
}

// NewCheckInHandler serves check-ins. POST requests must carry the location id.
func NewCheckInHandler(builder TransactionBuilder, metrics RequestMetrics, logger *zap.Logger) *TransactionRequestHandler {
	return &TransactionRequestHandler{
		builder:         builder,
		metadata:        Metadata{Label: "Scavenger Hunt!", Icon: DefaultIcon},
		requireLocation: true,
		metrics:         metrics,
		logger:          logger,
	}
}

// NewMintHandler serves collectible mints.
func NewMintHandler(builder TransactionBuilder, metrics RequestMetrics, logger *zap.Logger) *TransactionRequestHandler {
	return &TransactionRequestHandler{
		builder:  builder,
		metadata: Metadata{Label: "Mint Nft", Icon: DefaultIcon},
		metrics:  metrics,
		logger:   logger,
	}
}

func (h *TransactionRequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	var result string
	defer func() {
		h.metrics.Observe(r.Method, result, started)
	}()

	switch r.Method {
	case http.MethodGet:
		result = resultMetadata
		writeJSON(w, http.StatusOK, h.metadata)
	case http.MethodPost:
		result = h.post(w, r)
	default:
		result = resultMethodNotAllowed
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (h *TransactionRequestHandler) post(w http.ResponseWriter, r *http.Request) string {
	req, problem := h.parse(r)
	if problem != "" {
		writeError(w, http.StatusBadRequest, problem)
		return resultBadRequest
	}

	outcome, err := h.builder.Build(r.Context(), req)
	if err != nil {
		h.logger.Error("build transaction",
			zap.String("request_id", RequestIDFromContext(r.Context())),
			zap.Stringer("participant", req.Participant),
			zap.Stringer("reference", req.Reference),
			zap.Error(err),
		)
		writeError(w, http.StatusInternalServerError, "error creating transaction")
		return resultFailed
	}

	writeJSON(w, http.StatusOK, transactionResponse{
		Transaction: outcome.Transaction,
		Message:     outcome.Message,
	})
	if outcome.Kind == service.OutcomeAccepted {
		return resultAccepted
	}
	return resultRejected
}

// parse returns the request or a message naming the offending parameter.
func (h *TransactionRequestHandler) parse(r *http.Request) (service.Request, string) {
	var body transactionRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return service.Request{}, "Invalid request body"
	}

	account := strings.TrimSpace(body.Account)
	if account == "" {
		return service.Request{}, "No account provided"
	}
	participant, err := solana.PublicKeyFromBase58(account)
	if err != nil {
		return service.Request{}, "Invalid account provided"
	}

	query := r.URL.Query()
	rawReference := strings.TrimSpace(query.Get("reference"))
	if rawReference == "" {
		return service.Request{}, "No reference provided"
	}
	reference, err := solana.PublicKeyFromBase58(rawReference)
	if err != nil {
		return service.Request{}, "Invalid reference provided"
	}

	req := service.Request{Participant: participant, Reference: reference}
	if !h.requireLocation {
		return req, ""
	}

	rawID := strings.TrimSpace(query.Get("id"))
	if rawID == "" {
		return service.Request{}, "No id provided"
	}
	id, err := safe.ParseUint32(rawID)
	if err != nil {
		return service.Request{}, "Invalid id provided"
	}
	req.LocationID = id
	return req, ""
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}
