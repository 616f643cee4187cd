package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/connex-go/pkg/framework"
	"github.com/goodnatureofminers/connex-go/pkg/rules"
	"github.com/goodnatureofminers/connex-go/pkg/thor"
)

// statusHandler serves chain status over the gateway mux.
type statusHandler struct {
	thor   *framework.Thor
	logger *zap.Logger
}

func newStatusHandler(t *framework.Thor, logger *zap.Logger) *statusHandler {
	return &statusHandler{thor: t, logger: logger.Named("statusHandler")}
}

func (h *statusHandler) register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/status", h.status); err != nil {
		return err
	}
	if err := mux.HandlePath(http.MethodGet, "/v1/genesis", h.genesis); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/v1/blocks/{revision}", h.block)
}

func (h *statusHandler) status(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.write(w, http.StatusOK, h.thor.Status())
}

func (h *statusHandler) genesis(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.write(w, http.StatusOK, h.thor.Genesis())
}

func (h *statusHandler) block(w http.ResponseWriter, r *http.Request, params map[string]string) {
	visitor, err := h.blockVisitor(params["revision"])
	if err != nil {
		h.fail(w, err)
		return
	}
	b, err := visitor.Get(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	if b == nil {
		h.write(w, http.StatusNotFound, errorBody{Error: "block not found"})
		return
	}
	h.write(w, http.StatusOK, b)
}

func (h *statusHandler) blockVisitor(revision string) (*framework.BlockVisitor, error) {
	if revision == "best" {
		return h.thor.BestBlock(), nil
	}
	if strings.HasPrefix(revision, "0x") || strings.HasPrefix(revision, "0X") {
		return h.thor.Block(thor.RevisionID(revision))
	}
	n, err := strconv.ParseUint(revision, 10, 32)
	if err != nil {
		return nil, rules.BadParameter("revision: expected bytes32 or unsigned 32-bit integer")
	}
	return h.thor.Block(thor.RevisionNumber(uint32(n)))
}

type errorBody struct {
	Error string `json:"error"`
}

func (h *statusHandler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, rules.ErrBadParameter) {
		h.write(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	h.logger.Error("driver call failed", zap.Error(err))
	h.write(w, http.StatusBadGateway, errorBody{Error: err.Error()})
}

func (h *statusHandler) write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
