package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/openlluna/website/internal/usecase"
)

const (
	maxContactBodyBytes = 64 << 10

	codeBadRequest = "BAD_REQUEST"
	msgBadRequest  = "Bad request."
)

type InquirySubmitter interface {
	Execute(ctx context.Context, input usecase.SubmitInquiryInput) (*usecase.SubmitInquiryOutput, error)
}

type ContactHandler struct {
	SubmitInquiryUC InquirySubmitter
	logger          *zap.Logger
}

func NewContactHandler(uc InquirySubmitter, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{
		SubmitInquiryUC: uc,
		logger:          logger.Named("contact"),
	}
}

// Handle serves POST /api/contact. Anything unexpected, panics included, is
// reported to the caller as a generic 400.
func (h *ContactHandler) Handle(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.logger.Error("contact handler panic", zap.String("panic", fmt.Sprint(rec)), zap.Stack("stack"))
			writeErrorResponse(w, http.StatusBadRequest, codeBadRequest, msgBadRequest)
		}
	}()

	r.Body = http.MaxBytesReader(w, r.Body, maxContactBodyBytes)

	var input usecase.SubmitInquiryInput
	if err := decodeSingleJSON(r.Body, &input); err != nil {
		h.logger.Info("invalid contact payload", zap.Error(err))
		writeErrorResponse(w, http.StatusBadRequest, codeBadRequest, msgBadRequest)
		return
	}

	output, err := h.SubmitInquiryUC.Execute(r.Context(), input)
	if err != nil {
		h.writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// decodeSingleJSON rejects bodies carrying anything after the first value.
func decodeSingleJSON(body io.Reader, v interface{}) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after JSON body")
	}
	return nil
}

func (h *ContactHandler) writeUseCaseError(w http.ResponseWriter, err error) {
	var (
		domainErr    *usecase.DomainError
		technicalErr *usecase.TechnicalError
	)

	switch {
	case errors.As(err, &domainErr):
		fields := make([]string, 0, len(domainErr.Fields))
		for _, f := range domainErr.Fields {
			fields = append(fields, f.Error())
		}
		h.logger.Info("inquiry rejected", zap.String("code", domainErr.Code), zap.Strings("fields", fields))
		writeErrorResponse(w, http.StatusBadRequest, domainErr.Code, domainErr.Message)
	case errors.As(err, &technicalErr):
		writeErrorResponse(w, http.StatusInternalServerError, technicalErr.Code, technicalErr.Message)
	default:
		h.logger.Error("inquiry failed", zap.Error(err))
		writeErrorResponse(w, http.StatusBadRequest, codeBadRequest, msgBadRequest)
	}
}
