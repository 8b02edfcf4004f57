package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/openlluna/website/internal/infra/web"
)

type PageHandler struct {
	contact web.ContactData
	logger  *zap.Logger
}

func NewPageHandler(contact web.ContactData, logger *zap.Logger) *PageHandler {
	return &PageHandler{contact: contact, logger: logger.Named("pages")}
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := web.ContactPage(h.contact).Render(w); err != nil {
		h.logger.Error("render contact page", zap.Error(err))
	}
}
