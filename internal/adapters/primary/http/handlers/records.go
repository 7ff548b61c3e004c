package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"model-catalog-service/internal/adapters/primary/http/dto"
	"model-catalog-service/internal/core/ports/output"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const imageCacheControl = "public, max-age=31536000"

func (h *Handler) ListRecords(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	filter := ports.RecordFilter{
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		AccessLevel: c.Query("access_level"),
		Limit:       limit,
		Offset:      offset,
	}

	page, err := h.recordSvc.ListRecords(c.Request.Context(), filter)
	if err != nil {
		log.WithError(err).Error("list records failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ListRecordsResponse{
		Items:      page.Items,
		Total:      page.Total,
		PageSize:   page.Limit,
		NextOffset: page.Offset + len(page.Items),
	})
}

func (h *Handler) GetRecord(c *gin.Context) {
	doc, err := h.recordSvc.GetRecord(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *Handler) GetRecordDetail(c *gin.Context) {
	detail, err := h.recordSvc.GetRecordDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ModelDetailEnvelope{Model: dto.ToModelDetailResponse(detail)})
}

func (h *Handler) GetRecordImage(c *gin.Context) {
	img, err := h.recordSvc.FetchImage(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapDomainError(c, err)
		return
	}

	if img.Placeholder {
		c.Redirect(http.StatusFound, h.placeholderURL(c))
		return
	}

	c.Header("Cache-Control", imageCacheControl)
	c.Data(http.StatusOK, img.ContentType, img.Data)
}

// placeholderURL resolves the placeholder path against the public base URL,
// or against the request URL when none is configured. The request Host is
// taken as sent, so proxied deployments must set the public base URL.
func (h *Handler) placeholderURL(c *gin.Context) string {
	ref, err := url.Parse(h.placeholderPath)
	if err != nil {
		return h.placeholderPath
	}

	base, err := url.Parse(h.publicBaseURL)
	if h.publicBaseURL == "" || err != nil {
		scheme := "http"
		if c.Request.TLS != nil {
			scheme = "https"
		}
		if proto := strings.ToLower(c.GetHeader("X-Forwarded-Proto")); proto == "http" || proto == "https" {
			scheme = proto
		}
		base = &url.URL{Scheme: scheme, Host: c.Request.Host, Path: c.Request.URL.Path}
	}
	return base.ResolveReference(ref).String()
}
