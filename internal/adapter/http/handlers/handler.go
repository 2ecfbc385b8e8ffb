package handlers

import (
	"antenna_ops/internal/domain/entities"
	"antenna_ops/internal/usecase"
	"antenna_ops/pkg"
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeCSV  = "text/csv; charset=utf-8"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// IStoreReader is the read side of the store that derived views are computed from.
type IStoreReader interface {
	Snapshot() usecase.Snapshot
	Today() entities.Date
	Now() time.Time
}

var _ IStoreReader = (*usecase.Store)(nil)

var (
	errInvalidQuery = pkg.NewDomainErrorSimple("INVALID_QUERY", "Invalid query parameters", http.StatusBadRequest)
	errRenderFailed = pkg.NewDomainErrorSimple("RENDER_FAILED", "Could not render document", http.StatusInternalServerError)
)

// sendFile renders into memory first so a failed render still gets a JSON error.
func sendFile(c *gin.Context, contentType, filename string, render func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		log.Printf("[http][file] render failed name=%s err=%v", filename, err)
		c.JSON(errRenderFailed.HTTPStatus, errRenderFailed.ToHTTPError())
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// fileSafe replaces whitespace so a title can be used in a download name.
func fileSafe(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
