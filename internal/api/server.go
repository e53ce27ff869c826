// Package api handles the HTTP endpoints
package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/billforge/invoice-engine/internal/assets"
	"github.com/billforge/invoice-engine/internal/invoice"
	"github.com/billforge/invoice-engine/pkg/invoiceformat"
)

// Server is the API server
type Server struct {
	router    *gin.Engine
	store     *assets.Store
	generator *invoice.Generator
	log       *zap.SugaredLogger
	maxUpload int64
}

// NewServer creates a new API server. maxUpload bounds the logo size in
// bytes.
func NewServer(store *assets.Store, generator *invoice.Generator, log *zap.SugaredLogger, maxUpload int64) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	server := &Server{
		router:    router,
		store:     store,
		generator: generator,
		log:       log,
		maxUpload: maxUpload,
	}

	server.setupRoutes()

	return server
}

func (s *Server) setupRoutes() {
	s.router.POST("/generate-invoice", s.handleGenerateInvoice)

	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}

// Router exposes the handler for embedding in an http.Server.
func (s *Server) Router() http.Handler {
	return s.router
}

// Run starts the API server
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// handleGenerateInvoice accepts a multipart form with a `logo` image and
// a `data` JSON field, and streams back the rendered document. The logo
// and the persisted output are removed on every exit path.
func (s *Server) handleGenerateInvoice(c *gin.Context) {
	// bound the whole request body; headroom covers the JSON part
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload+1<<20)

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.uploadError(c, assets.ErrTooLarge)
			return
		}
		c.JSON(400, gin.H{
			"error":   "Logo is required",
			"details": "attach a JPEG or PNG image as the 'logo' form field",
		})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(400, gin.H{"error": "File upload error", "details": err.Error()})
		return
	}
	defer src.Close()

	logo, err := s.store.Save(src, s.maxUpload)
	if err != nil {
		s.uploadError(c, err)
		return
	}
	defer s.store.Remove(logo.Path)

	data := c.PostForm("data")
	if data == "" {
		c.JSON(400, gin.H{"error": "Invoice data is required", "details": "missing 'data' form field"})
		return
	}

	inv, err := invoiceformat.Parse([]byte(data))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid invoice data", "details": err.Error()})
		return
	}

	if errs := invoiceformat.Validate(inv); len(errs) > 0 {
		c.JSON(400, gin.H{"error": "Validation failed", "details": errs.Messages()})
		return
	}

	res, err := s.generator.Generate(inv, logo, c.DefaultQuery("format", "pdf"))
	if err != nil {
		if errors.Is(err, invoice.ErrUnknownFormat) {
			c.JSON(400, gin.H{"error": "Unknown output format", "details": "supported formats: pdf, png"})
			return
		}
		// internal detail is logged, never sent to the caller
		s.log.Errorw("invoice generation failed", "error", err)
		c.JSON(500, gin.H{"error": "Failed to generate invoice", "details": "internal error"})
		return
	}
	defer s.store.Remove(res.Path)

	c.Header("Content-Disposition", "attachment; filename="+res.Filename)
	c.Data(200, res.ContentType, res.Bytes)
}

// uploadError maps asset constraint violations to the 400 responses the
// upload collaborator promises.
func (s *Server) uploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assets.ErrTooLarge):
		c.JSON(400, gin.H{"error": "File too large", "details": "Maximum file size is 5MB"})
	case errors.Is(err, assets.ErrUnsupportedType):
		c.JSON(400, gin.H{"error": "Invalid file type", "details": "Only JPG and PNG allowed."})
	default:
		c.JSON(400, gin.H{"error": "File upload error", "details": err.Error()})
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
