package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vsl-api/pkg/auth"
	"vsl-api/pkg/models"
	"vsl-api/pkg/store"
)

// uploadField is the multipart form field the client must put the file in.
const uploadField = "video"

// ObjectStore is the piece of the storage gateway the handlers need. Tests
// inject a fake.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Handler carries the collaborators for all routes so tests can run against
// isolated instances instead of shared process globals.
type Handler struct {
	Users          store.UserStore
	Videos         store.VideoStore
	Tokens         *auth.TokenService
	Objects        ObjectStore
	Logger         *slog.Logger
	MaxUploadBytes int64
}

// Register mounts the routes on the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.Use(CORS())
	r.GET("/", h.Liveness)
	r.POST("/api/auth/login", h.Login)

	videos := r.Group("/api/videos", h.Tokens.RequireAuth())
	videos.POST("/upload", h.Upload)
	videos.GET("", h.List)
}

func (h *Handler) Liveness(c *gin.Context) {
	c.String(http.StatusOK, "API VSL Online")
}

func (h *Handler) Login(c *gin.Context) {
	var creds Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.Users.FindByUsername(creds.Username)
	if err != nil {
		// Same response as a wrong password so usernames cannot be probed.
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.Tokens.Issue(user.Username)
	if err != nil {
		h.Logger.Error("issuing token failed", "username", user.Username, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

func (h *Handler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	file, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file received"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file received"})
		return
	}
	defer src.Close()

	body, err := io.ReadAll(src)
	if err != nil {
		h.Logger.Error("reading upload failed", "filename", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	// Objects are always keyed .mp4, whatever was actually uploaded. Clients
	// depend on the resulting URLs, so this stays.
	id := uuid.New().String()
	key := id + ".mp4"

	url, err := h.Objects.Put(c.Request.Context(), key, body, file.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.Error("storing upload failed",
			"key", key,
			"filename", file.Filename,
			"user", auth.Username(c),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	video := models.Video{
		ID:        id,
		Title:     file.Filename,
		URL:       url,
		EmbedCode: fmt.Sprintf(`<iframe src="%s" width="640" height="360" frameborder="0" allowfullscreen></iframe>`, url),
	}

	if err := h.Videos.Append(video); err != nil {
		h.Logger.Error("recording upload failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	h.Logger.Info("video uploaded", "id", id, "title", video.Title, "user", auth.Username(c))
	c.JSON(http.StatusCreated, video)
}

func (h *Handler) List(c *gin.Context) {
	videos, err := h.Videos.ListAll()
	if err != nil {
		h.Logger.Error("listing videos failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list videos"})
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}
	c.JSON(http.StatusOK, gin.H{"videos": videos})
}
