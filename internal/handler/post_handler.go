package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"wellnessPosts/internal/models"
	"wellnessPosts/internal/query"
	"wellnessPosts/internal/service"
)

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context(), query.FromValues(r.URL.Query()))
	if err != nil {
		h.Log.WithError(err).Error("Error fetching posts")
		WriteError(w, messageInternalError, http.StatusInternalServerError)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if h.Cfg.MaxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteError(w, fmt.Sprintf("Request body too large (max %d bytes)", tooLarge.Limit), http.StatusRequestEntityTooLarge)
			return
		}
		WriteError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	// the image check comes first so a missing image never reaches the store
	if strings.TrimSpace(req.Image) == "" {
		WriteError(w, "No image data provided", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrImageRequired) {
			WriteError(w, "No image data provided", http.StatusBadRequest)
			return
		}
		h.Log.WithError(err).Error("Error creating post")
		WriteError(w, messageInternalError, http.StatusInternalServerError)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return "Invalid request body"
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		switch fe.Tag() {
		case "required":
			messages = append(messages, fe.Field()+" is required")
		default:
			messages = append(messages, fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(messages, "; ")
}
