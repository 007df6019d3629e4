package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"dsatutor/models"
	"dsatutor/services"

	"github.com/gorilla/mux"
)

const maxUploadBytes = 10 << 20

type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// RegisterRoutes expects a router that already carries the auth
// middleware.
func (h *ChatHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/chat/new", h.NewChat).Methods("POST")
	router.HandleFunc("/chats", h.ListChats).Methods("GET")
	router.HandleFunc("/chat", h.SendMessage).Methods("POST")
	router.HandleFunc("/chat/file", h.SendFileMessage).Methods("POST")
	router.HandleFunc("/chat/rename", h.Rename).Methods("POST")
	router.HandleFunc("/chat/regenerate", h.Regenerate).Methods("POST")
	router.HandleFunc("/chat/{id}", h.Delete).Methods("DELETE")
}

func (h *ChatHandler) NewChat(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	chat, err := h.service.NewChat(claims.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create chat")
		return
	}

	writeJSON(w, http.StatusOK, chat)
}

func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	chats, err := h.service.ListChats(claims.UserID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve chats")
		return
	}

	writeJSON(w, http.StatusOK, chats)
}

func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	reply, err := h.service.SendMessage(req.ChatID, claims.UserID, req.Message)
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SendMessageResponse{Reply: reply})
}

func (h *ChatHandler) SendFileMessage(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeReply(w, http.StatusBadRequest, "⚠️ File or message missing")
		return
	}

	message := r.FormValue("message")
	chatID := r.FormValue("chatId")

	file, _, err := r.FormFile("file")
	if err != nil || message == "" {
		writeReply(w, http.StatusBadRequest, "⚠️ File or message missing")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		writeReply(w, http.StatusInternalServerError, "❌ Internal server error")
		return
	}

	reply, err := h.service.SendFileMessage(chatID, claims.UserID, message, string(content))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeReply(w, http.StatusNotFound, "❌ Chat not found")
		} else {
			writeReply(w, http.StatusInternalServerError, "❌ Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.SendMessageResponse{Reply: reply})
}

func (h *ChatHandler) Rename(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	var req models.RenameChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.service.Rename(req.ChatID, claims.UserID, req.Title); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Chat not found")
		} else {
			writeError(w, http.StatusInternalServerError, "Failed to rename chat")
		}
		return
	}

	writeJSON(w, http.StatusOK, models.StatusResponse{Message: "Renamed successfully"})
}

func (h *ChatHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)

	var req models.RegenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	reply, err := h.service.Regenerate(req.ChatID, claims.UserID, req.UserPrompt)
	if err != nil {
		h.writeChatError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.SendMessageResponse{Reply: reply})
}

func (h *ChatHandler) Delete(w http.ResponseWriter, r *http.Request) {
	claims := identityFrom(r)
	chatID := mux.Vars(r)["id"]

	if err := h.service.Delete(chatID, claims.UserID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete chat")
		return
	}

	writeJSON(w, http.StatusOK, models.StatusResponse{Message: "Deleted successfully"})
}

func (h *ChatHandler) writeChatError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeReply(w, http.StatusNotFound, "❌ Chat not found")
	case errors.Is(err, services.ErrModelFailure):
		writeReply(w, http.StatusInternalServerError, "❌ Model API error")
	default:
		writeReply(w, http.StatusInternalServerError, "❌ Internal server error")
	}
}
