package handler

import (
	"net/http"

	"artspace/internal/config"
	"artspace/internal/middleware"
	"artspace/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ChatHandler struct {
	uc *usecase.ChatUsecase
}

func NewChatHandler(uc *usecase.ChatUsecase) *ChatHandler {
	return &ChatHandler{uc: uc}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
}

func (h *ChatHandler) RegisterRoutes(api *echo.Group, cfg config.Config) {
	g := api.Group("/chat")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/send", h.send)
	g.GET("/conversation/:partnerId", h.conversation)
}

func (h *ChatHandler) send(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.Send(c.Request().Context(), p, usecase.SendMessageInput{
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ChatHandler) conversation(c echo.Context) error {
	p, ok := getPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Conversation(c.Request().Context(), p, c.Param("partnerId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
