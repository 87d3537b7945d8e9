package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"savora.app/api/internal/dto"
	"savora.app/api/internal/model"
	"savora.app/api/internal/service"
	"savora.app/api/pkg/response"
	"savora.app/api/pkg/validator"
)

type PostHandler struct {
	service service.PostService
}

func NewPostHandler(service service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func actorRole(c *gin.Context) model.Role {
	if value, exists := c.Get("user_role"); exists {
		if role, ok := value.(model.Role); ok {
			return role
		}
	}
	return ""
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	description := c.PostForm("description")

	var image *dto.ImageFile
	fileHeader, err := c.FormFile("image")
	if err == nil {
		f, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read uploaded image"})
			return
		}
		defer f.Close()
		image = &dto.ImageFile{Reader: f, FileName: fileHeader.Filename}
	}

	post, err := h.service.CreatePost(c.Request.Context(), userID, description, image)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) GetAllPosts(c *gin.Context) {
	posts, err := h.service.GetAllPosts(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	if err := h.service.DeletePost(c.Request.Context(), userID, actorRole(c), postID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) AddComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var input dto.AddCommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	comment, err := h.service.AddComment(c.Request.Context(), userID, postID, input.Text)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *PostHandler) DeleteComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.service.DeleteComment(c.Request.Context(), userID, actorRole(c), commentID); err != nil {
		response.ResponseError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) LikePost(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.service.LikePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) UnlikePost(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	post, err := h.service.UnlikePost(c.Request.Context(), userID, postID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CheckPostLiked(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	liked, err := h.service.HasLikedPost(c.Request.Context(), userID, postID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikedResponse{Liked: liked})
}

func (h *PostHandler) LikeComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.service.LikeComment(c.Request.Context(), userID, commentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) UnlikeComment(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	comment, err := h.service.UnlikeComment(c.Request.Context(), userID, commentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *PostHandler) CheckCommentLiked(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	liked, err := h.service.HasLikedComment(c.Request.Context(), userID, commentID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikedResponse{Liked: liked})
}

func (h *PostHandler) GetProfilePicture(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}

	url, err := h.service.ProfilePictureURL(c.Request.Context(), userID)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfilePictureResponse{ProfilePictureURL: url})
}
