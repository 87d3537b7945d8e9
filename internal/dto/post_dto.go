package dto

import "io"

// ImageFile is an uploaded image handed from the multipart handler to
// the service layer.
type ImageFile struct {
	Reader   io.Reader
	FileName string
}

type AddCommentInput struct {
	Text string `json:"text" binding:"required"`
}

type LikedResponse struct {
	Liked bool `json:"liked"`
}

type ProfilePictureResponse struct {
	ProfilePictureURL string `json:"profilePictureUrl"`
}
