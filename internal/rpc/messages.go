package rpc

import "github.com/avc-dev/link-shortener/internal/model"

type CreateLinkRequest struct {
	model.CreateLinkInput
}

type UpdateLinkRequest struct {
	ID int64 `json:"id"`
	model.LinkUpdate
}

type DeleteLinkRequest struct {
	ID int64 `json:"id"`
}

type DeleteLinkResponse struct{}

type ListLinksRequest struct {
	Sort string `json:"sort,omitempty"`
}

type ListLinksResponse struct {
	Links []model.Link `json:"links"`
}

type LinkResponse struct {
	Link model.Link `json:"link"`
}
