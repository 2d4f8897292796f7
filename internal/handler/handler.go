package handler

import (
	"context"
	"strings"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.uber.org/zap"
)

//go:generate mockery --name LinkUsecase

// LinkUsecase определяет бизнес-операции, доступные HTTP слою
type LinkUsecase interface {
	CreateLink(ctx context.Context, ownerID string, input model.CreateLinkInput) (model.Link, error)
	UpdateLink(ctx context.Context, ownerID string, id int64, update model.LinkUpdate) (model.Link, error)
	DeleteLink(ctx context.Context, ownerID string, id int64) error
	ListLinks(ctx context.Context, ownerID string, sort string) ([]model.Link, error)
	ResolveLink(ctx context.Context, code string) (string, error)
	SuggestShortCode(ctx context.Context, ownerID string) (string, error)
}

// StoragePinger проверяет доступность хранилища
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// Handler обрабатывает HTTP запросы
type Handler struct {
	usecase LinkUsecase
	logger  *zap.Logger
	storage StoragePinger
	baseURL string
}

// New создает новый экземпляр Handler.
// baseURL используется для построения коротких ссылок в ответах API.
func New(usecase LinkUsecase, logger *zap.Logger, storage StoragePinger, baseURL string) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
		storage: storage,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// linkView представление ссылки в ответах API
type linkView struct {
	model.Link
	ShortURL string `json:"shortUrl"`
}

func (h *Handler) view(link model.Link) linkView {
	return linkView{Link: link, ShortURL: h.baseURL + "/l/" + link.ShortCode}
}

func (h *Handler) views(links []model.Link) []linkView {
	views := make([]linkView, 0, len(links))
	for _, link := range links {
		views = append(views, h.view(link))
	}
	return views
}
