package usecase

import (
	"context"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const tracerName = "github.com/avc-dev/link-shortener/internal/usecase"

//go:generate mockery --name LinkRepository
//go:generate mockery --name ClickRecorder
//go:generate mockery --name CodeSuggester

// LinkRepository определяет интерфейс для работы с хранилищем ссылок
type LinkRepository interface {
	CreateLink(ctx context.Context, link model.Link) (model.Link, error)
	UpdateLink(ctx context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error)
	DeleteLink(ctx context.Context, id int64, userID string) error
	GetLinkByShortCode(ctx context.Context, code string) (model.Link, error)
	GetLinksByUserID(ctx context.Context, userID string) ([]model.Link, error)
}

// ClickRecorder принимает переходы для фонового учета
type ClickRecorder interface {
	// Enqueue не блокирует; false означает, что переход не будет учтен.
	// ctx передает контекст трассы, но не ограничивает время учета.
	Enqueue(ctx context.Context, linkID int64) bool
}

// CodeSuggester подбирает свободный короткий код
type CodeSuggester interface {
	SuggestShortCode(ctx context.Context) (string, error)
}

// LinkUsecase содержит бизнес-логику работы со ссылками
type LinkUsecase struct {
	repo   LinkRepository
	clicks ClickRecorder
	codes  CodeSuggester
	logger *zap.Logger
	tracer trace.Tracer
	now    func() time.Time
}

// NewLinkUsecase создает новый экземпляр LinkUsecase
func NewLinkUsecase(repo LinkRepository, clicks ClickRecorder, codes CodeSuggester, logger *zap.Logger) *LinkUsecase {
	return &LinkUsecase{
		repo:   repo,
		clicks: clicks,
		codes:  codes,
		logger: logger,
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
}
