package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// ErrorReporter принимает ошибки фоновых задач, которые не возвращаются вызывающему
type ErrorReporter interface {
	Report(ctx context.Context, err error, tags map[string]string)
}

// ClickProcessorConfig параметры пула обработки переходов
type ClickProcessorConfig struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

// clickTask переход, ожидающий учета; span связывает ошибку учета с трассой редиректа
type clickTask struct {
	linkID int64
	span   trace.SpanContext
}

// ClickProcessor увеличивает счетчики переходов в фоне.
// Enqueue никогда не блокирует: при переполненной очереди инкремент отбрасывается.
type ClickProcessor struct {
	incrementer ClickIncrementer
	reporter    ErrorReporter
	logger      *zap.Logger
	timeout     time.Duration
	workers     int

	queue  chan clickTask
	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewClickProcessor создает процессор; воркеры запускаются методом Start
func NewClickProcessor(incrementer ClickIncrementer, cfg ClickProcessorConfig, reporter ErrorReporter, logger *zap.Logger) *ClickProcessor {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}

	return &ClickProcessor{
		incrementer: incrementer,
		reporter:    reporter,
		logger:      logger,
		timeout:     cfg.Timeout,
		workers:     cfg.Workers,
		queue:       make(chan clickTask, cfg.QueueSize),
	}
}

// Start запускает воркеров
func (p *ClickProcessor) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
}

// Enqueue ставит инкремент в очередь и сразу возвращает управление.
// Возвращает false, если инкремент отброшен. Из ctx берется только контекст трассы:
// отмена запроса не отменяет учет перехода.
func (p *ClickProcessor) Enqueue(ctx context.Context, linkID int64) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warn("click processor stopped, dropping increment", zap.Int64("link_id", linkID))
		return false
	}

	select {
	case p.queue <- clickTask{linkID: linkID, span: trace.SpanContextFromContext(ctx)}:
		return true
	default:
		p.logger.Warn("click queue is full, dropping increment", zap.Int64("link_id", linkID))
		return false
	}
}

// Stop прекращает прием задач и дожидается обработки уже поставленных
func (p *ClickProcessor) Stop() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *ClickProcessor) worker(workerID int) {
	defer p.wg.Done()

	for task := range p.queue {
		p.increment(workerID, task)
	}
}

func (p *ClickProcessor) increment(workerID int, task clickTask) {
	linkID := task.linkID

	// Запрос на редирект уже завершен, поэтому контекст собственный
	ctx := context.Background()
	if task.span.IsValid() {
		ctx = trace.ContextWithSpanContext(ctx, task.span)
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.incrementer.IncrementClickCount(ctx, linkID)
	if err == nil {
		return
	}

	p.logger.Error("failed to increment click count",
		zap.Int64("link_id", linkID),
		zap.Int("worker", workerID),
		zap.Error(err),
	)

	if p.reporter != nil {
		p.reporter.Report(ctx, err, map[string]string{
			"operation": "increment_click_count",
			"link_id":   strconv.FormatInt(linkID, 10),
		})
	}
}
