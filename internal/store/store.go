package store

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/avc-dev/link-shortener/internal/model"
)

var (
	ErrNotFound      = errors.New("link not found")
	ErrAlreadyExists = errors.New("short code already exists")
)

// Store хранит ссылки в памяти процесса
type Store struct {
	links  map[int64]model.Link
	codes  map[string]int64
	nextID int64
	now    func() time.Time
	mutex  sync.Mutex
}

func NewStore() *Store {
	return &Store{
		links:  make(map[int64]model.Link),
		codes:  make(map[string]int64),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Insert сохраняет новую ссылку и назначает ей идентификатор
func (s *Store) Insert(_ context.Context, link model.Link) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.codes[link.ShortCode]; exists {
		return model.Link{}, fmt.Errorf("code %s: %w", link.ShortCode, ErrAlreadyExists)
	}

	now := s.now()
	link.ID = s.nextID
	link.CreatedAt = now
	link.UpdatedAt = now
	s.nextID++

	s.links[link.ID] = link.Clone()
	s.codes[link.ShortCode] = link.ID

	return link.Clone(), nil
}

// UpdateByID применяет частичное обновление к ссылке владельца
func (s *Store) UpdateByID(_ context.Context, id int64, userID string, update model.LinkUpdate) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok || link.UserID != userID {
		return model.Link{}, fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	if update.ShortCode != nil && *update.ShortCode != link.ShortCode {
		if _, exists := s.codes[*update.ShortCode]; exists {
			return model.Link{}, fmt.Errorf("code %s: %w", *update.ShortCode, ErrAlreadyExists)
		}
		delete(s.codes, link.ShortCode)
		s.codes[*update.ShortCode] = id
	}

	link = update.Apply(link)
	link.UpdatedAt = s.now()
	s.links[id] = link

	return link.Clone(), nil
}

// DeleteByID безвозвратно удаляет ссылку владельца
func (s *Store) DeleteByID(_ context.Context, id int64, userID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok || link.UserID != userID {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	delete(s.codes, link.ShortCode)
	delete(s.links, id)

	return nil
}

func (s *Store) FindByShortCode(_ context.Context, code string) (model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	id, ok := s.codes[code]
	if !ok {
		return model.Link{}, fmt.Errorf("code %s: %w", code, ErrNotFound)
	}

	return s.links[id].Clone(), nil
}

// FindByOwner возвращает ссылки пользователя, новые первыми
func (s *Store) FindByOwner(_ context.Context, userID string) ([]model.Link, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	links := make([]model.Link, 0)
	for _, link := range s.links {
		if link.UserID == userID {
			links = append(links, link.Clone())
		}
	}

	sortNewestFirst(links)

	return links, nil
}

// IncrementClickCount увеличивает счетчик переходов под блокировкой
func (s *Store) IncrementClickCount(_ context.Context, id int64) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	link, ok := s.links[id]
	if !ok {
		return fmt.Errorf("id %d: %w", id, ErrNotFound)
	}

	link.ClickCount++
	s.links[id] = link

	return nil
}

// IsCodeUnique проверяет, свободен ли код
func (s *Store) IsCodeUnique(_ context.Context, code string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, exists := s.codes[code]
	return !exists, nil
}

// Ping всегда успешен: хранилище в памяти процесса
func (s *Store) Ping(_ context.Context) error {
	return nil
}

// InitializeWith заполняет хранилище ранее сохраненными записями (без проверок).
// Используется при загрузке данных из файла.
func (s *Store) InitializeWith(links []model.Link) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for _, link := range links {
		s.links[link.ID] = link.Clone()
		s.codes[link.ShortCode] = link.ID
		if link.ID >= s.nextID {
			s.nextID = link.ID + 1
		}
	}
}

// checkpoint фиксирует состояние хранилища для последующего restore
type checkpoint struct {
	links  []model.Link
	nextID int64
}

func (s *Store) checkpoint() checkpoint {
	links := s.snapshot()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return checkpoint{links: links, nextID: s.nextID}
}

// restore возвращает хранилище к состоянию checkpoint
func (s *Store) restore(cp checkpoint) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.links = make(map[int64]model.Link, len(cp.links))
	s.codes = make(map[string]int64, len(cp.links))
	for _, link := range cp.links {
		s.links[link.ID] = link
		s.codes[link.ShortCode] = link.ID
	}
	s.nextID = cp.nextID
}

// snapshot возвращает все ссылки в порядке идентификаторов
func (s *Store) snapshot() []model.Link {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	links := make([]model.Link, 0, len(s.links))
	for _, link := range s.links {
		links = append(links, link.Clone())
	}
	slices.SortFunc(links, func(a, b model.Link) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return links
}

func sortNewestFirst(links []model.Link) {
	slices.SortFunc(links, func(a, b model.Link) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
}
