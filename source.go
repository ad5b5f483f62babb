package repeat

import (
	"fmt"
	"log/slog"
)

// DefaultBackupLimit is how many detached handles a Source keeps for reuse.
const DefaultBackupLimit = 10

// Container is the live view tree a Source mounts handles into.
type Container interface {
	Attach(item *Item)
	Detach(item *Item)
}

// Binder is implemented by views that can be rebound to another item when
// their handle is reused.
type Binder[T any] interface {
	Bind(item T, index int)
}

// Source is a DataSource over a slice. Views are created by a template
// function; handles detached by the Manager are kept in a bounded backup
// pool and handed out again, rebinding their view if it implements Binder.
//
// Usage:
//
//	layer := repeat.NewLayer()
//	src, err := repeat.NewSource(items, layer,
//	    func(it Photo, _ int) repeat.Size { return it.Size },
//	    func(it Photo, i int) repeat.View { return newPhotoView(it, i) })
type Source[T any] struct {
	items     []T
	size      func(T, int) Size
	template  func(T, int) View
	container Container
	logger    *slog.Logger

	backup      []*Item
	backupLimit int
	attached    map[int]*Item
	onChange    []func()

	created int
	reused  int
}

// SourceOption configures a Source.
type SourceOption func(*sourceConfig) error

type sourceConfig struct {
	backupLimit int
	logger      *slog.Logger
}

// WithBackupLimit sets how many detached handles are kept for reuse.
// Zero disables recycling.
func WithBackupLimit(n int) SourceOption {
	return func(c *sourceConfig) error {
		if n < 0 {
			return fmt.Errorf("%w: backup limit %d < 0", ErrInvalidOption, n)
		}
		c.backupLimit = n
		return nil
	}
}

// WithSourceLogger sets the logger used for recycling traces.
func WithSourceLogger(l *slog.Logger) SourceOption {
	return func(c *sourceConfig) error {
		if l == nil {
			return fmt.Errorf("%w: nil logger", ErrInvalidOption)
		}
		c.logger = l
		return nil
	}
}

// NewSource creates a Source over items, mounting views into container.
func NewSource[T any](items []T, container Container, size func(T, int) Size, template func(T, int) View, opts ...SourceOption) (*Source[T], error) {
	if container == nil {
		return nil, ErrNilContainer
	}
	if size == nil || template == nil {
		return nil, fmt.Errorf("new source: %w: nil size or template func", ErrInvalidOption)
	}

	cfg := sourceConfig{backupLimit: DefaultBackupLimit, logger: repeatLogger}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("new source: %w", err)
		}
	}

	return &Source[T]{
		items:       items,
		size:        size,
		template:    template,
		container:   container,
		logger:      cfg.logger,
		backupLimit: cfg.backupLimit,
		attached:    make(map[int]*Item),
	}, nil
}

// Len implements DataSource.
func (s *Source[T]) Len() int { return len(s.items) }

// ItemSize implements DataSource.
func (s *Source[T]) ItemSize(index int) Size {
	return s.size(s.items[index], index)
}

// At returns the item at index.
func (s *Source[T]) At(index int) T { return s.items[index] }

// Item implements DataSource. A mounted index returns its mounted handle;
// otherwise a backed-up handle is rebound, or a new one is created.
func (s *Source[T]) Item(index int) *Item {
	if item, ok := s.attached[index]; ok {
		return item
	}

	it := s.items[index]
	if n := len(s.backup); n > 0 {
		item := s.backup[n-1]
		s.backup[n-1] = nil
		s.backup = s.backup[:n-1]

		item.Index = index
		item.Size = s.size(it, index)
		if b, ok := item.View.(Binder[T]); ok {
			b.Bind(it, index)
		} else {
			item.View = s.template(it, index)
		}
		s.reused++
		return item
	}

	s.created++
	return &Item{
		Index: index,
		Size:  s.size(it, index),
		View:  s.template(it, index),
	}
}

// AttachItem implements DataSource.
func (s *Source[T]) AttachItem(item *Item) {
	s.attached[item.Index] = item
	s.container.Attach(item)
}

// DetachItem implements DataSource. The handle goes to the backup pool
// unless it is full.
func (s *Source[T]) DetachItem(item *Item) {
	if cur, ok := s.attached[item.Index]; ok && cur == item {
		delete(s.attached, item.Index)
	}
	s.container.Detach(item)

	if len(s.backup) < s.backupLimit {
		s.backup = append(s.backup, item)
	}
}

// SetItems replaces the collection and notifies change listeners.
// Mounted handles stay attached until the next full render detaches them.
func (s *Source[T]) SetItems(items []T) {
	s.items = items
	s.logger.Debug("repeat source change", "items", len(items), "attached", len(s.attached))
	for _, fn := range s.onChange {
		fn()
	}
}

// OnChange registers fn to run after every SetItems.
func (s *Source[T]) OnChange(fn func()) {
	s.onChange = append(s.onChange, fn)
}

// BackupLen returns the number of handles waiting for reuse.
func (s *Source[T]) BackupLen() int { return len(s.backup) }

// Created returns how many handles have been created, and how many times a
// backed-up handle was reused.
func (s *Source[T]) Created() (created, reused int) {
	return s.created, s.reused
}
