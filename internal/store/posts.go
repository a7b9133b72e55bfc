// Package store holds the application state as explicit values with pure
// transition functions, plus thin wrappers that persist after every
// mutation. Nothing in here touches the UI.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/temirbekov/flowdeck/internal/models"
)

var (
	// ErrPostNotFound is returned when a post id has no matching entry.
	ErrPostNotFound = errors.New("post not found")
	// ErrAmbiguousID is returned when an id prefix matches several entries.
	ErrAmbiguousID = errors.New("id prefix matches more than one entry")
)

// AddPost appends post to a copy of posts, assigning a UUID if the id is
// empty. It never rejects.
func AddPost(posts []models.Post, post models.Post) []models.Post {
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	next := make([]models.Post, 0, len(posts)+1)
	next = append(next, posts...)
	return append(next, post)
}

// UpdatePost shallow-merges updated over the entry with the same id.
func UpdatePost(posts []models.Post, updated models.Post) ([]models.Post, error) {
	next := make([]models.Post, len(posts))
	found := false
	for i, post := range posts {
		if post.ID == updated.ID {
			next[i] = post.Merge(updated)
			found = true
		} else {
			next[i] = post
		}
	}
	if !found {
		return posts, fmt.Errorf("update %s: %w", updated.ID, ErrPostNotFound)
	}
	return next, nil
}

// DeletePost removes the entry with the given id. On a miss the input
// slice is returned unchanged alongside ErrPostNotFound.
func DeletePost(posts []models.Post, id string) ([]models.Post, error) {
	next := make([]models.Post, 0, len(posts))
	found := false
	for _, post := range posts {
		if post.ID == id {
			found = true
			continue
		}
		next = append(next, post)
	}
	if !found {
		return posts, fmt.Errorf("delete %s: %w", id, ErrPostNotFound)
	}
	return next, nil
}

// postRecord is the blob form of a post. The schedule travels as text so
// a corrupt value degrades to a zero time instead of failing the load;
// the calendar substitutes "now" for zero times at render.
type postRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	Platform      string   `json:"platform"`
	ScheduledTime string   `json:"scheduled_time"`
	Status        string   `json:"status"`
	Tags          []string `json:"tags,omitempty"`
}

type postBlob struct {
	Posts []postRecord `json:"posts"`
}

// PostStore owns the post list and writes the whole blob on every
// mutation. It is the sole source of truth for scheduled content.
type PostStore struct {
	mu    sync.RWMutex
	path  string
	posts []models.Post
}

// OpenPosts loads the blob at path, creating an empty store when the
// file does not exist yet.
func OpenPosts(path string) (*PostStore, error) {
	s := &PostStore{path: path}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read post blob: %w", err)
	}
	var blob postBlob
	if err := json.Unmarshal(data, &blob); err != nil {
		return nil, fmt.Errorf("failed to parse post blob %s: %w", path, err)
	}
	for _, rec := range blob.Posts {
		at, err := time.Parse(time.RFC3339, rec.ScheduledTime)
		if err != nil {
			// Bad timestamps load as zero and get repaired at render.
			at = time.Time{}
		}
		s.posts = append(s.posts, models.Post{
			ID:            rec.ID,
			Title:         rec.Title,
			Content:       rec.Content,
			Platform:      models.Platform(rec.Platform),
			ScheduledTime: at,
			Status:        models.PostStatus(rec.Status),
			Tags:          rec.Tags,
		})
	}
	return s, nil
}

// Posts returns a copy of the current list.
func (s *PostStore) Posts() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.posts...)
}

// Get returns the post with the given id.
func (s *PostStore) Get(id string) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return models.Post{}, fmt.Errorf("get %s: %w", id, ErrPostNotFound)
}

// FindByPrefix resolves a (possibly abbreviated) post id.
func (s *PostStore) FindByPrefix(prefix string) (models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var matches []models.Post
	for _, post := range s.posts {
		if strings.HasPrefix(post.ID, prefix) {
			matches = append(matches, post)
		}
	}
	switch len(matches) {
	case 0:
		return models.Post{}, fmt.Errorf("find %q: %w", prefix, ErrPostNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Post{}, fmt.Errorf("find %q: %w", prefix, ErrAmbiguousID)
	}
}

// Add appends the post and persists. The stored post (with its assigned
// id) is returned.
func (s *PostStore) Add(post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = AddPost(s.posts, post)
	added := s.posts[len(s.posts)-1]
	return added, s.flush()
}

// Update merges and persists.
func (s *PostStore) Update(post models.Post) (models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := UpdatePost(s.posts, post)
	if err != nil {
		return models.Post{}, err
	}
	s.posts = next
	for _, p := range s.posts {
		if p.ID == post.ID {
			return p, s.flush()
		}
	}
	return models.Post{}, fmt.Errorf("update %s: %w", post.ID, ErrPostNotFound)
}

// Delete removes and persists.
func (s *PostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := DeletePost(s.posts, id)
	if err != nil {
		return err
	}
	s.posts = next
	return s.flush()
}

// flush writes the full list to the blob. Callers hold the write lock.
func (s *PostStore) flush() error {
	if s.path == "" {
		return nil
	}
	blob := postBlob{Posts: make([]postRecord, 0, len(s.posts))}
	for _, post := range s.posts {
		blob.Posts = append(blob.Posts, postRecord{
			ID:            post.ID,
			Title:         post.Title,
			Content:       post.Content,
			Platform:      string(post.Platform),
			ScheduledTime: post.ScheduledTime.Format(time.RFC3339),
			Status:        string(post.Status),
			Tags:          post.Tags,
		})
	}
	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode post blob: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write post blob: %w", err)
	}
	return nil
}
