package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/temirbekov/flowdeck/internal/models"
)

func newTestStore(t *testing.T) *PostStore {
	t.Helper()
	s, err := OpenPosts(filepath.Join(t.TempDir(), "posts.json"))
	if err != nil {
		t.Fatalf("OpenPosts: %v", err)
	}
	return s
}

func TestAddThenGetReturnsInput(t *testing.T) {
	s := newTestStore(t)
	in := models.Post{
		Title:         "Launch",
		Content:       "Excited to announce our launch! #launch",
		Platform:      models.PlatformTwitter,
		ScheduledTime: time.Date(2024, time.January, 20, 10, 0, 0, 0, time.Local),
		Status:        models.StatusDraft,
		Tags:          []string{"launch"},
	}

	added, err := s.Add(in)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID == "" {
		t.Fatal("no id assigned")
	}

	got, err := s.Get(added.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	in.ID = added.ID
	if !reflect.DeepEqual(got, in) {
		t.Errorf("fetched post = %+v, want %+v", got, in)
	}
}

func TestAddKeepsCallerID(t *testing.T) {
	s := newTestStore(t)
	added, err := s.Add(models.Post{ID: "fixed", Title: "t"})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if added.ID != "fixed" {
		t.Errorf("id = %q, want fixed", added.ID)
	}
}

func TestDeleteMissingIDLeavesListUnchanged(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Add(models.Post{Title: "a"}); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add(models.Post{Title: "b"}); err != nil {
		t.Fatal(err)
	}
	before := s.Posts()

	err := s.Delete("no-such-id")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("err = %v, want ErrPostNotFound", err)
	}
	after := s.Posts()
	if !reflect.DeepEqual(before, after) {
		t.Errorf("list changed on missing-id delete:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestUpdateMergesFields(t *testing.T) {
	s := newTestStore(t)
	added, _ := s.Add(models.Post{
		Title:    "Launch",
		Content:  "body",
		Platform: models.PlatformTwitter,
		Status:   models.StatusDraft,
	})

	updated, err := s.Update(models.Post{ID: added.ID, Title: "Launch v2"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Launch v2" {
		t.Errorf("title = %q", updated.Title)
	}
	if updated.Content != "body" || updated.Platform != models.PlatformTwitter || updated.Status != models.StatusDraft {
		t.Errorf("merge clobbered untouched fields: %+v", updated)
	}
}

func TestUpdateMissingIDFails(t *testing.T) {
	s := newTestStore(t)
	if _, err := s.Update(models.Post{ID: "ghost", Title: "x"}); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("err = %v, want ErrPostNotFound", err)
	}
}

func TestBlobRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	s, err := OpenPosts(path)
	if err != nil {
		t.Fatal(err)
	}
	at := time.Date(2024, time.February, 1, 9, 30, 0, 0, time.Local)
	added, err := s.Add(models.Post{Title: "persisted", ScheduledTime: at, Platform: models.PlatformLinkedIn, Status: models.StatusScheduled})
	if err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenPosts(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(added.ID)
	if err != nil {
		t.Fatalf("Get after reload: %v", err)
	}
	if !got.ScheduledTime.Equal(at) {
		t.Errorf("scheduled time after reload = %v, want %v", got.ScheduledTime, at)
	}
	if got.Platform != models.PlatformLinkedIn || got.Status != models.StatusScheduled {
		t.Errorf("reloaded post = %+v", got)
	}
}

func TestLoadToleratesMalformedTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "posts.json")
	blob := `{"posts":[{"id":"p1","title":"bad clock","platform":"twitter","scheduled_time":"not-a-time","status":"draft"}]}`
	if err := os.WriteFile(path, []byte(blob), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := OpenPosts(path)
	if err != nil {
		t.Fatalf("OpenPosts: %v", err)
	}
	got, err := s.Get("p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !got.ScheduledTime.IsZero() {
		t.Errorf("malformed timestamp parsed to %v, want zero", got.ScheduledTime)
	}
}

func TestFindByPrefix(t *testing.T) {
	s := newTestStore(t)
	a, _ := s.Add(models.Post{ID: "abc123", Title: "a"})
	if _, err := s.Add(models.Post{ID: "abd456", Title: "b"}); err != nil {
		t.Fatal(err)
	}

	got, err := s.FindByPrefix("abc")
	if err != nil || got.ID != a.ID {
		t.Errorf("FindByPrefix(abc) = %+v, %v", got, err)
	}
	if _, err := s.FindByPrefix("ab"); !errors.Is(err, ErrAmbiguousID) {
		t.Errorf("ambiguous prefix err = %v", err)
	}
	if _, err := s.FindByPrefix("zzz"); !errors.Is(err, ErrPostNotFound) {
		t.Errorf("missing prefix err = %v", err)
	}
}
