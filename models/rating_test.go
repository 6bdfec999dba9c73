package models

import (
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err = Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// The aggregate mirrors COUNT/AVG over the live comment set after every
// recompute, whatever sequence of inserts and deletes produced it.
func TestRecomputeRating(t *testing.T) {
	db := newTestDB(t)

	if err := RecomputeRating(db, "p1"); err != nil {
		t.Fatalf("recompute on empty set: %v", err)
	}
	if rating := RatingFor(db, "p1"); rating.TotalRatings != 0 || rating.AverageRating != 0 {
		t.Errorf("empty aggregate = %+v", rating)
	}

	c1, err := CommentCreate(db, "p1", "u1", 4, "ok")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	c2, err := CommentCreate(db, "p1", "u2", 5, "great")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	// A different POI must not leak into p1's aggregate.
	if _, err = CommentCreate(db, "p2", "u1", 1, "meh"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err = RecomputeRating(db, "p1"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	rating := RatingFor(db, "p1")
	if rating.TotalRatings != 2 || rating.AverageRating != 4.5 {
		t.Errorf("aggregate = %+v, want count 2 average 4.5", rating)
	}

	if _, err = CommentDelete(db, &c2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err = RecomputeRating(db, "p1"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	rating = RatingFor(db, "p1")
	if rating.TotalRatings != 1 || rating.AverageRating != 4 {
		t.Errorf("aggregate = %+v, want count 1 average 4", rating)
	}

	if _, err = CommentDelete(db, &c1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err = RecomputeRating(db, "p1"); err != nil {
		t.Fatalf("recompute: %v", err)
	}
	rating = RatingFor(db, "p1")
	if rating.TotalRatings != 0 || rating.AverageRating != 0 {
		t.Errorf("aggregate = %+v, want zeros", rating)
	}
}

func TestCommentDeleteReturnsImageKeys(t *testing.T) {
	db := newTestDB(t)

	comment, err := CommentCreate(db, "p1", "u1", 3, "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	for _, key := range []string{"comments/c/one.png", "comments/c/two.jpg"} {
		if err = CommentImageAdd(db, comment.ID, key); err != nil {
			t.Fatalf("add image: %v", err)
		}
	}

	keys, err := CommentDelete(db, &comment)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("keys = %v, want 2 entries", keys)
	}
	var rows int64
	db.Model(&POICommentImage{}).Count(&rows)
	if rows != 0 {
		t.Errorf("image rows = %d after delete, want 0", rows)
	}
}
