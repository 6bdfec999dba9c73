package models

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// POIRating is the derived (count, average) aggregate per POI. It mirrors
// COUNT/AVG over poi_comments as of the last recompute.
type POIRating struct {
	POIID         string `gorm:"column:poi_id;type:varchar(100);primaryKey"`
	TotalRatings  int64
	AverageRating float64
	UpdatedAt     time.Time
}

// RecomputeRating refreshes the aggregate for one POI from the live comment
// rows. It runs inline with the triggering write but is not atomic with it:
// a crash in between leaves the aggregate stale until the next write for
// the same POI.
func RecomputeRating(db *gorm.DB, poiID string) error {
	var stats struct {
		Total   int64
		Average float64
	}
	err := db.Raw(
		"select count(*) as total, ifnull(avg(rating), 0) as average from poi_comments where poi_id = ?",
		poiID).Scan(&stats).Error
	if err != nil {
		return err
	}
	rating := POIRating{
		POIID:         poiID,
		TotalRatings:  stats.Total,
		AverageRating: stats.Average,
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "poi_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"total_ratings", "average_rating", "updated_at"}),
	}).Create(&rating).Error
}

// RatingFor returns the stored aggregate, zero-valued when the POI has
// never been rated.
func RatingFor(db *gorm.DB, poiID string) (rating POIRating) {
	db.First(&rating, "poi_id = ?", poiID)
	return rating
}
