package models

import "time"

// Rating is a directional like/dislike from one user about another.
// The composite unique index is the primary enforcement of the
// one-rating-per-ordered-pair invariant; concept-level checks are the
// defensive second line against concurrent writers.
type Rating struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	RaterID   string    `json:"rater_id" gorm:"not null;size:191;uniqueIndex:idx_ratings_pair,priority:1"`
	RateeID   string    `json:"ratee_id" gorm:"not null;size:191;uniqueIndex:idx_ratings_pair,priority:2;index"`
	Liked     bool      `json:"liked" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Match records a mutual positive rating between two users. The pair is
// normalized so User1ID < User2ID, making the unique index cover both orders.
type Match struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	User1ID   string    `json:"user1_id" gorm:"not null;size:191;uniqueIndex:idx_matches_pair,priority:1"`
	User2ID   string    `json:"user2_id" gorm:"not null;size:191;uniqueIndex:idx_matches_pair,priority:2;index"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizePair orders two user ids so unordered pairs store consistently.
func NormalizePair(user1ID, user2ID string) (string, string) {
	if user1ID > user2ID {
		return user2ID, user1ID
	}
	return user1ID, user2ID
}
