package dto

import "github.com/google/uuid"

type LeaderboardEntry struct {
	Rank      int       `json:"rank"`
	UserID    uuid.UUID `json:"user_id"`
	Username  string    `json:"username"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	Points    int       `json:"points"`
}

type LeaderboardResponse struct {
	Type        string             `json:"type"`
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// MyRankResponse: rank nil untuk user non-student.
type MyRankResponse struct {
	Rank   *int   `json:"rank"`
	Points int    `json:"points"`
	Type   string `json:"type"`
}
