package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"belajarku_backend/internals/cache"
	"belajarku_backend/internals/constants"
	"belajarku_backend/internals/features/progress/leaderboard/dto"
	pointsService "belajarku_backend/internals/features/progress/points/service"
	userModel "belajarku_backend/internals/features/users/auth/model"
)

const cacheTTL = 60 * time.Second

// orderColumn memetakan type leaderboard ke kolom poin; default total.
func orderColumn(lbType string) (string, string) {
	switch lbType {
	case "weekly":
		return "weekly", "weekly_points"
	case "monthly":
		return "monthly", "monthly_points"
	default:
		return "total", "total_points"
	}
}

type leaderboardRow struct {
	UserID    uuid.UUID `gorm:"column:user_id"`
	Username  string    `gorm:"column:username"`
	FullName  *string   `gorm:"column:full_name"`
	AvatarURL *string   `gorm:"column:avatar_url"`
	Points    int       `gorm:"column:points"`
}

// GetLeaderboard mengambil top-N student terurut poin, dengan cache Redis 60s.
func GetLeaderboard(db *gorm.DB, lbType string, limit int) (*dto.LeaderboardResponse, error) {
	lbType, column := orderColumn(lbType)
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	cacheKey := fmt.Sprintf("leaderboard:%s:%d", lbType, limit)
	var cached dto.LeaderboardResponse
	if cache.GetJSON(cacheKey, &cached) {
		return &cached, nil
	}

	var rows []leaderboardRow
	err := db.Table("user_points").
		Select("user_points.user_id AS user_id, users.username AS username, "+
			"user_profiles.full_name AS full_name, user_profiles.avatar_url AS avatar_url, "+
			"user_points."+column+" AS points").
		Joins("JOIN users ON users.id = user_points.user_id").
		Joins("LEFT JOIN user_profiles ON user_profiles.user_id = user_points.user_id").
		Where("users.role = ?", constants.RoleStudent).
		Order("user_points." + column + " DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	resp := &dto.LeaderboardResponse{
		Type:        lbType,
		Leaderboard: make([]dto.LeaderboardEntry, 0, len(rows)),
	}
	for i, row := range rows {
		resp.Leaderboard = append(resp.Leaderboard, dto.LeaderboardEntry{
			Rank:      i + 1,
			UserID:    row.UserID,
			Username:  row.Username,
			FullName:  row.FullName,
			AvatarURL: row.AvatarURL,
			Points:    row.Points,
		})
	}

	cache.SetJSON(cacheKey, resp, cacheTTL)
	return resp, nil
}

// GetMyRank: rank = 1 + jumlah student dengan poin strictly lebih besar.
// Non-student selalu rank nil.
func GetMyRank(db *gorm.DB, userID uuid.UUID, lbType string) (*dto.MyRankResponse, error) {
	lbType, column := orderColumn(lbType)

	var user userModel.UserModel
	if err := db.Select("id", "role").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.Role != constants.RoleStudent {
		return &dto.MyRankResponse{Rank: nil, Points: 0, Type: lbType}, nil
	}

	points, err := pointsService.GetByUser(db, userID)
	if err != nil {
		return nil, err
	}

	myPoints := points.TotalPoints
	switch column {
	case "weekly_points":
		myPoints = points.WeeklyPoints
	case "monthly_points":
		myPoints = points.MonthlyPoints
	}

	var higher int64
	err = db.Table("user_points").
		Joins("JOIN users ON users.id = user_points.user_id").
		Where("users.role = ?", constants.RoleStudent).
		Where("user_points."+column+" > ?", myPoints).
		Count(&higher).Error
	if err != nil {
		return nil, err
	}

	rank := int(higher) + 1
	return &dto.MyRankResponse{Rank: &rank, Points: myPoints, Type: lbType}, nil
}
