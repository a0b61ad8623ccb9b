package controller

import (
	"encoding/json"

	"gorm.io/gorm"
)

// AdminController memegang semua operasi CRUD konten: achievements,
// subjects, levels, questions (beserta choices), dan materials.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// validJSON memastikan raw body JSON benar-benar bisa di-parse sebelum
// disimpan ke kolom jsonb.
func validJSON(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	return json.Valid(raw)
}
