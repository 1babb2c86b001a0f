package model

import "gorm.io/gorm"

type Document struct {
	gorm.Model
	ApplicationID uint `json:"application_id" gorm:"uniqueIndex:idx_application_dokumen"`
	// Nama dokumen unik per aplikasi, jadi update bisa upsert berdasarkan nama
	DokumenName     string `json:"dokumen_name" gorm:"uniqueIndex:idx_application_dokumen"`
	ChecklistStatus string `json:"checklist_status"` // Kode status ("1", "2", "3"), bukan boolean
	FilePath        string `json:"file_path"`
}
