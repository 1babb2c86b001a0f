package model

import "gorm.io/gorm"

type FinancingRequest struct {
	gorm.Model
	ApplicationID      uint    `json:"application_id"`
	TotalAngsuranBiaya float64 `json:"total_angsuran_biaya"`
	JangkaWaktu        int     `json:"jangka_waktu"` // Dalam bulan
	Cabang             string  `json:"cabang"`
	Capem              string  `json:"capem"`
}
