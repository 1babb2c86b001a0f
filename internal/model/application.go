package model

import "gorm.io/gorm"

type Application struct {
	gorm.Model
	NasabahID                uint    `json:"nasabah_id"`
	NoAplikasi               string  `json:"no_aplikasi" gorm:"unique;not null"`
	TanggalAplikasi          string  `json:"tanggal_aplikasi"` // Format YYYY-MM-DD, diisi otomatis saat create
	NamaAO                   string  `json:"nama_ao" gorm:"column:nama_ao"`
	JumlahPenghasilan        float64 `json:"jumlah_penghasilan"`
	JumlahPermohonan         float64 `json:"jumlah_permohonan"`
	JumlahPenghasilanLainnya float64 `json:"jumlah_penghasilan_lainnya"`
	JangkaWaktu              int     `json:"jangka_waktu"` // Dalam bulan
	MaksimalPembiayaan       float64 `json:"maksimal_pembiayaan"`
	TujuanPembiayaan         string  `json:"tujuan_pembiayaan"`
	StatusPerkawinan         string  `json:"status_perkawinan"` // Single, Married, Widowed, Divorced
	UploadNPWP               string  `json:"upload_npwp" gorm:"column:upload_npwp;type:text"`
	SlipGaji                 string  `json:"slip_gaji" gorm:"type:text"`

	// Relasi. Cascade mengikuti skema aslinya: hapus nasabah ikut menghapus
	// application, hapus application ikut menghapus documents dan financing request.
	Nasabah          *Nasabah          `json:"nasabah,omitempty" gorm:"foreignKey:NasabahID;constraint:OnDelete:CASCADE"`
	Documents        []Document        `json:"documents" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`
	FinancingRequest *FinancingRequest `json:"financing_request,omitempty" gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`

	// Job tidak punya foreign key ke Application, jadi tidak bisa di-Preload.
	// Diisi manual oleh repository lewat JobForNasabah.
	Job *Job `json:"job,omitempty" gorm:"-"`
}
