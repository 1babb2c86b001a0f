package model

import "gorm.io/gorm"

type Nasabah struct {
	gorm.Model
	Nama               string `json:"nama"`
	NIK                string `json:"nik" gorm:"column:nik;unique;not null"`
	TempatLahir        string `json:"tempat_lahir"`
	TanggalLahir       string `json:"tanggal_lahir"` // Format YYYY-MM-DD
	JenisKelamin       string `json:"jenis_kelamin"` // L atau P
	AlamatLengkap      string `json:"alamat_lengkap" gorm:"type:text"`
	Kelurahan          string `json:"kelurahan"`
	Kecamatan          string `json:"kecamatan"`
	Kabupaten          string `json:"kabupaten"`
	Provinsi           string `json:"provinsi"`
	KodePos            string `json:"kode_pos"`
	NoRekeningTabungan string `json:"no_rekening_tabungan"`
	NoHP               string `json:"no_hp" gorm:"unique;not null"`
	Email              string `json:"email" gorm:"unique;not null"`
	KTP                string `json:"ktp" gorm:"column:ktp;type:text"` // Base64 atau path file KTP
}
