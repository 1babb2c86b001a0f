package model

import "gorm.io/gorm"

// Job terhubung ke Nasabah, BUKAN langsung ke Application.
// Job milik sebuah Application dicari lewat nasabah_id yang sama.
type Job struct {
	gorm.Model
	NasabahID       uint   `json:"nasabah_id"`
	NamaInstansi    string `json:"nama_instansi"`
	NoInstansi      string `json:"no_instansi"`
	GolonganJabatan string `json:"golongan_jabatan"`
	NIP             string `json:"nip" gorm:"column:nip"`
	MasaKerjaHari   int    `json:"masa_kerja_hari"`
	MasaKerjaBulan  int    `json:"masa_kerja_bulan"`
	MasaKerjaTahun  int    `json:"masa_kerja_tahun"`
	NamaAtasan      string `json:"nama_atasan"`
	AlamatKantor    string `json:"alamat_kantor"`
}
