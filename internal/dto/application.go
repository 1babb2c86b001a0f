package dto

// Payload create mengikuti bentuk request lama: data nasabah, job, dan
// financing_request nested, field aplikasi di level atas.
type CreateApplicationRequest struct {
	Nasabah                  NasabahRequest          `json:"nasabah" validate:"required"`
	Job                      JobRequest              `json:"job" validate:"required"`
	NamaAO                   string                  `json:"nama_ao" validate:"required,max=255"`
	JumlahPenghasilan        *float64                `json:"jumlah_penghasilan" validate:"required,gte=0"`
	JumlahPermohonan         *float64                `json:"jumlah_permohonan" validate:"required,gte=0"`
	JumlahPenghasilanLainnya *float64                `json:"jumlah_penghasilan_lainnya" validate:"omitempty,gte=0"`
	JangkaWaktu              *int                    `json:"jangka_waktu" validate:"required,gte=1"`
	MaksimalPembiayaan       *float64                `json:"maksimal_pembiayaan" validate:"required,gte=0"`
	TujuanPembiayaan         string                  `json:"tujuan_pembiayaan" validate:"required,max=255"`
	StatusPerkawinan         string                  `json:"status_perkawinan" validate:"required,oneof=Single Married Widowed Divorced"`
	UploadNPWP               string                  `json:"upload_npwp" validate:"required"`
	SlipGaji                 string                  `json:"slip_gaji" validate:"required"`
	Documents                []DocumentRequest       `json:"documents" validate:"required,min=1,dive"`
	FinancingRequest         FinancingRequestRequest `json:"financing_request" validate:"required"`
}

type NasabahRequest struct {
	Nama               string `json:"nama" validate:"required,max=255"`
	NIK                string `json:"nik" validate:"required,max=20"`
	TempatLahir        string `json:"tempat_lahir" validate:"required,max=255"`
	TanggalLahir       string `json:"tanggal_lahir" validate:"required,datetime=2006-01-02"`
	JenisKelamin       string `json:"jenis_kelamin" validate:"required,oneof=L P"`
	AlamatLengkap      string `json:"alamat_lengkap" validate:"required,max=255"`
	Kelurahan          string `json:"kelurahan" validate:"required,max=255"`
	Kecamatan          string `json:"kecamatan" validate:"required,max=255"`
	Kabupaten          string `json:"kabupaten" validate:"required,max=255"`
	Provinsi           string `json:"provinsi" validate:"required,max=255"`
	KodePos            string `json:"kode_pos" validate:"required,max=10"`
	NoRekeningTabungan string `json:"no_rekening_tabungan" validate:"required,max=20"`
	NoHP               string `json:"no_hp" validate:"required,max=15"`
	Email              string `json:"email" validate:"required,email,max=255"`
	KTP                string `json:"ktp" validate:"required"`
}

type JobRequest struct {
	NamaInstansi    string `json:"nama_instansi" validate:"required,max=255"`
	NoInstansi      string `json:"no_instansi" validate:"required,max=50"`
	GolonganJabatan string `json:"golongan_jabatan" validate:"required,max=50"`
	NIP             string `json:"nip" validate:"required,max=50"`
	MasaKerjaHari   *int   `json:"masa_kerja_hari" validate:"required,gte=0"`
	MasaKerjaBulan  *int   `json:"masa_kerja_bulan" validate:"required,gte=0"`
	MasaKerjaTahun  *int   `json:"masa_kerja_tahun" validate:"required,gte=0"`
	NamaAtasan      string `json:"nama_atasan" validate:"required,max=255"`
	AlamatKantor    string `json:"alamat_kantor" validate:"required,max=255"`
}

type DocumentRequest struct {
	Name     string `json:"name" validate:"required"`
	Status   string `json:"status" validate:"required"`
	FilePath string `json:"file_path" validate:"required,max=255"`
}

type FinancingRequestRequest struct {
	TotalAngsuranBiaya *float64 `json:"total_angsuran_biaya" validate:"required"`
	JangkaWaktu        *int     `json:"jangka_waktu" validate:"required,gte=1"`
	Cabang             string   `json:"cabang" validate:"required,max=255"`
	Capem              string   `json:"capem" validate:"required,max=255"`
}

// Payload update: semua bagian opsional. Bagian yang tidak dikirim tidak
// disentuh sama sekali (partial update, bukan full replace).
type UpdateApplicationRequest struct {
	Nasabah                  *NasabahPatch            `json:"nasabah" validate:"omitempty"`
	Job                      *JobPatch                `json:"job" validate:"omitempty"`
	NamaAO                   *string                  `json:"nama_ao" validate:"omitempty,max=255"`
	JumlahPenghasilan        *float64                 `json:"jumlah_penghasilan" validate:"omitempty,gte=0"`
	JumlahPermohonan         *float64                 `json:"jumlah_permohonan" validate:"omitempty,gte=0"`
	JumlahPenghasilanLainnya *float64                 `json:"jumlah_penghasilan_lainnya" validate:"omitempty,gte=0"`
	JangkaWaktu              *int                     `json:"jangka_waktu" validate:"omitempty,gte=1"`
	MaksimalPembiayaan       *float64                 `json:"maksimal_pembiayaan" validate:"omitempty,gte=0"`
	TujuanPembiayaan         *string                  `json:"tujuan_pembiayaan" validate:"omitempty,max=255"`
	StatusPerkawinan         *string                  `json:"status_perkawinan" validate:"omitempty,oneof=Single Married Widowed Divorced"`
	UploadNPWP               *string                  `json:"upload_npwp" validate:"omitempty"`
	SlipGaji                 *string                  `json:"slip_gaji" validate:"omitempty"`
	Documents                []UpdateDocumentRequest  `json:"documents" validate:"omitempty,min=1,dive"`
	FinancingRequest         *FinancingRequestPatch   `json:"financing_request" validate:"omitempty"`
}

type NasabahPatch struct {
	Nama               *string `json:"nama" validate:"omitempty,max=255"`
	NIK                *string `json:"nik" validate:"omitempty,max=20"`
	TempatLahir        *string `json:"tempat_lahir" validate:"omitempty,max=255"`
	TanggalLahir       *string `json:"tanggal_lahir" validate:"omitempty,datetime=2006-01-02"`
	JenisKelamin       *string `json:"jenis_kelamin" validate:"omitempty,oneof=L P"`
	AlamatLengkap      *string `json:"alamat_lengkap" validate:"omitempty,max=255"`
	Kelurahan          *string `json:"kelurahan" validate:"omitempty,max=255"`
	Kecamatan          *string `json:"kecamatan" validate:"omitempty,max=255"`
	Kabupaten          *string `json:"kabupaten" validate:"omitempty,max=255"`
	Provinsi           *string `json:"provinsi" validate:"omitempty,max=255"`
	KodePos            *string `json:"kode_pos" validate:"omitempty,max=10"`
	NoRekeningTabungan *string `json:"no_rekening_tabungan" validate:"omitempty,max=20"`
	NoHP               *string `json:"no_hp" validate:"omitempty,max=15"`
	Email              *string `json:"email" validate:"omitempty,email,max=255"`
	KTP                *string `json:"ktp" validate:"omitempty"`
}

type JobPatch struct {
	NamaInstansi    *string `json:"nama_instansi" validate:"omitempty,max=255"`
	NoInstansi      *string `json:"no_instansi" validate:"omitempty,max=50"`
	GolonganJabatan *string `json:"golongan_jabatan" validate:"omitempty,max=50"`
	NIP             *string `json:"nip" validate:"omitempty,max=50"`
	MasaKerjaHari   *int    `json:"masa_kerja_hari" validate:"omitempty,gte=0"`
	MasaKerjaBulan  *int    `json:"masa_kerja_bulan" validate:"omitempty,gte=0"`
	MasaKerjaTahun  *int    `json:"masa_kerja_tahun" validate:"omitempty,gte=0"`
	NamaAtasan      *string `json:"nama_atasan" validate:"omitempty,max=255"`
	AlamatKantor    *string `json:"alamat_kantor" validate:"omitempty,max=255"`
}

// File path tidak wajib saat update, dokumen lama tetap pakai file sebelumnya
type UpdateDocumentRequest struct {
	Name     string `json:"name" validate:"required"`
	Status   string `json:"status" validate:"required"`
	FilePath string `json:"file_path" validate:"omitempty,max=255"`
}

type FinancingRequestPatch struct {
	TotalAngsuranBiaya *float64 `json:"total_angsuran_biaya" validate:"omitempty"`
	JangkaWaktu        *int     `json:"jangka_waktu" validate:"omitempty,gte=1"`
	Cabang             *string  `json:"cabang" validate:"omitempty,max=255"`
	Capem              *string  `json:"capem" validate:"omitempty,max=255"`
}
