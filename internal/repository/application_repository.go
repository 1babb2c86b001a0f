package repository

import (
	"strings"
	"time"

	"financing-backend/internal/dto"
	"financing-backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	GetAll() ([]model.Application, error)
	GetByID(id uint) (*model.Application, error)
	JobForNasabah(nasabahID uint) (*model.Job, error)
	CreateAggregate(req *dto.CreateApplicationRequest) (*model.Application, error)
	UpdateAggregate(id uint, req *dto.UpdateApplicationRequest) (*model.Application, error)
	DeleteAggregate(id uint) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db}
}

// Nomor aplikasi unik untuk ditampilkan ke user, format APP-XXXXXXXXXXXX
func GenerateNoAplikasi() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return "APP-" + strings.ToUpper(suffix)
}

func (r *applicationRepository) GetAll() ([]model.Application, error) {
	var apps []model.Application
	err := r.db.Preload("Nasabah").Preload("Documents").Preload("FinancingRequest").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}

	// Job tidak bisa di-Preload karena relasinya lewat nasabah_id
	for i := range apps {
		job, err := jobForNasabah(r.db, apps[i].NasabahID)
		if err != nil && !IsNotFound(err) {
			return nil, err
		}
		apps[i].Job = job
	}
	return apps, nil
}

func (r *applicationRepository) GetByID(id uint) (*model.Application, error) {
	var app model.Application
	err := r.db.Preload("Nasabah").Preload("Documents").Preload("FinancingRequest").
		First(&app, id).Error
	if err != nil {
		return nil, err
	}

	job, err := jobForNasabah(r.db, app.NasabahID)
	if err != nil && !IsNotFound(err) {
		return nil, err
	}
	app.Job = job
	return &app, nil
}

func (r *applicationRepository) JobForNasabah(nasabahID uint) (*model.Job, error) {
	return jobForNasabah(r.db, nasabahID)
}

// Satu-satunya tempat yang tahu bahwa Job dicari lewat nasabah_id
func jobForNasabah(db *gorm.DB, nasabahID uint) (*model.Job, error) {
	var job model.Job
	if err := db.Where("nasabah_id = ?", nasabahID).First(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// Membuat seluruh agregat (nasabah, job, application, documents, financing
// request) dalam satu transaksi. Kalau salah satu insert gagal, semuanya batal.
func (r *applicationRepository) CreateAggregate(req *dto.CreateApplicationRequest) (*model.Application, error) {
	var appID uint

	err := r.db.Transaction(func(tx *gorm.DB) error {
		nasabah := model.Nasabah{
			Nama:               req.Nasabah.Nama,
			NIK:                req.Nasabah.NIK,
			TempatLahir:        req.Nasabah.TempatLahir,
			TanggalLahir:       req.Nasabah.TanggalLahir,
			JenisKelamin:       req.Nasabah.JenisKelamin,
			AlamatLengkap:      req.Nasabah.AlamatLengkap,
			Kelurahan:          req.Nasabah.Kelurahan,
			Kecamatan:          req.Nasabah.Kecamatan,
			Kabupaten:          req.Nasabah.Kabupaten,
			Provinsi:           req.Nasabah.Provinsi,
			KodePos:            req.Nasabah.KodePos,
			NoRekeningTabungan: req.Nasabah.NoRekeningTabungan,
			NoHP:               req.Nasabah.NoHP,
			Email:              req.Nasabah.Email,
			KTP:                req.Nasabah.KTP,
		}
		if err := tx.Create(&nasabah).Error; err != nil {
			return err
		}

		job := model.Job{
			NasabahID:       nasabah.ID,
			NamaInstansi:    req.Job.NamaInstansi,
			NoInstansi:      req.Job.NoInstansi,
			GolonganJabatan: req.Job.GolonganJabatan,
			NIP:             req.Job.NIP,
			MasaKerjaHari:   *req.Job.MasaKerjaHari,
			MasaKerjaBulan:  *req.Job.MasaKerjaBulan,
			MasaKerjaTahun:  *req.Job.MasaKerjaTahun,
			NamaAtasan:      req.Job.NamaAtasan,
			AlamatKantor:    req.Job.AlamatKantor,
		}
		if err := tx.Create(&job).Error; err != nil {
			return err
		}

		app := model.Application{
			NasabahID:          nasabah.ID,
			NoAplikasi:         GenerateNoAplikasi(),
			TanggalAplikasi:    time.Now().Format("2006-01-02"),
			NamaAO:             req.NamaAO,
			JumlahPenghasilan:  *req.JumlahPenghasilan,
			JumlahPermohonan:   *req.JumlahPermohonan,
			JangkaWaktu:        *req.JangkaWaktu,
			MaksimalPembiayaan: *req.MaksimalPembiayaan,
			TujuanPembiayaan:   req.TujuanPembiayaan,
			StatusPerkawinan:   req.StatusPerkawinan,
			UploadNPWP:         req.UploadNPWP,
			SlipGaji:           req.SlipGaji,
		}
		if req.JumlahPenghasilanLainnya != nil {
			app.JumlahPenghasilanLainnya = *req.JumlahPenghasilanLainnya
		}
		if err := tx.Create(&app).Error; err != nil {
			return err
		}

		for _, d := range req.Documents {
			doc := model.Document{
				ApplicationID:   app.ID,
				DokumenName:     d.Name,
				ChecklistStatus: d.Status,
				FilePath:        d.FilePath,
			}
			if err := tx.Create(&doc).Error; err != nil {
				return err
			}
		}

		financing := model.FinancingRequest{
			ApplicationID:      app.ID,
			TotalAngsuranBiaya: *req.FinancingRequest.TotalAngsuranBiaya,
			JangkaWaktu:        *req.FinancingRequest.JangkaWaktu,
			Cabang:             req.FinancingRequest.Cabang,
			Capem:              req.FinancingRequest.Capem,
		}
		if err := tx.Create(&financing).Error; err != nil {
			return err
		}

		appID = app.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(appID)
}

// Update parsial per bagian: bagian yang nil di payload tidak disentuh.
// Documents bersifat menggantikan: nama yang tidak dikirim lagi akan dihapus.
func (r *applicationRepository) UpdateAggregate(id uint, req *dto.UpdateApplicationRequest) (*model.Application, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var app model.Application
		if err := tx.First(&app, id).Error; err != nil {
			return err
		}

		if req.Nasabah != nil {
			updates := nasabahUpdates(req.Nasabah)
			if len(updates) > 0 {
				if err := tx.Model(&model.Nasabah{}).
					Where("id = ?", app.NasabahID).
					Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		if req.Job != nil {
			job, err := jobForNasabah(tx, app.NasabahID)
			if err != nil {
				return err
			}
			updates := jobUpdates(req.Job)
			if len(updates) > 0 {
				if err := tx.Model(job).Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		updates := applicationUpdates(req)
		if len(updates) > 0 {
			if err := tx.Model(&app).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Documents != nil {
			var existing []model.Document
			if err := tx.Where("application_id = ?", app.ID).Find(&existing).Error; err != nil {
				return err
			}

			saves, removes := ReconcileDocuments(app.ID, existing, req.Documents)
			for i := range saves {
				if err := tx.Save(&saves[i]).Error; err != nil {
					return err
				}
			}
			for i := range removes {
				// Hard delete supaya nama dokumen bisa dipakai lagi di update berikutnya
				if err := tx.Unscoped().Delete(&removes[i]).Error; err != nil {
					return err
				}
			}
		}

		if req.FinancingRequest != nil {
			var financing model.FinancingRequest
			if err := tx.Where("application_id = ?", app.ID).First(&financing).Error; err != nil {
				return err
			}
			updates := financingUpdates(req.FinancingRequest)
			if len(updates) > 0 {
				if err := tx.Model(&financing).Updates(updates).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Rekonsiliasi checklist dokumen: upsert berdasarkan (application_id, nama),
// sisanya masuk daftar hapus. Nama duplikat di request hanya dihitung sekali.
func ReconcileDocuments(appID uint, existing []model.Document, incoming []dto.UpdateDocumentRequest) (saves []model.Document, removes []model.Document) {
	byName := make(map[string]model.Document, len(existing))
	for _, d := range existing {
		byName[d.DokumenName] = d
	}

	seen := make(map[string]bool, len(incoming))
	for _, in := range incoming {
		if seen[in.Name] {
			continue
		}
		seen[in.Name] = true

		if cur, ok := byName[in.Name]; ok {
			cur.ChecklistStatus = in.Status
			if in.FilePath != "" {
				cur.FilePath = in.FilePath
			}
			saves = append(saves, cur)
		} else {
			saves = append(saves, model.Document{
				ApplicationID:   appID,
				DokumenName:     in.Name,
				ChecklistStatus: in.Status,
				FilePath:        in.FilePath,
			})
		}
	}

	for _, d := range existing {
		if !seen[d.DokumenName] {
			removes = append(removes, d)
		}
	}
	return saves, removes
}

// Menghapus seluruh agregat dalam satu transaksi, anak dulu baru induk:
// documents -> financing request -> job -> nasabah -> application.
// Semua hard delete agar nik/no_hp/email nasabah bisa didaftarkan ulang.
func (r *applicationRepository) DeleteAggregate(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var app model.Application
		if err := tx.Preload("Nasabah").Preload("Documents").Preload("FinancingRequest").
			First(&app, id).Error; err != nil {
			return err
		}

		job, err := jobForNasabah(tx, app.NasabahID)
		if err != nil && !IsNotFound(err) {
			return err
		}

		for i := range app.Documents {
			if err := tx.Unscoped().Delete(&app.Documents[i]).Error; err != nil {
				return err
			}
		}

		if app.FinancingRequest != nil {
			if err := tx.Unscoped().Delete(app.FinancingRequest).Error; err != nil {
				return err
			}
		}

		if job != nil {
			if err := tx.Unscoped().Delete(job).Error; err != nil {
				return err
			}
		}

		if app.Nasabah != nil {
			if err := tx.Unscoped().Delete(app.Nasabah).Error; err != nil {
				return err
			}
		}

		return tx.Unscoped().Delete(&app).Error
	})
}

func nasabahUpdates(p *dto.NasabahPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Nama != nil {
		updates["nama"] = *p.Nama
	}
	if p.NIK != nil {
		updates["nik"] = *p.NIK
	}
	if p.TempatLahir != nil {
		updates["tempat_lahir"] = *p.TempatLahir
	}
	if p.TanggalLahir != nil {
		updates["tanggal_lahir"] = *p.TanggalLahir
	}
	if p.JenisKelamin != nil {
		updates["jenis_kelamin"] = *p.JenisKelamin
	}
	if p.AlamatLengkap != nil {
		updates["alamat_lengkap"] = *p.AlamatLengkap
	}
	if p.Kelurahan != nil {
		updates["kelurahan"] = *p.Kelurahan
	}
	if p.Kecamatan != nil {
		updates["kecamatan"] = *p.Kecamatan
	}
	if p.Kabupaten != nil {
		updates["kabupaten"] = *p.Kabupaten
	}
	if p.Provinsi != nil {
		updates["provinsi"] = *p.Provinsi
	}
	if p.KodePos != nil {
		updates["kode_pos"] = *p.KodePos
	}
	if p.NoRekeningTabungan != nil {
		updates["no_rekening_tabungan"] = *p.NoRekeningTabungan
	}
	if p.NoHP != nil {
		updates["no_hp"] = *p.NoHP
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.KTP != nil {
		updates["ktp"] = *p.KTP
	}
	return updates
}

func jobUpdates(p *dto.JobPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.NamaInstansi != nil {
		updates["nama_instansi"] = *p.NamaInstansi
	}
	if p.NoInstansi != nil {
		updates["no_instansi"] = *p.NoInstansi
	}
	if p.GolonganJabatan != nil {
		updates["golongan_jabatan"] = *p.GolonganJabatan
	}
	if p.NIP != nil {
		updates["nip"] = *p.NIP
	}
	if p.MasaKerjaHari != nil {
		updates["masa_kerja_hari"] = *p.MasaKerjaHari
	}
	if p.MasaKerjaBulan != nil {
		updates["masa_kerja_bulan"] = *p.MasaKerjaBulan
	}
	if p.MasaKerjaTahun != nil {
		updates["masa_kerja_tahun"] = *p.MasaKerjaTahun
	}
	if p.NamaAtasan != nil {
		updates["nama_atasan"] = *p.NamaAtasan
	}
	if p.AlamatKantor != nil {
		updates["alamat_kantor"] = *p.AlamatKantor
	}
	return updates
}

// no_aplikasi, tanggal_aplikasi, dan nasabah_id tidak pernah ikut di-update
func applicationUpdates(req *dto.UpdateApplicationRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if req.NamaAO != nil {
		updates["nama_ao"] = *req.NamaAO
	}
	if req.JumlahPenghasilan != nil {
		updates["jumlah_penghasilan"] = *req.JumlahPenghasilan
	}
	if req.JumlahPermohonan != nil {
		updates["jumlah_permohonan"] = *req.JumlahPermohonan
	}
	if req.JumlahPenghasilanLainnya != nil {
		updates["jumlah_penghasilan_lainnya"] = *req.JumlahPenghasilanLainnya
	}
	if req.JangkaWaktu != nil {
		updates["jangka_waktu"] = *req.JangkaWaktu
	}
	if req.MaksimalPembiayaan != nil {
		updates["maksimal_pembiayaan"] = *req.MaksimalPembiayaan
	}
	if req.TujuanPembiayaan != nil {
		updates["tujuan_pembiayaan"] = *req.TujuanPembiayaan
	}
	if req.StatusPerkawinan != nil {
		updates["status_perkawinan"] = *req.StatusPerkawinan
	}
	if req.UploadNPWP != nil {
		updates["upload_npwp"] = *req.UploadNPWP
	}
	if req.SlipGaji != nil {
		updates["slip_gaji"] = *req.SlipGaji
	}
	return updates
}

func financingUpdates(p *dto.FinancingRequestPatch) map[string]interface{} {
	updates := map[string]interface{}{}
	if p.TotalAngsuranBiaya != nil {
		updates["total_angsuran_biaya"] = *p.TotalAngsuranBiaya
	}
	if p.JangkaWaktu != nil {
		updates["jangka_waktu"] = *p.JangkaWaktu
	}
	if p.Cabang != nil {
		updates["cabang"] = *p.Cabang
	}
	if p.Capem != nil {
		updates["capem"] = *p.Capem
	}
	return updates
}
