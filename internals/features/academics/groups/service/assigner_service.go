// file: internals/features/academics/groups/service/assigner_service.go
package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	groupDto "kampusku_backend/internals/features/academics/groups/dto"
	"kampusku_backend/internals/features/academics/groups/model"
	studentModel "kampusku_backend/internals/features/academics/students/model"
)

var (
	ErrGroupNotFound        = errors.New("group tidak ditemukan")
	ErrGroupFull            = errors.New("group sudah penuh")
	ErrStudentNotFound      = errors.New("student tidak ditemukan")
	ErrStudentNotActive     = errors.New("student tidak berstatus active")
	ErrSubjectTeacherExists = errors.New("subject-teacher sudah terdaftar di group ini")
)

// AssignerService membagi student aktif tanpa group ke cohort
// ber-kapasitas dengan distribusi round-robin, plus assignment/removal
// satuan.
type AssignerService struct {
	DB *gorm.DB
}

func NewAssignerService(db *gorm.DB) *AssignerService {
	return &AssignerService{DB: db}
}

/* =========================
   Round-robin planning (pure)
========================= */

type planStudent struct {
	ID       uuid.UUID
	Semester int
}

type planGroup struct {
	ID        uuid.UUID
	Remaining int
}

type plannedAssignment struct {
	StudentID uuid.UUID
	GroupID   uuid.UUID
}

type skippedStudent struct {
	StudentID uuid.UUID
	Reason    string
}

const reasonNoSpace = "no available groups with space"

// planRoundRobin membagi student per semester ke group semester tsb.
// Scan kandidat berputar mulai dari index setelah group terakhir yang
// berhasil dipakai; group penuh dilewati; kalau satu putaran penuh
// tidak menemukan tempat, student di-skip.
func planRoundRobin(students []planStudent, groupsBySemester map[int][]planGroup) ([]plannedAssignment, []skippedStudent) {
	assignments := []plannedAssignment{}
	skipped := []skippedStudent{}
	nextIdx := map[int]int{}

	for _, st := range students {
		groups := groupsBySemester[st.Semester]
		if len(groups) == 0 {
			skipped = append(skipped, skippedStudent{StudentID: st.ID, Reason: reasonNoSpace})
			continue
		}

		placed := false
		start := nextIdx[st.Semester] % len(groups)
		for i := 0; i < len(groups); i++ {
			j := (start + i) % len(groups)
			if groups[j].Remaining <= 0 {
				continue
			}
			groups[j].Remaining--
			assignments = append(assignments, plannedAssignment{StudentID: st.ID, GroupID: groups[j].ID})
			nextIdx[st.Semester] = (j + 1) % len(groups)
			placed = true
			break
		}
		if !placed {
			skipped = append(skipped, skippedStudent{StudentID: st.ID, Reason: reasonNoSpace})
		}
	}
	return assignments, skipped
}

/* =========================
   Batch auto-assignment
========================= */

// AutoAssign mengambil semua student active tanpa group, dikelompokkan
// per semester, lalu membagikannya round-robin ke group aktif semester
// itu. Idempoten (student yang sudah punya group tersaring di filter
// awal) dan toleran partial failure: kegagalan write satu student
// dicatat sebagai skipped, bukan menggagalkan batch.
func (svc *AssignerService) AutoAssign(ctx context.Context) (*groupDto.AutoAssignReport, error) {
	var students []studentModel.StudentModel
	if err := svc.DB.WithContext(ctx).
		Where("student_status = ? AND student_group_id IS NULL", studentModel.StudentStatusActive).
		Order("student_current_semester ASC, student_enrolled_at ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	var groups []model.GroupModel
	if err := svc.DB.WithContext(ctx).
		Where("group_is_active = ?", true).
		Order("group_semester ASC, group_created_at ASC").
		Find(&groups).Error; err != nil {
		return nil, err
	}

	planStudents := make([]planStudent, 0, len(students))
	for _, s := range students {
		planStudents = append(planStudents, planStudent{ID: s.StudentID, Semester: s.StudentCurrentSemester})
	}
	groupsBySemester := map[int][]planGroup{}
	for _, g := range groups {
		remaining := g.GroupCapacity - g.GroupStudentCount
		groupsBySemester[g.GroupSemester] = append(groupsBySemester[g.GroupSemester], planGroup{
			ID:        g.GroupID,
			Remaining: remaining,
		})
	}

	assignments, skipped := planRoundRobin(planStudents, groupsBySemester)

	report := &groupDto.AutoAssignReport{
		Total:   len(students),
		Details: []groupDto.AssignmentDetail{},
	}
	for _, sk := range skipped {
		report.Skipped++
		report.Details = append(report.Details, groupDto.AssignmentDetail{
			StudentID: sk.StudentID,
			Status:    "skipped",
			Reason:    sk.Reason,
		})
	}

	for _, pl := range assignments {
		err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return svc.addMemberTx(ctx, tx, pl.StudentID, pl.GroupID)
		})
		if err != nil {
			// Partial failure: hitung sebagai skipped, lanjutkan batch.
			log.Printf("[AssignerService] gagal assign student=%s group=%s: %v", pl.StudentID, pl.GroupID, err)
			report.Skipped++
			report.Details = append(report.Details, groupDto.AssignmentDetail{
				StudentID: pl.StudentID,
				Status:    "skipped",
				Reason:    err.Error(),
			})
			continue
		}
		gid := pl.GroupID
		report.Assigned++
		report.Details = append(report.Details, groupDto.AssignmentDetail{
			StudentID: pl.StudentID,
			GroupID:   &gid,
			Status:    "assigned",
		})
	}

	return report, nil
}

/* =========================
   Single assignment / removal
========================= */

// AssignStudent memindahkan satu student ke group target: evict dari
// group manapun yang masih memuatnya (defensif: remove-from-all), lalu
// add ke target. Add memakai conditional increment sehingga dua
// assignment bersamaan tidak bisa sama-sama lolos cek kapasitas.
func (svc *AssignerService) AssignStudent(ctx context.Context, studentID, groupID uuid.UUID) (*groupDto.GroupMembershipSummary, error) {
	var summary *groupDto.GroupMembershipSummary
	err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		if student.StudentStatus != studentModel.StudentStatusActive {
			return ErrStudentNotActive
		}

		if err := svc.evictFromAllGroupsTx(ctx, tx, studentID); err != nil {
			return err
		}
		if err := svc.addMemberTx(ctx, tx, studentID, groupID); err != nil {
			return err
		}

		s, err := svc.membershipSummaryTx(ctx, tx, groupID)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summary, nil
}

// RemoveStudent mengeluarkan student dari group-nya dan mengosongkan
// student_group_id; student_count dihitung ulang lewat decrement.
func (svc *AssignerService) RemoveStudent(ctx context.Context, studentID uuid.UUID) error {
	return svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var student studentModel.StudentModel
		if err := tx.First(&student, "student_id = ?", studentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrStudentNotFound
			}
			return err
		}
		return svc.evictFromAllGroupsTx(ctx, tx, studentID)
	})
}

// addMemberTx: kapasitas + penambahan member sebagai SATU conditional
// update — "tambah hanya jika count < capacity" — bukan read + write
// terpisah. RowsAffected == 0 berarti group penuh (atau hilang).
func (svc *AssignerService) addMemberTx(ctx context.Context, tx *gorm.DB, studentID, groupID uuid.UUID) error {
	res := tx.WithContext(ctx).Model(&model.GroupModel{}).
		Where("group_id = ? AND group_is_active = ? AND group_student_count < group_capacity", groupID, true).
		UpdateColumn("group_student_count", gorm.Expr("group_student_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var exists int64
		if err := tx.WithContext(ctx).Model(&model.GroupModel{}).Where("group_id = ?", groupID).Count(&exists).Error; err != nil {
			return err
		}
		if exists == 0 {
			return ErrGroupNotFound
		}
		return ErrGroupFull
	}

	if err := tx.WithContext(ctx).Create(&model.GroupStudentModel{
		GroupStudentGroupID:   groupID,
		GroupStudentStudentID: studentID,
	}).Error; err != nil {
		return err
	}

	return tx.WithContext(ctx).Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		UpdateColumn("student_group_id", groupID).Error
}

// evictFromAllGroupsTx: hapus membership di group manapun (seharusnya
// maksimal satu) + decrement counter masing-masing, lalu kosongkan
// student_group_id.
func (svc *AssignerService) evictFromAllGroupsTx(ctx context.Context, tx *gorm.DB, studentID uuid.UUID) error {
	var memberships []model.GroupStudentModel
	if err := tx.WithContext(ctx).Where("group_student_student_id = ?", studentID).Find(&memberships).Error; err != nil {
		return err
	}

	for _, m := range memberships {
		if err := tx.WithContext(ctx).Delete(&model.GroupStudentModel{}, "group_student_id = ?", m.GroupStudentID).Error; err != nil {
			return err
		}
		if err := tx.WithContext(ctx).Model(&model.GroupModel{}).
			Where("group_id = ? AND group_student_count > 0", m.GroupStudentGroupID).
			UpdateColumn("group_student_count", gorm.Expr("group_student_count - 1")).Error; err != nil {
			return err
		}
	}

	return tx.WithContext(ctx).Model(&studentModel.StudentModel{}).
		Where("student_id = ?", studentID).
		UpdateColumn("student_group_id", nil).Error
}

func (svc *AssignerService) membershipSummaryTx(ctx context.Context, tx *gorm.DB, groupID uuid.UUID) (*groupDto.GroupMembershipSummary, error) {
	var group model.GroupModel
	if err := tx.WithContext(ctx).First(&group, "group_id = ?", groupID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	var memberIDs []uuid.UUID
	if err := tx.WithContext(ctx).Model(&model.GroupStudentModel{}).
		Where("group_student_group_id = ?", groupID).
		Order("group_student_assigned_at ASC").
		Pluck("group_student_student_id", &memberIDs).Error; err != nil {
		return nil, err
	}

	return &groupDto.GroupMembershipSummary{
		GroupID:           group.GroupID,
		GroupName:         group.GroupName,
		GroupSemester:     group.GroupSemester,
		GroupCapacity:     group.GroupCapacity,
		GroupStudentCount: group.GroupStudentCount,
		MemberIDs:         memberIDs,
	}, nil
}

/* =========================
   Subject-teacher assignment
========================= */

// AddSubjectTeacher menautkan guru ke subject dalam satu group;
// duplikat (group, subject) ditolak sebagai conflict.
func (svc *AssignerService) AddSubjectTeacher(ctx context.Context, groupID, subjectID, teacherID uuid.UUID) (*model.GroupSubjectTeacherModel, error) {
	var out *model.GroupSubjectTeacherModel
	err := svc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var group model.GroupModel
		if err := tx.First(&group, "group_id = ?", groupID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGroupNotFound
			}
			return err
		}

		var dup int64
		if err := tx.Model(&model.GroupSubjectTeacherModel{}).
			Where("group_subject_teacher_group_id = ? AND group_subject_teacher_subject_id = ?", groupID, subjectID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrSubjectTeacherExists
		}

		st := model.GroupSubjectTeacherModel{
			GroupSubjectTeacherGroupID:   groupID,
			GroupSubjectTeacherSubjectID: subjectID,
			GroupSubjectTeacherTeacherID: teacherID,
		}
		if err := tx.Create(&st).Error; err != nil {
			return err
		}
		out = &st
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

/* =========================
   Listing
========================= */

func (svc *AssignerService) ListGroups(ctx context.Context, semester *int, offset, limit int) ([]model.GroupModel, int64, error) {
	q := svc.DB.WithContext(ctx).Model(&model.GroupModel{})
	if semester != nil {
		q = q.Where("group_semester = ?", *semester)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var groups []model.GroupModel
	if err := q.Order("group_semester ASC, group_created_at ASC").
		Offset(offset).Limit(limit).
		Find(&groups).Error; err != nil {
		return nil, 0, err
	}
	return groups, total, nil
}
