package testhelpers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"ems-portal/internal/adapters/persistence/models"
	"ems-portal/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// MemoryDB is an in-memory stand-in for the repositories. Lookups return
// gorm.ErrRecordNotFound and unique violations gorm.ErrDuplicatedKey,
// like the GORM implementations with TranslateError enabled.
type MemoryDB struct {
	mu     sync.Mutex
	nextID uint
	fail   error

	admins        map[uint]models.AdminAccount
	accounts      map[uint]models.EmployeeAccount
	resetTokens   map[uint]models.AdminResetToken
	resetRequests map[uint]models.PasswordResetRequest
	employees     map[uint]models.Employee
	departments   map[uint]models.Department
	designations  map[uint]models.Designation
	leaves        map[uint]models.LeaveRequest
	tasks         map[uint]models.Task
	attendance    map[uint]models.Attendance
	notifications map[uint]models.Notification
	documents     map[uint]models.Document

	// Now stamps CreatedAt on insert
	Now func() time.Time
}

// NewMemoryDB creates an empty database
func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		admins:        map[uint]models.AdminAccount{},
		accounts:      map[uint]models.EmployeeAccount{},
		resetTokens:   map[uint]models.AdminResetToken{},
		resetRequests: map[uint]models.PasswordResetRequest{},
		employees:     map[uint]models.Employee{},
		departments:   map[uint]models.Department{},
		designations:  map[uint]models.Designation{},
		leaves:        map[uint]models.LeaveRequest{},
		tasks:         map[uint]models.Task{},
		attendance:    map[uint]models.Attendance{},
		notifications: map[uint]models.Notification{},
		documents:     map[uint]models.Document{},
		Now:           time.Now,
	}
}

// FailWith makes every following call return err; nil restores normal operation
func (db *MemoryDB) FailWith(err error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.fail = err
}

func (db *MemoryDB) id() uint {
	db.nextID++
	return db.nextID
}

func (db *MemoryDB) Admins() repositories.AdminRepository { return memAdmins{db} }
func (db *MemoryDB) Accounts() repositories.EmployeeAccountRepository {
	return memAccounts{db}
}
func (db *MemoryDB) ResetTokens() repositories.AdminResetTokenRepository {
	return memResetTokens{db}
}
func (db *MemoryDB) ResetRequests() repositories.PasswordResetRequestRepository {
	return memResetRequests{db}
}
func (db *MemoryDB) Employees() repositories.EmployeeRepository { return memEmployees{db} }
func (db *MemoryDB) Departments() repositories.DepartmentRepository {
	return memDepartments{db}
}
func (db *MemoryDB) Designations() repositories.DesignationRepository {
	return memDesignations{db}
}
func (db *MemoryDB) Leaves() repositories.LeaveRepository { return memLeaves{db} }
func (db *MemoryDB) Tasks() repositories.TaskRepository   { return memTasks{db} }
func (db *MemoryDB) Attendance() repositories.AttendanceRepository {
	return memAttendance{db}
}
func (db *MemoryDB) Notifications() repositories.NotificationRepository {
	return memNotifications{db}
}
func (db *MemoryDB) Documents() repositories.DocumentRepository { return memDocuments{db} }

// Repositories returns every in-memory repository as one set
func (db *MemoryDB) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		Admins:        db.Admins(),
		Accounts:      db.Accounts(),
		ResetTokens:   db.ResetTokens(),
		ResetRequests: db.ResetRequests(),
		Employees:     db.Employees(),
		Departments:   db.Departments(),
		Designations:  db.Designations(),
		Leaves:        db.Leaves(),
		Tasks:         db.Tasks(),
		Attendance:    db.Attendance(),
		Notifications: db.Notifications(),
		Documents:     db.Documents(),
	}
}

func sortedIDs[T any](m map[uint]T) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}

// employee returns a copy of an employee with its relations loaded; the caller holds the lock
func (db *MemoryDB) employee(id uint) *models.Employee {
	e, ok := db.employees[id]
	if !ok {
		return nil
	}
	if e.DepartmentID != nil {
		if d, ok := db.departments[*e.DepartmentID]; ok {
			e.Department = &d
		}
	}
	if e.DesignationID != nil {
		if d, ok := db.designations[*e.DesignationID]; ok {
			e.Designation = &d
		}
	}
	return &e
}

// ============================================================
// Admin accounts
// ============================================================

type memAdmins struct{ db *MemoryDB }

func (r memAdmins) Create(_ context.Context, admin *models.AdminAccount) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for _, a := range r.db.admins {
		if a.Email == admin.Email || a.UserName == admin.UserName {
			return gorm.ErrDuplicatedKey
		}
	}
	admin.ID = r.db.id()
	admin.CreatedAt = r.db.Now()
	r.db.admins[admin.ID] = *admin
	return nil
}

func (r memAdmins) find(match func(models.AdminAccount) bool) (*models.AdminAccount, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for _, id := range sortedIDs(r.db.admins) {
		if a := r.db.admins[id]; match(a) {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAdmins) GetByID(_ context.Context, id uint) (*models.AdminAccount, error) {
	return r.find(func(a models.AdminAccount) bool { return a.ID == id })
}

func (r memAdmins) GetByEmail(_ context.Context, email string) (*models.AdminAccount, error) {
	return r.find(func(a models.AdminAccount) bool { return a.Email == email })
}

func (r memAdmins) GetByUsername(_ context.Context, userName string) (*models.AdminAccount, error) {
	return r.find(func(a models.AdminAccount) bool { return a.UserName == userName })
}

func (r memAdmins) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return found(err)
}

func (r memAdmins) ExistsByUsername(ctx context.Context, userName string) (bool, error) {
	_, err := r.GetByUsername(ctx, userName)
	return found(err)
}

func (r memAdmins) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if a, ok := r.db.admins[id]; ok {
		a.Password = passwordHash
		r.db.admins[id] = a
	}
	return nil
}

func found(err error) (bool, error) {
	if err == gorm.ErrRecordNotFound {
		return false, nil
	}
	return err == nil, err
}

// ============================================================
// Employee accounts
// ============================================================

type memAccounts struct{ db *MemoryDB }

func (r memAccounts) Create(_ context.Context, account *models.EmployeeAccount) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for _, a := range r.db.accounts {
		if a.EmployeeID == account.EmployeeID {
			return gorm.ErrDuplicatedKey
		}
	}
	account.ID = r.db.id()
	account.CreatedAt = r.db.Now()
	stored := *account
	stored.Employee = nil
	r.db.accounts[account.ID] = stored
	return nil
}

func (r memAccounts) find(match func(models.EmployeeAccount) bool) (*models.EmployeeAccount, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for _, id := range sortedIDs(r.db.accounts) {
		if a := r.db.accounts[id]; match(a) {
			a.Employee = r.db.employee(a.EmployeeID)
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAccounts) GetByEmail(_ context.Context, email string) (*models.EmployeeAccount, error) {
	return r.find(func(a models.EmployeeAccount) bool { return a.Email == email })
}

func (r memAccounts) GetByEmployeeID(_ context.Context, employeeID uint) (*models.EmployeeAccount, error) {
	return r.find(func(a models.EmployeeAccount) bool { return a.EmployeeID == employeeID })
}

func (r memAccounts) ExistsByEmployeeID(ctx context.Context, employeeID uint) (bool, error) {
	_, err := r.GetByEmployeeID(ctx, employeeID)
	return found(err)
}

func (r memAccounts) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetByEmail(ctx, email)
	return found(err)
}

func (r memAccounts) UpdatePassword(_ context.Context, id uint, passwordHash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if a, ok := r.db.accounts[id]; ok {
		a.Password = passwordHash
		r.db.accounts[id] = a
	}
	return nil
}

func (r memAccounts) UpdateStatus(_ context.Context, employeeID uint, status string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for id, a := range r.db.accounts {
		if a.EmployeeID == employeeID {
			a.Status = status
			r.db.accounts[id] = a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memAccounts) UpdateEmail(_ context.Context, employeeID uint, email string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for id, a := range r.db.accounts {
		if a.EmployeeID == employeeID {
			a.Email = email
			r.db.accounts[id] = a
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r memAccounts) ListEmployeeIDs(_ context.Context, employeeIDs []uint) ([]uint, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	wanted := make(map[uint]bool, len(employeeIDs))
	for _, id := range employeeIDs {
		wanted[id] = true
	}
	var out []uint
	for _, id := range sortedIDs(r.db.accounts) {
		if a := r.db.accounts[id]; wanted[a.EmployeeID] {
			out = append(out, a.EmployeeID)
		}
	}
	return out, nil
}

func (r memAccounts) Count(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	return int64(len(r.db.accounts)), nil
}

// ============================================================
// Admin reset tokens
// ============================================================

type memResetTokens struct{ db *MemoryDB }

func (r memResetTokens) Create(_ context.Context, token *models.AdminResetToken) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	token.ID = r.db.id()
	token.CreatedAt = r.db.Now()
	r.db.resetTokens[token.ID] = *token
	return nil
}

func (r memResetTokens) GetByTokenHash(_ context.Context, tokenHash string) (*models.AdminResetToken, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for _, t := range r.db.resetTokens {
		if t.TokenHash == tokenHash {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memResetTokens) MarkUsed(_ context.Context, id uint) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return false, err
	}
	t, ok := r.db.resetTokens[id]
	if !ok || t.UsedAt != nil {
		return false, nil
	}
	now := r.db.Now()
	t.UsedAt = &now
	r.db.resetTokens[id] = t
	return true, nil
}

func (r memResetTokens) DeleteExpired(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	now := r.db.Now()
	for id, t := range r.db.resetTokens {
		if t.ExpiresAt.Before(now) {
			delete(r.db.resetTokens, id)
			n++
		}
	}
	return n, nil
}

// ============================================================
// Employee password reset requests
// ============================================================

type memResetRequests struct{ db *MemoryDB }

func (r memResetRequests) Create(_ context.Context, req *models.PasswordResetRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	req.ID = r.db.id()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = r.db.Now()
	}
	stored := *req
	stored.Employee = nil
	r.db.resetRequests[req.ID] = stored
	return nil
}

func (r memResetRequests) GetByID(_ context.Context, id uint) (*models.PasswordResetRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	req, ok := r.db.resetRequests[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	req.Employee = r.db.employee(req.EmployeeID)
	return &req, nil
}

// newest returns the request of employeeID with the highest id matching status ("" = any)
func (r memResetRequests) newest(employeeID uint, status string) (*models.PasswordResetRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	ids := sortedIDs(r.db.resetRequests)
	for i := len(ids) - 1; i >= 0; i-- {
		req := r.db.resetRequests[ids[i]]
		if req.EmployeeID == employeeID && (status == "" || req.Status == status) {
			return &req, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memResetRequests) GetLatestByEmployeeID(_ context.Context, employeeID uint) (*models.PasswordResetRequest, error) {
	return r.newest(employeeID, "")
}

func (r memResetRequests) GetByEmployeeIDAndStatus(_ context.Context, employeeID uint, status string) (*models.PasswordResetRequest, error) {
	return r.newest(employeeID, status)
}

func (r memResetRequests) List(_ context.Context, status string, offset, limit int) ([]*models.PasswordResetRequest, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, 0, err
	}
	var all []*models.PasswordResetRequest
	ids := sortedIDs(r.db.resetRequests)
	for i := len(ids) - 1; i >= 0; i-- {
		req := r.db.resetRequests[ids[i]]
		if status == "" || req.Status == status {
			req.Employee = r.db.employee(req.EmployeeID)
			all = append(all, &req)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (r memResetRequests) Transition(_ context.Context, id uint, from, to string, at time.Time) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return false, err
	}
	req, ok := r.db.resetRequests[id]
	if !ok || req.Status != from {
		return false, nil
	}
	req.Status = to
	if to == "Completed" {
		req.CompletedAt = &at
	} else {
		req.ReviewedAt = &at
	}
	r.db.resetRequests[id] = req
	return true, nil
}

func (r memResetRequests) ExpirePendingBefore(_ context.Context, before time.Time) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for id, req := range r.db.resetRequests {
		if req.Status == "Pending" && req.CreatedAt.Before(before) {
			req.Status = "Expired"
			r.db.resetRequests[id] = req
			n++
		}
	}
	return n, nil
}

func (r memResetRequests) CountByStatus(_ context.Context, status string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for _, req := range r.db.resetRequests {
		if req.Status == status {
			n++
		}
	}
	return n, nil
}

// ============================================================
// Employees
// ============================================================

type memEmployees struct{ db *MemoryDB }

func (r memEmployees) unique(e *models.Employee) error {
	for _, other := range r.db.employees {
		if other.ID != e.ID && (other.EmployeeCode == e.EmployeeCode || other.Email == e.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	return nil
}

func (r memEmployees) Create(_ context.Context, employee *models.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if err := r.unique(employee); err != nil {
		return err
	}
	employee.ID = r.db.id()
	employee.CreatedAt = r.db.Now()
	stored := *employee
	stored.Department, stored.Designation = nil, nil
	r.db.employees[employee.ID] = stored
	return nil
}

func (r memEmployees) GetByID(_ context.Context, id uint) (*models.Employee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if e := r.db.employee(id); e != nil {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memEmployees) GetByEmail(_ context.Context, email string) (*models.Employee, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for id, e := range r.db.employees {
		if e.Email == email {
			return r.db.employee(id), nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memEmployees) Update(_ context.Context, employee *models.Employee) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if err := r.unique(employee); err != nil {
		return err
	}
	stored := *employee
	stored.Department, stored.Designation = nil, nil
	r.db.employees[employee.ID] = stored
	return nil
}

func (r memEmployees) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if _, ok := r.db.employees[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.employees, id)
	for k, a := range r.db.accounts {
		if a.EmployeeID == id {
			delete(r.db.accounts, k)
		}
	}
	for k, v := range r.db.resetRequests {
		if v.EmployeeID == id {
			delete(r.db.resetRequests, k)
		}
	}
	for k, v := range r.db.leaves {
		if v.EmployeeID == id {
			delete(r.db.leaves, k)
		}
	}
	for k, v := range r.db.tasks {
		if v.EmployeeID == id {
			delete(r.db.tasks, k)
		}
	}
	for k, v := range r.db.attendance {
		if v.EmployeeID == id {
			delete(r.db.attendance, k)
		}
	}
	for k, v := range r.db.documents {
		if v.EmployeeID == id {
			delete(r.db.documents, k)
		}
	}
	return nil
}

func (r memEmployees) List(_ context.Context, search string, offset, limit int) ([]*models.Employee, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, 0, err
	}
	search = strings.ToLower(search)
	var all []*models.Employee
	for _, id := range sortedIDs(r.db.employees) {
		e := r.db.employee(id)
		haystack := strings.ToLower(strings.Join([]string{e.EmployeeCode, e.FirstName, e.LastName, e.Email}, " "))
		if search == "" || strings.Contains(haystack, search) {
			all = append(all, e)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (r memEmployees) count(match func(models.Employee) bool) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for _, e := range r.db.employees {
		if match(e) {
			n++
		}
	}
	return n, nil
}

func (r memEmployees) Count(_ context.Context) (int64, error) {
	return r.count(func(models.Employee) bool { return true })
}

func (r memEmployees) CountByDepartment(_ context.Context, departmentID uint) (int64, error) {
	return r.count(func(e models.Employee) bool { return e.DepartmentID != nil && *e.DepartmentID == departmentID })
}

func (r memEmployees) CountByDesignation(_ context.Context, designationID uint) (int64, error) {
	return r.count(func(e models.Employee) bool { return e.DesignationID != nil && *e.DesignationID == designationID })
}

// ============================================================
// Departments and designations
// ============================================================

type memDepartments struct{ db *MemoryDB }

func (r memDepartments) Create(_ context.Context, department *models.Department) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for _, d := range r.db.departments {
		if d.Name == department.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	department.ID = r.db.id()
	r.db.departments[department.ID] = *department
	return nil
}

func (r memDepartments) GetByID(_ context.Context, id uint) (*models.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if d, ok := r.db.departments[id]; ok {
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memDepartments) GetByName(_ context.Context, name string) (*models.Department, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for _, d := range r.db.departments {
		if d.Name == name {
			return &d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memDepartments) Update(_ context.Context, department *models.Department) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for _, d := range r.db.departments {
		if d.ID != department.ID && d.Name == department.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	r.db.departments[department.ID] = *department
	return nil
}

func (r memDepartments) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if _, ok := r.db.departments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.departments, id)
	return nil
}

func (r memDepartments) List(_ context.Context) ([]*repositories.DepartmentSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*repositories.DepartmentSummary
	for _, id := range sortedIDs(r.db.departments) {
		s := &repositories.DepartmentSummary{Department: r.db.departments[id]}
		for _, e := range r.db.employees {
			if e.DepartmentID != nil && *e.DepartmentID == id {
				s.EmployeeCount++
			}
		}
		for _, d := range r.db.designations {
			if d.DepartmentID != nil && *d.DepartmentID == id {
				s.DesignationCount++
			}
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r memDepartments) Count(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	return int64(len(r.db.departments)), nil
}

type memDesignations struct{ db *MemoryDB }

func (r memDesignations) Create(_ context.Context, designation *models.Designation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	designation.ID = r.db.id()
	stored := *designation
	stored.Department = nil
	r.db.designations[designation.ID] = stored
	return nil
}

func (r memDesignations) GetByID(_ context.Context, id uint) (*models.Designation, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if d, ok := r.db.designations[id]; ok {
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memDesignations) Update(_ context.Context, designation *models.Designation) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	stored := *designation
	stored.Department = nil
	r.db.designations[designation.ID] = stored
	return nil
}

func (r memDesignations) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if _, ok := r.db.designations[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.designations, id)
	return nil
}

func (r memDesignations) List(_ context.Context, departmentID *uint) ([]*repositories.DesignationSummary, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*repositories.DesignationSummary
	for _, id := range sortedIDs(r.db.designations) {
		d := r.db.designations[id]
		if departmentID != nil && (d.DepartmentID == nil || *d.DepartmentID != *departmentID) {
			continue
		}
		s := &repositories.DesignationSummary{Designation: d}
		for _, e := range r.db.employees {
			if e.DesignationID != nil && *e.DesignationID == id {
				s.EmployeeCount++
			}
		}
		out = append(out, s)
	}
	return out, nil
}

func (r memDesignations) Count(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	return int64(len(r.db.designations)), nil
}

func (r memDesignations) CountByDepartment(_ context.Context, departmentID uint) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for _, d := range r.db.designations {
		if d.DepartmentID != nil && *d.DepartmentID == departmentID {
			n++
		}
	}
	return n, nil
}

// ============================================================
// Leaves
// ============================================================

type memLeaves struct{ db *MemoryDB }

func (r memLeaves) Create(_ context.Context, leave *models.LeaveRequest) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	leave.ID = r.db.id()
	leave.CreatedAt = r.db.Now()
	stored := *leave
	stored.Employee = nil
	r.db.leaves[leave.ID] = stored
	return nil
}

func (r memLeaves) GetByID(_ context.Context, id uint) (*models.LeaveRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if l, ok := r.db.leaves[id]; ok {
		return &l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memLeaves) ListByEmployee(_ context.Context, employeeID uint) ([]*models.LeaveRequest, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*models.LeaveRequest
	ids := sortedIDs(r.db.leaves)
	for i := len(ids) - 1; i >= 0; i-- {
		if l := r.db.leaves[ids[i]]; l.EmployeeID == employeeID {
			out = append(out, &l)
		}
	}
	return out, nil
}

func (r memLeaves) List(_ context.Context, status string, offset, limit int) ([]*models.LeaveRequest, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, 0, err
	}
	var all []*models.LeaveRequest
	ids := sortedIDs(r.db.leaves)
	for i := len(ids) - 1; i >= 0; i-- {
		if l := r.db.leaves[ids[i]]; status == "" || l.Status == status {
			l.Employee = r.db.employee(l.EmployeeID)
			all = append(all, &l)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (r memLeaves) Transition(_ context.Context, id uint, from, to, reason string) (bool, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return false, err
	}
	l, ok := r.db.leaves[id]
	if !ok || l.Status != from {
		return false, nil
	}
	l.Status = to
	l.RejectionReason = reason
	r.db.leaves[id] = l
	return true, nil
}

func (r memLeaves) CountByStatus(_ context.Context, status string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for _, l := range r.db.leaves {
		if l.Status == status {
			n++
		}
	}
	return n, nil
}

// ============================================================
// Tasks
// ============================================================

type memTasks struct{ db *MemoryDB }

func (r memTasks) Create(_ context.Context, task *models.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	task.ID = r.db.id()
	task.CreatedAt = r.db.Now()
	stored := *task
	stored.Employee = nil
	r.db.tasks[task.ID] = stored
	return nil
}

func (r memTasks) GetByID(_ context.Context, id uint) (*models.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if t, ok := r.db.tasks[id]; ok {
		return &t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memTasks) ListByEmployee(_ context.Context, employeeID uint) ([]*models.Task, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*models.Task
	for _, id := range sortedIDs(r.db.tasks) {
		if t := r.db.tasks[id]; t.EmployeeID == employeeID {
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r memTasks) List(_ context.Context, status string, offset, limit int) ([]*models.Task, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, 0, err
	}
	var all []*models.Task
	for _, id := range sortedIDs(r.db.tasks) {
		if t := r.db.tasks[id]; status == "" || t.Status == status {
			t.Employee = r.db.employee(t.EmployeeID)
			all = append(all, &t)
		}
	}
	return page(all, offset, limit), int64(len(all)), nil
}

func (r memTasks) update(id uint, change func(*models.Task)) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if t, ok := r.db.tasks[id]; ok {
		change(&t)
		r.db.tasks[id] = t
	}
	return nil
}

func (r memTasks) UpdateStatus(_ context.Context, id uint, status string) error {
	return r.update(id, func(t *models.Task) { t.Status = status })
}

func (r memTasks) UpdateDueDate(_ context.Context, id uint, due time.Time) error {
	return r.update(id, func(t *models.Task) { t.DueDate = due })
}

func (r memTasks) CountByStatus(_ context.Context, status string) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return 0, err
	}
	var n int64
	for _, t := range r.db.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

// ============================================================
// Attendance
// ============================================================

type memAttendance struct{ db *MemoryDB }

func (r memAttendance) Create(_ context.Context, record *models.Attendance) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	for _, a := range r.db.attendance {
		if a.EmployeeID == record.EmployeeID && a.WorkDate == record.WorkDate {
			return gorm.ErrDuplicatedKey
		}
	}
	record.ID = r.db.id()
	r.db.attendance[record.ID] = *record
	return nil
}

func (r memAttendance) GetByEmployeeAndDate(_ context.Context, employeeID uint, workDate string) (*models.Attendance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	for _, a := range r.db.attendance {
		if a.EmployeeID == employeeID && a.WorkDate == workDate {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memAttendance) Update(_ context.Context, record *models.Attendance) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	r.db.attendance[record.ID] = *record
	return nil
}

func (r memAttendance) ListByEmployeeBetween(_ context.Context, employeeID uint, from, to string) ([]*models.Attendance, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*models.Attendance
	for _, id := range sortedIDs(r.db.attendance) {
		a := r.db.attendance[id]
		if a.EmployeeID == employeeID && a.WorkDate >= from && a.WorkDate <= to {
			out = append(out, &a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].WorkDate < out[j].WorkDate })
	return out, nil
}

// ============================================================
// Notifications
// ============================================================

type memNotifications struct{ db *MemoryDB }

func (r memNotifications) Create(_ context.Context, notification *models.Notification) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	notification.ID = r.db.id()
	notification.CreatedAt = r.db.Now()
	r.db.notifications[notification.ID] = *notification
	return nil
}

func (r memNotifications) newestFirst(match func(models.Notification) bool) []*models.Notification {
	var out []*models.Notification
	ids := sortedIDs(r.db.notifications)
	for i := len(ids) - 1; i >= 0; i-- {
		if n := r.db.notifications[ids[i]]; match(n) {
			out = append(out, &n)
		}
	}
	return out
}

func (r memNotifications) ListForAudiences(_ context.Context, audiences []string, limit int) ([]*models.Notification, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	out := r.newestFirst(func(n models.Notification) bool {
		for _, a := range audiences {
			if n.TargetAudience == a {
				return true
			}
		}
		return false
	})
	return page(out, 0, limit), nil
}

func (r memNotifications) List(_ context.Context, offset, limit int) ([]*models.Notification, int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, 0, err
	}
	all := r.newestFirst(func(models.Notification) bool { return true })
	return page(all, offset, limit), int64(len(all)), nil
}

func (r memNotifications) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if _, ok := r.db.notifications[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.notifications, id)
	return nil
}

// ============================================================
// Documents
// ============================================================

type memDocuments struct{ db *MemoryDB }

func (r memDocuments) Create(_ context.Context, document *models.Document) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	document.ID = r.db.id()
	document.CreatedAt = r.db.Now()
	r.db.documents[document.ID] = *document
	return nil
}

func (r memDocuments) GetByID(_ context.Context, id uint) (*models.Document, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	if d, ok := r.db.documents[id]; ok {
		return &d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r memDocuments) ListByEmployee(_ context.Context, employeeID uint) ([]*models.Document, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return nil, err
	}
	var out []*models.Document
	ids := sortedIDs(r.db.documents)
	for i := len(ids) - 1; i >= 0; i-- {
		if d := r.db.documents[ids[i]]; d.EmployeeID == employeeID {
			d.Content = nil
			out = append(out, &d)
		}
	}
	return out, nil
}

func (r memDocuments) Delete(_ context.Context, id uint) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.fail; err != nil {
		return err
	}
	if _, ok := r.db.documents[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.db.documents, id)
	return nil
}
