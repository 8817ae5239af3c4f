package store

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"planboard/models"
)

// Entity kind tags for the records table.
const (
	kindMeeting       = "meeting"
	kindTodo          = "todo"
	kindProject       = "project"
	kindScheduledItem = "scheduled_item"
	kindPassword      = "password"
	kindGoal          = "goal"
	kindHabitTracking = "habit_tracking"
	kindHabitLegend   = "habit_legend"
	kindAccount       = "account"
	kindTransaction   = "transaction"
	kindFinancialGoal = "financial_goal"
	kindHealthScore   = "health_score"
)

// SQLiteStore persists records as JSON documents in a single table. The
// shared AUTOINCREMENT sequence keeps ids unique across every entity kind,
// the same property the memory store gets from its single counter. Updates
// re-read, merge and rewrite the row with no check-and-set, so the
// last-write-wins semantics match the memory backend.
type SQLiteStore struct {
	db *sql.DB
}

func OpenSQLiteStore(dataSourceName string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}

	createTable := `
	CREATE TABLE IF NOT EXISTS records (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		kind TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_records_user_kind ON records(user_id, kind);
	`
	if _, err := db.Exec(createTable); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// allocate inserts a placeholder row to claim the next id from the shared
// sequence. The caller fills the data column with write.
func (s *SQLiteStore) allocate(userID int, kind string) (int, error) {
	res, err := s.db.Exec("INSERT INTO records (user_id, kind, data) VALUES (?, ?, '')", userID, kind)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (s *SQLiteStore) write(id int, rec any) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	_, err = s.db.Exec("UPDATE records SET data = ? WHERE id = ?", string(data), id)
	return err
}

func (s *SQLiteStore) load(id int, kind string, rec any) error {
	var data string
	err := s.db.QueryRow("SELECT data FROM records WHERE id = ? AND kind = ? AND data != ''", id, kind).Scan(&data)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), rec)
}

func (s *SQLiteStore) remove(id int, kind string) error {
	res, err := s.db.Exec("DELETE FROM records WHERE id = ? AND kind = ?", id, kind)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// listRecords returns every record of a kind for a user, in id order.
// Placeholder rows from interrupted creates are excluded.
func listRecords[T any](s *SQLiteStore, userID int, kind string) ([]T, error) {
	rows, err := s.db.Query("SELECT data FROM records WHERE user_id = ? AND kind = ? AND data != '' ORDER BY id", userID, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var rec T
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Meeting(id int) (models.Meeting, error) {
	var m models.Meeting
	err := s.load(id, kindMeeting, &m)
	return m, err
}

func (s *SQLiteStore) MeetingsByDate(userID int, date string) ([]models.Meeting, error) {
	all, err := listRecords[models.Meeting](s, userID, kindMeeting)
	if err != nil {
		return nil, err
	}
	var out []models.Meeting
	for _, m := range all {
		if m.Date == date {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateMeeting(m models.Meeting) (models.Meeting, error) {
	id, err := s.allocate(m.UserID, kindMeeting)
	if err != nil {
		return models.Meeting{}, err
	}
	m.ID = id
	if err := s.write(id, m); err != nil {
		return models.Meeting{}, err
	}
	return m, nil
}

func (s *SQLiteStore) UpdateMeeting(id int, p models.MeetingPatch) (models.Meeting, error) {
	var m models.Meeting
	if err := s.load(id, kindMeeting, &m); err != nil {
		return models.Meeting{}, err
	}
	m = p.Apply(m)
	if err := s.write(id, m); err != nil {
		return models.Meeting{}, err
	}
	return m, nil
}

func (s *SQLiteStore) DeleteMeeting(id int) error {
	return s.remove(id, kindMeeting)
}

func (s *SQLiteStore) Todo(id int) (models.Todo, error) {
	var t models.Todo
	err := s.load(id, kindTodo, &t)
	return t, err
}

func (s *SQLiteStore) Todos(userID int) ([]models.Todo, error) {
	return listRecords[models.Todo](s, userID, kindTodo)
}

func (s *SQLiteStore) TodosByProject(userID, projectID int) ([]models.Todo, error) {
	all, err := listRecords[models.Todo](s, userID, kindTodo)
	if err != nil {
		return nil, err
	}
	var out []models.Todo
	for _, t := range all {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateTodo(t models.Todo) (models.Todo, error) {
	id, err := s.allocate(t.UserID, kindTodo)
	if err != nil {
		return models.Todo{}, err
	}
	t.ID = id
	if err := s.write(id, t); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

func (s *SQLiteStore) UpdateTodo(id int, p models.TodoPatch) (models.Todo, error) {
	var t models.Todo
	if err := s.load(id, kindTodo, &t); err != nil {
		return models.Todo{}, err
	}
	t = p.Apply(t)
	if err := s.write(id, t); err != nil {
		return models.Todo{}, err
	}
	return t, nil
}

func (s *SQLiteStore) DeleteTodo(id int) error {
	return s.remove(id, kindTodo)
}

func (s *SQLiteStore) Projects(userID int) ([]models.Project, error) {
	return listRecords[models.Project](s, userID, kindProject)
}

func (s *SQLiteStore) CreateProject(pr models.Project) (models.Project, error) {
	id, err := s.allocate(pr.UserID, kindProject)
	if err != nil {
		return models.Project{}, err
	}
	pr.ID = id
	if err := s.write(id, pr); err != nil {
		return models.Project{}, err
	}
	return pr, nil
}

func (s *SQLiteStore) UpdateProject(id int, p models.ProjectPatch) (models.Project, error) {
	var pr models.Project
	if err := s.load(id, kindProject, &pr); err != nil {
		return models.Project{}, err
	}
	pr = p.Apply(pr)
	if err := s.write(id, pr); err != nil {
		return models.Project{}, err
	}
	return pr, nil
}

func (s *SQLiteStore) DeleteProject(id int) error {
	return s.remove(id, kindProject)
}

func (s *SQLiteStore) ScheduledItemsByDate(userID int, date string) ([]models.ScheduledItem, error) {
	all, err := listRecords[models.ScheduledItem](s, userID, kindScheduledItem)
	if err != nil {
		return nil, err
	}
	var out []models.ScheduledItem
	for _, it := range all {
		if it.Date == date {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateScheduledItem(it models.ScheduledItem) (models.ScheduledItem, error) {
	id, err := s.allocate(it.UserID, kindScheduledItem)
	if err != nil {
		return models.ScheduledItem{}, err
	}
	it.ID = id
	if err := s.write(id, it); err != nil {
		return models.ScheduledItem{}, err
	}
	return it, nil
}

func (s *SQLiteStore) UpdateScheduledItem(id int, p models.ScheduledItemPatch) (models.ScheduledItem, error) {
	var it models.ScheduledItem
	if err := s.load(id, kindScheduledItem, &it); err != nil {
		return models.ScheduledItem{}, err
	}
	it = p.Apply(it)
	if err := s.write(id, it); err != nil {
		return models.ScheduledItem{}, err
	}
	return it, nil
}

func (s *SQLiteStore) DeleteScheduledItem(id int) error {
	return s.remove(id, kindScheduledItem)
}

func (s *SQLiteStore) Passwords(userID int) ([]models.Password, error) {
	return listRecords[models.Password](s, userID, kindPassword)
}

func (s *SQLiteStore) CreatePassword(e models.Password) (models.Password, error) {
	id, err := s.allocate(e.UserID, kindPassword)
	if err != nil {
		return models.Password{}, err
	}
	e.ID = id
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.write(id, e); err != nil {
		return models.Password{}, err
	}
	return e, nil
}

func (s *SQLiteStore) UpdatePassword(id int, p models.PasswordPatch) (models.Password, error) {
	var e models.Password
	if err := s.load(id, kindPassword, &e); err != nil {
		return models.Password{}, err
	}
	e = p.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	if err := s.write(id, e); err != nil {
		return models.Password{}, err
	}
	return e, nil
}

func (s *SQLiteStore) DeletePassword(id int) error {
	return s.remove(id, kindPassword)
}

func (s *SQLiteStore) Goals(userID int) ([]models.Goal, error) {
	return listRecords[models.Goal](s, userID, kindGoal)
}

func (s *SQLiteStore) CreateGoal(g models.Goal) (models.Goal, error) {
	id, err := s.allocate(g.UserID, kindGoal)
	if err != nil {
		return models.Goal{}, err
	}
	g.ID = id
	if err := s.write(id, g); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (s *SQLiteStore) UpdateGoal(id int, p models.GoalPatch) (models.Goal, error) {
	var g models.Goal
	if err := s.load(id, kindGoal, &g); err != nil {
		return models.Goal{}, err
	}
	g = p.Apply(g)
	if err := s.write(id, g); err != nil {
		return models.Goal{}, err
	}
	return g, nil
}

func (s *SQLiteStore) DeleteGoal(id int) error {
	return s.remove(id, kindGoal)
}

func (s *SQLiteStore) HabitTrackingByMonth(userID, month, year int) ([]models.HabitTracking, error) {
	all, err := listRecords[models.HabitTracking](s, userID, kindHabitTracking)
	if err != nil {
		return nil, err
	}
	prefix := monthPrefix(month, year)
	var out []models.HabitTracking
	for _, h := range all {
		if len(h.Date) >= len(prefix) && h.Date[:len(prefix)] == prefix {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateHabitTracking(h models.HabitTracking) (models.HabitTracking, error) {
	id, err := s.allocate(h.UserID, kindHabitTracking)
	if err != nil {
		return models.HabitTracking{}, err
	}
	h.ID = id
	if err := s.write(id, h); err != nil {
		return models.HabitTracking{}, err
	}
	return h, nil
}

func (s *SQLiteStore) UpdateHabitTracking(id int, p models.HabitTrackingPatch) (models.HabitTracking, error) {
	var h models.HabitTracking
	if err := s.load(id, kindHabitTracking, &h); err != nil {
		return models.HabitTracking{}, err
	}
	h = p.Apply(h)
	if err := s.write(id, h); err != nil {
		return models.HabitTracking{}, err
	}
	return h, nil
}

func (s *SQLiteStore) DeleteHabitTracking(id int) error {
	return s.remove(id, kindHabitTracking)
}

func (s *SQLiteStore) HabitLegends(userID int) ([]models.HabitLegend, error) {
	return listRecords[models.HabitLegend](s, userID, kindHabitLegend)
}

func (s *SQLiteStore) CreateHabitLegend(l models.HabitLegend) (models.HabitLegend, error) {
	id, err := s.allocate(l.UserID, kindHabitLegend)
	if err != nil {
		return models.HabitLegend{}, err
	}
	l.ID = id
	if err := s.write(id, l); err != nil {
		return models.HabitLegend{}, err
	}
	return l, nil
}

func (s *SQLiteStore) UpdateHabitLegend(id int, p models.HabitLegendPatch) (models.HabitLegend, error) {
	var l models.HabitLegend
	if err := s.load(id, kindHabitLegend, &l); err != nil {
		return models.HabitLegend{}, err
	}
	l = p.Apply(l)
	if err := s.write(id, l); err != nil {
		return models.HabitLegend{}, err
	}
	return l, nil
}

func (s *SQLiteStore) DeleteHabitLegend(id int) error {
	return s.remove(id, kindHabitLegend)
}

func (s *SQLiteStore) Accounts(userID int) ([]models.Account, error) {
	return listRecords[models.Account](s, userID, kindAccount)
}

func (s *SQLiteStore) CreateAccount(a models.Account) (models.Account, error) {
	id, err := s.allocate(a.UserID, kindAccount)
	if err != nil {
		return models.Account{}, err
	}
	a.ID = id
	if err := s.write(id, a); err != nil {
		return models.Account{}, err
	}
	return a, nil
}

func (s *SQLiteStore) UpdateAccount(id int, p models.AccountPatch) (models.Account, error) {
	var a models.Account
	if err := s.load(id, kindAccount, &a); err != nil {
		return models.Account{}, err
	}
	a = p.Apply(a)
	if err := s.write(id, a); err != nil {
		return models.Account{}, err
	}
	return a, nil
}

func (s *SQLiteStore) DeleteAccount(id int) error {
	return s.remove(id, kindAccount)
}

func (s *SQLiteStore) Transactions(userID int) ([]models.Transaction, error) {
	return listRecords[models.Transaction](s, userID, kindTransaction)
}

func (s *SQLiteStore) TransactionsByMonth(userID, month, year int) ([]models.Transaction, error) {
	all, err := listRecords[models.Transaction](s, userID, kindTransaction)
	if err != nil {
		return nil, err
	}
	prefix := monthPrefix(month, year)
	var out []models.Transaction
	for _, t := range all {
		if len(t.Date) >= len(prefix) && t.Date[:len(prefix)] == prefix {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateTransaction(t models.Transaction) (models.Transaction, error) {
	id, err := s.allocate(t.UserID, kindTransaction)
	if err != nil {
		return models.Transaction{}, err
	}
	t.ID = id
	if err := s.write(id, t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

func (s *SQLiteStore) UpdateTransaction(id int, p models.TransactionPatch) (models.Transaction, error) {
	var t models.Transaction
	if err := s.load(id, kindTransaction, &t); err != nil {
		return models.Transaction{}, err
	}
	t = p.Apply(t)
	if err := s.write(id, t); err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

func (s *SQLiteStore) DeleteTransaction(id int) error {
	return s.remove(id, kindTransaction)
}

func (s *SQLiteStore) FinancialGoals(userID int) ([]models.FinancialGoal, error) {
	return listRecords[models.FinancialGoal](s, userID, kindFinancialGoal)
}

func (s *SQLiteStore) CreateFinancialGoal(g models.FinancialGoal) (models.FinancialGoal, error) {
	id, err := s.allocate(g.UserID, kindFinancialGoal)
	if err != nil {
		return models.FinancialGoal{}, err
	}
	g.ID = id
	if err := s.write(id, g); err != nil {
		return models.FinancialGoal{}, err
	}
	return g, nil
}

func (s *SQLiteStore) UpdateFinancialGoal(id int, p models.FinancialGoalPatch) (models.FinancialGoal, error) {
	var g models.FinancialGoal
	if err := s.load(id, kindFinancialGoal, &g); err != nil {
		return models.FinancialGoal{}, err
	}
	g = p.Apply(g)
	if err := s.write(id, g); err != nil {
		return models.FinancialGoal{}, err
	}
	return g, nil
}

func (s *SQLiteStore) DeleteFinancialGoal(id int) error {
	return s.remove(id, kindFinancialGoal)
}

func (s *SQLiteStore) HealthScoresByMonth(userID, month, year int) ([]models.HealthScore, error) {
	all, err := listRecords[models.HealthScore](s, userID, kindHealthScore)
	if err != nil {
		return nil, err
	}
	var out []models.HealthScore
	for _, h := range all {
		if h.Month == month && h.Year == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *SQLiteStore) CreateHealthScore(h models.HealthScore) (models.HealthScore, error) {
	id, err := s.allocate(h.UserID, kindHealthScore)
	if err != nil {
		return models.HealthScore{}, err
	}
	h.ID = id
	if err := s.write(id, h); err != nil {
		return models.HealthScore{}, err
	}
	return h, nil
}

func (s *SQLiteStore) UpdateHealthScore(id int, p models.HealthScorePatch) (models.HealthScore, error) {
	var h models.HealthScore
	if err := s.load(id, kindHealthScore, &h); err != nil {
		return models.HealthScore{}, err
	}
	h = p.Apply(h)
	if err := s.write(id, h); err != nil {
		return models.HealthScore{}, err
	}
	return h, nil
}

func (s *SQLiteStore) DeleteHealthScore(id int) error {
	return s.remove(id, kindHealthScore)
}
