package store

import (
	"sort"
	"sync"
	"time"

	"planboard/models"
)

// MemoryStore keeps every entity kind in its own map keyed by id. A single
// store-wide counter issues ids across all kinds. The mutex makes concurrent
// handler access memory-safe; it does not add conflict detection.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int

	meetings       map[int]models.Meeting
	todos          map[int]models.Todo
	projects       map[int]models.Project
	scheduledItems map[int]models.ScheduledItem
	passwords      map[int]models.Password
	goals          map[int]models.Goal
	habitTracking  map[int]models.HabitTracking
	habitLegends   map[int]models.HabitLegend
	accounts       map[int]models.Account
	transactions   map[int]models.Transaction
	financialGoals map[int]models.FinancialGoal
	healthScores   map[int]models.HealthScore
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		meetings:       make(map[int]models.Meeting),
		todos:          make(map[int]models.Todo),
		projects:       make(map[int]models.Project),
		scheduledItems: make(map[int]models.ScheduledItem),
		passwords:      make(map[int]models.Password),
		goals:          make(map[int]models.Goal),
		habitTracking:  make(map[int]models.HabitTracking),
		habitLegends:   make(map[int]models.HabitLegend),
		accounts:       make(map[int]models.Account),
		transactions:   make(map[int]models.Transaction),
		financialGoals: make(map[int]models.FinancialGoal),
		healthScores:   make(map[int]models.HealthScore),
	}
}

// next issues the next id. Caller must hold s.mu.
func (s *MemoryStore) next() int {
	s.nextID++
	return s.nextID
}

// byID sorts a slice ascending by id, a deterministic stand-in for insertion
// order over Go's randomized map iteration.
func byID[T any](items []T, id func(T) int) []T {
	sort.Slice(items, func(i, j int) bool { return id(items[i]) < id(items[j]) })
	return items
}

func (s *MemoryStore) Meeting(id int) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, ErrNotFound
	}
	return m, nil
}

func (s *MemoryStore) MeetingsByDate(userID int, date string) ([]models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Meeting
	for _, m := range s.meetings {
		if m.UserID == userID && m.Date == date {
			out = append(out, m)
		}
	}
	return byID(out, func(m models.Meeting) int { return m.ID }), nil
}

func (s *MemoryStore) CreateMeeting(m models.Meeting) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.next()
	s.meetings[m.ID] = m
	return m, nil
}

func (s *MemoryStore) UpdateMeeting(id int, p models.MeetingPatch) (models.Meeting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.meetings[id]
	if !ok {
		return models.Meeting{}, ErrNotFound
	}
	m = p.Apply(m)
	s.meetings[id] = m
	return m, nil
}

func (s *MemoryStore) DeleteMeeting(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.meetings[id]; !ok {
		return ErrNotFound
	}
	delete(s.meetings, id)
	return nil
}

func (s *MemoryStore) Todo(id int) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	return t, nil
}

func (s *MemoryStore) Todos(userID int) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Todo
	for _, t := range s.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return byID(out, func(t models.Todo) int { return t.ID }), nil
}

func (s *MemoryStore) TodosByProject(userID, projectID int) ([]models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Todo
	for _, t := range s.todos {
		if t.UserID == userID && t.ProjectID != nil && *t.ProjectID == projectID {
			out = append(out, t)
		}
	}
	return byID(out, func(t models.Todo) int { return t.ID }), nil
}

func (s *MemoryStore) CreateTodo(t models.Todo) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next()
	s.todos[t.ID] = t
	return t, nil
}

func (s *MemoryStore) UpdateTodo(id int, p models.TodoPatch) (models.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.todos[id]
	if !ok {
		return models.Todo{}, ErrNotFound
	}
	t = p.Apply(t)
	s.todos[id] = t
	return t, nil
}

func (s *MemoryStore) DeleteTodo(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.todos[id]; !ok {
		return ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

func (s *MemoryStore) Projects(userID int) ([]models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Project
	for _, pr := range s.projects {
		if pr.UserID == userID {
			out = append(out, pr)
		}
	}
	return byID(out, func(pr models.Project) int { return pr.ID }), nil
}

func (s *MemoryStore) CreateProject(pr models.Project) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pr.ID = s.next()
	s.projects[pr.ID] = pr
	return pr, nil
}

func (s *MemoryStore) UpdateProject(id int, p models.ProjectPatch) (models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pr, ok := s.projects[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	pr = p.Apply(pr)
	s.projects[id] = pr
	return pr, nil
}

// DeleteProject removes only the project. Todos keep their projectId; the
// reference is not enforced and there is no cascade.
func (s *MemoryStore) DeleteProject(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.projects[id]; !ok {
		return ErrNotFound
	}
	delete(s.projects, id)
	return nil
}

func (s *MemoryStore) ScheduledItemsByDate(userID int, date string) ([]models.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.ScheduledItem
	for _, it := range s.scheduledItems {
		if it.UserID == userID && it.Date == date {
			out = append(out, it)
		}
	}
	return byID(out, func(it models.ScheduledItem) int { return it.ID }), nil
}

func (s *MemoryStore) CreateScheduledItem(it models.ScheduledItem) (models.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it.ID = s.next()
	s.scheduledItems[it.ID] = it
	return it, nil
}

func (s *MemoryStore) UpdateScheduledItem(id int, p models.ScheduledItemPatch) (models.ScheduledItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it, ok := s.scheduledItems[id]
	if !ok {
		return models.ScheduledItem{}, ErrNotFound
	}
	it = p.Apply(it)
	s.scheduledItems[id] = it
	return it, nil
}

func (s *MemoryStore) DeleteScheduledItem(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.scheduledItems[id]; !ok {
		return ErrNotFound
	}
	delete(s.scheduledItems, id)
	return nil
}

func (s *MemoryStore) Passwords(userID int) ([]models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Password
	for _, e := range s.passwords {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return byID(out, func(e models.Password) int { return e.ID }), nil
}

func (s *MemoryStore) CreatePassword(e models.Password) (models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.next()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	s.passwords[e.ID] = e
	return e, nil
}

func (s *MemoryStore) UpdatePassword(id int, p models.PasswordPatch) (models.Password, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.passwords[id]
	if !ok {
		return models.Password{}, ErrNotFound
	}
	e = p.Apply(e)
	e.UpdatedAt = time.Now().UTC()
	s.passwords[id] = e
	return e, nil
}

func (s *MemoryStore) DeletePassword(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.passwords[id]; !ok {
		return ErrNotFound
	}
	delete(s.passwords, id)
	return nil
}

func (s *MemoryStore) Goals(userID int) ([]models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return byID(out, func(g models.Goal) int { return g.ID }), nil
}

func (s *MemoryStore) CreateGoal(g models.Goal) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.next()
	s.goals[g.ID] = g
	return g, nil
}

func (s *MemoryStore) UpdateGoal(id int, p models.GoalPatch) (models.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.goals[id]
	if !ok {
		return models.Goal{}, ErrNotFound
	}
	g = p.Apply(g)
	s.goals[id] = g
	return g, nil
}

func (s *MemoryStore) DeleteGoal(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[id]; !ok {
		return ErrNotFound
	}
	delete(s.goals, id)
	return nil
}

func (s *MemoryStore) HabitTrackingByMonth(userID, month, year int) ([]models.HabitTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := monthPrefix(month, year)
	var out []models.HabitTracking
	for _, h := range s.habitTracking {
		if h.UserID == userID && len(h.Date) >= len(prefix) && h.Date[:len(prefix)] == prefix {
			out = append(out, h)
		}
	}
	return byID(out, func(h models.HabitTracking) int { return h.ID }), nil
}

func (s *MemoryStore) CreateHabitTracking(h models.HabitTracking) (models.HabitTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.next()
	s.habitTracking[h.ID] = h
	return h, nil
}

func (s *MemoryStore) UpdateHabitTracking(id int, p models.HabitTrackingPatch) (models.HabitTracking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.habitTracking[id]
	if !ok {
		return models.HabitTracking{}, ErrNotFound
	}
	h = p.Apply(h)
	s.habitTracking[id] = h
	return h, nil
}

func (s *MemoryStore) DeleteHabitTracking(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.habitTracking[id]; !ok {
		return ErrNotFound
	}
	delete(s.habitTracking, id)
	return nil
}

func (s *MemoryStore) HabitLegends(userID int) ([]models.HabitLegend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.HabitLegend
	for _, l := range s.habitLegends {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return byID(out, func(l models.HabitLegend) int { return l.ID }), nil
}

func (s *MemoryStore) CreateHabitLegend(l models.HabitLegend) (models.HabitLegend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l.ID = s.next()
	s.habitLegends[l.ID] = l
	return l, nil
}

func (s *MemoryStore) UpdateHabitLegend(id int, p models.HabitLegendPatch) (models.HabitLegend, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.habitLegends[id]
	if !ok {
		return models.HabitLegend{}, ErrNotFound
	}
	l = p.Apply(l)
	s.habitLegends[id] = l
	return l, nil
}

func (s *MemoryStore) DeleteHabitLegend(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.habitLegends[id]; !ok {
		return ErrNotFound
	}
	delete(s.habitLegends, id)
	return nil
}

func (s *MemoryStore) Accounts(userID int) ([]models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Account
	for _, a := range s.accounts {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return byID(out, func(a models.Account) int { return a.ID }), nil
}

func (s *MemoryStore) CreateAccount(a models.Account) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.next()
	s.accounts[a.ID] = a
	return a, nil
}

func (s *MemoryStore) UpdateAccount(id int, p models.AccountPatch) (models.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return models.Account{}, ErrNotFound
	}
	a = p.Apply(a)
	s.accounts[id] = a
	return a, nil
}

func (s *MemoryStore) DeleteAccount(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[id]; !ok {
		return ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

func (s *MemoryStore) Transactions(userID int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return byID(out, func(t models.Transaction) int { return t.ID }), nil
}

func (s *MemoryStore) TransactionsByMonth(userID, month, year int) ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefix := monthPrefix(month, year)
	var out []models.Transaction
	for _, t := range s.transactions {
		if t.UserID == userID && len(t.Date) >= len(prefix) && t.Date[:len(prefix)] == prefix {
			out = append(out, t)
		}
	}
	return byID(out, func(t models.Transaction) int { return t.ID }), nil
}

func (s *MemoryStore) CreateTransaction(t models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next()
	s.transactions[t.ID] = t
	return t, nil
}

func (s *MemoryStore) UpdateTransaction(id int, p models.TransactionPatch) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.transactions[id]
	if !ok {
		return models.Transaction{}, ErrNotFound
	}
	t = p.Apply(t)
	s.transactions[id] = t
	return t, nil
}

func (s *MemoryStore) DeleteTransaction(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.transactions[id]; !ok {
		return ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *MemoryStore) FinancialGoals(userID int) ([]models.FinancialGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.FinancialGoal
	for _, g := range s.financialGoals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	return byID(out, func(g models.FinancialGoal) int { return g.ID }), nil
}

func (s *MemoryStore) CreateFinancialGoal(g models.FinancialGoal) (models.FinancialGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.next()
	s.financialGoals[g.ID] = g
	return g, nil
}

func (s *MemoryStore) UpdateFinancialGoal(id int, p models.FinancialGoalPatch) (models.FinancialGoal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.financialGoals[id]
	if !ok {
		return models.FinancialGoal{}, ErrNotFound
	}
	g = p.Apply(g)
	s.financialGoals[id] = g
	return g, nil
}

func (s *MemoryStore) DeleteFinancialGoal(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.financialGoals[id]; !ok {
		return ErrNotFound
	}
	delete(s.financialGoals, id)
	return nil
}

// HealthScoresByMonth can return more than one record: POST does not
// deduplicate on (month, year), so duplicates coexist and the client shows
// whichever it finds first.
func (s *MemoryStore) HealthScoresByMonth(userID, month, year int) ([]models.HealthScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.HealthScore
	for _, h := range s.healthScores {
		if h.UserID == userID && h.Month == month && h.Year == year {
			out = append(out, h)
		}
	}
	return byID(out, func(h models.HealthScore) int { return h.ID }), nil
}

func (s *MemoryStore) CreateHealthScore(h models.HealthScore) (models.HealthScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.next()
	s.healthScores[h.ID] = h
	return h, nil
}

func (s *MemoryStore) UpdateHealthScore(id int, p models.HealthScorePatch) (models.HealthScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.healthScores[id]
	if !ok {
		return models.HealthScore{}, ErrNotFound
	}
	h = p.Apply(h)
	s.healthScores[id] = h
	return h, nil
}

func (s *MemoryStore) DeleteHealthScore(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.healthScores[id]; !ok {
		return ErrNotFound
	}
	delete(s.healthScores, id)
	return nil
}
