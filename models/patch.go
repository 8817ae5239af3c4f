package models

// Patch types carry a pointer per updatable field; Apply shallow-merges the
// fields that were present in the request body into the stored record.

func strOr(fallback string, p *string) string {
	if p != nil {
		return *p
	}
	return fallback
}

func intOr(fallback int, p *int) int {
	if p != nil {
		return *p
	}
	return fallback
}

func boolOr(fallback bool, p *bool) bool {
	if p != nil {
		return *p
	}
	return fallback
}

func floatOr(fallback float64, p *float64) float64 {
	if p != nil {
		return *p
	}
	return fallback
}

type MeetingPatch struct {
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	Duration  *int    `json:"duration"`
	Color     *string `json:"color"`
	Date      *string `json:"date"`
}

func (p MeetingPatch) Apply(m Meeting) Meeting {
	m.Title = strOr(m.Title, p.Title)
	m.StartTime = strOr(m.StartTime, p.StartTime)
	m.Duration = intOr(m.Duration, p.Duration)
	m.Color = strOr(m.Color, p.Color)
	m.Date = strOr(m.Date, p.Date)
	return m
}

type TodoPatch struct {
	Title             *string `json:"title"`
	Description       *string `json:"description"`
	Priority          *string `json:"priority"`
	EstimatedDuration *int    `json:"estimatedDuration"`
	Completed         *bool   `json:"completed"`
	ProjectID         *int    `json:"projectId"`
	DueDate           *string `json:"dueDate"`
}

func (p TodoPatch) Apply(t Todo) Todo {
	t.Title = strOr(t.Title, p.Title)
	t.Description = strOr(t.Description, p.Description)
	t.Priority = strOr(t.Priority, p.Priority)
	t.EstimatedDuration = intOr(t.EstimatedDuration, p.EstimatedDuration)
	t.Completed = boolOr(t.Completed, p.Completed)
	if p.ProjectID != nil {
		t.ProjectID = p.ProjectID
	}
	t.DueDate = strOr(t.DueDate, p.DueDate)
	return t
}

type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
}

func (p ProjectPatch) Apply(pr Project) Project {
	pr.Name = strOr(pr.Name, p.Name)
	pr.Description = strOr(pr.Description, p.Description)
	pr.Color = strOr(pr.Color, p.Color)
	return pr
}

type ScheduledItemPatch struct {
	Title     *string `json:"title"`
	StartTime *string `json:"startTime"`
	Duration  *int    `json:"duration"`
	Date      *string `json:"date"`
	Color     *string `json:"color"`
}

func (p ScheduledItemPatch) Apply(s ScheduledItem) ScheduledItem {
	s.Title = strOr(s.Title, p.Title)
	s.StartTime = strOr(s.StartTime, p.StartTime)
	s.Duration = intOr(s.Duration, p.Duration)
	s.Date = strOr(s.Date, p.Date)
	s.Color = strOr(s.Color, p.Color)
	return s
}

type PasswordPatch struct {
	Site     *string `json:"site"`
	URL      *string `json:"url"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	Notes    *string `json:"notes"`
}

func (p PasswordPatch) Apply(e Password) Password {
	e.Site = strOr(e.Site, p.Site)
	e.URL = strOr(e.URL, p.URL)
	e.Username = strOr(e.Username, p.Username)
	e.Email = strOr(e.Email, p.Email)
	e.Password = strOr(e.Password, p.Password)
	e.Notes = strOr(e.Notes, p.Notes)
	return e
}

type GoalPatch struct {
	Title        *string  `json:"title"`
	Category     *string  `json:"category"`
	TargetValue  *float64 `json:"targetValue"`
	CurrentValue *float64 `json:"currentValue"`
	Unit         *string  `json:"unit"`
	StartDate    *string  `json:"startDate"`
	TargetDate   *string  `json:"targetDate"`
	Active       *bool    `json:"active"`
}

func (p GoalPatch) Apply(g Goal) Goal {
	g.Title = strOr(g.Title, p.Title)
	g.Category = strOr(g.Category, p.Category)
	if p.TargetValue != nil {
		g.TargetValue = p.TargetValue
	}
	if p.CurrentValue != nil {
		g.CurrentValue = p.CurrentValue
	}
	g.Unit = strOr(g.Unit, p.Unit)
	g.StartDate = strOr(g.StartDate, p.StartDate)
	g.TargetDate = strOr(g.TargetDate, p.TargetDate)
	g.Active = boolOr(g.Active, p.Active)
	return g
}

type HabitTrackingPatch struct {
	GoalID *int    `json:"goalId"`
	Date   *string `json:"date"`
	Status *string `json:"status"`
	Icon   *string `json:"icon"`
}

func (p HabitTrackingPatch) Apply(h HabitTracking) HabitTracking {
	h.GoalID = intOr(h.GoalID, p.GoalID)
	h.Date = strOr(h.Date, p.Date)
	h.Status = strOr(h.Status, p.Status)
	h.Icon = strOr(h.Icon, p.Icon)
	return h
}

type HabitLegendPatch struct {
	Key   *string `json:"key"`
	Label *string `json:"label"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

func (p HabitLegendPatch) Apply(l HabitLegend) HabitLegend {
	l.Key = strOr(l.Key, p.Key)
	l.Label = strOr(l.Label, p.Label)
	l.Icon = strOr(l.Icon, p.Icon)
	l.Color = strOr(l.Color, p.Color)
	return l
}

type AccountPatch struct {
	Name  *string `json:"name"`
	Type  *string `json:"type"`
	Color *string `json:"color"`
}

func (p AccountPatch) Apply(a Account) Account {
	a.Name = strOr(a.Name, p.Name)
	a.Type = strOr(a.Type, p.Type)
	a.Color = strOr(a.Color, p.Color)
	return a
}

type TransactionPatch struct {
	AccountID   *int     `json:"accountId"`
	Amount      *float64 `json:"amount"`
	Type        *string  `json:"type"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Date        *string  `json:"date"`
}

func (p TransactionPatch) Apply(t Transaction) Transaction {
	t.AccountID = intOr(t.AccountID, p.AccountID)
	t.Amount = floatOr(t.Amount, p.Amount)
	t.Type = strOr(t.Type, p.Type)
	t.Category = strOr(t.Category, p.Category)
	t.Description = strOr(t.Description, p.Description)
	t.Date = strOr(t.Date, p.Date)
	return t
}

type FinancialGoalPatch struct {
	Title        *string  `json:"title"`
	TargetAmount *float64 `json:"targetAmount"`
	TargetDate   *string  `json:"targetDate"`
}

func (p FinancialGoalPatch) Apply(g FinancialGoal) FinancialGoal {
	g.Title = strOr(g.Title, p.Title)
	g.TargetAmount = floatOr(g.TargetAmount, p.TargetAmount)
	g.TargetDate = strOr(g.TargetDate, p.TargetDate)
	return g
}

type HealthScorePatch struct {
	Month     *int    `json:"month"`
	Year      *int    `json:"year"`
	Sleep     *int    `json:"sleep"`
	Exercise  *int    `json:"exercise"`
	Nutrition *int    `json:"nutrition"`
	Mental    *int    `json:"mental"`
	Energy    *int    `json:"energy"`
	Notes     *string `json:"notes"`
}

func (p HealthScorePatch) Apply(h HealthScore) HealthScore {
	h.Month = intOr(h.Month, p.Month)
	h.Year = intOr(h.Year, p.Year)
	h.Sleep = intOr(h.Sleep, p.Sleep)
	h.Exercise = intOr(h.Exercise, p.Exercise)
	h.Nutrition = intOr(h.Nutrition, p.Nutrition)
	h.Mental = intOr(h.Mental, p.Mental)
	h.Energy = intOr(h.Energy, p.Energy)
	h.Notes = strOr(h.Notes, p.Notes)
	return h
}
