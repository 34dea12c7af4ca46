package repository

import (
	"jadwal-guru/internal/fixture"
	"jadwal-guru/internal/model"
)

// Repository read-only, indexed view over the fixture dataset.
// Built once from a Dataset; safe for concurrent use since nothing mutates it.
type Repository struct {
	Users          *Table[model.User]
	Teachers       *Table[model.Teacher]
	Programs       *Table[model.Program]
	Levels         *Table[model.Level]
	StudyGroups    *Table[model.StudyGroup]
	Days           *Table[model.Day]
	StudyTimes     *Table[model.StudyTime]
	StudyLocations *Table[model.StudyLocation]
	Schedules      *Table[model.Schedule]

	usersByUsername map[string][]int // username -> row positions
	teacherByUser   map[model.ID]model.Teacher
}

// NewRepository builds the tables and secondary indexes
func NewRepository(ds *fixture.Dataset) *Repository {
	r := &Repository{
		Users:          NewTable(ds.Users),
		Teachers:       NewTable(ds.Teachers),
		Programs:       NewTable(ds.Programs),
		Levels:         NewTable(ds.Levels),
		StudyGroups:    NewTable(ds.StudyGroups),
		Days:           NewTable(ds.Days),
		StudyTimes:     NewTable(ds.StudyTimes),
		StudyLocations: NewTable(ds.StudyLocations),
		Schedules:      NewTable(ds.Schedules),

		usersByUsername: make(map[string][]int),
		teacherByUser:   make(map[model.ID]model.Teacher),
	}

	for i, u := range r.Users.rows {
		r.usersByUsername[u.Username] = append(r.usersByUsername[u.Username], i)
	}

	// only teachers whose user resolves can be found by user id
	r.Teachers.Each(func(t model.Teacher) {
		if _, ok := r.Users.Get(t.UserID); !ok {
			return
		}
		if _, seen := r.teacherByUser[t.UserID]; !seen {
			r.teacherByUser[t.UserID] = t
		}
	})

	return r
}

// UserByCredentials exact username and plaintext password match.
// Several rows may share a username; the first one with a matching password wins.
func (r *Repository) UserByCredentials(username, password string) (model.User, bool) {
	for _, i := range r.usersByUsername[username] {
		if u := r.Users.rows[i]; u.Password == password {
			return u, true
		}
	}
	return model.User{}, false
}

// TeacherByUserID first teacher attached to the user
func (r *Repository) TeacherByUserID(userID model.ID) (model.Teacher, bool) {
	t, ok := r.teacherByUser[userID]
	return t, ok
}
