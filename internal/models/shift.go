package models

// Member — запись участника смены: uid + отображаемое имя.
// Имя денормализовано, чтобы не делать лишний запрос к users при отрисовке.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Shift — смена. Assigned — утверждённые работники, Pending — ожидающие
// одобрения менеджера. Время хранится в миллисекундах epoch.
type Shift struct {
	ID              string   `json:"shiftId"`
	StartTime       int64    `json:"startTime"`
	EndTime         int64    `json:"endTime"`
	RequiredWorkers int      `json:"requiredWorkers"`
	Notes           string   `json:"notes,omitempty"`
	Assigned        []Member `json:"assigned"`
	Pending         []Member `json:"pending"`
}

// IsFull — смена укомплектована, когда утверждённых не меньше требуемого.
func (s *Shift) IsFull() bool {
	return len(s.Assigned) >= s.RequiredWorkers
}

// AddMember добавляет запись, если uid ещё нет в списке (семантика arrayUnion).
func AddMember(list []Member, m Member) []Member {
	for _, cur := range list {
		if cur.ID == m.ID {
			return list
		}
	}
	return append(list, m)
}

// RemoveMember убирает запись по uid, если она есть (семантика arrayRemove).
func RemoveMember(list []Member, id string) []Member {
	out := make([]Member, 0, len(list))
	for _, cur := range list {
		if cur.ID != id {
			out = append(out, cur)
		}
	}
	return out
}

// ContainsMember — есть ли uid в списке.
func ContainsMember(list []Member, id string) bool {
	for _, cur := range list {
		if cur.ID == id {
			return true
		}
	}
	return false
}

// FindMember возвращает запись по uid.
func FindMember(list []Member, id string) (Member, bool) {
	for _, cur := range list {
		if cur.ID == id {
			return cur, true
		}
	}
	return Member{}, false
}
