package models

// ShiftRequestItem — строка очереди заявок менеджера: одна запись на каждого
// ожидающего в каждой смене. Не хранится в базе, собирается заново из
// pending-списков при каждом запросе.
type ShiftRequestItem struct {
	Shift    Shift  `json:"shift"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
}
