package store

import (
	"encoding/json"
	"time"
)

// Document - типизированный документ коллекции.
type Document interface {
	PrimaryKey() string
}

// Collection - именованная коллекция документов с проверкой схемы,
// фильтрацией по селекторам и живыми подписками на результаты запросов.
// Документы держатся в памяти (канонично - как JSON-карты) и дублируются
// в таблицу SQLite с тем же именем.
type Collection[T Document] struct {
	store  *Store
	name   string
	schema Schema

	docs  map[string]map[string]any
	order []string // порядок вставки, в нем же отдаются результаты

	subs      map[int]*subscription[T]
	nextSubID int
}

type subscription[T Document] struct {
	selector Selector
	callback func([]T)
}

// отложенный вызов подписчика: снимок готовится под локом, вызов - после
type pendingNotify[T Document] struct {
	callback func([]T)
	snapshot []T
}

// NewCollection регистрирует коллекцию в хранилище: мигрирует таблицу
// и поднимает существующие документы в память в порядке вставки.
func NewCollection[T Document](s *Store, name string, schema Schema) (*Collection[T], error) {
	if err := s.db.Table(name).AutoMigrate(&row{}); err != nil {
		return nil, &StorageError{Op: "migrate " + name, Err: err}
	}

	var rows []row
	if err := s.db.Table(name).Order("rowid").Find(&rows).Error; err != nil {
		return nil, &StorageError{Op: "load " + name, Err: err}
	}

	c := &Collection[T]{
		store:  s,
		name:   name,
		schema: schema,
		docs:   make(map[string]map[string]any, len(rows)),
		subs:   make(map[int]*subscription[T]),
	}

	for _, r := range rows {
		var doc map[string]any
		if err := json.Unmarshal(r.Doc, &doc); err != nil {
			return nil, &StorageError{Op: "decode " + name + "/" + r.ID, Err: err}
		}
		c.docs[r.ID] = doc
		c.order = append(c.order, r.ID)
	}

	return c, nil
}

// Name возвращает имя коллекции.
func (c *Collection[T]) Name() string {
	return c.name
}

// Count возвращает количество документов.
func (c *Collection[T]) Count() int {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return len(c.order)
}

// Insert вставляет документ. Возвращает ValidationError если документ не
// проходит схему, ConflictError если первичный ключ уже занят.
func (c *Collection[T]) Insert(doc T) error {
	raw, err := toRaw(doc)
	if err != nil {
		return &StorageError{Op: "encode " + c.name, Err: err}
	}

	if err := c.schema.Validate(c.name, raw); err != nil {
		return err
	}

	id := doc.PrimaryKey()

	c.store.mu.Lock()
	if _, exists := c.docs[id]; exists {
		c.store.mu.Unlock()
		return &ConflictError{Collection: c.name, ID: id}
	}

	data, err := json.Marshal(raw)
	if err != nil {
		c.store.mu.Unlock()
		return &StorageError{Op: "encode " + c.name, Err: err}
	}

	if err := c.store.db.Table(c.name).Create(&row{ID: id, Doc: data}).Error; err != nil {
		c.store.mu.Unlock()
		return &StorageError{Op: "insert " + c.name + "/" + id, Err: err}
	}

	c.docs[id] = raw
	c.order = append(c.order, id)

	pending := c.collectNotifies(nil, raw)
	c.store.mu.Unlock()

	fire(pending)
	return nil
}

// FindByID возвращает документ по ключу или нулевое значение, если его нет.
// Отсутствие документа не считается ошибкой.
func (c *Collection[T]) FindByID(id string) (T, error) {
	c.store.mu.Lock()
	raw, ok := c.docs[id]
	c.store.mu.Unlock()

	var zero T
	if !ok {
		return zero, nil
	}
	return decodeDoc[T](raw)
}

// Find возвращает документы, подходящие под селектор, в порядке вставки.
func (c *Collection[T]) Find(selector Selector) ([]T, error) {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.matchingLocked(selector)
}

// Patch вливает переданные поля в существующий документ и обновляет updatedAt.
// Если документа нет - возвращает false без ошибки ("нечего обновлять").
func (c *Collection[T]) Patch(id string, fields map[string]any) (T, bool, error) {
	var zero T

	c.store.mu.Lock()
	old, ok := c.docs[id]
	if !ok {
		c.store.mu.Unlock()
		return zero, false, nil
	}

	merged := make(map[string]any, len(old)+len(fields))
	for k, v := range old {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = jsonValue(v)
	}
	merged["updatedAt"] = NowISO()

	data, err := json.Marshal(merged)
	if err != nil {
		c.store.mu.Unlock()
		return zero, false, &StorageError{Op: "encode " + c.name, Err: err}
	}

	if err := c.store.db.Table(c.name).Where("id = ?", id).Update("doc", data).Error; err != nil {
		c.store.mu.Unlock()
		return zero, false, &StorageError{Op: "patch " + c.name + "/" + id, Err: err}
	}

	c.docs[id] = merged
	pending := c.collectNotifies(old, merged)
	c.store.mu.Unlock()

	fire(pending)

	doc, err := decodeDoc[T](merged)
	if err != nil {
		return zero, false, err
	}
	return doc, true, nil
}

// Remove физически удаляет документ. false - документа не было.
func (c *Collection[T]) Remove(id string) (bool, error) {
	c.store.mu.Lock()
	old, ok := c.docs[id]
	if !ok {
		c.store.mu.Unlock()
		return false, nil
	}

	if err := c.store.db.Table(c.name).Where("id = ?", id).Delete(&row{}).Error; err != nil {
		c.store.mu.Unlock()
		return false, &StorageError{Op: "remove " + c.name + "/" + id, Err: err}
	}

	delete(c.docs, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	pending := c.collectNotifies(old, nil)
	c.store.mu.Unlock()

	fire(pending)
	return true, nil
}

// Subscribe регистрирует живой запрос. Колбек вызывается сразу с текущим
// результатом, затем после каждой мутации, меняющей состав или содержимое
// подходящих документов. Возвращенная функция снимает подписку; повторный
// вызов безопасен и ничего не делает.
func (c *Collection[T]) Subscribe(selector Selector, callback func([]T)) (func(), error) {
	c.store.mu.Lock()
	id := c.nextSubID
	c.nextSubID++
	c.subs[id] = &subscription[T]{selector: selector, callback: callback}

	initial, err := c.matchingLocked(selector)
	c.store.mu.Unlock()
	if err != nil {
		return nil, err
	}

	callback(initial)

	cancel := func() {
		c.store.mu.Lock()
		delete(c.subs, id)
		c.store.mu.Unlock()
	}
	return cancel, nil
}

// matchingLocked собирает снимок результатов селектора. Вызывается под локом.
func (c *Collection[T]) matchingLocked(selector Selector) ([]T, error) {
	result := []T{}
	for _, id := range c.order {
		raw := c.docs[id]
		if !selector.Matches(raw) {
			continue
		}
		doc, err := decodeDoc[T](raw)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
	}
	return result, nil
}

// collectNotifies готовит снимки для подписок, которых касается мутация
// документа (old/new могут быть nil при вставке/удалении). Снимки берутся
// под локом, чтобы никто не увидел полузафиксированное состояние; сами
// колбеки зовутся уже после коммита.
func (c *Collection[T]) collectNotifies(old, updated map[string]any) []pendingNotify[T] {
	var pending []pendingNotify[T]
	for _, sub := range c.subs {
		affected := (old != nil && sub.selector.Matches(old)) ||
			(updated != nil && sub.selector.Matches(updated))
		if !affected {
			continue
		}
		snapshot, err := c.matchingLocked(sub.selector)
		if err != nil {
			continue
		}
		pending = append(pending, pendingNotify[T]{callback: sub.callback, snapshot: snapshot})
	}
	return pending
}

func fire[T Document](pending []pendingNotify[T]) {
	for _, p := range pending {
		p.callback(p.snapshot)
	}
}

// toRaw переводит документ в каноничную JSON-карту.
func toRaw(doc any) (map[string]any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func decodeDoc[T Document](raw map[string]any) (T, error) {
	var doc T
	data, err := json.Marshal(raw)
	if err != nil {
		return doc, &StorageError{Op: "decode", Err: err}
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, &StorageError{Op: "decode", Err: err}
	}
	return doc, nil
}

// jsonValue нормализует значение патча к виду после json.Unmarshal.
func jsonValue(v any) any {
	switch v.(type) {
	case nil, string, bool, float64:
		return v
	}
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}

// NowISO - текущий момент в ISO 8601 с миллисекундами (UTC),
// как сериализует даты исходное веб-приложение.
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
