package domain

// Param - пара ключ/значение строки запроса
type Param struct {
	Key   string
	Value any
}

// Params - параметры поиска в порядке добавления.
// Бэкенд не должен полагаться на порядок, но он сохраняется для воспроизводимости.
type Params []Param

// Set задает значение параметра. Повторный Set заменяет значение на прежнем месте.
func (p Params) Set(key string, value any) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

// Get возвращает значение параметра, если он был задан
func (p Params) Get(key string) (any, bool) {
	for _, param := range p {
		if param.Key == key {
			return param.Value, true
		}
	}
	return nil, false
}
