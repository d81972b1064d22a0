package entities

// Entity запись с неизменяемым идентификатором.
// WithIdentity возвращает копию с подставленным id, исходное значение не меняется.
type Entity[E any, ID comparable] interface {
	Identity() ID
	WithIdentity(id ID) E
}

// FieldMessages сопоставляет "Field.tag" человекочитаемому сообщению валидации.
type FieldMessages map[string]string
