package entities

// Identity описывает аутентифицированного пользователя,
// полученного от внешнего провайдера идентификации.
// Ядро доверяет этим данным как есть.
type Identity struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
}

// Valid сообщает, представляет ли Identity аутентифицированного пользователя.
func (i *Identity) Valid() bool {
	return i != nil && i.UserID != ""
}
