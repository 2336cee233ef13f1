package models

// Login содержит учетные данные облака
type Login struct {
	User     string `json:"user"`
	Password string `json:"password"`
}

// Settings представляет сохраненные на устройстве настройки входа
type Settings struct {
	User      string `json:"user"`
	Password  string `json:"password"`
	Autologin bool   `json:"autologin"`
}

// Login возвращает учетные данные из настроек
func (s *Settings) Login() Login {
	return Login{User: s.User, Password: s.Password}
}
