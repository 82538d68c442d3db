package models

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
)

// User — документ из коллекции "users". Профиль, не учётные данные:
// пароль живёт отдельно в Credential.
type User struct {
	UID        string  `json:"uid"`
	FullName   string  `json:"fullName"`
	IDNumber   string  `json:"idNumber"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	HourlyRate float64 `json:"hourlyRate"`
	FirstLogin bool    `json:"isFirstLogin"`
	// Картинка профиля хранится прямо в документе строкой Base64,
	// чтобы не заводить отдельное файловое хранилище.
	ProfileImage string `json:"profileImage,omitempty"`
}

// Credential — учётные данные для входа, коллекция "credentials".
// Ключ документа — email в нижнем регистре.
type Credential struct {
	UID          string `json:"uid"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	FullName    string `json:"fullName"`
	IDNumber    string `json:"idNumber"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"`
	ManagerCode string `json:"managerCode,omitempty"`
}

type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
	UID          string `json:"uid"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
}
