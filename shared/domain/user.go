package domain

type NewUser struct {
	Username Username `json:"username" validate:"required,notblank,max=50,username"`
	Password Password `json:"password" validate:"required,notblank"`
	Fullname string   `json:"fullname" validate:"required,notblank"`
}

func (u NewUser) Validate() error {
	return validateEntity("REGISTER_USER", u)
}

type RegisteredUser struct {
	Id       UserId   `json:"id"`
	Username Username `json:"username"`
	Fullname string   `json:"fullname"`
}

type User struct {
	Id       UserId
	Username Username
	PassHash string
	Fullname string
}

type Credentials struct {
	Username Username `json:"username" validate:"required,notblank"`
	Password Password `json:"password" validate:"required,notblank"`
}

func (c Credentials) Validate() error {
	return validateEntity("USER_LOGIN", c)
}
