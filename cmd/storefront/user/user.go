package user

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/securecookie"
)

type User struct {
	cookieName string
	cookie     *securecookie.SecureCookie
	Login      string `json:"login"`
	Password   string `json:"password"`
}

type UserService interface {
	GetUserIDFromCookie(r *http.Request) (string, error)
	SetUserIDCookie(res http.ResponseWriter, uid string) error
}

func newSecurecookie() *securecookie.SecureCookie {
	hashKey := []byte("very-very-very-very-secret-key32")
	blockKey := []byte("a-lot-of-secret!")
	if val, exist := os.LookupEnv("SESSION_HASH_KEY"); exist {
		hashKey = []byte(val)
	}
	if val, exist := os.LookupEnv("SESSION_BLOCK_KEY"); exist {
		blockKey = []byte(val)
	}
	return securecookie.New(hashKey, blockKey)
}

func NewUserService() *User {
	return &User{
		cookieName: "AuthToken",
		cookie:     newSecurecookie(),
	}
}

func (u *User) GetUserIDFromCookie(req *http.Request) (string, error) {
	cookie, err := req.Cookie(u.cookieName)
	if err != nil {
		return "", err
	}

	var uid string
	if err := u.cookie.Decode(u.cookieName, cookie.Value, &uid); err != nil {
		return "", err
	}

	return uid, nil
}

func (u *User) SetUserIDCookie(res http.ResponseWriter, uid string) error {
	encoded, err := u.cookie.Encode(u.cookieName, uid)
	if err != nil {
		return err
	}

	http.SetCookie(res, &http.Cookie{
		Name:    u.cookieName,
		Value:   encoded,
		Path:    "/",
		Secure:  false,
		Expires: time.Now().Add(30 * 24 * time.Hour),
	})

	return nil
}
