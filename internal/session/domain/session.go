package domain

// User is the profile stored alongside the auth token. It mirrors the
// subset of the upstream user record the site renders.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the (token, user) pair proving a request is authenticated.
// Token and User are only ever set and cleared together; a session with
// one half missing does not exist.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
