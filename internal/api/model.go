package api

import "github.com/alvinbaena/pwd-meter/pkg/strength"

// passwordRequest carries the password in the body. An empty password is valid and answered
// with the waiting level, so the field is not bound as required.
type passwordRequest struct {
	Password *string `json:"password"`
}

type evaluateResponse struct {
	Score  int            `json:"score"`
	Level  strength.Level `json:"level"`
	Label  string         `json:"label"`
	Issues []string       `json:"issues"`
}

type entropyResponse struct {
	Entropy   int    `json:"entropy"`
	CrackTime string `json:"crack_time"`
}

type crackTimeResponse struct {
	Bits      int    `json:"bits"`
	CrackTime string `json:"crack_time"`
}
