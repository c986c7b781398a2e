package model

// PassphraseRequest represents a passphrase generation request. Pointer
// fields distinguish missing values from explicit zeroes: a missing word
// count is derived from the entropy budget, and a missing uppercase
// directive means no uppercasing at all.
type PassphraseRequest struct {
	Words       *int     `json:"words"`
	Numbers     *int     `json:"numbers"`
	Uppercase   *int     `json:"uppercase"`
	Separator   *string  `json:"separator"`
	Wordlist    string   `json:"wordlist"`
	EntropyBits *float64 `json:"entropy_bits"`
}

// PassphraseResponse represents a generated passphrase with its exact
// entropy accounting.
type PassphraseResponse struct {
	Passphrase  string   `json:"passphrase"`
	Parts       []string `json:"parts"`
	Words       int      `json:"words"`
	Numbers     int      `json:"numbers"`
	Wordlist    string   `json:"wordlist"`
	EntropyBits float64  `json:"entropy_bits"`
}

// PasswordRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type PasswordRequest struct {
	Length      *int     `json:"length"`
	Lowercase   *bool    `json:"lowercase"`
	Uppercase   *bool    `json:"uppercase"`
	Digits      *bool    `json:"digits"`
	Punctuation *bool    `json:"punctuation"`
	EntropyBits *float64 `json:"entropy_bits"`
}

// PasswordResponse represents a generated password.
type PasswordResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
}

// UUIDResponse represents a generated UUIDv4 with its five groups.
type UUIDResponse struct {
	UUID  string   `json:"uuid"`
	Parts []string `json:"parts"`
}

// PassphrasePlanRequest asks how many words reach an entropy target.
type PassphrasePlanRequest struct {
	EntropyBits float64 `json:"entropy_bits"`
	Numbers     *int    `json:"numbers"`
	Wordlist    string  `json:"wordlist"`
}

// PassphrasePlanResponse reports the words needed and the entropy the
// resulting configuration actually reaches.
type PassphrasePlanResponse struct {
	Words       int     `json:"words"`
	Numbers     int     `json:"numbers"`
	Wordlist    string  `json:"wordlist"`
	EntropyBits float64 `json:"entropy_bits"`
}

// PasswordPlanRequest asks how long a password reaches an entropy target.
type PasswordPlanRequest struct {
	EntropyBits float64 `json:"entropy_bits"`
	Lowercase   *bool   `json:"lowercase"`
	Uppercase   *bool   `json:"uppercase"`
	Digits      *bool   `json:"digits"`
	Punctuation *bool   `json:"punctuation"`
}

// PasswordPlanResponse reports the length needed and the entropy the
// resulting configuration actually reaches.
type PasswordPlanResponse struct {
	Length      int     `json:"length"`
	EntropyBits float64 `json:"entropy_bits"`
}
