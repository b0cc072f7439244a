package model

import (
	"strconv"
	"strings"
)

// Difficulty values accepted by Preferences.
const (
	DifficultyEasy   = "easy"
	DifficultyNormal = "normal"
	DifficultyHard   = "hard"
)

// Profile is the player profile record.
type Profile struct {
	Level int    `yaml:"level" cbor:"level" validate:"min=1,max=100"`
	Name  string `yaml:"name" cbor:"name" validate:"required,max=32"`
	Bio   string `yaml:"bio,omitempty" cbor:"bio,omitempty"`
}

// SetDefaultData resets the profile to a level 1 guest.
func (p *Profile) SetDefaultData() {
	*p = Profile{
		Level: 1,
		Name:  "guest",
	}
}

// Fields returns the profile fields in display order.
func (p Profile) Fields() []Field {
	return []Field{
		{Name: "level", Value: strconv.Itoa(p.Level)},
		{Name: "name", Value: p.Name},
		{Name: "bio", Value: p.Bio},
	}
}

// SetField parses value and assigns it to the named field.
// Field names are case-insensitive.
func (p *Profile) SetField(name, value string) error {
	switch strings.ToLower(name) {
	case "level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return &FieldError{Record: "profile", Field: name, Message: "level must be an integer"}
		}
		p.Level = n
	case "name":
		p.Name = value
	case "bio":
		p.Bio = value
	default:
		return &FieldError{Record: "profile", Field: name, Message: "unknown field"}
	}
	return nil
}

// Preferences holds user-facing settings such as audio and language.
type Preferences struct {
	Language   string  `yaml:"language" cbor:"language" validate:"required"`
	Volume     float64 `yaml:"volume" cbor:"volume" validate:"gte=0,lte=1"`
	Muted      bool    `yaml:"muted" cbor:"muted"`
	Difficulty string  `yaml:"difficulty" cbor:"difficulty" validate:"oneof=easy normal hard"`
}

// SetDefaultData resets preferences to English, 80% volume, normal difficulty.
func (p *Preferences) SetDefaultData() {
	*p = Preferences{
		Language:   "en",
		Volume:     0.8,
		Muted:      false,
		Difficulty: DifficultyNormal,
	}
}

// Fields returns the preference fields in display order.
func (p Preferences) Fields() []Field {
	return []Field{
		{Name: "language", Value: p.Language},
		{Name: "volume", Value: strconv.FormatFloat(p.Volume, 'g', -1, 64)},
		{Name: "muted", Value: strconv.FormatBool(p.Muted)},
		{Name: "difficulty", Value: p.Difficulty},
	}
}

// SetField parses value and assigns it to the named field.
// Field names are case-insensitive; difficulty is normalized to lowercase.
func (p *Preferences) SetField(name, value string) error {
	switch strings.ToLower(name) {
	case "language":
		p.Language = value
	case "volume":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return &FieldError{Record: "prefs", Field: name, Message: "volume must be a number"}
		}
		p.Volume = f
	case "muted":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return &FieldError{Record: "prefs", Field: name, Message: "muted must be true or false"}
		}
		p.Muted = b
	case "difficulty":
		p.Difficulty = strings.ToLower(value)
	default:
		return &FieldError{Record: "prefs", Field: name, Message: "unknown field"}
	}
	return nil
}
