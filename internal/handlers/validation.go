package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/career-gateway/internal/models"
)

type skillsDecoder struct {
	validate *validator.Validate
}

func newSkillsDecoder() *skillsDecoder {
	return &skillsDecoder{validate: validator.New()}
}

// decode reads a {"skills": [...]} body into a normalized skill set. It
// returns the client-facing error message when the body is unusable. An
// empty body is treated as an object without skills.
func (d *skillsDecoder) decode(body []byte, target any, skills func() []string) (models.SkillSet, string) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		body = []byte("{}")
	}

	if !json.Valid(body) {
		return models.SkillSet{}, msgInvalidJSON
	}
	if err := json.Unmarshal(body, target); err != nil {
		return models.SkillSet{}, msgSkillsRequired
	}
	if err := d.validate.Struct(target); err != nil {
		return models.SkillSet{}, msgSkillsRequired
	}

	set := models.NewSkillSet(skills())
	if set.IsEmpty() {
		return models.SkillSet{}, msgSkillsRequired
	}

	return set, ""
}
