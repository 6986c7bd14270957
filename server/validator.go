package server

import "github.com/go-playground/validator/v10"

var validate = validator.New()

type fortuneRequest struct {
	Question string `json:"question" validate:"required,min=1,max=300"`
}

func validateFortuneRequest(req fortuneRequest) error {
	return validate.Struct(req)
}
