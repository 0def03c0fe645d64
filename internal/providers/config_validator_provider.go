package providers

import (
	"fmt"
	"github.com/gookit/validate"
	"photobooth/internal/structures"
)

type CnfValidatorInterface interface {
	Validate() error
}

type CnfValidator struct {
	conf *structures.Config
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.Error())
	}
	if cv.conf.Camera.Source == "directory" && cv.conf.Camera.Dir == "" {
		return fmt.Errorf("invalid config: camera.dir is required for directory source")
	}
	return nil
}

func NewCnfValidator(conf *structures.Config) CnfValidatorInterface {
	return &CnfValidator{conf: conf}
}
