package providers

import (
	"fmt"

	"github.com/gookit/validate"

	"marinecast/internal/structures"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (v *CnfValidator) Validate() error {
	val := validate.Struct(v.conf)
	if !val.Validate() {
		return fmt.Errorf("invalid configuration: %s", val.Errors.One())
	}
	return nil
}
