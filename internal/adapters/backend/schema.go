package backend

import (
	"bytes"
	_ "embed"
	"errors"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

//go:embed schema/plan.schema.json
var planSchemaJSON []byte

const planSchemaURL = "plan.schema.json"

var planSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(planSchemaJSON))
	if err != nil {
		return nil, err
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(planSchemaURL, doc); err != nil {
		return nil, err
	}
	return c.Compile(planSchemaURL)
})

// ValidatePlanShape checks a decoded JSON document against the plan schema.
func ValidatePlanShape(raw []byte) error {
	sch, err := planSchema()
	if err != nil {
		return zerr.Wrap(err, "compile plan schema")
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return errors.Join(domain.ErrBackendResponseInvalid, err)
	}
	if err := sch.Validate(doc); err != nil {
		return errors.Join(domain.ErrPlanShapeInvalid, err)
	}
	return nil
}
