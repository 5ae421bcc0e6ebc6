package http

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// openAPIDoc serves a rendered OpenAPI document through the swag registry,
// which is where the Swagger UI handler reads doc.json from.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

var (
	swaggerOnce sync.Once
	swaggerErr  error
)

// registerSwaggerDoc registers the document once per process; swag panics on
// a second registration under the same name.
func registerSwaggerDoc(doc *openapi3.T) error {
	swaggerOnce.Do(func() {
		raw, err := json.Marshal(doc)
		if err != nil {
			swaggerErr = fmt.Errorf("failed to render openapi document: %w", err)
			return
		}
		swag.Register(swag.Name, openAPIDoc{json: string(raw)})
	})

	return swaggerErr
}
